package config

import (
	"fmt"

	"github.com/akeren/waitlist-api/pkg/utils"
)

// Email provider names
const (
	EmailProviderSES  = "ses"
	EmailProviderNoop = "noop"
)

type EmailConfig struct {
	Provider        string
	FromAddress     string
	FromName        string
	Region          string
	AccessKeyID     string
	SecretAccessKey string
}

// NewEmailConfig reads the mail provider settings. The default provider is
// noop so local and test runs never need SES credentials.
func NewEmailConfig() (*EmailConfig, error) {
	cfg := &EmailConfig{
		Provider:        utils.GetEnvTrimmedOrDefault("EMAIL_PROVIDER", EmailProviderNoop),
		FromAddress:     utils.GetEnvTrimmed("EMAIL_FROM_ADDRESS"),
		FromName:        utils.GetEnvTrimmed("EMAIL_FROM_NAME"),
		Region:          utils.GetEnvTrimmedOrDefault("AWS_SES_REGION", "us-east-1"),
		AccessKeyID:     utils.GetEnvTrimmed("AWS_SES_ACCESS_KEY_ID"),
		SecretAccessKey: utils.GetEnvTrimmed("AWS_SES_SECRET_ACCESS_KEY"),
	}

	if cfg.Provider == EmailProviderSES {
		if cfg.FromAddress == "" {
			return nil, fmt.Errorf("EMAIL_FROM_ADDRESS is required when EMAIL_PROVIDER=ses")
		}
		if cfg.AccessKeyID == "" || cfg.SecretAccessKey == "" {
			return nil, fmt.Errorf("AWS_SES_ACCESS_KEY_ID and AWS_SES_SECRET_ACCESS_KEY are required when EMAIL_PROVIDER=ses")
		}
	}

	return cfg, nil
}
