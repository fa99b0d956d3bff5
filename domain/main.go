package domain

import (
	"github.com/akeren/waitlist-api/config"
	"github.com/akeren/waitlist-api/domain/analytics"
	"github.com/akeren/waitlist-api/domain/email"
	"github.com/akeren/waitlist-api/domain/monitoring"
	"github.com/akeren/waitlist-api/domain/waitlist"
)

func SetupCoreDomain(appConfig *config.ApplicationConfig) {
	emails := email.NewEmailService(appConfig.Logger, newMailer(appConfig))

	appConfig.RouterService.MountController(monitoring.NewMonitoringController(appConfig.DB, appConfig.Logger, appConfig.Cache))
	appConfig.RouterService.MountController(waitlist.NewWaitlistController(appConfig.DB, appConfig.Logger, emails))
	appConfig.RouterService.MountController(waitlist.NewWaitlistAdminController(appConfig.DB, appConfig.Logger, appConfig.AdminKeyDigest))
	appConfig.RouterService.MountController(analytics.NewAnalyticsController(appConfig.DB, appConfig.Logger))
}

func newMailer(appConfig *config.ApplicationConfig) email.Mailer {
	cfg := appConfig.Email

	if cfg != nil && cfg.Provider == config.EmailProviderSES {
		return email.NewSESMailer(email.SESMailerConfig{
			Region:          cfg.Region,
			AccessKeyID:     cfg.AccessKeyID,
			SecretAccessKey: cfg.SecretAccessKey,
			FromAddress:     cfg.FromAddress,
			FromName:        cfg.FromName,
		}, appConfig.Logger)
	}

	return email.NewNoopMailer(appConfig.Logger)
}
