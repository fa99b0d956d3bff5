package email

import (
	"context"
	"fmt"

	"github.com/akeren/waitlist-api/internal/log"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

// Mailer delivers a rendered message to a single recipient.
type Mailer interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
}

type SESMailerConfig struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	FromAddress     string
	FromName        string
}

type sesMailer struct {
	client      *ses.Client
	fromAddress string
	fromName    string
	logger      *log.Logger
}

// NewSESMailer builds a Mailer on AWS SES with static credentials.
func NewSESMailer(cfg SESMailerConfig, logger *log.Logger) Mailer {
	awsCfg := aws.Config{
		Region: cfg.Region,
		Credentials: aws.NewCredentialsCache(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		),
	}

	return &sesMailer{
		client:      ses.NewFromConfig(awsCfg),
		fromAddress: cfg.FromAddress,
		fromName:    cfg.FromName,
		logger:      logger,
	}
}

func (m *sesMailer) Send(ctx context.Context, to, subject, htmlBody string) error {
	source := m.fromAddress
	if m.fromName != "" {
		source = fmt.Sprintf("%s <%s>", m.fromName, m.fromAddress)
	}

	input := &ses.SendEmailInput{
		Source: aws.String(source),
		Destination: &types.Destination{
			ToAddresses: []string{to},
		},
		Message: &types.Message{
			Subject: &types.Content{
				Data:    aws.String(subject),
				Charset: aws.String("UTF-8"),
			},
			Body: &types.Body{
				Html: &types.Content{
					Data:    aws.String(htmlBody),
					Charset: aws.String("UTF-8"),
				},
			},
		},
	}

	result, err := m.client.SendEmail(ctx, input)
	if err != nil {
		return fmt.Errorf("failed to send email via SES: %w", err)
	}

	m.logger.Info("Email sent via SES", "message_id", aws.ToString(result.MessageId))
	return nil
}

type noopMailer struct {
	logger *log.Logger
}

// NewNoopMailer returns a Mailer that logs instead of sending. Used for
// local development and tests.
func NewNoopMailer(logger *log.Logger) Mailer {
	return &noopMailer{logger: logger}
}

func (m *noopMailer) Send(ctx context.Context, to, subject, htmlBody string) error {
	m.logger.Info("Email would be sent (noop)", "to", to, "subject", subject)
	return nil
}
