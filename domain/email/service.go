package email

import (
	"context"

	"github.com/akeren/waitlist-api/internal/log"
	"github.com/akeren/waitlist-api/pkg/circuitbreaker"
	apperrors "github.com/akeren/waitlist-api/pkg/errors"
	"github.com/akeren/waitlist-api/pkg/retry"
)

type EmailService interface {
	// SendWelcome sends the signup confirmation email.
	SendWelcome(ctx context.Context, to string, data WelcomeEmailData) error

	// SendUpdate sends a broadcast update email.
	SendUpdate(ctx context.Context, to string, data UpdateEmailData) error

	// SendReferralSuccess notifies a referrer that their code was used.
	SendReferralSuccess(ctx context.Context, to string, data ReferralSuccessEmailData) error
}

type emailService struct {
	logger  *log.Logger
	mailer  Mailer
	retrier retry.RetryPolicy
	breaker circuitbreaker.CircuitBreaker
}

// NewEmailService wraps the mailer with backoff retries inside a circuit
// breaker, so a struggling provider is retried briefly and then left alone.
func NewEmailService(logger *log.Logger, mailer Mailer) EmailService {
	return &emailService{
		logger:  logger,
		mailer:  mailer,
		retrier: retry.NewExponentialBackoff(nil),
		breaker: circuitbreaker.NewCircuitBreaker(nil),
	}
}

func (s *emailService) SendWelcome(ctx context.Context, to string, data WelcomeEmailData) error {
	subject, html := WelcomeEmail(data)
	return s.deliver(ctx, to, subject, html)
}

func (s *emailService) SendUpdate(ctx context.Context, to string, data UpdateEmailData) error {
	subject, html := UpdateEmail(data)
	return s.deliver(ctx, to, subject, html)
}

func (s *emailService) SendReferralSuccess(ctx context.Context, to string, data ReferralSuccessEmailData) error {
	subject, html := ReferralSuccessEmail(data)
	return s.deliver(ctx, to, subject, html)
}

func (s *emailService) deliver(ctx context.Context, to, subject, html string) error {
	logger := log.GetLoggerInstanceFromContext(ctx, s.logger)

	err := s.breaker.Call(func() error {
		return s.retrier.Execute(func() error {
			return s.mailer.Send(ctx, to, subject, html)
		})
	})

	if err != nil {
		logger.Error("Failed to deliver email", "subject", subject, "error", err)
		return apperrors.NewInternalServerError("unable to deliver email", err)
	}

	return nil
}
