package email

import (
	"context"
	"errors"
	"testing"

	"github.com/akeren/waitlist-api/internal/log"
	apperrors "github.com/akeren/waitlist-api/pkg/errors"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestEmailService_SendWelcome(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockMailer := NewMockMailer(ctrl)
	logger := log.NewLoggerWithJSONOutput()
	service := NewEmailService(logger, mockMailer)

	t.Run("renders the template and hands it to the mailer", func(t *testing.T) {
		mockMailer.EXPECT().
			Send(gomock.Any(), "ada@example.com", "You're on the waitlist 🎉", gomock.Any()).
			DoAndReturn(func(_ context.Context, _, _, htmlBody string) error {
				assert.Contains(t, htmlBody, "ABC123")
				return nil
			})

		err := service.SendWelcome(context.Background(), "ada@example.com", WelcomeEmailData{
			Name:         "Ada",
			ReferralCode: "ABC123",
		})

		assert.NoError(t, err)
	})

	t.Run("provider failure is wrapped as an internal error", func(t *testing.T) {
		mockMailer.EXPECT().
			Send(gomock.Any(), "ada@example.com", gomock.Any(), gomock.Any()).
			Return(errors.New("ses: message rejected"))

		err := service.SendWelcome(context.Background(), "ada@example.com", WelcomeEmailData{})

		assert.Error(t, err)
		assert.Equal(t, apperrors.ErrorTypeInternalServerError, apperrors.GetErrorType(err))
	})
}

func TestEmailService_SendReferralSuccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockMailer := NewMockMailer(ctrl)
	logger := log.NewLoggerWithJSONOutput()
	service := NewEmailService(logger, mockMailer)

	mockMailer.EXPECT().
		Send(gomock.Any(), "grace@example.com", "Your referral just paid off", gomock.Any()).
		Return(nil)

	err := service.SendReferralSuccess(context.Background(), "grace@example.com", ReferralSuccessEmailData{
		Name:         "Grace",
		ReferralCode: "GRACE1",
	})

	assert.NoError(t, err)
}
