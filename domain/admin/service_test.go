package admin

import (
	"context"
	"testing"

	"github.com/akeren/waitlist-api/internal/log"
	"github.com/akeren/waitlist-api/internal/models"
	apperrors "github.com/akeren/waitlist-api/pkg/errors"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func TestAdminService_ProvisionAdmin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := NewMockAdminRepository(ctrl)
	logger := log.NewLoggerWithJSONOutput()
	service := NewAdminService(logger, mockRepo)

	t.Run("hashes the password and normalizes the email", func(t *testing.T) {
		mockRepo.EXPECT().
			CreateAdminUser(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, user *models.AdminUser) error {
				assert.Equal(t, "ops@example.com", user.Email)
				assert.Equal(t, models.AdminRoleDefault, user.Role)
				assert.NotEqual(t, "winter-solstice-42", user.PasswordHash)
				assert.NoError(t, bcrypt.CompareHashAndPassword(
					[]byte(user.PasswordHash), []byte("winter-solstice-42")))
				return nil
			})

		err := service.ProvisionAdmin(context.Background(), "  Ops@Example.com ", "winter-solstice-42")

		assert.NoError(t, err)
	})

	t.Run("rejects placeholder passwords", func(t *testing.T) {
		for _, password := range []string{"admin123", "changeme", "Password"} {
			err := service.ProvisionAdmin(context.Background(), "ops@example.com", password)

			assert.Error(t, err, password)
			assert.Equal(t, apperrors.ErrorTypeInvalidRequest, apperrors.GetErrorType(err))
		}
	})

	t.Run("rejects short passwords", func(t *testing.T) {
		err := service.ProvisionAdmin(context.Background(), "ops@example.com", "short-pw")

		assert.Error(t, err)
		assert.Equal(t, apperrors.ErrorTypeInvalidRequest, apperrors.GetErrorType(err))
	})

	t.Run("rejects malformed emails", func(t *testing.T) {
		err := service.ProvisionAdmin(context.Background(), "not-an-email", "winter-solstice-42")

		assert.Error(t, err)
		assert.Equal(t, apperrors.ErrorTypeInvalidRequest, apperrors.GetErrorType(err))
	})

	t.Run("duplicate email surfaces as conflict", func(t *testing.T) {
		mockRepo.EXPECT().
			CreateAdminUser(gomock.Any(), gomock.Any()).
			Return(apperrors.NewConflictError("admin email already registered", nil))

		err := service.ProvisionAdmin(context.Background(), "ops@example.com", "winter-solstice-42")

		assert.Error(t, err)
		assert.Equal(t, apperrors.ErrorTypeConflict, apperrors.GetErrorType(err))
	})
}

func TestAdminService_Authenticate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := NewMockAdminRepository(ctrl)
	logger := log.NewLoggerWithJSONOutput()
	service := NewAdminService(logger, mockRepo)

	hash, err := bcrypt.GenerateFromPassword([]byte("winter-solstice-42"), bcrypt.MinCost)
	assert.NoError(t, err)

	stored := &models.AdminUser{
		Email:        "ops@example.com",
		PasswordHash: string(hash),
		Role:         models.AdminRoleDefault,
	}

	t.Run("valid credentials", func(t *testing.T) {
		mockRepo.EXPECT().
			FindAdminByEmail(gomock.Any(), "ops@example.com").
			Return(stored, nil)

		user, err := service.Authenticate(context.Background(), "Ops@Example.com", "winter-solstice-42")

		assert.NoError(t, err)
		assert.Equal(t, "ops@example.com", user.Email)
	})

	t.Run("wrong password", func(t *testing.T) {
		mockRepo.EXPECT().
			FindAdminByEmail(gomock.Any(), "ops@example.com").
			Return(stored, nil)

		user, err := service.Authenticate(context.Background(), "ops@example.com", "wrong-password-1")

		assert.Error(t, err)
		assert.Nil(t, user)
		assert.Equal(t, apperrors.ErrorTypeUnauthorized, apperrors.GetErrorType(err))
	})

	t.Run("unknown email reports invalid credentials, not absence", func(t *testing.T) {
		mockRepo.EXPECT().
			FindAdminByEmail(gomock.Any(), "ghost@example.com").
			Return(nil, apperrors.NewNotFoundError("admin user not found", nil))

		user, err := service.Authenticate(context.Background(), "ghost@example.com", "winter-solstice-42")

		assert.Error(t, err)
		assert.Nil(t, user)
		assert.Equal(t, apperrors.ErrorTypeUnauthorized, apperrors.GetErrorType(err))
	})
}

func TestAdminService_RecordKeyDigest(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := NewMockAdminRepository(ctrl)
	logger := log.NewLoggerWithJSONOutput()
	service := NewAdminService(logger, mockRepo)

	mockRepo.EXPECT().
		RecordKeyDigest(gomock.Any(), &models.AdminKey{
			KeyDigest: "abc123",
			Label:     "ci",
		}).
		Return(nil)

	err := service.RecordKeyDigest(context.Background(), "abc123", "ci")

	assert.NoError(t, err)
}
