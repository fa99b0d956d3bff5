package admin

import (
	"context"
	"net/mail"
	"strings"

	"github.com/akeren/waitlist-api/internal/log"
	"github.com/akeren/waitlist-api/internal/models"
	apperrors "github.com/akeren/waitlist-api/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

const (
	bcryptCost        = 10
	minPasswordLength = 12
)

// forbiddenPasswords are the placeholder credentials that setup scripts
// have historically shipped with. Provisioning refuses them outright.
var forbiddenPasswords = map[string]bool{
	"admin123":    true,
	"admin":       true,
	"changeme":    true,
	"password":    true,
	"password123": true,
}

type AdminService interface {
	// ProvisionAdmin creates an admin account with an explicit, non-default
	// credential. Placeholder or short passwords are rejected.
	ProvisionAdmin(ctx context.Context, email, password string) error

	// Authenticate verifies an admin credential pair.
	Authenticate(ctx context.Context, email, password string) (*models.AdminUser, error)

	// RecordKeyDigest stores the digest of the configured API key for audit.
	RecordKeyDigest(ctx context.Context, digestHex, label string) error
}

type adminService struct {
	logger     *log.Logger
	repository AdminRepository
}

func NewAdminService(logger *log.Logger, repository AdminRepository) AdminService {
	return &adminService{logger: logger, repository: repository}
}

func (s *adminService) ProvisionAdmin(ctx context.Context, email, password string) error {
	logger := log.GetLoggerInstanceFromContext(ctx, s.logger)

	email = strings.TrimSpace(strings.ToLower(email))
	if _, err := mail.ParseAddress(email); err != nil {
		return apperrors.NewInvalidRequestError("invalid admin email", err)
	}

	if err := validatePassword(password); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return apperrors.NewInternalServerError("unable to hash password", err)
	}

	user := &models.AdminUser{
		Email:        email,
		PasswordHash: string(hash),
		Role:         models.AdminRoleDefault,
	}

	if err := s.repository.CreateAdminUser(ctx, user); err != nil {
		logger.Error("Failed to provision admin user", "error", err)
		return err
	}

	logger.Info("Admin user provisioned", "email", email)
	return nil
}

func validatePassword(password string) error {
	if strings.TrimSpace(password) == "" {
		return apperrors.NewInvalidRequestError("admin password is required", nil)
	}
	if forbiddenPasswords[strings.ToLower(password)] {
		return apperrors.NewInvalidRequestError("admin password is a known placeholder; choose a real credential", nil)
	}
	if len(password) < minPasswordLength {
		return apperrors.NewInvalidRequestError("admin password must be at least 12 characters", nil)
	}
	return nil
}

func (s *adminService) Authenticate(ctx context.Context, email, password string) (*models.AdminUser, error) {
	logger := log.GetLoggerInstanceFromContext(ctx, s.logger)

	user, err := s.repository.FindAdminByEmail(ctx, strings.TrimSpace(strings.ToLower(email)))
	if err != nil {
		if apperrors.GetErrorType(err) == apperrors.ErrorTypeNotFound {
			return nil, apperrors.NewUnauthorizedError("invalid credentials", nil)
		}
		logger.Error("Failed to load admin user", "error", err)
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, apperrors.NewUnauthorizedError("invalid credentials", nil)
	}

	return user, nil
}

func (s *adminService) RecordKeyDigest(ctx context.Context, digestHex, label string) error {
	return s.repository.RecordKeyDigest(ctx, &models.AdminKey{
		KeyDigest: digestHex,
		Label:     label,
	})
}
