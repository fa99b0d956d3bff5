package admin

import (
	"context"
	"errors"

	"github.com/akeren/waitlist-api/internal/models"
	apperrors "github.com/akeren/waitlist-api/pkg/errors"
	"gorm.io/gorm"
)

type AdminRepository interface {
	// CreateAdminUser persists a new admin account.
	CreateAdminUser(ctx context.Context, user *models.AdminUser) error
	// FindAdminByEmail retrieves an admin account by email.
	FindAdminByEmail(ctx context.Context, email string) (*models.AdminUser, error)
	// RecordKeyDigest stores the digest of a provisioned API key.
	RecordKeyDigest(ctx context.Context, key *models.AdminKey) error
}

type adminRepository struct {
	db *gorm.DB
}

func NewAdminRepository(db *gorm.DB) AdminRepository {
	return &adminRepository{db: db}
}

func (ar *adminRepository) CreateAdminUser(ctx context.Context, user *models.AdminUser) error {
	if err := ar.db.WithContext(ctx).Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) || apperrors.IsDuplicateKeyError(err) {
			return apperrors.NewConflictError("admin user with this email already exists", err)
		}
		return apperrors.NewDatabaseError("unable to create admin user", err)
	}
	return nil
}

func (ar *adminRepository) FindAdminByEmail(ctx context.Context, email string) (*models.AdminUser, error) {
	var user models.AdminUser

	if err := ar.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("admin user not found", err)
		}
		return nil, apperrors.NewDatabaseError("failed to fetch admin user", err)
	}

	return &user, nil
}

func (ar *adminRepository) RecordKeyDigest(ctx context.Context, key *models.AdminKey) error {
	if err := ar.db.WithContext(ctx).Create(key).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) || apperrors.IsDuplicateKeyError(err) {
			// The same key digest being recorded twice is harmless.
			return nil
		}
		return apperrors.NewDatabaseError("unable to record admin key", err)
	}
	return nil
}
