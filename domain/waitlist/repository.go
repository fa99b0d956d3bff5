package waitlist

import (
	"context"
	"errors"
	"time"

	"github.com/akeren/waitlist-api/internal/models"
	apperrors "github.com/akeren/waitlist-api/pkg/errors"
	"gorm.io/gorm"
)

// EntryFilter is the conjunctive predicate for admin listing. Zero-valued
// fields impose no constraint.
type EntryFilter struct {
	Search    string
	Status    string
	StartDate *time.Time
	EndDate   *time.Time
	SortField string
	SortOrder string
	Page      int
	PageSize  int
}

// sortFieldAllowList maps accepted sort tokens to column expressions.
// Anything outside this map falls back to created_at; values are never
// interpolated from user input directly.
var sortFieldAllowList = map[string]string{
	"created_at": "created_at",
	"updated_at": "updated_at",
	"email":      "email",
	"name":       "name",
	"company":    "company",
	"status":     "status",
}

func (f *EntryFilter) orderClause() string {
	column, ok := sortFieldAllowList[f.SortField]
	if !ok {
		column = "created_at"
	}

	direction := "DESC"
	if f.SortOrder == "asc" {
		direction = "ASC"
	}

	return column + " " + direction
}

type WaitlistRepository interface {
	// CreateEntry persists a new waitlist entry.
	CreateEntry(ctx context.Context, entry *models.WaitlistEntry) (*models.WaitlistEntry, error)
	// FindEntryByID retrieves an entry by its unique ID.
	FindEntryByID(ctx context.Context, id uint) (*models.WaitlistEntry, error)
	// FindEntryByReferralCode retrieves the entry owning a referral code.
	FindEntryByReferralCode(ctx context.Context, code string) (*models.WaitlistEntry, error)
	// ListEntries returns the filtered page and the unpaginated total for
	// the same predicate.
	ListEntries(ctx context.Context, filter *EntryFilter) ([]*models.WaitlistEntry, int64, error)
	// GetAllEntries returns every entry, ignoring pagination. Used by export.
	GetAllEntries(ctx context.Context) ([]*models.WaitlistEntry, error)
	// UpdateStatus sets the status of exactly one entry.
	UpdateStatus(ctx context.Context, id uint, status string) error
	// DeleteEntry removes an entry. Deleting an absent ID is not an error.
	DeleteEntry(ctx context.Context, id uint) error
	// BulkUpdateStatus sets the status for every listed ID in one statement.
	BulkUpdateStatus(ctx context.Context, ids []uint, status string) error
	// BulkDelete removes every listed ID in one statement.
	BulkDelete(ctx context.Context, ids []uint) error
	// CountByStatus returns entry counts grouped by status, plus verified
	// and referred totals.
	CountByStatus(ctx context.Context) (map[string]int64, int64, int64, error)
}

type waitlistRepository struct {
	db *gorm.DB
}

func NewWaitlistRepository(db *gorm.DB) WaitlistRepository {
	return &waitlistRepository{db: db}
}

func (wr *waitlistRepository) CreateEntry(ctx context.Context, entry *models.WaitlistEntry) (*models.WaitlistEntry, error) {
	if err := wr.db.WithContext(ctx).Create(entry).Error; err != nil {
		if isDuplicateKey(err) {
			return nil, apperrors.NewConflictError("waitlist entry with this email already exists", err)
		}
		return nil, apperrors.NewDatabaseError("unable to create waitlist entry", err)
	}

	return entry, nil
}

func (wr *waitlistRepository) FindEntryByID(ctx context.Context, id uint) (*models.WaitlistEntry, error) {
	var entry models.WaitlistEntry

	if err := wr.db.WithContext(ctx).First(&entry, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("waitlist entry not found", err)
		}
		return nil, apperrors.NewDatabaseError("failed to fetch waitlist entry", err)
	}

	return &entry, nil
}

func (wr *waitlistRepository) FindEntryByReferralCode(ctx context.Context, code string) (*models.WaitlistEntry, error) {
	var entry models.WaitlistEntry

	err := wr.db.WithContext(ctx).Where("referral_code = ?", code).First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("referral code not found", err)
		}
		return nil, apperrors.NewDatabaseError("failed to fetch waitlist entry", err)
	}

	return &entry, nil
}

func (wr *waitlistRepository) filteredQuery(ctx context.Context, filter *EntryFilter) *gorm.DB {
	query := wr.db.WithContext(ctx).Model(&models.WaitlistEntry{})

	if filter.Search != "" {
		query = query.Where("email LIKE ?", "%"+filter.Search+"%")
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.StartDate != nil {
		query = query.Where("created_at >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		// Inclusive through end of day.
		endOfDay := filter.EndDate.Add(24*time.Hour - time.Nanosecond)
		query = query.Where("created_at <= ?", endOfDay)
	}

	return query
}

func (wr *waitlistRepository) ListEntries(ctx context.Context, filter *EntryFilter) ([]*models.WaitlistEntry, int64, error) {
	var total int64

	if err := wr.filteredQuery(ctx, filter).Count(&total).Error; err != nil {
		return nil, 0, apperrors.NewDatabaseError("unable to count waitlist entries", err)
	}

	var entries []*models.WaitlistEntry

	err := wr.filteredQuery(ctx, filter).
		Order(filter.orderClause()).
		Limit(filter.PageSize).
		Offset((filter.Page - 1) * filter.PageSize).
		Find(&entries).Error
	if err != nil {
		return nil, 0, apperrors.NewDatabaseError("unable to fetch waitlist entries", err)
	}

	return entries, total, nil
}

func (wr *waitlistRepository) GetAllEntries(ctx context.Context) ([]*models.WaitlistEntry, error) {
	var entries []*models.WaitlistEntry

	if err := wr.db.WithContext(ctx).Order("created_at DESC").Find(&entries).Error; err != nil {
		return nil, apperrors.NewDatabaseError("unable to fetch waitlist entries", err)
	}

	return entries, nil
}

func (wr *waitlistRepository) UpdateStatus(ctx context.Context, id uint, status string) error {
	result := wr.db.WithContext(ctx).
		Model(&models.WaitlistEntry{}).
		Where("id = ?", id).
		Update("status", status)

	if result.Error != nil {
		return apperrors.NewDatabaseError("unable to update waitlist entry", result.Error)
	}

	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("waitlist entry not found", nil)
	}

	return nil
}

func (wr *waitlistRepository) DeleteEntry(ctx context.Context, id uint) error {
	result := wr.db.WithContext(ctx).Unscoped().Delete(&models.WaitlistEntry{}, id)

	if result.Error != nil {
		return apperrors.NewDatabaseError("unable to delete waitlist entry", result.Error)
	}

	// Deleting an absent row reports success; callers treat delete as
	// idempotent.
	return nil
}

func (wr *waitlistRepository) BulkUpdateStatus(ctx context.Context, ids []uint, status string) error {
	err := wr.db.WithContext(ctx).
		Model(&models.WaitlistEntry{}).
		Where("id IN ?", ids).
		Update("status", status).Error
	if err != nil {
		return apperrors.NewDatabaseError("unable to bulk-update waitlist entries", err)
	}

	return nil
}

func (wr *waitlistRepository) BulkDelete(ctx context.Context, ids []uint) error {
	err := wr.db.WithContext(ctx).
		Unscoped().
		Where("id IN ?", ids).
		Delete(&models.WaitlistEntry{}).Error
	if err != nil {
		return apperrors.NewDatabaseError("unable to bulk-delete waitlist entries", err)
	}

	return nil
}

func (wr *waitlistRepository) CountByStatus(ctx context.Context) (map[string]int64, int64, int64, error) {
	type statusCount struct {
		Status string
		Count  int64
	}

	var rows []statusCount

	err := wr.db.WithContext(ctx).
		Model(&models.WaitlistEntry{}).
		Select("status, COUNT(*) as count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, 0, 0, apperrors.NewDatabaseError("unable to aggregate waitlist statuses", err)
	}

	byStatus := make(map[string]int64, len(rows))
	for _, row := range rows {
		byStatus[row.Status] = row.Count
	}

	var verified int64
	err = wr.db.WithContext(ctx).
		Model(&models.WaitlistEntry{}).
		Where("verified = ?", true).
		Count(&verified).Error
	if err != nil {
		return nil, 0, 0, apperrors.NewDatabaseError("unable to count verified entries", err)
	}

	var referred int64
	err = wr.db.WithContext(ctx).
		Model(&models.WaitlistEntry{}).
		Where("referred_by <> ''").
		Count(&referred).Error
	if err != nil {
		return nil, 0, 0, apperrors.NewDatabaseError("unable to count referred entries", err)
	}

	return byStatus, verified, referred, nil
}

func isDuplicateKey(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey) || apperrors.IsDuplicateKeyError(err)
}
