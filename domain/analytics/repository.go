package analytics

import (
	"context"
	"time"

	"github.com/akeren/waitlist-api/internal/models"
	apperrors "github.com/akeren/waitlist-api/pkg/errors"
	"gorm.io/gorm"
)

// topPagesLimit caps the top-pages aggregate.
const topPagesLimit = 10

type AnalyticsRepository interface {
	// CreateEvent appends one analytics event.
	CreateEvent(ctx context.Context, event *models.AnalyticsEvent) error
	// CountWaitlistEntries returns the full waitlist size.
	CountWaitlistEntries(ctx context.Context) (int64, error)
	// EventCountsByDay returns event counts grouped by name and calendar
	// day, newest day first.
	EventCountsByDay(ctx context.Context, since *time.Time) ([]EventCountRow, error)
	// EngagementByDay returns average events per session grouped by name
	// and calendar day, newest day first.
	EngagementByDay(ctx context.Context, since *time.Time) ([]EngagementRow, error)
	// TopPages returns the most-hit page URLs, capped at topPagesLimit.
	TopPages(ctx context.Context, since *time.Time) ([]PageCountRow, error)
	// ReferrerBreakdown returns event counts per referrer, with empty
	// referrers folded into "direct".
	ReferrerBreakdown(ctx context.Context, since *time.Time) ([]ReferrerRow, error)
}

type analyticsRepository struct {
	db *gorm.DB
}

func NewAnalyticsRepository(db *gorm.DB) AnalyticsRepository {
	return &analyticsRepository{db: db}
}

func (ar *analyticsRepository) CreateEvent(ctx context.Context, event *models.AnalyticsEvent) error {
	if err := ar.db.WithContext(ctx).Create(event).Error; err != nil {
		return apperrors.NewDatabaseError("unable to record analytics event", err)
	}
	return nil
}

func (ar *analyticsRepository) CountWaitlistEntries(ctx context.Context) (int64, error) {
	var total int64

	if err := ar.db.WithContext(ctx).Model(&models.WaitlistEntry{}).Count(&total).Error; err != nil {
		return 0, apperrors.NewDatabaseError("unable to count waitlist entries", err)
	}

	return total, nil
}

func (ar *analyticsRepository) sinceQuery(ctx context.Context, since *time.Time) *gorm.DB {
	query := ar.db.WithContext(ctx).Model(&models.AnalyticsEvent{})
	if since != nil {
		query = query.Where("created_at >= ?", *since)
	}
	return query
}

func (ar *analyticsRepository) EventCountsByDay(ctx context.Context, since *time.Time) ([]EventCountRow, error) {
	var rows []EventCountRow

	err := ar.sinceQuery(ctx, since).
		Select("event_name AS event, DATE(created_at) AS date, COUNT(*) AS count").
		Group("event_name, DATE(created_at)").
		Order("date DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, apperrors.NewDatabaseError("unable to aggregate event counts", err)
	}

	return rows, nil
}

func (ar *analyticsRepository) EngagementByDay(ctx context.Context, since *time.Time) ([]EngagementRow, error) {
	var rows []EngagementRow

	err := ar.sinceQuery(ctx, since).
		Select("event_name AS event, DATE(created_at) AS date, COUNT(*) * 1.0 / COUNT(DISTINCT session_id) AS avg_per_session").
		Where("session_id <> ''").
		Group("event_name, DATE(created_at)").
		Order("date DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, apperrors.NewDatabaseError("unable to aggregate engagement metrics", err)
	}

	return rows, nil
}

func (ar *analyticsRepository) TopPages(ctx context.Context, since *time.Time) ([]PageCountRow, error) {
	var rows []PageCountRow

	err := ar.sinceQuery(ctx, since).
		Select("page_url AS page, COUNT(*) AS count").
		Where("page_url <> ''").
		Group("page_url").
		Order("count DESC").
		Limit(topPagesLimit).
		Scan(&rows).Error
	if err != nil {
		return nil, apperrors.NewDatabaseError("unable to aggregate top pages", err)
	}

	return rows, nil
}

func (ar *analyticsRepository) ReferrerBreakdown(ctx context.Context, since *time.Time) ([]ReferrerRow, error) {
	var rows []ReferrerRow

	err := ar.sinceQuery(ctx, since).
		Select("CASE WHEN referrer IS NULL OR referrer = '' THEN 'direct' ELSE referrer END AS referrer, COUNT(*) AS count").
		Group("CASE WHEN referrer IS NULL OR referrer = '' THEN 'direct' ELSE referrer END").
		Order("count DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, apperrors.NewDatabaseError("unable to aggregate referrers", err)
	}

	return rows, nil
}
