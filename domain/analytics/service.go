package analytics

import (
	"context"
	"time"

	"github.com/akeren/waitlist-api/internal/log"
	apperrors "github.com/akeren/waitlist-api/pkg/errors"
)

type AnalyticsService interface {
	// TrackEvent appends one analytics event.
	TrackEvent(ctx context.Context, req *TrackEventRequest) error

	// Stats computes the waitlist total plus the time-bucketed aggregates
	// for the given range (24h, 7d, 30d, all; default 7d).
	Stats(ctx context.Context, timeRange string) (*StatsResponse, error)
}

type analyticsService struct {
	logger     *log.Logger
	repository AnalyticsRepository
	now        func() time.Time
}

func NewAnalyticsService(logger *log.Logger, repository AnalyticsRepository) AnalyticsService {
	return &analyticsService{logger: logger, repository: repository, now: time.Now}
}

func (s *analyticsService) TrackEvent(ctx context.Context, req *TrackEventRequest) error {
	logger := log.GetLoggerInstanceFromContext(ctx, s.logger)

	if req == nil {
		return apperrors.NewInvalidRequestError("request cannot be nil", nil)
	}

	if err := s.repository.CreateEvent(ctx, ToAnalyticsEventModel(req)); err != nil {
		logger.Error("Failed to record analytics event", "event", req.Event, "error", err)
		return err
	}

	return nil
}

// lowerBound maps a time range token to the inclusive aggregation start.
// "all" returns nil, imposing no lower bound.
func (s *analyticsService) lowerBound(timeRange string) (*time.Time, error) {
	var window time.Duration

	switch timeRange {
	case TimeRange24h:
		window = 24 * time.Hour
	case TimeRange7d:
		window = 7 * 24 * time.Hour
	case TimeRange30d:
		window = 30 * 24 * time.Hour
	case TimeRangeAll:
		return nil, nil
	default:
		return nil, apperrors.NewInvalidRequestError("range must be one of 24h, 7d, 30d, all", nil)
	}

	since := s.now().Add(-window)
	return &since, nil
}

func (s *analyticsService) Stats(ctx context.Context, timeRange string) (*StatsResponse, error) {
	logger := log.GetLoggerInstanceFromContext(ctx, s.logger)

	if timeRange == "" {
		timeRange = DefaultTimeRange
	}

	since, err := s.lowerBound(timeRange)
	if err != nil {
		return nil, err
	}

	total, err := s.repository.CountWaitlistEntries(ctx)
	if err != nil {
		logger.Error("Failed to count waitlist entries", "error", err)
		return nil, err
	}

	eventCounts, err := s.repository.EventCountsByDay(ctx, since)
	if err != nil {
		logger.Error("Failed to aggregate event counts", "error", err)
		return nil, err
	}

	engagement, err := s.repository.EngagementByDay(ctx, since)
	if err != nil {
		logger.Error("Failed to aggregate engagement metrics", "error", err)
		return nil, err
	}

	topPages, err := s.repository.TopPages(ctx, since)
	if err != nil {
		logger.Error("Failed to aggregate top pages", "error", err)
		return nil, err
	}

	referrers, err := s.repository.ReferrerBreakdown(ctx, since)
	if err != nil {
		logger.Error("Failed to aggregate referrers", "error", err)
		return nil, err
	}

	return &StatsResponse{
		Total:             total,
		TimeRange:         timeRange,
		EventCounts:       eventCounts,
		EngagementMetrics: engagement,
		TopPages:          topPages,
		ReferrerBreakdown: referrers,
	}, nil
}
