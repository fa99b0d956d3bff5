package analytics

import (
	"context"
	"testing"
	"time"

	"github.com/akeren/waitlist-api/internal/log"
	"github.com/akeren/waitlist-api/internal/models"
	apperrors "github.com/akeren/waitlist-api/pkg/errors"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestAnalyticsService_TrackEvent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := NewMockAnalyticsRepository(ctrl)
	logger := log.NewLoggerWithJSONOutput()
	service := NewAnalyticsService(logger, mockRepo)

	t.Run("records the event with serialized properties", func(t *testing.T) {
		req := &TrackEventRequest{
			Event:     "page_view",
			SessionID: "sess-1",
			Page:      "/pricing",
			Properties: map[string]any{
				"plan": "pro",
			},
		}

		mockRepo.EXPECT().
			CreateEvent(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, event *models.AnalyticsEvent) error {
				assert.Equal(t, "page_view", event.EventName)
				assert.Equal(t, "sess-1", event.SessionID)
				assert.Equal(t, "/pricing", event.PageURL)
				assert.JSONEq(t, `{"plan":"pro"}`, event.Properties)
				return nil
			})

		err := service.TrackEvent(context.Background(), req)

		assert.NoError(t, err)
	})

	t.Run("nil request is rejected", func(t *testing.T) {
		err := service.TrackEvent(context.Background(), nil)

		assert.Error(t, err)
		assert.Equal(t, apperrors.ErrorTypeInvalidRequest, apperrors.GetErrorType(err))
	})

	t.Run("repository error", func(t *testing.T) {
		mockRepo.EXPECT().
			CreateEvent(gomock.Any(), gomock.Any()).
			Return(apperrors.NewDatabaseError("database error", nil))

		err := service.TrackEvent(context.Background(), &TrackEventRequest{Event: "signup"})

		assert.Error(t, err)
	})
}

func TestAnalyticsService_Stats(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := NewMockAnalyticsRepository(ctrl)
	logger := log.NewLoggerWithJSONOutput()

	fixedNow := time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)
	service := &analyticsService{
		logger:     logger,
		repository: mockRepo,
		now:        func() time.Time { return fixedNow },
	}

	expectAggregates := func(match func(since *time.Time)) {
		mockRepo.EXPECT().CountWaitlistEntries(gomock.Any()).Return(int64(120), nil)
		mockRepo.EXPECT().
			EventCountsByDay(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, since *time.Time) ([]EventCountRow, error) {
				match(since)
				return []EventCountRow{{Event: "page_view", Date: "2025-03-15", Count: 30}}, nil
			})
		mockRepo.EXPECT().EngagementByDay(gomock.Any(), gomock.Any()).Return(nil, nil)
		mockRepo.EXPECT().TopPages(gomock.Any(), gomock.Any()).Return(nil, nil)
		mockRepo.EXPECT().ReferrerBreakdown(gomock.Any(), gomock.Any()).Return(nil, nil)
	}

	t.Run("empty range defaults to seven days", func(t *testing.T) {
		expectAggregates(func(since *time.Time) {
			assert.NotNil(t, since)
			assert.Equal(t, fixedNow.Add(-7*24*time.Hour), *since)
		})

		result, err := service.Stats(context.Background(), "")

		assert.NoError(t, err)
		assert.Equal(t, TimeRange7d, result.TimeRange)
		assert.Equal(t, int64(120), result.Total)
		assert.Len(t, result.EventCounts, 1)
	})

	t.Run("24h range bounds aggregation to the last day", func(t *testing.T) {
		expectAggregates(func(since *time.Time) {
			assert.NotNil(t, since)
			assert.Equal(t, fixedNow.Add(-24*time.Hour), *since)
		})

		result, err := service.Stats(context.Background(), TimeRange24h)

		assert.NoError(t, err)
		assert.Equal(t, TimeRange24h, result.TimeRange)
	})

	t.Run("all range imposes no lower bound", func(t *testing.T) {
		expectAggregates(func(since *time.Time) {
			assert.Nil(t, since)
		})

		result, err := service.Stats(context.Background(), TimeRangeAll)

		assert.NoError(t, err)
		assert.Equal(t, TimeRangeAll, result.TimeRange)
	})

	t.Run("unrecognized range is rejected before any query", func(t *testing.T) {
		result, err := service.Stats(context.Background(), "90d")

		assert.Error(t, err)
		assert.Nil(t, result)
		assert.Equal(t, apperrors.ErrorTypeInvalidRequest, apperrors.GetErrorType(err))
	})

	t.Run("aggregate failure surfaces the repository error", func(t *testing.T) {
		mockRepo.EXPECT().CountWaitlistEntries(gomock.Any()).Return(int64(0), nil)
		mockRepo.EXPECT().
			EventCountsByDay(gomock.Any(), gomock.Any()).
			Return(nil, apperrors.NewDatabaseError("database error", nil))

		result, err := service.Stats(context.Background(), TimeRange30d)

		assert.Error(t, err)
		assert.Nil(t, result)
	})
}
