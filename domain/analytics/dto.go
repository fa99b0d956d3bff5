package analytics

import (
	"encoding/json"

	"github.com/akeren/waitlist-api/internal/models"
)

// Stats time ranges
const (
	TimeRange24h = "24h"
	TimeRange7d  = "7d"
	TimeRange30d = "30d"
	TimeRangeAll = "all"
)

const DefaultTimeRange = TimeRange7d

type TrackEventRequest struct {
	Event      string         `json:"event" binding:"required,max=255"`
	UserID     string         `json:"userId" binding:"omitempty,max=255"`
	SessionID  string         `json:"sessionId" binding:"omitempty,max=255"`
	Page       string         `json:"page" binding:"omitempty,max=2048"`
	Referrer   string         `json:"referrer" binding:"omitempty,max=2048"`
	Properties map[string]any `json:"properties" binding:"omitempty"`
}

type EventCountRow struct {
	Event string `json:"event"`
	Date  string `json:"date"`
	Count int64  `json:"count"`
}

type EngagementRow struct {
	Event         string  `json:"event"`
	Date          string  `json:"date"`
	AvgPerSession float64 `json:"avg_per_session"`
}

type PageCountRow struct {
	Page  string `json:"page"`
	Count int64  `json:"count"`
}

type ReferrerRow struct {
	Referrer string `json:"referrer"`
	Count    int64  `json:"count"`
}

type StatsResponse struct {
	Total             int64           `json:"total"`
	TimeRange         string          `json:"time_range"`
	EventCounts       []EventCountRow `json:"event_counts"`
	EngagementMetrics []EngagementRow `json:"engagement_metrics"`
	TopPages          []PageCountRow  `json:"top_pages"`
	ReferrerBreakdown []ReferrerRow   `json:"referrer_breakdown"`
}

func ToAnalyticsEventModel(req *TrackEventRequest) *models.AnalyticsEvent {
	if req == nil {
		return nil
	}

	properties := ""
	if len(req.Properties) > 0 {
		if encoded, err := json.Marshal(req.Properties); err == nil {
			properties = string(encoded)
		}
	}

	return &models.AnalyticsEvent{
		EventName:  req.Event,
		UserID:     req.UserID,
		SessionID:  req.SessionID,
		PageURL:    req.Page,
		Referrer:   req.Referrer,
		Properties: properties,
	}
}
