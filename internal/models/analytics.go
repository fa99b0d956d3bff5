package models

import "time"

// AnalyticsEvent is append-only; rows are written once and only ever
// read back through aggregate queries.
type AnalyticsEvent struct {
	ID        uint   `gorm:"primaryKey"`
	EventName string `gorm:"not null;index"`
	UserID    string
	SessionID string
	PageURL   string
	Referrer  string
	// Properties carries the free-form JSON payload supplied by the client.
	Properties string
	CreatedAt  time.Time `gorm:"not null;index"`
}
