package models

// ModelRegistry is the single source of truth for auto-migration.
var ModelRegistry = []interface{}{
	&WaitlistEntry{},
	&AdminUser{},
	&AdminKey{},
	&AnalyticsEvent{},
}
