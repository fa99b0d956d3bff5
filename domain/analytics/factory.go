package analytics

import (
	"github.com/akeren/waitlist-api/config/router"
	"github.com/akeren/waitlist-api/internal/log"
	"gorm.io/gorm"
)

type AnalyticsServiceFactory interface {
	CreateService() AnalyticsService
	CreateController() *router.RESTController
}

type DefaultAnalyticsServiceFactory struct {
	db     *gorm.DB
	logger *log.Logger
}

func NewAnalyticsServiceFactory(db *gorm.DB, logger *log.Logger) AnalyticsServiceFactory {
	return &DefaultAnalyticsServiceFactory{
		db:     db,
		logger: logger,
	}
}

func (f *DefaultAnalyticsServiceFactory) CreateService() AnalyticsService {
	repository := NewAnalyticsRepository(f.db)
	return NewAnalyticsService(f.logger, repository)
}

func (f *DefaultAnalyticsServiceFactory) CreateController() *router.RESTController {
	return NewAnalyticsController(f.db, f.logger)
}
