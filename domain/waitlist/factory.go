package waitlist

import (
	"crypto/sha256"

	"github.com/akeren/waitlist-api/config/router"
	"github.com/akeren/waitlist-api/domain/email"
	"github.com/akeren/waitlist-api/internal/log"
	"gorm.io/gorm"
)

type WaitlistServiceFactory interface {
	CreateService() WaitlistService
	CreateController() *router.RESTController
	CreateAdminController(keyDigest [sha256.Size]byte) *router.RESTController
}

type DefaultWaitlistServiceFactory struct {
	db     *gorm.DB
	logger *log.Logger
	emails email.EmailService
}

func NewWaitlistServiceFactory(db *gorm.DB, logger *log.Logger, emails email.EmailService) WaitlistServiceFactory {
	return &DefaultWaitlistServiceFactory{
		db:     db,
		logger: logger,
		emails: emails,
	}
}

func (f *DefaultWaitlistServiceFactory) CreateService() WaitlistService {
	repository := NewWaitlistRepository(f.db)
	return NewWaitlistService(f.logger, repository, f.emails)
}

func (f *DefaultWaitlistServiceFactory) CreateController() *router.RESTController {
	return NewWaitlistController(f.db, f.logger, f.emails)
}

func (f *DefaultWaitlistServiceFactory) CreateAdminController(keyDigest [sha256.Size]byte) *router.RESTController {
	return NewWaitlistAdminController(f.db, f.logger, keyDigest)
}
