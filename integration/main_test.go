package integration

import (
	"crypto/sha256"
	"net/http/httptest"
	"time"

	"github.com/akeren/waitlist-api/config"
	"github.com/akeren/waitlist-api/config/router"
	"github.com/akeren/waitlist-api/domain"
	"github.com/akeren/waitlist-api/internal/log"
	"github.com/akeren/waitlist-api/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// testAdminAPIKey is the shared admin secret wired into every test
// application. Requests must present it on the x-api-key header.
const testAdminAPIKey = "integration-admin-key-7f3c91d2"

type testApplication struct {
	db     *gorm.DB
	server *httptest.Server
}

// newTestApplication boots the full HTTP stack against an isolated
// in-memory SQLite database. dbName keeps concurrent suites from
// sharing state through the shared cache.
func newTestApplication(dbName string) (*testApplication, error) {
	db, err := gorm.Open(sqlite.Open("file:"+dbName+"?mode=memory&cache=shared"), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(models.ModelRegistry...); err != nil {
		return nil, err
	}

	logger := log.NewLoggerWithJSONOutput()

	appConfig := &config.ApplicationConfig{
		DB:             db,
		Logger:         logger,
		AdminKeyDigest: sha256.Sum256([]byte(testAdminAPIKey)),
	}

	appConfig.RouterService = router.CreateRouterService(logger, nil, &router.RouterConfig{
		RateLimitRequests: 1000,
		RateLimitWindow:   time.Minute,
		RequestTimeout:    30 * time.Second,
	})

	domain.SetupCoreDomain(appConfig)

	return &testApplication{
		db:     db,
		server: httptest.NewServer(appConfig.RouterService.GetEngine()),
	}, nil
}

func (app *testApplication) Close() {
	if app.server != nil {
		app.server.Close()
	}
	if app.db != nil {
		sqlDB, _ := app.db.DB()
		sqlDB.Close()
	}
}
