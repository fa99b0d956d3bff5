package monitoring

import (
	"context"
	"time"

	"github.com/akeren/waitlist-api/config/router"
	"github.com/akeren/waitlist-api/internal/log"
	"github.com/akeren/waitlist-api/pkg/ratelimit"
	"gorm.io/gorm"
)

type Cache interface {
	Ping(ctx context.Context) error
}

// Health status values
const (
	HealthStatusOK       = "ok"
	HealthStatusDegraded = "degraded"
)

type DatabaseHealth struct {
	Connected bool   `json:"connected"`
	Error     string `json:"error,omitempty"`
}

type HealthStatus struct {
	Status   string         `json:"status"`
	Database DatabaseHealth `json:"database"`
	Cache    *bool          `json:"cache,omitempty"` // nil when not configured
	Uptime   int            `json:"uptime"`          // seconds
}

type MonitoringController struct {
	db        *gorm.DB
	logger    *log.Logger
	cache     Cache
	startTime time.Time
}

func NewMonitoringController(db *gorm.DB, logger *log.Logger, cache Cache) *router.RESTController {
	ctrl := &MonitoringController{
		db:        db,
		logger:    logger,
		cache:     cache,
		startTime: time.Now(),
	}

	return router.NewRESTController(
		"MonitoringController",
		"/",
		func(routerService *router.RouterService, controller *router.RESTController) {

			monitoringRateLimiter := createMonitoringRateLimiter()

			routerService.AddGetHandler(controller, monitoringRateLimiter, "", func(c *router.RequestContext) *router.ServiceResult {
				return ctrl.monitor(c)
			})

			routerService.AddGetHandler(controller, monitoringRateLimiter, "health", func(c *router.RequestContext) *router.ServiceResult {
				return ctrl.healthCheck(routerService, c)
			})
		},
	)
}

func createMonitoringRateLimiter() ratelimit.RateLimiter {
	const monitoringRequestsPerMinute = 10 // More restrictive than default

	config := &ratelimit.RateLimitConfig{
		Requests: monitoringRequestsPerMinute,
		Window:   time.Minute,
		Redis:    nil,
		Logger:   nil,
	}

	return ratelimit.NewRateLimiter(config)
}

func (ctrl *MonitoringController) monitor(
	c *router.RequestContext,
) *router.ServiceResult {
	return &router.ServiceResult{
		StatusCode: 200,
		Data:       "waitlist-api is operational.",
		Message:    "Monitoring successful",
	}
}

func (ctrl *MonitoringController) healthCheck(
	routerService *router.RouterService,
	c *router.RequestContext,
) *router.ServiceResult {
	logger := routerService.GetLogger(c)
	health := ctrl.performHealthChecks(c.Request.Context(), logger)

	statusCode := 200
	if health.Status != HealthStatusOK {
		statusCode = 503
	}

	return &router.ServiceResult{
		StatusCode: statusCode,
		Data:       health,
		Message:    "waitlist-api health check completed",
	}
}

func (ctrl *MonitoringController) performHealthChecks(ctx context.Context, logger *log.Logger) HealthStatus {
	health := HealthStatus{
		Status: HealthStatusOK,
		Uptime: int(time.Since(ctrl.startTime).Seconds()),
	}

	if err := ctrl.checkDatabase(ctx); err != nil {
		logger.Error("Database health check failed", "error", err)
		health.Status = HealthStatusDegraded
		health.Database = DatabaseHealth{Connected: false, Error: err.Error()}
	} else {
		health.Database = DatabaseHealth{Connected: true}
	}

	if ctrl.cache != nil {
		ok := ctrl.cache.Ping(ctx) == nil
		health.Cache = &ok
		if !ok {
			logger.Error("Cache health check failed")
		}
	}

	return health
}

func (ctrl *MonitoringController) checkDatabase(ctx context.Context) error {
	sqlDB, err := ctrl.db.DB()
	if err != nil {
		return err
	}

	return sqlDB.PingContext(ctx)
}
