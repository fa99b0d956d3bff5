package analytics

import (
	"time"

	"github.com/akeren/waitlist-api/config/router"
	"github.com/akeren/waitlist-api/internal/log"
	apperrors "github.com/akeren/waitlist-api/pkg/errors"
	"github.com/akeren/waitlist-api/pkg/ratelimit"
	"gorm.io/gorm"
)

// NewAnalyticsController mounts event ingestion and the public stats
// endpoint.
func NewAnalyticsController(
	db *gorm.DB,
	logger *log.Logger,
) *router.RESTController {

	return router.NewVersionedRESTController(
		"AnalyticsController",
		"v1",
		"/",
		func(rs *router.RouterService, c *router.RESTController) {
			repository := NewAnalyticsRepository(db)
			service := NewAnalyticsService(logger, repository)

			ingestLimiter := createIngestRateLimiter()

			rs.AddPostHandler(c, ingestLimiter, "events", trackEventHandler(service))
			rs.AddGetHandler(c, nil, "stats", statsHandler(service))
		},
	)
}

func createIngestRateLimiter() ratelimit.RateLimiter {
	const ingestRequestsPerMinute = 120 // Frontends fire events liberally

	config := &ratelimit.RateLimitConfig{
		Requests: ingestRequestsPerMinute,
		Window:   time.Minute,
		Redis:    nil,
		Logger:   nil,
	}

	return ratelimit.NewRateLimiter(config)
}

func trackEventHandler(service AnalyticsService) router.HandlerFunction {
	return func(ctx *router.RequestContext) *router.ServiceResult {
		logger := router.GetLogger(ctx)

		var req TrackEventRequest

		if err := ctx.ShouldBindJSON(&req); err != nil {
			logger.Error("Failed to bind request", "error", err)

			validationErrors := apperrors.FormatValidationErrors(err, &req)
			if len(validationErrors) > 0 {
				return router.BadRequestResult("Invalid request payload", validationErrors)
			}

			return router.BadRequestResult("Invalid request body", nil)
		}

		if err := service.TrackEvent(ctx.Request.Context(), &req); err != nil {
			return router.ErrorResult(
				apperrors.HTTPStatusCode(err),
				apperrors.GetHumanReadableMessage(err),
				nil,
			)
		}

		return router.CreatedResult(nil, "Analytics event")
	}
}

func statsHandler(service AnalyticsService) router.HandlerFunction {
	return func(ctx *router.RequestContext) *router.ServiceResult {
		response, err := service.Stats(ctx.Request.Context(), ctx.Query("range"))
		if err != nil {
			return router.ErrorResult(
				apperrors.HTTPStatusCode(err),
				apperrors.GetHumanReadableMessage(err),
				nil,
			)
		}

		return router.OKResult(response, "Stats retrieved successfully")
	}
}
