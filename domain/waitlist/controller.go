package waitlist

import (
	"crypto/sha256"
	"time"

	"github.com/akeren/waitlist-api/config/router"
	"github.com/akeren/waitlist-api/domain/admin"
	"github.com/akeren/waitlist-api/domain/email"
	"github.com/akeren/waitlist-api/internal/log"
	apperrors "github.com/akeren/waitlist-api/pkg/errors"
	"github.com/akeren/waitlist-api/pkg/ratelimit"
	"gorm.io/gorm"
)

const dateParamLayout = "2006-01-02"

// NewWaitlistController mounts the public signup endpoint.
func NewWaitlistController(
	db *gorm.DB,
	logger *log.Logger,
	emails email.EmailService,
) *router.RESTController {

	return router.NewVersionedRESTController(
		"WaitlistController",
		"v1",
		"/waitlist",
		func(rs *router.RouterService, c *router.RESTController) {
			repository := NewWaitlistRepository(db)
			service := NewWaitlistService(logger, repository, emails)

			signupLimiter := createSignupRateLimiter()

			rs.AddPostHandler(c, signupLimiter, "", signupHandler(service))
		},
	)
}

// NewWaitlistAdminController mounts the admin management endpoints behind
// the API key guard.
func NewWaitlistAdminController(
	db *gorm.DB,
	logger *log.Logger,
	keyDigest [sha256.Size]byte,
) *router.RESTController {

	return router.NewVersionedRESTController(
		"WaitlistAdminController",
		"v1",
		"/admin/waitlist",
		func(rs *router.RouterService, c *router.RESTController) {
			repository := NewWaitlistRepository(db)
			// Admin mutations never trigger transactional email.
			service := NewWaitlistService(logger, repository, nil)

			guard := admin.RequireAPIKey(keyDigest, logger)

			rs.AddGetHandler(c, nil, "", listEntriesHandler(service), guard)
			rs.AddGetHandler(c, nil, "/export", exportHandler(service), guard)
			rs.AddGetHandler(c, nil, "/stats", adminStatsHandler(service), guard)
			rs.AddPostHandler(c, nil, "/bulk", bulkActionHandler(service), guard)
			rs.AddPatchHandler(c, nil, "/:id", updateStatusHandler(service), guard)
			rs.AddDeleteHandler(c, nil, "/:id", deleteEntryHandler(service), guard)
		},
	)
}

func createSignupRateLimiter() ratelimit.RateLimiter {
	const signupRequestsPerMinute = 30

	config := &ratelimit.RateLimitConfig{
		Requests: signupRequestsPerMinute,
		Window:   time.Minute,
		Redis:    nil,
		Logger:   nil,
	}

	return ratelimit.NewRateLimiter(config)
}

func signupHandler(service WaitlistService) router.HandlerFunction {
	return func(ctx *router.RequestContext) *router.ServiceResult {
		logger := router.GetLogger(ctx)

		var req CreateWaitlistEntryRequest

		if err := ctx.ShouldBindJSON(&req); err != nil {
			logger.Error("Failed to bind request", "error", err)

			validationErrors := apperrors.FormatValidationErrors(err, &req)
			if len(validationErrors) > 0 {
				return router.BadRequestResult("Invalid request payload: a valid email is required", validationErrors)
			}

			return router.BadRequestResult("Invalid request body: email is required", nil)
		}

		response, err := service.Signup(ctx.Request.Context(), &req)
		if err != nil {
			return router.ErrorResult(
				apperrors.HTTPStatusCode(err),
				apperrors.GetHumanReadableMessage(err),
				nil,
			)
		}

		return router.OKResult(response, "Waitlist entry created successfully")
	}
}

func listEntriesHandler(service WaitlistService) router.HandlerFunction {
	return func(ctx *router.RequestContext) *router.ServiceResult {
		filter, errResult := parseEntryFilter(ctx)
		if errResult != nil {
			return errResult
		}

		response, err := service.ListEntries(ctx.Request.Context(), filter)
		if err != nil {
			return router.ErrorResult(
				apperrors.HTTPStatusCode(err),
				apperrors.GetHumanReadableMessage(err),
				nil,
			)
		}

		return router.OKResult(response, "Waitlist entries retrieved successfully")
	}
}

func parseEntryFilter(ctx *router.RequestContext) (*EntryFilter, *router.ServiceResult) {
	filter := &EntryFilter{
		Search:    ctx.Query("search"),
		Status:    ctx.Query("status"),
		SortField: ctx.Query("sortField"),
		SortOrder: ctx.Query("sortOrder"),
		Page:      1,
	}

	if pageParam := ctx.Query("page"); pageParam != "" {
		page, errResult := router.ParsePositiveIntParam(ctx, "page", pageParam)
		if errResult != nil {
			return nil, errResult
		}
		filter.Page = page
	}

	if startParam := ctx.Query("startDate"); startParam != "" {
		start, err := time.Parse(dateParamLayout, startParam)
		if err != nil {
			return nil, router.BadRequestResult("startDate must be formatted as YYYY-MM-DD", nil)
		}
		filter.StartDate = &start
	}

	if endParam := ctx.Query("endDate"); endParam != "" {
		end, err := time.Parse(dateParamLayout, endParam)
		if err != nil {
			return nil, router.BadRequestResult("endDate must be formatted as YYYY-MM-DD", nil)
		}
		filter.EndDate = &end
	}

	return filter, nil
}

func updateStatusHandler(service WaitlistService) router.HandlerFunction {
	return func(ctx *router.RequestContext) *router.ServiceResult {
		logger := router.GetLogger(ctx)

		id, errResult := router.ParseIDParam(ctx, "id")
		if errResult != nil {
			return errResult
		}

		var req UpdateStatusRequest

		if err := ctx.ShouldBindJSON(&req); err != nil {
			logger.Error("Failed to bind request", "error", err)

			validationErrors := apperrors.FormatValidationErrors(err, &req)
			if len(validationErrors) > 0 {
				return router.BadRequestResult("Invalid request payload", validationErrors)
			}

			return router.BadRequestResult("status must be one of pending, approved, rejected", nil)
		}

		if err := service.UpdateStatus(ctx.Request.Context(), id, &req); err != nil {
			return router.ErrorResult(
				apperrors.HTTPStatusCode(err),
				apperrors.GetHumanReadableMessage(err),
				nil,
			)
		}

		return router.OKResult(nil, "Waitlist entry updated successfully")
	}
}

func deleteEntryHandler(service WaitlistService) router.HandlerFunction {
	return func(ctx *router.RequestContext) *router.ServiceResult {
		id, errResult := router.ParseIDParam(ctx, "id")
		if errResult != nil {
			return errResult
		}

		if err := service.DeleteEntry(ctx.Request.Context(), id); err != nil {
			return router.ErrorResult(
				apperrors.HTTPStatusCode(err),
				apperrors.GetHumanReadableMessage(err),
				nil,
			)
		}

		return router.OKResult(nil, "Waitlist entry deleted successfully")
	}
}

func bulkActionHandler(service WaitlistService) router.HandlerFunction {
	return func(ctx *router.RequestContext) *router.ServiceResult {
		logger := router.GetLogger(ctx)

		var req BulkActionRequest

		if err := ctx.ShouldBindJSON(&req); err != nil {
			logger.Error("Failed to bind request", "error", err)

			validationErrors := apperrors.FormatValidationErrors(err, &req)
			if len(validationErrors) > 0 {
				return router.BadRequestResult("Invalid request payload", validationErrors)
			}

			return router.BadRequestResult("action must be approve, reject, or delete with a non-empty ids list", nil)
		}

		if err := service.BulkAction(ctx.Request.Context(), &req); err != nil {
			return router.ErrorResult(
				apperrors.HTTPStatusCode(err),
				apperrors.GetHumanReadableMessage(err),
				nil,
			)
		}

		return router.OKResult(nil, "Bulk action applied successfully")
	}
}

func exportHandler(service WaitlistService) router.HandlerFunction {
	return func(ctx *router.RequestContext) *router.ServiceResult {
		body, contentType, filename, err := service.Export(ctx.Request.Context(), ctx.Query("format"))
		if err != nil {
			return router.ErrorResult(
				apperrors.HTTPStatusCode(err),
				apperrors.GetHumanReadableMessage(err),
				nil,
			)
		}

		return router.FileDownloadResult(contentType, filename, body)
	}
}

func adminStatsHandler(service WaitlistService) router.HandlerFunction {
	return func(ctx *router.RequestContext) *router.ServiceResult {
		response, err := service.Stats(ctx.Request.Context())
		if err != nil {
			return router.ErrorResult(
				apperrors.HTTPStatusCode(err),
				apperrors.GetHumanReadableMessage(err),
				nil,
			)
		}

		return router.OKResult(response, "Waitlist stats retrieved successfully")
	}
}
