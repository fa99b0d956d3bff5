package waitlist

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/akeren/waitlist-api/domain/email"
	"github.com/akeren/waitlist-api/internal/log"
	"github.com/akeren/waitlist-api/internal/models"
	"github.com/akeren/waitlist-api/pkg/constants"
	apperrors "github.com/akeren/waitlist-api/pkg/errors"
	"github.com/akeren/waitlist-api/pkg/referral"
)

// Export formats
const (
	ExportFormatCSV  = "csv"
	ExportFormatJSON = "json"
)

// referralCodeAttempts bounds retries when a freshly generated code
// collides with an existing one.
const referralCodeAttempts = 3

type WaitlistService interface {
	// Signup creates a new waitlist entry, generates its referral code,
	// and records referral attribution when a known code is supplied.
	Signup(ctx context.Context, req *CreateWaitlistEntryRequest) (*SignupResponse, error)

	// ListEntries returns the filtered, sorted page plus totals.
	ListEntries(ctx context.Context, filter *EntryFilter) (*ListEntriesResponse, error)

	// UpdateStatus sets the status of one entry to a valid enum value.
	UpdateStatus(ctx context.Context, id uint, req *UpdateStatusRequest) error

	// DeleteEntry removes one entry; absent IDs still report success.
	DeleteEntry(ctx context.Context, id uint) error

	// BulkAction applies approve/reject/delete to a non-empty ID set.
	BulkAction(ctx context.Context, req *BulkActionRequest) error

	// Export renders every entry as CSV or JSON for download.
	Export(ctx context.Context, format string) (body []byte, contentType, filename string, err error)

	// Stats returns status/verified/referred aggregate counts.
	Stats(ctx context.Context) (*WaitlistStatsResponse, error)
}

type waitlistService struct {
	logger     *log.Logger
	repository WaitlistRepository
	emails     email.EmailService
}

func NewWaitlistService(logger *log.Logger, repository WaitlistRepository, emails email.EmailService) WaitlistService {
	return &waitlistService{logger: logger, repository: repository, emails: emails}
}

func (s *waitlistService) Signup(ctx context.Context, req *CreateWaitlistEntryRequest) (*SignupResponse, error) {
	logger := log.GetLoggerInstanceFromContext(ctx, s.logger)

	if req == nil {
		logger.Error("Signup received empty request")
		return nil, apperrors.NewInvalidRequestError("request cannot be nil", nil)
	}

	entryModel := ToWaitlistEntryModel(req)

	var referrer *models.WaitlistEntry
	if req.ReferralCode != "" {
		found, err := s.repository.FindEntryByReferralCode(ctx, req.ReferralCode)
		if err == nil {
			referrer = found
			entryModel.ReferredBy = found.ReferralCode
		} else if apperrors.GetErrorType(err) != apperrors.ErrorTypeNotFound {
			logger.Error("Failed to resolve referral code", "error", err)
			return nil, err
		}
		// Unknown codes are dropped; signups never fail over attribution.
	}

	entry, err := s.createWithFreshCode(ctx, entryModel)
	if err != nil {
		logger.Error("Failed to create waitlist entry", "error", err)
		return nil, err
	}

	s.sendSignupEmails(ctx, entry, referrer)

	response := ToSignupResponse(entry)
	return &response, nil
}

func (s *waitlistService) createWithFreshCode(ctx context.Context, entryModel *models.WaitlistEntry) (*models.WaitlistEntry, error) {
	var lastErr error

	for attempt := 0; attempt < referralCodeAttempts; attempt++ {
		code, err := referral.NewCode()
		if err != nil {
			return nil, apperrors.NewInternalServerError("unable to generate referral code", err)
		}
		entryModel.ReferralCode = code

		entry, err := s.repository.CreateEntry(ctx, entryModel)
		if err == nil {
			return entry, nil
		}

		lastErr = err

		// A duplicate email is a real conflict; a duplicate code just means
		// the generator got unlucky and should try again.
		if !isReferralCodeCollision(err) {
			return nil, err
		}
	}

	return nil, lastErr
}

func isReferralCodeCollision(err error) bool {
	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) || appErr.Type != apperrors.ErrorTypeConflict || appErr.Err == nil {
		return false
	}
	return strings.Contains(strings.ToLower(appErr.Err.Error()), "referral_code")
}

func (s *waitlistService) sendSignupEmails(ctx context.Context, entry *models.WaitlistEntry, referrer *models.WaitlistEntry) {
	if s.emails == nil {
		return
	}

	logger := log.GetLoggerInstanceFromContext(ctx, s.logger)

	err := s.emails.SendWelcome(ctx, entry.Email, email.WelcomeEmailData{
		Name:         entry.Name,
		ReferralCode: entry.ReferralCode,
	})
	if err != nil {
		logger.Error("Welcome email delivery failed", "error", err)
	}

	if referrer == nil {
		return
	}

	err = s.emails.SendReferralSuccess(ctx, referrer.Email, email.ReferralSuccessEmailData{
		Name:         referrer.Name,
		ReferralCode: referrer.ReferralCode,
		ReferredName: entry.Name,
	})
	if err != nil {
		logger.Error("Referral-success email delivery failed", "error", err)
	}
}

func (s *waitlistService) ListEntries(ctx context.Context, filter *EntryFilter) (*ListEntriesResponse, error) {
	logger := log.GetLoggerInstanceFromContext(ctx, s.logger)

	if filter == nil {
		filter = &EntryFilter{}
	}
	if filter.Page < 1 {
		filter.Page = 1
	}
	filter.PageSize = constants.DefaultPageSize

	if filter.Status != "" && !models.IsValidWaitlistStatus(filter.Status) {
		return nil, apperrors.NewInvalidRequestError("invalid status filter", nil)
	}

	entries, total, err := s.repository.ListEntries(ctx, filter)
	if err != nil {
		logger.Error("Failed to list waitlist entries", "error", err)
		return nil, err
	}

	responses := make([]WaitlistEntryResponse, 0, len(entries))
	for _, entry := range entries {
		responses = append(responses, ToWaitlistEntryResponse(entry))
	}

	pageSize := int64(filter.PageSize)
	totalPages := (total + pageSize - 1) / pageSize

	return &ListEntriesResponse{
		Entries:    responses,
		Total:      total,
		TotalPages: totalPages,
		Page:       filter.Page,
	}, nil
}

func (s *waitlistService) UpdateStatus(ctx context.Context, id uint, req *UpdateStatusRequest) error {
	logger := log.GetLoggerInstanceFromContext(ctx, s.logger)

	if id == 0 {
		return apperrors.NewInvalidRequestError("invalid entry ID", nil)
	}
	if req == nil || !models.IsValidWaitlistStatus(req.Status) {
		return apperrors.NewInvalidRequestError(
			fmt.Sprintf("status must be one of %v", models.WaitlistStatuses), nil)
	}

	if err := s.repository.UpdateStatus(ctx, id, req.Status); err != nil {
		logger.Error("Failed to update waitlist entry status", "id", id, "error", err)
		return err
	}

	return nil
}

func (s *waitlistService) DeleteEntry(ctx context.Context, id uint) error {
	logger := log.GetLoggerInstanceFromContext(ctx, s.logger)

	if id == 0 {
		return apperrors.NewInvalidRequestError("invalid entry ID", nil)
	}

	if err := s.repository.DeleteEntry(ctx, id); err != nil {
		logger.Error("Failed to delete waitlist entry", "id", id, "error", err)
		return err
	}

	return nil
}

func (s *waitlistService) BulkAction(ctx context.Context, req *BulkActionRequest) error {
	logger := log.GetLoggerInstanceFromContext(ctx, s.logger)

	if req == nil || len(req.IDs) == 0 {
		return apperrors.NewInvalidRequestError("ids must be a non-empty list", nil)
	}

	var err error
	switch req.Action {
	case BulkActionApprove:
		err = s.repository.BulkUpdateStatus(ctx, req.IDs, models.WaitlistStatusApproved)
	case BulkActionReject:
		err = s.repository.BulkUpdateStatus(ctx, req.IDs, models.WaitlistStatusRejected)
	case BulkActionDelete:
		err = s.repository.BulkDelete(ctx, req.IDs)
	default:
		return apperrors.NewInvalidRequestError("unrecognized bulk action", nil)
	}

	if err != nil {
		logger.Error("Bulk action failed", "action", req.Action, "error", err)
		return err
	}

	return nil
}

var csvHeader = []string{
	"id", "email", "name", "company", "role", "interests",
	"referral_code", "referred_by", "status", "verified", "created_at",
}

func (s *waitlistService) Export(ctx context.Context, format string) ([]byte, string, string, error) {
	logger := log.GetLoggerInstanceFromContext(ctx, s.logger)

	if format == "" {
		format = ExportFormatCSV
	}
	if format != ExportFormatCSV && format != ExportFormatJSON {
		return nil, "", "", apperrors.NewInvalidRequestError("format must be csv or json", nil)
	}

	entries, err := s.repository.GetAllEntries(ctx)
	if err != nil {
		logger.Error("Failed to export waitlist entries", "error", err)
		return nil, "", "", err
	}

	stamp := time.Now().UTC().Format("2006-01-02")

	if format == ExportFormatJSON {
		responses := make([]WaitlistEntryResponse, 0, len(entries))
		for _, entry := range entries {
			responses = append(responses, ToWaitlistEntryResponse(entry))
		}

		body, err := json.MarshalIndent(responses, "", "  ")
		if err != nil {
			return nil, "", "", apperrors.NewInternalServerError("unable to encode export", err)
		}
		return body, "application/json", "waitlist-" + stamp + ".json", nil
	}

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	_ = writer.Write(csvHeader)
	for _, entry := range entries {
		_ = writer.Write([]string{
			strconv.FormatUint(uint64(entry.ID), 10),
			entry.Email,
			entry.Name,
			entry.Company,
			entry.Role,
			entry.Interests,
			entry.ReferralCode,
			entry.ReferredBy,
			entry.Status,
			strconv.FormatBool(entry.Verified),
			entry.CreatedAt.Format(constants.RFC3339DateTimeFormat),
		})
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, "", "", apperrors.NewInternalServerError("unable to encode export", err)
	}

	return buf.Bytes(), "text/csv", "waitlist-" + stamp + ".csv", nil
}

func (s *waitlistService) Stats(ctx context.Context) (*WaitlistStatsResponse, error) {
	logger := log.GetLoggerInstanceFromContext(ctx, s.logger)

	byStatus, verified, referred, err := s.repository.CountByStatus(ctx)
	if err != nil {
		logger.Error("Failed to aggregate waitlist stats", "error", err)
		return nil, err
	}

	var total int64
	for _, count := range byStatus {
		total += count
	}

	return &WaitlistStatsResponse{
		Total:    total,
		ByStatus: byStatus,
		Verified: verified,
		Referred: referred,
	}, nil
}
