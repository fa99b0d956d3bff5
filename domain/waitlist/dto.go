package waitlist

import (
	"github.com/akeren/waitlist-api/internal/models"
	"github.com/akeren/waitlist-api/pkg/constants"
)

type CreateWaitlistEntryRequest struct {
	Email        string `json:"email" binding:"required,email,max=255"`
	Name         string `json:"name" binding:"omitempty,max=255"`
	Company      string `json:"company" binding:"omitempty,max=255"`
	Role         string `json:"role" binding:"omitempty,max=255"`
	Interests    string `json:"interests" binding:"omitempty,max=1000"`
	ReferralCode string `json:"referralCode" binding:"omitempty,alphanum,max=16"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending approved rejected"`
}

// Bulk action names
const (
	BulkActionApprove = "approve"
	BulkActionReject  = "reject"
	BulkActionDelete  = "delete"
)

type BulkActionRequest struct {
	Action string `json:"action" binding:"required,oneof=approve reject delete"`
	IDs    []uint `json:"ids" binding:"required,min=1,dive,gt=0"`
}

type SignupResponse struct {
	ID           uint   `json:"id"`
	Email        string `json:"email"`
	Status       string `json:"status"`
	ReferralCode string `json:"referral_code"`
}

type WaitlistEntryResponse struct {
	ID           uint   `json:"id"`
	Email        string `json:"email"`
	Name         string `json:"name,omitempty"`
	Company      string `json:"company,omitempty"`
	Role         string `json:"role,omitempty"`
	Interests    string `json:"interests,omitempty"`
	ReferralCode string `json:"referral_code,omitempty"`
	ReferredBy   string `json:"referred_by,omitempty"`
	Status       string `json:"status"`
	Verified     bool   `json:"verified"`
	CreatedAt    string `json:"created_at"`
	UpdatedAt    string `json:"updated_at"`
}

type ListEntriesResponse struct {
	Entries    []WaitlistEntryResponse `json:"entries"`
	Total      int64                   `json:"total"`
	TotalPages int64                   `json:"total_pages"`
	Page       int                     `json:"page"`
}

type WaitlistStatsResponse struct {
	Total    int64            `json:"total"`
	ByStatus map[string]int64 `json:"by_status"`
	Verified int64            `json:"verified"`
	Referred int64            `json:"referred"`
}

// ========================================
// Mappers
// ========================================

func ToWaitlistEntryModel(req *CreateWaitlistEntryRequest) *models.WaitlistEntry {
	if req == nil {
		return nil
	}
	return &models.WaitlistEntry{
		Email:     req.Email,
		Name:      req.Name,
		Company:   req.Company,
		Role:      req.Role,
		Interests: req.Interests,
		Status:    models.WaitlistStatusPending,
	}
}

func ToSignupResponse(entry *models.WaitlistEntry) SignupResponse {
	if entry == nil {
		return SignupResponse{}
	}
	return SignupResponse{
		ID:           entry.ID,
		Email:        entry.Email,
		Status:       entry.Status,
		ReferralCode: entry.ReferralCode,
	}
}

func ToWaitlistEntryResponse(entry *models.WaitlistEntry) WaitlistEntryResponse {
	if entry == nil {
		return WaitlistEntryResponse{}
	}
	return WaitlistEntryResponse{
		ID:           entry.ID,
		Email:        entry.Email,
		Name:         entry.Name,
		Company:      entry.Company,
		Role:         entry.Role,
		Interests:    entry.Interests,
		ReferralCode: entry.ReferralCode,
		ReferredBy:   entry.ReferredBy,
		Status:       entry.Status,
		Verified:     entry.Verified,
		CreatedAt:    entry.CreatedAt.Format(constants.RFC3339DateTimeFormat),
		UpdatedAt:    entry.UpdatedAt.Format(constants.RFC3339DateTimeFormat),
	}
}
