package models

import "gorm.io/gorm"

// Waitlist entry statuses
const (
	WaitlistStatusPending  = "pending"
	WaitlistStatusApproved = "approved"
	WaitlistStatusRejected = "rejected"
)

// WaitlistStatuses lists every accepted status value.
var WaitlistStatuses = []string{
	WaitlistStatusPending,
	WaitlistStatusApproved,
	WaitlistStatusRejected,
}

func IsValidWaitlistStatus(status string) bool {
	for _, s := range WaitlistStatuses {
		if s == status {
			return true
		}
	}
	return false
}

type WaitlistEntry struct {
	gorm.Model
	Email        string `gorm:"not null;unique;index"`
	Name         string
	Company      string
	Role         string
	Interests    string
	ReferralCode string `gorm:"uniqueIndex"`
	// ReferredBy holds the referral code of the entry that brought this
	// signup in. Attribution only; not a foreign key.
	ReferredBy string
	Status     string `gorm:"not null;default:pending;index"`
	Verified   bool   `gorm:"not null;default:false"`
}
