package entities

import (
	"errors"
	"time"
)

var ErrQuotaAlreadyUsed = errors.New("free quota already used for this lead")

// MonthlyFreeQuotaSqft is the free square footage every seller receives at
// the start of each quota cycle.
const MonthlyFreeQuotaSqft = 500.0

// SellerStatusApproved is the registration status required before a seller
// counts towards brand exclusivity or may purchase leads.
const SellerStatusApproved = "approved"

// FreeQuota tracks a seller's monthly free-square-footage allowance.
type FreeQuota struct {
	CurrentMonthQuota float64   `json:"current_month_quota"`
	UsedQuota         float64   `json:"used_quota"`
	NextResetDate     time.Time `json:"next_reset_date"`
}

// QuotaUsageEntry is one append-only ledger line recording free quota spent
// on a lead. At most one entry exists per (seller, lead) pair.
type QuotaUsageEntry struct {
	LeadID   string    `json:"lead_id"`
	SqftUsed float64   `json:"sqft_used"`
	Date     time.Time `json:"date"`
}

// Seller is the marketplace participant buying lead slots.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Concurrency:
//   - Version guards quota mutations the same way Lead.Version guards slot
//     mutations; both are written in a single settlement transaction.
type Seller struct {
	ID          string `json:"id"`
	CompanyName string `json:"company_name"`
	City        string `json:"city"`
	Brand       string `json:"brand"`
	Status      string `json:"status"`
	IsActive    bool   `json:"is_active"`

	FreeQuota  FreeQuota         `json:"free_quota"`
	QuotaUsage []QuotaUsageEntry `json:"quota_usage"`
	Leads      []string          `json:"leads"`

	Version   int64     `json:"version"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsEligible reports whether the seller may participate in purchases.
func (s *Seller) IsEligible() bool {
	return s.IsActive && s.Status == SellerStatusApproved
}

// CheckQuotaReset resets the monthly allowance when the reset date has
// passed and schedules the next reset one month out. Calling it before the
// reset is due is a no-op; it reports whether anything changed.
func (s *Seller) CheckQuotaReset(now time.Time) bool {
	if s.FreeQuota.NextResetDate.IsZero() || now.Before(s.FreeQuota.NextResetDate) {
		return false
	}
	s.FreeQuota.CurrentMonthQuota = MonthlyFreeQuotaSqft
	s.FreeQuota.UsedQuota = 0
	s.FreeQuota.NextResetDate = now.AddDate(0, 1, 0)
	s.UpdatedAt = now
	return true
}

// FreeQuotaUsedForLead reports whether free quota was already applied to
// the given lead.
func (s *Seller) FreeQuotaUsedForLead(leadID string) bool {
	for _, u := range s.QuotaUsage {
		if u.LeadID == leadID {
			return true
		}
	}
	return false
}

// ApplyFreeQuota debits the monthly allowance and appends a usage ledger
// entry. It enforces at-most-once per lead and fails with
// ErrQuotaAlreadyUsed on a second application, leaving the quota untouched.
// Callers must ensure sqft does not exceed CurrentMonthQuota; the ledger
// does not clamp.
func (s *Seller) ApplyFreeQuota(leadID string, sqft float64, now time.Time) error {
	if s.FreeQuotaUsedForLead(leadID) {
		return ErrQuotaAlreadyUsed
	}
	s.FreeQuota.CurrentMonthQuota -= sqft
	s.FreeQuota.UsedQuota += sqft
	s.QuotaUsage = append(s.QuotaUsage, QuotaUsageEntry{LeadID: leadID, SqftUsed: sqft, Date: now})
	s.UpdatedAt = now
	return nil
}

// RecordLead appends the lead to the seller's purchased-leads list if absent.
func (s *Seller) RecordLead(leadID string) {
	for _, id := range s.Leads {
		if id == leadID {
			return
		}
	}
	s.Leads = append(s.Leads, leadID)
}
