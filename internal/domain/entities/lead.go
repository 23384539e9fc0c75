package entities

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidStatus     = errors.New("invalid lead status")
	ErrInvalidTransition = errors.New("invalid lead status transition")
	ErrNotEnoughSlots    = errors.New("not enough available slots")
)

// LeadStatus represents the lifecycle of a lead.
//
// Domain notes:
//   - Transitions are monotone: new -> in-progress -> closed, with
//     cancelled reachable from new or in-progress. Closed and cancelled
//     are terminal.
//   - Historical data contains synonym values written by older frontends
//     ("active", "pending", "sold"). ParseStatus and RepairStatus are the
//     only two places that know the synonym map.

type LeadStatus string

const (
	LeadStatusNew        LeadStatus = "new"
	LeadStatusInProgress LeadStatus = "in-progress"
	LeadStatusClosed     LeadStatus = "closed"
	LeadStatusCancelled  LeadStatus = "cancelled"
)

var statusSynonyms = map[string]LeadStatus{
	"active":  LeadStatusInProgress,
	"pending": LeadStatusNew,
	"sold":    LeadStatusClosed,
}

// ParseStatus normalizes a caller-supplied status through the synonym map
// and validates it against the canonical set. Unknown values fail with
// ErrInvalidStatus rather than being stored as-is.
func ParseStatus(raw string) (LeadStatus, error) {
	if mapped, ok := statusSynonyms[raw]; ok {
		return mapped, nil
	}
	switch s := LeadStatus(raw); s {
	case LeadStatusNew, LeadStatusInProgress, LeadStatusClosed, LeadStatusCancelled:
		return s, nil
	}
	return "", ErrInvalidStatus
}

// RepairStatus normalizes a status value read from storage. Legacy synonym
// values are mapped; anything unrecognized degrades to "new". This leniency
// exists only for historical data drift on the read path; writes always go
// through ParseStatus.
func RepairStatus(raw string) LeadStatus {
	if s, err := ParseStatus(raw); err == nil {
		return s
	}
	return LeadStatusNew
}

// CanTransition reports whether moving from one status to another is
// allowed. Repeating the current status is treated as an idempotent no-op.
func CanTransition(from, to LeadStatus) bool {
	if from == to {
		return true
	}
	switch from {
	case LeadStatusNew:
		return to == LeadStatusInProgress || to == LeadStatusClosed || to == LeadStatusCancelled
	case LeadStatusInProgress:
		return to == LeadStatusClosed || to == LeadStatusCancelled
	}
	return false
}

// QuoteItem is one measured window/door line inside a lead. Items are owned
// by their lead and immutable once the lead exists, except the IsGenerated
// flag which the owning buyer may toggle.
type QuoteItem struct {
	ProductID            string  `json:"product_id"`
	Color                string  `json:"color"`
	InstallationLocation string  `json:"installation_location"`
	Height               float64 `json:"height"`
	Width                float64 `json:"width"`
	Quantity             int     `json:"quantity"`
	Sqft                 float64 `json:"sqft"`
	Remark               string  `json:"remark"`
	IsGenerated          bool    `json:"is_generated"`
}

// PurchaseRecord is one slot bought by a seller. A multi-slot purchase
// appends one record per slot, each carrying an even share of the money
// paid and the free quota applied.
type PurchaseRecord struct {
	SellerID      string          `json:"seller_id"`
	PurchasedAt   time.Time       `json:"purchased_at"`
	PricePaid     decimal.Decimal `json:"price_paid"`
	FreeQuotaUsed float64         `json:"free_quota_used"`
}

type ContactInfo struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

type Address struct {
	Line1   string `json:"line1"`
	City    string `json:"city"`
	State   string `json:"state"`
	Pincode string `json:"pincode"`
}

type ProjectInfo struct {
	Address Address `json:"address"`
}

// Lead is the central aggregate: a buyer's quote request, priced and sold
// in limited slots to sellers.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (buyer_id-index): buyer_id
//
// Concurrency:
//   - Version is the optimistic-concurrency guard. Every mutation is
//     written conditioned on the version it was read at and bumps it.
type Lead struct {
	ID         string `json:"id"`
	BuyerID    string `json:"buyer_id"`
	CategoryID string `json:"category_id"`

	Quotes      []QuoteItem `json:"quotes"`
	ContactInfo ContactInfo `json:"contact_info"`
	ProjectInfo ProjectInfo `json:"project_info"`

	TotalSqft     float64 `json:"total_sqft"`
	TotalQuantity int     `json:"total_quantity"`

	BasePricePerSqft decimal.Decimal `json:"base_price_per_sqft"`
	MaxSlots         int             `json:"max_slots"`
	AvailableSlots   int             `json:"available_slots"`
	DynamicSlotPrice decimal.Decimal `json:"dynamic_slot_price"`
	OverProfit       bool            `json:"over_profit"`
	NegotiatedPrice  decimal.Decimal `json:"negotiated_price"`

	Sellers []PurchaseRecord `json:"sellers"`
	Status  LeadStatus       `json:"status"`

	Version   int64     `json:"version"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// HasSeller reports whether the seller already holds at least one slot.
func (l *Lead) HasSeller(sellerID string) bool {
	for _, r := range l.Sellers {
		if r.SellerID == sellerID {
			return true
		}
	}
	return false
}

// SmallLeadThresholdSqft marks leads small enough that a seller may buy in
// only once.
const SmallLeadThresholdSqft = 50.0

// IsSmall reports whether the single-sale-per-seller rule applies.
func (l *Lead) IsSmall() bool {
	return l.TotalSqft <= SmallLeadThresholdSqft
}

// ApplyPurchase appends slots purchase records for the seller, decrements
// the available slots and advances the status to in-progress when the last
// slot is taken. The record count stays equal to MaxSlots - AvailableSlots.
func (l *Lead) ApplyPurchase(sellerID string, slots int, perSlotPrice decimal.Decimal, perSlotFreeSqft float64, now time.Time) error {
	if slots <= 0 || slots > l.AvailableSlots {
		return ErrNotEnoughSlots
	}
	for i := 0; i < slots; i++ {
		l.Sellers = append(l.Sellers, PurchaseRecord{
			SellerID:      sellerID,
			PurchasedAt:   now,
			PricePaid:     perSlotPrice,
			FreeQuotaUsed: perSlotFreeSqft,
		})
	}
	l.AvailableSlots -= slots
	if l.AvailableSlots == 0 {
		l.Status = LeadStatusInProgress
	}
	l.UpdatedAt = now
	return nil
}
