package interfaces

import (
	"context"
	"errors"

	"upvc_marketplace/internal/domain/entities"
)

// ErrVersionConflict is returned by version-conditioned writes when the
// stored aggregate moved on since it was read. Callers re-read and retry.
var ErrVersionConflict = errors.New("aggregate version conflict")

// LeadFilter narrows lead listings. Zero values mean "no constraint".
// Status must already be canonical (callers normalize synonyms first).
type LeadFilter struct {
	Status     entities.LeadStatus
	BuyerID    string
	SellerID   string
	CategoryID string
	Page       int
	Limit      int
}

// ILeadRepository abstracts DynamoDB persistence for Lead.
//
// Reads repair legacy status values through entities.RepairStatus; writes
// other than Create are conditioned on the version the aggregate was read
// at and fail with ErrVersionConflict when it changed underneath.
type ILeadRepository interface {
	Create(ctx context.Context, l entities.Lead) (entities.Lead, error)
	GetByID(ctx context.Context, id string) (entities.Lead, error)
	List(ctx context.Context, filter LeadFilter) ([]entities.Lead, int, error)
	UpdateStatus(ctx context.Context, id string, status entities.LeadStatus, expectedVersion int64) (entities.Lead, error)
}
