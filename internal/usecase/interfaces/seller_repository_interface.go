package interfaces

import (
	"context"
	"time"

	"upvc_marketplace/internal/domain/entities"
)

// ISellerRepository abstracts DynamoDB persistence for Seller. It doubles
// as the seller directory consumed by purchase settlement (existence,
// city, brand, approval flags).
type ISellerRepository interface {
	GetByID(ctx context.Context, id string) (entities.Seller, error)
	// Update persists the seller conditioned on the version it was read
	// at; ErrVersionConflict when it changed underneath.
	Update(ctx context.Context, s entities.Seller) (entities.Seller, error)
	// ListActiveByCity returns approved, active sellers registered in the
	// city. Used by the brand-exclusivity check at purchase time.
	ListActiveByCity(ctx context.Context, city string) ([]entities.Seller, error)
	// ListQuotaResetDue returns sellers whose quota reset date has passed.
	ListQuotaResetDue(ctx context.Context, now time.Time) ([]entities.Seller, error)
}
