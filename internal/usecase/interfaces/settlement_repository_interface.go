package interfaces

import (
	"context"

	"upvc_marketplace/internal/domain/entities"
)

// ISettlementRepository commits the two-aggregate mutation at the heart of
// a purchase: the lead's slot state and the seller's quota state must land
// together or not at all.
//
// Both entities carry the version they were read at; the commit is a
// DynamoDB TransactWriteItems with each element conditioned on that
// version, so a concurrent purchase on either aggregate cancels the whole
// transaction with ErrVersionConflict and no partial write.
type ISettlementRepository interface {
	CommitPurchase(ctx context.Context, lead entities.Lead, seller entities.Seller) error
}
