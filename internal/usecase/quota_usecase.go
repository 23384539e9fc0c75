package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"upvc_marketplace/internal/usecase/interfaces"
)

var ErrInvalidSellerID = errors.New("invalid seller id")

// SellerQuota is the quota view returned to sellers.
type SellerQuota struct {
	RemainingQuota float64
	UsedQuota      float64
	NextReset      time.Time
}

// IQuotaUseCase exposes the free-quota ledger operations. The monthly
// reset is applied lazily before every read; the cron sweep covers sellers
// that stay idle across a cycle boundary.

type IQuotaUseCase interface {
	GetSellerQuota(ctx context.Context, sellerID string) (SellerQuota, error)
	QuotaUsedForLead(ctx context.Context, sellerID, leadID string) (bool, error)
	ResetDueSellers(ctx context.Context, now time.Time) (int, error)
}

type QuotaUseCase struct {
	sellers interfaces.ISellerRepository
}

var _ IQuotaUseCase = (*QuotaUseCase)(nil)

func NewQuotaUseCase(sellers interfaces.ISellerRepository) *QuotaUseCase {
	return &QuotaUseCase{sellers: sellers}
}

func (u *QuotaUseCase) GetSellerQuota(ctx context.Context, sellerID string) (SellerQuota, error) {
	sellerID = strings.TrimSpace(sellerID)
	if sellerID == "" {
		return SellerQuota{}, ErrInvalidSellerID
	}

	for attempt := 0; attempt < 2; attempt++ {
		seller, err := u.sellers.GetByID(ctx, sellerID)
		if err != nil {
			return SellerQuota{}, err
		}
		if seller.ID == "" {
			return SellerQuota{}, ErrSellerNotFound
		}

		if seller.CheckQuotaReset(time.Now().UTC()) {
			if _, err := u.sellers.Update(ctx, seller); err != nil {
				if errors.Is(err, interfaces.ErrVersionConflict) {
					continue
				}
				return SellerQuota{}, err
			}
		}
		return SellerQuota{
			RemainingQuota: seller.FreeQuota.CurrentMonthQuota,
			UsedQuota:      seller.FreeQuota.UsedQuota,
			NextReset:      seller.FreeQuota.NextResetDate,
		}, nil
	}
	return SellerQuota{}, interfaces.ErrVersionConflict
}

func (u *QuotaUseCase) QuotaUsedForLead(ctx context.Context, sellerID, leadID string) (bool, error) {
	sellerID = strings.TrimSpace(sellerID)
	if sellerID == "" {
		return false, ErrInvalidSellerID
	}
	leadID = strings.TrimSpace(leadID)
	if leadID == "" {
		return false, ErrInvalidLeadID
	}

	seller, err := u.sellers.GetByID(ctx, sellerID)
	if err != nil {
		return false, err
	}
	if seller.ID == "" {
		return false, ErrSellerNotFound
	}
	return seller.FreeQuotaUsedForLead(leadID), nil
}

// ResetDueSellers resets every seller whose quota cycle has lapsed and
// returns how many were reset. Version conflicts on individual sellers are
// skipped; the lazy reset or the next sweep picks them up.
func (u *QuotaUseCase) ResetDueSellers(ctx context.Context, now time.Time) (int, error) {
	due, err := u.sellers.ListQuotaResetDue(ctx, now)
	if err != nil {
		return 0, err
	}

	reset := 0
	for _, seller := range due {
		if !seller.CheckQuotaReset(now) {
			continue
		}
		if _, err := u.sellers.Update(ctx, seller); err != nil {
			if errors.Is(err, interfaces.ErrVersionConflict) {
				log.Printf("[quota][usecase] reset skipped on conflict seller_id=%s", seller.ID)
				continue
			}
			return reset, err
		}
		reset++
	}
	if reset > 0 {
		log.Printf("[quota][usecase] monthly reset applied sellers=%d", reset)
	}
	return reset, nil
}
