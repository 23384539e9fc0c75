package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"upvc_marketplace/internal/domain/entities"
	"upvc_marketplace/internal/domain/pricing"
	"upvc_marketplace/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

var (
	ErrSellerNotFound    = errors.New("seller not found")
	ErrSellerNotEligible = errors.New("seller is not approved or not active")
	ErrInvalidPurchase   = errors.New("invalid purchase request")
	ErrInsufficientSlots = errors.New("not enough available slots")
	ErrDuplicatePurchase = errors.New("lead already purchased by this seller")
	ErrBrandLimitReached = errors.New("brand limit reached in this city")
	ErrInsufficientQuota = errors.New("not enough free quota remaining")
	ErrPurchaseConflict  = errors.New("purchase conflicted with a concurrent update")
)

// brandCityLimit is how many approved, active sellers of one brand a city
// may hold before further purchases by that brand are refused.
const brandCityLimit = 2

// purchaseAttempts bounds the read-validate-write cycle. A conditional
// failure means another purchase landed first; one re-read is usually
// enough, after that the conflict surfaces to the caller.
const purchaseAttempts = 2

// PurchaseCommand is a seller's request to buy slots on a lead.
type PurchaseCommand struct {
	LeadID          string
	SellerID        string
	SlotsToBuy      int
	UseFreeQuota    bool
	FreeSqftToUse   float64
	NegotiatedPrice decimal.Decimal
}

// Settlement reports the financial outcome of a purchase.
type Settlement struct {
	Lead            entities.Lead
	ActualPricePaid decimal.Decimal
	FreeSqftUsed    float64
	PaidSqft        float64
	PricePerSqft    decimal.Decimal
}

// IPurchaseUseCase is the slot purchase-settlement engine.

type IPurchaseUseCase interface {
	Purchase(ctx context.Context, cmd PurchaseCommand) (Settlement, error)
}

// PurchaseUseCase runs the one read-modify-write transaction that must stay
// race-safe across concurrent sellers buying into the same lead. Each
// attempt re-reads both aggregates, validates every precondition against
// fresh state and commits through a version-conditioned transaction.
type PurchaseUseCase struct {
	leads      interfaces.ILeadRepository
	sellers    interfaces.ISellerRepository
	settlement interfaces.ISettlementRepository
}

var _ IPurchaseUseCase = (*PurchaseUseCase)(nil)

func NewPurchaseUseCase(
	leads interfaces.ILeadRepository,
	sellers interfaces.ISellerRepository,
	settlement interfaces.ISettlementRepository,
) *PurchaseUseCase {
	return &PurchaseUseCase{leads: leads, sellers: sellers, settlement: settlement}
}

func (u *PurchaseUseCase) Purchase(ctx context.Context, cmd PurchaseCommand) (Settlement, error) {
	cmd.LeadID = strings.TrimSpace(cmd.LeadID)
	cmd.SellerID = strings.TrimSpace(cmd.SellerID)
	if cmd.LeadID == "" || cmd.SellerID == "" || cmd.SlotsToBuy <= 0 {
		log.Printf("[purchase][usecase] invalid request lead_id=%q seller_id=%q slots=%d", cmd.LeadID, cmd.SellerID, cmd.SlotsToBuy)
		return Settlement{}, ErrInvalidPurchase
	}
	if cmd.FreeSqftToUse < 0 {
		return Settlement{}, ErrInvalidPurchase
	}

	log.Printf("[purchase][usecase] start lead_id=%s seller_id=%s slots=%d use_free_quota=%t free_sqft=%.2f",
		cmd.LeadID, cmd.SellerID, cmd.SlotsToBuy, cmd.UseFreeQuota, cmd.FreeSqftToUse)

	for attempt := 1; attempt <= purchaseAttempts; attempt++ {
		settlement, err := u.attempt(ctx, cmd)
		if errors.Is(err, interfaces.ErrVersionConflict) {
			log.Printf("[purchase][usecase] version conflict lead_id=%s attempt=%d", cmd.LeadID, attempt)
			continue
		}
		if err != nil {
			return Settlement{}, err
		}
		log.Printf("[purchase][usecase] success lead_id=%s seller_id=%s paid_sqft=%.2f actual_price=%s available_slots=%d status=%s",
			cmd.LeadID, cmd.SellerID, settlement.PaidSqft, settlement.ActualPricePaid.String(),
			settlement.Lead.AvailableSlots, settlement.Lead.Status)
		return settlement, nil
	}
	return Settlement{}, ErrPurchaseConflict
}

// attempt runs one full read-validate-write cycle. interfaces.ErrVersionConflict
// from the commit means the caller should retry from a fresh read.
func (u *PurchaseUseCase) attempt(ctx context.Context, cmd PurchaseCommand) (Settlement, error) {
	lead, err := u.leads.GetByID(ctx, cmd.LeadID)
	if err != nil {
		return Settlement{}, err
	}
	if lead.ID == "" {
		return Settlement{}, ErrLeadNotFound
	}

	seller, err := u.sellers.GetByID(ctx, cmd.SellerID)
	if err != nil {
		return Settlement{}, err
	}
	if seller.ID == "" {
		return Settlement{}, ErrSellerNotFound
	}

	if !seller.IsEligible() {
		log.Printf("[purchase][usecase] seller not eligible seller_id=%s status=%s is_active=%t", seller.ID, seller.Status, seller.IsActive)
		return Settlement{}, ErrSellerNotEligible
	}

	if cmd.SlotsToBuy > lead.AvailableSlots {
		log.Printf("[purchase][usecase] insufficient slots lead_id=%s requested=%d available=%d", lead.ID, cmd.SlotsToBuy, lead.AvailableSlots)
		return Settlement{}, ErrInsufficientSlots
	}

	// Small leads are single-slot-per-seller; without this a seller could
	// game the minimum-size exemption by buying the same tiny lead twice,
	// or grab several slots of it in one request.
	if lead.IsSmall() && (lead.HasSeller(seller.ID) || cmd.SlotsToBuy > 1) {
		log.Printf("[purchase][usecase] duplicate purchase on small lead lead_id=%s seller_id=%s total_sqft=%.2f", lead.ID, seller.ID, lead.TotalSqft)
		return Settlement{}, ErrDuplicatePurchase
	}

	// Brand exclusivity runs at purchase time, not registration time,
	// because the city's brand composition changes over time.
	if err := u.checkBrandExclusivity(ctx, lead, seller); err != nil {
		return Settlement{}, err
	}

	now := time.Now().UTC()
	if seller.CheckQuotaReset(now) {
		log.Printf("[purchase][usecase] quota cycle reset seller_id=%s next_reset=%s", seller.ID, seller.FreeQuota.NextResetDate.Format(time.RFC3339))
	}

	totalSqft := lead.TotalSqft * float64(cmd.SlotsToBuy)
	appliedFree := 0.0
	if cmd.UseFreeQuota && cmd.FreeSqftToUse > 0 && seller.FreeQuota.CurrentMonthQuota > 0 && !seller.FreeQuotaUsedForLead(lead.ID) {
		if cmd.FreeSqftToUse > seller.FreeQuota.CurrentMonthQuota {
			log.Printf("[purchase][usecase] free quota exceeded seller_id=%s requested=%.2f remaining=%.2f", seller.ID, cmd.FreeSqftToUse, seller.FreeQuota.CurrentMonthQuota)
			return Settlement{}, ErrInsufficientQuota
		}
		if cmd.FreeSqftToUse > totalSqft {
			return Settlement{}, ErrInvalidPurchase
		}
		if err := seller.ApplyFreeQuota(lead.ID, cmd.FreeSqftToUse, now); err != nil {
			return Settlement{}, err
		}
		appliedFree = cmd.FreeSqftToUse
	}

	pricePerSqft := lead.BasePricePerSqft
	if pricePerSqft.IsZero() {
		// Legacy leads predate the stored base price.
		pricePerSqft = pricing.BasePricePerSqft
	}
	paidSqft := totalSqft - appliedFree
	actualPrice := decimal.NewFromFloat(paidSqft).Mul(pricePerSqft)

	slots := decimal.NewFromInt(int64(cmd.SlotsToBuy))
	perSlotPrice := actualPrice.Div(slots)
	perSlotFree := appliedFree / float64(cmd.SlotsToBuy)

	if err := lead.ApplyPurchase(seller.ID, cmd.SlotsToBuy, perSlotPrice, perSlotFree, now); err != nil {
		return Settlement{}, ErrInsufficientSlots
	}
	if !cmd.NegotiatedPrice.IsZero() {
		lead.NegotiatedPrice = cmd.NegotiatedPrice
	}
	seller.RecordLead(lead.ID)

	if err := u.settlement.CommitPurchase(ctx, lead, seller); err != nil {
		return Settlement{}, err
	}

	lead.Version++
	return Settlement{
		Lead:            lead,
		ActualPricePaid: actualPrice,
		FreeSqftUsed:    appliedFree,
		PaidSqft:        paidSqft,
		PricePerSqft:    pricePerSqft,
	}, nil
}

func (u *PurchaseUseCase) checkBrandExclusivity(ctx context.Context, lead entities.Lead, seller entities.Seller) error {
	if seller.Brand == "" {
		return nil
	}
	inCity, err := u.sellers.ListActiveByCity(ctx, lead.ProjectInfo.Address.City)
	if err != nil {
		return err
	}
	count := 0
	for _, s := range inCity {
		if s.Brand == seller.Brand {
			count++
		}
	}
	if count >= brandCityLimit {
		log.Printf("[purchase][usecase] brand limit reached lead_id=%s seller_id=%s brand=%s city=%s count=%d",
			lead.ID, seller.ID, seller.Brand, lead.ProjectInfo.Address.City, count)
		return ErrBrandLimitReached
	}
	return nil
}
