package response

import (
	"testing"
	"time"

	"upvc_marketplace/internal/domain/entities"
	"upvc_marketplace/internal/domain/pricing"
	"upvc_marketplace/internal/usecase"

	"github.com/shopspring/decimal"
)

func TestFromLead(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	l := entities.Lead{
		ID:               "lead-1",
		BuyerID:          "b-1",
		Quotes:           []entities.QuoteItem{{ProductID: "p-1", Sqft: 50, Quantity: 1, IsGenerated: true}},
		TotalSqft:        50,
		TotalQuantity:    1,
		BasePricePerSqft: decimal.NewFromFloat(10.50),
		MaxSlots:         6,
		AvailableSlots:   5,
		DynamicSlotPrice: decimal.NewFromInt(525),
		Sellers: []entities.PurchaseRecord{
			{SellerID: "s-1", PurchasedAt: now, PricePaid: decimal.NewFromInt(525), FreeQuotaUsed: 10},
		},
		Status:    entities.LeadStatusNew,
		CreatedAt: now,
		UpdatedAt: now,
	}

	resp := FromLead(l)

	if resp.ID != "lead-1" || resp.Status != "new" {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if resp.BasePricePerSqft != 10.50 || resp.DynamicSlotPrice != 525 {
		t.Fatalf("unexpected money fields: %+v", resp)
	}
	if len(resp.Sellers) != 1 || resp.Sellers[0].PricePaid != 525 {
		t.Fatalf("unexpected sellers: %+v", resp.Sellers)
	}
	if len(resp.Quotes) != 1 || resp.Quotes[0].Sqft != 50 {
		t.Fatalf("unexpected quotes: %+v", resp.Quotes)
	}
}

func TestFromLeadList(t *testing.T) {
	resp := FromLeadList([]entities.Lead{{ID: "a"}, {ID: "b"}}, 12, 2, 10)

	if resp.Total != 12 || resp.Page != 2 || resp.Limit != 10 {
		t.Fatalf("unexpected paging: %+v", resp)
	}
	if resp.Count != 2 || len(resp.Leads) != 2 {
		t.Fatalf("unexpected leads: %+v", resp)
	}
}

func TestFromSettlement(t *testing.T) {
	s := usecase.Settlement{
		Lead:            entities.Lead{ID: "lead-1", Status: entities.LeadStatusInProgress},
		ActualPricePaid: decimal.NewFromInt(735),
		FreeSqftUsed:    30,
		PaidSqft:        70,
		PricePerSqft:    decimal.NewFromFloat(10.50),
	}

	resp := FromSettlement(s)

	if resp.Lead.ID != "lead-1" || resp.Lead.Status != "in-progress" {
		t.Fatalf("unexpected lead: %+v", resp.Lead)
	}
	if resp.ActualPricePaid != 735 || resp.FreeSqftUsed != 30 || resp.PaidSqft != 70 || resp.PricePerSqft != 10.50 {
		t.Fatalf("unexpected figures: %+v", resp)
	}
}

func TestFromPricingResult(t *testing.T) {
	resp := FromPricingResult(pricing.Result{
		TotalSqft:        36000,
		TotalQuantity:    10,
		MaxSlots:         1,
		DynamicSlotPrice: decimal.NewFromInt(6250),
		OverProfit:       true,
	})

	if resp.MaxSlots != 1 || resp.DynamicSlotPrice != 6250 || !resp.OverProfit {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestFromSellerQuota(t *testing.T) {
	next := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	resp := FromSellerQuota(usecase.SellerQuota{RemainingQuota: 470, UsedQuota: 30, NextReset: next})

	if resp.RemainingQuota != 470 || resp.UsedQuota != 30 || !resp.NextReset.Equal(next) {
		t.Fatalf("unexpected response: %+v", resp)
	}
}
