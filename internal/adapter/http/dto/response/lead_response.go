package response

import (
	"time"

	"upvc_marketplace/internal/domain/entities"
	"upvc_marketplace/internal/domain/pricing"
	"upvc_marketplace/internal/usecase"
)

type QuoteResponse struct {
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

type PurchaseRecordResponse struct {
	SellerID      string    `json:"seller_id"`
	PurchasedAt   time.Time `json:"purchased_at"`
	PricePaid     float64   `json:"price_paid"`
	FreeQuotaUsed float64   `json:"free_quota_used"`
}

type LeadResponse struct {
	ID               string                   `json:"id"`
	BuyerID          string                   `json:"buyer_id"`
	CategoryID       string                   `json:"category_id"`
	Quotes           []QuoteResponse          `json:"quotes"`
	ContactInfo      entities.ContactInfo     `json:"contact_info"`
	ProjectInfo      entities.ProjectInfo     `json:"project_info"`
	TotalSqft        float64                  `json:"total_sqft"`
	TotalQuantity    int                      `json:"total_quantity"`
	BasePricePerSqft float64                  `json:"base_price_per_sqft"`
	MaxSlots         int                      `json:"max_slots"`
	AvailableSlots   int                      `json:"available_slots"`
	DynamicSlotPrice float64                  `json:"dynamic_slot_price"`
	OverProfit       bool                     `json:"over_profit"`
	Sellers          []PurchaseRecordResponse `json:"sellers"`
	Status           string                   `json:"status"`
	CreatedAt        time.Time                `json:"created_at"`
	UpdatedAt        time.Time                `json:"updated_at"`
}

func FromLead(l entities.Lead) LeadResponse {
	quotes := make([]QuoteResponse, 0, len(l.Quotes))
	for _, q := range l.Quotes {
		quotes = append(quotes, QuoteResponse{
			ProductID:            q.ProductID,
			Color:                q.Color,
			InstallationLocation: q.InstallationLocation,
			Height:               q.Height,
			Width:                q.Width,
			Quantity:             q.Quantity,
			Sqft:                 q.Sqft,
			Remark:               q.Remark,
			IsGenerated:          q.IsGenerated,
		})
	}
	sellers := make([]PurchaseRecordResponse, 0, len(l.Sellers))
	for _, s := range l.Sellers {
		sellers = append(sellers, PurchaseRecordResponse{
			SellerID:      s.SellerID,
			PurchasedAt:   s.PurchasedAt,
			PricePaid:     s.PricePaid.InexactFloat64(),
			FreeQuotaUsed: s.FreeQuotaUsed,
		})
	}
	return LeadResponse{
		ID:               l.ID,
		BuyerID:          l.BuyerID,
		CategoryID:       l.CategoryID,
		Quotes:           quotes,
		ContactInfo:      l.ContactInfo,
		ProjectInfo:      l.ProjectInfo,
		TotalSqft:        l.TotalSqft,
		TotalQuantity:    l.TotalQuantity,
		BasePricePerSqft: l.BasePricePerSqft.InexactFloat64(),
		MaxSlots:         l.MaxSlots,
		AvailableSlots:   l.AvailableSlots,
		DynamicSlotPrice: l.DynamicSlotPrice.InexactFloat64(),
		OverProfit:       l.OverProfit,
		Sellers:          sellers,
		Status:           string(l.Status),
		CreatedAt:        l.CreatedAt,
		UpdatedAt:        l.UpdatedAt,
	}
}

type ListLeadsResponse struct {
	Total int            `json:"total"`
	Page  int            `json:"page"`
	Limit int            `json:"limit"`
	Count int            `json:"count"`
	Leads []LeadResponse `json:"leads"`
}

func FromLeadList(leads []entities.Lead, total, page, limit int) ListLeadsResponse {
	out := make([]LeadResponse, 0, len(leads))
	for _, l := range leads {
		out = append(out, FromLead(l))
	}
	return ListLeadsResponse{Total: total, Page: page, Limit: limit, Count: len(out), Leads: out}
}

// PurchaseResponse carries the updated lead plus the settlement figures.
type PurchaseResponse struct {
	Lead            LeadResponse `json:"lead"`
	ActualPricePaid float64      `json:"actual_price_paid"`
	FreeSqftUsed    float64      `json:"free_sqft_used"`
	PaidSqft        float64      `json:"paid_sqft"`
	PricePerSqft    float64      `json:"price_per_sqft"`
}

func FromSettlement(s usecase.Settlement) PurchaseResponse {
	return PurchaseResponse{
		Lead:            FromLead(s.Lead),
		ActualPricePaid: s.ActualPricePaid.InexactFloat64(),
		FreeSqftUsed:    s.FreeSqftUsed,
		PaidSqft:        s.PaidSqft,
		PricePerSqft:    s.PricePerSqft.InexactFloat64(),
	}
}

type CalculatePriceResponse struct {
	TotalSqft        float64 `json:"total_sqft"`
	TotalQuantity    int     `json:"total_quantity"`
	MaxSlots         int     `json:"max_slots"`
	DynamicSlotPrice float64 `json:"dynamic_slot_price"`
	OverProfit       bool    `json:"over_profit"`
}

func FromPricingResult(r pricing.Result) CalculatePriceResponse {
	return CalculatePriceResponse{
		TotalSqft:        r.TotalSqft,
		TotalQuantity:    r.TotalQuantity,
		MaxSlots:         r.MaxSlots,
		DynamicSlotPrice: r.DynamicSlotPrice.InexactFloat64(),
		OverProfit:       r.OverProfit,
	}
}

type SellerQuotaResponse struct {
	RemainingQuota float64   `json:"remaining_quota"`
	UsedQuota      float64   `json:"used_quota"`
	NextReset      time.Time `json:"next_reset"`
}

func FromSellerQuota(q usecase.SellerQuota) SellerQuotaResponse {
	return SellerQuotaResponse{RemainingQuota: q.RemainingQuota, UsedQuota: q.UsedQuota, NextReset: q.NextReset}
}

type QuotaCheckResponse struct {
	AlreadyUsed bool `json:"already_used"`
}
