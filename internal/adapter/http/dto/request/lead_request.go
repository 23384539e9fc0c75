package request

import "upvc_marketplace/internal/domain/entities"

type QuoteRequest struct {
	ProductID            string  `json:"product_id" binding:"required"`
	Color                string  `json:"color"`
	InstallationLocation string  `json:"installation_location"`
	Height               float64 `json:"height" binding:"required,gt=0"`
	Width                float64 `json:"width" binding:"required,gt=0"`
	Quantity             int     `json:"quantity" binding:"required,gt=0"`
	Sqft                 float64 `json:"sqft"`
	Remark               string  `json:"remark"`
	IsGenerated          *bool   `json:"is_generated"`
}

func (q QuoteRequest) ToEntity() entities.QuoteItem {
	// Quotes default to generated unless the buyer explicitly says otherwise.
	isGenerated := true
	if q.IsGenerated != nil {
		isGenerated = *q.IsGenerated
	}
	return entities.QuoteItem{
		ProductID:            q.ProductID,
		Color:                q.Color,
		InstallationLocation: q.InstallationLocation,
		Height:               q.Height,
		Width:                q.Width,
		Quantity:             q.Quantity,
		Sqft:                 q.Sqft,
		Remark:               q.Remark,
		IsGenerated:          isGenerated,
	}
}

type ContactInfoRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

type AddressRequest struct {
	Line1   string `json:"line1"`
	City    string `json:"city"`
	State   string `json:"state"`
	Pincode string `json:"pincode"`
}

type ProjectInfoRequest struct {
	Address AddressRequest `json:"address"`
}

// CreateLeadRequest is a buyer's quote submission.
type CreateLeadRequest struct {
	BuyerID     string             `json:"buyer_id" binding:"required"`
	CategoryID  string             `json:"category_id" binding:"required"`
	Quotes      []QuoteRequest     `json:"quotes" binding:"required,min=1,dive"`
	ContactInfo ContactInfoRequest `json:"contact_info"`
	ProjectInfo ProjectInfoRequest `json:"project_info"`
}

func (r CreateLeadRequest) ToQuoteItems() []entities.QuoteItem {
	quotes := make([]entities.QuoteItem, 0, len(r.Quotes))
	for _, q := range r.Quotes {
		quotes = append(quotes, q.ToEntity())
	}
	return quotes
}

func (r CreateLeadRequest) ToContactInfo() entities.ContactInfo {
	return entities.ContactInfo{Name: r.ContactInfo.Name, Phone: r.ContactInfo.Phone, Email: r.ContactInfo.Email}
}

func (r CreateLeadRequest) ToProjectInfo() entities.ProjectInfo {
	return entities.ProjectInfo{
		Address: entities.Address{
			Line1:   r.ProjectInfo.Address.Line1,
			City:    r.ProjectInfo.Address.City,
			State:   r.ProjectInfo.Address.State,
			Pincode: r.ProjectInfo.Address.Pincode,
		},
	}
}

// PurchaseLeadRequest is a seller's request to buy slots on a lead.
type PurchaseLeadRequest struct {
	LeadID        string  `json:"lead_id" binding:"required"`
	SellerID      string  `json:"seller_id" binding:"required"`
	SlotsToBuy    int     `json:"slots_to_buy" binding:"required,gt=0"`
	UseFreeQuota  bool    `json:"use_free_quota"`
	FreeSqftToUse float64 `json:"free_sqft_to_use"`
	Price         float64 `json:"price"`
}

// UpdateLeadStatusRequest drives the explicit status-transition path.
// Status accepts the synonym values older frontends still send.
type UpdateLeadStatusRequest struct {
	LeadID string `json:"lead_id" binding:"required"`
	Status string `json:"status" binding:"required"`
}

// CalculatePriceRequest prices a quote sequence without creating a lead.
type CalculatePriceRequest struct {
	Quotes []QuoteRequest `json:"quotes" binding:"required,min=1,dive"`
}

func (r CalculatePriceRequest) ToQuoteItems() []entities.QuoteItem {
	quotes := make([]entities.QuoteItem, 0, len(r.Quotes))
	for _, q := range r.Quotes {
		quotes = append(quotes, q.ToEntity())
	}
	return quotes
}
