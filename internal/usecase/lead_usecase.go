package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"upvc_marketplace/internal/domain/entities"
	"upvc_marketplace/internal/domain/pricing"
	"upvc_marketplace/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrLeadNotFound      = errors.New("lead not found")
	ErrBuyerNotFound     = errors.New("buyer not found")
	ErrCategoryNotFound  = errors.New("category not found")
	ErrProductNotFound   = errors.New("product not found")
	ErrInvalidLeadID     = errors.New("invalid lead id")
	ErrInvalidBuyerID    = errors.New("invalid buyer id")
	ErrInvalidCategoryID = errors.New("invalid category id")
	ErrInvalidQuotes     = errors.New("invalid quotes")
)

// CreateLeadCommand carries a buyer's quote submission.
type CreateLeadCommand struct {
	BuyerID     string
	CategoryID  string
	Quotes      []entities.QuoteItem
	ContactInfo entities.ContactInfo
	ProjectInfo entities.ProjectInfo
}

// ILeadUseCase exposes the lead lifecycle operations.
//
// Purchase settlement lives in its own use case; this one covers creation
// (invoking the pricing engine), reads and the explicit status-transition
// path of the state machine.

type ILeadUseCase interface {
	CreateLead(ctx context.Context, cmd CreateLeadCommand) (entities.Lead, error)
	GetByID(ctx context.Context, id string) (entities.Lead, error)
	List(ctx context.Context, filter interfaces.LeadFilter) ([]entities.Lead, int, error)
	UpdateStatus(ctx context.Context, leadID, rawStatus string) (entities.Lead, error)
	CalculatePrice(ctx context.Context, quotes []entities.QuoteItem) (pricing.Result, error)
}

type LeadUseCase struct {
	repo       interfaces.ILeadRepository
	buyers     interfaces.IBuyerDirectory
	categories interfaces.ICategoryDirectory
	products   interfaces.IProductDirectory
}

var _ ILeadUseCase = (*LeadUseCase)(nil)

func NewLeadUseCase(
	repo interfaces.ILeadRepository,
	buyers interfaces.IBuyerDirectory,
	categories interfaces.ICategoryDirectory,
	products interfaces.IProductDirectory,
) *LeadUseCase {
	return &LeadUseCase{repo: repo, buyers: buyers, categories: categories, products: products}
}

func (u *LeadUseCase) CreateLead(ctx context.Context, cmd CreateLeadCommand) (entities.Lead, error) {
	cmd.BuyerID = strings.TrimSpace(cmd.BuyerID)
	if cmd.BuyerID == "" {
		return entities.Lead{}, ErrInvalidBuyerID
	}
	cmd.CategoryID = strings.TrimSpace(cmd.CategoryID)
	if cmd.CategoryID == "" {
		return entities.Lead{}, ErrInvalidCategoryID
	}
	if len(cmd.Quotes) == 0 {
		return entities.Lead{}, ErrInvalidQuotes
	}

	if ok, err := u.buyers.Exists(ctx, cmd.BuyerID); err != nil {
		return entities.Lead{}, err
	} else if !ok {
		return entities.Lead{}, ErrBuyerNotFound
	}
	if ok, err := u.categories.Exists(ctx, cmd.CategoryID); err != nil {
		return entities.Lead{}, err
	} else if !ok {
		return entities.Lead{}, ErrCategoryNotFound
	}

	quotes := make([]entities.QuoteItem, 0, len(cmd.Quotes))
	for _, q := range cmd.Quotes {
		q.ProductID = strings.TrimSpace(q.ProductID)
		if q.ProductID == "" || q.Height <= 0 || q.Width <= 0 || q.Quantity <= 0 {
			return entities.Lead{}, ErrInvalidQuotes
		}
		if ok, err := u.products.Exists(ctx, q.ProductID); err != nil {
			return entities.Lead{}, err
		} else if !ok {
			return entities.Lead{}, ErrProductNotFound
		}
		q.Sqft = pricing.ItemSqft(q)
		quotes = append(quotes, q)
	}

	priced := pricing.Compute(quotes)

	now := time.Now().UTC()
	lead := entities.Lead{
		ID:               uuid.NewString(),
		BuyerID:          cmd.BuyerID,
		CategoryID:       cmd.CategoryID,
		Quotes:           quotes,
		ContactInfo:      cmd.ContactInfo,
		ProjectInfo:      cmd.ProjectInfo,
		TotalSqft:        priced.TotalSqft,
		TotalQuantity:    priced.TotalQuantity,
		BasePricePerSqft: pricing.BasePricePerSqft,
		MaxSlots:         priced.MaxSlots,
		AvailableSlots:   priced.MaxSlots,
		DynamicSlotPrice: priced.DynamicSlotPrice,
		OverProfit:       priced.OverProfit,
		Status:           entities.LeadStatusNew,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	return u.repo.Create(ctx, lead)
}

func (u *LeadUseCase) GetByID(ctx context.Context, id string) (entities.Lead, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Lead{}, ErrInvalidLeadID
	}

	l, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Lead{}, err
	}
	if l.ID == "" {
		return entities.Lead{}, ErrLeadNotFound
	}
	return l, nil
}

func (u *LeadUseCase) List(ctx context.Context, filter interfaces.LeadFilter) ([]entities.Lead, int, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 100
	}
	return u.repo.List(ctx, filter)
}

// UpdateStatus is the explicit-transition path of the status state machine.
// The raw value goes through the synonym map and the canonical-set check,
// then the transition table; the write is conditioned on the version the
// lead was read at, with one retry on conflict.
func (u *LeadUseCase) UpdateStatus(ctx context.Context, leadID, rawStatus string) (entities.Lead, error) {
	leadID = strings.TrimSpace(leadID)
	if leadID == "" {
		return entities.Lead{}, ErrInvalidLeadID
	}
	status, err := entities.ParseStatus(strings.TrimSpace(rawStatus))
	if err != nil {
		return entities.Lead{}, err
	}

	for attempt := 0; attempt < 2; attempt++ {
		lead, err := u.repo.GetByID(ctx, leadID)
		if err != nil {
			return entities.Lead{}, err
		}
		if lead.ID == "" {
			return entities.Lead{}, ErrLeadNotFound
		}
		if !entities.CanTransition(lead.Status, status) {
			return entities.Lead{}, entities.ErrInvalidTransition
		}

		updated, err := u.repo.UpdateStatus(ctx, leadID, status, lead.Version)
		if errors.Is(err, interfaces.ErrVersionConflict) {
			continue
		}
		if err != nil {
			return entities.Lead{}, err
		}
		return updated, nil
	}
	return entities.Lead{}, interfaces.ErrVersionConflict
}

// CalculatePrice prices a quote sequence without persisting anything.
func (u *LeadUseCase) CalculatePrice(_ context.Context, quotes []entities.QuoteItem) (pricing.Result, error) {
	if len(quotes) == 0 {
		return pricing.Result{}, ErrInvalidQuotes
	}
	for _, q := range quotes {
		if q.Height <= 0 || q.Width <= 0 || q.Quantity <= 0 {
			return pricing.Result{}, ErrInvalidQuotes
		}
	}
	return pricing.Compute(quotes), nil
}
