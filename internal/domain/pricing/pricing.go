package pricing

import (
	"upvc_marketplace/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// Pricing constants. BasePricePerSqft is what sellers pay per square foot
// of lead area; TargetProfit caps the marketplace revenue per lead;
// DefaultMaxSlots is the slot ceiling for leads below the profit target.
var (
	BasePricePerSqft = decimal.NewFromFloat(10.50)
	TargetProfit     = decimal.NewFromInt(6250)
)

const DefaultMaxSlots = 6

// Result is the priced shape of a quote sequence.
type Result struct {
	TotalSqft        float64
	TotalQuantity    int
	MaxSlots         int
	DynamicSlotPrice decimal.Decimal
	OverProfit       bool
}

// ItemSqft resolves one line item's area. Height and width are supplied in
// feet, so the area is simply height * width; an explicit Sqft > 0 on the
// item overrides the product.
func ItemSqft(q entities.QuoteItem) float64 {
	if q.Sqft > 0 {
		return q.Sqft
	}
	return q.Height * q.Width
}

// Compute turns raw quote line items into total area, slot count and
// per-slot price. It is a pure function of its input.
//
// When the lead's base value would push six-slot revenue past the profit
// target, the slot count shrinks (never below 1) and the per-slot price is
// the target spread across those slots. Smaller leads keep the full six
// slots at base value each.
func Compute(quotes []entities.QuoteItem) Result {
	var r Result
	for _, q := range quotes {
		r.TotalSqft += ItemSqft(q) * float64(q.Quantity)
		r.TotalQuantity += q.Quantity
	}

	baseValue := decimal.NewFromFloat(r.TotalSqft).Mul(BasePricePerSqft)

	if baseValue.Mul(decimal.NewFromInt(DefaultMaxSlots)).GreaterThan(TargetProfit) {
		slots := TargetProfit.Div(baseValue).IntPart()
		if slots < 1 {
			slots = 1
		}
		r.MaxSlots = int(slots)
		r.DynamicSlotPrice = TargetProfit.Div(decimal.NewFromInt(slots))
		r.OverProfit = true
		return r
	}

	// Zero-area input lands here: six slots priced at a zero base value.
	r.MaxSlots = DefaultMaxSlots
	r.DynamicSlotPrice = baseValue
	r.OverProfit = false
	return r
}
