// Package pricing computes line and order prices. Every function is
// referentially transparent: identical inputs always yield identical output,
// and nothing here performs I/O.
package pricing

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/khues-restaurant/khues-restaurant-sub001/internal/domain/catalog"
	"github.com/khues-restaurant/khues-restaurant-sub001/internal/domain/order"
)

var hundred = decimal.NewFromInt(100)

type Calculator struct {
	taxRate decimal.Decimal
}

// NewCalculator takes the sales tax rate as a decimal string ("0.08875").
func NewCalculator(taxRate string) (Calculator, error) {
	rate, err := decimal.NewFromString(taxRate)
	if err != nil {
		return Calculator{}, err
	}
	return Calculator{taxRate: rate}, nil
}

// UnitPriceCents prices a single occurrence of a line item: the base catalog
// price, plus each selected customization choice's adjustment relative to its
// category baseline, minus the discount's effect. Reward lines are free; the
// customer pays in points or entitlement, not currency.
func (c Calculator) UnitPriceCents(
	line order.LineItem,
	choices map[uuid.UUID]catalog.CustomizationChoice,
	discount *catalog.Discount,
) int64 {
	if line.IsReward() {
		return 0
	}

	price := decimal.NewFromInt(int64(line.UnitPriceCents))
	for _, choiceID := range line.Customizations {
		if ch, ok := choices[choiceID]; ok {
			price = price.Add(decimal.NewFromInt(int64(ch.AdjustmentCents)))
		}
	}

	if discount != nil {
		price = applyDiscount(price, discount)
	}

	if price.IsNegative() {
		return 0
	}
	return RoundCents(price)
}

// LineTotalCents multiplies the unit price by the line quantity.
func (c Calculator) LineTotalCents(unitCents int64, quantity int32) int64 {
	return RoundCents(decimal.NewFromInt(unitCents).Mul(decimal.NewFromInt(int64(quantity))))
}

// SubtotalCents prices a set of lines.
func (c Calculator) SubtotalCents(
	lines []order.LineItem,
	choices map[uuid.UUID]catalog.CustomizationChoice,
	discounts map[uuid.UUID]*catalog.Discount,
) int64 {
	var subtotal int64
	for _, line := range lines {
		var disc *catalog.Discount
		if line.DiscountID != nil {
			disc = discounts[*line.DiscountID]
		}
		unit := c.UnitPriceCents(line, choices, disc)
		subtotal += c.LineTotalCents(unit, line.Quantity)
	}
	return subtotal
}

func (c Calculator) TaxCents(subtotalCents int64) int64 {
	return RoundCents(decimal.NewFromInt(subtotalCents).Mul(c.taxRate))
}

// TipCents resolves a tip against a subtotal: percentage tips are computed
// here, fixed tips pass through.
func (c Calculator) TipCents(tip order.Tip, subtotalCents int64) int64 {
	if tip.IsZero() {
		return 0
	}
	switch tip.Kind {
	case order.TipPercent:
		return RoundCents(
			decimal.NewFromInt(subtotalCents).
				Mul(decimal.NewFromInt(int64(tip.Value))).
				Div(hundred),
		)
	case order.TipFixed:
		return int64(tip.Value)
	default:
		return 0
	}
}

// RoundCents rounds to the nearest cent, ties away from zero. This is the
// rounding applied at the point money is about to be transmitted to the
// payment processor.
func RoundCents(d decimal.Decimal) int64 {
	return d.Round(0).IntPart()
}

func applyDiscount(price decimal.Decimal, d *catalog.Discount) decimal.Decimal {
	if d.AmountOffCents != nil {
		price = price.Sub(decimal.NewFromInt(int64(*d.AmountOffCents)))
	}
	if d.PercentOff != nil {
		off := decimal.NewFromFloat(*d.PercentOff)
		price = price.Mul(hundred.Sub(off)).Div(hundred)
	}
	return price
}
