//go:build unit

package order_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khues-restaurant/khues-restaurant-sub001/internal/domain/order"
)

func validDraft() order.DraftOrder {
	return order.DraftOrder{
		PickupAt: time.Date(2025, 6, 6, 12, 30, 0, 0, time.UTC),
		Items: []order.LineItem{
			{Seq: 1, ItemID: uuid.New(), Name: "Pho", Quantity: 1, UnitPriceCents: 1595},
		},
	}
}

func TestDraftOrder_Validate(t *testing.T) {
	t.Run("valid draft passes", func(t *testing.T) {
		assert.NoError(t, validDraft().Validate())
	})

	t.Run("empty cart", func(t *testing.T) {
		d := validDraft()
		d.Items = nil
		assert.ErrorIs(t, d.Validate(), order.ErrNoItems)
	})

	t.Run("quantity bounds", func(t *testing.T) {
		cases := []struct {
			name     string
			quantity int32
			errIs    error
		}{
			{name: "zero quantity", quantity: 0, errIs: order.ErrInvalidQuantity},
			{name: "negative quantity", quantity: -1, errIs: order.ErrInvalidQuantity},
			{name: "minimum quantity", quantity: 1},
			{name: "maximum quantity", quantity: order.MaxLineQuantity},
			{name: "above maximum", quantity: order.MaxLineQuantity + 1, errIs: order.ErrInvalidQuantity},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				d := validDraft()
				d.Items[0].Quantity = tc.quantity
				err := d.Validate()
				if tc.errIs != nil {
					assert.ErrorIs(t, err, tc.errIs)
					return
				}
				assert.NoError(t, err)
			})
		}
	})

	t.Run("instructions length", func(t *testing.T) {
		d := validDraft()
		d.Items[0].Instructions = string(make([]byte, order.MaxInstructionsLength+1))
		assert.ErrorIs(t, d.Validate(), order.ErrInstructionsTooLong)
	})

	t.Run("tip validation", func(t *testing.T) {
		cases := []struct {
			name  string
			tip   order.Tip
			errIs error
		}{
			{name: "no tip"},
			{name: "percent tip", tip: order.Tip{Kind: order.TipPercent, Value: 15}},
			{name: "fixed tip", tip: order.Tip{Kind: order.TipFixed, Value: 300}},
			{name: "negative tip", tip: order.Tip{Kind: order.TipFixed, Value: -100}, errIs: order.ErrInvalidTip},
			{name: "unknown kind", tip: order.Tip{Kind: "points", Value: 5}, errIs: order.ErrInvalidTip},
			{name: "value without kind", tip: order.Tip{Value: 5}, errIs: order.ErrInvalidTip},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				d := validDraft()
				d.Tip = tc.tip
				err := d.Validate()
				if tc.errIs != nil {
					assert.ErrorIs(t, err, tc.errIs)
					return
				}
				assert.NoError(t, err)
			})
		}
	})
}

func TestDraftOrder_Clone(t *testing.T) {
	catID, choiceID := uuid.New(), uuid.New()
	discountID := uuid.New()
	code := "  GIFT-1234  "

	d := validDraft()
	d.Items[0].Customizations = map[uuid.UUID]uuid.UUID{catID: choiceID}
	d.Items[0].DiscountID = &discountID
	d.StoredValueCode = &code

	clone := d.Clone()

	clone.Items[0].Customizations[catID] = uuid.New()
	*clone.Items[0].DiscountID = uuid.New()

	assert.Equal(t, choiceID, d.Items[0].Customizations[catID])
	assert.Equal(t, discountID, *d.Items[0].DiscountID)

	// Clone trims the redemption code; the original keeps its raw value.
	require.NotNil(t, clone.StoredValueCode)
	assert.Equal(t, "GIFT-1234", *clone.StoredValueCode)
	assert.Equal(t, "GIFT-1234", d.Code())
}
