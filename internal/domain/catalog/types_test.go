//go:build unit

package catalog_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/khues-restaurant/khues-restaurant-sub001/internal/domain/catalog"
)

func TestMenuItem_Orderable(t *testing.T) {
	cases := []struct {
		name string
		item catalog.MenuItem
		want bool
	}{
		{name: "available with stock", item: catalog.MenuItem{Available: true, Quantity: 5}, want: true},
		{name: "unavailable", item: catalog.MenuItem{Available: false, Quantity: 5}, want: false},
		{name: "out of stock", item: catalog.MenuItem{Available: true, Quantity: 0}, want: false},
		{name: "alcohol is never orderable online", item: catalog.MenuItem{Available: true, Alcoholic: true, Quantity: 5}, want: false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.item.Orderable())
		})
	}
}

func TestCustomizationCategory_ResolveSelection(t *testing.T) {
	selected := catalog.CustomizationChoice{ID: uuid.New(), Name: "Spicy", Available: true, ListOrder: 2}
	def := catalog.CustomizationChoice{ID: uuid.New(), Name: "Mild", Available: true, ListOrder: 1}
	first := catalog.CustomizationChoice{ID: uuid.New(), Name: "None", Available: true, ListOrder: 0}

	build := func(mutate func(*catalog.CustomizationCategory)) catalog.CustomizationCategory {
		c := catalog.CustomizationCategory{
			ID:              uuid.New(),
			Name:            "Heat",
			DefaultChoiceID: def.ID,
			Choices:         []catalog.CustomizationChoice{first, def, selected},
		}
		if mutate != nil {
			mutate(&c)
		}
		return c
	}

	t.Run("available selection wins", func(t *testing.T) {
		id, ok := build(nil).ResolveSelection(selected.ID)
		assert.True(t, ok)
		assert.Equal(t, selected.ID, id)
	})

	t.Run("unavailable selection falls back to default", func(t *testing.T) {
		c := build(func(c *catalog.CustomizationCategory) {
			c.Choices[2].Available = false
		})
		id, ok := c.ResolveSelection(selected.ID)
		assert.True(t, ok)
		assert.Equal(t, def.ID, id)
	})

	t.Run("unknown selection falls back to default", func(t *testing.T) {
		id, ok := build(nil).ResolveSelection(uuid.New())
		assert.True(t, ok)
		assert.Equal(t, def.ID, id)
	})

	t.Run("unavailable default falls back to first available in list order", func(t *testing.T) {
		c := build(func(c *catalog.CustomizationCategory) {
			c.Choices[2].Available = false
			c.Choices[1].Available = false
		})
		id, ok := c.ResolveSelection(selected.ID)
		assert.True(t, ok)
		assert.Equal(t, first.ID, id)
	})

	t.Run("fully unavailable category resolves to nothing", func(t *testing.T) {
		c := build(func(c *catalog.CustomizationCategory) {
			for i := range c.Choices {
				c.Choices[i].Available = false
			}
		})
		_, ok := c.ResolveSelection(selected.ID)
		assert.False(t, ok)
	})
}

func TestDiscount_IsUsableAt(t *testing.T) {
	now := time.Date(2025, 6, 6, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	cases := []struct {
		name string
		d    catalog.Discount
		want bool
	}{
		{name: "active without expiry", d: catalog.Discount{Active: true}, want: true},
		{name: "inactive", d: catalog.Discount{Active: false}, want: false},
		{name: "not yet expired", d: catalog.Discount{Active: true, ExpiresAt: &future}, want: true},
		{name: "expired", d: catalog.Discount{Active: true, ExpiresAt: &past}, want: false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.d.IsUsableAt(now))
		})
	}
}

func TestDiscount_UserScoped(t *testing.T) {
	assert.True(t, catalog.Discount{Name: "Loyalty Points Reward"}.UserScoped())
	assert.True(t, catalog.Discount{Name: "Birthday Treat"}.UserScoped())
	assert.False(t, catalog.Discount{Name: "Happy Hour"}.UserScoped())
}

func TestDiscount_AppliesTo(t *testing.T) {
	catID := uuid.New()
	item := catalog.MenuItem{ID: uuid.New(), CategoryID: catID}

	t.Run("category scope", func(t *testing.T) {
		d := catalog.Discount{Scope: catalog.ScopeCategory, CategoryID: &catID}
		assert.True(t, d.AppliesTo(item))

		other := uuid.New()
		d.CategoryID = &other
		assert.False(t, d.AppliesTo(item))
	})

	t.Run("item scope", func(t *testing.T) {
		d := catalog.Discount{Scope: catalog.ScopeItems, ItemIDs: []uuid.UUID{item.ID}}
		assert.True(t, d.AppliesTo(item))

		d.ItemIDs = []uuid.UUID{uuid.New()}
		assert.False(t, d.AppliesTo(item))
	})
}
