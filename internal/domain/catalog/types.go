package catalog

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// MenuItem is a point-in-time snapshot of a catalog item. The validator
// compares a draft line's price snapshot against PriceCents and drops the
// line on any disagreement.
type MenuItem struct {
	ID             uuid.UUID
	Name           string
	PriceCents     int32
	Available      bool
	Alcoholic      bool
	WeekendSpecial bool
	Quantity       int32
	CategoryID     uuid.UUID
}

// Orderable reports whether the item can be sold online at all. Alcohol is
// never orderable online regardless of availability.
func (m MenuItem) Orderable() bool {
	return m.Available && !m.Alcoholic && m.Quantity > 0
}

type CustomizationChoice struct {
	ID              uuid.UUID
	CategoryID      uuid.UUID
	Name            string
	Available       bool
	AdjustmentCents int32
	ListOrder       int32
}

// CustomizationCategory holds its choices sorted by ListOrder; ListOrder is
// the deterministic fallback ranking when the default choice is unavailable.
type CustomizationCategory struct {
	ID              uuid.UUID
	Name            string
	DefaultChoiceID uuid.UUID
	Choices         []CustomizationChoice
}

func (c CustomizationCategory) Choice(id uuid.UUID) (CustomizationChoice, bool) {
	for _, ch := range c.Choices {
		if ch.ID == id {
			return ch, true
		}
	}
	return CustomizationChoice{}, false
}

// ResolveSelection returns a usable choice id for the given selection:
// the selection itself when it exists and is available, otherwise the
// category default, otherwise the first available choice in list order.
// ok is false when every choice in the category is unavailable.
func (c CustomizationCategory) ResolveSelection(selected uuid.UUID) (uuid.UUID, bool) {
	if ch, found := c.Choice(selected); found && ch.Available {
		return ch.ID, true
	}
	if def, found := c.Choice(c.DefaultChoiceID); found && def.Available {
		return def.ID, true
	}
	for _, ch := range c.Choices {
		if ch.Available {
			return ch.ID, true
		}
	}
	return uuid.Nil, false
}

type DiscountScope string

const (
	ScopeCategory DiscountScope = "category"
	ScopeItems    DiscountScope = "items"
)

type Discount struct {
	ID             uuid.UUID
	Name           string
	Scope          DiscountScope
	CategoryID     *uuid.UUID
	ItemIDs        []uuid.UUID
	AmountOffCents *int32
	PercentOff     *float64
	ExpiresAt      *time.Time
	Active         bool
	UserID         *uuid.UUID
}

func (d Discount) IsUsableAt(t time.Time) bool {
	if !d.Active {
		return false
	}
	if d.ExpiresAt != nil && t.After(*d.ExpiresAt) {
		return false
	}
	return true
}

func (d Discount) AppliesTo(item MenuItem) bool {
	switch d.Scope {
	case ScopeCategory:
		return d.CategoryID != nil && *d.CategoryID == item.CategoryID
	case ScopeItems:
		for _, id := range d.ItemIDs {
			if id == item.ID {
				return true
			}
		}
	}
	return false
}

// UserScoped reports whether the discount belongs to a single user. Loyalty
// point and birthday discounts are identified by name, matching how the
// catalog authors label them.
func (d Discount) UserScoped() bool {
	name := strings.ToLower(d.Name)
	return strings.Contains(name, "points") || strings.Contains(name, "birthday")
}

func (d Discount) OwnedBy(userID uuid.UUID) bool {
	return d.UserID != nil && *d.UserID == userID
}
