package order

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	MaxInstructionsLength = 500
	MaxLineQuantity       = 20
)

var (
	ErrNoItems             = errors.New("draft has no items")
	ErrInvalidQuantity     = errors.New("line quantity out of range")
	ErrInstructionsTooLong = errors.New("special instructions too long")
	ErrInvalidTip          = errors.New("invalid tip")
)

type TipKind string

const (
	TipPercent TipKind = "percent"
	TipFixed   TipKind = "fixed"
)

// Tip is either a whole-number percentage of the subtotal or a fixed amount
// in cents. A zero Value means no tip.
type Tip struct {
	Kind  TipKind `json:"kind"`
	Value int32   `json:"value"`
}

func (t Tip) IsZero() bool {
	return t.Value == 0
}

func (t Tip) validate() error {
	if t.Value < 0 {
		return ErrInvalidTip
	}
	switch t.Kind {
	case TipPercent, TipFixed:
		return nil
	case "":
		if t.Value == 0 {
			return nil
		}
		return ErrInvalidTip
	default:
		return ErrInvalidTip
	}
}

// LineItem is one ordered product occurrence on a draft. Seq is a monotonic
// per-draft sequence id used for list identity on the client; it never
// changes once assigned. UnitPriceCents is the catalog price snapshot taken
// when the line was added and must still match at validation time.
type LineItem struct {
	Seq              int32                   `json:"seq"`
	ItemID           uuid.UUID               `json:"itemId"`
	Name             string                  `json:"name"`
	Customizations   map[uuid.UUID]uuid.UUID `json:"customizations,omitempty"`
	DiscountID       *uuid.UUID              `json:"discountId,omitempty"`
	Instructions     string                  `json:"instructions,omitempty"`
	Quantity         int32                   `json:"quantity"`
	UnitPriceCents   int32                   `json:"unitPriceCents"`
	PointsRedeemed   bool                    `json:"pointsRedeemed,omitempty"`
	BirthdayRedeemed bool                    `json:"birthdayRedeemed,omitempty"`
}

func (l LineItem) validate() error {
	if l.Quantity < 1 || l.Quantity > MaxLineQuantity {
		return ErrInvalidQuantity
	}
	if len(l.Instructions) > MaxInstructionsLength {
		return ErrInstructionsTooLong
	}
	return nil
}

// IsReward reports whether the line is paid in loyalty points or granted as
// a birthday entitlement rather than currency.
func (l LineItem) IsReward() bool {
	return l.PointsRedeemed || l.BirthdayRedeemed
}

func (l LineItem) clone() LineItem {
	out := l
	if l.Customizations != nil {
		out.Customizations = make(map[uuid.UUID]uuid.UUID, len(l.Customizations))
		for k, v := range l.Customizations {
			out.Customizations[k] = v
		}
	}
	if l.DiscountID != nil {
		id := *l.DiscountID
		out.DiscountID = &id
	}
	return out
}

// DraftOrder is the customer's in-progress, unpaid cart. It is held by the
// client, revalidated server-side before every payment attempt, and
// discarded once settlement succeeds.
type DraftOrder struct {
	PickupAt        time.Time  `json:"pickupAt"`
	ASAP            bool       `json:"asap,omitempty"`
	Items           []LineItem `json:"items"`
	Tip             Tip        `json:"tip"`
	IncludeUtensils bool       `json:"includeUtensils,omitempty"`
	DiscountID      *uuid.UUID `json:"discountId,omitempty"`
	RewardID        *uuid.UUID `json:"rewardId,omitempty"`
	StoredValueCode *string    `json:"storedValueCode,omitempty"`
}

// Validate is the schema check run once at the system boundary (request
// deserialization, transient draft read-back). Values that pass are treated
// as trusted internally.
func (d DraftOrder) Validate() error {
	if len(d.Items) == 0 {
		return ErrNoItems
	}
	if err := d.Tip.validate(); err != nil {
		return err
	}
	for _, l := range d.Items {
		if err := l.validate(); err != nil {
			return err
		}
	}
	return nil
}

// Clone returns a deep copy so validation can correct a draft without
// mutating the caller's value.
func (d DraftOrder) Clone() DraftOrder {
	out := d
	out.Items = make([]LineItem, len(d.Items))
	for i, l := range d.Items {
		out.Items[i] = l.clone()
	}
	if d.DiscountID != nil {
		id := *d.DiscountID
		out.DiscountID = &id
	}
	if d.RewardID != nil {
		id := *d.RewardID
		out.RewardID = &id
	}
	if d.StoredValueCode != nil {
		code := strings.TrimSpace(*d.StoredValueCode)
		out.StoredValueCode = &code
	}
	return out
}

func (d DraftOrder) Code() string {
	if d.StoredValueCode == nil {
		return ""
	}
	return strings.TrimSpace(*d.StoredValueCode)
}
