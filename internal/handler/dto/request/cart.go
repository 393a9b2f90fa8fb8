package request

import (
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"

	"github.com/khues-restaurant/khues-restaurant-sub001/internal/domain/order"
)

type TipRequest struct {
	Kind  string `json:"kind" binding:"omitempty,oneof=percent fixed"`
	Value int32  `json:"value" binding:"min=0"`
}

type LineItemRequest struct {
	Seq              int32                   `json:"seq"`
	ItemID           uuid.UUID               `json:"itemId" binding:"required"`
	Name             string                  `json:"name" binding:"required"`
	Customizations   map[uuid.UUID]uuid.UUID `json:"customizations"`
	DiscountID       *uuid.UUID              `json:"discountId"`
	Instructions     string                  `json:"instructions" binding:"max=500"`
	Quantity         int32                   `json:"quantity" binding:"required,min=1,max=20"`
	UnitPriceCents   int32                   `json:"unitPriceCents" binding:"min=0"`
	PointsRedeemed   bool                    `json:"pointsRedeemed"`
	BirthdayRedeemed bool                    `json:"birthdayRedeemed"`
}

type DraftOrderRequest struct {
	PickupAt        time.Time         `json:"pickupAt" binding:"required"`
	ASAP            bool              `json:"asap"`
	Items           []LineItemRequest `json:"items" binding:"required,min=1,dive"`
	Tip             TipRequest        `json:"tip"`
	IncludeUtensils bool              `json:"includeUtensils"`
	DiscountID      *uuid.UUID        `json:"discountId"`
	RewardID        *uuid.UUID        `json:"rewardId"`
	StoredValueCode *string           `json:"storedValueCode"`
}

// ToDomain maps the bound request onto the domain draft and runs the domain's
// own schema check; values that pass are treated as trusted downstream.
func (r DraftOrderRequest) ToDomain() (order.DraftOrder, error) {
	var draft order.DraftOrder
	if err := copier.Copy(&draft, &r); err != nil {
		return order.DraftOrder{}, err
	}
	draft.Tip = order.Tip{Kind: order.TipKind(r.Tip.Kind), Value: r.Tip.Value}

	if err := draft.Validate(); err != nil {
		return order.DraftOrder{}, err
	}
	return draft, nil
}
