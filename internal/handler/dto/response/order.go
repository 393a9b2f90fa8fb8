package response

import (
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"

	"github.com/khues-restaurant/khues-restaurant-sub001/internal/usecase/shared"
)

type OrderItemResponse struct {
	Name             string   `json:"name"`
	Quantity         int32    `json:"quantity"`
	UnitPriceCents   int32    `json:"unitPriceCents"`
	Instructions     string   `json:"instructions,omitempty"`
	PointsRedeemed   bool     `json:"pointsRedeemed,omitempty"`
	BirthdayRedeemed bool     `json:"birthdayRedeemed,omitempty"`
	Customizations   []string `json:"customizations,omitempty"`
}

type OrderResponse struct {
	ID                 uuid.UUID           `json:"id"`
	PickupName         string              `json:"pickupName"`
	PickupAt           time.Time           `json:"pickupAt"`
	ASAP               bool                `json:"asap,omitempty"`
	Status             string              `json:"status"`
	SubtotalCents      int64               `json:"subtotalCents"`
	TaxCents           int64               `json:"taxCents"`
	TipCents           int64               `json:"tipCents"`
	TotalCents         int64               `json:"totalCents"`
	StoredValueApplied int64               `json:"storedValueApplied,omitempty"`
	StartedAt          *time.Time          `json:"startedAt,omitempty"`
	CompletedAt        *time.Time          `json:"completedAt,omitempty"`
	RefundedAt         *time.Time          `json:"refundedAt,omitempty"`
	CreatedAt          time.Time           `json:"createdAt"`
	Items              []OrderItemResponse `json:"items,omitempty"`
}

func FromOrderView(view *shared.OrderView) *OrderResponse {
	var resp OrderResponse
	_ = copier.Copy(&resp, view)
	return &resp
}

func FromOrderViews(views []shared.OrderView) []*OrderResponse {
	resp := make([]*OrderResponse, len(views))
	for i := range views {
		resp[i] = FromOrderView(&views[i])
	}
	return resp
}
