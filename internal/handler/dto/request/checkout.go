package request

import (
	"github.com/khues-restaurant/khues-restaurant-sub001/internal/domain/order"
)

type CheckoutRequest struct {
	Draft      DraftOrderRequest `json:"draft" binding:"required"`
	PickupName string            `json:"pickupName" binding:"required,max=100"`
}

type RefundRequest struct {
	Reason string `json:"reason" binding:"omitempty,oneof=duplicate fraudulent requested_by_customer"`
}

// ToReason defaults to requested_by_customer when the admin gave none.
func (r RefundRequest) ToReason() order.RefundReason {
	if r.Reason == "" {
		return order.RefundRequestedByCustomer
	}
	return order.RefundReason(r.Reason)
}
