package response

import (
	"github.com/google/uuid"

	"github.com/khues-restaurant/khues-restaurant-sub001/internal/usecase"
)

// CheckoutResponse is either a terminal paid result (stored value covered the
// whole total) or a payment session the client must redirect to.
type CheckoutResponse struct {
	Paid        bool       `json:"paid"`
	OrderID     *uuid.UUID `json:"orderId,omitempty"`
	SessionID   string     `json:"sessionId,omitempty"`
	CheckoutURL string     `json:"checkoutUrl,omitempty"`
}

func FromCheckoutResult(result *usecase.CheckoutResult) *CheckoutResponse {
	resp := &CheckoutResponse{
		Paid:        result.Paid,
		SessionID:   result.SessionID,
		CheckoutURL: result.SessionURL,
	}
	if result.Paid {
		id := result.OrderID
		resp.OrderID = &id
	}
	return resp
}
