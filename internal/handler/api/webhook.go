package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v83"
	"github.com/stripe/stripe-go/v83/webhook"

	"github.com/khues-restaurant/khues-restaurant-sub001/internal/infra/payment"
	"github.com/khues-restaurant/khues-restaurant-sub001/internal/pkg/config"
	"github.com/khues-restaurant/khues-restaurant-sub001/internal/usecase"
	"github.com/khues-restaurant/khues-restaurant-sub001/internal/usecase/shared"
)

const maxWebhookBodyBytes = int64(65536)

type WebhookHandler struct {
	confirmations usecase.ConfirmationCommands
	cfg           config.StripeConfig
}

func NewWebhookHandler(confirmations usecase.ConfirmationCommands, cfg config.StripeConfig) *WebhookHandler {
	return &WebhookHandler{confirmations: confirmations, cfg: cfg}
}

// StripeWebhook verifies the event signature and settles completed checkout
// sessions. Malformed events are acknowledged with 200 so the processor stops
// retrying; only storage failures return 500 and trigger a redelivery.
func (h *WebhookHandler) StripeWebhook(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxWebhookBodyBytes)

	payload, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Failed to read request body",
		})
		return
	}

	event, err := webhook.ConstructEvent(payload, c.GetHeader("Stripe-Signature"), h.cfg.WebhookSecret)
	if err != nil {
		slog.Warn("webhook signature verification failed", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid signature",
		})
		return
	}

	if event.Type != "checkout.session.completed" {
		c.Status(http.StatusOK)
		return
	}

	var session stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
		slog.Error("failed to decode completed session payload", "event_id", event.ID, "error", err)
		c.Status(http.StatusOK)
		return
	}

	confirmation := h.toConfirmationEvent(&session)
	if err := h.confirmations.HandleCompletedSession(c.Request.Context(), confirmation); err != nil {
		slog.Error("settlement failed, requesting webhook redelivery", "session_id", session.ID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Settlement failed",
		})
		return
	}

	c.Status(http.StatusOK)
}

func (h *WebhookHandler) toConfirmationEvent(session *stripe.CheckoutSession) shared.ConfirmationEvent {
	ev := shared.ConfirmationEvent{
		SessionID:      session.ID,
		Kind:           session.Metadata[payment.MetadataCheckoutType],
		PickupName:     session.Metadata[payment.MetadataPickupName],
		AmountSubtotal: session.AmountSubtotal,
		AmountTotal:    session.AmountTotal,
	}
	if session.PaymentIntent != nil {
		ev.PaymentIntentID = session.PaymentIntent.ID
	}
	if id, err := uuid.Parse(session.Metadata[payment.MetadataUserID]); err == nil {
		ev.UserID = id
	}
	if v, err := strconv.ParseInt(session.Metadata[payment.MetadataTaxCents], 10, 64); err == nil {
		ev.TaxCents = v
	}
	if raw := session.Metadata[payment.MetadataTipCents]; raw != "" {
		if v, err := strconv.ParseInt(raw, 10, 64); err == nil {
			ev.TipCents = v
		}
	}
	if raw := session.Metadata[payment.MetadataStoredValue]; raw != "" {
		if err := json.Unmarshal([]byte(raw), &ev.StoredValueUsage); err != nil {
			slog.Warn("unparseable stored value metadata", "session_id", session.ID, "error", err)
		}
	}
	return ev
}
