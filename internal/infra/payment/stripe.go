package payment

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/stripe/stripe-go/v83"
	"github.com/stripe/stripe-go/v83/checkout/session"
	"github.com/stripe/stripe-go/v83/refund"

	"github.com/khues-restaurant/khues-restaurant-sub001/internal/domain/order"
	"github.com/khues-restaurant/khues-restaurant-sub001/internal/pkg/config"
	"github.com/khues-restaurant/khues-restaurant-sub001/internal/pkg/errs"
	"github.com/khues-restaurant/khues-restaurant-sub001/internal/usecase/shared"
)

const (
	MetadataCheckoutType = "checkout_type"
	MetadataUserID       = "user_id"
	MetadataPickupName   = "pickup_name"
	MetadataTaxCents     = "tax_cents"
	MetadataTipCents     = "tip_cents"
	MetadataStoredValue  = "stored_value"

	CheckoutTypeOrder = "order"
)

// StripeGateway drives the hosted checkout flow. The session carries enough
// metadata to rebuild settlement context from the webhook alone; the draft in
// redis holds the full item detail.
type StripeGateway struct {
	cfg config.StripeConfig
}

func NewStripeGateway(cfg config.StripeConfig) *StripeGateway {
	stripe.Key = cfg.SecretKey
	return &StripeGateway{cfg: cfg}
}

func (g *StripeGateway) CreateCheckoutSession(ctx context.Context, p shared.CheckoutSessionParams) (*shared.CheckoutSession, error) {
	lineItems := make([]*stripe.CheckoutSessionLineItemParams, 0, len(p.Lines))
	for _, line := range p.Lines {
		priceData := &stripe.CheckoutSessionLineItemPriceDataParams{
			Currency:   stripe.String(g.cfg.Currency),
			UnitAmount: stripe.Int64(line.UnitAmountCents),
			ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
				Name: stripe.String(line.Name),
			},
		}
		if line.Description != "" {
			priceData.ProductData.Description = stripe.String(line.Description)
		}
		lineItems = append(lineItems, &stripe.CheckoutSessionLineItemParams{
			PriceData: priceData,
			Quantity:  stripe.Int64(line.Quantity),
		})
	}

	metadata := map[string]string{
		MetadataCheckoutType: CheckoutTypeOrder,
		MetadataUserID:       p.UserID.String(),
		MetadataPickupName:   p.PickupName,
		MetadataTaxCents:     strconv.FormatInt(p.TaxCents, 10),
		MetadataTipCents:     strconv.FormatInt(p.TipCents, 10),
	}
	if len(p.StoredValueUsage) > 0 {
		usage, err := json.Marshal(p.StoredValueUsage)
		if err != nil {
			return nil, errs.Wrap(err, "failed to marshal stored value usage")
		}
		metadata[MetadataStoredValue] = string(usage)
	}

	params := &stripe.CheckoutSessionParams{
		Mode:       stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems:  lineItems,
		SuccessURL: stripe.String(g.cfg.SuccessURL),
		CancelURL:  stripe.String(g.cfg.CancelURL),
		ExpiresAt:  stripe.Int64(p.ExpiresAt.Unix()),
		Metadata:   metadata,
	}
	params.Context = ctx

	s, err := session.New(params)
	if err != nil {
		return nil, errs.Wrap(err, "failed to create checkout session")
	}

	return &shared.CheckoutSession{ID: s.ID, URL: s.URL}, nil
}

func (g *StripeGateway) ExpireSession(ctx context.Context, sessionID string) error {
	params := &stripe.CheckoutSessionExpireParams{}
	params.Context = ctx

	if _, err := session.Expire(sessionID, params); err != nil {
		return errs.Wrap(err, "failed to expire checkout session")
	}

	return nil
}

func (g *StripeGateway) SessionPaymentIntent(ctx context.Context, sessionID string) (string, error) {
	params := &stripe.CheckoutSessionParams{}
	params.Context = ctx

	s, err := session.Get(sessionID, params)
	if err != nil {
		return "", errs.Wrap(err, "failed to fetch checkout session")
	}
	if s.PaymentIntent == nil {
		return "", errs.New("checkout session has no payment intent")
	}

	return s.PaymentIntent.ID, nil
}

// Refund forwards the reason verbatim; the processor rejects values outside
// its accepted set.
func (g *StripeGateway) Refund(ctx context.Context, paymentIntentID string, reason order.RefundReason) error {
	params := &stripe.RefundParams{
		PaymentIntent: stripe.String(paymentIntentID),
		Reason:        stripe.String(string(reason)),
	}
	params.Context = ctx

	if _, err := refund.New(params); err != nil {
		return errs.Wrap(err, "failed to create refund")
	}

	return nil
}
