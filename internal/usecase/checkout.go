package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/khues-restaurant/khues-restaurant-sub001/internal/domain/catalog"
	"github.com/khues-restaurant/khues-restaurant-sub001/internal/domain/order"
	"github.com/khues-restaurant/khues-restaurant-sub001/internal/domain/pricing"
	"github.com/khues-restaurant/khues-restaurant-sub001/internal/infra"
	"github.com/khues-restaurant/khues-restaurant-sub001/internal/infra/db"
	"github.com/khues-restaurant/khues-restaurant-sub001/internal/pkg/clock"
	"github.com/khues-restaurant/khues-restaurant-sub001/internal/pkg/config"
	"github.com/khues-restaurant/khues-restaurant-sub001/internal/pkg/errs"
	"github.com/khues-restaurant/khues-restaurant-sub001/internal/usecase/shared"
)

var (
	ErrStoredValueCardNotFound = errs.New("stored value card not found")
	ErrStoredValueConflict     = errs.New("stored value balance conflict")
	ErrUserNotFound            = errs.New("user not found")
	ErrCheckoutFailed          = errs.New("checkout failed")
	ErrPaymentGatewayFailed    = errs.New("payment gateway failed")
)

// CheckoutResult is either a terminal paid handle (stored value fully covered
// the total, no payment session exists) or a payment-session handle the
// client must redirect to.
type CheckoutResult struct {
	Paid       bool
	OrderID    uuid.UUID
	SessionID  string
	SessionURL string
}

type CheckoutCommands interface {
	CreateCheckout(ctx context.Context, userID uuid.UUID, draft order.DraftOrder, pickupName string) (*CheckoutResult, error)
}

type checkoutUseCaseImpl struct {
	catalog     shared.CatalogReads
	users       shared.UserReads
	drafts      shared.DraftStore
	storedValue shared.StoredValueRepository
	orders      shared.OrderRepository
	printQueue  shared.PrintQueueRepository
	gateway     shared.PaymentGateway
	calc        pricing.Calculator
	uow         shared.UnitOfWork
	cfg         config.CheckoutConfig
	clock       clock.Clock
}

func NewCheckoutUseCase(
	catalogReads shared.CatalogReads,
	userReads shared.UserReads,
	drafts shared.DraftStore,
	storedValue shared.StoredValueRepository,
	orders shared.OrderRepository,
	printQueue shared.PrintQueueRepository,
	gateway shared.PaymentGateway,
	calc pricing.Calculator,
	uow shared.UnitOfWork,
	cfg config.CheckoutConfig,
	clk clock.Clock,
) CheckoutCommands {
	return &checkoutUseCaseImpl{
		catalog:     catalogReads,
		users:       userReads,
		drafts:      drafts,
		storedValue: storedValue,
		orders:      orders,
		printQueue:  printQueue,
		gateway:     gateway,
		calc:        calc,
		uow:         uow,
		cfg:         cfg,
		clock:       clk,
	}
}

func (u *checkoutUseCaseImpl) CreateCheckout(
	ctx context.Context,
	userID uuid.UUID,
	draft order.DraftOrder,
	pickupName string,
) (*CheckoutResult, error) {
	if err := draft.Validate(); err != nil {
		return nil, errs.Mark(err, ErrInvalidDraft)
	}

	idx, err := buildCatalogIndex(ctx, u.catalog, draft.Items)
	if err != nil {
		return nil, err
	}
	discounts, err := discountIndex(ctx, u.catalog, draft.Items)
	if err != nil {
		return nil, err
	}

	lines := u.priceLines(draft, idx, discounts)
	subtotal := u.calc.SubtotalCents(draft.Items, idx.choices, discounts)
	tax := u.calc.TaxCents(subtotal)
	tip := u.calc.TipCents(draft.Tip, subtotal)
	total := subtotal + tax + tip

	var usage []shared.StoredValueUsage
	if code := draft.Code(); code != "" {
		card, err := u.storedValue.FindByCode(ctx, code)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return nil, ErrStoredValueCardNotFound
			}
			return nil, errs.Mark(err, ErrCheckoutFailed)
		}
		if card.BalanceCents > 0 {
			covered := min(total, card.BalanceCents)
			if covered == total {
				return u.settleWithCard(ctx, userID, draft, idx, card, subtotal, tax, tip, total)
			}
			usage = append(usage, shared.StoredValueUsage{Code: card.Code, Amount: covered, ID: card.ID})
			remainder := total - covered
			lines = []shared.PricedLine{{
				Name:            "Balance after stored value",
				Description:     fmt.Sprintf("Order total %s, stored value applied %s", formatDollars(total), formatDollars(covered)),
				UnitAmountCents: remainder,
				Quantity:        1,
			}}
		}
	}

	// The draft must be readable by the confirmation handler before a session
	// can possibly complete.
	if err := u.drafts.Save(ctx, userID, &draft, u.cfg.DraftTTL); err != nil {
		return nil, errs.Mark(err, ErrCheckoutFailed)
	}

	session, err := u.gateway.CreateCheckoutSession(ctx, shared.CheckoutSessionParams{
		UserID:           userID,
		PickupName:       pickupName,
		Lines:            lines,
		TaxCents:         tax,
		TipCents:         tip,
		ExpiresAt:        u.clock.Now().Add(30 * time.Minute),
		StoredValueUsage: usage,
	})
	if err != nil {
		return nil, errs.Mark(err, ErrPaymentGatewayFailed)
	}

	u.scheduleExpiry(session.ID)

	return &CheckoutResult{SessionID: session.ID, SessionURL: session.URL}, nil
}

// priceLines builds one payment-processor line per ordered item plus a tax
// line and, when present, a tip line.
func (u *checkoutUseCaseImpl) priceLines(
	draft order.DraftOrder,
	idx *catalogIndex,
	discounts map[uuid.UUID]*catalog.Discount,
) []shared.PricedLine {
	lines := make([]shared.PricedLine, 0, len(draft.Items)+2)
	for _, item := range draft.Items {
		var disc *catalog.Discount
		if item.DiscountID != nil {
			disc = discounts[*item.DiscountID]
		}
		lines = append(lines, shared.PricedLine{
			Name:            item.Name,
			Description:     describeLine(item, idx),
			UnitAmountCents: u.calc.UnitPriceCents(item, idx.choices, disc),
			Quantity:        int64(item.Quantity),
		})
	}

	subtotal := u.calc.SubtotalCents(draft.Items, idx.choices, discounts)
	if tax := u.calc.TaxCents(subtotal); tax > 0 {
		lines = append(lines, shared.PricedLine{Name: "Sales tax", UnitAmountCents: tax, Quantity: 1})
	}
	if tip := u.calc.TipCents(draft.Tip, subtotal); tip > 0 {
		lines = append(lines, shared.PricedLine{Name: "Tip", UnitAmountCents: tip, Quantity: 1})
	}
	return lines
}

func (u *checkoutUseCaseImpl) scheduleExpiry(sessionID string) {
	// Best effort: a process restart loses the timer and the processor's own
	// timeout takes over.
	time.AfterFunc(u.cfg.SessionExpiry, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := u.gateway.ExpireSession(ctx, sessionID); err != nil {
			slog.Warn("failed to expire abandoned checkout session", "session_id", sessionID, "error", err)
		}
	})
}

// settleWithCard settles synchronously: the card fully covers the total, so
// the order is created directly with no payment session. The balance floor is
// enforced inside the same transaction as the order insert.
func (u *checkoutUseCaseImpl) settleWithCard(
	ctx context.Context,
	userID uuid.UUID,
	draft order.DraftOrder,
	idx *catalogIndex,
	card *shared.StoredValueCardSnapshot,
	subtotal, tax, tip, total int64,
) (*CheckoutResult, error) {
	user, err := u.users.UserByID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, errs.Mark(err, ErrCheckoutFailed)
	}

	pickupName := user.FirstName
	if user.LastName != "" {
		pickupName = user.FirstName + " " + user.LastName
	}

	o := order.NewOrder(order.NewOrderParams{
		UserID:             userID,
		PickupName:         pickupName,
		FirstName:          user.FirstName,
		LastName:           user.LastName,
		Email:              user.Email,
		PickupAt:           draft.PickupAt,
		ASAP:               draft.ASAP,
		IncludeUtensils:    draft.IncludeUtensils,
		Items:              buildOrderItems(draft.Items, idx),
		SubtotalCents:      subtotal,
		TaxCents:           tax,
		TipCents:           tip,
		TotalCents:         total,
		StoredValueApplied: total,
		CreatedAt:          u.clock.Now(),
	})

	err = u.uow.Within(ctx, func(ctx context.Context, tx db.DBTX) error {
		note := fmt.Sprintf("order %s", o.ID())
		if err := u.storedValue.Debit(ctx, tx, card.ID, total, note); err != nil {
			return err
		}
		if _, err := u.orders.Create(ctx, tx, o); err != nil {
			return err
		}
		return u.printQueue.Enqueue(ctx, tx, o.ID())
	})
	if err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			return nil, ErrStoredValueConflict
		}
		return nil, errs.Mark(err, ErrCheckoutFailed)
	}

	if err := u.drafts.Delete(ctx, userID); err != nil {
		slog.Warn("failed to delete settled draft", "user_id", userID, "error", err)
	}

	return &CheckoutResult{Paid: true, OrderID: o.ID()}, nil
}
