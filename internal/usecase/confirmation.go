package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/khues-restaurant/khues-restaurant-sub001/internal/domain/order"
	"github.com/khues-restaurant/khues-restaurant-sub001/internal/infra"
	"github.com/khues-restaurant/khues-restaurant-sub001/internal/infra/db"
	"github.com/khues-restaurant/khues-restaurant-sub001/internal/pkg/clock"
	"github.com/khues-restaurant/khues-restaurant-sub001/internal/pkg/config"
	"github.com/khues-restaurant/khues-restaurant-sub001/internal/pkg/errs"
	"github.com/khues-restaurant/khues-restaurant-sub001/internal/usecase/shared"
)

var ErrSettlementFailed = errs.New("settlement failed")

// CheckoutTypeOrder discriminates regular orders from other products sharing
// the same completed-session event type.
const CheckoutTypeOrder = "order"

type ConfirmationCommands interface {
	// HandleCompletedSession settles a signature-verified completed-session
	// event. Delivery is at-least-once; replays and malformed events are
	// acknowledged as no-ops. Only storage failures return an error.
	HandleCompletedSession(ctx context.Context, event shared.ConfirmationEvent) error
}

type confirmationUseCaseImpl struct {
	catalog     shared.CatalogReads
	users       shared.UserReads
	drafts      shared.DraftStore
	storedValue shared.StoredValueRepository
	orders      shared.OrderRepository
	printQueue  shared.PrintQueueRepository
	uow         shared.UnitOfWork
	cfg         config.CheckoutConfig
	clock       clock.Clock
}

func NewConfirmationUseCase(
	catalogReads shared.CatalogReads,
	userReads shared.UserReads,
	drafts shared.DraftStore,
	storedValue shared.StoredValueRepository,
	orders shared.OrderRepository,
	printQueue shared.PrintQueueRepository,
	uow shared.UnitOfWork,
	cfg config.CheckoutConfig,
	clk clock.Clock,
) ConfirmationCommands {
	return &confirmationUseCaseImpl{
		catalog:     catalogReads,
		users:       userReads,
		drafts:      drafts,
		storedValue: storedValue,
		orders:      orders,
		printQueue:  printQueue,
		uow:         uow,
		cfg:         cfg,
		clock:       clk,
	}
}

// errAlreadySettled aborts the settlement transaction when a concurrent
// worker inserted the order first; the unique index on the session id is the
// actual idempotency guarantee.
var errAlreadySettled = errs.New("session already settled")

func (u *confirmationUseCaseImpl) HandleCompletedSession(ctx context.Context, event shared.ConfirmationEvent) error {
	log := slog.With("session_id", event.SessionID)

	if event.Kind != CheckoutTypeOrder {
		log.Info("ignoring completed session of other checkout type", "checkout_type", event.Kind)
		return nil
	}
	if event.SessionID == "" || event.UserID == uuid.Nil {
		log.Error("completed session missing identity metadata")
		return nil
	}

	exists, err := u.orders.ExistsByStripeSessionID(ctx, event.SessionID)
	if err != nil {
		return errs.Mark(err, ErrSettlementFailed)
	}
	if exists {
		log.Info("session already settled, acknowledging replay")
		return nil
	}

	draft, err := u.drafts.Load(ctx, event.UserID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			log.Error("no transient draft for completed session", "user_id", event.UserID)
			return nil
		}
		return errs.Mark(err, ErrSettlementFailed)
	}
	if err := draft.Validate(); err != nil {
		log.Error("transient draft failed schema validation", "error", err)
		return nil
	}

	idx, err := buildCatalogIndex(ctx, u.catalog, draft.Items)
	if err != nil {
		log.Error("catalog lookup failed during settlement", "error", err)
		return nil
	}

	o, err := u.materialize(ctx, event, draft, idx)
	if err != nil {
		return err
	}
	if o == nil {
		return nil
	}

	if err := u.drafts.Delete(ctx, event.UserID); err != nil {
		log.Warn("failed to delete settled draft", "user_id", event.UserID, "error", err)
	}

	log.Info("order settled", "order_id", o.ID(), "total_cents", o.TotalCents())
	return nil
}

// materialize creates the order, the stored-value debits and the print-queue
// row as one transaction. The amounts come from the processor's own numbers:
// tip and tax ride in the session metadata and the stored-value application
// is added back to reconstruct the original total.
func (u *confirmationUseCaseImpl) materialize(
	ctx context.Context,
	event shared.ConfirmationEvent,
	draft *order.DraftOrder,
	idx *catalogIndex,
) (*order.Order, error) {
	var applied int64
	for _, usage := range event.StoredValueUsage {
		applied += usage.Amount
	}

	total := event.AmountTotal + applied
	subtotal := total - event.TaxCents - event.TipCents

	var user *shared.UserSnapshot
	if snapshot, err := u.users.UserByID(ctx, event.UserID); err == nil {
		user = snapshot
	}
	first, last := splitPickupName(event.PickupName, user)
	email := ""
	if user != nil {
		email = user.Email
	}

	o := order.NewOrder(order.NewOrderParams{
		UserID:             event.UserID,
		StripeSessionID:    event.SessionID,
		PaymentIntentID:    event.PaymentIntentID,
		PickupName:         event.PickupName,
		FirstName:          first,
		LastName:           last,
		Email:              email,
		PickupAt:           draft.PickupAt,
		ASAP:               draft.ASAP,
		IncludeUtensils:    draft.IncludeUtensils,
		Items:              buildOrderItems(draft.Items, idx),
		SubtotalCents:      subtotal,
		TaxCents:           event.TaxCents,
		TipCents:           event.TipCents,
		TotalCents:         total,
		StoredValueApplied: applied,
		CreatedAt:          u.clock.Now(),
	})

	err := u.uow.Within(ctx, func(ctx context.Context, tx db.DBTX) error {
		if u.cfg.StrictSlots && !o.ASAP() {
			if err := reserveSlot(ctx, tx, o, u.cfg); err != nil {
				return err
			}
		}
		for _, usage := range event.StoredValueUsage {
			note := fmt.Sprintf("order %s", o.ID())
			if err := u.storedValue.Debit(ctx, tx, usage.ID, usage.Amount, note); err != nil {
				return err
			}
		}
		if _, err := u.orders.Create(ctx, tx, o); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errAlreadySettled
			}
			return err
		}
		return u.printQueue.Enqueue(ctx, tx, o.ID())
	})
	if err != nil {
		if errors.Is(err, errAlreadySettled) {
			slog.Info("session settled by concurrent worker", "session_id", event.SessionID)
			return nil, nil
		}
		if infra.IsKind(err, infra.KindConflict) {
			// A payment completed but the card balance moved underneath it.
			// Logged for manual reconciliation; the event is acknowledged.
			slog.Error("stored value balance conflict during settlement", "session_id", event.SessionID)
			return nil, nil
		}
		return nil, errs.Mark(err, ErrSettlementFailed)
	}

	return o, nil
}

// reserveSlot serializes slot allocation per time bucket with an advisory
// transaction lock held until commit, then re-counts under the lock. The
// payment has already completed, so an overfull slot shifts the pickup
// forward instead of rejecting the order.
func reserveSlot(ctx context.Context, tx db.DBTX, o *order.Order, cfg config.CheckoutConfig) error {
	const lockQ = `SELECT pg_advisory_xact_lock($1)`
	const countQ = `
		SELECT count(*)
		FROM orders
		WHERE pickup_at >= $1 AND pickup_at < $2 AND status <> 'canceled'`

	pickup := o.PickupAt()
	for range maxSlotWalk {
		from := pickup.Truncate(cfg.SlotInterval)
		if _, err := tx.Exec(ctx, lockQ, from.Unix()/int64(cfg.SlotInterval.Seconds())); err != nil {
			return err
		}
		var count int
		if err := tx.QueryRow(ctx, countQ, from, from.Add(cfg.SlotInterval)).Scan(&count); err != nil {
			return err
		}
		if count < cfg.MaxOrdersSlot {
			o.ShiftPickup(pickup)
			return nil
		}
		pickup = pickup.Add(cfg.SlotInterval)
	}

	return errs.New("no open pickup slot within a week")
}
