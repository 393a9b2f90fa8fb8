//go:build unit

package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/khues-restaurant/khues-restaurant-sub001/internal/domain/order"
	"github.com/khues-restaurant/khues-restaurant-sub001/internal/infra"
	"github.com/khues-restaurant/khues-restaurant-sub001/internal/infra/db"
	"github.com/khues-restaurant/khues-restaurant-sub001/internal/pkg/clock"
	"github.com/khues-restaurant/khues-restaurant-sub001/internal/pkg/config"
	"github.com/khues-restaurant/khues-restaurant-sub001/internal/usecase"
	"github.com/khues-restaurant/khues-restaurant-sub001/internal/usecase/shared"
	sharedmock "github.com/khues-restaurant/khues-restaurant-sub001/tests/mock/shared"
)

type confirmationFixture struct {
	catalog       *sharedmock.MockCatalogReads
	users         *sharedmock.MockUserReads
	drafts        *sharedmock.MockDraftStore
	storedValue   *sharedmock.MockStoredValueRepository
	orders        *sharedmock.MockOrderRepository
	printQueue    *sharedmock.MockPrintQueueRepository
	uow           *sharedmock.MockUnitOfWork
	clock         *clock.MockClock
	confirmations usecase.ConfirmationCommands
}

func newConfirmationFixture(t *testing.T) *confirmationFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &confirmationFixture{
		catalog:     sharedmock.NewMockCatalogReads(ctrl),
		users:       sharedmock.NewMockUserReads(ctrl),
		drafts:      sharedmock.NewMockDraftStore(ctrl),
		storedValue: sharedmock.NewMockStoredValueRepository(ctrl),
		orders:      sharedmock.NewMockOrderRepository(ctrl),
		printQueue:  sharedmock.NewMockPrintQueueRepository(ctrl),
		uow:         sharedmock.NewMockUnitOfWork(ctrl),
		clock:       clock.NewMockClock(validatorNow),
	}

	cfg := config.CheckoutConfig{
		SlotInterval:  15 * time.Minute,
		MaxOrdersSlot: 3,
	}

	f.confirmations = usecase.NewConfirmationUseCase(
		f.catalog, f.users, f.drafts, f.storedValue, f.orders, f.printQueue,
		f.uow, cfg, f.clock,
	)
	return f
}

func (f *confirmationFixture) runTransactions() {
	f.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, db.DBTX) error) error {
			return fn(ctx, nil)
		}).AnyTimes()
}

func settlementEvent(userID uuid.UUID) shared.ConfirmationEvent {
	return shared.ConfirmationEvent{
		SessionID:       "cs_settle",
		PaymentIntentID: "pi_settle",
		Kind:            usecase.CheckoutTypeOrder,
		UserID:          userID,
		PickupName:      "Pat L",
		TaxCents:        222,
		TipCents:        300,
		AmountTotal:     3022,
	}
}

func settlementDraft() *order.DraftOrder {
	d := checkoutDraft()
	return &d
}

func TestConfirmation_HandleCompletedSession(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("ignores other checkout types", func(t *testing.T) {
		f := newConfirmationFixture(t)
		ev := settlementEvent(userID)
		ev.Kind = "subscription"

		assert.NoError(t, f.confirmations.HandleCompletedSession(ctx, ev))
	})

	t.Run("acknowledges events missing identity metadata", func(t *testing.T) {
		f := newConfirmationFixture(t)

		ev := settlementEvent(userID)
		ev.SessionID = ""
		assert.NoError(t, f.confirmations.HandleCompletedSession(ctx, ev))

		ev = settlementEvent(uuid.Nil)
		assert.NoError(t, f.confirmations.HandleCompletedSession(ctx, ev))
	})

	t.Run("acknowledges a replayed session without touching the draft", func(t *testing.T) {
		f := newConfirmationFixture(t)
		ev := settlementEvent(userID)

		f.orders.EXPECT().ExistsByStripeSessionID(gomock.Any(), ev.SessionID).Return(true, nil)

		assert.NoError(t, f.confirmations.HandleCompletedSession(ctx, ev))
	})

	t.Run("acknowledges a session whose draft expired", func(t *testing.T) {
		f := newConfirmationFixture(t)
		ev := settlementEvent(userID)

		f.orders.EXPECT().ExistsByStripeSessionID(gomock.Any(), ev.SessionID).Return(false, nil)
		f.drafts.EXPECT().Load(gomock.Any(), userID).Return(nil, notFound())

		assert.NoError(t, f.confirmations.HandleCompletedSession(ctx, ev))
	})

	t.Run("settles a card-paid session", func(t *testing.T) {
		f := newConfirmationFixture(t)
		f.runTransactions()
		ev := settlementEvent(userID)
		draft := settlementDraft()

		f.orders.EXPECT().ExistsByStripeSessionID(gomock.Any(), ev.SessionID).Return(false, nil)
		f.drafts.EXPECT().Load(gomock.Any(), userID).Return(draft, nil)
		f.users.EXPECT().UserByID(gomock.Any(), userID).Return(userWithPoints(userID, 0), nil)

		var created *order.Order
		f.orders.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ db.DBTX, o *order.Order) (uuid.UUID, error) {
				created = o
				return o.ID(), nil
			})
		f.printQueue.EXPECT().Enqueue(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.drafts.EXPECT().Delete(gomock.Any(), userID).Return(nil)

		require.NoError(t, f.confirmations.HandleCompletedSession(ctx, ev))

		require.NotNil(t, created)
		assert.Equal(t, "cs_settle", created.StripeSessionID())
		assert.Equal(t, int64(2500), created.SubtotalCents())
		assert.Equal(t, int64(3022), created.TotalCents())
		assert.Equal(t, int64(0), created.StoredValueApplied())
		assert.Equal(t, "Pat L", created.PickupName())
		assert.Equal(t, draft.PickupAt, created.PickupAt())
	})

	t.Run("adds stored value usage back into the totals", func(t *testing.T) {
		f := newConfirmationFixture(t)
		f.runTransactions()
		cardID := uuid.New()
		ev := settlementEvent(userID)
		ev.AmountTotal = 2022
		ev.StoredValueUsage = []shared.StoredValueUsage{{Code: "GIFT-1234", Amount: 1000, ID: cardID}}

		f.orders.EXPECT().ExistsByStripeSessionID(gomock.Any(), ev.SessionID).Return(false, nil)
		f.drafts.EXPECT().Load(gomock.Any(), userID).Return(settlementDraft(), nil)
		f.users.EXPECT().UserByID(gomock.Any(), userID).Return(userWithPoints(userID, 0), nil)
		f.storedValue.EXPECT().Debit(gomock.Any(), gomock.Any(), cardID, int64(1000), gomock.Any()).Return(nil)

		var created *order.Order
		f.orders.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ db.DBTX, o *order.Order) (uuid.UUID, error) {
				created = o
				return o.ID(), nil
			})
		f.printQueue.EXPECT().Enqueue(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.drafts.EXPECT().Delete(gomock.Any(), userID).Return(nil)

		require.NoError(t, f.confirmations.HandleCompletedSession(ctx, ev))

		require.NotNil(t, created)
		assert.Equal(t, int64(3022), created.TotalCents())
		assert.Equal(t, int64(2500), created.SubtotalCents())
		assert.Equal(t, int64(1000), created.StoredValueApplied())
	})

	t.Run("duplicate key inside the transaction is a concurrent settle", func(t *testing.T) {
		f := newConfirmationFixture(t)
		f.runTransactions()
		ev := settlementEvent(userID)

		f.orders.EXPECT().ExistsByStripeSessionID(gomock.Any(), ev.SessionID).Return(false, nil)
		f.drafts.EXPECT().Load(gomock.Any(), userID).Return(settlementDraft(), nil)
		f.users.EXPECT().UserByID(gomock.Any(), userID).Return(userWithPoints(userID, 0), nil)
		f.orders.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(uuid.Nil, infra.WrapRepoErr("duplicate session", errors.New("23505"), infra.KindDuplicateKey))

		// The concurrent worker owns the draft cleanup; no Delete here.
		assert.NoError(t, f.confirmations.HandleCompletedSession(ctx, ev))
	})

	t.Run("balance conflict is acknowledged for manual reconciliation", func(t *testing.T) {
		f := newConfirmationFixture(t)
		f.runTransactions()
		cardID := uuid.New()
		ev := settlementEvent(userID)
		ev.AmountTotal = 2022
		ev.StoredValueUsage = []shared.StoredValueUsage{{Code: "GIFT-1234", Amount: 1000, ID: cardID}}

		f.orders.EXPECT().ExistsByStripeSessionID(gomock.Any(), ev.SessionID).Return(false, nil)
		f.drafts.EXPECT().Load(gomock.Any(), userID).Return(settlementDraft(), nil)
		f.users.EXPECT().UserByID(gomock.Any(), userID).Return(userWithPoints(userID, 0), nil)
		f.storedValue.EXPECT().Debit(gomock.Any(), gomock.Any(), cardID, int64(1000), gomock.Any()).
			Return(infra.WrapRepoErr("insufficient stored value balance", errors.New("0 rows"), infra.KindConflict))

		assert.NoError(t, f.confirmations.HandleCompletedSession(ctx, ev))
	})

	t.Run("storage failure surfaces for redelivery", func(t *testing.T) {
		f := newConfirmationFixture(t)
		ev := settlementEvent(userID)

		f.orders.EXPECT().ExistsByStripeSessionID(gomock.Any(), ev.SessionID).
			Return(false, infra.WrapRepoErr("query failed", errors.New("connection reset"), infra.KindDBFailure))

		err := f.confirmations.HandleCompletedSession(ctx, ev)
		assert.ErrorIs(t, err, usecase.ErrSettlementFailed)
	})
}
