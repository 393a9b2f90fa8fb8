//go:build unit

package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/khues-restaurant/khues-restaurant-sub001/internal/domain/order"
	"github.com/khues-restaurant/khues-restaurant-sub001/internal/domain/pricing"
	"github.com/khues-restaurant/khues-restaurant-sub001/internal/infra"
	"github.com/khues-restaurant/khues-restaurant-sub001/internal/infra/db"
	"github.com/khues-restaurant/khues-restaurant-sub001/internal/pkg/clock"
	"github.com/khues-restaurant/khues-restaurant-sub001/internal/pkg/config"
	"github.com/khues-restaurant/khues-restaurant-sub001/internal/usecase"
	"github.com/khues-restaurant/khues-restaurant-sub001/internal/usecase/shared"
	sharedmock "github.com/khues-restaurant/khues-restaurant-sub001/tests/mock/shared"
)

type checkoutFixture struct {
	catalog     *sharedmock.MockCatalogReads
	users       *sharedmock.MockUserReads
	drafts      *sharedmock.MockDraftStore
	storedValue *sharedmock.MockStoredValueRepository
	orders      *sharedmock.MockOrderRepository
	printQueue  *sharedmock.MockPrintQueueRepository
	gateway     *sharedmock.MockPaymentGateway
	uow         *sharedmock.MockUnitOfWork
	clock       *clock.MockClock
	checkout    usecase.CheckoutCommands
}

func newCheckoutFixture(t *testing.T) *checkoutFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &checkoutFixture{
		catalog:     sharedmock.NewMockCatalogReads(ctrl),
		users:       sharedmock.NewMockUserReads(ctrl),
		drafts:      sharedmock.NewMockDraftStore(ctrl),
		storedValue: sharedmock.NewMockStoredValueRepository(ctrl),
		orders:      sharedmock.NewMockOrderRepository(ctrl),
		printQueue:  sharedmock.NewMockPrintQueueRepository(ctrl),
		gateway:     sharedmock.NewMockPaymentGateway(ctrl),
		uow:         sharedmock.NewMockUnitOfWork(ctrl),
		clock:       clock.NewMockClock(validatorNow),
	}

	calc, err := pricing.NewCalculator("0.08875")
	require.NoError(t, err)

	cfg := config.CheckoutConfig{
		// Long enough that the expiry timer never fires inside a test run.
		SessionExpiry: time.Hour,
		DraftTTL:      2 * time.Hour,
		SlotInterval:  15 * time.Minute,
		MaxOrdersSlot: 3,
	}

	f.checkout = usecase.NewCheckoutUseCase(
		f.catalog, f.users, f.drafts, f.storedValue, f.orders, f.printQueue,
		f.gateway, calc, f.uow, cfg, f.clock,
	)
	return f
}

func (f *checkoutFixture) runTransactions() {
	f.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, db.DBTX) error) error {
			return fn(ctx, nil)
		}).AnyTimes()
}

// Subtotal 2500, tax 222, tip 300, total 3022.
func checkoutDraft() order.DraftOrder {
	return order.DraftOrder{
		PickupAt: time.Date(2025, 6, 6, 12, 30, 0, 0, time.UTC),
		Items: []order.LineItem{
			{Seq: 1, ItemID: uuid.New(), Name: "Banh Mi", Quantity: 2, UnitPriceCents: 1250},
		},
		Tip: order.Tip{Kind: order.TipFixed, Value: 300},
	}
}

func TestCheckout_CreateCheckout(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("creates a payment session for a card checkout", func(t *testing.T) {
		f := newCheckoutFixture(t)
		draft := checkoutDraft()

		var captured shared.CheckoutSessionParams
		gomock.InOrder(
			// The draft must be persisted before the processor can complete.
			f.drafts.EXPECT().Save(gomock.Any(), userID, gomock.Any(), 2*time.Hour).Return(nil),
			f.gateway.EXPECT().CreateCheckoutSession(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, params shared.CheckoutSessionParams) (*shared.CheckoutSession, error) {
					captured = params
					return &shared.CheckoutSession{ID: "cs_1", URL: "https://pay.example/cs_1"}, nil
				}),
		)

		result, err := f.checkout.CreateCheckout(ctx, userID, draft, "Pat L")
		require.NoError(t, err)

		assert.False(t, result.Paid)
		assert.Equal(t, "cs_1", result.SessionID)
		assert.Equal(t, "https://pay.example/cs_1", result.SessionURL)

		assert.Equal(t, int64(222), captured.TaxCents)
		assert.Equal(t, int64(300), captured.TipCents)
		assert.Equal(t, validatorNow.Add(30*time.Minute), captured.ExpiresAt)
		assert.Empty(t, captured.StoredValueUsage)

		wantLines := []shared.PricedLine{
			{Name: "Banh Mi", UnitAmountCents: 1250, Quantity: 2},
			{Name: "Sales tax", UnitAmountCents: 222, Quantity: 1},
			{Name: "Tip", UnitAmountCents: 300, Quantity: 1},
		}
		assert.Empty(t, cmp.Diff(wantLines, captured.Lines))
	})

	t.Run("full stored value coverage settles without a session", func(t *testing.T) {
		f := newCheckoutFixture(t)
		f.runTransactions()
		draft := checkoutDraft()
		code := "GIFT-1234"
		draft.StoredValueCode = &code
		card := shared.StoredValueCardSnapshot{ID: uuid.New(), Code: code, BalanceCents: 5000}

		f.storedValue.EXPECT().FindByCode(gomock.Any(), code).Return(&card, nil)
		f.users.EXPECT().UserByID(gomock.Any(), userID).Return(userWithPoints(userID, 0), nil)
		f.storedValue.EXPECT().Debit(gomock.Any(), gomock.Any(), card.ID, int64(3022), gomock.Any()).Return(nil)

		var created *order.Order
		f.orders.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ db.DBTX, o *order.Order) (uuid.UUID, error) {
				created = o
				return o.ID(), nil
			})
		f.printQueue.EXPECT().Enqueue(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.drafts.EXPECT().Delete(gomock.Any(), userID).Return(nil)

		result, err := f.checkout.CreateCheckout(ctx, userID, draft, "Pat L")
		require.NoError(t, err)

		assert.True(t, result.Paid)
		assert.Empty(t, result.SessionID)
		require.NotNil(t, created)
		assert.Equal(t, result.OrderID, created.ID())
		assert.Equal(t, int64(2500), created.SubtotalCents())
		assert.Equal(t, int64(3022), created.TotalCents())
		assert.Equal(t, int64(3022), created.StoredValueApplied())
		assert.Empty(t, created.StripeSessionID())
		assert.Equal(t, "Pat Lee", created.PickupName())
	})

	t.Run("partial coverage collapses lines to the remainder", func(t *testing.T) {
		f := newCheckoutFixture(t)
		draft := checkoutDraft()
		code := "GIFT-1234"
		draft.StoredValueCode = &code
		card := shared.StoredValueCardSnapshot{ID: uuid.New(), Code: code, BalanceCents: 1000}

		f.storedValue.EXPECT().FindByCode(gomock.Any(), code).Return(&card, nil)
		f.drafts.EXPECT().Save(gomock.Any(), userID, gomock.Any(), gomock.Any()).Return(nil)

		var captured shared.CheckoutSessionParams
		f.gateway.EXPECT().CreateCheckoutSession(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, params shared.CheckoutSessionParams) (*shared.CheckoutSession, error) {
				captured = params
				return &shared.CheckoutSession{ID: "cs_2", URL: "https://pay.example/cs_2"}, nil
			})

		result, err := f.checkout.CreateCheckout(ctx, userID, draft, "Pat L")
		require.NoError(t, err)
		assert.False(t, result.Paid)

		require.Len(t, captured.Lines, 1)
		assert.Equal(t, "Balance after stored value", captured.Lines[0].Name)
		assert.Equal(t, int64(2022), captured.Lines[0].UnitAmountCents)
		assert.Equal(t, int64(1), captured.Lines[0].Quantity)

		require.Len(t, captured.StoredValueUsage, 1)
		assert.Equal(t, shared.StoredValueUsage{Code: code, Amount: 1000, ID: card.ID}, captured.StoredValueUsage[0])
	})

	t.Run("unknown card code", func(t *testing.T) {
		f := newCheckoutFixture(t)
		draft := checkoutDraft()
		code := "GIFT-XXXX"
		draft.StoredValueCode = &code

		f.storedValue.EXPECT().FindByCode(gomock.Any(), code).Return(nil, notFound())

		_, err := f.checkout.CreateCheckout(ctx, userID, draft, "Pat L")
		assert.ErrorIs(t, err, usecase.ErrStoredValueCardNotFound)
	})

	t.Run("balance conflict during synchronous settlement", func(t *testing.T) {
		f := newCheckoutFixture(t)
		f.runTransactions()
		draft := checkoutDraft()
		code := "GIFT-1234"
		draft.StoredValueCode = &code
		card := shared.StoredValueCardSnapshot{ID: uuid.New(), Code: code, BalanceCents: 5000}

		f.storedValue.EXPECT().FindByCode(gomock.Any(), code).Return(&card, nil)
		f.users.EXPECT().UserByID(gomock.Any(), userID).Return(userWithPoints(userID, 0), nil)
		f.storedValue.EXPECT().Debit(gomock.Any(), gomock.Any(), card.ID, int64(3022), gomock.Any()).
			Return(infra.WrapRepoErr("insufficient stored value balance", errors.New("0 rows"), infra.KindConflict))

		_, err := f.checkout.CreateCheckout(ctx, userID, draft, "Pat L")
		assert.ErrorIs(t, err, usecase.ErrStoredValueConflict)
	})

	t.Run("gateway failure", func(t *testing.T) {
		f := newCheckoutFixture(t)
		draft := checkoutDraft()

		f.drafts.EXPECT().Save(gomock.Any(), userID, gomock.Any(), gomock.Any()).Return(nil)
		f.gateway.EXPECT().CreateCheckoutSession(gomock.Any(), gomock.Any()).
			Return(nil, errors.New("stripe is down"))

		_, err := f.checkout.CreateCheckout(ctx, userID, draft, "Pat L")
		assert.ErrorIs(t, err, usecase.ErrPaymentGatewayFailed)
	})

	t.Run("schema-invalid draft", func(t *testing.T) {
		f := newCheckoutFixture(t)

		_, err := f.checkout.CreateCheckout(ctx, userID, order.DraftOrder{}, "Pat L")
		assert.ErrorIs(t, err, usecase.ErrInvalidDraft)
	})
}
