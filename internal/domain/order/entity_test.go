//go:build unit

package order_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khues-restaurant/khues-restaurant-sub001/internal/domain/order"
)

func newTestOrder() *order.Order {
	return order.NewOrder(order.NewOrderParams{
		UserID:          uuid.New(),
		StripeSessionID: "cs_test_123",
		PaymentIntentID: "pi_test_123",
		PickupName:      "Pat L",
		PickupAt:        time.Date(2025, 6, 6, 12, 30, 0, 0, time.UTC),
		Items: []order.Item{
			{ItemID: uuid.New(), Name: "Banh Mi", Quantity: 2, UnitPriceCents: 1250},
		},
		SubtotalCents: 2500,
		TaxCents:      222,
		TipCents:      375,
		TotalCents:    3097,
		CreatedAt:     time.Date(2025, 6, 6, 11, 0, 0, 0, time.UTC),
	})
}

func TestOrder_Start(t *testing.T) {
	now := time.Date(2025, 6, 6, 11, 5, 0, 0, time.UTC)

	t.Run("received order starts", func(t *testing.T) {
		o := newTestOrder()
		require.NoError(t, o.Start(now))

		assert.Equal(t, order.StatusStarted, o.Status())
		require.NotNil(t, o.StartedAt())
		assert.Equal(t, now, *o.StartedAt())
	})

	t.Run("double start is rejected", func(t *testing.T) {
		o := newTestOrder()
		require.NoError(t, o.Start(now))

		err := o.Start(now.Add(time.Minute))
		assert.ErrorIs(t, err, order.ErrAlreadyStarted)
		assert.Equal(t, now, *o.StartedAt())
	})
}

func TestOrder_Complete(t *testing.T) {
	now := time.Date(2025, 6, 6, 11, 20, 0, 0, time.UTC)

	t.Run("started order completes", func(t *testing.T) {
		o := newTestOrder()
		require.NoError(t, o.Start(now.Add(-10*time.Minute)))
		require.NoError(t, o.Complete(now))

		assert.Equal(t, order.StatusCompleted, o.Status())
		require.NotNil(t, o.CompletedAt())
		assert.Equal(t, now, *o.CompletedAt())
	})

	t.Run("completing an unstarted order backfills started_at", func(t *testing.T) {
		o := newTestOrder()
		require.NoError(t, o.Complete(now))

		require.NotNil(t, o.StartedAt())
		assert.Equal(t, now, *o.StartedAt())
		assert.Equal(t, now, *o.CompletedAt())
	})

	t.Run("double complete is rejected", func(t *testing.T) {
		o := newTestOrder()
		require.NoError(t, o.Complete(now))

		err := o.Complete(now.Add(time.Minute))
		assert.ErrorIs(t, err, order.ErrAlreadyCompleted)
	})
}

func TestOrder_Refund(t *testing.T) {
	now := time.Date(2025, 6, 6, 14, 0, 0, 0, time.UTC)

	t.Run("refund backfills progress timestamps", func(t *testing.T) {
		o := newTestOrder()
		require.NoError(t, o.Refund(now, order.RefundRequestedByCustomer))

		assert.True(t, o.IsRefunded())
		assert.Equal(t, now, *o.RefundedAt())
		require.NotNil(t, o.RefundReason())
		assert.Equal(t, order.RefundRequestedByCustomer, *o.RefundReason())

		// A refunded order is never shown as still in progress.
		require.NotNil(t, o.StartedAt())
		require.NotNil(t, o.CompletedAt())
		assert.Equal(t, order.StatusCompleted, o.Status())
	})

	t.Run("refund keeps existing timestamps", func(t *testing.T) {
		o := newTestOrder()
		started := now.Add(-2 * time.Hour)
		require.NoError(t, o.Start(started))
		require.NoError(t, o.Refund(now, order.RefundDuplicate))

		assert.Equal(t, started, *o.StartedAt())
		assert.Equal(t, now, *o.CompletedAt())
	})

	t.Run("refund is not retriable", func(t *testing.T) {
		o := newTestOrder()
		require.NoError(t, o.Refund(now, order.RefundFraudulent))

		err := o.Refund(now.Add(time.Minute), order.RefundFraudulent)
		assert.ErrorIs(t, err, order.ErrAlreadyRefunded)
		assert.Equal(t, now, *o.RefundedAt())
	})

	t.Run("zero refund time is rejected", func(t *testing.T) {
		o := newTestOrder()
		err := o.Refund(time.Time{}, order.RefundDuplicate)
		assert.ErrorIs(t, err, order.ErrInvalidRefundTime)
		assert.False(t, o.IsRefunded())
	})
}

func TestRefundReason_IsValid(t *testing.T) {
	assert.True(t, order.RefundDuplicate.IsValid())
	assert.True(t, order.RefundFraudulent.IsValid())
	assert.True(t, order.RefundRequestedByCustomer.IsValid())
	assert.False(t, order.RefundReason("because").IsValid())
	assert.False(t, order.RefundReason("").IsValid())
}
