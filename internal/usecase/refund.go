package usecase

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/khues-restaurant/khues-restaurant-sub001/internal/domain/order"
	"github.com/khues-restaurant/khues-restaurant-sub001/internal/infra"
	"github.com/khues-restaurant/khues-restaurant-sub001/internal/infra/db"
	"github.com/khues-restaurant/khues-restaurant-sub001/internal/pkg/clock"
	"github.com/khues-restaurant/khues-restaurant-sub001/internal/pkg/errs"
	"github.com/khues-restaurant/khues-restaurant-sub001/internal/usecase/shared"
)

var (
	ErrOrderNotFound       = errs.New("order not found")
	ErrAlreadyRefunded     = errs.New("order already refunded")
	ErrNoPaymentReference  = errs.New("order has no payment reference")
	ErrInvalidRefundReason = errs.New("invalid refund reason")
)

type RefundCommands interface {
	// Refund reverses a settled order through the payment processor and marks
	// it refunded. Not retriable: a second attempt is rejected with a
	// conflict before any processor call is made.
	Refund(ctx context.Context, orderID uuid.UUID, reason order.RefundReason) (*shared.OrderView, error)
}

type refundUseCaseImpl struct {
	orders     shared.OrderRepository
	orderReads shared.OrderReads
	gateway    shared.PaymentGateway
	uow        shared.UnitOfWork
	clock      clock.Clock
}

func NewRefundUseCase(
	orders shared.OrderRepository,
	orderReads shared.OrderReads,
	gateway shared.PaymentGateway,
	uow shared.UnitOfWork,
	clk clock.Clock,
) RefundCommands {
	return &refundUseCaseImpl{
		orders:     orders,
		orderReads: orderReads,
		gateway:    gateway,
		uow:        uow,
		clock:      clk,
	}
}

func (u *refundUseCaseImpl) Refund(ctx context.Context, orderID uuid.UUID, reason order.RefundReason) (*shared.OrderView, error) {
	if !reason.IsValid() {
		return nil, ErrInvalidRefundReason
	}

	o, err := u.orders.FindByID(ctx, orderID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, errs.Mark(err, ErrSettlementFailed)
	}
	if o.IsRefunded() {
		return nil, ErrAlreadyRefunded
	}

	paymentIntentID, err := u.resolvePaymentReference(ctx, o)
	if err != nil {
		return nil, err
	}

	if err := u.gateway.Refund(ctx, paymentIntentID, reason); err != nil {
		return nil, errs.Mark(err, ErrPaymentGatewayFailed)
	}

	if err := o.Refund(u.clock.Now(), reason); err != nil {
		if errors.Is(err, order.ErrAlreadyRefunded) {
			return nil, ErrAlreadyRefunded
		}
		return nil, errs.Mark(err, ErrSettlementFailed)
	}

	err = u.uow.Within(ctx, func(ctx context.Context, tx db.DBTX) error {
		return u.orders.Save(ctx, tx, o)
	})
	if err != nil {
		return nil, errs.Mark(err, ErrSettlementFailed)
	}

	view, err := u.orderReads.OrderByID(ctx, orderID)
	if err != nil {
		return nil, errs.Mark(err, ErrSettlementFailed)
	}
	return view, nil
}

// resolvePaymentReference falls back to asking the processor for the intent
// behind the session; orders settled before the intent id was recorded only
// carry the session id.
func (u *refundUseCaseImpl) resolvePaymentReference(ctx context.Context, o *order.Order) (string, error) {
	if id := o.PaymentIntentID(); id != "" {
		return id, nil
	}
	if o.StripeSessionID() == "" {
		return "", ErrNoPaymentReference
	}

	id, err := u.gateway.SessionPaymentIntent(ctx, o.StripeSessionID())
	if err != nil {
		return "", errs.Mark(err, ErrPaymentGatewayFailed)
	}
	if id == "" {
		return "", ErrNoPaymentReference
	}
	return id, nil
}
