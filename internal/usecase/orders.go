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
	ErrOrderAlreadyStarted   = errs.New("order already started")
	ErrOrderAlreadyCompleted = errs.New("order already completed")
	ErrOrderCanceled         = errs.New("order canceled")
	ErrOrderOperationFailed  = errs.New("order operation failed")
)

type OrderQueries interface {
	GetOrder(ctx context.Context, id uuid.UUID) (*shared.OrderView, error)
	ListUserOrders(ctx context.Context, userID uuid.UUID) ([]shared.OrderView, error)
}

type OrderCommands interface {
	// Start marks the kitchen as having begun the order.
	Start(ctx context.Context, orderID uuid.UUID) (*shared.OrderView, error)
	// Complete marks the order ready for pickup, backfilling the started
	// timestamp when the kitchen skipped Start.
	Complete(ctx context.Context, orderID uuid.UUID) (*shared.OrderView, error)
}

type orderUseCaseImpl struct {
	orders     shared.OrderRepository
	orderReads shared.OrderReads
	uow        shared.UnitOfWork
	clock      clock.Clock
}

func NewOrderUseCase(
	orders shared.OrderRepository,
	orderReads shared.OrderReads,
	uow shared.UnitOfWork,
	clk clock.Clock,
) (OrderQueries, OrderCommands) {
	u := &orderUseCaseImpl{orders: orders, orderReads: orderReads, uow: uow, clock: clk}
	return u, u
}

func (u *orderUseCaseImpl) GetOrder(ctx context.Context, id uuid.UUID) (*shared.OrderView, error) {
	view, err := u.orderReads.OrderByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, errs.Mark(err, ErrOrderOperationFailed)
	}
	return view, nil
}

func (u *orderUseCaseImpl) ListUserOrders(ctx context.Context, userID uuid.UUID) ([]shared.OrderView, error) {
	views, err := u.orderReads.OrdersByUser(ctx, userID)
	if err != nil {
		return nil, errs.Mark(err, ErrOrderOperationFailed)
	}
	return views, nil
}

func (u *orderUseCaseImpl) Start(ctx context.Context, orderID uuid.UUID) (*shared.OrderView, error) {
	return u.transition(ctx, orderID, func(o *order.Order) error {
		return o.Start(u.clock.Now())
	})
}

func (u *orderUseCaseImpl) Complete(ctx context.Context, orderID uuid.UUID) (*shared.OrderView, error) {
	return u.transition(ctx, orderID, func(o *order.Order) error {
		return o.Complete(u.clock.Now())
	})
}

func (u *orderUseCaseImpl) transition(ctx context.Context, orderID uuid.UUID, fn func(*order.Order) error) (*shared.OrderView, error) {
	o, err := u.orders.FindByID(ctx, orderID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, errs.Mark(err, ErrOrderOperationFailed)
	}

	if err := fn(o); err != nil {
		switch {
		case errors.Is(err, order.ErrAlreadyStarted):
			return nil, ErrOrderAlreadyStarted
		case errors.Is(err, order.ErrAlreadyCompleted):
			return nil, ErrOrderAlreadyCompleted
		case errors.Is(err, order.ErrOrderCanceled):
			return nil, ErrOrderCanceled
		default:
			return nil, errs.Mark(err, ErrOrderOperationFailed)
		}
	}

	err = u.uow.Within(ctx, func(ctx context.Context, tx db.DBTX) error {
		return u.orders.Save(ctx, tx, o)
	})
	if err != nil {
		return nil, errs.Mark(err, ErrOrderOperationFailed)
	}

	return u.orderReads.OrderByID(ctx, orderID)
}
