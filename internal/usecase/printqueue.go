package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/khues-restaurant/khues-restaurant-sub001/internal/infra"
	"github.com/khues-restaurant/khues-restaurant-sub001/internal/pkg/errs"
	"github.com/khues-restaurant/khues-restaurant-sub001/internal/usecase/shared"
)

var (
	ErrPrintJobNotFound = errs.New("print job not found")
	ErrPrintQueueFailed = errs.New("print queue operation failed")
)

// PrintQueueCommands serves the kitchen printer's polling loop: fetch the
// oldest pending job, print, then delete by token.
type PrintQueueCommands interface {
	Poll(ctx context.Context) (*PrintJobResult, error)
	Delete(ctx context.Context, token uuid.UUID) error
}

// PrintJobResult carries the job plus the full order view the device renders.
type PrintJobResult struct {
	Token uuid.UUID         `json:"token"`
	Order *shared.OrderView `json:"order"`
}

type printQueueUseCaseImpl struct {
	queue      shared.PrintQueueRepository
	orderReads shared.OrderReads
}

func NewPrintQueueUseCase(queue shared.PrintQueueRepository, orderReads shared.OrderReads) PrintQueueCommands {
	return &printQueueUseCaseImpl{queue: queue, orderReads: orderReads}
}

func (u *printQueueUseCaseImpl) Poll(ctx context.Context) (*PrintJobResult, error) {
	job, err := u.queue.NextPending(ctx)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil
		}
		return nil, errs.Mark(err, ErrPrintQueueFailed)
	}

	view, err := u.orderReads.OrderByID(ctx, job.OrderID)
	if err != nil {
		return nil, errs.Mark(err, ErrPrintQueueFailed)
	}

	return &PrintJobResult{Token: job.Token, Order: view}, nil
}

func (u *printQueueUseCaseImpl) Delete(ctx context.Context, token uuid.UUID) error {
	if err := u.queue.DeleteByToken(ctx, token); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrPrintJobNotFound
		}
		return errs.Mark(err, ErrPrintQueueFailed)
	}
	return nil
}
