package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/khues-restaurant/khues-restaurant-sub001/internal/infra"
	"github.com/khues-restaurant/khues-restaurant-sub001/internal/infra/db"
	"github.com/khues-restaurant/khues-restaurant-sub001/internal/pkg/pgconv"
	"github.com/khues-restaurant/khues-restaurant-sub001/internal/usecase/shared"
)

type PrintQueueRepository struct {
	db db.DBTX
}

func NewPrintQueueRepository(dbtx db.DBTX) *PrintQueueRepository {
	return &PrintQueueRepository{db: dbtx}
}

func (r *PrintQueueRepository) Enqueue(ctx context.Context, tx db.DBTX, orderID uuid.UUID) error {
	const q = `INSERT INTO print_queue (token, order_id) VALUES ($1, $2)`

	if _, err := tx.Exec(ctx, q, uuid.New(), orderID); err != nil {
		return infra.WrapRepoErr("failed to enqueue print job", err)
	}

	return nil
}

// NextPending returns the oldest job without removing it; the device deletes
// by token once printing succeeds.
func (r *PrintQueueRepository) NextPending(ctx context.Context) (*shared.PrintJob, error) {
	const q = `
		SELECT token, order_id, created_at
		FROM print_queue
		ORDER BY created_at
		LIMIT 1`

	var job shared.PrintJob
	err := r.db.QueryRow(ctx, q).Scan(&job.Token, &job.OrderID, &job.CreatedAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("print queue empty", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to read print queue", err)
	}

	return &job, nil
}

func (r *PrintQueueRepository) DeleteByToken(ctx context.Context, token uuid.UUID) error {
	const q = `DELETE FROM print_queue WHERE token = $1`

	tag, err := r.db.Exec(ctx, q, token)
	if err != nil {
		return infra.WrapRepoErr("failed to delete print job", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("print job not found", nil, infra.KindNotFound)
	}

	return nil
}
