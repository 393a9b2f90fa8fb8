package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/khues-restaurant/khues-restaurant-sub001/internal/domain/storedvalue"
	"github.com/khues-restaurant/khues-restaurant-sub001/internal/infra"
	"github.com/khues-restaurant/khues-restaurant-sub001/internal/infra/db"
	"github.com/khues-restaurant/khues-restaurant-sub001/internal/pkg/pgconv"
	"github.com/khues-restaurant/khues-restaurant-sub001/internal/usecase/shared"
)

type StoredValueRepository struct {
	db db.DBTX
}

func NewStoredValueRepository(dbtx db.DBTX) *StoredValueRepository {
	return &StoredValueRepository{db: dbtx}
}

func (r *StoredValueRepository) FindByCode(ctx context.Context, code string) (*shared.StoredValueCardSnapshot, error) {
	const q = `SELECT id, code, balance_cents FROM stored_value_cards WHERE code = $1`

	var card shared.StoredValueCardSnapshot
	err := r.db.QueryRow(ctx, q, code).Scan(&card.ID, &card.Code, &card.BalanceCents)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("stored value card not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find stored value card by code", err)
	}

	return &card, nil
}

// Debit decrements the balance with the floor enforced in the UPDATE itself;
// a zero-row result means the balance moved under us and the settlement must
// not proceed.
func (r *StoredValueRepository) Debit(ctx context.Context, tx db.DBTX, cardID uuid.UUID, amountCents int64, note string) error {
	const updateQ = `
		UPDATE stored_value_cards
		SET balance_cents = balance_cents - $2
		WHERE id = $1 AND balance_cents >= $2`

	tag, err := tx.Exec(ctx, updateQ, cardID, amountCents)
	if err != nil {
		return infra.WrapRepoErr("failed to debit stored value card", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("insufficient stored value balance", nil, infra.KindConflict)
	}

	const txnQ = `
		INSERT INTO stored_value_transactions (id, card_id, type, amount_cents, note)
		VALUES ($1, $2, $3, $4, $5)`

	_, err = tx.Exec(ctx, txnQ, uuid.New(), cardID, string(storedvalue.TxDebit), -amountCents, note)
	if err != nil {
		return infra.WrapRepoErr("failed to record stored value transaction", err)
	}

	return nil
}
