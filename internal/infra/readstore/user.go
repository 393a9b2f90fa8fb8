package readstore

import (
	"context"

	"github.com/google/uuid"

	"github.com/khues-restaurant/khues-restaurant-sub001/internal/infra"
	"github.com/khues-restaurant/khues-restaurant-sub001/internal/infra/db"
	"github.com/khues-restaurant/khues-restaurant-sub001/internal/pkg/pgconv"
	"github.com/khues-restaurant/khues-restaurant-sub001/internal/usecase/shared"
)

type UserReadStore struct {
	db db.DBTX
}

func NewUserReadStore(dbtx db.DBTX) *UserReadStore {
	return &UserReadStore{db: dbtx}
}

func (r *UserReadStore) UserByID(ctx context.Context, id uuid.UUID) (*shared.UserSnapshot, error) {
	const q = `
		SELECT id, first_name, last_name, email, loyalty_points
		FROM users
		WHERE id = $1`

	var u shared.UserSnapshot
	err := r.db.QueryRow(ctx, q, id).Scan(&u.ID, &u.FirstName, &u.LastName, &u.Email, &u.LoyaltyPoints)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}

	return &u, nil
}
