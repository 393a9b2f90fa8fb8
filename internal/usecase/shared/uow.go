package shared

import (
	"context"

	"github.com/khues-restaurant/khues-restaurant-sub001/internal/infra/db"
)

// UnitOfWork runs a function inside a single database transaction. Settlement
// uses it to keep the order insert, stored-value debit and print-queue row
// atomic.
type UnitOfWork interface {
	// Within: full transaction for write operations with retry on
	// serialization failures
	Within(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error
}
