package readstore

import (
	"context"
	"time"

	"github.com/khues-restaurant/khues-restaurant-sub001/internal/infra"
	"github.com/khues-restaurant/khues-restaurant-sub001/internal/infra/db"
	"github.com/khues-restaurant/khues-restaurant-sub001/internal/pkg/pgconv"
	"github.com/khues-restaurant/khues-restaurant-sub001/internal/usecase/shared"
)

type ScheduleReadStore struct {
	db db.DBTX
}

func NewScheduleReadStore(dbtx db.DBTX) *ScheduleReadStore {
	return &ScheduleReadStore{db: dbtx}
}

// ClosedOn checks the weekly hours row for t's weekday and the holiday table
// for t's calendar date. A missing business_hours row means open; holidays
// always win.
func (r *ScheduleReadStore) ClosedOn(ctx context.Context, t time.Time) (bool, error) {
	const q = `
		SELECT
			COALESCE((SELECT is_closed FROM business_hours WHERE weekday = $1), false)
			OR EXISTS (SELECT 1 FROM holidays WHERE holiday = $2::date)`

	var closed bool
	err := r.db.QueryRow(ctx, q, int16(t.Weekday()), t.Format("2006-01-02")).Scan(&closed)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check business schedule", err)
	}

	return closed, nil
}

// PickupConfig reads the operations-maintained singleton row. Its absence is
// reported as KindNotFound and treated by callers as a configuration error.
func (r *ScheduleReadStore) PickupConfig(ctx context.Context) (*shared.PickupConfig, error) {
	const q = `SELECT min_pickup_at, asap_available FROM pickup_config WHERE id`

	var cfg shared.PickupConfig
	err := r.db.QueryRow(ctx, q).Scan(&cfg.MinPickupAt, &cfg.ASAPAvailable)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("pickup config row missing", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to read pickup config", err)
	}

	return &cfg, nil
}

type SlotReadStore struct {
	db db.DBTX
}

func NewSlotReadStore(dbtx db.DBTX) *SlotReadStore {
	return &SlotReadStore{db: dbtx}
}

func (r *SlotReadStore) CountOrdersBetween(ctx context.Context, from, to time.Time) (int, error) {
	const q = `
		SELECT count(*)
		FROM orders
		WHERE pickup_at >= $1 AND pickup_at < $2 AND status <> 'canceled'`

	var n int
	err := r.db.QueryRow(ctx, q, from, to).Scan(&n)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count orders in slot", err)
	}

	return n, nil
}
