package readstore

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/khues-restaurant/khues-restaurant-sub001/internal/infra"
	"github.com/khues-restaurant/khues-restaurant-sub001/internal/infra/db"
	"github.com/khues-restaurant/khues-restaurant-sub001/internal/pkg/pgconv"
	"github.com/khues-restaurant/khues-restaurant-sub001/internal/usecase/shared"
)

type OrderReadStore struct {
	db db.DBTX
}

func NewOrderReadStore(dbtx db.DBTX) *OrderReadStore {
	return &OrderReadStore{db: dbtx}
}

const orderViewColumns = `
	id, user_id, pickup_name, pickup_at, is_asap, status,
	subtotal_cents, tax_cents, tip_cents, total_cents, stored_value_applied,
	started_at, completed_at, refunded_at, created_at`

func (r *OrderReadStore) OrderByID(ctx context.Context, id uuid.UUID) (*shared.OrderView, error) {
	q := `SELECT ` + orderViewColumns + ` FROM orders WHERE id = $1`

	view, err := r.scanView(r.db.QueryRow(ctx, q, id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find order view", err)
	}

	items, err := r.itemViews(ctx, id)
	if err != nil {
		return nil, err
	}
	view.Items = items

	return view, nil
}

func (r *OrderReadStore) OrdersByUser(ctx context.Context, userID uuid.UUID) ([]shared.OrderView, error) {
	q := `SELECT ` + orderViewColumns + ` FROM orders WHERE user_id = $1 ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, q, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list orders by user", err)
	}
	defer rows.Close()

	var views []shared.OrderView
	for rows.Next() {
		view, err := r.scanView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan order view", err)
		}
		views = append(views, *view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate order views", err)
	}

	return views, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *OrderReadStore) scanView(row rowScanner) (*shared.OrderView, error) {
	var (
		v           shared.OrderView
		startedAt   pgtype.Timestamptz
		completedAt pgtype.Timestamptz
		refundedAt  pgtype.Timestamptz
	)
	err := row.Scan(
		&v.ID, &v.UserID, &v.PickupName, &v.PickupAt, &v.ASAP, &v.Status,
		&v.SubtotalCents, &v.TaxCents, &v.TipCents, &v.TotalCents, &v.StoredValueApplied,
		&startedAt, &completedAt, &refundedAt, &v.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	v.StartedAt = pgconv.TimePtrFromPgtype(startedAt)
	v.CompletedAt = pgconv.TimePtrFromPgtype(completedAt)
	v.RefundedAt = pgconv.TimePtrFromPgtype(refundedAt)
	return &v, nil
}

func (r *OrderReadStore) itemViews(ctx context.Context, orderID uuid.UUID) ([]shared.OrderItemView, error) {
	const q = `
		SELECT i.name, i.quantity, i.unit_price_cents, i.instructions, i.points_redeemed, i.birthday_redeemed,
			COALESCE(array_agg(c.choice_name) FILTER (WHERE c.choice_name IS NOT NULL), '{}')
		FROM order_items i
		LEFT JOIN order_item_customizations c ON c.order_item_id = i.id
		WHERE i.order_id = $1
		GROUP BY i.id
		ORDER BY i.id`

	rows, err := r.db.Query(ctx, q, orderID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list order item views", err)
	}
	defer rows.Close()

	var items []shared.OrderItemView
	for rows.Next() {
		var it shared.OrderItemView
		if err := rows.Scan(&it.Name, &it.Quantity, &it.UnitPriceCents, &it.Instructions, &it.PointsRedeemed, &it.BirthdayRedeemed, &it.Customizations); err != nil {
			return nil, infra.WrapRepoErr("failed to scan order item view", err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate order item views", err)
	}

	return items, nil
}
