package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	domainorder "github.com/khues-restaurant/khues-restaurant-sub001/internal/domain/order"
	"github.com/khues-restaurant/khues-restaurant-sub001/internal/infra"
	"github.com/khues-restaurant/khues-restaurant-sub001/internal/infra/db"
	"github.com/khues-restaurant/khues-restaurant-sub001/internal/pkg/pgconv"
)

const pgErrCodeUniqueViolation = "23505"

type OrderRepository struct {
	db db.DBTX
}

func NewOrderRepository(dbtx db.DBTX) *OrderRepository {
	return &OrderRepository{db: dbtx}
}

// Create inserts the order with its items and customization rows. A unique
// violation on stripe_session_id surfaces as KindDuplicateKey so the
// confirmation handler can treat a replayed event as a no-op.
func (r *OrderRepository) Create(ctx context.Context, tx db.DBTX, o *domainorder.Order) (uuid.UUID, error) {
	const orderQ = `
		INSERT INTO orders (
			id, user_id, stripe_session_id, payment_intent_id,
			pickup_name, first_name, last_name, email,
			pickup_at, is_asap, include_utensils,
			subtotal_cents, tax_cents, tip_cents, total_cents, stored_value_applied,
			status, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`

	var sessionID *string
	if s := o.StripeSessionID(); s != "" {
		sessionID = &s
	}
	var intentID *string
	if s := o.PaymentIntentID(); s != "" {
		intentID = &s
	}

	_, err := tx.Exec(ctx, orderQ,
		o.ID(), o.UserID(), sessionID, intentID,
		o.PickupName(), o.FirstName(), o.LastName(), o.Email(),
		o.PickupAt(), o.ASAP(), o.IncludeUtensils(),
		o.SubtotalCents(), o.TaxCents(), o.TipCents(), o.TotalCents(), o.StoredValueApplied(),
		o.Status().String(), o.CreatedAt(),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return uuid.Nil, infra.WrapRepoErr("order already exists for session", err, infra.KindDuplicateKey)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to create order", err)
	}

	const itemQ = `
		INSERT INTO order_items (id, order_id, item_id, name, quantity, unit_price_cents, instructions, points_redeemed, birthday_redeemed)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	const custQ = `
		INSERT INTO order_item_customizations (order_item_id, category_id, category_name, choice_id, choice_name)
		VALUES ($1, $2, $3, $4, $5)`

	for _, item := range o.Items() {
		itemID := item.ID
		if itemID == uuid.Nil {
			itemID = uuid.New()
		}
		_, err := tx.Exec(ctx, itemQ,
			itemID, o.ID(), item.ItemID, item.Name, item.Quantity,
			item.UnitPriceCents, item.Instructions, item.PointsRedeemed, item.BirthdayRedeemed,
		)
		if err != nil {
			return uuid.Nil, infra.WrapRepoErr("failed to create order item", err)
		}
		for _, c := range item.Customizations {
			_, err := tx.Exec(ctx, custQ, itemID, c.CategoryID, c.CategoryName, c.ChoiceID, c.ChoiceName)
			if err != nil {
				return uuid.Nil, infra.WrapRepoErr("failed to create order item customization", err)
			}
		}
	}

	return o.ID(), nil
}

func (r *OrderRepository) ExistsByStripeSessionID(ctx context.Context, sessionID string) (bool, error) {
	const q = `SELECT EXISTS (SELECT 1 FROM orders WHERE stripe_session_id = $1)`

	var exists bool
	if err := r.db.QueryRow(ctx, q, sessionID).Scan(&exists); err != nil {
		return false, infra.WrapRepoErr("failed to check order existence by session ID", err)
	}

	return exists, nil
}

func (r *OrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*domainorder.Order, error) {
	const q = `
		SELECT
			id, user_id, stripe_session_id, payment_intent_id,
			pickup_name, first_name, last_name, email,
			pickup_at, is_asap, include_utensils,
			subtotal_cents, tax_cents, tip_cents, total_cents, stored_value_applied,
			status, started_at, completed_at, refunded_at, refund_reason, created_at
		FROM orders
		WHERE id = $1`

	var (
		p            domainorder.ReconstructOrderParams
		sessionID    pgtype.Text
		intentID     pgtype.Text
		status       string
		startedAt    pgtype.Timestamptz
		completedAt  pgtype.Timestamptz
		refundedAt   pgtype.Timestamptz
		refundReason pgtype.Text
	)
	err := r.db.QueryRow(ctx, q, id).Scan(
		&p.ID, &p.UserID, &sessionID, &intentID,
		&p.PickupName, &p.FirstName, &p.LastName, &p.Email,
		&p.PickupAt, &p.ASAP, &p.IncludeUtensils,
		&p.SubtotalCents, &p.TaxCents, &p.TipCents, &p.TotalCents, &p.StoredValueApplied,
		&status, &startedAt, &completedAt, &refundedAt, &refundReason, &p.CreatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find order by ID", err)
	}

	if sessionID.Valid {
		p.StripeSessionID = sessionID.String
	}
	if intentID.Valid {
		p.PaymentIntentID = intentID.String
	}
	p.Status = domainorder.Status(status)
	p.StartedAt = pgconv.TimePtrFromPgtype(startedAt)
	p.CompletedAt = pgconv.TimePtrFromPgtype(completedAt)
	p.RefundedAt = pgconv.TimePtrFromPgtype(refundedAt)
	if refundReason.Valid {
		reason := domainorder.RefundReason(refundReason.String)
		p.RefundReason = &reason
	}

	items, err := r.loadItems(ctx, id)
	if err != nil {
		return nil, err
	}
	p.Items = items

	return domainorder.ReconstructOrder(p), nil
}

// Save persists the mutable lifecycle fields. Pricing columns are
// intentionally not updatable; an order is never re-priced after creation.
func (r *OrderRepository) Save(ctx context.Context, tx db.DBTX, o *domainorder.Order) error {
	const q = `
		UPDATE orders
		SET status = $2, started_at = $3, completed_at = $4, refunded_at = $5, refund_reason = $6
		WHERE id = $1`

	var reason *string
	if rr := o.RefundReason(); rr != nil {
		s := string(*rr)
		reason = &s
	}

	tag, err := tx.Exec(ctx, q,
		o.ID(), o.Status().String(),
		pgconv.TimePtrToPgtype(o.StartedAt()),
		pgconv.TimePtrToPgtype(o.CompletedAt()),
		pgconv.TimePtrToPgtype(o.RefundedAt()),
		reason,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to save order", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("order not found", nil, infra.KindNotFound)
	}

	return nil
}

func (r *OrderRepository) loadItems(ctx context.Context, orderID uuid.UUID) ([]domainorder.Item, error) {
	const itemQ = `
		SELECT id, item_id, name, quantity, unit_price_cents, instructions, points_redeemed, birthday_redeemed
		FROM order_items
		WHERE order_id = $1
		ORDER BY id`

	rows, err := r.db.Query(ctx, itemQ, orderID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list order items", err)
	}
	defer rows.Close()

	var items []domainorder.Item
	for rows.Next() {
		var it domainorder.Item
		if err := rows.Scan(&it.ID, &it.ItemID, &it.Name, &it.Quantity, &it.UnitPriceCents, &it.Instructions, &it.PointsRedeemed, &it.BirthdayRedeemed); err != nil {
			return nil, infra.WrapRepoErr("failed to scan order item", err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate order items", err)
	}

	const custQ = `
		SELECT category_id, category_name, choice_id, choice_name
		FROM order_item_customizations
		WHERE order_item_id = $1`

	for i := range items {
		crows, err := r.db.Query(ctx, custQ, items[i].ID)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to list item customizations", err)
		}
		for crows.Next() {
			var c domainorder.Customization
			if err := crows.Scan(&c.CategoryID, &c.CategoryName, &c.ChoiceID, &c.ChoiceName); err != nil {
				crows.Close()
				return nil, infra.WrapRepoErr("failed to scan item customization", err)
			}
			items[i].Customizations = append(items[i].Customizations, c)
		}
		crows.Close()
		if err := crows.Err(); err != nil {
			return nil, infra.WrapRepoErr("failed to iterate item customizations", err)
		}
	}

	return items, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgErrCodeUniqueViolation
}
