package readstore

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/khues-restaurant/khues-restaurant-sub001/internal/domain/catalog"
	"github.com/khues-restaurant/khues-restaurant-sub001/internal/infra"
	"github.com/khues-restaurant/khues-restaurant-sub001/internal/infra/db"
	"github.com/khues-restaurant/khues-restaurant-sub001/internal/pkg/pgconv"
)

type CatalogReadStore struct {
	db db.DBTX
}

func NewCatalogReadStore(dbtx db.DBTX) *CatalogReadStore {
	return &CatalogReadStore{db: dbtx}
}

func (r *CatalogReadStore) MenuItemByID(ctx context.Context, id uuid.UUID) (*catalog.MenuItem, error) {
	const q = `
		SELECT id, name, category_id, price_cents, is_available, is_alcoholic, is_weekend_special, quantity
		FROM menu_items
		WHERE id = $1`

	var item catalog.MenuItem
	err := r.db.QueryRow(ctx, q, id).Scan(
		&item.ID,
		&item.Name,
		&item.CategoryID,
		&item.PriceCents,
		&item.Available,
		&item.Alcoholic,
		&item.WeekendSpecial,
		&item.Quantity,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("menu item not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find menu item by ID", err)
	}

	return &item, nil
}

func (r *CatalogReadStore) CategoryByID(ctx context.Context, id uuid.UUID) (*catalog.CustomizationCategory, error) {
	const catQ = `
		SELECT id, name, default_choice_id
		FROM customization_categories
		WHERE id = $1`

	var (
		cat       catalog.CustomizationCategory
		defChoice pgtype.UUID
	)
	err := r.db.QueryRow(ctx, catQ, id).Scan(&cat.ID, &cat.Name, &defChoice)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("customization category not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find customization category by ID", err)
	}
	if d := pgconv.UUIDPtrFromPgtype(defChoice); d != nil {
		cat.DefaultChoiceID = *d
	}

	const choiceQ = `
		SELECT id, category_id, name, is_available, adjustment_cents, list_order
		FROM customization_choices
		WHERE category_id = $1
		ORDER BY list_order, id`

	rows, err := r.db.Query(ctx, choiceQ, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list customization choices", err)
	}
	defer rows.Close()

	for rows.Next() {
		var ch catalog.CustomizationChoice
		if err := rows.Scan(&ch.ID, &ch.CategoryID, &ch.Name, &ch.Available, &ch.AdjustmentCents, &ch.ListOrder); err != nil {
			return nil, infra.WrapRepoErr("failed to scan customization choice", err)
		}
		cat.Choices = append(cat.Choices, ch)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate customization choices", err)
	}

	return &cat, nil
}

func (r *CatalogReadStore) DiscountByID(ctx context.Context, id uuid.UUID) (*catalog.Discount, error) {
	const q = `
		SELECT id, name, scope, category_id, item_ids, amount_off_cents, percent_off, expires_at, is_active, user_id
		FROM discounts
		WHERE id = $1`

	var (
		d          catalog.Discount
		scope      string
		categoryID pgtype.UUID
		itemIDs    []uuid.UUID
		amountOff  pgtype.Int4
		percentOff pgtype.Float8
		expiresAt  pgtype.Timestamptz
		userID     pgtype.UUID
	)
	err := r.db.QueryRow(ctx, q, id).Scan(
		&d.ID,
		&d.Name,
		&scope,
		&categoryID,
		&itemIDs,
		&amountOff,
		&percentOff,
		&expiresAt,
		&d.Active,
		&userID,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("discount not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find discount by ID", err)
	}

	d.Scope = catalog.DiscountScope(scope)
	d.CategoryID = pgconv.UUIDPtrFromPgtype(categoryID)
	d.ItemIDs = itemIDs
	if amountOff.Valid {
		d.AmountOffCents = &amountOff.Int32
	}
	if percentOff.Valid {
		d.PercentOff = &percentOff.Float64
	}
	d.ExpiresAt = pgconv.TimePtrFromPgtype(expiresAt)
	d.UserID = pgconv.UUIDPtrFromPgtype(userID)

	return &d, nil
}
