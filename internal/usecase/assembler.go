package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/khues-restaurant/khues-restaurant-sub001/internal/domain/catalog"
	"github.com/khues-restaurant/khues-restaurant-sub001/internal/domain/order"
	"github.com/khues-restaurant/khues-restaurant-sub001/internal/infra"
	"github.com/khues-restaurant/khues-restaurant-sub001/internal/pkg/errs"
	"github.com/khues-restaurant/khues-restaurant-sub001/internal/usecase/shared"
)

// catalogIndex holds the customization categories and choices referenced by a
// draft, fetched once per checkout or settlement.
type catalogIndex struct {
	categories map[uuid.UUID]*catalog.CustomizationCategory
	choices    map[uuid.UUID]catalog.CustomizationChoice
}

func buildCatalogIndex(ctx context.Context, reads shared.CatalogReads, lines []order.LineItem) (*catalogIndex, error) {
	idx := &catalogIndex{
		categories: make(map[uuid.UUID]*catalog.CustomizationCategory),
		choices:    make(map[uuid.UUID]catalog.CustomizationChoice),
	}
	for _, line := range lines {
		for categoryID := range line.Customizations {
			if _, ok := idx.categories[categoryID]; ok {
				continue
			}
			cat, err := reads.CategoryByID(ctx, categoryID)
			if err != nil {
				if infra.IsKind(err, infra.KindNotFound) {
					return nil, errs.Mark(err, ErrCategoryMissing)
				}
				return nil, errs.Mark(err, ErrCatalogUnavailable)
			}
			idx.categories[categoryID] = cat
			for _, ch := range cat.Choices {
				idx.choices[ch.ID] = ch
			}
		}
	}
	return idx, nil
}

func discountIndex(ctx context.Context, reads shared.CatalogReads, lines []order.LineItem) (map[uuid.UUID]*catalog.Discount, error) {
	index := make(map[uuid.UUID]*catalog.Discount)
	for _, line := range lines {
		if line.DiscountID == nil {
			continue
		}
		if _, ok := index[*line.DiscountID]; ok {
			continue
		}
		d, err := reads.DiscountByID(ctx, *line.DiscountID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				continue
			}
			return nil, errs.Mark(err, ErrCatalogUnavailable)
		}
		index[*line.DiscountID] = d
	}
	return index, nil
}

// buildOrderItems remaps each draft line's category→choice map into persisted
// customization rows carrying display names.
func buildOrderItems(lines []order.LineItem, idx *catalogIndex) []order.Item {
	items := make([]order.Item, 0, len(lines))
	for _, line := range lines {
		item := order.Item{
			ID:               uuid.New(),
			ItemID:           line.ItemID,
			Name:             line.Name,
			Quantity:         line.Quantity,
			UnitPriceCents:   line.UnitPriceCents,
			Instructions:     line.Instructions,
			PointsRedeemed:   line.PointsRedeemed,
			BirthdayRedeemed: line.BirthdayRedeemed,
		}
		for categoryID, choiceID := range line.Customizations {
			c := order.Customization{CategoryID: categoryID, ChoiceID: choiceID}
			if cat, ok := idx.categories[categoryID]; ok {
				c.CategoryName = cat.Name
			}
			if ch, ok := idx.choices[choiceID]; ok {
				c.ChoiceName = ch.Name
			}
			item.Customizations = append(item.Customizations, c)
		}
		items = append(items, item)
	}
	return items
}

// describeLine summarizes a line's customizations and reward status for the
// payment processor's line description.
func describeLine(line order.LineItem, idx *catalogIndex) string {
	var parts []string
	for _, choiceID := range line.Customizations {
		if ch, ok := idx.choices[choiceID]; ok {
			parts = append(parts, ch.Name)
		}
	}
	if line.PointsRedeemed {
		parts = append(parts, "redeemed with points")
	}
	if line.BirthdayRedeemed {
		parts = append(parts, "birthday reward")
	}
	return strings.Join(parts, ", ")
}

// splitPickupName derives first/last contact fields from the pickup display
// name, falling back to the previously known user names when a part is
// missing.
func splitPickupName(pickupName string, user *shared.UserSnapshot) (string, string) {
	first, last := "", ""
	parts := strings.Fields(pickupName)
	if len(parts) > 0 {
		first = parts[0]
	}
	if len(parts) > 1 {
		last = strings.Join(parts[1:], " ")
	}
	if user != nil {
		if first == "" {
			first = user.FirstName
		}
		if last == "" {
			last = user.LastName
		}
	}
	return first, last
}

func formatDollars(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s$%d.%02d", sign, cents/100, cents%100)
}
