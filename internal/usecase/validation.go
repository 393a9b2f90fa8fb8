package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/khues-restaurant/khues-restaurant-sub001/internal/domain/order"
	"github.com/khues-restaurant/khues-restaurant-sub001/internal/infra"
	"github.com/khues-restaurant/khues-restaurant-sub001/internal/pkg/clock"
	"github.com/khues-restaurant/khues-restaurant-sub001/internal/pkg/config"
	"github.com/khues-restaurant/khues-restaurant-sub001/internal/pkg/errs"
	"github.com/khues-restaurant/khues-restaurant-sub001/internal/usecase/shared"
)

var (
	ErrPickupConfigMissing = errs.New("pickup config missing")
	ErrCategoryMissing     = errs.New("customization category missing")
	ErrInvalidDraft        = errs.New("invalid draft order")
	ErrCatalogUnavailable  = errs.New("catalog unavailable")
)

type ValidateOptions struct {
	// Reorder validates a past order being placed again: pickup scheduling is
	// skipped and reward flags are stripped unconditionally.
	Reorder bool
}

// ValidationResult reports corrections as data, never as errors. Corrected is
// nil when the draft needed no change; ValidItems is populated only in
// reorder mode.
type ValidationResult struct {
	Corrected        *order.DraftOrder
	ValidItems       []order.LineItem
	RemovedItemNames []string
}

type OrderValidator interface {
	Validate(ctx context.Context, userID uuid.UUID, draft order.DraftOrder, opts ValidateOptions) (*ValidationResult, error)
}

type orderValidatorImpl struct {
	catalog   shared.CatalogReads
	users     shared.UserReads
	scheduler *pickupScheduler
	cfg       config.CheckoutConfig
	loc       *time.Location
	clock     clock.Clock
}

func NewOrderValidator(
	catalogReads shared.CatalogReads,
	scheduleReads shared.ScheduleReads,
	slotReads shared.SlotReads,
	userReads shared.UserReads,
	cfg config.CheckoutConfig,
	storeCfg config.StoreConfig,
	clk clock.Clock,
) (OrderValidator, error) {
	loc, err := time.LoadLocation(storeCfg.Timezone)
	if err != nil {
		return nil, errs.Wrap(err, "invalid store timezone")
	}
	return &orderValidatorImpl{
		catalog: catalogReads,
		users:   userReads,
		scheduler: &pickupScheduler{
			scheduleReads: scheduleReads,
			slots:         slotReads,
			cfg:           cfg,
			loc:           loc,
			clock:         clk,
		},
		cfg:   cfg,
		loc:   loc,
		clock: clk,
	}, nil
}

func (v *orderValidatorImpl) Validate(
	ctx context.Context,
	userID uuid.UUID,
	draft order.DraftOrder,
	opts ValidateOptions,
) (*ValidationResult, error) {
	if err := draft.Validate(); err != nil {
		return nil, errs.Mark(err, ErrInvalidDraft)
	}

	work := draft.Clone()
	changed := false
	removed := []string{}

	if !opts.Reorder {
		pickupAt, asap, shifted, err := v.scheduler.schedule(ctx, work.PickupAt, work.ASAP)
		if err != nil {
			return nil, err
		}
		if shifted {
			work.PickupAt = pickupAt
			work.ASAP = asap
			changed = true
		}
	}

	kept, itemsChanged, err := v.reconcileItems(ctx, userID, &work, opts.Reorder)
	if err != nil {
		return nil, err
	}
	if len(kept) != len(work.Items) {
		for _, l := range work.Items {
			if !containsSeq(kept, l.Seq) {
				removed = append(removed, l.Name)
			}
		}
		changed = true
	}
	if itemsChanged {
		changed = true
	}
	work.Items = kept

	if dropped, err := v.reconcileDraftDiscount(ctx, userID, &work, opts.Reorder); err != nil {
		return nil, err
	} else if dropped {
		changed = true
	}

	if opts.Reorder {
		return &ValidationResult{ValidItems: kept, RemovedItemNames: removed}, nil
	}
	if !changed {
		return &ValidationResult{RemovedItemNames: removed}, nil
	}
	return &ValidationResult{Corrected: &work, RemovedItemNames: removed}, nil
}

// reconcileItems rebuilds the item list from scratch rather than splicing the
// slice being iterated; a removal can therefore never skip its neighbour.
func (v *orderValidatorImpl) reconcileItems(
	ctx context.Context,
	userID uuid.UUID,
	work *order.DraftOrder,
	reorder bool,
) ([]order.LineItem, bool, error) {
	weekendDay := work.PickupAt.In(v.loc)
	if reorder {
		weekendDay = v.clock.Now().In(v.loc)
	}

	kept := make([]order.LineItem, 0, len(work.Items))
	changed := false
	for _, line := range work.Items {
		keep, lineChanged, err := v.reconcileLine(ctx, userID, &line, weekendDay, reorder)
		if err != nil {
			return nil, false, err
		}
		if !keep {
			continue
		}
		if lineChanged {
			changed = true
		}
		kept = append(kept, line)
	}
	return kept, changed, nil
}

func (v *orderValidatorImpl) reconcileLine(
	ctx context.Context,
	userID uuid.UUID,
	line *order.LineItem,
	weekendDay time.Time,
	reorder bool,
) (keep bool, changed bool, err error) {
	item, err := v.catalog.MenuItemByID(ctx, line.ItemID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return false, false, nil
		}
		return false, false, errs.Mark(err, ErrCatalogUnavailable)
	}

	if !item.Orderable() {
		return false, false, nil
	}
	if item.PriceCents != line.UnitPriceCents {
		return false, false, nil
	}
	if item.WeekendSpecial && !isWeekendSpecialDay(weekendDay) {
		return false, false, nil
	}

	for categoryID, choiceID := range line.Customizations {
		cat, err := v.catalog.CategoryByID(ctx, categoryID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return false, false, errs.Mark(err, ErrCategoryMissing)
			}
			return false, false, errs.Mark(err, ErrCatalogUnavailable)
		}
		resolved, ok := cat.ResolveSelection(choiceID)
		if !ok {
			return false, false, nil
		}
		if resolved != choiceID {
			line.Customizations[categoryID] = resolved
			changed = true
		}
	}

	if line.DiscountID != nil {
		usable, err := v.discountUsable(ctx, userID, *line.DiscountID)
		if err != nil {
			return false, false, err
		}
		if !usable {
			line.DiscountID = nil
			changed = true
		}
	}

	if reorder {
		if line.PointsRedeemed || line.BirthdayRedeemed {
			line.PointsRedeemed = false
			line.BirthdayRedeemed = false
			changed = true
		}
		return true, changed, nil
	}

	if line.PointsRedeemed {
		user, err := v.users.UserByID(ctx, userID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return false, false, nil
			}
			return false, false, errs.Mark(err, ErrCatalogUnavailable)
		}
		pointCost := item.PriceCents / int32(v.cfg.PointCentRate)
		if user.LoyaltyPoints < pointCost {
			line.PointsRedeemed = false
			changed = true
		}
	}

	return true, changed, nil
}

func (v *orderValidatorImpl) reconcileDraftDiscount(
	ctx context.Context,
	userID uuid.UUID,
	work *order.DraftOrder,
	reorder bool,
) (bool, error) {
	changed := false
	if reorder && work.RewardID != nil {
		work.RewardID = nil
		changed = true
	}
	if work.DiscountID != nil {
		usable, err := v.discountUsable(ctx, userID, *work.DiscountID)
		if err != nil {
			return false, err
		}
		if !usable {
			work.DiscountID = nil
			changed = true
		}
	}
	return changed, nil
}

func (v *orderValidatorImpl) discountUsable(ctx context.Context, userID, discountID uuid.UUID) (bool, error) {
	d, err := v.catalog.DiscountByID(ctx, discountID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return false, nil
		}
		return false, errs.Mark(err, ErrCatalogUnavailable)
	}
	if !d.IsUsableAt(v.clock.Now()) {
		return false, nil
	}
	if d.UserScoped() && !d.OwnedBy(userID) {
		return false, nil
	}
	return true, nil
}

func isWeekendSpecialDay(t time.Time) bool {
	return t.Weekday() == time.Friday || t.Weekday() == time.Saturday
}

func containsSeq(lines []order.LineItem, seq int32) bool {
	for _, l := range lines {
		if l.Seq == seq {
			return true
		}
	}
	return false
}
