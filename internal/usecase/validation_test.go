//go:build unit

package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/khues-restaurant/khues-restaurant-sub001/internal/domain/catalog"
	"github.com/khues-restaurant/khues-restaurant-sub001/internal/domain/order"
	"github.com/khues-restaurant/khues-restaurant-sub001/internal/infra"
	"github.com/khues-restaurant/khues-restaurant-sub001/internal/pkg/clock"
	"github.com/khues-restaurant/khues-restaurant-sub001/internal/pkg/config"
	"github.com/khues-restaurant/khues-restaurant-sub001/internal/usecase"
	"github.com/khues-restaurant/khues-restaurant-sub001/internal/usecase/shared"
	sharedmock "github.com/khues-restaurant/khues-restaurant-sub001/tests/mock/shared"
)

// Friday, store clock fixed at 10:00.
var validatorNow = time.Date(2025, 6, 6, 10, 0, 0, 0, time.UTC)

var (
	openPickupConfig = shared.PickupConfig{}
	asapPickupConfig = shared.PickupConfig{ASAPAvailable: true}
)

func notFound() error {
	return infra.WrapRepoErr("not found", errors.New("no rows"), infra.KindNotFound)
}

func userWithPoints(id uuid.UUID, points int32) *shared.UserSnapshot {
	return &shared.UserSnapshot{ID: id, FirstName: "Pat", LastName: "Lee", Email: "pat@example.com", LoyaltyPoints: points}
}

type validatorFixture struct {
	catalog   *sharedmock.MockCatalogReads
	schedule  *sharedmock.MockScheduleReads
	slots     *sharedmock.MockSlotReads
	users     *sharedmock.MockUserReads
	clock     *clock.MockClock
	validator usecase.OrderValidator
}

func newValidatorFixture(t *testing.T) *validatorFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &validatorFixture{
		catalog:  sharedmock.NewMockCatalogReads(ctrl),
		schedule: sharedmock.NewMockScheduleReads(ctrl),
		slots:    sharedmock.NewMockSlotReads(ctrl),
		users:    sharedmock.NewMockUserReads(ctrl),
		clock:    clock.NewMockClock(validatorNow),
	}

	cfg := config.CheckoutConfig{
		PickupBuffer:  30 * time.Minute,
		SlotInterval:  15 * time.Minute,
		MaxOrdersSlot: 3,
		PointCentRate: 10,
	}
	storeCfg := config.StoreConfig{Timezone: "UTC"}

	v, err := usecase.NewOrderValidator(f.catalog, f.schedule, f.slots, f.users, cfg, storeCfg, f.clock)
	require.NoError(t, err)
	f.validator = v
	return f
}

func (f *validatorFixture) allowOpenSchedule() {
	f.schedule.EXPECT().PickupConfig(gomock.Any()).
		Return(&openPickupConfig, nil).AnyTimes()
	f.schedule.EXPECT().ClosedOn(gomock.Any(), gomock.Any()).Return(false, nil).AnyTimes()
	f.slots.EXPECT().CountOrdersBetween(gomock.Any(), gomock.Any(), gomock.Any()).Return(0, nil).AnyTimes()
}

func (f *validatorFixture) stubMenuItem(item catalog.MenuItem) {
	f.catalog.EXPECT().MenuItemByID(gomock.Any(), item.ID).Return(&item, nil).AnyTimes()
}

func orderableItem(priceCents int32) catalog.MenuItem {
	return catalog.MenuItem{
		ID:         uuid.New(),
		Name:       "Banh Mi",
		PriceCents: priceCents,
		Available:  true,
		Quantity:   10,
		CategoryID: uuid.New(),
	}
}

func draftWith(item catalog.MenuItem, pickupAt time.Time) order.DraftOrder {
	return order.DraftOrder{
		PickupAt: pickupAt,
		Items: []order.LineItem{
			{Seq: 1, ItemID: item.ID, Name: item.Name, Quantity: 1, UnitPriceCents: item.PriceCents},
		},
	}
}

func TestOrderValidator_Validate(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	pickup := time.Date(2025, 6, 6, 12, 30, 0, 0, time.UTC)

	t.Run("clean draft needs no correction", func(t *testing.T) {
		f := newValidatorFixture(t)
		f.allowOpenSchedule()
		item := orderableItem(1250)
		f.stubMenuItem(item)

		result, err := f.validator.Validate(ctx, userID, draftWith(item, pickup), usecase.ValidateOptions{})
		require.NoError(t, err)

		assert.Nil(t, result.Corrected)
		assert.Empty(t, result.RemovedItemNames)
	})

	t.Run("schema-invalid draft is rejected", func(t *testing.T) {
		f := newValidatorFixture(t)

		_, err := f.validator.Validate(ctx, userID, order.DraftOrder{}, usecase.ValidateOptions{})
		assert.ErrorIs(t, err, usecase.ErrInvalidDraft)
	})

	t.Run("missing pickup config is a configuration error", func(t *testing.T) {
		f := newValidatorFixture(t)
		item := orderableItem(1250)
		f.schedule.EXPECT().PickupConfig(gomock.Any()).Return(nil, notFound())

		_, err := f.validator.Validate(ctx, userID, draftWith(item, pickup), usecase.ValidateOptions{})
		assert.ErrorIs(t, err, usecase.ErrPickupConfigMissing)
	})

	t.Run("full slot shifts pickup one interval forward", func(t *testing.T) {
		f := newValidatorFixture(t)
		item := orderableItem(1250)
		f.stubMenuItem(item)
		f.schedule.EXPECT().PickupConfig(gomock.Any()).
			Return(&openPickupConfig, nil).AnyTimes()
		f.schedule.EXPECT().ClosedOn(gomock.Any(), gomock.Any()).Return(false, nil).AnyTimes()

		fullBucket := pickup.Truncate(15 * time.Minute)
		f.slots.EXPECT().CountOrdersBetween(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, from, _ time.Time) (int, error) {
				if from.Equal(fullBucket) {
					return 3, nil
				}
				return 0, nil
			}).AnyTimes()

		result, err := f.validator.Validate(ctx, userID, draftWith(item, pickup), usecase.ValidateOptions{})
		require.NoError(t, err)

		require.NotNil(t, result.Corrected)
		assert.Equal(t, pickup.Add(15*time.Minute), result.Corrected.PickupAt)
		assert.Empty(t, result.RemovedItemNames)
	})

	t.Run("past pickup resets to the next open day", func(t *testing.T) {
		f := newValidatorFixture(t)
		f.allowOpenSchedule()
		item := orderableItem(1250)
		f.stubMenuItem(item)

		stale := validatorNow.AddDate(0, 0, -1)
		result, err := f.validator.Validate(ctx, userID, draftWith(item, stale), usecase.ValidateOptions{})
		require.NoError(t, err)

		require.NotNil(t, result.Corrected)
		tomorrow := time.Date(2025, 6, 7, 0, 0, 0, 0, time.UTC)
		assert.Equal(t, tomorrow, result.Corrected.PickupAt)
	})

	t.Run("asap honored when available", func(t *testing.T) {
		f := newValidatorFixture(t)
		item := orderableItem(1250)
		f.stubMenuItem(item)
		f.schedule.EXPECT().PickupConfig(gomock.Any()).
			Return(&asapPickupConfig, nil)

		d := draftWith(item, pickup)
		d.ASAP = true
		result, err := f.validator.Validate(ctx, userID, d, usecase.ValidateOptions{})
		require.NoError(t, err)

		assert.Nil(t, result.Corrected)
	})

	t.Run("asap cleared when unavailable", func(t *testing.T) {
		f := newValidatorFixture(t)
		item := orderableItem(1250)
		f.stubMenuItem(item)
		f.schedule.EXPECT().PickupConfig(gomock.Any()).
			Return(&openPickupConfig, nil).AnyTimes()
		f.schedule.EXPECT().ClosedOn(gomock.Any(), gomock.Any()).Return(false, nil).AnyTimes()
		f.slots.EXPECT().CountOrdersBetween(gomock.Any(), gomock.Any(), gomock.Any()).Return(0, nil).AnyTimes()

		d := draftWith(item, pickup)
		d.ASAP = true
		result, err := f.validator.Validate(ctx, userID, d, usecase.ValidateOptions{})
		require.NoError(t, err)

		require.NotNil(t, result.Corrected)
		assert.False(t, result.Corrected.ASAP)
		assert.Equal(t, pickup, result.Corrected.PickupAt)
	})

	t.Run("price drift removes the line", func(t *testing.T) {
		f := newValidatorFixture(t)
		f.allowOpenSchedule()
		item := orderableItem(1250)
		d := draftWith(item, pickup)
		d.Items[0].UnitPriceCents = 1150 // stale snapshot
		f.stubMenuItem(item)

		result, err := f.validator.Validate(ctx, userID, d, usecase.ValidateOptions{})
		require.NoError(t, err)

		require.NotNil(t, result.Corrected)
		assert.Empty(t, result.Corrected.Items)
		assert.Equal(t, []string{item.Name}, result.RemovedItemNames)
	})

	t.Run("vanished item removes the line", func(t *testing.T) {
		f := newValidatorFixture(t)
		f.allowOpenSchedule()
		item := orderableItem(1250)
		f.catalog.EXPECT().MenuItemByID(gomock.Any(), item.ID).Return(nil, notFound())

		result, err := f.validator.Validate(ctx, userID, draftWith(item, pickup), usecase.ValidateOptions{})
		require.NoError(t, err)

		assert.Equal(t, []string{item.Name}, result.RemovedItemNames)
	})

	t.Run("alcohol is removed regardless of availability", func(t *testing.T) {
		f := newValidatorFixture(t)
		f.allowOpenSchedule()
		item := orderableItem(900)
		item.Alcoholic = true
		f.stubMenuItem(item)

		result, err := f.validator.Validate(ctx, userID, draftWith(item, pickup), usecase.ValidateOptions{})
		require.NoError(t, err)

		assert.Equal(t, []string{item.Name}, result.RemovedItemNames)
	})

	t.Run("weekend special kept on friday pickup", func(t *testing.T) {
		f := newValidatorFixture(t)
		f.allowOpenSchedule()
		item := orderableItem(1800)
		item.WeekendSpecial = true
		f.stubMenuItem(item)

		result, err := f.validator.Validate(ctx, userID, draftWith(item, pickup), usecase.ValidateOptions{})
		require.NoError(t, err)

		assert.Nil(t, result.Corrected)
		assert.Empty(t, result.RemovedItemNames)
	})

	t.Run("weekend special removed on weekday pickup", func(t *testing.T) {
		f := newValidatorFixture(t)
		f.allowOpenSchedule()
		item := orderableItem(1800)
		item.WeekendSpecial = true
		f.stubMenuItem(item)

		monday := time.Date(2025, 6, 9, 12, 30, 0, 0, time.UTC)
		result, err := f.validator.Validate(ctx, userID, draftWith(item, monday), usecase.ValidateOptions{})
		require.NoError(t, err)

		assert.Equal(t, []string{item.Name}, result.RemovedItemNames)
	})
}

func TestOrderValidator_Customizations(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	pickup := time.Date(2025, 6, 6, 12, 30, 0, 0, time.UTC)

	newCategory := func() (catalog.CustomizationCategory, catalog.CustomizationChoice, catalog.CustomizationChoice) {
		def := catalog.CustomizationChoice{ID: uuid.New(), Name: "Mild", Available: true, ListOrder: 0}
		sel := catalog.CustomizationChoice{ID: uuid.New(), Name: "Spicy", Available: true, ListOrder: 1}
		cat := catalog.CustomizationCategory{
			ID:              uuid.New(),
			Name:            "Heat",
			DefaultChoiceID: def.ID,
			Choices:         []catalog.CustomizationChoice{def, sel},
		}
		return cat, def, sel
	}

	t.Run("unavailable choice replaced with fallback", func(t *testing.T) {
		f := newValidatorFixture(t)
		f.allowOpenSchedule()
		item := orderableItem(1250)
		f.stubMenuItem(item)

		cat, def, sel := newCategory()
		cat.Choices[1].Available = false
		f.catalog.EXPECT().CategoryByID(gomock.Any(), cat.ID).Return(&cat, nil).AnyTimes()

		d := draftWith(item, pickup)
		d.Items[0].Customizations = map[uuid.UUID]uuid.UUID{cat.ID: sel.ID}

		result, err := f.validator.Validate(ctx, userID, d, usecase.ValidateOptions{})
		require.NoError(t, err)

		require.NotNil(t, result.Corrected)
		require.Len(t, result.Corrected.Items, 1)
		assert.Equal(t, def.ID, result.Corrected.Items[0].Customizations[cat.ID])
		assert.Empty(t, result.RemovedItemNames)
	})

	t.Run("fully unavailable category removes the line", func(t *testing.T) {
		f := newValidatorFixture(t)
		f.allowOpenSchedule()
		item := orderableItem(1250)
		f.stubMenuItem(item)

		cat, _, sel := newCategory()
		for i := range cat.Choices {
			cat.Choices[i].Available = false
		}
		f.catalog.EXPECT().CategoryByID(gomock.Any(), cat.ID).Return(&cat, nil).AnyTimes()

		d := draftWith(item, pickup)
		d.Items[0].Customizations = map[uuid.UUID]uuid.UUID{cat.ID: sel.ID}

		result, err := f.validator.Validate(ctx, userID, d, usecase.ValidateOptions{})
		require.NoError(t, err)

		assert.Equal(t, []string{item.Name}, result.RemovedItemNames)
	})

	t.Run("vanished category is a configuration error", func(t *testing.T) {
		f := newValidatorFixture(t)
		f.allowOpenSchedule()
		item := orderableItem(1250)
		f.stubMenuItem(item)

		catID := uuid.New()
		f.catalog.EXPECT().CategoryByID(gomock.Any(), catID).Return(nil, notFound())

		d := draftWith(item, pickup)
		d.Items[0].Customizations = map[uuid.UUID]uuid.UUID{catID: uuid.New()}

		_, err := f.validator.Validate(ctx, userID, d, usecase.ValidateOptions{})
		assert.ErrorIs(t, err, usecase.ErrCategoryMissing)
	})
}

func TestOrderValidator_DiscountsAndRewards(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	pickup := time.Date(2025, 6, 6, 12, 30, 0, 0, time.UTC)

	t.Run("foreign user-scoped discount is dropped", func(t *testing.T) {
		f := newValidatorFixture(t)
		f.allowOpenSchedule()
		item := orderableItem(1250)
		f.stubMenuItem(item)

		otherUser := uuid.New()
		d := catalog.Discount{ID: uuid.New(), Name: "Birthday Treat", Active: true, UserID: &otherUser}
		f.catalog.EXPECT().DiscountByID(gomock.Any(), d.ID).Return(&d, nil).AnyTimes()

		draft := draftWith(item, pickup)
		draft.Items[0].DiscountID = &d.ID

		result, err := f.validator.Validate(ctx, userID, draft, usecase.ValidateOptions{})
		require.NoError(t, err)

		require.NotNil(t, result.Corrected)
		assert.Nil(t, result.Corrected.Items[0].DiscountID)
	})

	t.Run("expired draft-level discount is dropped", func(t *testing.T) {
		f := newValidatorFixture(t)
		f.allowOpenSchedule()
		item := orderableItem(1250)
		f.stubMenuItem(item)

		expired := validatorNow.Add(-time.Hour)
		d := catalog.Discount{ID: uuid.New(), Name: "Happy Hour", Active: true, ExpiresAt: &expired}
		f.catalog.EXPECT().DiscountByID(gomock.Any(), d.ID).Return(&d, nil).AnyTimes()

		draft := draftWith(item, pickup)
		draft.DiscountID = &d.ID

		result, err := f.validator.Validate(ctx, userID, draft, usecase.ValidateOptions{})
		require.NoError(t, err)

		require.NotNil(t, result.Corrected)
		assert.Nil(t, result.Corrected.DiscountID)
	})

	t.Run("underfunded points redemption falls back to paid", func(t *testing.T) {
		f := newValidatorFixture(t)
		f.allowOpenSchedule()
		item := orderableItem(1250) // costs 125 points at rate 10
		f.stubMenuItem(item)
		f.users.EXPECT().UserByID(gomock.Any(), userID).
			Return(userWithPoints(userID, 100), nil)

		draft := draftWith(item, pickup)
		draft.Items[0].PointsRedeemed = true

		result, err := f.validator.Validate(ctx, userID, draft, usecase.ValidateOptions{})
		require.NoError(t, err)

		require.NotNil(t, result.Corrected)
		assert.False(t, result.Corrected.Items[0].PointsRedeemed)
	})

	t.Run("funded points redemption survives", func(t *testing.T) {
		f := newValidatorFixture(t)
		f.allowOpenSchedule()
		item := orderableItem(1250)
		f.stubMenuItem(item)
		f.users.EXPECT().UserByID(gomock.Any(), userID).
			Return(userWithPoints(userID, 200), nil)

		draft := draftWith(item, pickup)
		draft.Items[0].PointsRedeemed = true

		result, err := f.validator.Validate(ctx, userID, draft, usecase.ValidateOptions{})
		require.NoError(t, err)

		assert.Nil(t, result.Corrected)
	})
}

func TestOrderValidator_Reorder(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("reorder skips scheduling and strips reward flags", func(t *testing.T) {
		f := newValidatorFixture(t)
		item := orderableItem(1250)
		f.stubMenuItem(item)

		draft := draftWith(item, time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
		draft.Items[0].PointsRedeemed = true
		draft.Items[0].BirthdayRedeemed = true
		rewardID := uuid.New()
		draft.RewardID = &rewardID

		result, err := f.validator.Validate(ctx, userID, draft, usecase.ValidateOptions{Reorder: true})
		require.NoError(t, err)

		assert.Nil(t, result.Corrected)
		require.Len(t, result.ValidItems, 1)
		assert.False(t, result.ValidItems[0].PointsRedeemed)
		assert.False(t, result.ValidItems[0].BirthdayRedeemed)
	})

	t.Run("reorder weekend special uses the current day", func(t *testing.T) {
		f := newValidatorFixture(t)
		item := orderableItem(1800)
		item.WeekendSpecial = true
		f.stubMenuItem(item)

		// Validation runs on a Friday; the stale pickup date is irrelevant.
		draft := draftWith(item, time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))

		result, err := f.validator.Validate(ctx, userID, draft, usecase.ValidateOptions{Reorder: true})
		require.NoError(t, err)

		require.Len(t, result.ValidItems, 1)
		assert.Empty(t, result.RemovedItemNames)
	})
}
