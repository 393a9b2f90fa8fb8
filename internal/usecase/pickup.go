package usecase

import (
	"context"
	"time"

	"github.com/khues-restaurant/khues-restaurant-sub001/internal/infra"
	"github.com/khues-restaurant/khues-restaurant-sub001/internal/pkg/clock"
	"github.com/khues-restaurant/khues-restaurant-sub001/internal/pkg/config"
	"github.com/khues-restaurant/khues-restaurant-sub001/internal/pkg/errs"
	"github.com/khues-restaurant/khues-restaurant-sub001/internal/usecase/shared"
)

const (
	maxClosedDayWalk = 366
	maxSlotWalk      = 7 * 24 * 4
)

// pickupScheduler enforces pickup date/time legality and per-slot capacity.
// It never fails on a bad requested time; it shifts forward until legal.
type pickupScheduler struct {
	scheduleReads shared.ScheduleReads
	slots         shared.SlotReads
	cfg           config.CheckoutConfig
	loc           *time.Location
	clock         clock.Clock
}

// schedule returns the corrected pickup instant, the surviving ASAP flag and
// whether anything was shifted.
func (s *pickupScheduler) schedule(ctx context.Context, requested time.Time, asap bool) (time.Time, bool, bool, error) {
	now := s.clock.Now().In(s.loc)

	pickupCfg, err := s.scheduleReads.PickupConfig(ctx)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return time.Time{}, false, false, errs.Mark(err, ErrPickupConfigMissing)
		}
		return time.Time{}, false, false, errs.Mark(err, ErrCatalogUnavailable)
	}

	asapCleared := false
	if asap {
		if pickupCfg.ASAPAvailable {
			return requested, true, false, nil
		}
		asap = false
		asapCleared = true
	}

	pickup, dateShifted, err := s.legalDate(ctx, requested.In(s.loc), now)
	if err != nil {
		return time.Time{}, false, false, err
	}

	pickup, timeShifted, err := s.legalTime(ctx, pickup, now, pickupCfg)
	if err != nil {
		return time.Time{}, false, false, err
	}

	pickup, slotShifted, err := s.openSlot(ctx, pickup)
	if err != nil {
		return time.Time{}, false, false, err
	}

	return pickup, asap, asapCleared || dateShifted || timeShifted || slotShifted, nil
}

// legalDate normalizes a past date to today and walks forward over closed
// days and holidays.
func (s *pickupScheduler) legalDate(ctx context.Context, requested, now time.Time) (time.Time, bool, error) {
	today := midnight(now)
	shifted := false

	pickup := requested
	if midnight(pickup).Before(today) {
		pickup = today
		shifted = true
	}

	for range maxClosedDayWalk {
		closed, err := s.scheduleReads.ClosedOn(ctx, pickup)
		if err != nil {
			return time.Time{}, false, errs.Mark(err, ErrCatalogUnavailable)
		}
		if !closed {
			return pickup, shifted, nil
		}
		pickup = midnight(pickup).AddDate(0, 0, 1)
		shifted = true
	}

	return time.Time{}, false, errs.New("no open business day within a year")
}

// legalTime accepts the requested instant only when it is in the future,
// past the operations-maintained minimum, and at least the configured buffer
// away; otherwise it resets to the next open day's midnight.
func (s *pickupScheduler) legalTime(ctx context.Context, pickup, now time.Time, pickupCfg *shared.PickupConfig) (time.Time, bool, error) {
	if pickup.After(now) && pickup.After(pickupCfg.MinPickupAt) && !pickup.Before(now.Add(s.cfg.PickupBuffer)) {
		return pickup, false, nil
	}

	next := midnight(now).AddDate(0, 0, 1)
	for range maxClosedDayWalk {
		closed, err := s.scheduleReads.ClosedOn(ctx, next)
		if err != nil {
			return time.Time{}, false, errs.Mark(err, ErrCatalogUnavailable)
		}
		if !closed {
			return next, true, nil
		}
		next = next.AddDate(0, 0, 1)
	}

	return time.Time{}, false, errs.New("no open business day within a year")
}

// openSlot advances the pickup instant one slot at a time until its slot has
// capacity left.
func (s *pickupScheduler) openSlot(ctx context.Context, pickup time.Time) (time.Time, bool, error) {
	shifted := false
	for range maxSlotWalk {
		from := pickup.Truncate(s.cfg.SlotInterval)
		count, err := s.slots.CountOrdersBetween(ctx, from, from.Add(s.cfg.SlotInterval))
		if err != nil {
			return time.Time{}, false, errs.Mark(err, ErrCatalogUnavailable)
		}
		if count < s.cfg.MaxOrdersSlot {
			return pickup, shifted, nil
		}
		pickup = pickup.Add(s.cfg.SlotInterval)
		shifted = true
	}

	return time.Time{}, false, errs.New("no open pickup slot within a week")
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
