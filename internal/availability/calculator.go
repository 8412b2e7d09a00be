package availability

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/glowbook-dev/glowbook/backend/internal/domain"
	"golang.org/x/sync/errgroup"
)

// TimeSlot is one bookable slot start. Only free slots are emitted, so
// Available is always true in a calculator result; the field stays on the
// wire for clients that render a full grid.
type TimeSlot struct {
	Time      string `json:"time"` // HH:MM
	Available bool   `json:"available"`
}

// Store provides the two reads the calculator composes.
type Store interface {
	// GetAvailabilityRule returns the active rule for the stylist and
	// weekday (0 = Sunday), or (nil, nil) when no such rule exists.
	GetAvailabilityRule(ctx context.Context, stylistID int64, dayOfWeek int32) (*domain.AvailabilityRule, error)
	// GetBookedIntervals returns the spans of the stylist's pending and
	// confirmed appointments on the given date.
	GetBookedIntervals(ctx context.Context, stylistID int64, date time.Time) ([]domain.BookedInterval, error)
}

type Calculator struct {
	store Store
}

func NewCalculator(store Store) *Calculator {
	return &Calculator{store: store}
}

// AvailableTimeSlots returns the stylist's free slots for the date, ascending
// by time. Missing or disabled rules and rules with start >= end yield an
// empty result; a failed read on either store fetch fails the whole call so
// that "no availability" is never reported off the back of an outage.
func (c *Calculator) AvailableTimeSlots(ctx context.Context, stylistID int64, date time.Time) ([]TimeSlot, error) {
	dayOfWeek := int32(date.Weekday()) // time.Weekday is 0 = Sunday

	var (
		rule   *domain.AvailabilityRule
		booked []domain.BookedInterval
	)

	// The two reads are independent, issue them together.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		rule, err = c.store.GetAvailabilityRule(gctx, stylistID, dayOfWeek)
		return err
	})
	g.Go(func() error {
		var err error
		booked, err = c.store.GetBookedIntervals(gctx, stylistID, date)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("fetch availability data: %w", err)
	}

	if rule == nil || !rule.IsAvailable {
		return []TimeSlot{}, nil
	}

	start, err := ParseClock(rule.StartTime)
	if err != nil {
		slog.Warn("availability rule has an unparseable start time", "stylistID", stylistID, "dayOfWeek", dayOfWeek, "startTime", rule.StartTime)
		return []TimeSlot{}, nil
	}
	end, err := ParseClock(rule.EndTime)
	if err != nil {
		slog.Warn("availability rule has an unparseable end time", "stylistID", stylistID, "dayOfWeek", dayOfWeek, "endTime", rule.EndTime)
		return []TimeSlot{}, nil
	}
	if start >= end {
		slog.Warn("availability rule has start >= end", "stylistID", stylistID, "dayOfWeek", dayOfWeek, "startTime", rule.StartTime, "endTime", rule.EndTime)
		return []TimeSlot{}, nil
	}

	busy := make([]Interval, 0, len(booked))
	for _, b := range booked {
		bStart, err := ParseClock(b.StartTime)
		if err != nil {
			return nil, fmt.Errorf("parse booked interval start: %w", err)
		}
		bEnd, err := ParseClock(b.EndTime)
		if err != nil {
			return nil, fmt.Errorf("parse booked interval end: %w", err)
		}
		busy = append(busy, Interval{Start: bStart, End: bEnd})
	}

	free := Slots(start, end, busy)

	slots := make([]TimeSlot, 0, len(free))
	for _, s := range free {
		slots = append(slots, TimeSlot{Time: FormatClock(s), Available: true})
	}

	return slots, nil
}
