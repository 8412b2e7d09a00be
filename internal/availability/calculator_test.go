package availability

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/glowbook-dev/glowbook/backend/internal/domain"
)

type fakeStore struct {
	rule       *domain.AvailabilityRule
	ruleErr    error
	booked     []domain.BookedInterval
	bookedErr  error
	gotWeekday int32
}

func (f *fakeStore) GetAvailabilityRule(_ context.Context, _ int64, dayOfWeek int32) (*domain.AvailabilityRule, error) {
	f.gotWeekday = dayOfWeek
	return f.rule, f.ruleErr
}

func (f *fakeStore) GetBookedIntervals(_ context.Context, _ int64, _ time.Time) ([]domain.BookedInterval, error) {
	return f.booked, f.bookedErr
}

func rule(day int32, start, end string) *domain.AvailabilityRule {
	return &domain.AvailabilityRule{StylistID: 1, DayOfWeek: day, StartTime: start, EndTime: end, IsAvailable: true}
}

// 2026-03-02 is a Monday.
var monday = time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

func TestAvailableTimeSlots_EndToEnd(t *testing.T) {
	store := &fakeStore{
		rule:   rule(1, "08:00:00", "09:00:00"),
		booked: []domain.BookedInterval{{StartTime: "08:30:00", EndTime: "09:00:00"}},
	}
	calc := NewCalculator(store)

	slots, err := calc.AvailableTimeSlots(context.Background(), 1, monday)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(slots) != 1 {
		t.Fatalf("expected 1 slot, got %d", len(slots))
	}
	if slots[0].Time != "08:00" || !slots[0].Available {
		t.Fatalf("expected free 08:00 slot, got %+v", slots[0])
	}
	if store.gotWeekday != 1 {
		t.Fatalf("expected weekday 1 (Monday), got %d", store.gotWeekday)
	}
}

func TestAvailableTimeSlots_SundayWeekdayConvention(t *testing.T) {
	store := &fakeStore{}
	calc := NewCalculator(store)

	sunday := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	if _, err := calc.AvailableTimeSlots(context.Background(), 1, sunday); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if store.gotWeekday != 0 {
		t.Fatalf("expected weekday 0 (Sunday), got %d", store.gotWeekday)
	}
}

func TestAvailableTimeSlots_NoRuleIsEmptyNotError(t *testing.T) {
	calc := NewCalculator(&fakeStore{})

	slots, err := calc.AvailableTimeSlots(context.Background(), 1, monday)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(slots) != 0 {
		t.Fatalf("expected empty result, got %d slots", len(slots))
	}
}

func TestAvailableTimeSlots_DisabledRuleIsEmpty(t *testing.T) {
	r := rule(1, "09:00:00", "17:00:00")
	r.IsAvailable = false
	calc := NewCalculator(&fakeStore{rule: r})

	slots, err := calc.AvailableTimeSlots(context.Background(), 1, monday)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(slots) != 0 {
		t.Fatalf("expected empty result, got %d slots", len(slots))
	}
}

func TestAvailableTimeSlots_InvertedRuleIsEmpty(t *testing.T) {
	calc := NewCalculator(&fakeStore{rule: rule(1, "17:00:00", "09:00:00")})

	slots, err := calc.AvailableTimeSlots(context.Background(), 1, monday)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(slots) != 0 {
		t.Fatalf("expected empty result, got %d slots", len(slots))
	}
}

func TestAvailableTimeSlots_StoreFailurePropagates(t *testing.T) {
	storeErr := errors.New("connection refused")

	calc := NewCalculator(&fakeStore{ruleErr: storeErr})
	if _, err := calc.AvailableTimeSlots(context.Background(), 1, monday); !errors.Is(err, storeErr) {
		t.Fatalf("expected rule fetch error to propagate, got %v", err)
	}

	calc = NewCalculator(&fakeStore{rule: rule(1, "09:00:00", "17:00:00"), bookedErr: storeErr})
	if _, err := calc.AvailableTimeSlots(context.Background(), 1, monday); !errors.Is(err, storeErr) {
		t.Fatalf("expected booked fetch error to propagate, got %v", err)
	}
}

func TestAvailableTimeSlots_MalformedBookedIntervalFails(t *testing.T) {
	store := &fakeStore{
		rule:   rule(1, "09:00:00", "10:00:00"),
		booked: []domain.BookedInterval{{StartTime: "garbage", EndTime: "09:30:00"}},
	}
	calc := NewCalculator(store)

	if _, err := calc.AvailableTimeSlots(context.Background(), 1, monday); err == nil {
		t.Fatal("expected error for malformed booked interval")
	}
}

func TestAvailableTimeSlots_BookingEndingAtMidnight(t *testing.T) {
	store := &fakeStore{
		rule:   rule(1, "22:00:00", "23:59:00"),
		booked: []domain.BookedInterval{{StartTime: "23:30:00", EndTime: "24:00:00"}},
	}
	calc := NewCalculator(store)

	slots, err := calc.AvailableTimeSlots(context.Background(), 1, monday)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"22:00", "22:30", "23:00"}
	if len(slots) != len(want) {
		t.Fatalf("expected %d slots, got %d", len(want), len(slots))
	}
	for i, w := range want {
		if slots[i].Time != w {
			t.Errorf("slot %d: expected %s, got %s", i, w, slots[i].Time)
		}
	}
}

func TestAvailableTimeSlots_Idempotent(t *testing.T) {
	store := &fakeStore{
		rule: rule(1, "09:00:00", "12:00:00"),
		booked: []domain.BookedInterval{
			{StartTime: "10:00:00", EndTime: "10:30:00"},
			{StartTime: "11:15:00", EndTime: "11:45:00"},
		},
	}
	calc := NewCalculator(store)

	first, err := calc.AvailableTimeSlots(context.Background(), 1, monday)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := calc.AvailableTimeSlots(context.Background(), 1, monday)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("results differ between identical calls: %v vs %v", first, second)
	}

	want := []string{"09:00", "09:30", "10:30"}
	if len(first) != len(want) {
		t.Fatalf("expected %d slots, got %d", len(want), len(first))
	}
	for i, w := range want {
		if first[i].Time != w {
			t.Errorf("slot %d: expected %s, got %s", i, w, first[i].Time)
		}
	}
}
