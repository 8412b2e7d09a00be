package availability

import (
	"testing"
	"time"
)

func mustClock(t *testing.T, s string) time.Duration {
	t.Helper()
	d, err := ParseClock(s)
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return d
}

func TestSlots_NoBookings(t *testing.T) {
	slots := Slots(mustClock(t, "09:00"), mustClock(t, "10:00"), nil)
	if len(slots) != 2 {
		t.Fatalf("expected 2 slots, got %d", len(slots))
	}
	if FormatClock(slots[0]) != "09:00" || FormatClock(slots[1]) != "09:30" {
		t.Fatalf("expected 09:00 and 09:30, got %s and %s", FormatClock(slots[0]), FormatClock(slots[1]))
	}
}

func TestSlots_TrailingFragmentDropped(t *testing.T) {
	// A window that is not a multiple of 30 minutes never emits the
	// trailing fragment as its own slot.
	slots := Slots(mustClock(t, "09:00"), mustClock(t, "10:15"), nil)
	want := []string{"09:00", "09:30", "10:00"}
	if len(slots) != len(want) {
		t.Fatalf("expected %d slots, got %d", len(want), len(slots))
	}
	for i, w := range want {
		if FormatClock(slots[i]) != w {
			t.Errorf("slot %d: expected %s, got %s", i, w, FormatClock(slots[i]))
		}
	}
}

func TestSlots_ExactSpanBookingExcludesOnlyThatSlot(t *testing.T) {
	busy := []Interval{{Start: mustClock(t, "09:00"), End: mustClock(t, "09:30")}}
	slots := Slots(mustClock(t, "09:00"), mustClock(t, "10:00"), busy)
	if len(slots) != 1 {
		t.Fatalf("expected 1 slot, got %d", len(slots))
	}
	if FormatClock(slots[0]) != "09:30" {
		t.Fatalf("expected 09:30, got %s", FormatClock(slots[0]))
	}
}

func TestSlots_BoundaryStraddlingBookingExcludesBoth(t *testing.T) {
	busy := []Interval{{Start: mustClock(t, "09:15"), End: mustClock(t, "09:45")}}
	slots := Slots(mustClock(t, "09:00"), mustClock(t, "10:00"), busy)
	if len(slots) != 0 {
		t.Fatalf("expected no slots, got %d", len(slots))
	}
}

func TestSlots_AdjacentBookingDoesNotBlock(t *testing.T) {
	// End-exclusive intervals: a booking ending exactly at a slot start
	// does not block that slot.
	busy := []Interval{{Start: mustClock(t, "08:30"), End: mustClock(t, "09:00")}}
	slots := Slots(mustClock(t, "09:00"), mustClock(t, "10:00"), busy)
	if len(slots) != 2 {
		t.Fatalf("expected 2 slots, got %d", len(slots))
	}
}

func TestSlots_Ascending(t *testing.T) {
	slots := Slots(mustClock(t, "08:00"), mustClock(t, "18:00"), nil)
	for i := 1; i < len(slots); i++ {
		if slots[i] <= slots[i-1] {
			t.Fatalf("slots not strictly ascending at index %d", i)
		}
	}
}

// referenceOverlap is the three-way check from the original implementation.
// Overlaps uses the simplified start < busyEnd && end > busyStart form; this
// test proves the two agree on every half-hour-grid combination so the
// simplification is safe.
func referenceOverlap(slotStart, slotEnd, bStart, bEnd time.Duration) bool {
	return (slotStart >= bStart && slotStart < bEnd) ||
		(slotEnd > bStart && slotEnd <= bEnd) ||
		(slotStart <= bStart && slotEnd >= bEnd)
}

func TestOverlaps_EquivalentToReferenceCheck(t *testing.T) {
	const step = 15 * time.Minute
	day := 24 * time.Hour

	for slotStart := time.Duration(0); slotStart < day; slotStart += step {
		slotEnd := slotStart + SlotDuration
		for bStart := time.Duration(0); bStart < day; bStart += step {
			for bEnd := bStart + step; bEnd <= bStart+3*time.Hour && bEnd <= day; bEnd += step {
				iv := Interval{Start: bStart, End: bEnd}
				got := iv.Overlaps(slotStart, slotEnd)
				want := referenceOverlap(slotStart, slotEnd, bStart, bEnd)
				if got != want {
					t.Fatalf("overlap mismatch: slot [%s,%s) busy [%s,%s): got %v, want %v",
						FormatClock(slotStart), FormatClock(slotEnd), FormatClock(bStart), FormatClock(bEnd), got, want)
				}
			}
		}
	}
}

func TestParseClock(t *testing.T) {
	tests := []struct {
		in      string
		want    time.Duration
		wantErr bool
	}{
		{in: "09:00:00", want: 9 * time.Hour},
		{in: "09:30", want: 9*time.Hour + 30*time.Minute},
		{in: "00:00:00", want: 0},
		{in: "23:59:59", want: 23*time.Hour + 59*time.Minute + 59*time.Second},
		{in: "24:00", want: 24 * time.Hour},
		{in: "24:00:00", want: 24 * time.Hour},
		{in: "25:00", wantErr: true},
		{in: "24:01", wantErr: true},
		{in: "9 am", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tc := range tests {
		got, err := ParseClock(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseClock(%q): expected error, got %s", tc.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseClock(%q): %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseClock(%q) = %s, want %s", tc.in, got, tc.want)
		}
	}
}

func TestFormatClock(t *testing.T) {
	if got := FormatClock(9*time.Hour + 30*time.Minute); got != "09:30" {
		t.Errorf("expected 09:30, got %s", got)
	}
	if got := FormatClock(0); got != "00:00" {
		t.Errorf("expected 00:00, got %s", got)
	}
	if got := FormatClock(24 * time.Hour); got != "24:00" {
		t.Errorf("expected 24:00, got %s", got)
	}
}

// A booking whose span ends exactly at midnight is stored as 24:00 and must
// parse back, otherwise one such row poisons every availability read for that
// stylist and date.
func TestClock_MidnightEndRoundTrips(t *testing.T) {
	end := mustClock(t, "23:30") + SlotDuration

	got, err := ParseClock(FormatClock(end))
	if err != nil {
		t.Fatalf("round trip failed: %v", err)
	}
	if got != end {
		t.Fatalf("expected %s, got %s", end, got)
	}
}
