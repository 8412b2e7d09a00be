package availability

import (
	"fmt"
	"time"
)

// SlotDuration is the fixed booking grid. Changing the granularity is a
// product decision, not a configuration knob.
const SlotDuration = 30 * time.Minute

// Interval is a wall-clock span within a single day, expressed as offsets
// from midnight. End is exclusive.
type Interval struct {
	Start time.Duration
	End   time.Duration
}

// Overlaps reports whether [start, end) intersects the interval.
func (iv Interval) Overlaps(start, end time.Duration) bool {
	return start < iv.End && end > iv.Start
}

// Slots walks the window [start, end) in SlotDuration steps and returns the
// start offsets of the steps not blocked by any busy interval, in ascending
// order. A slot is emitted as long as it starts before end; the trailing
// fragment of a window that is not a multiple of SlotDuration is dropped
// (09:00-10:15 produces 09:00, 09:30, 10:00).
func Slots(start, end time.Duration, busy []Interval) []time.Duration {
	slots := make([]time.Duration, 0)

	for cur := start; cur < end; cur += SlotDuration {
		slotEnd := cur + SlotDuration

		blocked := false
		for _, iv := range busy {
			if iv.Overlaps(cur, slotEnd) {
				blocked = true
				break
			}
		}

		if !blocked {
			slots = append(slots, cur)
		}
	}

	return slots
}

// ParseClock parses a wall-clock time of day in HH:MM:SS or HH:MM form into
// an offset from midnight. The 24:00 sentinel TIME columns use for spans that
// end exactly at midnight is accepted, so every value FormatClock can store
// parses back.
func ParseClock(s string) (time.Duration, error) {
	if s == "24:00" || s == "24:00:00" {
		return 24 * time.Hour, nil
	}

	t, err := time.Parse("15:04:05", s)
	if err != nil {
		t, err = time.Parse("15:04", s)
		if err != nil {
			return 0, fmt.Errorf("invalid clock time %q", s)
		}
	}

	return time.Duration(t.Hour())*time.Hour +
		time.Duration(t.Minute())*time.Minute +
		time.Duration(t.Second())*time.Second, nil
}

// FormatClock renders an offset from midnight as HH:MM.
func FormatClock(d time.Duration) string {
	return fmt.Sprintf("%02d:%02d", int(d.Hours()), int(d.Minutes())%60)
}
