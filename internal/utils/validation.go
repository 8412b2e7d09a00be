package utils

import (
	"fmt"

	"github.com/glowbook-dev/glowbook/backend/internal/availability"
	"github.com/glowbook-dev/glowbook/backend/internal/domain"
)

// ValidateAvailabilityRules checks a stylist's submitted weekly schedule:
// weekdays in 0-6 (0 = Sunday), at most one rule per weekday, parseable
// times, and start < end on every rule that is marked available.
func ValidateAvailabilityRules(rules []*domain.AvailabilityRule) error {
	seen := make(map[int32]bool)

	for i, rule := range rules {
		if rule.DayOfWeek < 0 || rule.DayOfWeek > 6 {
			return fmt.Errorf("rule %d: day of week must be between 0 and 6 (0 = Sunday)", i)
		}
		if seen[rule.DayOfWeek] {
			return fmt.Errorf("rule %d: duplicate rule for day of week %d", i, rule.DayOfWeek)
		}
		seen[rule.DayOfWeek] = true

		start, err := availability.ParseClock(rule.StartTime)
		if err != nil {
			return fmt.Errorf("rule %d: invalid start time", i)
		}
		end, err := availability.ParseClock(rule.EndTime)
		if err != nil {
			return fmt.Errorf("rule %d: invalid end time", i)
		}
		if rule.IsAvailable && start >= end {
			return fmt.Errorf("rule %d: start time must be before end time", i)
		}
	}

	return nil
}
