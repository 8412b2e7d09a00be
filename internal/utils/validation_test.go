package utils

import (
	"testing"

	"github.com/glowbook-dev/glowbook/backend/internal/domain"
)

func TestValidateAvailabilityRules(t *testing.T) {
	valid := func() []*domain.AvailabilityRule {
		return []*domain.AvailabilityRule{
			{DayOfWeek: 1, StartTime: "09:00", EndTime: "17:00", IsAvailable: true},
			{DayOfWeek: 2, StartTime: "09:00", EndTime: "17:00", IsAvailable: true},
		}
	}

	if err := ValidateAvailabilityRules(valid()); err != nil {
		t.Fatalf("valid rules rejected: %v", err)
	}

	rules := valid()
	rules[1].DayOfWeek = 7
	if err := ValidateAvailabilityRules(rules); err == nil {
		t.Fatal("expected error for day of week 7")
	}

	rules = valid()
	rules[1].DayOfWeek = 1
	if err := ValidateAvailabilityRules(rules); err == nil {
		t.Fatal("expected error for duplicate weekday")
	}

	rules = valid()
	rules[0].StartTime = "17:00"
	rules[0].EndTime = "09:00"
	if err := ValidateAvailabilityRules(rules); err == nil {
		t.Fatal("expected error for inverted window")
	}

	// Inverted windows are tolerated on disabled rules, they never produce slots.
	rules[0].IsAvailable = false
	if err := ValidateAvailabilityRules(rules); err != nil {
		t.Fatalf("disabled rule with inverted window rejected: %v", err)
	}

	rules = valid()
	rules[0].StartTime = "whenever"
	if err := ValidateAvailabilityRules(rules); err == nil {
		t.Fatal("expected error for unparseable start time")
	}
}
