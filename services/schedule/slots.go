package schedule

import (
	"fmt"
	"time"

	"mediconnect/models"
)

// GenerateSlots produces the ordered candidate slots a doctor offers on a
// calendar date. It is a pure function of the availability rule and the date:
// if the date's weekday is not among the rule's days the result is empty,
// otherwise [start, end) is partitioned into contiguous fixed-duration slots
// in chronological order, dropping any trailing remainder shorter than one
// slot.
//
// A rule that fails to parse yields no slots; rule validation happens at
// profile-update time (ValidateRule), not here.
func GenerateSlots(rule models.AvailabilityRule, date string) []models.Slot {
	d, err := ParseDate(date)
	if err != nil {
		return nil
	}

	offered := false
	for _, day := range rule.Days {
		if matchesDay(day, d.Weekday()) {
			offered = true
			break
		}
	}
	if !offered {
		return nil
	}

	start, err := ParseClock(rule.StartTime)
	if err != nil {
		return nil
	}
	end, err := ParseClock(rule.EndTime)
	if err != nil || end <= start {
		return nil
	}

	var slots []models.Slot
	for t := start; t+SlotDurationMinutes <= end; t += SlotDurationMinutes {
		slots = append(slots, models.Slot{
			Start: FormatClock(t),
			End:   FormatClock(t + SlotDurationMinutes),
		})
	}
	return slots
}

// ValidateRule checks an availability rule before it is persisted on a doctor
// profile: at least one recognisable weekday, parseable window times, and
// start strictly before end.
func ValidateRule(rule models.AvailabilityRule) error {
	if len(rule.Days) == 0 {
		return fmt.Errorf("availability must include at least one day")
	}
	for _, day := range rule.Days {
		if !validDayName(day) {
			return fmt.Errorf("unknown weekday %q", day)
		}
	}
	start, err := ParseClock(rule.StartTime)
	if err != nil {
		return err
	}
	end, err := ParseClock(rule.EndTime)
	if err != nil {
		return err
	}
	if start >= end {
		return fmt.Errorf("availability start must be before end")
	}
	return nil
}

func validDayName(day string) bool {
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		if matchesDay(day, wd) {
			return true
		}
	}
	return false
}
