package schedule

import (
	"fmt"
	"strings"
	"time"
)

// SlotDurationMinutes is the fixed appointment length. Every slot and every
// booked appointment sits on this grid, so availability is a plain equality
// check on start times rather than interval intersection.
const SlotDurationMinutes = 30

// DateLayout is the wire form of calendar dates.
const DateLayout = "2006-01-02"

// ParseClock converts a strict "HH:MM" (24-hour) string to minutes from
// midnight.
func ParseClock(s string) (int, error) {
	if len(s) != 5 || s[2] != ':' {
		return 0, fmt.Errorf("invalid time %q, want HH:MM", s)
	}
	var h, m int
	if _, err := fmt.Sscanf(s, "%02d:%02d", &h, &m); err != nil {
		return 0, fmt.Errorf("invalid time %q, want HH:MM", s)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("invalid time %q, out of range", s)
	}
	return h*60 + m, nil
}

// FormatClock converts minutes from midnight back to "HH:MM".
func FormatClock(min int) string {
	return fmt.Sprintf("%02d:%02d", min/60, min%60)
}

// ParseDate converts a strict "YYYY-MM-DD" string to a calendar date.
func ParseDate(date string) (time.Time, error) {
	d, err := time.Parse(DateLayout, date)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, want YYYY-MM-DD: %w", date, err)
	}
	return d, nil
}

// matchesDay reports whether a rule day entry names the given weekday.
// Full names ("Monday") and three-letter abbreviations ("Mon") are accepted,
// case-insensitively.
func matchesDay(ruleDay string, wd time.Weekday) bool {
	name := wd.String()
	if strings.EqualFold(ruleDay, name) {
		return true
	}
	return len(ruleDay) == 3 && strings.EqualFold(ruleDay, name[:3])
}
