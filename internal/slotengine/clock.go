package slotengine

import (
	"fmt"
	"time"
)

// Weekday indices used by the engine and by slot_rules.day_of_week follow the
// ISO 8601 ordering: 0=Monday .. 6=Sunday. Go's time.Weekday counts 0=Sunday,
// so every date must pass through ISOWeekday exactly once, at this boundary.
// Mixing the two conventions silently shifts a venue's whole week by a day,
// which is why the conversion lives here and nowhere else.
const (
	Monday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

// ISOWeekday converts a calendar date to the engine's 0=Monday..6=Sunday
// weekday index.
func ISOWeekday(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

// ParseClock parses a zero-padded 24-hour "HH:MM" wall-clock string into
// minutes since midnight. "24:00" is accepted so rules may end exactly at
// midnight. Anything else out of shape or out of range is an error.
func ParseClock(s string) (int, error) {
	if len(s) != 5 || s[2] != ':' {
		return 0, fmt.Errorf("clock value %q is not in HH:MM form", s)
	}
	h, err := twoDigits(s[0], s[1])
	if err != nil {
		return 0, fmt.Errorf("clock value %q has a bad hour", s)
	}
	m, err := twoDigits(s[3], s[4])
	if err != nil || m > 59 {
		return 0, fmt.Errorf("clock value %q has a bad minute", s)
	}
	total := h*60 + m
	if total > 24*60 {
		return 0, fmt.Errorf("clock value %q is past midnight", s)
	}
	return total, nil
}

// FormatClock renders minutes since midnight back into zero-padded "HH:MM".
// Zero-padding matters: generated slots are ordered by plain string
// comparison, which is only correct when every value is exactly five bytes.
func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

func twoDigits(a, b byte) (int, error) {
	if a < '0' || a > '9' || b < '0' || b > '9' {
		return 0, fmt.Errorf("not a two-digit number")
	}
	return int(a-'0')*10 + int(b-'0'), nil
}
