package handler // handler defines http handlers

import (
	"errors"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
)

// getUserID extracts the user_id from echo.Context and converts it to
// uint64. The JWT middleware stores claims without asserting their type,
// so every plausible numeric representation is handled here.
func getUserID(c echo.Context) (uint64, error) {
	v := c.Get("user_id")
	switch t := v.(type) {
	case uint64:
		return t, nil
	case int:
		return uint64(t), nil
	case int64:
		return uint64(t), nil
	case float64:
		return uint64(t), nil
	case string:
		if n, err := strconv.ParseUint(t, 10, 64); err == nil {
			return n, nil
		}
	}
	return 0, errors.New("invalid user_id in context")
}

// parseID parses a positive numeric path parameter.
func parseID(c echo.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return id, true
}

// parseDate parses a YYYY-MM-DD query or body value into a calendar date
// with no time component.
func parseDate(s string) (time.Time, error) {
	return time.Parse("2006-01-02", s)
}

// startInPast reports whether a booking start on the given date has already
// passed relative to now. Dates before now's date are past regardless of
// clock; on now's own date the start clock is compared against now's clock
// (zero-padded HH:MM compares correctly as strings). A start exactly at now
// is not past.
func startInPast(date time.Time, startTime string, now time.Time) bool {
	d, today := date.Format("2006-01-02"), now.Format("2006-01-02")
	if d != today {
		return d < today
	}
	return startTime < now.Format("15:04")
}
