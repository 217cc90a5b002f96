// Package slotengine computes bookable time slots for an arena on a given
// calendar date. It is pure computation: callers fetch the recurring weekly
// rules and the day's bookings from the repository layer and hand them in;
// the engine never touches the database, the clock or any global state, so
// identical inputs always produce identical output.
package slotengine

import (
	"errors"
	"fmt"
)

// ErrInvalidUnit is returned when a caller requests a slot granularity other
// than 30 or 60 minutes.
var ErrInvalidUnit = errors.New("slot unit must be 30 or 60 minutes")

// ErrContainsBookedSlot is returned when a proposed selection range passes
// through one or more already-booked slots. The range is rejected as a whole;
// the engine never splices a selection around a booked slot, because a booking
// must be contiguous in wall-clock time.
var ErrContainsBookedSlot = errors.New("selection contains a booked slot")

// ErrDurationUnavailable is returned when a quick-duration selection would run
// past the end of the generated slots or across a booked slot. The selection
// is rejected rather than truncated so the user never books less time than
// they asked for.
var ErrDurationUnavailable = errors.New("requested duration is not available from this start time")

// ErrEmptySelection is returned when a selection with no slots is finalized.
// This is a programming error in the calling layer and must fail loudly
// instead of submitting an empty booking.
var ErrEmptySelection = errors.New("selection is empty")

// ErrNotContiguous is returned when a finalized selection has a wall-clock gap
// between consecutive slots. It should be unreachable through Tap/SelectDuration
// and exists to catch callers that assemble selections by hand.
var ErrNotContiguous = errors.New("selection is not contiguous")

// ErrSlotNotFound is returned when a tapped or requested start time does not
// match any generated slot.
var ErrSlotNotFound = errors.New("no slot starts at the given time")

// MalformedTimeError reports a weekly rule whose time range could not be used:
// either a time string is not valid zero-padded HH:MM, or the range is
// inverted (start >= end). Generation skips the offending rule and carries on
// with the rest, so one bad row never blanks out a whole venue; callers are
// expected to log these.
type MalformedTimeError struct {
	RuleID    uint64 // identifier of the offending rule, zero when unknown
	StartTime string // raw start string as supplied
	EndTime   string // raw end string as supplied
	Reason    string // short description of what was wrong
}

func (e *MalformedTimeError) Error() string {
	return fmt.Sprintf("slot rule %d has malformed time range %q-%q: %s",
		e.RuleID, e.StartTime, e.EndTime, e.Reason)
}
