package slotengine

import "math"

// Selection marks a contiguous run of slots by index into a generated slot
// list. It is a value separate from the slots themselves: the same slot list
// can be rendered against different selections, and regenerating slots
// discards any selection. An empty selection has Start == -1. A tentative
// single-tap selection has End == Start.
type Selection struct {
	Start int
	End   int
}

// NoSelection is the zero state before the user has tapped anything.
var NoSelection = Selection{Start: -1, End: -1}

// IsEmpty reports whether nothing is selected.
func (s Selection) IsEmpty() bool { return s.Start < 0 }

// Slots returns the selected run out of the generated list. The result
// aliases the input slice; callers must not mutate it.
func (s Selection) Slots(all []AtomicSlot) []AtomicSlot {
	if s.IsEmpty() || s.Start >= len(all) || s.End >= len(all) || s.End < s.Start {
		return nil
	}
	return all[s.Start : s.End+1]
}

// Slot render states. Booked wins over selected: a slot that became booked
// underneath a stale selection must still render as booked.
const (
	StatusAvailable = "available"
	StatusBooked    = "booked"
	StatusSelected  = "selected"
)

// SlotStatus derives the render status of the slot at index i under the given
// selection. It is a pure function of its inputs; nothing is ever written
// back to the slot.
func SlotStatus(all []AtomicSlot, i int, sel Selection) string {
	if i < 0 || i >= len(all) {
		return StatusAvailable
	}
	if all[i].Booked {
		return StatusBooked
	}
	if !sel.IsEmpty() && i >= sel.Start && i <= sel.End {
		return StatusSelected
	}
	return StatusAvailable
}

// Tap applies the two-tap range protocol to a selection.
//
// With no prior selection, tapping a slot makes it the tentative start (a
// one-slot selection). Tapping a slot later in sort order than the current
// start extends the selection through every slot up to and including the
// tapped one; the whole run must be free of booked slots or the tap is
// rejected with ErrContainsBookedSlot, leaving the selection unchanged.
// Tapping a slot at or before the current start discards the old start and
// makes the tapped slot the new tentative start, matching the usual
// calendar-picker behaviour. Tapping a booked slot is always rejected.
func Tap(all []AtomicSlot, sel Selection, startTime string) (Selection, error) {
	i, ok := indexOf(all, startTime)
	if !ok {
		return sel, ErrSlotNotFound
	}
	if all[i].Booked {
		return sel, ErrContainsBookedSlot
	}
	if sel.IsEmpty() || i <= sel.Start {
		return Selection{Start: i, End: i}, nil
	}
	if err := checkRun(all, sel.Start, i); err != nil {
		return sel, err
	}
	return Selection{Start: sel.Start, End: i}, nil
}

// SelectDuration performs a quick-duration selection: durationHours of play
// starting at startTime, using the generation unit to work out how many
// consecutive slots that needs. The run must fit inside the generated slots,
// be contiguous in wall-clock time and contain no booked slot; otherwise the
// selection fails with ErrDurationUnavailable rather than being truncated.
func SelectDuration(all []AtomicSlot, startTime string, durationHours float64, unitMinutes int) (Selection, error) {
	if unitMinutes != 30 && unitMinutes != 60 {
		return NoSelection, ErrInvalidUnit
	}
	// The duration must map to a whole number of slots. A fractional count
	// (1.5h at 60-minute units) would otherwise round down and book less
	// time than the user asked for.
	minutes := durationHours * 60
	if math.Mod(minutes, float64(unitMinutes)) != 0 {
		return NoSelection, ErrDurationUnavailable
	}
	needed := int(minutes / float64(unitMinutes))
	if needed < 1 {
		return NoSelection, ErrDurationUnavailable
	}
	i, ok := indexOf(all, startTime)
	if !ok {
		return NoSelection, ErrSlotNotFound
	}
	last := i + needed - 1
	if last >= len(all) {
		return NoSelection, ErrDurationUnavailable
	}
	if err := checkRun(all, i, last); err != nil {
		// A gap or booked slot inside a quick-duration run both mean the
		// requested duration cannot be honoured from this start.
		return NoSelection, ErrDurationUnavailable
	}
	return Selection{Start: i, End: last}, nil
}

// SelectSpan selects the run of slots covering exactly [startTime, endTime).
// It is used by the booking endpoint, where the client submits explicit
// bounds instead of tap events. The span must land on slot boundaries, be
// contiguous and contain no booked slot.
func SelectSpan(all []AtomicSlot, startTime, endTime string) (Selection, error) {
	i, ok := indexOf(all, startTime)
	if !ok {
		return NoSelection, ErrSlotNotFound
	}
	last := -1
	for j := i; j < len(all); j++ {
		if all[j].EndTime == endTime {
			last = j
			break
		}
		if all[j].EndTime > endTime {
			break
		}
	}
	if last < 0 {
		return NoSelection, ErrDurationUnavailable
	}
	if err := checkRun(all, i, last); err != nil {
		return NoSelection, err
	}
	return Selection{Start: i, End: last}, nil
}

// BookingPayload is the validated outcome of a selection, ready to hand to
// the booking repository. The total is summed per slot rather than computed
// as duration times a single hourly rate, so abutting peak and off-peak rules
// price correctly.
type BookingPayload struct {
	StartTime     string  // start of the first selected slot
	EndTime       string  // end of the last selected slot
	DurationHours float64 // total selected playing time in hours
	TotalAmount   float64 // sum of the selected slots' prices
}

// FinalizeSelection re-validates a selection against the (freshly generated)
// slot list and derives the submission payload. Callers must regenerate slots
// immediately before finalizing: availability may have changed while the user
// filled in their details, and this re-check is only an optimistic guard in
// any case. The booking repository performs the authoritative conflict check
// inside its insert transaction.
func FinalizeSelection(all []AtomicSlot, sel Selection, unitMinutes int) (BookingPayload, error) {
	if unitMinutes != 30 && unitMinutes != 60 {
		return BookingPayload{}, ErrInvalidUnit
	}
	if sel.IsEmpty() {
		return BookingPayload{}, ErrEmptySelection
	}
	if sel.Start >= len(all) || sel.End >= len(all) || sel.End < sel.Start {
		return BookingPayload{}, ErrNotContiguous
	}
	if err := checkRun(all, sel.Start, sel.End); err != nil {
		return BookingPayload{}, err
	}
	run := all[sel.Start : sel.End+1]
	total := 0.0
	for _, s := range run {
		total += s.Price
	}
	return BookingPayload{
		StartTime:     run[0].StartTime,
		EndTime:       run[len(run)-1].EndTime,
		DurationHours: float64(len(run)*unitMinutes) / 60,
		TotalAmount:   total,
	}, nil
}

// checkRun validates the run [from, to] inclusive: no booked slot and no
// wall-clock gap between consecutive slots.
func checkRun(all []AtomicSlot, from, to int) error {
	for j := from; j <= to; j++ {
		if all[j].Booked {
			return ErrContainsBookedSlot
		}
		if j > from && all[j-1].EndTime != all[j].StartTime {
			return ErrNotContiguous
		}
	}
	return nil
}

// indexOf finds the slot starting at the given time. Generated lists are
// small (at most 48 slots per day) so a linear scan is fine.
func indexOf(all []AtomicSlot, startTime string) (int, bool) {
	for i := range all {
		if all[i].StartTime == startTime {
			return i, true
		}
	}
	return -1, false
}
