package slotengine

import (
	"errors"
	"testing"
)

// fourSlots builds 06:00-08:00 in half-hour units at ₹1000/hr with the given
// start times booked.
func fourSlots(booked ...string) []AtomicSlot {
	isBooked := map[string]bool{}
	for _, b := range booked {
		isBooked[b] = true
	}
	starts := []string{"06:00", "06:30", "07:00", "07:30"}
	out := make([]AtomicSlot, 0, len(starts))
	for i, s := range starts {
		end := "08:00"
		if i+1 < len(starts) {
			end = starts[i+1]
		}
		out = append(out, AtomicSlot{StartTime: s, EndTime: end, Price: 500, Booked: isBooked[s]})
	}
	return out
}

func TestTapFirstSetsTentativeStart(t *testing.T) {
	slots := fourSlots()
	sel, err := Tap(slots, NoSelection, "06:30")
	if err != nil {
		t.Fatalf("Tap: %v", err)
	}
	if sel.Start != 1 || sel.End != 1 {
		t.Fatalf("sel = %+v, want {1 1}", sel)
	}
}

func TestTapLaterExtends(t *testing.T) {
	slots := fourSlots()
	sel, err := Tap(slots, Selection{Start: 0, End: 0}, "07:00")
	if err != nil {
		t.Fatalf("Tap: %v", err)
	}
	if sel.Start != 0 || sel.End != 2 {
		t.Fatalf("sel = %+v, want {0 2}", sel)
	}
	run := sel.Slots(slots)
	if len(run) != 3 || run[0].StartTime != "06:00" || run[2].StartTime != "07:00" {
		t.Fatalf("selected run = %+v", run)
	}
}

func TestTapEarlierOrEqualResets(t *testing.T) {
	slots := fourSlots()
	sel, err := Tap(slots, Selection{Start: 2, End: 2}, "06:00")
	if err != nil {
		t.Fatalf("Tap earlier: %v", err)
	}
	if sel.Start != 0 || sel.End != 0 {
		t.Fatalf("sel after earlier tap = %+v, want {0 0}", sel)
	}
	sel, err = Tap(slots, Selection{Start: 1, End: 3}, "06:30")
	if err != nil {
		t.Fatalf("Tap equal: %v", err)
	}
	if sel.Start != 1 || sel.End != 1 {
		t.Fatalf("sel after equal tap = %+v, want {1 1}", sel)
	}
}

func TestTapAcrossBookedSlotRejected(t *testing.T) {
	// 06:30 and 07:00 booked; tapping 06:00 then 07:30 must fail outright,
	// not splice around the booked middle.
	slots := fourSlots("06:30", "07:00")
	sel, err := Tap(slots, NoSelection, "06:00")
	if err != nil {
		t.Fatalf("first tap: %v", err)
	}
	got, err := Tap(slots, sel, "07:30")
	if !errors.Is(err, ErrContainsBookedSlot) {
		t.Fatalf("err = %v, want ErrContainsBookedSlot", err)
	}
	if got != sel {
		t.Fatalf("failed tap changed selection: %+v", got)
	}
}

func TestTapBookedSlotRejected(t *testing.T) {
	slots := fourSlots("06:30")
	if _, err := Tap(slots, NoSelection, "06:30"); !errors.Is(err, ErrContainsBookedSlot) {
		t.Fatalf("err = %v, want ErrContainsBookedSlot", err)
	}
}

func TestTapUnknownTime(t *testing.T) {
	if _, err := Tap(fourSlots(), NoSelection, "09:15"); !errors.Is(err, ErrSlotNotFound) {
		t.Fatalf("err = %v, want ErrSlotNotFound", err)
	}
}

func TestSelectDuration(t *testing.T) {
	slots := fourSlots()
	sel, err := SelectDuration(slots, "06:00", 1, 30)
	if err != nil {
		t.Fatalf("SelectDuration: %v", err)
	}
	if sel.Start != 0 || sel.End != 1 {
		t.Fatalf("sel = %+v, want {0 1}", sel)
	}
}

func TestSelectDurationFractionalSlotCount(t *testing.T) {
	// A duration that does not divide into whole units must fail outright,
	// never round down to a shorter booking.
	slots := fourSlots()
	cases := []struct {
		name          string
		durationHours float64
		unit          int
	}{
		{"1.5h at 60-minute units", 1.5, 60},
		{"0.75h at 30-minute units", 0.75, 30},
		{"0.25h at 30-minute units", 0.25, 30},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sel, err := SelectDuration(slots, "06:00", tc.durationHours, tc.unit)
			if !errors.Is(err, ErrDurationUnavailable) {
				t.Fatalf("err = %v, want ErrDurationUnavailable", err)
			}
			if !sel.IsEmpty() {
				t.Fatalf("sel = %+v, want empty", sel)
			}
		})
	}
}

func TestSelectDurationPastEnd(t *testing.T) {
	slots := fourSlots()
	if _, err := SelectDuration(slots, "07:30", 1, 30); !errors.Is(err, ErrDurationUnavailable) {
		t.Fatalf("err = %v, want ErrDurationUnavailable", err)
	}
}

func TestSelectDurationAcrossBookedSlot(t *testing.T) {
	slots := fourSlots("07:00")
	if _, err := SelectDuration(slots, "06:30", 1, 30); !errors.Is(err, ErrDurationUnavailable) {
		t.Fatalf("err = %v, want ErrDurationUnavailable", err)
	}
}

func TestSelectSpan(t *testing.T) {
	slots := fourSlots()
	sel, err := SelectSpan(slots, "06:30", "07:30")
	if err != nil {
		t.Fatalf("SelectSpan: %v", err)
	}
	if sel.Start != 1 || sel.End != 2 {
		t.Fatalf("sel = %+v, want {1 2}", sel)
	}
	if _, err := SelectSpan(slots, "06:30", "07:15"); !errors.Is(err, ErrDurationUnavailable) {
		t.Fatalf("off-boundary end: err = %v, want ErrDurationUnavailable", err)
	}
	if _, err := SelectSpan(fourSlots("07:00"), "06:30", "07:30"); !errors.Is(err, ErrContainsBookedSlot) {
		t.Fatalf("booked middle: err = %v, want ErrContainsBookedSlot", err)
	}
}

func TestFinalizeSelectionTotals(t *testing.T) {
	// Two half-hour slots at ₹500/hr price to 250 each; the payload total is
	// the per-slot sum.
	slots := []AtomicSlot{
		{StartTime: "09:00", EndTime: "09:30", Price: 250},
		{StartTime: "09:30", EndTime: "10:00", Price: 250},
	}
	payload, err := FinalizeSelection(slots, Selection{Start: 0, End: 1}, 30)
	if err != nil {
		t.Fatalf("FinalizeSelection: %v", err)
	}
	if payload.TotalAmount != 500 {
		t.Errorf("TotalAmount = %v, want 500", payload.TotalAmount)
	}
	if payload.DurationHours != 1 {
		t.Errorf("DurationHours = %v, want 1", payload.DurationHours)
	}
	if payload.StartTime != "09:00" || payload.EndTime != "10:00" {
		t.Errorf("bounds = %s-%s, want 09:00-10:00", payload.StartTime, payload.EndTime)
	}
}

func TestFinalizeSelectionMixedRates(t *testing.T) {
	// Abutting off-peak and peak rules: the total is the per-slot sum, not
	// duration times either hourly rate.
	slots := []AtomicSlot{
		{StartTime: "16:00", EndTime: "17:00", Price: 1000},
		{StartTime: "17:00", EndTime: "18:00", Price: 1500},
	}
	payload, err := FinalizeSelection(slots, Selection{Start: 0, End: 1}, 60)
	if err != nil {
		t.Fatalf("FinalizeSelection: %v", err)
	}
	if payload.TotalAmount != 2500 {
		t.Errorf("TotalAmount = %v, want 2500", payload.TotalAmount)
	}
}

func TestFinalizeSelectionEmpty(t *testing.T) {
	if _, err := FinalizeSelection(fourSlots(), NoSelection, 30); !errors.Is(err, ErrEmptySelection) {
		t.Fatalf("err = %v, want ErrEmptySelection", err)
	}
}

func TestFinalizeSelectionStaleBookedSlot(t *testing.T) {
	// The selection was made against a snapshot where 06:30 was free; by
	// finalize time it is booked. The re-validation must catch it.
	slots := fourSlots("06:30")
	if _, err := FinalizeSelection(slots, Selection{Start: 0, End: 1}, 30); !errors.Is(err, ErrContainsBookedSlot) {
		t.Fatalf("err = %v, want ErrContainsBookedSlot", err)
	}
}

func TestFinalizeSelectionGap(t *testing.T) {
	slots := []AtomicSlot{
		{StartTime: "06:00", EndTime: "06:30", Price: 500},
		{StartTime: "07:00", EndTime: "07:30", Price: 500},
	}
	if _, err := FinalizeSelection(slots, Selection{Start: 0, End: 1}, 30); !errors.Is(err, ErrNotContiguous) {
		t.Fatalf("err = %v, want ErrNotContiguous", err)
	}
}

func TestSlotStatusDerivation(t *testing.T) {
	slots := fourSlots("07:00")
	sel := Selection{Start: 0, End: 1}
	want := []string{StatusSelected, StatusSelected, StatusBooked, StatusAvailable}
	for i, w := range want {
		if got := SlotStatus(slots, i, sel); got != w {
			t.Errorf("SlotStatus(%d) = %s, want %s", i, got, w)
		}
	}
	// booked wins even when the index falls inside the selection
	if got := SlotStatus(slots, 2, Selection{Start: 0, End: 3}); got != StatusBooked {
		t.Errorf("booked slot inside selection rendered as %s", got)
	}
}
