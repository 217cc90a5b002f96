package slotengine

import (
	"reflect"
	"testing"
	"time"
)

// mustDate parses YYYY-MM-DD or fails the test.
func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		t.Fatalf("bad date %q: %v", s, err)
	}
	return d
}

// aMonday is 2025-09-01.
const aMonday = "2025-09-01"

func mondayRule(start, end string, price float64) WeeklySlotRule {
	return WeeklySlotRule{ID: 1, DayOfWeek: Monday, StartTime: start, EndTime: end, PricePerHour: price, IsActive: true}
}

func TestGenerateSlotsBasic(t *testing.T) {
	rules := []WeeklySlotRule{mondayRule("06:00", "08:00", 1000)}
	slots, skipped, err := GenerateSlots(rules, mustDate(t, aMonday), nil, 30, nil)
	if err != nil {
		t.Fatalf("GenerateSlots: %v", err)
	}
	if len(skipped) != 0 {
		t.Fatalf("unexpected skipped rules: %v", skipped)
	}
	wantStarts := []string{"06:00", "06:30", "07:00", "07:30"}
	if len(slots) != len(wantStarts) {
		t.Fatalf("got %d slots, want %d: %+v", len(slots), len(wantStarts), slots)
	}
	for i, s := range slots {
		if s.StartTime != wantStarts[i] {
			t.Errorf("slot %d starts at %s, want %s", i, s.StartTime, wantStarts[i])
		}
		if s.Price != 500 {
			t.Errorf("slot %s price = %v, want 500", s.StartTime, s.Price)
		}
		if s.Booked {
			t.Errorf("slot %s unexpectedly booked", s.StartTime)
		}
	}
}

func TestGenerateSlotsPriceScalesWithUnit(t *testing.T) {
	rules := []WeeklySlotRule{mondayRule("06:00", "08:00", 1000)}
	date := mustDate(t, aMonday)

	hourly, _, err := GenerateSlots(rules, date, nil, 60, nil)
	if err != nil {
		t.Fatalf("GenerateSlots(60): %v", err)
	}
	half, _, err := GenerateSlots(rules, date, nil, 30, nil)
	if err != nil {
		t.Fatalf("GenerateSlots(30): %v", err)
	}
	if len(hourly) != 2 || len(half) != 4 {
		t.Fatalf("got %d hourly and %d half-hour slots", len(hourly), len(half))
	}
	if hourly[0].Price != 1000 || half[0].Price != 500 {
		t.Errorf("hourly price %v / half-hour price %v, want 1000 / 500", hourly[0].Price, half[0].Price)
	}
}

func TestGenerateSlotsConflictMarking(t *testing.T) {
	rules := []WeeklySlotRule{mondayRule("06:00", "08:00", 1000)}
	bookings := []ExistingBooking{{StartTime: "06:30", EndTime: "07:30", Status: "confirmed"}}
	slots, _, err := GenerateSlots(rules, mustDate(t, aMonday), bookings, 30, nil)
	if err != nil {
		t.Fatalf("GenerateSlots: %v", err)
	}
	wantBooked := map[string]bool{"06:00": false, "06:30": true, "07:00": true, "07:30": false}
	for _, s := range slots {
		if s.Booked != wantBooked[s.StartTime] {
			t.Errorf("slot %s booked = %v, want %v", s.StartTime, s.Booked, wantBooked[s.StartTime])
		}
	}
}

func TestGenerateSlotsIgnoresCancelledBookings(t *testing.T) {
	rules := []WeeklySlotRule{mondayRule("06:00", "07:00", 1000)}
	bookings := []ExistingBooking{{StartTime: "06:00", EndTime: "07:00", Status: "CANCELLED"}}
	slots, _, err := GenerateSlots(rules, mustDate(t, aMonday), bookings, 30, nil)
	if err != nil {
		t.Fatalf("GenerateSlots: %v", err)
	}
	for _, s := range slots {
		if s.Booked {
			t.Errorf("slot %s marked booked by a cancelled booking", s.StartTime)
		}
	}
}

func TestGenerateSlotsBoundaryBookingsDoNotConflict(t *testing.T) {
	// A booking ending exactly when a slot starts, or starting exactly when
	// it ends, does not overlap under half-open semantics.
	rules := []WeeklySlotRule{mondayRule("06:00", "07:00", 1000)}
	bookings := []ExistingBooking{
		{StartTime: "05:00", EndTime: "06:00", Status: "CONFIRMED"},
		{StartTime: "07:00", EndTime: "08:00", Status: "CONFIRMED"},
	}
	slots, _, err := GenerateSlots(rules, mustDate(t, aMonday), bookings, 60, nil)
	if err != nil {
		t.Fatalf("GenerateSlots: %v", err)
	}
	if len(slots) != 1 || slots[0].Booked {
		t.Fatalf("expected one free slot, got %+v", slots)
	}
}

func TestGenerateSlotsDropsPartialTrailingStep(t *testing.T) {
	rules := []WeeklySlotRule{mondayRule("06:00", "07:45", 1000)}
	slots, _, err := GenerateSlots(rules, mustDate(t, aMonday), nil, 30, nil)
	if err != nil {
		t.Fatalf("GenerateSlots: %v", err)
	}
	// 07:30-07:45 is shorter than the unit and must not appear.
	want := []string{"06:00", "06:30", "07:00"}
	got := startTimes(slots)
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("starts = %v, want %v", got, want)
	}
}

func TestGenerateSlotsWrongDayAndInactive(t *testing.T) {
	rules := []WeeklySlotRule{
		{ID: 1, DayOfWeek: Tuesday, StartTime: "06:00", EndTime: "08:00", PricePerHour: 1000, IsActive: true},
		{ID: 2, DayOfWeek: Monday, StartTime: "06:00", EndTime: "08:00", PricePerHour: 1000, IsActive: false},
	}
	slots, skipped, err := GenerateSlots(rules, mustDate(t, aMonday), nil, 30, nil)
	if err != nil {
		t.Fatalf("GenerateSlots: %v", err)
	}
	if len(slots) != 0 || len(skipped) != 0 {
		t.Fatalf("expected empty result, got slots=%v skipped=%v", slots, skipped)
	}
}

func TestGenerateSlotsSkipsMalformedRules(t *testing.T) {
	rules := []WeeklySlotRule{
		{ID: 7, DayOfWeek: Monday, StartTime: "6:00", EndTime: "08:00", PricePerHour: 1000, IsActive: true},
		{ID: 8, DayOfWeek: Monday, StartTime: "10:00", EndTime: "09:00", PricePerHour: 1000, IsActive: true},
		mondayRule("06:00", "07:00", 800),
	}
	slots, skipped, err := GenerateSlots(rules, mustDate(t, aMonday), nil, 60, nil)
	if err != nil {
		t.Fatalf("GenerateSlots: %v", err)
	}
	if len(skipped) != 2 {
		t.Fatalf("skipped %d rules, want 2: %v", len(skipped), skipped)
	}
	if skipped[0].RuleID != 7 || skipped[1].RuleID != 8 {
		t.Errorf("skipped rule IDs = %d,%d, want 7,8", skipped[0].RuleID, skipped[1].RuleID)
	}
	if len(slots) != 1 || slots[0].StartTime != "06:00" {
		t.Fatalf("good rule did not generate: %+v", slots)
	}
}

func TestGenerateSlotsSortedAndDeduplicated(t *testing.T) {
	rules := []WeeklySlotRule{
		{ID: 2, DayOfWeek: Monday, StartTime: "09:00", EndTime: "11:00", PricePerHour: 1500, IsActive: true},
		{ID: 1, DayOfWeek: Monday, StartTime: "06:00", EndTime: "10:00", PricePerHour: 1000, IsActive: true},
	}
	slots, _, err := GenerateSlots(rules, mustDate(t, aMonday), nil, 60, nil)
	if err != nil {
		t.Fatalf("GenerateSlots: %v", err)
	}
	seen := map[string]bool{}
	for i, s := range slots {
		if seen[s.StartTime] {
			t.Errorf("duplicate start time %s", s.StartTime)
		}
		seen[s.StartTime] = true
		if i > 0 && slots[i-1].StartTime >= s.StartTime {
			t.Errorf("output not sorted at %d: %s >= %s", i, slots[i-1].StartTime, s.StartTime)
		}
	}
	// 09:00 comes from the first rule in input order at the overlapping
	// rule's price, not the second.
	for _, s := range slots {
		if s.StartTime == "09:00" && s.Price != 1500 {
			t.Errorf("overlapping slot kept price %v, want first-encountered 1500", s.Price)
		}
	}
	want := []string{"06:00", "07:00", "08:00", "09:00", "10:00"}
	if got := startTimes(slots); !reflect.DeepEqual(got, want) {
		t.Fatalf("starts = %v, want %v", got, want)
	}
}

func TestGenerateSlotsTimeWindow(t *testing.T) {
	rules := []WeeklySlotRule{mondayRule("05:00", "13:00", 1000)}
	w, ok := WindowByName("morning")
	if !ok {
		t.Fatal("morning window not defined")
	}
	slots, _, err := GenerateSlots(rules, mustDate(t, aMonday), nil, 60, &w)
	if err != nil {
		t.Fatalf("GenerateSlots: %v", err)
	}
	want := []string{"06:00", "07:00", "08:00", "09:00", "10:00", "11:00"}
	if got := startTimes(slots); !reflect.DeepEqual(got, want) {
		t.Fatalf("morning starts = %v, want %v", got, want)
	}
}

func TestGenerateSlotsIdempotent(t *testing.T) {
	rules := []WeeklySlotRule{
		mondayRule("06:00", "09:00", 1000),
		{ID: 2, DayOfWeek: Monday, StartTime: "17:00", EndTime: "20:00", PricePerHour: 1500, IsPeakHour: true, IsActive: true},
	}
	bookings := []ExistingBooking{{StartTime: "18:00", EndTime: "19:00", Status: "PENDING"}}
	date := mustDate(t, aMonday)

	first, _, err := GenerateSlots(rules, date, bookings, 30, nil)
	if err != nil {
		t.Fatalf("GenerateSlots: %v", err)
	}
	second, _, err := GenerateSlots(rules, date, bookings, 30, nil)
	if err != nil {
		t.Fatalf("GenerateSlots: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatal("identical inputs produced different output")
	}
}

func TestGenerateSlotsInvalidUnit(t *testing.T) {
	_, _, err := GenerateSlots(nil, mustDate(t, aMonday), nil, 45, nil)
	if err != ErrInvalidUnit {
		t.Fatalf("err = %v, want ErrInvalidUnit", err)
	}
}

func startTimes(slots []AtomicSlot) []string {
	out := make([]string, 0, len(slots))
	for _, s := range slots {
		out = append(out, s.StartTime)
	}
	return out
}
