package slotengine

import (
	"sort"
	"strings"
	"time"
)

// WeeklySlotRule is a recurring availability rule for one arena. Rules are
// owned by the venue owner and stored in the slot_rules table; the engine
// treats them as read-only input. DayOfWeek uses the ISO index (0=Monday).
type WeeklySlotRule struct {
	ID           uint64  // slot_rules.id, carried through for error reporting
	DayOfWeek    int     // 0=Monday .. 6=Sunday
	StartTime    string  // "HH:MM", inclusive
	EndTime      string  // "HH:MM", exclusive
	PricePerHour float64 // hourly rate in rupees
	IsPeakHour   bool    // informational flag, does not affect generation
	IsActive     bool    // inactive rules are skipped
}

// ExistingBooking is a snapshot of a confirmed or pending booking for the
// target date. Only non-cancelled bookings participate in conflict marking.
type ExistingBooking struct {
	StartTime string // "HH:MM"
	EndTime   string // "HH:MM"
	Status    string // booking lifecycle state; "CANCELLED" is ignored
}

// AtomicSlot is one bookable unit generated for a single date. Slots are
// immutable values: selection state lives in a separate Selection and is
// never written back onto the slot, since availability (per date) and
// selection (per interaction) have different lifetimes.
type AtomicSlot struct {
	StartTime string  // "HH:MM", inclusive
	EndTime   string  // "HH:MM", exclusive
	Price     float64 // rule hourly rate pro-rated to the unit duration
	Booked    bool    // true when an existing booking overlaps this slot
}

// TimeWindow restricts generated slots to those starting within
// [StartHour, EndHour) on the 24-hour clock.
type TimeWindow struct {
	StartHour int
	EndHour   int
}

// Named windows offered by the availability endpoint. The caller passes the
// window name as a query parameter; unknown names mean no filter.
var namedWindows = map[string]TimeWindow{
	"morning":   {StartHour: 6, EndHour: 12},
	"afternoon": {StartHour: 12, EndHour: 16},
	"evening":   {StartHour: 16, EndHour: 20},
	"night":     {StartHour: 20, EndHour: 24},
}

// WindowByName resolves a named time window ("morning", "afternoon",
// "evening", "night"). The second return value reports whether the name is
// known.
func WindowByName(name string) (TimeWindow, bool) {
	w, ok := namedWindows[strings.ToLower(strings.TrimSpace(name))]
	return w, ok
}

// GenerateSlots enumerates the bookable atomic slots for one arena on one
// calendar date.
//
// Rules are filtered to active ones matching the date's ISO weekday, then
// each rule's [start, end) range is walked in unitMinutes steps. A trailing
// remainder shorter than the unit is dropped, never emitted: a partial slot
// would have an ambiguous duration and price. Each slot is priced at the
// rule's hourly rate pro-rated to the unit. When window is non-nil only slots
// starting inside it are kept. A slot is marked Booked when its half-open
// interval overlaps any non-cancelled booking. The result is ordered
// ascending by start time with duplicate start times removed, keeping the
// slot from the earliest rule in input order, so overlapping rules can never
// yield the same time twice.
//
// Rules with unparsable or inverted time ranges are skipped and reported in
// the second return value so the caller can log them; they never abort
// generation. An empty result is a normal outcome (no rules for that day),
// not an error. The only hard error is an invalid unitMinutes.
func GenerateSlots(rules []WeeklySlotRule, date time.Time, bookings []ExistingBooking, unitMinutes int, window *TimeWindow) ([]AtomicSlot, []*MalformedTimeError, error) {
	if unitMinutes != 30 && unitMinutes != 60 {
		return nil, nil, ErrInvalidUnit
	}

	day := ISOWeekday(date)
	busy := bookedIntervals(bookings)

	slots := make([]AtomicSlot, 0, 32)
	seen := make(map[string]struct{})
	var skipped []*MalformedTimeError

	for _, rule := range rules {
		if !rule.IsActive || rule.DayOfWeek != day {
			continue
		}
		start, end, merr := ruleRange(rule)
		if merr != nil {
			skipped = append(skipped, merr)
			continue
		}
		for at := start; at+unitMinutes <= end; at += unitMinutes {
			if window != nil && (at < window.StartHour*60 || at >= window.EndHour*60) {
				continue
			}
			from := FormatClock(at)
			if _, dup := seen[from]; dup {
				continue
			}
			seen[from] = struct{}{}
			to := at + unitMinutes
			slots = append(slots, AtomicSlot{
				StartTime: from,
				EndTime:   FormatClock(to),
				Price:     rule.PricePerHour * float64(unitMinutes) / 60,
				Booked:    overlapsAny(at, to, busy),
			})
		}
	}

	// Zero-padded HH:MM orders correctly under plain string comparison.
	sort.Slice(slots, func(i, j int) bool { return slots[i].StartTime < slots[j].StartTime })
	return slots, skipped, nil
}

// ruleRange validates and parses a rule's time range into minutes since
// midnight.
func ruleRange(rule WeeklySlotRule) (int, int, *MalformedTimeError) {
	start, err := ParseClock(rule.StartTime)
	if err != nil {
		return 0, 0, &MalformedTimeError{RuleID: rule.ID, StartTime: rule.StartTime, EndTime: rule.EndTime, Reason: err.Error()}
	}
	end, err := ParseClock(rule.EndTime)
	if err != nil {
		return 0, 0, &MalformedTimeError{RuleID: rule.ID, StartTime: rule.StartTime, EndTime: rule.EndTime, Reason: err.Error()}
	}
	if start >= end {
		return 0, 0, &MalformedTimeError{RuleID: rule.ID, StartTime: rule.StartTime, EndTime: rule.EndTime, Reason: "start is not before end"}
	}
	return start, end, nil
}

type interval struct{ start, end int }

// bookedIntervals converts non-cancelled bookings into minute intervals.
// Bookings with unparsable times are ignored; they come from our own tables
// and the write path validates times, so a bad row cannot be matched against
// anything meaningful anyway.
func bookedIntervals(bookings []ExistingBooking) []interval {
	out := make([]interval, 0, len(bookings))
	for _, b := range bookings {
		if strings.EqualFold(b.Status, "CANCELLED") {
			continue
		}
		start, err := ParseClock(b.StartTime)
		if err != nil {
			continue
		}
		end, err := ParseClock(b.EndTime)
		if err != nil {
			continue
		}
		out = append(out, interval{start: start, end: end})
	}
	return out
}

// overlapsAny reports whether the half-open [start, end) overlaps any busy
// interval: start < busy.end && end > busy.start.
func overlapsAny(start, end int, busy []interval) bool {
	for _, b := range busy {
		if start < b.end && end > b.start {
			return true
		}
	}
	return false
}
