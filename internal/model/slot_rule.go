package model

import "time"

// SlotRule is a recurring weekly availability rule for an arena. On any
// given date, the slot engine expands the rules whose day_of_week matches
// that date into bookable atomic slots. Day indices follow ISO 8601
// ordering, 0=Monday through 6=Sunday; this is the single convention used
// everywhere in the system, both in storage and in date resolution.
//
// Fields:
//  ID           – primary key identifier.
//  ArenaID      – arena the rule applies to.
//  DayOfWeek    – 0=Monday .. 6=Sunday.
//  StartTime    – opening wall-clock time, "HH:MM", inclusive.
//  EndTime      – closing wall-clock time, "HH:MM", exclusive.
//  PricePerHour – hourly rate in rupees.
//  IsPeakHour   – informational peak-pricing flag.
//  IsActive     – inactive rules are excluded from generation.
//  CreatedAt    – timestamp when the record was created.
//  UpdatedAt    – timestamp when the record was last updated.
type SlotRule struct {
	ID           uint64    // slot_rules.id
	ArenaID      uint64    // slot_rules.arena_id
	DayOfWeek    int       // slot_rules.day_of_week
	StartTime    string    // slot_rules.start_time
	EndTime      string    // slot_rules.end_time
	PricePerHour float64   // slot_rules.price_per_hour
	IsPeakHour   bool      // slot_rules.is_peak_hour
	IsActive     bool      // slot_rules.is_active
	CreatedAt    time.Time // slot_rules.created_at
	UpdatedAt    time.Time // slot_rules.updated_at
}
