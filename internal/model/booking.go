package model

import "time"

// Booking records a player's reservation of an arena for a contiguous
// time range on one calendar date. Availability checks treat every
// non-cancelled booking as blocking, so a PENDING booking occupies its
// slots just like a CONFIRMED one.
//
// Fields:
//  ID          – primary key identifier.
//  Reference   – external booking reference (UUID) handed to the player.
//  UserID      – player who made the booking.
//  ArenaID     – arena being booked.
//  BookingDate – calendar date of play, no time component.
//  StartTime   – wall-clock start, "HH:MM", inclusive.
//  EndTime     – wall-clock end, "HH:MM", exclusive.
//  Status      – PENDING, CONFIRMED or CANCELLED.
//  TotalAmount – price in rupees, summed over the booked atomic slots.
//  PlayerName  – contact name supplied at booking time.
//  PlayerPhone – contact phone supplied at booking time.
//  Notes       – optional free-text note to the venue.
//  CreatedAt   – timestamp when the record was created.
//  UpdatedAt   – timestamp when the record was last updated.
type Booking struct {
	ID          uint64    // bookings.id
	Reference   string    // bookings.reference
	UserID      uint64    // bookings.user_id
	ArenaID     uint64    // bookings.arena_id
	BookingDate time.Time // bookings.booking_date
	StartTime   string    // bookings.start_time
	EndTime     string    // bookings.end_time
	Status      string    // bookings.status
	TotalAmount float64   // bookings.total_amount
	PlayerName  string    // bookings.player_name
	PlayerPhone string    // bookings.player_phone
	Notes       *string   // bookings.notes (nullable)
	CreatedAt   time.Time // bookings.created_at
	UpdatedAt   time.Time // bookings.updated_at
}
