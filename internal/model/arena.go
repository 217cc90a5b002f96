package model

import "time"

// Arena is a single bookable playing surface inside a venue, such as a
// badminton court or a five-a-side turf. Slot rules and bookings always
// reference an arena, never the venue directly, so two courts at the
// same venue can run different hours and prices.
//
// Fields:
//  ID          – primary key identifier.
//  VenueID     – venue this arena belongs to.
//  Name        – display name (e.g. "Court 2").
//  Sport       – sport played here (e.g. "badminton", "football").
//  Description – optional free-text description.
//  IsActive    – inactive arenas generate no slots.
//  CreatedAt   – timestamp when the record was created.
//  UpdatedAt   – timestamp when the record was last updated.
type Arena struct {
	ID          uint64    // arenas.id
	VenueID     uint64    // arenas.venue_id
	Name        string    // arenas.name
	Sport       string    // arenas.sport
	Description *string   // arenas.description (nullable)
	IsActive    bool      // arenas.is_active
	CreatedAt   time.Time // arenas.created_at
	UpdatedAt   time.Time // arenas.updated_at
}
