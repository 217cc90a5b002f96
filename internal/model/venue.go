package model

import "time"

// Venue represents a sports facility owned by an OWNER user. A venue
// groups one or more arenas (individual courts, grounds or turfs) that
// players can book.
//
// Fields:
//  ID        – primary key identifier.
//  OwnerID   – user who owns and manages the venue.
//  Name      – display name of the venue.
//  Address   – street address shown to players.
//  City      – city the venue is located in.
//  Phone     – contact phone number.
//  IsActive  – inactive venues are hidden from public browsing.
//  CreatedAt – timestamp when the record was created.
//  UpdatedAt – timestamp when the record was last updated.
type Venue struct {
	ID        uint64    // venues.id
	OwnerID   uint64    // venues.owner_id
	Name      string    // venues.name
	Address   string    // venues.address
	City      string    // venues.city
	Phone     string    // venues.phone
	IsActive  bool      // venues.is_active
	CreatedAt time.Time // venues.created_at
	UpdatedAt time.Time // venues.updated_at
}
