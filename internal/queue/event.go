// Package queue defines message payloads exchanged over the message broker.
package queue

// BookingConfirmedEvent is published when an arena booking is successfully
// confirmed. It carries enough context for downstream consumers to log,
// notify, or feed analytics without querying the primary database.
type BookingConfirmedEvent struct {
	BookingID   uint64  `json:"booking_id"`
	Reference   string  `json:"reference"`
	UserID      uint64  `json:"user_id"`
	VenueID     uint64  `json:"venue_id"`
	VenueName   string  `json:"venue_name"`
	ArenaID     uint64  `json:"arena_id"`
	ArenaName   string  `json:"arena_name"`
	Sport       string  `json:"sport"`
	BookingDate string  `json:"booking_date"`
	StartTime   string  `json:"start_time"`
	EndTime     string  `json:"end_time"`
	TotalAmount float64 `json:"total_amount"`
	PlayerName  string  `json:"player_name"`
	Notes       string  `json:"notes,omitempty"`
	ConfirmedAt string  `json:"confirmed_at"`
}
