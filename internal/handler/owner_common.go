package handler

import (
	"github.com/iliyamo/venue-slot-booking/internal/repository"
)

// OwnerHandler bundles the repositories owners use to manage venues,
// arenas, slot rules and to inspect bookings on their arenas. JWT and role
// validation happen in middleware before any of these methods run.
type OwnerHandler struct {
	VenueRepo    *repository.VenueRepo
	ArenaRepo    *repository.ArenaRepo
	SlotRuleRepo *repository.SlotRuleRepo
	BookingRepo  *repository.BookingRepo
}

// NewOwnerHandler constructs an OwnerHandler and panics if any dependency
// is nil.
func NewOwnerHandler(venueRepo *repository.VenueRepo, arenaRepo *repository.ArenaRepo, slotRuleRepo *repository.SlotRuleRepo, bookingRepo *repository.BookingRepo) *OwnerHandler {
	if venueRepo == nil || arenaRepo == nil || slotRuleRepo == nil || bookingRepo == nil {
		panic("nil repository passed to NewOwnerHandler")
	}
	return &OwnerHandler{
		VenueRepo:    venueRepo,
		ArenaRepo:    arenaRepo,
		SlotRuleRepo: slotRuleRepo,
		BookingRepo:  bookingRepo,
	}
}
