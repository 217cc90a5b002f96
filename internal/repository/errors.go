// Package repository implements data access over MySQL. This file defines
// sentinel error values reused across multiple repositories so that
// handlers can distinguish failure scenarios: ErrForbidden marks an
// operation on a resource owned by someone else, ErrConflict marks an
// operation blocked by dependent records (e.g. deleting an arena that
// still has upcoming bookings), and the not-found sentinels map to 404s.
package repository

import "errors"

// ErrForbidden is returned when the caller attempts an operation on a
// resource they do not own. Handlers should translate this into an HTTP
// 403 response.
var ErrForbidden = errors.New("forbidden")

// ErrConflict is returned when a delete or update cannot be performed
// because of conflicting state, such as deleting an arena with upcoming
// bookings. Handlers should translate this into an HTTP 409 response.
var ErrConflict = errors.New("conflict")

// ErrVenueNotFound is returned when no venue matches the given identifier
// (or it is not owned by the requesting user, for owner-scoped lookups).
var ErrVenueNotFound = errors.New("venue not found")

// ErrArenaNotFound is the arena analogue of ErrVenueNotFound.
var ErrArenaNotFound = errors.New("arena not found")

// ErrSlotRuleNotFound is returned when a slot rule does not exist or is
// not reachable through the requesting owner's venues.
var ErrSlotRuleNotFound = errors.New("slot rule not found")

// ErrBookingNotFound is returned when a booking does not exist.
var ErrBookingNotFound = errors.New("booking not found")

// ErrSlotTaken is returned by BookingRepo.CreateTx when the requested
// range overlaps a non-cancelled booking at insert time. It is the
// authoritative conflict signal: the slot engine's pre-check runs on a
// snapshot and can race another player's submission, this check cannot.
// Handlers must surface it distinctly from validation errors so clients
// can refresh availability and re-prompt.
var ErrSlotTaken = errors.New("slot was just taken")
