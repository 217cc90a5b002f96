// Package handler exposes HTTP handlers for both authenticated and public
// endpoints. This file defines the public browsing API: guests can list
// venues and arenas and check slot availability without authenticating.
// Sensitive fields (owner IDs, timestamps) are filtered from responses.

package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/venue-slot-booking/internal/model"
	"github.com/iliyamo/venue-slot-booking/internal/repository"
	"github.com/iliyamo/venue-slot-booking/internal/slotengine"
)

// PublicHandler aggregates repositories needed for unauthenticated
// browsing and availability lookups.
type PublicHandler struct {
	VenueRepo    *repository.VenueRepo
	ArenaRepo    *repository.ArenaRepo
	SlotRuleRepo *repository.SlotRuleRepo
	BookingRepo  *repository.BookingRepo
}

// NewPublicHandler constructs a PublicHandler and panics on nil deps.
func NewPublicHandler(venueRepo *repository.VenueRepo, arenaRepo *repository.ArenaRepo, slotRuleRepo *repository.SlotRuleRepo, bookingRepo *repository.BookingRepo) *PublicHandler {
	if venueRepo == nil || arenaRepo == nil || slotRuleRepo == nil || bookingRepo == nil {
		panic("nil repository passed to NewPublicHandler")
	}
	return &PublicHandler{
		VenueRepo:    venueRepo,
		ArenaRepo:    arenaRepo,
		SlotRuleRepo: slotRuleRepo,
		BookingRepo:  bookingRepo,
	}
}

// PublicVenue represents a venue exposed via the public API. It contains
// only safe fields.
type PublicVenue struct {
	ID      uint64 `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	City    string `json:"city"`
	Phone   string `json:"phone"`
}

// PublicArena represents an arena exposed via the public API.
type PublicArena struct {
	ID          uint64  `json:"id"`
	VenueID     uint64  `json:"venue_id"`
	Name        string  `json:"name"`
	Sport       string  `json:"sport"`
	Description *string `json:"description,omitempty"`
}

// SlotView is one atomic slot in an availability response. Status is
// "available" or "booked"; "selected" only ever exists client-side.
type SlotView struct {
	StartTime string  `json:"start_time"`
	EndTime   string  `json:"end_time"`
	Price     float64 `json:"price"`
	Status    string  `json:"status"`
}

func toPublicVenue(v model.Venue) PublicVenue {
	return PublicVenue{ID: v.ID, Name: v.Name, Address: v.Address, City: v.City, Phone: v.Phone}
}

// GetPublicVenues returns all active venues. Response JSON contains an
// "items" array of PublicVenue.
func (h *PublicHandler) GetPublicVenues(c echo.Context) error {
	venues, err := h.VenueRepo.ListActive(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	out := make([]PublicVenue, 0, len(venues))
	for _, v := range venues {
		out = append(out, toPublicVenue(v))
	}
	return c.JSON(http.StatusOK, echo.Map{"items": out})
}

// GetPublicVenue returns one venue by id.
func (h *PublicHandler) GetPublicVenue(c echo.Context) error {
	id, ok := parseID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	v, err := h.VenueRepo.GetByID(c.Request().Context(), id)
	if err != nil {
		if err == repository.ErrVenueNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "venue not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	if !v.IsActive {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "venue not found"})
	}
	return c.JSON(http.StatusOK, echo.Map{"item": toPublicVenue(v)})
}

// GetPublicArenasByVenue lists the active arenas of a venue.
func (h *PublicHandler) GetPublicArenasByVenue(c echo.Context) error {
	id, ok := parseID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	ctx := c.Request().Context()
	v, err := h.VenueRepo.GetByID(ctx, id)
	if err != nil {
		if err == repository.ErrVenueNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "venue not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	if !v.IsActive {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "venue not found"})
	}
	arenas, err := h.ArenaRepo.ListByVenue(ctx, id, true)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	out := make([]PublicArena, 0, len(arenas))
	for _, a := range arenas {
		out = append(out, PublicArena{ID: a.ID, VenueID: a.VenueID, Name: a.Name, Sport: a.Sport, Description: a.Description})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": out})
}

// GetArenaAvailability handles GET /v1/arenas/:id/availability. Query
// parameters: date=YYYY-MM-DD (required), unit=30|60 (default 60), and an
// optional window=morning|afternoon|evening|night. Rules and bookings are
// fetched fresh on every call, so the slot list always reflects the latest
// snapshot; an empty list is a normal response, not an error.
func (h *PublicHandler) GetArenaAvailability(c echo.Context) error {
	id, ok := parseID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid arena id"})
	}
	date, err := parseDate(c.QueryParam("date"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "date must be YYYY-MM-DD"})
	}
	unit := 60
	if raw := c.QueryParam("unit"); raw != "" {
		unit, err = strconv.Atoi(raw)
		if err != nil || (unit != 30 && unit != 60) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "unit must be 30 or 60"})
		}
	}
	var window *slotengine.TimeWindow
	if name := c.QueryParam("window"); name != "" {
		w, known := slotengine.WindowByName(name)
		if !known {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown window"})
		}
		window = &w
	}

	ctx := c.Request().Context()
	arena, err := h.ArenaRepo.GetByID(ctx, id)
	if err != nil {
		if err == repository.ErrArenaNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "arena not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	if !arena.IsActive {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "arena not found"})
	}

	slots, err := generateArenaSlots(ctx, h.SlotRuleRepo, h.BookingRepo, arena.ID, date, unit, window)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to compute availability"})
	}

	out := make([]SlotView, 0, len(slots))
	for i, s := range slots {
		out = append(out, SlotView{
			StartTime: s.StartTime,
			EndTime:   s.EndTime,
			Price:     s.Price,
			Status:    slotengine.SlotStatus(slots, i, slotengine.NoSelection),
		})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"arena_id": arena.ID,
		"date":     date.Format("2006-01-02"),
		"unit":     unit,
		"items":    out,
	})
}
