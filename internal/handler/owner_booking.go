package handler // owner-facing booking listing

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/venue-slot-booking/internal/repository"
)

// ListArenaBookings handles GET /v1/arenas/:id/bookings. Owners see every
// booking on their arena, cancelled ones included, optionally restricted to
// one date via ?date=YYYY-MM-DD.
func (h *OwnerHandler) ListArenaBookings(c echo.Context) error {
	ownerID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	id, ok := parseID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid arena id"})
	}
	var date *time.Time
	if raw := c.QueryParam("date"); raw != "" {
		d, err := parseDate(raw)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "date must be YYYY-MM-DD"})
		}
		date = &d
	}
	bookings, err := h.BookingRepo.ListByArenaForOwner(c.Request().Context(), id, ownerID, date)
	if err != nil {
		if err == repository.ErrArenaNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "arena not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": bookings})
}
