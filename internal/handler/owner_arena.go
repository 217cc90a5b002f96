package handler // owner-specific arena handlers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/venue-slot-booking/internal/model"
	"github.com/iliyamo/venue-slot-booking/internal/repository"
)

// CreateArena handles POST /v1/arenas. The target venue must belong to the
// authenticated owner.
func (h *OwnerHandler) CreateArena(c echo.Context) error {
	ownerID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var body struct {
		VenueID     uint64  `json:"venue_id"`
		Name        string  `json:"name"`
		Sport       string  `json:"sport"`
		Description *string `json:"description"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if body.VenueID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "venue_id is required"})
	}
	name := strings.TrimSpace(body.Name)
	sport := strings.ToLower(strings.TrimSpace(body.Sport))
	if name == "" || sport == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name and sport are required"})
	}
	ctx := c.Request().Context()
	if _, err := h.VenueRepo.GetByIDAndOwner(ctx, body.VenueID, ownerID); err != nil {
		if err == repository.ErrVenueNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "venue not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to verify venue"})
	}
	a := &model.Arena{
		VenueID:     body.VenueID,
		Name:        name,
		Sport:       sport,
		Description: body.Description,
		IsActive:    true,
	}
	if err := h.ArenaRepo.Create(ctx, a); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create arena"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"arena": a})
}

// UpdateArena handles PUT/PATCH /v1/arenas/:id. Omitted fields keep their
// current values.
func (h *OwnerHandler) UpdateArena(c echo.Context) error {
	ownerID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	id, ok := parseID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid arena id"})
	}
	ctx := c.Request().Context()
	a, err := h.ArenaRepo.GetByIDAndOwner(ctx, id, ownerID)
	if err != nil {
		if err == repository.ErrArenaNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "arena not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	var body struct {
		Name        *string `json:"name"`
		Sport       *string `json:"sport"`
		Description *string `json:"description"`
		IsActive    *bool   `json:"is_active"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if body.Name != nil {
		name := strings.TrimSpace(*body.Name)
		if name == "" {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "name cannot be empty"})
		}
		a.Name = name
	}
	if body.Sport != nil {
		sport := strings.ToLower(strings.TrimSpace(*body.Sport))
		if sport == "" {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "sport cannot be empty"})
		}
		a.Sport = sport
	}
	if body.Description != nil {
		a.Description = body.Description
	}
	if body.IsActive != nil {
		a.IsActive = *body.IsActive
	}
	if err := h.ArenaRepo.Update(ctx, &a, ownerID); err != nil {
		if err == repository.ErrArenaNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "arena not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not update arena"})
	}
	return c.JSON(http.StatusOK, echo.Map{"arena": a})
}

// DeleteArena handles DELETE /v1/arenas/:id. Deletion is refused while the
// arena has upcoming non-cancelled bookings.
func (h *OwnerHandler) DeleteArena(c echo.Context) error {
	ownerID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	id, ok := parseID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid arena id"})
	}
	ctx := c.Request().Context()
	if _, err := h.ArenaRepo.GetByIDAndOwner(ctx, id, ownerID); err != nil {
		if err == repository.ErrArenaNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "arena not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	n, err := h.ArenaRepo.CountUpcomingBookings(ctx, id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	if n > 0 {
		return c.JSON(http.StatusConflict, echo.Map{"error": "arena has upcoming bookings"})
	}
	if err := h.ArenaRepo.Delete(ctx, id, ownerID); err != nil {
		if err == repository.ErrArenaNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "arena not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not delete arena"})
	}
	return c.NoContent(http.StatusNoContent)
}
