package handler // owner-specific venue handlers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/venue-slot-booking/internal/model"
	"github.com/iliyamo/venue-slot-booking/internal/repository"
)

// CreateVenue handles POST /v1/venues. The authenticated owner becomes the
// venue's owner; new venues start active.
func (h *OwnerHandler) CreateVenue(c echo.Context) error {
	ownerID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var body struct {
		Name    string `json:"name"`
		Address string `json:"address"`
		City    string `json:"city"`
		Phone   string `json:"phone"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	name := strings.TrimSpace(body.Name)
	if name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name is required"})
	}
	v := &model.Venue{
		OwnerID:  ownerID,
		Name:     name,
		Address:  strings.TrimSpace(body.Address),
		City:     strings.TrimSpace(body.City),
		Phone:    strings.TrimSpace(body.Phone),
		IsActive: true,
	}
	if err := h.VenueRepo.Create(c.Request().Context(), v); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create venue"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"venue": v})
}

// ListMyVenues handles GET /v1/my-venues and returns every venue the owner
// manages, including inactive ones.
func (h *OwnerHandler) ListMyVenues(c echo.Context) error {
	ownerID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	venues, err := h.VenueRepo.ListByOwner(c.Request().Context(), ownerID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": venues})
}

// UpdateVenue handles PUT/PATCH /v1/venues/:id. Omitted fields keep their
// current values.
func (h *OwnerHandler) UpdateVenue(c echo.Context) error {
	ownerID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	id, ok := parseID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid venue id"})
	}
	ctx := c.Request().Context()
	v, err := h.VenueRepo.GetByIDAndOwner(ctx, id, ownerID)
	if err != nil {
		if err == repository.ErrVenueNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "venue not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	var body struct {
		Name     *string `json:"name"`
		Address  *string `json:"address"`
		City     *string `json:"city"`
		Phone    *string `json:"phone"`
		IsActive *bool   `json:"is_active"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if body.Name != nil {
		name := strings.TrimSpace(*body.Name)
		if name == "" {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "name cannot be empty"})
		}
		v.Name = name
	}
	if body.Address != nil {
		v.Address = strings.TrimSpace(*body.Address)
	}
	if body.City != nil {
		v.City = strings.TrimSpace(*body.City)
	}
	if body.Phone != nil {
		v.Phone = strings.TrimSpace(*body.Phone)
	}
	if body.IsActive != nil {
		v.IsActive = *body.IsActive
	}
	if err := h.VenueRepo.Update(ctx, &v); err != nil {
		if err == repository.ErrVenueNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "venue not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not update venue"})
	}
	return c.JSON(http.StatusOK, echo.Map{"venue": v})
}

// DeleteVenue handles DELETE /v1/venues/:id. Deletion is refused while any
// arena of the venue still has upcoming non-cancelled bookings.
func (h *OwnerHandler) DeleteVenue(c echo.Context) error {
	ownerID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	id, ok := parseID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid venue id"})
	}
	ctx := c.Request().Context()
	if _, err := h.VenueRepo.GetByIDAndOwner(ctx, id, ownerID); err != nil {
		if err == repository.ErrVenueNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "venue not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	arenas, err := h.ArenaRepo.ListByVenue(ctx, id, false)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	for _, a := range arenas {
		n, err := h.ArenaRepo.CountUpcomingBookings(ctx, a.ID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
		}
		if n > 0 {
			return c.JSON(http.StatusConflict, echo.Map{"error": "venue has upcoming bookings"})
		}
	}
	if err := h.VenueRepo.Delete(ctx, id, ownerID); err != nil {
		if err == repository.ErrVenueNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "venue not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not delete venue"})
	}
	return c.NoContent(http.StatusNoContent)
}
