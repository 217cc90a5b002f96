package handler // owner-specific slot rule handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/venue-slot-booking/internal/model"
	"github.com/iliyamo/venue-slot-booking/internal/repository"
	"github.com/iliyamo/venue-slot-booking/internal/slotengine"
)

// validateRuleTimes checks a rule's clock strings and range at data entry.
// Rejecting bad input here keeps malformed rows out of the table, so the
// engine's skip-and-report path only ever fires on legacy data.
func validateRuleTimes(startTime, endTime string) (string, bool) {
	start, err := slotengine.ParseClock(startTime)
	if err != nil {
		return "start_time must be HH:MM", false
	}
	end, err := slotengine.ParseClock(endTime)
	if err != nil {
		return "end_time must be HH:MM", false
	}
	if start >= end {
		return "start_time must be before end_time", false
	}
	return "", true
}

// CreateSlotRule handles POST /v1/slot-rules. The rule's arena must belong
// to the authenticated owner. Day indices are 0=Monday .. 6=Sunday.
// Overlapping active rules on the same arena and day are rejected so the
// generated slot list can never offer the same start time twice.
func (h *OwnerHandler) CreateSlotRule(c echo.Context) error {
	ownerID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var body struct {
		ArenaID      uint64  `json:"arena_id"`
		DayOfWeek    *int    `json:"day_of_week"`
		StartTime    string  `json:"start_time"`
		EndTime      string  `json:"end_time"`
		PricePerHour float64 `json:"price_per_hour"`
		IsPeakHour   bool    `json:"is_peak_hour"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if body.ArenaID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "arena_id is required"})
	}
	if body.DayOfWeek == nil || *body.DayOfWeek < slotengine.Monday || *body.DayOfWeek > slotengine.Sunday {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "day_of_week must be 0 (Monday) through 6 (Sunday)"})
	}
	if msg, ok := validateRuleTimes(body.StartTime, body.EndTime); !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
	}
	if body.PricePerHour < 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "price_per_hour cannot be negative"})
	}
	ctx := c.Request().Context()
	if _, err := h.ArenaRepo.GetByIDAndOwner(ctx, body.ArenaID, ownerID); err != nil {
		if err == repository.ErrArenaNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "arena not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to verify arena"})
	}
	overlaps, err := h.SlotRuleRepo.FindOverlapping(ctx, body.ArenaID, *body.DayOfWeek, body.StartTime, body.EndTime, 0)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to check existing rules"})
	}
	if len(overlaps) > 0 {
		return c.JSON(http.StatusConflict, echo.Map{
			"error":    "rule overlaps an existing rule for this arena and day",
			"overlaps": overlaps,
		})
	}
	sr := &model.SlotRule{
		ArenaID:      body.ArenaID,
		DayOfWeek:    *body.DayOfWeek,
		StartTime:    body.StartTime,
		EndTime:      body.EndTime,
		PricePerHour: body.PricePerHour,
		IsPeakHour:   body.IsPeakHour,
		IsActive:     true,
	}
	if err := h.SlotRuleRepo.Create(ctx, sr); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create slot rule"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"slot_rule": sr})
}

// ListArenaSlotRules handles GET /v1/arenas/:id/slot-rules for the owner
// management screens; inactive rules are included.
func (h *OwnerHandler) ListArenaSlotRules(c echo.Context) error {
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
	rules, err := h.SlotRuleRepo.ListByArena(ctx, id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": rules})
}

// UpdateSlotRule handles PUT/PATCH /v1/slot-rules/:id. Omitted fields keep
// their current values; time and overlap validation re-runs on the merged
// result.
func (h *OwnerHandler) UpdateSlotRule(c echo.Context) error {
	ownerID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	id, ok := parseID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid slot rule id"})
	}
	ctx := c.Request().Context()
	sr, err := h.SlotRuleRepo.GetByIDAndOwner(ctx, id, ownerID)
	if err != nil {
		if err == repository.ErrSlotRuleNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "slot rule not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	var body struct {
		DayOfWeek    *int     `json:"day_of_week"`
		StartTime    *string  `json:"start_time"`
		EndTime      *string  `json:"end_time"`
		PricePerHour *float64 `json:"price_per_hour"`
		IsPeakHour   *bool    `json:"is_peak_hour"`
		IsActive     *bool    `json:"is_active"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if body.DayOfWeek != nil {
		if *body.DayOfWeek < slotengine.Monday || *body.DayOfWeek > slotengine.Sunday {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "day_of_week must be 0 (Monday) through 6 (Sunday)"})
		}
		sr.DayOfWeek = *body.DayOfWeek
	}
	if body.StartTime != nil {
		sr.StartTime = *body.StartTime
	}
	if body.EndTime != nil {
		sr.EndTime = *body.EndTime
	}
	if msg, ok := validateRuleTimes(sr.StartTime, sr.EndTime); !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
	}
	if body.PricePerHour != nil {
		if *body.PricePerHour < 0 {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "price_per_hour cannot be negative"})
		}
		sr.PricePerHour = *body.PricePerHour
	}
	if body.IsPeakHour != nil {
		sr.IsPeakHour = *body.IsPeakHour
	}
	if body.IsActive != nil {
		sr.IsActive = *body.IsActive
	}
	if sr.IsActive {
		overlaps, err := h.SlotRuleRepo.FindOverlapping(ctx, sr.ArenaID, sr.DayOfWeek, sr.StartTime, sr.EndTime, sr.ID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to check existing rules"})
		}
		if len(overlaps) > 0 {
			return c.JSON(http.StatusConflict, echo.Map{
				"error":    "rule overlaps an existing rule for this arena and day",
				"overlaps": overlaps,
			})
		}
	}
	if err := h.SlotRuleRepo.Update(ctx, &sr, ownerID); err != nil {
		if err == repository.ErrSlotRuleNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "slot rule not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not update slot rule"})
	}
	return c.JSON(http.StatusOK, echo.Map{"slot_rule": sr})
}

// DeleteSlotRule handles DELETE /v1/slot-rules/:id.
func (h *OwnerHandler) DeleteSlotRule(c echo.Context) error {
	ownerID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	id, ok := parseID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid slot rule id"})
	}
	if err := h.SlotRuleRepo.Delete(c.Request().Context(), id, ownerID); err != nil {
		if err == repository.ErrSlotRuleNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "slot rule not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not delete slot rule"})
	}
	return c.NoContent(http.StatusNoContent)
}
