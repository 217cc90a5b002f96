package handler

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/venue-slot-booking/internal/model"
	"github.com/iliyamo/venue-slot-booking/internal/queue"
	"github.com/iliyamo/venue-slot-booking/internal/repository"
	queue_publisher "github.com/iliyamo/venue-slot-booking/internal/service"
	"github.com/iliyamo/venue-slot-booking/internal/slotengine"
)

// PlayerHandler groups repositories for booking creation, listing and
// cancellation on behalf of players. JWT authentication and role checks
// have already run in middleware.
type PlayerHandler struct {
	VenueRepo    *repository.VenueRepo
	ArenaRepo    *repository.ArenaRepo
	SlotRuleRepo *repository.SlotRuleRepo
	BookingRepo  *repository.BookingRepo
}

// NewPlayerHandler constructs a PlayerHandler and panics on nil deps.
func NewPlayerHandler(venueRepo *repository.VenueRepo, arenaRepo *repository.ArenaRepo, slotRuleRepo *repository.SlotRuleRepo, bookingRepo *repository.BookingRepo) *PlayerHandler {
	if venueRepo == nil || arenaRepo == nil || slotRuleRepo == nil || bookingRepo == nil {
		panic("nil repository passed to NewPlayerHandler")
	}
	return &PlayerHandler{
		VenueRepo:    venueRepo,
		ArenaRepo:    arenaRepo,
		SlotRuleRepo: slotRuleRepo,
		BookingRepo:  bookingRepo,
	}
}

// CreateBooking handles POST /v1/bookings. The body names an arena, a date
// and either an explicit end_time or a duration_hours shortcut:
//
//	{"arena_id":1, "date":"2025-09-01", "start_time":"06:00",
//	 "end_time":"07:00", "player_name":"...", "player_phone":"..."}
//
// The handler regenerates the arena's slots from a fresh snapshot, selects
// the requested range through the slot engine (which rejects gaps and
// booked slots), prices it per slot, and inserts inside a transaction
// where the repository re-checks for a concurrent conflicting booking.
// That last check is authoritative: when another player won the race, the
// response is 409 with code "slot_taken" and the client must refresh
// availability, distinct from ordinary validation failures.
func (h *PlayerHandler) CreateBooking(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var body struct {
		ArenaID       uint64   `json:"arena_id"`
		Date          string   `json:"date"`
		StartTime     string   `json:"start_time"`
		EndTime       string   `json:"end_time"`
		DurationHours *float64 `json:"duration_hours"`
		Unit          int      `json:"unit"`
		PlayerName    string   `json:"player_name"`
		PlayerPhone   string   `json:"player_phone"`
		Notes         *string  `json:"notes"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if body.ArenaID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "arena_id is required"})
	}
	date, err := parseDate(body.Date)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "date must be YYYY-MM-DD"})
	}
	if _, err := slotengine.ParseClock(body.StartTime); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "start_time must be HH:MM"})
	}
	if startInPast(date, body.StartTime, time.Now().UTC()) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "booking start is in the past"})
	}
	if body.EndTime == "" && body.DurationHours == nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "end_time or duration_hours is required"})
	}
	playerName := strings.TrimSpace(body.PlayerName)
	playerPhone := strings.TrimSpace(body.PlayerPhone)
	if playerName == "" || playerPhone == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "player_name and player_phone are required"})
	}
	unit := body.Unit
	if unit == 0 {
		unit = 30
	}
	if unit != 30 && unit != 60 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "unit must be 30 or 60"})
	}

	ctx := c.Request().Context()
	arena, err := h.ArenaRepo.GetByID(ctx, body.ArenaID)
	if err != nil {
		if err == repository.ErrArenaNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "arena not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	if !arena.IsActive {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "arena not found"})
	}

	// Fresh snapshot for the pre-check; anything computed earlier (for
	// example by the availability endpoint) is stale by now.
	slots, err := generateArenaSlots(ctx, h.SlotRuleRepo, h.BookingRepo, arena.ID, date, unit, nil)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to compute availability"})
	}

	var sel slotengine.Selection
	if body.EndTime != "" {
		if _, err := slotengine.ParseClock(body.EndTime); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "end_time must be HH:MM"})
		}
		sel, err = slotengine.SelectSpan(slots, body.StartTime, body.EndTime)
	} else {
		sel, err = slotengine.SelectDuration(slots, body.StartTime, *body.DurationHours, unit)
	}
	if err != nil {
		return selectionErrorResponse(c, err)
	}
	payload, err := slotengine.FinalizeSelection(slots, sel, unit)
	if err != nil {
		return selectionErrorResponse(c, err)
	}

	booking := &model.Booking{
		Reference:   uuid.NewString(),
		UserID:      userID,
		ArenaID:     arena.ID,
		BookingDate: date,
		StartTime:   payload.StartTime,
		EndTime:     payload.EndTime,
		Status:      "CONFIRMED",
		TotalAmount: payload.TotalAmount,
		PlayerName:  playerName,
		PlayerPhone: playerPhone,
		Notes:       body.Notes,
	}

	tx, err := h.BookingRepo.DB().BeginTx(ctx, nil)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to start transaction"})
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()
	if err := h.BookingRepo.CreateTx(ctx, tx, booking); err != nil {
		if err == repository.ErrSlotTaken {
			return c.JSON(http.StatusConflict, echo.Map{
				"error": "this slot was just taken, please choose another",
				"code":  "slot_taken",
			})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to create booking"})
	}
	if err := tx.Commit(); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to commit transaction"})
	}
	committed = true

	// Fire-and-forget: confirmation events must never fail the booking.
	go publishBookingConfirmed(h.VenueRepo, arena, booking)

	return c.JSON(http.StatusCreated, echo.Map{
		"booking":        booking,
		"duration_hours": payload.DurationHours,
		"total_amount":   payload.TotalAmount,
		"notification":   "queued",
	})
}

// selectionErrorResponse maps slot engine errors onto HTTP responses with
// user-facing guidance.
func selectionErrorResponse(c echo.Context, err error) error {
	switch {
	case errors.Is(err, slotengine.ErrContainsBookedSlot):
		return c.JSON(http.StatusConflict, echo.Map{"error": "the requested range includes a booked slot, select a different time"})
	case errors.Is(err, slotengine.ErrDurationUnavailable):
		return c.JSON(http.StatusConflict, echo.Map{"error": "that duration is not available from this start time, try a shorter duration or a different start"})
	case errors.Is(err, slotengine.ErrSlotNotFound):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "no bookable slot starts at the requested time"})
	case errors.Is(err, slotengine.ErrNotContiguous):
		return c.JSON(http.StatusConflict, echo.Map{"error": "the requested range crosses a gap in the arena's hours"})
	case errors.Is(err, slotengine.ErrEmptySelection), errors.Is(err, slotengine.ErrInvalidUnit):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	default:
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to validate selection"})
	}
}

// publishBookingConfirmed enriches the booking with venue context and hands
// it to the queue publisher. Runs in its own goroutine with a bounded
// context; errors are logged by the publisher and otherwise ignored.
func publishBookingConfirmed(venues *repository.VenueRepo, arena model.Arena, b *model.Booking) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	venueName := ""
	if v, err := venues.GetByID(ctx, arena.VenueID); err == nil {
		venueName = v.Name
	}
	notes := ""
	if b.Notes != nil {
		notes = *b.Notes
	}
	_ = queue_publisher.PublishBookingConfirmed(ctx, queue.BookingConfirmedEvent{
		BookingID:   b.ID,
		Reference:   b.Reference,
		UserID:      b.UserID,
		VenueID:     arena.VenueID,
		VenueName:   venueName,
		ArenaID:     arena.ID,
		ArenaName:   arena.Name,
		Sport:       arena.Sport,
		BookingDate: b.BookingDate.Format("2006-01-02"),
		StartTime:   b.StartTime,
		EndTime:     b.EndTime,
		TotalAmount: b.TotalAmount,
		PlayerName:  b.PlayerName,
		Notes:       notes,
		ConfirmedAt: time.Now().UTC().Format(time.RFC3339),
	})
}

// ListMyBookings handles GET /v1/my-bookings and returns the player's
// bookings, newest date first.
func (h *PlayerHandler) ListMyBookings(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	items, err := h.BookingRepo.ListByUser(c.Request().Context(), userID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load bookings"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// GetBooking handles GET /v1/bookings/:id for the booking's owner.
func (h *PlayerHandler) GetBooking(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	id, ok := parseID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid booking id"})
	}
	b, err := h.BookingRepo.GetByIDForUser(c.Request().Context(), id, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "booking not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to fetch booking"})
	}
	return c.JSON(http.StatusOK, echo.Map{"item": b})
}

// CancelBooking handles DELETE /v1/bookings/:id. Players may cancel their
// own upcoming bookings; past bookings return 409. Cancelling twice is a
// no-op success.
func (h *PlayerHandler) CancelBooking(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	id, ok := parseID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid booking id"})
	}
	err = h.BookingRepo.CancelForUser(c.Request().Context(), id, userID)
	switch {
	case err == nil:
		return c.NoContent(http.StatusNoContent)
	case errors.Is(err, repository.ErrBookingNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": "booking not found"})
	case errors.Is(err, repository.ErrConflict):
		return c.JSON(http.StatusConflict, echo.Map{"error": "booking has already started"})
	default:
		log.Printf("cancel booking %d: %v", id, err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to cancel booking"})
	}
}
