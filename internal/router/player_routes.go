package router

import (
	"github.com/iliyamo/venue-slot-booking/internal/handler"
	"github.com/iliyamo/venue-slot-booking/internal/middleware"
	"github.com/labstack/echo/v4"
)

// RegisterPlayer registers player-scoped endpoints under /v1. All routes
// require a valid JWT and the PLAYER role. Players can create bookings,
// list their own bookings, view a single booking and cancel upcoming
// bookings.
func RegisterPlayer(e *echo.Echo, h *handler.PlayerHandler, jwtSecret string) {
	g := e.Group(
		"/v1",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole("PLAYER"),
	)
	// Note: GET /v1/arenas/:id/availability is registered on the public
	// router so that guests can browse open slots before signing up.
	// Player-specific endpoints begin here.
	g.POST("/bookings", h.CreateBooking)
	g.GET("/my-bookings", h.ListMyBookings)
	g.GET("/bookings/:id", h.GetBooking)
	g.DELETE("/bookings/:id", h.CancelBooking)
}
