package router // router defines how HTTP routes are registered for the API

import (
	"github.com/iliyamo/venue-slot-booking/internal/handler"    // owner handlers
	"github.com/iliyamo/venue-slot-booking/internal/middleware" // JWT + role middlewares
	"github.com/labstack/echo/v4"
)

// RegisterOwner registers OWNER-scoped endpoints under /v1.
// All routes require a valid JWT and OWNER role.
func RegisterOwner(e *echo.Echo, o *handler.OwnerHandler, jwtSecret string) {
	// Attach middlewares at group construction time for clarity.
	g := e.Group(
		"/v1",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole("OWNER"),
	)

	// ---- Venues ----
	g.POST("/venues", o.CreateVenue)
	// NOTE: Listing all venues is handled by the public browse API. The
	// owner-scoped list lives at /v1/my-venues to avoid route conflicts
	// with the public /v1/venues handler.
	g.GET("/my-venues", o.ListMyVenues)
	g.PUT("/venues/:id", o.UpdateVenue)
	g.PATCH("/venues/:id", o.UpdateVenue) // allow partial updates via PATCH as well
	g.DELETE("/venues/:id", o.DeleteVenue)

	// ---- Arenas ----
	g.POST("/arenas", o.CreateArena)
	g.PUT("/arenas/:id", o.UpdateArena)
	g.PATCH("/arenas/:id", o.UpdateArena)
	// NOTE: Listing arenas by venue is provided by the public API
	// (GET /v1/venues/:id/arenas).
	g.DELETE("/arenas/:id", o.DeleteArena)

	// ---- Slot rules ----
	g.POST("/slot-rules", o.CreateSlotRule)
	g.GET("/arenas/:arena_id/slot-rules", o.ListArenaSlotRules)
	g.PUT("/slot-rules/:id", o.UpdateSlotRule)
	g.PATCH("/slot-rules/:id", o.UpdateSlotRule)
	g.DELETE("/slot-rules/:id", o.DeleteSlotRule)

	// ---- Bookings (owner view) ----
	g.GET("/arenas/:arena_id/bookings", o.ListArenaBookings) // optional ?date=YYYY-MM-DD
}
