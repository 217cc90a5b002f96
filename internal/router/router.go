package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing

	"github.com/iliyamo/venue-slot-booking/internal/handler"    // import the handlers that implement business logic
	"github.com/iliyamo/venue-slot-booking/internal/middleware" // import middleware for JWT authentication and role enforcement
)

// RegisterRoutes registers routes that do not require authentication on the
// provided Echo instance. Currently it exposes only a health check.
func RegisterRoutes(e *echo.Echo) {
	// Map the GET request at path "/healthz" to the Health handler. This
	// endpoint can be used by load balancers or monitoring systems to verify
	// that the service is up and running.
	e.GET("/healthz", handler.Health)
}

// RegisterAuth registers all authentication-related routes and applies the
// necessary middleware. Unauthenticated operations live under /v1/auth,
// while protected endpoints live under /v1.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, jwtSecret string) {
	// Group under /v1/auth for operations that do not require an existing
	// session (register, login, refresh). Each handler is responsible for
	// generating or exchanging tokens.
	g := e.Group("/v1/auth")
	g.POST("/register", a.Register)
	g.POST("/login", a.Login)
	// /v1/auth/refresh rotates the refresh token; /v1/auth/refresh-access
	// issues a new access token without rotating.
	g.POST("/refresh", a.Refresh)
	g.POST("/refresh-access", a.RefreshAccess)
	// Logout does not require JWT authentication. The handler accepts a JSON
	// body containing a `refresh_token` and invalidates that token. A valid
	// token yields 204; otherwise 400/401/500 depending on the error.
	g.POST("/logout", a.Logout)

	// Routes that require a valid access token. All handlers registered on
	// this group execute the JWTAuth middleware before being invoked.
	auth := e.Group("/v1")
	auth.Use(middleware.JWTAuth(jwtSecret))
	// Both OWNER and PLAYER roles are accepted on generic protected
	// endpoints; the middleware rejects requests with missing or unknown
	// roles.
	auth.Use(middleware.RequireRole("OWNER", "PLAYER"))
	auth.GET("/me", a.Me)

	// Also map POST /v1/logout to the same handler so clients can call
	// either /v1/auth/logout or /v1/logout with a valid refresh token in the
	// body to terminate a session.
	e.POST("/v1/logout", a.Logout)
}

// RegisterPublic registers unauthenticated browse endpoints on the provided
// Echo instance. The PublicHandler exposes sanitized data for venues, arenas
// and slot availability. These routes apply no JWT or role middleware and
// are intended for guest users deciding whether to sign up.
func RegisterPublic(e *echo.Echo, p *handler.PublicHandler) {
	// List all active venues
	e.GET("/v1/venues", p.GetPublicVenues)
	// Venue details by id
	e.GET("/v1/venues/:id", p.GetPublicVenue)
	// List active arenas of a specific venue
	e.GET("/v1/venues/:id/arenas", p.GetPublicArenasByVenue)
	// Computed slot availability for an arena on a given date. Accepts
	// ?date=YYYY-MM-DD (required), ?unit=30|60 and an optional
	// ?window=morning|afternoon|evening|night filter.
	e.GET("/v1/arenas/:id/availability", p.GetArenaAvailability)
}
