package main // Entry point package

import (
	"log" // Logging library

	"github.com/joho/godotenv"    // .env loader for local development
	"github.com/labstack/echo/v4" // Echo web framework

	"github.com/iliyamo/venue-slot-booking/internal/config"     // environment config loaders
	"github.com/iliyamo/venue-slot-booking/internal/database"   // MySQL connection pool
	"github.com/iliyamo/venue-slot-booking/internal/handler"    // HTTP handlers
	"github.com/iliyamo/venue-slot-booking/internal/middleware" // cache + rate limit middleware
	"github.com/iliyamo/venue-slot-booking/internal/queue"      // booking.confirmed consumer
	"github.com/iliyamo/venue-slot-booking/internal/repository" // data access layer
	"github.com/iliyamo/venue-slot-booking/internal/router"     // route registration
)

func main() {
	// Load .env when present; real deployments set env vars directly.
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database connect failed: %v", err)
	}
	defer db.Close()

	// Redis is optional. A nil client disables caching and rate limiting.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Println("redis unavailable, cache and rate limiting disabled")
	}

	userRepo := repository.NewUserRepo(db)
	tokenRepo := repository.NewTokenRepo(db)
	venueRepo := repository.NewVenueRepo(db)
	arenaRepo := repository.NewArenaRepo(db)
	slotRuleRepo := repository.NewSlotRuleRepo(db)
	bookingRepo := repository.NewBookingRepo(db)

	authHandler := handler.NewAuthHandler(cfg, userRepo, tokenRepo)
	ownerHandler := handler.NewOwnerHandler(venueRepo, arenaRepo, slotRuleRepo, bookingRepo)
	playerHandler := handler.NewPlayerHandler(venueRepo, arenaRepo, slotRuleRepo, bookingRepo)
	publicHandler := handler.NewPublicHandler(venueRepo, arenaRepo, slotRuleRepo, bookingRepo)

	e := echo.New()
	e.HideBanner = true

	// Global middleware: rate limit first so abusive clients never reach the
	// cache, then cache so hot public reads skip the database.
	e.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))
	e.Use(middleware.NewRedisCache(config.LoadCacheConfig(), rdb))

	router.RegisterRoutes(e)
	router.RegisterAuth(e, authHandler, cfg.JWTSecret)
	router.RegisterPublic(e, publicHandler)
	router.RegisterOwner(e, ownerHandler, cfg.JWTSecret)
	router.RegisterPlayer(e, playerHandler, cfg.JWTSecret)

	// Background consumer writes confirmed bookings to logs/booking.log.
	// It reconnects on broker failures and never brings the server down.
	go func() {
		if err := queue.StartBookingConsumer(); err != nil {
			log.Printf("booking consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
