// Package router defines how HTTP routes are registered for the API.
package router

import (
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"

	"github.com/kmenon/travel-booking/internal/config"
	"github.com/kmenon/travel-booking/internal/handler"
	"github.com/kmenon/travel-booking/internal/middleware"
)

// Handlers groups every handler the router wires up.
type Handlers struct {
	Auth    *handler.AuthHandler
	Catalog *handler.CatalogHandler
	Booking *handler.BookingHandler
	Review  *handler.ReviewHandler
	Place   *handler.PlaceHandler
}

// Register wires all routes onto the Echo instance. CORS and the rate
// limiter apply globally; the response cache wraps only the catalog and
// places reads, whose rows change rarely. Booking routes and review
// submission sit behind JWTAuth, everything else is public.
func Register(e *echo.Echo, h Handlers, cfg config.Config, rdb *redis.Client) {
	e.Use(echomw.CORS())
	e.Use(middleware.TokenBucket(config.LoadRateLimitConfig(), rdb))

	e.GET("/healthz", handler.Health)

	// Auth
	auth := e.Group("/auth")
	auth.POST("/register", h.Auth.Register)
	auth.POST("/login", h.Auth.Login)

	// Catalog (public, cached)
	cache := middleware.RedisCache(config.LoadCacheConfig(), rdb)
	e.GET("/cities", h.Catalog.ListCities, cache)
	e.GET("/cities/:id", h.Catalog.GetCity, cache)
	e.GET("/transport", h.Catalog.ListTransport, cache)
	e.GET("/rooms", h.Catalog.ListRooms, cache)
	e.GET("/rooms/:id", h.Catalog.GetRoom, cache)
	e.GET("/food", h.Catalog.ListFood, cache)
	e.GET("/food/:id", h.Catalog.GetFood, cache)
	e.GET("/attractions", h.Catalog.ListAttractions, cache)
	e.GET("/attractions/:id", h.Catalog.GetAttraction, cache)
	e.GET("/places", h.Place.List, cache)

	// Bookings (owner-scoped, token required)
	bookings := e.Group("/bookings", middleware.JWTAuth(cfg.JWTSecret))
	bookings.POST("", h.Booking.Create)
	bookings.GET("/user", h.Booking.ListMine)
	bookings.GET("/:id", h.Booking.GetByID)

	// Reviews: submission needs a token, the listing is world-readable.
	e.POST("/reviews", h.Review.Create, middleware.JWTAuth(cfg.JWTSecret))
	e.GET("/reviews", h.Review.List)
}
