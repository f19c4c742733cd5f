package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing
	"github.com/redis/go-redis/v9"

	"github.com/iliyamo/bus-seat-booking/internal/config"
	"github.com/iliyamo/bus-seat-booking/internal/handler"
	"github.com/iliyamo/bus-seat-booking/internal/middleware"
	"github.com/iliyamo/bus-seat-booking/internal/web"
)

// RegisterRoutes registers routes that do not require authentication on the
// provided Echo instance.  Currently it exposes only a health check.
func RegisterRoutes(e *echo.Echo) {
	// Used by load balancers and monitoring to verify the service is up.
	e.GET("/healthz", handler.Health)
}

// RegisterAPI registers the JSON API.  Catalog routes (bus list, seat
// views) are public and sit behind the Redis response cache; the booking
// route requires a valid access token.  The rate limiter applies to the
// whole API group.
func RegisterAPI(e *echo.Echo, a *handler.AuthHandler, b *handler.BusHandler, bk *handler.BookingHandler, cfg config.Config, rdb *redis.Client) {
	api := e.Group("/api", middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))

	// Passwordless login: an email is exchanged for a signed token.
	api.POST("/auth/login", a.Login)

	// Public catalog.  Responses are cacheable for a few seconds; clients
	// re-fetch the seat view after every booking attempt.
	cached := api.Group("", middleware.NewRedisCache(config.LoadCacheConfig(), rdb))
	cached.GET("/buses", b.List)
	cached.GET("/buses/:id/seats", b.Seats)

	// Booking requires a verified identity.
	booking := api.Group("/bookings", middleware.JWTAuth(cfg.JWTSecret))
	booking.POST("", bk.Create)
}

// RegisterWeb registers the HTML frontend: the bus list at / and the seat
// grid at /bus/:id.  The pages read the same stores as the API and submit
// bookings through it.
func RegisterWeb(e *echo.Echo, w *web.Handler) {
	e.Renderer = web.NewRenderer()
	e.GET("/", w.BusesPage)
	e.GET("/bus/:id", w.SeatPage)
}
