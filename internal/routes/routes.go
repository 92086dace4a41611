package routes

import (
	"time"

	"github.com/drivehub/carrental/internal/config"
	"github.com/drivehub/carrental/internal/handlers"
	"github.com/drivehub/carrental/internal/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	authHandler *handlers.AuthHandler,
	carHandler *handlers.CarHandler,
	bookingHandler *handlers.BookingHandler,
	dashboardHandler *handlers.DashboardHandler,
	healthHandler *handlers.HealthHandler,
) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)

	// Auth — public, with a stricter limit: 10 req/min per IP
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Post("/refresh", authHandler.Refresh)

	// Everything below requires a valid bearer token. Admin-only routes
	// get the admin guard per route so it never shadows sibling paths.
	protected := api.Group("", middleware.JWTProtected(cfg), middleware.RequireIdentity(cfg))
	adminOnly := middleware.AdminRequired()

	protected.Post("/auth/logout", authHandler.Logout)

	protected.Get("/cars", carHandler.List)
	protected.Get("/cars/:id", carHandler.Get)
	protected.Put("/cars/:id", carHandler.Update)
	protected.Post("/cars", adminOnly, carHandler.Create)
	protected.Delete("/cars/:id", adminOnly, carHandler.Delete)

	protected.Get("/bookings", bookingHandler.List)
	protected.Get("/bookings/:id", bookingHandler.Get)
	protected.Post("/bookings", bookingHandler.Create)
	protected.Delete("/bookings/:id", bookingHandler.Cancel)
	protected.Put("/bookings/:id/status", adminOnly, bookingHandler.UpdateStatus)

	protected.Get("/dashboard/admin", adminOnly, dashboardHandler.Admin)
	protected.Get("/dashboard/user", dashboardHandler.User)
}
