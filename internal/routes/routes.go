package routes

import (
	"time"

	"github.com/authorflow/backend/internal/config"
	"github.com/authorflow/backend/internal/handlers"
	"github.com/authorflow/backend/internal/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	authHandler *handlers.AuthHandler,
	healthHandler *handlers.HealthHandler,
	projectHandler *handlers.ProjectHandler,
	entityHandler *handlers.EntityHandler,
	webhookHandler *handlers.WebhookHandler,
) {
	// General rate limiter: 60 req/min per IP
	app.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	app.Get("/health", healthHandler.Check)

	// Auth — public, with a stricter limit: 10 req/min per IP
	auth := app.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/signup", authHandler.Signup)
	auth.Post("/login", authHandler.Login)
	auth.Post("/refresh", authHandler.Refresh)

	app.Post("/auth/logout", middleware.RequireAuth(cfg), authHandler.Logout)

	// Projects (bearer token required)
	projects := app.Group("/projects", middleware.RequireAuth(cfg))
	projects.Get("/", projectHandler.List)
	projects.Post("/", projectHandler.Create)
	projects.Get("/:id", projectHandler.Get)
	projects.Patch("/:id", projectHandler.Update)
	projects.Delete("/:id", projectHandler.Delete)
	projects.Post("/:id/publish", projectHandler.Publish)

	// Story-bible entities, scoped under their project
	projects.Get("/:id/entities", entityHandler.List)
	projects.Post("/:id/entities", entityHandler.Create)
	projects.Get("/:id/entities/:entityId", entityHandler.Get)
	projects.Patch("/:id/entities/:entityId", entityHandler.Update)
	projects.Delete("/:id/entities/:entityId", entityHandler.Delete)

	// Billing webhook — static token auth, no JWT
	app.Post("/webhooks/billing", webhookHandler.HandleBilling)
}
