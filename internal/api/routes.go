package api

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/asengupta/notequiz/internal/backend"
	"github.com/asengupta/notequiz/internal/quiz"
)

// RegisterRoutes mounts the API on the fiber app. CORS is wide open: the
// generate endpoint is consumed directly from browser front ends.
func RegisterRoutes(app *fiber.App, orch *quiz.Orchestrator, engines []backend.Engine, logger *slog.Logger) {
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET, POST, OPTIONS",
		AllowHeaders: "Content-Type",
	}))

	h := NewHandler(orch, engines, logger)
	app.Get("/health", h.Health)
	app.Get("/backends", h.Backends)
	app.Post("/generate", h.Generate)
}
