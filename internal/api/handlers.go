package api

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/asengupta/notequiz/internal/backend"
	"github.com/asengupta/notequiz/internal/quiz"
)

// GenerateRequest is the JSON body of POST /generate.
type GenerateRequest struct {
	Notes        string `json:"notes"`
	NumQuestions int    `json:"numQuestions"`
}

// Handler holds the dependencies for the HTTP handlers.
type Handler struct {
	orch    *quiz.Orchestrator
	engines []backend.Engine
	logger  *slog.Logger
}

// NewHandler creates a Handler.
func NewHandler(orch *quiz.Orchestrator, engines []backend.Engine, logger *slog.Logger) *Handler {
	return &Handler{orch: orch, engines: engines, logger: logger}
}

// Health is a simple liveness probe.
func (h *Handler) Health(c *fiber.Ctx) error {
	return c.SendString("ok")
}

// Backends lists the configured engines in fallback priority order.
func (h *Handler) Backends(c *fiber.Ctx) error {
	names := make([]string, 0, len(h.engines))
	for _, e := range h.engines {
		names = append(names, e.Name())
	}
	return c.JSON(fiber.Map{"backends": names})
}

// Generate turns notes into QA records. Once the body parses it always
// answers 200 with a JSON array; generation itself cannot fail.
func (h *Handler) Generate(c *fiber.Ctx) error {
	var req GenerateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request, expected JSON: {\"notes\":\"...\"}",
		})
	}

	recs := h.orch.Generate(c.UserContext(), quiz.Request{
		Notes:        req.Notes,
		NumQuestions: req.NumQuestions,
	})
	return c.JSON(recs)
}
