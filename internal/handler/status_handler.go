package handler

import (
	"time"

	"go-store-api/internal/model"

	"github.com/gofiber/fiber/v2"
)

type StatusHandler struct {
	version string
}

func NewStatusHandler(version string) *StatusHandler {
	return &StatusHandler{version: version}
}

// Health is the liveness endpoint
// GET /health
func (h *StatusHandler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":    "healthy",
		"service":   "Proyecto06 Backend",
		"timestamp": time.Now().UTC(),
	})
}

// Data returns general API info
// GET /api/data
func (h *StatusHandler) Data(c *fiber.Ctx) error {
	return c.JSON(model.StatusPayload{
		Message:   "Proyecto06 - Backend API con 3 capas",
		Version:   h.version,
		Status:    "running",
		Timestamp: time.Now().UTC(),
	})
}

// Root returns the service descriptor
// GET /
func (h *StatusHandler) Root(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"proyecto":     "Proyecto06",
		"arquitectura": "3 capas (Frontend, Backend, Database)",
		"version":      h.version,
		"health":       "/health",
	})
}
