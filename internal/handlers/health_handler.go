package handlers

import (
	"time"

	"github.com/authorflow/backend/internal/config"
	"github.com/authorflow/backend/internal/dto"
	"github.com/gofiber/fiber/v2"
)

type HealthHandler struct {
	cfg *config.Config
}

func NewHealthHandler(cfg *config.Config) *HealthHandler {
	return &HealthHandler{cfg: cfg}
}

func (h *HealthHandler) Check(c *fiber.Ctx) error {
	return c.JSON(dto.HealthResponse{
		Status:      "ok",
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
		Environment: h.cfg.Environment,
	})
}
