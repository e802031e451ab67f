package handlers

import (
	"crypto/subtle"
	"errors"
	"log/slog"

	"github.com/authorflow/backend/internal/config"
	"github.com/authorflow/backend/internal/dto"
	"github.com/authorflow/backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type WebhookHandler struct {
	billingService *services.BillingService
	cfg            *config.Config
}

func NewWebhookHandler(billingService *services.BillingService, cfg *config.Config) *WebhookHandler {
	return &WebhookHandler{billingService: billingService, cfg: cfg}
}

// HandleBilling receives subscription events from the billing provider,
// authenticated by a static shared token rather than a user JWT.
func (h *WebhookHandler) HandleBilling(c *fiber.Ctx) error {
	expected := h.cfg.BillingWebhookToken
	if expected == "" {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Success: false, Error: "Billing webhook not configured",
		})
	}

	provided := c.Get(fiber.HeaderAuthorization)
	if subtle.ConstantTimeCompare([]byte(provided), []byte(expected)) != 1 {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Success: false, Error: "Unauthorized",
		})
	}

	var event dto.BillingEvent
	if err := c.BodyParser(&event); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Success: false, Error: "Invalid request body",
		})
	}

	if err := h.billingService.HandleEvent(&event); err != nil {
		if errors.Is(err, services.ErrUserNotFound) || errors.Is(err, services.ErrUnknownTier) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Success: false, Error: err.Error(),
			})
		}
		slog.Error("billing webhook failed", "type", event.Type, "user_id", event.UserID, "error", err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Success: false, Error: "Failed to process billing event",
		})
	}

	return c.JSON(dto.MessageResponse{Success: true, Message: "Event processed"})
}
