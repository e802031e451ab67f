package handlers

import (
	"errors"

	"github.com/authorflow/backend/internal/dto"
	"github.com/authorflow/backend/internal/identity"
	"github.com/authorflow/backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type EntityHandler struct {
	service *services.EntityService
}

func NewEntityHandler(service *services.EntityService) *EntityHandler {
	return &EntityHandler{service: service}
}

func (h *EntityHandler) List(c *fiber.Ctx) error {
	userID, err := identity.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	projectID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return projectNotFound(c)
	}

	entities, err := h.service.List(userID, projectID)
	if err != nil {
		return entityError(c, err, "Failed to fetch entities")
	}

	return c.JSON(dto.EntityListResponse{
		Success: true,
		Data:    entities,
		Count:   len(entities),
	})
}

func (h *EntityHandler) Get(c *fiber.Ctx) error {
	userID, err := identity.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	projectID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return projectNotFound(c)
	}

	entityID, err := uuid.Parse(c.Params("entityId"))
	if err != nil {
		return entityNotFound(c)
	}

	entity, err := h.service.Get(userID, projectID, entityID)
	if err != nil {
		return entityError(c, err, "Failed to fetch entity")
	}

	return c.JSON(dto.EntityResponse{Success: true, Data: entity})
}

func (h *EntityHandler) Create(c *fiber.Ctx) error {
	userID, err := identity.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	projectID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return projectNotFound(c)
	}

	var req dto.CreateEntityRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Success: false, Error: "Invalid request body",
		})
	}

	entity, err := h.service.Create(userID, projectID, req)
	if err != nil {
		return entityError(c, err, "Failed to create entity")
	}

	return c.Status(fiber.StatusCreated).JSON(dto.EntityResponse{
		Success: true,
		Data:    entity,
		Message: "Entity created successfully",
	})
}

func (h *EntityHandler) Update(c *fiber.Ctx) error {
	userID, err := identity.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	projectID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return projectNotFound(c)
	}

	entityID, err := uuid.Parse(c.Params("entityId"))
	if err != nil {
		return entityNotFound(c)
	}

	var req dto.UpdateEntityRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Success: false, Error: "Invalid request body",
		})
	}

	entity, err := h.service.Update(userID, projectID, entityID, req)
	if err != nil {
		return entityError(c, err, "Failed to update entity")
	}

	return c.JSON(dto.EntityResponse{
		Success: true,
		Data:    entity,
		Message: "Entity updated successfully",
	})
}

func (h *EntityHandler) Delete(c *fiber.Ctx) error {
	userID, err := identity.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	projectID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return projectNotFound(c)
	}

	entityID, err := uuid.Parse(c.Params("entityId"))
	if err != nil {
		return entityNotFound(c)
	}

	if err := h.service.Delete(userID, projectID, entityID); err != nil {
		return entityError(c, err, "Failed to delete entity")
	}

	return c.JSON(dto.MessageResponse{
		Success: true,
		Message: "Entity deleted successfully",
	})
}

func entityNotFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
		Success: false, Error: "Entity not found",
	})
}

func entityError(c *fiber.Ctx, err error, fallback string) error {
	switch {
	case errors.Is(err, services.ErrProjectNotFound):
		return projectNotFound(c)
	case errors.Is(err, services.ErrEntityNotFound):
		return entityNotFound(c)
	case errors.Is(err, services.ErrEntityNameRequired),
		errors.Is(err, services.ErrInvalidEntityType):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Success: false, Error: err.Error(),
		})
	case errors.Is(err, services.ErrEntityLimit):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Success: false,
			Error:   err.Error(),
			Message: "Upgrade to add more entities",
		})
	case errors.Is(err, services.ErrUserNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Success: false, Error: err.Error(),
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Success: false, Error: fallback,
		})
	}
}
