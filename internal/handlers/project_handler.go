package handlers

import (
	"errors"

	"github.com/authorflow/backend/internal/dto"
	"github.com/authorflow/backend/internal/identity"
	"github.com/authorflow/backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ProjectHandler struct {
	service *services.ProjectService
}

func NewProjectHandler(service *services.ProjectService) *ProjectHandler {
	return &ProjectHandler{service: service}
}

func (h *ProjectHandler) List(c *fiber.Ctx) error {
	userID, err := identity.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	projects, err := h.service.List(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Success: false, Error: "Failed to fetch projects",
		})
	}

	return c.JSON(dto.ProjectListResponse{
		Success: true,
		Data:    projects,
		Count:   len(projects),
	})
}

func (h *ProjectHandler) Get(c *fiber.Ctx) error {
	userID, err := identity.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	projectID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return projectNotFound(c)
	}

	project, err := h.service.Get(userID, projectID)
	if err != nil {
		if errors.Is(err, services.ErrProjectNotFound) {
			return projectNotFound(c)
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Success: false, Error: "Failed to fetch project",
		})
	}

	return c.JSON(dto.ProjectResponse{Success: true, Data: project})
}

func (h *ProjectHandler) Create(c *fiber.Ctx) error {
	userID, err := identity.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.CreateProjectRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Success: false, Error: "Invalid request body",
		})
	}

	project, err := h.service.Create(userID, req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrTitleRequired),
			errors.Is(err, services.ErrInvalidProjectType):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Success: false, Error: err.Error(),
			})
		case errors.Is(err, services.ErrProjectLimit):
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Success: false,
				Error:   err.Error(),
				Message: "Upgrade to create more projects",
			})
		case errors.Is(err, services.ErrUserNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Success: false, Error: err.Error(),
			})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
				Success: false, Error: "Failed to create project",
			})
		}
	}

	return c.Status(fiber.StatusCreated).JSON(dto.ProjectResponse{
		Success: true,
		Data:    project,
		Message: "Project created successfully",
	})
}

func (h *ProjectHandler) Update(c *fiber.Ctx) error {
	userID, err := identity.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	projectID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return projectNotFound(c)
	}

	var req dto.UpdateProjectRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Success: false, Error: "Invalid request body",
		})
	}

	project, err := h.service.Update(userID, projectID, req)
	if err != nil {
		if errors.Is(err, services.ErrProjectNotFound) {
			return projectNotFound(c)
		}
		if errors.Is(err, services.ErrInvalidProjectType) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Success: false, Error: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Success: false, Error: "Failed to update project",
		})
	}

	return c.JSON(dto.ProjectResponse{
		Success: true,
		Data:    project,
		Message: "Project updated successfully",
	})
}

func (h *ProjectHandler) Delete(c *fiber.Ctx) error {
	userID, err := identity.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	projectID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return projectNotFound(c)
	}

	if err := h.service.Delete(userID, projectID); err != nil {
		if errors.Is(err, services.ErrProjectNotFound) {
			return projectNotFound(c)
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Success: false, Error: "Failed to delete project",
		})
	}

	return c.JSON(dto.MessageResponse{
		Success: true,
		Message: "Project deleted successfully",
	})
}

func (h *ProjectHandler) Publish(c *fiber.Ctx) error {
	userID, err := identity.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	projectID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return projectNotFound(c)
	}

	project, err := h.service.Publish(userID, projectID)
	if err != nil {
		if errors.Is(err, services.ErrProjectNotFound) {
			return projectNotFound(c)
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Success: false, Error: "Failed to publish project",
		})
	}

	return c.JSON(dto.ProjectResponse{
		Success: true,
		Data:    project,
		Message: "Project published successfully",
	})
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
		Success: false, Error: "Unauthorized",
	})
}

// projectNotFound covers both a genuinely absent row and a row owned by
// someone else; the two are indistinguishable on purpose.
func projectNotFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
		Success: false, Error: "Project not found",
	})
}
