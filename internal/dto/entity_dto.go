package dto

import (
	"time"

	"github.com/authorflow/backend/internal/models"
)

type CreateEntityRequest struct {
	Type         string                 `json:"type"`
	Name         string                 `json:"name"`
	Description  string                 `json:"description"`
	Metadata     map[string]interface{} `json:"metadata"`
	Role         string                 `json:"role"`
	TimelineDate *time.Time             `json:"timeline_date"`
}

type UpdateEntityRequest struct {
	Name         *string                 `json:"name"`
	Description  *string                 `json:"description"`
	Metadata     *map[string]interface{} `json:"metadata"`
	Role         *string                 `json:"role"`
	TimelineDate *time.Time              `json:"timeline_date"`
}

type EntityResponse struct {
	Success bool           `json:"success"`
	Data    *models.Entity `json:"data"`
	Message string         `json:"message,omitempty"`
}

type EntityListResponse struct {
	Success bool            `json:"success"`
	Data    []models.Entity `json:"data"`
	Count   int             `json:"count"`
}
