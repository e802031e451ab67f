package dto

import "github.com/authorflow/backend/internal/models"

type CreateProjectRequest struct {
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	Type           string   `json:"type"`
	Genre          string   `json:"genre"`
	TargetAudience string   `json:"target_audience"`
	Tags           []string `json:"tags"`
}

// UpdateProjectRequest is the PATCH body. Server-controlled fields (id,
// user_id, created_at, word_count, timestamps) have no counterpart here, so
// clients cannot set them no matter what they send.
type UpdateProjectRequest struct {
	Title          *string   `json:"title"`
	Description    *string   `json:"description"`
	Type           *string   `json:"type"`
	Status         *string   `json:"status"`
	Content        *string   `json:"content"`
	Genre          *string   `json:"genre"`
	TargetAudience *string   `json:"target_audience"`
	Tags           *[]string `json:"tags"`
}

type ProjectResponse struct {
	Success bool            `json:"success"`
	Data    *models.Project `json:"data"`
	Message string          `json:"message,omitempty"`
}

type ProjectListResponse struct {
	Success bool             `json:"success"`
	Data    []models.Project `json:"data"`
	Count   int              `json:"count"`
}
