package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Entity types (story-bible records).
const (
	EntityTypeCharacter = "character"
	EntityTypeLocation  = "location"
	EntityTypeTheme     = "theme"
	EntityTypePlotPoint = "plot_point"
	EntityTypeChapter   = "chapter"
	EntityTypeScene     = "scene"
	EntityTypeReference = "reference"
)

var EntityTypes = []string{
	EntityTypeCharacter,
	EntityTypeLocation,
	EntityTypeTheme,
	EntityTypePlotPoint,
	EntityTypeChapter,
	EntityTypeScene,
	EntityTypeReference,
}

func IsValidEntityType(t string) bool {
	for _, valid := range EntityTypes {
		if t == valid {
			return true
		}
	}
	return false
}

// Entity is a story-bible record (character, location, theme, ...) belonging
// to a Project. Ownership is derived from the parent project, so there is no
// user_id column here.
type Entity struct {
	ID           uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ProjectID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"project_id"`
	Type         string         `gorm:"size:20;not null" json:"type"`
	Name         string         `gorm:"not null;size:255" json:"name"`
	Description  string         `gorm:"type:text" json:"description"`
	Metadata     datatypes.JSON `gorm:"type:jsonb;default:'{}'" json:"metadata"`
	Role         string         `gorm:"size:20" json:"role,omitempty"`
	TimelineDate *time.Time     `json:"timeline_date,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}
