package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Project types.
const (
	ProjectTypeNovel           = "novel"
	ProjectTypeShortStory      = "short_story"
	ProjectTypeEssayCollection = "essay_collection"
	ProjectTypeNonFiction      = "non_fiction"
	ProjectTypeSeriesUniverse  = "series_universe"
	ProjectTypePoetry          = "poetry"
	ProjectTypeBlog            = "blog"
)

// Project statuses.
const (
	StatusDraft      = "draft"
	StatusInProgress = "in_progress"
	StatusPublished  = "published"
	StatusArchived   = "archived"
)

var ProjectTypes = []string{
	ProjectTypeNovel,
	ProjectTypeShortStory,
	ProjectTypeEssayCollection,
	ProjectTypeNonFiction,
	ProjectTypeSeriesUniverse,
	ProjectTypePoetry,
	ProjectTypeBlog,
}

func IsValidProjectType(t string) bool {
	for _, valid := range ProjectTypes {
		if t == valid {
			return true
		}
	}
	return false
}

// Project is a writing project. UserID is set once at creation and never
// changes; deletion is a hard delete. WordCount is derived from Content and
// never accepted from a client.
type Project struct {
	ID             uuid.UUID                    `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID         uuid.UUID                    `gorm:"type:uuid;not null;index" json:"user_id"`
	Title          string                       `gorm:"not null;size:255" json:"title"`
	Description    string                       `gorm:"type:text" json:"description"`
	Type           string                       `gorm:"size:30;not null" json:"type"`
	Status         string                       `gorm:"size:20;not null;default:'draft'" json:"status"`
	Content        string                       `gorm:"type:text" json:"content"`
	WordCount      int                          `gorm:"not null;default:0" json:"word_count"`
	Genre          string                       `gorm:"size:100" json:"genre"`
	TargetAudience string                       `gorm:"size:100" json:"target_audience"`
	Tags           datatypes.JSONSlice[string]  `gorm:"type:jsonb;default:'[]'" json:"tags"`
	IsPublished    bool                         `gorm:"not null;default:false" json:"is_published"`
	PublishedAt    *time.Time                   `json:"published_at"`
	CreatedAt      time.Time                    `json:"created_at"`
	UpdatedAt      time.Time                    `gorm:"index" json:"updated_at"`
}
