package services

import (
	"errors"
	"strings"
	"time"

	"github.com/authorflow/backend/internal/dto"
	"github.com/authorflow/backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var (
	ErrTitleRequired      = errors.New("title is required")
	ErrInvalidProjectType = errors.New("invalid project type")
	ErrUserNotFound       = errors.New("user not found")
	ErrProjectLimit       = errors.New("project limit reached for current tier")
	ErrProjectNotFound    = errors.New("project not found")
)

// Unlimited marks a tier without a project cap.
const Unlimited = -1

// TierProjectLimits maps subscription tiers to the number of projects a user
// may own at creation time.
var TierProjectLimits = map[string]int{
	models.TierFree: 3,
	models.TierPro:  Unlimited,
	models.TierPlus: Unlimited,
}

// ProjectService enforces ownership and tier quotas over the projects table.
// Every query filters by user_id, so a foreign or absent project is the same
// not-found to the caller.
type ProjectService struct {
	db *gorm.DB
}

func NewProjectService(db *gorm.DB) *ProjectService {
	return &ProjectService{db: db}
}

// List returns the caller's projects, most recently updated first.
func (s *ProjectService) List(userID uuid.UUID) ([]models.Project, error) {
	projects := []models.Project{}
	err := s.db.Where("user_id = ?", userID).
		Order("updated_at DESC").
		Find(&projects).Error
	return projects, err
}

func (s *ProjectService) Get(userID, projectID uuid.UUID) (*models.Project, error) {
	var project models.Project
	err := s.db.Where("id = ? AND user_id = ?", projectID, userID).First(&project).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, err
	}
	return &project, nil
}

// Create validates the request, checks the caller's tier quota and inserts a
// draft. The count and the insert are separate statements; two concurrent
// creates at the boundary can both pass the check.
func (s *ProjectService) Create(userID uuid.UUID, req dto.CreateProjectRequest) (*models.Project, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, ErrTitleRequired
	}
	if !models.IsValidProjectType(req.Type) {
		return nil, ErrInvalidProjectType
	}

	var user models.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	limit, ok := TierProjectLimits[user.SubscriptionTier]
	if !ok {
		limit = TierProjectLimits[models.TierFree]
	}

	if limit != Unlimited {
		var count int64
		if err := s.db.Model(&models.Project{}).Where("user_id = ?", userID).Count(&count).Error; err != nil {
			return nil, err
		}
		if count >= int64(limit) {
			return nil, ErrProjectLimit
		}
	}

	tags := req.Tags
	if tags == nil {
		tags = []string{}
	}

	project := models.Project{
		ID:             uuid.New(),
		UserID:         userID,
		Title:          req.Title,
		Description:    req.Description,
		Type:           req.Type,
		Status:         models.StatusDraft,
		Content:        "",
		WordCount:      0,
		Genre:          req.Genre,
		TargetAudience: req.TargetAudience,
		Tags:           datatypes.NewJSONSlice(tags),
		IsPublished:    false,
	}

	if err := s.db.Create(&project).Error; err != nil {
		return nil, err
	}

	return &project, nil
}

// Update applies a partial update to the caller's project. Content changes
// recompute word_count in the same statement; ownership and row identity are
// enforced by the WHERE clause.
func (s *ProjectService) Update(userID, projectID uuid.UUID, req dto.UpdateProjectRequest) (*models.Project, error) {
	updates := map[string]interface{}{}

	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Type != nil {
		if !models.IsValidProjectType(*req.Type) {
			return nil, ErrInvalidProjectType
		}
		updates["type"] = *req.Type
	}
	if req.Status != nil {
		updates["status"] = *req.Status
	}
	if req.Content != nil {
		updates["content"] = *req.Content
		updates["word_count"] = WordCount(*req.Content)
	}
	if req.Genre != nil {
		updates["genre"] = *req.Genre
	}
	if req.TargetAudience != nil {
		updates["target_audience"] = *req.TargetAudience
	}
	if req.Tags != nil {
		updates["tags"] = datatypes.NewJSONSlice(*req.Tags)
	}

	if len(updates) > 0 {
		result := s.db.Model(&models.Project{}).
			Where("id = ? AND user_id = ?", projectID, userID).
			Updates(updates)
		if result.Error != nil {
			return nil, result.Error
		}
		if result.RowsAffected == 0 {
			return nil, ErrProjectNotFound
		}
	}

	return s.Get(userID, projectID)
}

func (s *ProjectService) Delete(userID, projectID uuid.UUID) error {
	result := s.db.Where("id = ? AND user_id = ?", projectID, userID).Delete(&models.Project{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProjectNotFound
	}
	return nil
}

// Publish flips the published triple in a single UPDATE, so the three fields
// never end up in a mixed state.
func (s *ProjectService) Publish(userID, projectID uuid.UUID) (*models.Project, error) {
	now := time.Now().UTC()
	result := s.db.Model(&models.Project{}).
		Where("id = ? AND user_id = ?", projectID, userID).
		Updates(map[string]interface{}{
			"is_published": true,
			"status":       models.StatusPublished,
			"published_at": now,
		})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrProjectNotFound
	}

	return s.Get(userID, projectID)
}

// WordCount counts maximal whitespace-delimited tokens; leading, trailing
// and repeated whitespace contribute nothing.
func WordCount(content string) int {
	return len(strings.Fields(content))
}
