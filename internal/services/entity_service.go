package services

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/authorflow/backend/internal/dto"
	"github.com/authorflow/backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var (
	ErrEntityNameRequired = errors.New("entity name is required")
	ErrInvalidEntityType  = errors.New("invalid entity type")
	ErrEntityLimit        = errors.New("entity limit reached for current tier")
	ErrEntityNotFound     = errors.New("entity not found")
)

// TierEntityLimits caps entities per project by subscription tier.
var TierEntityLimits = map[string]int{
	models.TierFree: 50,
	models.TierPro:  Unlimited,
	models.TierPlus: Unlimited,
}

// EntityService manages story-bible records under a project. Every operation
// resolves the parent project through the caller's ownership filter first, so
// entities of foreign projects are indistinguishable from absent ones.
type EntityService struct {
	db       *gorm.DB
	projects *ProjectService
}

func NewEntityService(db *gorm.DB, projects *ProjectService) *EntityService {
	return &EntityService{db: db, projects: projects}
}

func (s *EntityService) List(userID, projectID uuid.UUID) ([]models.Entity, error) {
	if _, err := s.projects.Get(userID, projectID); err != nil {
		return nil, err
	}

	entities := []models.Entity{}
	err := s.db.Where("project_id = ?", projectID).
		Order("created_at ASC").
		Find(&entities).Error
	return entities, err
}

func (s *EntityService) Get(userID, projectID, entityID uuid.UUID) (*models.Entity, error) {
	if _, err := s.projects.Get(userID, projectID); err != nil {
		return nil, err
	}

	var entity models.Entity
	err := s.db.Where("id = ? AND project_id = ?", entityID, projectID).First(&entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEntityNotFound
		}
		return nil, err
	}
	return &entity, nil
}

func (s *EntityService) Create(userID, projectID uuid.UUID, req dto.CreateEntityRequest) (*models.Entity, error) {
	if _, err := s.projects.Get(userID, projectID); err != nil {
		return nil, err
	}

	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrEntityNameRequired
	}
	if !models.IsValidEntityType(req.Type) {
		return nil, ErrInvalidEntityType
	}

	var user models.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	limit, ok := TierEntityLimits[user.SubscriptionTier]
	if !ok {
		limit = TierEntityLimits[models.TierFree]
	}

	if limit != Unlimited {
		var count int64
		if err := s.db.Model(&models.Entity{}).Where("project_id = ?", projectID).Count(&count).Error; err != nil {
			return nil, err
		}
		if count >= int64(limit) {
			return nil, ErrEntityLimit
		}
	}

	metadata, err := marshalMetadata(req.Metadata)
	if err != nil {
		return nil, err
	}

	entity := models.Entity{
		ID:           uuid.New(),
		ProjectID:    projectID,
		Type:         req.Type,
		Name:         req.Name,
		Description:  req.Description,
		Metadata:     metadata,
		Role:         req.Role,
		TimelineDate: req.TimelineDate,
	}

	if err := s.db.Create(&entity).Error; err != nil {
		return nil, err
	}

	return &entity, nil
}

func (s *EntityService) Update(userID, projectID, entityID uuid.UUID, req dto.UpdateEntityRequest) (*models.Entity, error) {
	if _, err := s.projects.Get(userID, projectID); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, ErrEntityNameRequired
		}
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Metadata != nil {
		metadata, err := marshalMetadata(*req.Metadata)
		if err != nil {
			return nil, err
		}
		updates["metadata"] = metadata
	}
	if req.Role != nil {
		updates["role"] = *req.Role
	}
	if req.TimelineDate != nil {
		updates["timeline_date"] = *req.TimelineDate
	}

	if len(updates) > 0 {
		result := s.db.Model(&models.Entity{}).
			Where("id = ? AND project_id = ?", entityID, projectID).
			Updates(updates)
		if result.Error != nil {
			return nil, result.Error
		}
		if result.RowsAffected == 0 {
			return nil, ErrEntityNotFound
		}
	}

	return s.Get(userID, projectID, entityID)
}

func (s *EntityService) Delete(userID, projectID, entityID uuid.UUID) error {
	if _, err := s.projects.Get(userID, projectID); err != nil {
		return err
	}

	result := s.db.Where("id = ? AND project_id = ?", entityID, projectID).Delete(&models.Entity{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrEntityNotFound
	}
	return nil
}

func marshalMetadata(m map[string]interface{}) (datatypes.JSON, error) {
	if m == nil {
		return datatypes.JSON([]byte("{}")), nil
	}
	b, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(b), nil
}
