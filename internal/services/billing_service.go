package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/authorflow/backend/internal/dto"
	"github.com/authorflow/backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrUnknownTier = errors.New("unknown subscription tier")

// BillingService applies provider webhook events to a user's subscription
// tier. Tier changes are never enforced retroactively against projects that
// already exist.
type BillingService struct {
	db *gorm.DB
}

func NewBillingService(db *gorm.DB) *BillingService {
	return &BillingService{db: db}
}

func (s *BillingService) HandleEvent(event *dto.BillingEvent) error {
	userID, err := uuid.Parse(event.UserID)
	if err != nil {
		return fmt.Errorf("invalid user_id: %w", err)
	}

	switch event.Type {
	case "subscription.activated", "subscription.renewed":
		return s.activate(userID, event)
	case "subscription.cancelled", "subscription.expired":
		return s.deactivate(userID, event.Type)
	default:
		return nil
	}
}

func (s *BillingService) activate(userID uuid.UUID, event *dto.BillingEvent) error {
	if _, ok := TierProjectLimits[event.Tier]; !ok {
		return ErrUnknownTier
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.User{}).
			Where("id = ?", userID).
			Update("subscription_tier", event.Tier)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrUserNotFound
		}

		sub := models.Subscription{
			ID:                 uuid.New(),
			UserID:             userID,
			Tier:               event.Tier,
			Status:             "active",
			CurrentPeriodStart: msToTime(event.PeriodStartMs),
			CurrentPeriodEnd:   msToTime(event.PeriodEndMs),
		}

		var existing models.Subscription
		if err := tx.Where("user_id = ?", userID).First(&existing).Error; err == nil {
			return tx.Model(&existing).Updates(map[string]interface{}{
				"tier":                 sub.Tier,
				"status":               sub.Status,
				"current_period_start": sub.CurrentPeriodStart,
				"current_period_end":   sub.CurrentPeriodEnd,
			}).Error
		}

		return tx.Create(&sub).Error
	})
}

func (s *BillingService) deactivate(userID uuid.UUID, eventType string) error {
	status := "cancelled"
	if eventType == "subscription.expired" {
		status = "expired"
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.User{}).
			Where("id = ?", userID).
			Update("subscription_tier", models.TierFree)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrUserNotFound
		}

		return tx.Model(&models.Subscription{}).
			Where("user_id = ?", userID).
			Update("status", status).Error
	})
}

func msToTime(ms int64) time.Time {
	return time.Unix(ms/1000, (ms%1000)*int64(time.Millisecond))
}
