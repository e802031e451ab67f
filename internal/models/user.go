package models

import (
	"time"

	"github.com/google/uuid"
)

// Subscription tiers.
const (
	TierFree = "free"
	TierPro  = "pro"
	TierPlus = "plus"
)

// User is the writer profile. Its ID mirrors the Credential ID; the row is
// written best-effort after the credential on signup, so it can be missing
// for an account that authenticates fine.
type User struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Email            string    `gorm:"not null;size:255;index" json:"email"`
	Username         string    `gorm:"not null;size:100" json:"username"`
	SubscriptionTier string    `gorm:"size:20;not null;default:'free'" json:"subscription_tier"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
