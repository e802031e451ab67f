package models

import (
	"time"

	"github.com/google/uuid"
)

// Subscription records the billing state behind a user's tier. Rows are
// written only by the billing webhook; the authoritative tier for quota
// checks lives on User.SubscriptionTier.
type Subscription struct {
	ID                 uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID             uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	Tier               string    `gorm:"size:20;not null" json:"tier"`
	Status             string    `gorm:"not null;default:'inactive';size:50" json:"status"`
	CurrentPeriodStart time.Time `json:"current_period_start"`
	CurrentPeriodEnd   time.Time `json:"current_period_end"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}
