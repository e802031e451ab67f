package dto

// BillingEvent is the payload posted by the billing provider.
type BillingEvent struct {
	Type          string `json:"type"`
	UserID        string `json:"user_id"`
	Tier          string `json:"tier"`
	PeriodStartMs int64  `json:"period_start_ms"`
	PeriodEndMs   int64  `json:"period_end_ms"`
}
