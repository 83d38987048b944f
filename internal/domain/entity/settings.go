package entity

import (
	"time"

	"github.com/google/uuid"
)

// LoyaltySettings parameterizes the stamp card of a single location.
type LoyaltySettings struct {
	LocationID        uuid.UUID `json:"location_id"`
	StampsForReward   int       `json:"stamps_for_reward"`
	RewardValue       float64   `json:"reward_value"`
	MaxStampsPerVisit int       `json:"max_stamps_per_visit"`
	StampExpiryDays   *int      `json:"stamp_expiry_days,omitempty"`
	MinPurchaseAmount *float64  `json:"min_purchase_amount,omitempty"`
	UpdatedAt         time.Time `json:"updated_at"`
	// IsDefault is true when no settings row exists and configured defaults are used.
	IsDefault bool `json:"is_default"`
}

// DefaultLoyaltySettings builds the settings used for a location without a settings row.
func DefaultLoyaltySettings(locationID uuid.UUID, stampsForReward, maxStampsPerVisit int, rewardValue float64) *LoyaltySettings {
	return &LoyaltySettings{
		LocationID:        locationID,
		StampsForReward:   stampsForReward,
		RewardValue:       rewardValue,
		MaxStampsPerVisit: maxStampsPerVisit,
		IsDefault:         true,
	}
}

// BelowMinimumPurchase reports whether a supplied purchase amount fails the configured minimum.
func (s *LoyaltySettings) BelowMinimumPurchase(amount *float64) bool {
	if s.MinPurchaseAmount == nil || *s.MinPurchaseAmount <= 0 || amount == nil {
		return false
	}

	return *amount < *s.MinPurchaseAmount
}
