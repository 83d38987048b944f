package usecase

import (
	"context"

	"stampcard/internal/domain/entity"

	"github.com/google/uuid"
)

// UpdateSettingsInput replaces the loyalty settings of a location.
type UpdateSettingsInput struct {
	StampsForReward   int
	RewardValue       float64
	MaxStampsPerVisit int
	StampExpiryDays   *int
	MinPurchaseAmount *float64
}

// SettingsUsecase reads and edits per-location loyalty settings.
type SettingsUsecase interface {
	// Get returns the location's settings, or the configured defaults when none are stored.
	Get(ctx context.Context, actorID, locationID uuid.UUID) (*entity.LoyaltySettings, error)

	// Update is restricted to tenant admins.
	Update(ctx context.Context, actorID, locationID uuid.UUID, input *UpdateSettingsInput) (*entity.LoyaltySettings, error)
}
