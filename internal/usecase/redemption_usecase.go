package usecase

import (
	"context"

	"stampcard/internal/domain/entity"

	"github.com/google/uuid"
)

// RedeemInput represents a reward redemption at the point of sale.
type RedeemInput struct {
	ActorID        uuid.UUID
	CustomerID     uuid.UUID
	LocationID     uuid.UUID
	RewardType     string
	StampsToRedeem int
}

// RedemptionUsecase consumes stamps for a reward. Balance check and insert are atomic.
type RedemptionUsecase interface {
	Redeem(ctx context.Context, input *RedeemInput) (*entity.RedemptionResult, error)
}
