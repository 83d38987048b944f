package usecase

import (
	"context"

	"stampcard/internal/domain/entity"

	"github.com/google/uuid"
)

// AwardStampsInput represents stamps earned during a single visit.
type AwardStampsInput struct {
	ActorID        uuid.UUID
	CustomerID     uuid.UUID
	LocationID     uuid.UUID
	Stamps         int
	PurchaseAmount *float64
	Note           *string
}

// StampUsecase appends stamp events to the ledger.
type StampUsecase interface {
	AwardStamps(ctx context.Context, input *AwardStampsInput) (*entity.LedgerResult, error)
}
