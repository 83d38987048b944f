package repository

import (
	"context"

	"stampcard/internal/domain/entity"

	"github.com/google/uuid"
)

// LedgerTotals are the derived totals of a customer's event log.
type LedgerTotals struct {
	StampsEarned   int
	StampsConsumed int
	RewardCount    int
}

// Balance is stamps earned minus stamps consumed.
func (t LedgerTotals) Balance() int {
	return t.StampsEarned - t.StampsConsumed
}

// LedgerRepository appends and aggregates stamp and reward events. Events are never updated or deleted.
type LedgerRepository interface {
	// CreateStampEvent appends a stamp event.
	CreateStampEvent(ctx context.Context, event *entity.StampEvent) error

	// CreateRewardEvent appends a reward event.
	CreateRewardEvent(ctx context.Context, event *entity.RewardEvent) error

	// GetTotals sums the event log of one customer.
	GetTotals(ctx context.Context, customerID uuid.UUID) (LedgerTotals, error)

	// GetTotalsByCustomers sums the event logs of several customers; missing ids map to zero totals.
	GetTotalsByCustomers(ctx context.Context, customerIDs []uuid.UUID) (map[uuid.UUID]LedgerTotals, error)

	// ListStampEvents returns the newest stamp events first.
	ListStampEvents(ctx context.Context, customerID uuid.UUID, limit int) ([]*entity.StampEvent, error)

	// ListRewardEvents returns the newest reward events first.
	ListRewardEvents(ctx context.Context, customerID uuid.UUID, limit int) ([]*entity.RewardEvent, error)
}
