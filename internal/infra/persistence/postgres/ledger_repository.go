package postgres

import (
	"context"

	"stampcard/internal/domain/entity"
	domainerrors "stampcard/internal/domain/errors"
	"stampcard/internal/domain/repository"
	"stampcard/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// ledgerRepository implements the repository.LedgerRepository interface.
// It only ever inserts and aggregates; events are immutable.
type ledgerRepository struct {
	db *gorm.DB
}

// NewLedgerRepository is the constructor for ledgerRepository.
func NewLedgerRepository(db *gorm.DB) repository.LedgerRepository {
	return &ledgerRepository{
		db: db,
	}
}

type customerSum struct {
	CustomerID uuid.UUID
	Total      int64
	Events     int64
}

// CreateStampEvent appends a stamp event.
func (repo *ledgerRepository) CreateStampEvent(ctx context.Context, event *entity.StampEvent) error {
	eventM := fromStampEventDomain(event)

	if err := repo.db.WithContext(ctx).Create(eventM).Error; err != nil {
		if isCheckConstraintViolation(err) {
			return domainerrors.NewValidationError("stamps must be positive")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create stamp event")
	}

	event.ID = eventM.ID
	event.CreatedAt = eventM.CreatedAt

	return nil
}

// CreateRewardEvent appends a reward event.
func (repo *ledgerRepository) CreateRewardEvent(ctx context.Context, event *entity.RewardEvent) error {
	eventM := fromRewardEventDomain(event)

	if err := repo.db.WithContext(ctx).Create(eventM).Error; err != nil {
		if isCheckConstraintViolation(err) {
			return domainerrors.NewValidationError("stamps to redeem must be positive")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create reward event")
	}

	event.ID = eventM.ID
	event.CreatedAt = eventM.CreatedAt

	return nil
}

// GetTotals sums the event log of one customer.
func (repo *ledgerRepository) GetTotals(ctx context.Context, customerID uuid.UUID) (repository.LedgerTotals, error) {
	totals, err := repo.GetTotalsByCustomers(ctx, []uuid.UUID{customerID})
	if err != nil {
		return repository.LedgerTotals{}, err
	}

	return totals[customerID], nil
}

// GetTotalsByCustomers sums the event logs of several customers.
func (repo *ledgerRepository) GetTotalsByCustomers(ctx context.Context, customerIDs []uuid.UUID) (map[uuid.UUID]repository.LedgerTotals, error) {
	totals := make(map[uuid.UUID]repository.LedgerTotals, len(customerIDs))
	if len(customerIDs) == 0 {
		return totals, nil
	}

	var stampSums []customerSum
	if err := repo.db.WithContext(ctx).
		Model(&model.StampEventModel{}).
		Select("customer_id, COALESCE(SUM(stamps), 0) AS total, COUNT(*) AS events").
		Where("customer_id IN ?", customerIDs).
		Group("customer_id").
		Scan(&stampSums).Error; err != nil {
		return nil, errors.Wrap(err, "failed to sum stamp events")
	}

	var rewardSums []customerSum
	if err := repo.db.WithContext(ctx).
		Model(&model.RewardEventModel{}).
		Select("customer_id, COALESCE(SUM(stamps_consumed), 0) AS total, COUNT(*) AS events").
		Where("customer_id IN ?", customerIDs).
		Group("customer_id").
		Scan(&rewardSums).Error; err != nil {
		return nil, errors.Wrap(err, "failed to sum reward events")
	}

	for _, sum := range stampSums {
		t := totals[sum.CustomerID]
		t.StampsEarned = int(sum.Total)
		totals[sum.CustomerID] = t
	}
	for _, sum := range rewardSums {
		t := totals[sum.CustomerID]
		t.StampsConsumed = int(sum.Total)
		t.RewardCount = int(sum.Events)
		totals[sum.CustomerID] = t
	}

	return totals, nil
}

// ListStampEvents returns the newest stamp events first.
func (repo *ledgerRepository) ListStampEvents(ctx context.Context, customerID uuid.UUID, limit int) ([]*entity.StampEvent, error) {
	var eventModels []*model.StampEventModel

	if err := repo.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("created_at DESC").
		Limit(limit).
		Find(&eventModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list stamp events")
	}

	events := make([]*entity.StampEvent, 0, len(eventModels))
	for _, eventM := range eventModels {
		events = append(events, toStampEventDomain(eventM))
	}

	return events, nil
}

// ListRewardEvents returns the newest reward events first.
func (repo *ledgerRepository) ListRewardEvents(ctx context.Context, customerID uuid.UUID, limit int) ([]*entity.RewardEvent, error) {
	var eventModels []*model.RewardEventModel

	if err := repo.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("created_at DESC").
		Limit(limit).
		Find(&eventModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list reward events")
	}

	events := make([]*entity.RewardEvent, 0, len(eventModels))
	for _, eventM := range eventModels {
		events = append(events, toRewardEventDomain(eventM))
	}

	return events, nil
}

// --- Mapper Functions ---

func toStampEventDomain(data *model.StampEventModel) *entity.StampEvent {
	if data == nil {
		return nil
	}

	return &entity.StampEvent{
		ID:             data.ID,
		CustomerID:     data.CustomerID,
		LocationID:     data.LocationID,
		TenantID:       data.TenantID,
		Stamps:         data.Stamps,
		PurchaseAmount: data.PurchaseAmount,
		Note:           data.Note,
		ActorID:        data.ActorID,
		CreatedAt:      data.CreatedAt,
	}
}

func fromStampEventDomain(data *entity.StampEvent) *model.StampEventModel {
	if data == nil {
		return nil
	}

	return &model.StampEventModel{
		ID:             data.ID,
		CustomerID:     data.CustomerID,
		LocationID:     data.LocationID,
		TenantID:       data.TenantID,
		Stamps:         data.Stamps,
		PurchaseAmount: data.PurchaseAmount,
		Note:           data.Note,
		ActorID:        data.ActorID,
		CreatedAt:      data.CreatedAt,
	}
}

func toRewardEventDomain(data *model.RewardEventModel) *entity.RewardEvent {
	if data == nil {
		return nil
	}

	return &entity.RewardEvent{
		ID:             data.ID,
		CustomerID:     data.CustomerID,
		LocationID:     data.LocationID,
		TenantID:       data.TenantID,
		RewardType:     data.RewardType,
		RewardValue:    data.RewardValue,
		StampsConsumed: data.StampsConsumed,
		ActorID:        data.ActorID,
		Status:         entity.RewardStatus(data.Status),
		CreatedAt:      data.CreatedAt,
	}
}

func fromRewardEventDomain(data *entity.RewardEvent) *model.RewardEventModel {
	if data == nil {
		return nil
	}

	return &model.RewardEventModel{
		ID:             data.ID,
		CustomerID:     data.CustomerID,
		LocationID:     data.LocationID,
		TenantID:       data.TenantID,
		RewardType:     data.RewardType,
		RewardValue:    data.RewardValue,
		StampsConsumed: data.StampsConsumed,
		ActorID:        data.ActorID,
		Status:         string(data.Status),
		CreatedAt:      data.CreatedAt,
	}
}
