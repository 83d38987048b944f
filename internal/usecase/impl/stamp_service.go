package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"stampcard/config"
	deliverycontext "stampcard/internal/delivery/context"
	"stampcard/internal/domain/entity"
	domainerrors "stampcard/internal/domain/errors"
	"stampcard/internal/domain/repository"
	"stampcard/internal/domain/service"
	"stampcard/internal/errors"
	"stampcard/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// stampService implements the StampUsecase interface.
type stampService struct {
	txManager    repository.TransactionManager
	customerRepo repository.CustomerRepository
	locationRepo repository.LocationRepository
	permissions  usecase.PermissionUsecase
	publisher    service.EventPublisher
	loyalty      *config.LoyaltyConfig
	logger       *slog.Logger
	now          func() time.Time
}

// StampServiceParams holds dependencies for StampService, injected by Fx.
type StampServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	CustomerRepo repository.CustomerRepository
	LocationRepo repository.LocationRepository
	Permissions  usecase.PermissionUsecase
	Publisher    service.EventPublisher
	Config       *config.Config
	Logger       *slog.Logger
}

// NewStampService creates the stamp ledger.
func NewStampService(params StampServiceParams) usecase.StampUsecase {
	return &stampService{
		txManager:    params.TxManager,
		customerRepo: params.CustomerRepo,
		locationRepo: params.LocationRepo,
		permissions:  params.Permissions,
		publisher:    params.Publisher,
		loyalty:      loyaltyConfig(params.Config),
		logger:       params.Logger,
		now:          time.Now,
	}
}

// AwardStamps appends a stamp event and its activity note in one transaction.
func (s *stampService) AwardStamps(ctx context.Context, input *usecase.AwardStampsInput) (*entity.LedgerResult, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)

	perm, err := s.permissions.Require(ctx, input.ActorID, input.LocationID, entity.CapabilityAddStamps)
	if err != nil {
		return nil, err
	}

	customer, err := loadActiveCustomer(ctx, s.customerRepo, perm, input.CustomerID)
	if err != nil {
		return nil, err
	}

	settings, err := loadSettings(ctx, s.locationRepo, s.loyalty, input.LocationID)
	if err != nil {
		return nil, err
	}

	if input.Stamps < 1 || input.Stamps > settings.MaxStampsPerVisit {
		return nil, domainerrors.NewValidationError(
			fmt.Sprintf("stamps_earned must be between 1 and %d", settings.MaxStampsPerVisit))
	}
	if input.PurchaseAmount != nil && *input.PurchaseAmount < 0 {
		return nil, domainerrors.NewValidationError("amount must not be negative")
	}
	if settings.BelowMinimumPurchase(input.PurchaseAmount) {
		return nil, domainerrors.NewValidationError(
			fmt.Sprintf("amount must be at least %.2f to earn stamps", *settings.MinPurchaseAmount)).
			WithContext("min_purchase_amount", *settings.MinPurchaseAmount)
	}

	now := s.now()
	event := &entity.StampEvent{
		ID:             uuid.New(),
		CustomerID:     customer.ID,
		LocationID:     input.LocationID,
		TenantID:       customer.TenantID,
		Stamps:         input.Stamps,
		PurchaseAmount: input.PurchaseAmount,
		Note:           input.Note,
		ActorID:        input.ActorID,
		CreatedAt:      now,
	}

	var progress entity.CardProgress
	err = s.txManager.Execute(ctx, func(txRepoFactory repository.RepositoryFactory) error {
		ledgerRepo := txRepoFactory.NewLedgerRepository()
		if err := ledgerRepo.CreateStampEvent(ctx, event); err != nil {
			return errors.Wrap(err, "failed to create stamp event")
		}

		totals, err := ledgerRepo.GetTotals(ctx, customer.ID)
		if err != nil {
			return errors.Wrap(err, "failed to compute balance")
		}
		progress = entity.NewCardProgress(totals.Balance(), settings.StampsForReward)

		activity := newActivity(customer, input.LocationID, input.ActorID, entity.ActivityStampsAwarded,
			progressDetails(fmt.Sprintf("awarded %d stamps", input.Stamps), progress), now)
		if err := txRepoFactory.NewActivityRepository().CreateActivity(ctx, activity); err != nil {
			return errors.Wrap(err, "failed to record activity")
		}

		return nil
	})
	if err != nil {
		logger.Error("Failed to award stamps",
			slog.String("customer_id", customer.ID.String()),
			slog.Any("error", err),
		)

		return nil, errors.Wrap(err, "award stamps transaction failed")
	}

	logger.Info("Stamps awarded",
		slog.String("customer_id", customer.ID.String()),
		slog.String("location_id", input.LocationID.String()),
		slog.Int("stamps", input.Stamps),
		slog.Int("balance", progress.Balance),
	)

	publishEvent(ctx, s.publisher, s.logger, &service.LoyaltyEvent{
		Type:       service.EventStampsAwarded,
		TenantID:   customer.TenantID.String(),
		LocationID: input.LocationID.String(),
		CustomerID: customer.ID.String(),
		ActorID:    input.ActorID.String(),
		Stamps:     input.Stamps,
		Balance:    progress.Balance,
		OccurredAt: now,
	})

	return &entity.LedgerResult{Event: event, Progress: progress}, nil
}
