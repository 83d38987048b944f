package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
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

// redemptionService implements the RedemptionUsecase interface.
type redemptionService struct {
	txManager    repository.TransactionManager
	customerRepo repository.CustomerRepository
	locationRepo repository.LocationRepository
	permissions  usecase.PermissionUsecase
	publisher    service.EventPublisher
	loyalty      *config.LoyaltyConfig
	logger       *slog.Logger
	now          func() time.Time
}

// RedemptionServiceParams holds dependencies for RedemptionService, injected by Fx.
type RedemptionServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	CustomerRepo repository.CustomerRepository
	LocationRepo repository.LocationRepository
	Permissions  usecase.PermissionUsecase
	Publisher    service.EventPublisher
	Config       *config.Config
	Logger       *slog.Logger
}

// NewRedemptionService creates the reward redemption usecase.
func NewRedemptionService(params RedemptionServiceParams) usecase.RedemptionUsecase {
	return &redemptionService{
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

// Redeem locks the customer row, then checks the balance and inserts the reward event in the same transaction.
// Concurrent redemptions for one customer are serialized by the lock.
func (s *redemptionService) Redeem(ctx context.Context, input *usecase.RedeemInput) (*entity.RedemptionResult, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)

	perm, err := s.permissions.Require(ctx, input.ActorID, input.LocationID, entity.CapabilityRedeemRewards)
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

	rewardType := strings.TrimSpace(input.RewardType)
	if rewardType == "" {
		return nil, domainerrors.NewValidationError("reward_type is required")
	}

	now := s.now()
	var (
		event    *entity.RewardEvent
		progress entity.CardProgress
	)
	err = s.txManager.Execute(ctx, func(txRepoFactory repository.RepositoryFactory) error {
		locked, err := txRepoFactory.NewCustomerRepository().LockCustomer(ctx, customer.ID)
		if err != nil {
			if errors.Is(err, repository.ErrCustomerNotFound) {
				return domainerrors.ErrCustomerNotFound
			}

			return errors.Wrap(err, "failed to lock customer")
		}
		if err := ensureActive(locked); err != nil {
			return err
		}

		ledgerRepo := txRepoFactory.NewLedgerRepository()
		totals, err := ledgerRepo.GetTotals(ctx, customer.ID)
		if err != nil {
			return errors.Wrap(err, "failed to compute balance")
		}
		balance := totals.Balance()

		if input.StampsToRedeem != settings.StampsForReward {
			return domainerrors.NewValidationError(
				fmt.Sprintf("must redeem exactly %d stamps", settings.StampsForReward)).
				WithContext("required_stamps", settings.StampsForReward)
		}
		if balance < input.StampsToRedeem {
			return domainerrors.NewInsufficientBalanceError(max(balance, 0), input.StampsToRedeem)
		}

		event = &entity.RewardEvent{
			ID:             uuid.New(),
			CustomerID:     customer.ID,
			LocationID:     input.LocationID,
			TenantID:       customer.TenantID,
			RewardType:     rewardType,
			RewardValue:    settings.RewardValue,
			StampsConsumed: input.StampsToRedeem,
			ActorID:        input.ActorID,
			Status:         entity.RewardStatusRedeemed,
			CreatedAt:      now,
		}
		if err := ledgerRepo.CreateRewardEvent(ctx, event); err != nil {
			return errors.Wrap(err, "failed to create reward event")
		}

		progress = entity.NewCardProgress(balance-input.StampsToRedeem, settings.StampsForReward)

		activity := newActivity(customer, input.LocationID, input.ActorID, entity.ActivityRewardRedeemed,
			progressDetails(fmt.Sprintf("redeemed %s for %d stamps", rewardType, input.StampsToRedeem), progress), now)
		if err := txRepoFactory.NewActivityRepository().CreateActivity(ctx, activity); err != nil {
			return errors.Wrap(err, "failed to record activity")
		}

		return nil
	})
	if err != nil {
		if _, ok := errors.AsType[domainerrors.AppError](err); ok {
			return nil, err
		}

		logger.Error("Failed to redeem reward",
			slog.String("customer_id", customer.ID.String()),
			slog.Any("error", err),
		)

		return nil, errors.Wrap(err, "redeem reward transaction failed")
	}

	logger.Info("Reward redeemed",
		slog.String("customer_id", customer.ID.String()),
		slog.String("location_id", input.LocationID.String()),
		slog.Int("stamps", input.StampsToRedeem),
		slog.Int("remaining", progress.Balance),
	)

	publishEvent(ctx, s.publisher, s.logger, &service.LoyaltyEvent{
		Type:       service.EventRewardRedeemed,
		TenantID:   customer.TenantID.String(),
		LocationID: input.LocationID.String(),
		CustomerID: customer.ID.String(),
		ActorID:    input.ActorID.String(),
		Stamps:     input.StampsToRedeem,
		Balance:    progress.Balance,
		OccurredAt: now,
	})

	return &entity.RedemptionResult{Event: event, Progress: progress}, nil
}
