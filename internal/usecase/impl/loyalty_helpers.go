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

	"github.com/google/uuid"
)

func loyaltyConfig(cfg *config.Config) *config.LoyaltyConfig {
	if cfg == nil || cfg.Loyalty == nil {
		return config.DefaultLoyaltyConfig()
	}

	return cfg.Loyalty
}

// loadSettings returns the location's settings or the configured defaults.
func loadSettings(ctx context.Context, repo repository.LocationRepository, cfg *config.LoyaltyConfig, locationID uuid.UUID) (*entity.LoyaltySettings, error) {
	settings, err := repo.FindSettingsByLocation(ctx, locationID)
	if err == nil {
		return settings, nil
	}
	if !errors.Is(err, repository.ErrSettingsNotFound) {
		return nil, errors.Wrap(err, "failed to load loyalty settings")
	}

	return entity.DefaultLoyaltySettings(locationID, cfg.DefaultStampsForReward, cfg.DefaultMaxStampsPerVisit, cfg.DefaultRewardValue), nil
}

// loadCustomer loads a customer and checks it belongs to the permission's tenant.
func loadCustomer(ctx context.Context, repo repository.CustomerRepository, perm entity.PermissionSet, customerID uuid.UUID) (*entity.Customer, error) {
	customer, err := repo.FindCustomerByID(ctx, customerID)
	if err != nil {
		if errors.Is(err, repository.ErrCustomerNotFound) {
			return nil, domainerrors.ErrCustomerNotFound
		}

		return nil, errors.Wrap(err, "failed to load customer")
	}

	if customer.TenantID != perm.TenantID {
		return nil, domainerrors.ErrCrossTenantViolation
	}

	return customer, nil
}

// loadActiveCustomer applies the ledger preconditions: exists, active, then same tenant.
func loadActiveCustomer(ctx context.Context, repo repository.CustomerRepository, perm entity.PermissionSet, customerID uuid.UUID) (*entity.Customer, error) {
	customer, err := repo.FindCustomerByID(ctx, customerID)
	if err != nil {
		if errors.Is(err, repository.ErrCustomerNotFound) {
			return nil, domainerrors.ErrCustomerNotFound
		}

		return nil, errors.Wrap(err, "failed to load customer")
	}

	if err := ensureActive(customer); err != nil {
		return nil, err
	}

	if customer.TenantID != perm.TenantID {
		return nil, domainerrors.ErrCrossTenantViolation
	}

	return customer, nil
}

func ensureActive(customer *entity.Customer) error {
	switch {
	case customer.IsBlocked():
		return domainerrors.ErrCustomerBlocked
	case !customer.IsActive():
		return domainerrors.ErrCustomerInactive
	default:
		return nil
	}
}

func newActivity(customer *entity.Customer, locationID, actorID uuid.UUID, action entity.ActivityAction, details string, now time.Time) *entity.Activity {
	return &entity.Activity{
		ID:         uuid.New(),
		CustomerID: customer.ID,
		LocationID: locationID,
		TenantID:   customer.TenantID,
		ActorID:    actorID,
		Action:     action,
		Details:    details,
		CreatedAt:  now,
	}
}

func progressDetails(prefix string, progress entity.CardProgress) string {
	return fmt.Sprintf("%s; balance %d, available rewards %d, %d stamps to next reward",
		prefix, progress.Balance, progress.AvailableRewards, progress.StampsForNextReward)
}

// publishEvent runs after commit; failures are logged and never returned.
func publishEvent(ctx context.Context, publisher service.EventPublisher, logger *slog.Logger, event *service.LoyaltyEvent) {
	if publisher == nil {
		return
	}

	event.EventID = uuid.New().String()
	event.RequestID = deliverycontext.GetRequestIDFromContext(ctx)

	if err := publisher.PublishLoyaltyEvent(ctx, event); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, logger).Warn("Failed to publish loyalty event",
			slog.String("type", string(event.Type)),
			slog.String("customer_id", event.CustomerID),
			slog.Any("error", err),
		)
	}
}
