package impl

import (
	"context"
	"log/slog"
	"time"

	"stampcard/config"
	deliverycontext "stampcard/internal/delivery/context"
	"stampcard/internal/domain/entity"
	domainerrors "stampcard/internal/domain/errors"
	"stampcard/internal/domain/repository"
	"stampcard/internal/errors"
	"stampcard/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// settingsService implements the SettingsUsecase interface.
type settingsService struct {
	locationRepo repository.LocationRepository
	permissions  usecase.PermissionUsecase
	loyalty      *config.LoyaltyConfig
	logger       *slog.Logger
	now          func() time.Time
}

// SettingsServiceParams holds dependencies for SettingsService, injected by Fx.
type SettingsServiceParams struct {
	fx.In

	LocationRepo repository.LocationRepository
	Permissions  usecase.PermissionUsecase
	Config       *config.Config
	Logger       *slog.Logger
}

// NewSettingsService creates the loyalty settings usecase.
func NewSettingsService(params SettingsServiceParams) usecase.SettingsUsecase {
	return &settingsService{
		locationRepo: params.LocationRepo,
		permissions:  params.Permissions,
		loyalty:      loyaltyConfig(params.Config),
		logger:       params.Logger,
		now:          time.Now,
	}
}

// Get is allowed for any actor holding at least one capability at the location.
func (s *settingsService) Get(ctx context.Context, actorID, locationID uuid.UUID) (*entity.LoyaltySettings, error) {
	perm, err := s.permissions.Resolve(ctx, actorID, locationID)
	if err != nil {
		return nil, err
	}
	if perm.IsDenied() || !perm.Flags.Any() {
		return nil, domainerrors.ErrForbidden
	}

	return loadSettings(ctx, s.locationRepo, s.loyalty, locationID)
}

// Update replaces the settings row. The new threshold applies to redemptions made after the change.
func (s *settingsService) Update(ctx context.Context, actorID, locationID uuid.UUID, input *usecase.UpdateSettingsInput) (*entity.LoyaltySettings, error) {
	perm, err := s.permissions.Resolve(ctx, actorID, locationID)
	if err != nil {
		return nil, err
	}
	if perm.IsDenied() {
		return nil, domainerrors.ErrForbidden
	}

	// Settings are edited by tenant admins only, never by location grants.
	if !perm.IsTenantAdmin() {
		admin, err := s.permissions.ResolveTenant(ctx, actorID, perm.TenantID)
		if err != nil {
			return nil, err
		}
		if !admin.IsTenantAdmin() {
			return nil, domainerrors.ErrForbidden
		}
	}

	if err := validateSettings(input); err != nil {
		return nil, err
	}

	settings := &entity.LoyaltySettings{
		LocationID:        locationID,
		StampsForReward:   input.StampsForReward,
		RewardValue:       input.RewardValue,
		MaxStampsPerVisit: input.MaxStampsPerVisit,
		StampExpiryDays:   input.StampExpiryDays,
		MinPurchaseAmount: input.MinPurchaseAmount,
		UpdatedAt:         s.now(),
	}

	if err := s.locationRepo.UpsertSettings(ctx, settings); err != nil {
		return nil, errors.Wrap(err, "failed to save loyalty settings")
	}

	deliverycontext.GetLoggerOrDefault(ctx, s.logger).Info("Loyalty settings updated",
		slog.String("location_id", locationID.String()),
		slog.Int("stamps_for_reward", settings.StampsForReward),
		slog.Int("max_stamps_per_visit", settings.MaxStampsPerVisit),
	)

	return settings, nil
}

func validateSettings(input *usecase.UpdateSettingsInput) error {
	switch {
	case input.StampsForReward < 1:
		return domainerrors.NewValidationError("stamps_for_reward must be at least 1")
	case input.MaxStampsPerVisit < 1:
		return domainerrors.NewValidationError("max_stamps_per_visit must be at least 1")
	case input.RewardValue < 0:
		return domainerrors.NewValidationError("reward_value must not be negative")
	case input.StampExpiryDays != nil && *input.StampExpiryDays < 0:
		return domainerrors.NewValidationError("stamp_expiry_days must not be negative")
	case input.MinPurchaseAmount != nil && *input.MinPurchaseAmount < 0:
		return domainerrors.NewValidationError("min_purchase_amount must not be negative")
	default:
		return nil
	}
}
