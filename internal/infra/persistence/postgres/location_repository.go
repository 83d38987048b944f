package postgres

import (
	"context"
	"time"

	"stampcard/internal/domain/entity"
	domainerrors "stampcard/internal/domain/errors"
	"stampcard/internal/domain/repository"
	"stampcard/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// locationRepository implements the repository.LocationRepository interface.
type locationRepository struct {
	db *gorm.DB
}

// NewLocationRepository is the constructor for locationRepository.
func NewLocationRepository(db *gorm.DB) repository.LocationRepository {
	return &locationRepository{
		db: db,
	}
}

// FindLocationByID retrieves a location by its unique ID.
func (repo *locationRepository) FindLocationByID(ctx context.Context, id uuid.UUID) (*entity.Location, error) {
	var locationM model.LocationModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&locationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLocationNotFound
		}

		return nil, errors.Wrap(err, "failed to find location by ID")
	}

	return toLocationDomain(&locationM), nil
}

// FindTenantByID retrieves a tenant by its unique ID.
func (repo *locationRepository) FindTenantByID(ctx context.Context, id uuid.UUID) (*entity.Tenant, error) {
	var tenantM model.TenantModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&tenantM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTenantNotFound
		}

		return nil, errors.Wrap(err, "failed to find tenant by ID")
	}

	return &entity.Tenant{
		ID:        tenantM.ID,
		Name:      tenantM.Name,
		Status:    entity.RecordStatus(tenantM.Status),
		CreatedAt: tenantM.CreatedAt,
		UpdatedAt: tenantM.UpdatedAt,
	}, nil
}

// FindSettingsByLocation retrieves the loyalty settings row of a location.
func (repo *locationRepository) FindSettingsByLocation(ctx context.Context, locationID uuid.UUID) (*entity.LoyaltySettings, error) {
	var settingsM model.LoyaltySettingsModel

	if err := repo.db.WithContext(ctx).
		Where("location_id = ?", locationID).
		First(&settingsM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSettingsNotFound
		}

		return nil, errors.Wrap(err, "failed to find loyalty settings")
	}

	return toSettingsDomain(&settingsM), nil
}

// UpsertSettings creates or replaces the settings row of a location.
func (repo *locationRepository) UpsertSettings(ctx context.Context, settings *entity.LoyaltySettings) error {
	settingsM := fromSettingsDomain(settings)
	settingsM.UpdatedAt = time.Now()

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "location_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"stamps_for_reward",
				"reward_value",
				"max_stamps_per_visit",
				"stamp_expiry_days",
				"min_purchase_amount",
				"updated_at",
			}),
		}).
		Create(settingsM).Error
	if err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrLocationNotFound
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.NewValidationError("loyalty settings out of range")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to save loyalty settings")
	}

	settings.UpdatedAt = settingsM.UpdatedAt
	settings.IsDefault = false

	return nil
}

// --- Mapper Functions ---

func toLocationDomain(data *model.LocationModel) *entity.Location {
	if data == nil {
		return nil
	}

	return &entity.Location{
		ID:        data.ID,
		TenantID:  data.TenantID,
		Name:      data.Name,
		Status:    entity.RecordStatus(data.Status),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func toSettingsDomain(data *model.LoyaltySettingsModel) *entity.LoyaltySettings {
	if data == nil {
		return nil
	}

	return &entity.LoyaltySettings{
		LocationID:        data.LocationID,
		StampsForReward:   data.StampsForReward,
		RewardValue:       data.RewardValue,
		MaxStampsPerVisit: data.MaxStampsPerVisit,
		StampExpiryDays:   data.StampExpiryDays,
		MinPurchaseAmount: data.MinPurchaseAmount,
		UpdatedAt:         data.UpdatedAt,
	}
}

func fromSettingsDomain(data *entity.LoyaltySettings) *model.LoyaltySettingsModel {
	if data == nil {
		return nil
	}

	return &model.LoyaltySettingsModel{
		LocationID:        data.LocationID,
		StampsForReward:   data.StampsForReward,
		RewardValue:       data.RewardValue,
		MaxStampsPerVisit: data.MaxStampsPerVisit,
		StampExpiryDays:   data.StampExpiryDays,
		MinPurchaseAmount: data.MinPurchaseAmount,
		UpdatedAt:         data.UpdatedAt,
	}
}
