package postgres

import (
	"context"

	"stampcard/internal/domain/entity"
	"stampcard/internal/domain/repository"
	"stampcard/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// staffGrantRepository implements the repository.StaffGrantRepository interface.
type staffGrantRepository struct {
	db *gorm.DB
}

// NewStaffGrantRepository is the constructor for staffGrantRepository.
func NewStaffGrantRepository(db *gorm.DB) repository.StaffGrantRepository {
	return &staffGrantRepository{
		db: db,
	}
}

// FindActiveLocationGrant returns the active grant scoped to exactly this location.
func (repo *staffGrantRepository) FindActiveLocationGrant(ctx context.Context, userID, locationID uuid.UUID) (*entity.StaffGrant, error) {
	var grantM model.StaffGrantModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND location_id = ? AND status = ?", userID, locationID, entity.RecordStatusActive).
		Order("created_at DESC").
		First(&grantM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrGrantNotFound
		}

		return nil, errors.Wrap(err, "failed to find location grant")
	}

	return toStaffGrantDomain(&grantM), nil
}

// FindActiveTenantAdminGrant returns the active tenant-level admin grant of the user.
func (repo *staffGrantRepository) FindActiveTenantAdminGrant(ctx context.Context, userID, tenantID uuid.UUID) (*entity.StaffGrant, error) {
	var grantM model.StaffGrantModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND tenant_id = ? AND location_id IS NULL AND role = ? AND status = ?",
			userID, tenantID, entity.StaffRoleAdmin, entity.RecordStatusActive).
		First(&grantM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrGrantNotFound
		}

		return nil, errors.Wrap(err, "failed to find tenant admin grant")
	}

	return toStaffGrantDomain(&grantM), nil
}

func toStaffGrantDomain(data *model.StaffGrantModel) *entity.StaffGrant {
	if data == nil {
		return nil
	}

	return &entity.StaffGrant{
		ID:         data.ID,
		UserID:     data.UserID,
		TenantID:   data.TenantID,
		LocationID: data.LocationID,
		Role:       entity.StaffRole(data.Role),
		Status:     entity.RecordStatus(data.Status),
		CapabilityFlags: entity.CapabilityFlags{
			CanRegisterCustomers: data.CanRegisterCustomers,
			CanAddStamps:         data.CanAddStamps,
			CanRedeemRewards:     data.CanRedeemRewards,
			CanViewCustomerData:  data.CanViewCustomerData,
		},
	}
}
