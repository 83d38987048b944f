package postgres

import (
	"context"

	"stampcard/internal/domain/entity"
	domainerrors "stampcard/internal/domain/errors"
	"stampcard/internal/domain/repository"
	"stampcard/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// activityRepository implements the repository.ActivityRepository interface.
type activityRepository struct {
	db *gorm.DB
}

// NewActivityRepository is the constructor for activityRepository.
func NewActivityRepository(db *gorm.DB) repository.ActivityRepository {
	return &activityRepository{
		db: db,
	}
}

// CreateActivity records an activity note.
func (repo *activityRepository) CreateActivity(ctx context.Context, activity *entity.Activity) error {
	activityM := &model.ActivityModel{
		ID:         activity.ID,
		CustomerID: activity.CustomerID,
		LocationID: activity.LocationID,
		TenantID:   activity.TenantID,
		ActorID:    activity.ActorID,
		Action:     string(activity.Action),
		Details:    activity.Details,
		CreatedAt:  activity.CreatedAt,
	}

	if err := repo.db.WithContext(ctx).Create(activityM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create customer activity")
	}

	activity.ID = activityM.ID
	activity.CreatedAt = activityM.CreatedAt

	return nil
}
