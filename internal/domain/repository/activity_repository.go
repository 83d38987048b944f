package repository

import (
	"context"

	"stampcard/internal/domain/entity"
)

// ActivityRepository records customer activity notes.
type ActivityRepository interface {
	CreateActivity(ctx context.Context, activity *entity.Activity) error
}
