package repository

import (
	"context"

	"stampcard/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrGrantNotFound is returned when no active grant matches.
var ErrGrantNotFound = errors.New("staff grant not found")

// StaffGrantRepository looks up active staff grants.
type StaffGrantRepository interface {
	// FindActiveLocationGrant returns the active grant scoped to exactly this location.
	FindActiveLocationGrant(ctx context.Context, userID, locationID uuid.UUID) (*entity.StaffGrant, error)

	// FindActiveTenantAdminGrant returns the active tenant-level admin grant of the user.
	FindActiveTenantAdminGrant(ctx context.Context, userID, tenantID uuid.UUID) (*entity.StaffGrant, error)
}
