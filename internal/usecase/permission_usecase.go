// Package usecase defines the application operations exposed to the delivery layer.
package usecase

import (
	"context"

	"stampcard/internal/domain/entity"

	"github.com/google/uuid"
)

// PermissionUsecase resolves what an actor may do at a location or across a tenant.
type PermissionUsecase interface {
	// Resolve returns the actor's permission set at a location. Denied is a value, not an error.
	Resolve(ctx context.Context, actorID, locationID uuid.UUID) (entity.PermissionSet, error)

	// Require resolves and fails with Forbidden when the capability is absent.
	Require(ctx context.Context, actorID, locationID uuid.UUID, capability entity.Capability) (entity.PermissionSet, error)

	// ResolveTenant returns a tenant admin set or Denied for tenant-wide operations.
	ResolveTenant(ctx context.Context, actorID, tenantID uuid.UUID) (entity.PermissionSet, error)
}
