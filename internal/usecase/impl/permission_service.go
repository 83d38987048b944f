package impl

import (
	"context"
	"log/slog"

	deliverycontext "stampcard/internal/delivery/context"
	"stampcard/internal/domain/entity"
	domainerrors "stampcard/internal/domain/errors"
	"stampcard/internal/domain/repository"
	"stampcard/internal/errors"
	"stampcard/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// permissionService implements the PermissionUsecase interface.
type permissionService struct {
	locationRepo repository.LocationRepository
	grantRepo    repository.StaffGrantRepository
	logger       *slog.Logger
}

// PermissionServiceParams holds dependencies for PermissionService, injected by Fx.
type PermissionServiceParams struct {
	fx.In

	LocationRepo repository.LocationRepository
	GrantRepo    repository.StaffGrantRepository
	Logger       *slog.Logger
}

// NewPermissionService creates the permission resolver.
func NewPermissionService(params PermissionServiceParams) usecase.PermissionUsecase {
	return &permissionService{
		locationRepo: params.LocationRepo,
		grantRepo:    params.GrantRepo,
		logger:       params.Logger,
	}
}

// Resolve checks a grant scoped to exactly this location first, then a tenant-level admin grant.
func (s *permissionService) Resolve(ctx context.Context, actorID, locationID uuid.UUID) (entity.PermissionSet, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)

	location, err := s.locationRepo.FindLocationByID(ctx, locationID)
	if err != nil {
		if errors.Is(err, repository.ErrLocationNotFound) {
			return entity.DeniedPermission(), nil
		}

		return entity.DeniedPermission(), errors.Wrap(err, "failed to load location")
	}
	if !location.Status.IsActive() {
		logger.Debug("Permission denied: inactive location", slog.String("location_id", locationID.String()))

		return entity.DeniedPermission(), nil
	}

	grant, err := s.grantRepo.FindActiveLocationGrant(ctx, actorID, locationID)
	switch {
	case err == nil && grant.TenantID == location.TenantID:
		active, err := s.tenantActive(ctx, location.TenantID)
		if err != nil || !active {
			return entity.DeniedPermission(), err
		}

		return entity.PermissionSet{
			Kind:       entity.PermissionLocationGrant,
			TenantID:   location.TenantID,
			LocationID: locationID,
			Role:       grant.Role,
			Flags:      grant.CapabilityFlags,
		}, nil
	case err == nil:
		logger.Warn("Ignoring location grant with mismatched tenant",
			slog.String("grant_id", grant.ID.String()),
			slog.String("location_id", locationID.String()),
		)
	case !errors.Is(err, repository.ErrGrantNotFound):
		return entity.DeniedPermission(), errors.Wrap(err, "failed to load location grant")
	}

	perm, err := s.ResolveTenant(ctx, actorID, location.TenantID)
	if err != nil || perm.IsDenied() {
		return perm, err
	}
	perm.LocationID = locationID

	return perm, nil
}

// Require resolves the actor and fails with Forbidden when the capability is absent.
func (s *permissionService) Require(ctx context.Context, actorID, locationID uuid.UUID, capability entity.Capability) (entity.PermissionSet, error) {
	perm, err := s.Resolve(ctx, actorID, locationID)
	if err != nil {
		return perm, err
	}

	if !perm.Can(capability) {
		deliverycontext.GetLoggerOrDefault(ctx, s.logger).Info("Capability denied",
			slog.String("actor_id", actorID.String()),
			slog.String("location_id", locationID.String()),
			slog.String("capability", string(capability)),
		)

		return perm, domainerrors.ErrForbidden
	}

	return perm, nil
}

// ResolveTenant returns a tenant admin set when the tenant is active and the actor holds an admin grant.
func (s *permissionService) ResolveTenant(ctx context.Context, actorID, tenantID uuid.UUID) (entity.PermissionSet, error) {
	active, err := s.tenantActive(ctx, tenantID)
	if err != nil || !active {
		return entity.DeniedPermission(), err
	}

	grant, err := s.grantRepo.FindActiveTenantAdminGrant(ctx, actorID, tenantID)
	if err != nil {
		if errors.Is(err, repository.ErrGrantNotFound) {
			return entity.DeniedPermission(), nil
		}

		return entity.DeniedPermission(), errors.Wrap(err, "failed to load tenant admin grant")
	}

	return entity.PermissionSet{
		Kind:     entity.PermissionTenantAdmin,
		TenantID: tenantID,
		Role:     grant.Role,
		Flags:    entity.AllCapabilities(),
	}, nil
}

// tenantActive reports false for unknown or suspended tenants. Grants of a
// suspended tenant stay on record but confer nothing.
func (s *permissionService) tenantActive(ctx context.Context, tenantID uuid.UUID) (bool, error) {
	tenant, err := s.locationRepo.FindTenantByID(ctx, tenantID)
	if err != nil {
		if errors.Is(err, repository.ErrTenantNotFound) {
			return false, nil
		}

		return false, errors.Wrap(err, "failed to load tenant")
	}

	return tenant.Status.IsActive(), nil
}
