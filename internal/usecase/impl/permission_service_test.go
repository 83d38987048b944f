package impl

import (
	"context"
	"errors"
	"testing"

	"stampcard/internal/domain/entity"
	domainerrors "stampcard/internal/domain/errors"
	"stampcard/internal/domain/repository"
	mockRepo "stampcard/internal/mocks/repository"
	"stampcard/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type permissionTestEnv struct {
	locationRepo *mockRepo.MockLocationRepository
	grantRepo    *mockRepo.MockStaffGrantRepository
	service      usecase.PermissionUsecase
}

func newPermissionTestEnv(t *testing.T) permissionTestEnv {
	locationRepo := mockRepo.NewMockLocationRepository(t)
	grantRepo := mockRepo.NewMockStaffGrantRepository(t)

	return permissionTestEnv{
		locationRepo: locationRepo,
		grantRepo:    grantRepo,
		service: NewPermissionService(PermissionServiceParams{
			LocationRepo: locationRepo,
			GrantRepo:    grantRepo,
			Logger:       newDiscardLogger(),
		}),
	}
}

func TestPermissionService_Resolve_LocationGrant(t *testing.T) {
	env := newPermissionTestEnv(t)
	f := newFixture()
	ctx := context.Background()
	flags := entity.CapabilityFlags{CanAddStamps: true}

	env.locationRepo.EXPECT().FindLocationByID(ctx, f.locationID).Return(f.location(), nil)
	env.grantRepo.EXPECT().FindActiveLocationGrant(ctx, f.actorID, f.locationID).Return(&entity.StaffGrant{
		ID:              uuid.New(),
		UserID:          f.actorID,
		TenantID:        f.tenantID,
		LocationID:      &f.locationID,
		Role:            entity.StaffRoleStaff,
		Status:          entity.RecordStatusActive,
		CapabilityFlags: flags,
	}, nil)
	env.locationRepo.EXPECT().FindTenantByID(ctx, f.tenantID).Return(f.tenant(), nil)

	perm, err := env.service.Resolve(ctx, f.actorID, f.locationID)
	require.NoError(t, err)
	assert.Equal(t, entity.PermissionLocationGrant, perm.Kind)
	assert.Equal(t, f.tenantID, perm.TenantID)
	assert.True(t, perm.Can(entity.CapabilityAddStamps))
	assert.False(t, perm.Can(entity.CapabilityRedeemRewards))
}

func TestPermissionService_Resolve_TenantAdmin(t *testing.T) {
	env := newPermissionTestEnv(t)
	f := newFixture()
	ctx := context.Background()

	env.locationRepo.EXPECT().FindLocationByID(ctx, f.locationID).Return(f.location(), nil)
	env.grantRepo.EXPECT().FindActiveLocationGrant(ctx, f.actorID, f.locationID).Return(nil, repository.ErrGrantNotFound)
	env.locationRepo.EXPECT().FindTenantByID(ctx, f.tenantID).Return(f.tenant(), nil)
	env.grantRepo.EXPECT().FindActiveTenantAdminGrant(ctx, f.actorID, f.tenantID).Return(&entity.StaffGrant{
		ID:       uuid.New(),
		UserID:   f.actorID,
		TenantID: f.tenantID,
		Role:     entity.StaffRoleAdmin,
		Status:   entity.RecordStatusActive,
	}, nil)

	perm, err := env.service.Resolve(ctx, f.actorID, f.locationID)
	require.NoError(t, err)
	assert.True(t, perm.IsTenantAdmin())
	assert.Equal(t, f.locationID, perm.LocationID)
	assert.Equal(t, entity.AllCapabilities(), perm.Flags)
}

func TestPermissionService_Resolve_Denied(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name  string
		setup func(env permissionTestEnv, f fixture)
	}{
		{
			name: "unknown location",
			setup: func(env permissionTestEnv, f fixture) {
				env.locationRepo.EXPECT().FindLocationByID(ctx, f.locationID).Return(nil, repository.ErrLocationNotFound)
			},
		},
		{
			name: "inactive location",
			setup: func(env permissionTestEnv, f fixture) {
				loc := f.location()
				loc.Status = entity.RecordStatusInactive
				env.locationRepo.EXPECT().FindLocationByID(ctx, f.locationID).Return(loc, nil)
			},
		},
		{
			name: "inactive tenant",
			setup: func(env permissionTestEnv, f fixture) {
				tenant := f.tenant()
				tenant.Status = entity.RecordStatusInactive
				env.locationRepo.EXPECT().FindLocationByID(ctx, f.locationID).Return(f.location(), nil)
				env.grantRepo.EXPECT().FindActiveLocationGrant(ctx, f.actorID, f.locationID).Return(nil, repository.ErrGrantNotFound)
				env.locationRepo.EXPECT().FindTenantByID(ctx, f.tenantID).Return(tenant, nil)
			},
		},
		{
			name: "location grant under inactive tenant",
			setup: func(env permissionTestEnv, f fixture) {
				tenant := f.tenant()
				tenant.Status = entity.RecordStatusInactive
				env.locationRepo.EXPECT().FindLocationByID(ctx, f.locationID).Return(f.location(), nil)
				env.grantRepo.EXPECT().FindActiveLocationGrant(ctx, f.actorID, f.locationID).Return(&entity.StaffGrant{
					ID:              uuid.New(),
					TenantID:        f.tenantID,
					LocationID:      &f.locationID,
					CapabilityFlags: entity.AllCapabilities(),
				}, nil)
				env.locationRepo.EXPECT().FindTenantByID(ctx, f.tenantID).Return(tenant, nil)
			},
		},
		{
			name: "no grant at all",
			setup: func(env permissionTestEnv, f fixture) {
				env.locationRepo.EXPECT().FindLocationByID(ctx, f.locationID).Return(f.location(), nil)
				env.grantRepo.EXPECT().FindActiveLocationGrant(ctx, f.actorID, f.locationID).Return(nil, repository.ErrGrantNotFound)
				env.locationRepo.EXPECT().FindTenantByID(ctx, f.tenantID).Return(f.tenant(), nil)
				env.grantRepo.EXPECT().FindActiveTenantAdminGrant(ctx, f.actorID, f.tenantID).Return(nil, repository.ErrGrantNotFound)
			},
		},
		{
			name: "grant recorded under another tenant",
			setup: func(env permissionTestEnv, f fixture) {
				env.locationRepo.EXPECT().FindLocationByID(ctx, f.locationID).Return(f.location(), nil)
				env.grantRepo.EXPECT().FindActiveLocationGrant(ctx, f.actorID, f.locationID).Return(&entity.StaffGrant{
					ID:              uuid.New(),
					TenantID:        uuid.New(),
					LocationID:      &f.locationID,
					CapabilityFlags: entity.AllCapabilities(),
				}, nil)
				env.locationRepo.EXPECT().FindTenantByID(ctx, f.tenantID).Return(f.tenant(), nil)
				env.grantRepo.EXPECT().FindActiveTenantAdminGrant(ctx, f.actorID, f.tenantID).Return(nil, repository.ErrGrantNotFound)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newPermissionTestEnv(t)
			f := newFixture()
			tt.setup(env, f)

			perm, err := env.service.Resolve(ctx, f.actorID, f.locationID)
			require.NoError(t, err)
			assert.True(t, perm.IsDenied())
			assert.False(t, perm.Can(entity.CapabilityViewCustomerData))
		})
	}
}

func TestPermissionService_Resolve_StoreError(t *testing.T) {
	env := newPermissionTestEnv(t)
	f := newFixture()
	ctx := context.Background()
	dbErr := errors.New("connection reset")

	env.locationRepo.EXPECT().FindLocationByID(ctx, f.locationID).Return(nil, dbErr)

	_, err := env.service.Resolve(ctx, f.actorID, f.locationID)
	require.Error(t, err)
	assert.ErrorIs(t, err, dbErr)
}

func TestPermissionService_Require(t *testing.T) {
	ctx := context.Background()

	t.Run("capability present", func(t *testing.T) {
		env := newPermissionTestEnv(t)
		f := newFixture()
		env.locationRepo.EXPECT().FindLocationByID(ctx, f.locationID).Return(f.location(), nil)
		env.grantRepo.EXPECT().FindActiveLocationGrant(ctx, f.actorID, f.locationID).Return(&entity.StaffGrant{
			TenantID:        f.tenantID,
			LocationID:      &f.locationID,
			CapabilityFlags: entity.CapabilityFlags{CanRedeemRewards: true},
		}, nil)
		env.locationRepo.EXPECT().FindTenantByID(ctx, f.tenantID).Return(f.tenant(), nil)

		perm, err := env.service.Require(ctx, f.actorID, f.locationID, entity.CapabilityRedeemRewards)
		require.NoError(t, err)
		assert.Equal(t, f.tenantID, perm.TenantID)
	})

	t.Run("grant at another location does not carry over", func(t *testing.T) {
		env := newPermissionTestEnv(t)
		f := newFixture()
		env.locationRepo.EXPECT().FindLocationByID(ctx, f.locationID).Return(f.location(), nil)
		env.grantRepo.EXPECT().FindActiveLocationGrant(ctx, f.actorID, f.locationID).Return(nil, repository.ErrGrantNotFound)
		env.locationRepo.EXPECT().FindTenantByID(ctx, f.tenantID).Return(f.tenant(), nil)
		env.grantRepo.EXPECT().FindActiveTenantAdminGrant(ctx, f.actorID, f.tenantID).Return(nil, repository.ErrGrantNotFound)

		_, err := env.service.Require(ctx, f.actorID, f.locationID, entity.CapabilityAddStamps)
		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})

	t.Run("flag missing", func(t *testing.T) {
		env := newPermissionTestEnv(t)
		f := newFixture()
		env.locationRepo.EXPECT().FindLocationByID(ctx, f.locationID).Return(f.location(), nil)
		env.grantRepo.EXPECT().FindActiveLocationGrant(ctx, f.actorID, f.locationID).Return(&entity.StaffGrant{
			TenantID:        f.tenantID,
			LocationID:      &f.locationID,
			CapabilityFlags: entity.CapabilityFlags{CanViewCustomerData: true},
		}, nil)
		env.locationRepo.EXPECT().FindTenantByID(ctx, f.tenantID).Return(f.tenant(), nil)

		_, err := env.service.Require(ctx, f.actorID, f.locationID, entity.CapabilityAddStamps)
		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})
}
