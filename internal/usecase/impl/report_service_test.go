package impl

import (
	"context"
	"errors"
	"testing"
	"time"

	"stampcard/internal/domain/entity"
	domainerrors "stampcard/internal/domain/errors"
	mockRepo "stampcard/internal/mocks/repository"
	mockService "stampcard/internal/mocks/service"
	mockUsecase "stampcard/internal/mocks/usecase"
	"stampcard/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type reportTestEnv struct {
	reportRepo  *mockRepo.MockReportRepository
	permissions *mockUsecase.MockPermissionUsecase
	cache       *mockService.MockReportCache
	service     *reportService
}

var reportNow = time.Date(2026, 3, 15, 10, 30, 20, 0, time.UTC)

func newReportTestEnv(t *testing.T) reportTestEnv {
	env := reportTestEnv{
		reportRepo:  mockRepo.NewMockReportRepository(t),
		permissions: mockUsecase.NewMockPermissionUsecase(t),
		cache:       mockService.NewMockReportCache(t),
	}

	svc, ok := NewReportService(ReportServiceParams{
		ReportRepo:  env.reportRepo,
		Permissions: env.permissions,
		Cache:       env.cache,
		Config:      newTestConfig(),
		Logger:      newDiscardLogger(),
	}).(*reportService)
	require.True(t, ok)
	svc.now = func() time.Time { return reportNow }
	env.service = svc

	return env
}

func TestReportService_Summary_LocationScope(t *testing.T) {
	env := newReportTestEnv(t)
	f := newFixture()
	ctx := context.Background()

	from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC)
	scope := entity.ReportScope{TenantID: f.tenantID, LocationID: &f.locationID}

	env.permissions.EXPECT().Require(ctx, f.actorID, f.locationID, entity.CapabilityViewCustomerData).
		Return(f.staff(entity.AllCapabilities()), nil)
	env.cache.EXPECT().Get(ctx, mock.Anything).Return(nil, false, nil)
	env.reportRepo.EXPECT().CountWindow(ctx, scope, from, to).Return(&entity.ReportCounts{
		NewCustomers:     6,
		StampEvents:      20,
		StampsAwarded:    40,
		StampedCustomers: 8,
		RewardsRedeemed:  1,
		StampsRedeemed:   10,
	}, nil)
	env.reportRepo.EXPECT().CountWindow(ctx, scope, from.Add(-72*time.Hour), from).
		Return(&entity.ReportCounts{NewCustomers: 4}, nil)
	env.reportRepo.EXPECT().DailyBuckets(ctx, scope, from, to).Return([]entity.DailyBucket{
		{Day: time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), StampsAwarded: 40, RewardsRedeemed: 1},
	}, nil)
	env.cache.EXPECT().Set(ctx, mock.Anything, mock.AnythingOfType("*entity.ReportSummary"), mock.Anything).Return(nil)

	summary, err := env.service.Summary(ctx, &usecase.ReportInput{
		ActorID:    f.actorID,
		LocationID: &f.locationID,
		From:       &from,
		To:         &to,
	})
	require.NoError(t, err)

	assert.Equal(t, scope, summary.Scope)
	assert.Equal(t, int64(40), summary.Current.StampsAwarded)
	assert.Equal(t, int64(4), summary.Previous.NewCustomers)
	assert.InDelta(t, 50.0, summary.CustomerGrowthRate, 0.001)
	assert.InDelta(t, 25.0, summary.RedemptionRate, 0.001)
	assert.InDelta(t, 5.0, summary.AverageStampsPerCustomer, 0.001)
	assert.Equal(t, reportNow, summary.GeneratedAt)

	require.Len(t, summary.Daily, 3)
	assert.Equal(t, from, summary.Daily[0].Day)
	assert.Zero(t, summary.Daily[0].StampsAwarded)
	assert.Equal(t, int64(40), summary.Daily[1].StampsAwarded)
	assert.Zero(t, summary.Daily[2].RewardsRedeemed)
}

func TestReportService_Summary_TenantScopeUsesDefaultWindow(t *testing.T) {
	env := newReportTestEnv(t)
	f := newFixture()
	ctx := context.Background()

	to := time.Date(2026, 3, 15, 10, 31, 0, 0, time.UTC)
	from := to.Add(-30 * 24 * time.Hour)
	scope := entity.ReportScope{TenantID: f.tenantID}

	env.permissions.EXPECT().ResolveTenant(ctx, f.actorID, f.tenantID).Return(entity.PermissionSet{
		Kind:     entity.PermissionTenantAdmin,
		TenantID: f.tenantID,
		Flags:    entity.AllCapabilities(),
	}, nil)
	env.cache.EXPECT().Get(ctx, mock.Anything).Return(nil, false, errors.New("redis down"))
	env.reportRepo.EXPECT().CountWindow(ctx, scope, from, to).Return(&entity.ReportCounts{}, nil)
	env.reportRepo.EXPECT().CountWindow(ctx, scope, from.Add(-30*24*time.Hour), from).Return(&entity.ReportCounts{}, nil)
	env.reportRepo.EXPECT().DailyBuckets(ctx, scope, from, to).Return(nil, nil)
	env.cache.EXPECT().Set(ctx, mock.Anything, mock.Anything, mock.Anything).Return(errors.New("redis down"))

	summary, err := env.service.Summary(ctx, &usecase.ReportInput{ActorID: f.actorID, TenantID: &f.tenantID})
	require.NoError(t, err)

	assert.Equal(t, from, summary.From)
	assert.Equal(t, to, summary.To)
	assert.Zero(t, summary.CustomerGrowthRate)
	assert.Zero(t, summary.RedemptionRate)
	assert.Zero(t, summary.AverageStampsPerCustomer)
	assert.Len(t, summary.Daily, 31)
}

func TestReportService_Summary_CacheHit(t *testing.T) {
	env := newReportTestEnv(t)
	f := newFixture()
	ctx := context.Background()
	cached := &entity.ReportSummary{Scope: entity.ReportScope{TenantID: f.tenantID}}

	env.permissions.EXPECT().ResolveTenant(ctx, f.actorID, f.tenantID).Return(entity.PermissionSet{
		Kind:     entity.PermissionTenantAdmin,
		TenantID: f.tenantID,
		Flags:    entity.AllCapabilities(),
	}, nil)
	env.cache.EXPECT().Get(ctx, mock.Anything).Return(cached, true, nil)

	summary, err := env.service.Summary(ctx, &usecase.ReportInput{ActorID: f.actorID, TenantID: &f.tenantID})
	require.NoError(t, err)
	assert.Same(t, cached, summary)
}

func TestReportService_Summary_Rejected(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		setup   func(env reportTestEnv, f fixture) *usecase.ReportInput
		wantErr error
	}{
		{
			name: "no scope",
			setup: func(_ reportTestEnv, f fixture) *usecase.ReportInput {
				return &usecase.ReportInput{ActorID: f.actorID}
			},
			wantErr: domainerrors.ErrValidationFailed,
		},
		{
			name: "tenant report by location staff",
			setup: func(env reportTestEnv, f fixture) *usecase.ReportInput {
				env.permissions.EXPECT().ResolveTenant(ctx, f.actorID, f.tenantID).
					Return(entity.DeniedPermission(), nil)

				return &usecase.ReportInput{ActorID: f.actorID, TenantID: &f.tenantID}
			},
			wantErr: domainerrors.ErrForbidden,
		},
		{
			name: "location of another tenant",
			setup: func(env reportTestEnv, f fixture) *usecase.ReportInput {
				env.permissions.EXPECT().Require(ctx, f.actorID, f.locationID, entity.CapabilityViewCustomerData).
					Return(f.staff(entity.AllCapabilities()), nil)
				other := uuid.New()

				return &usecase.ReportInput{ActorID: f.actorID, TenantID: &other, LocationID: &f.locationID}
			},
			wantErr: domainerrors.ErrCrossTenantViolation,
		},
		{
			name: "inverted window",
			setup: func(env reportTestEnv, f fixture) *usecase.ReportInput {
				env.permissions.EXPECT().Require(ctx, f.actorID, f.locationID, entity.CapabilityViewCustomerData).
					Return(f.staff(entity.AllCapabilities()), nil)

				return &usecase.ReportInput{
					ActorID:    f.actorID,
					LocationID: &f.locationID,
					From:       ptr(reportNow),
					To:         ptr(reportNow.Add(-time.Hour)),
				}
			},
			wantErr: domainerrors.ErrValidationFailed,
		},
		{
			name: "window too long",
			setup: func(env reportTestEnv, f fixture) *usecase.ReportInput {
				env.permissions.EXPECT().Require(ctx, f.actorID, f.locationID, entity.CapabilityViewCustomerData).
					Return(f.staff(entity.AllCapabilities()), nil)

				return &usecase.ReportInput{
					ActorID:    f.actorID,
					LocationID: &f.locationID,
					From:       ptr(reportNow.AddDate(-2, 0, 0)),
					To:         ptr(reportNow),
				}
			},
			wantErr: domainerrors.ErrValidationFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newReportTestEnv(t)
			f := newFixture()

			summary, err := env.service.Summary(ctx, tt.setup(env, f))
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, summary)
		})
	}
}

func TestFillDailyBuckets(t *testing.T) {
	from := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	to := time.Date(2026, 1, 3, 6, 0, 0, 0, time.UTC)

	filled := fillDailyBuckets([]entity.DailyBucket{
		{Day: time.Date(2026, 1, 3, 0, 0, 0, 0, time.UTC), StampsAwarded: 2},
	}, from, to)

	require.Len(t, filled, 3)
	assert.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), filled[0].Day)
	assert.Zero(t, filled[1].StampsAwarded)
	assert.Equal(t, int64(2), filled[2].StampsAwarded)
}
