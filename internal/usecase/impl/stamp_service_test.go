package impl

import (
	"context"
	"errors"
	"testing"

	"stampcard/internal/domain/entity"
	domainerrors "stampcard/internal/domain/errors"
	"stampcard/internal/domain/repository"
	"stampcard/internal/domain/service"
	mockRepo "stampcard/internal/mocks/repository"
	mockService "stampcard/internal/mocks/service"
	mockUsecase "stampcard/internal/mocks/usecase"
	"stampcard/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type stampTestEnv struct {
	store        *fakeStore
	locationRepo *mockRepo.MockLocationRepository
	permissions  *mockUsecase.MockPermissionUsecase
	publisher    *mockService.MockEventPublisher
	service      usecase.StampUsecase
}

func newStampTestEnv(t *testing.T) stampTestEnv {
	store := newFakeStore()
	locationRepo := mockRepo.NewMockLocationRepository(t)
	permissions := mockUsecase.NewMockPermissionUsecase(t)
	publisher := mockService.NewMockEventPublisher(t)

	return stampTestEnv{
		store:        store,
		locationRepo: locationRepo,
		permissions:  permissions,
		publisher:    publisher,
		service: NewStampService(StampServiceParams{
			TxManager:    store,
			CustomerRepo: store,
			LocationRepo: locationRepo,
			Permissions:  permissions,
			Publisher:    publisher,
			Config:       newTestConfig(),
			Logger:       newDiscardLogger(),
		}),
	}
}

func TestStampService_AwardStamps_Success(t *testing.T) {
	env := newStampTestEnv(t)
	f := newFixture()
	ctx := context.Background()
	alice := env.store.addCustomer(f.customer("Alice", "555-0001"))
	amount := 12.5

	env.permissions.EXPECT().Require(ctx, f.actorID, f.locationID, entity.CapabilityAddStamps).
		Return(f.staff(entity.CapabilityFlags{CanAddStamps: true}), nil)
	env.locationRepo.EXPECT().FindSettingsByLocation(ctx, f.locationID).Return(f.settings(10, 5), nil)
	env.publisher.EXPECT().PublishLoyaltyEvent(ctx, mock.MatchedBy(func(e *service.LoyaltyEvent) bool {
		return e.Type == service.EventStampsAwarded && e.Stamps == 3 && e.Balance == 3 && e.CustomerID == alice.ID.String()
	})).Return(nil)

	result, err := env.service.AwardStamps(ctx, &usecase.AwardStampsInput{
		ActorID:        f.actorID,
		CustomerID:     alice.ID,
		LocationID:     f.locationID,
		Stamps:         3,
		PurchaseAmount: &amount,
	})
	require.NoError(t, err)

	assert.Equal(t, 3, result.Event.Stamps)
	assert.Equal(t, f.actorID, result.Event.ActorID)
	assert.Equal(t, f.tenantID, result.Event.TenantID)
	assert.Equal(t, entity.CardProgress{Balance: 3, AvailableRewards: 0, StampsForNextReward: 7}, result.Progress)

	activities := env.store.activitiesFor(alice.ID)
	require.Len(t, activities, 1)
	assert.Equal(t, entity.ActivityStampsAwarded, activities[0].Action)
}

func TestStampService_AwardStamps_ProgressAcrossThreshold(t *testing.T) {
	env := newStampTestEnv(t)
	f := newFixture()
	ctx := context.Background()
	bob := env.store.addCustomer(f.customer("Bob", "555-0002"))
	env.store.addStamps(bob, 9)

	env.permissions.EXPECT().Require(ctx, f.actorID, f.locationID, entity.CapabilityAddStamps).
		Return(f.staff(entity.CapabilityFlags{CanAddStamps: true}), nil)
	env.locationRepo.EXPECT().FindSettingsByLocation(ctx, f.locationID).Return(f.settings(10, 5), nil)
	env.publisher.EXPECT().PublishLoyaltyEvent(ctx, mock.Anything).Return(nil)

	result, err := env.service.AwardStamps(ctx, &usecase.AwardStampsInput{
		ActorID: f.actorID, CustomerID: bob.ID, LocationID: f.locationID, Stamps: 3,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.CardProgress{Balance: 12, AvailableRewards: 1, StampsForNextReward: 8}, result.Progress)
}

func TestStampService_AwardStamps_UsesDefaultsWithoutSettings(t *testing.T) {
	env := newStampTestEnv(t)
	f := newFixture()
	ctx := context.Background()
	alice := env.store.addCustomer(f.customer("Alice", "555-0001"))

	env.permissions.EXPECT().Require(ctx, f.actorID, f.locationID, entity.CapabilityAddStamps).
		Return(f.staff(entity.CapabilityFlags{CanAddStamps: true}), nil)
	env.locationRepo.EXPECT().FindSettingsByLocation(ctx, f.locationID).Return(nil, repository.ErrSettingsNotFound)

	_, err := env.service.AwardStamps(ctx, &usecase.AwardStampsInput{
		ActorID: f.actorID, CustomerID: alice.ID, LocationID: f.locationID, Stamps: 6,
	})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
	assert.Contains(t, appErr.Message(), "between 1 and 5")
}

func TestStampService_AwardStamps_Preconditions(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		stamps  int
		amount  *float64
		setup   func(env stampTestEnv, f fixture) uuid.UUID
		wantErr error
	}{
		{
			name:   "actor lacks can_add_stamps",
			stamps: 1,
			setup: func(env stampTestEnv, f fixture) uuid.UUID {
				env.permissions.EXPECT().Require(ctx, f.actorID, f.locationID, entity.CapabilityAddStamps).
					Return(f.staff(entity.CapabilityFlags{}), domainerrors.ErrForbidden)

				return uuid.New()
			},
			wantErr: domainerrors.ErrForbidden,
		},
		{
			name:   "customer missing",
			stamps: 1,
			setup: func(env stampTestEnv, f fixture) uuid.UUID {
				env.permissions.EXPECT().Require(ctx, f.actorID, f.locationID, entity.CapabilityAddStamps).
					Return(f.staff(entity.CapabilityFlags{CanAddStamps: true}), nil)

				return uuid.New()
			},
			wantErr: domainerrors.ErrCustomerNotFound,
		},
		{
			name:   "customer blocked",
			stamps: 1,
			setup: func(env stampTestEnv, f fixture) uuid.UUID {
				env.permissions.EXPECT().Require(ctx, f.actorID, f.locationID, entity.CapabilityAddStamps).
					Return(f.staff(entity.CapabilityFlags{CanAddStamps: true}), nil)
				c := f.customer("Mallory", "555-0666")
				c.Status = entity.CustomerStatusBlocked

				return env.store.addCustomer(c).ID
			},
			wantErr: domainerrors.ErrCustomerBlocked,
		},
		{
			name:   "customer inactive",
			stamps: 1,
			setup: func(env stampTestEnv, f fixture) uuid.UUID {
				env.permissions.EXPECT().Require(ctx, f.actorID, f.locationID, entity.CapabilityAddStamps).
					Return(f.staff(entity.CapabilityFlags{CanAddStamps: true}), nil)
				c := f.customer("Dormant", "555-0404")
				c.Status = entity.CustomerStatusInactive

				return env.store.addCustomer(c).ID
			},
			wantErr: domainerrors.ErrCustomerInactive,
		},
		{
			name:   "customer of another tenant",
			stamps: 1,
			setup: func(env stampTestEnv, f fixture) uuid.UUID {
				env.permissions.EXPECT().Require(ctx, f.actorID, f.locationID, entity.CapabilityAddStamps).
					Return(f.staff(entity.CapabilityFlags{CanAddStamps: true}), nil)
				other := newFixture()

				return env.store.addCustomer(other.customer("Eve", "555-0005")).ID
			},
			wantErr: domainerrors.ErrCrossTenantViolation,
		},
		{
			name:   "eight stamps against a cap of five",
			stamps: 8,
			setup: func(env stampTestEnv, f fixture) uuid.UUID {
				env.permissions.EXPECT().Require(ctx, f.actorID, f.locationID, entity.CapabilityAddStamps).
					Return(f.staff(entity.CapabilityFlags{CanAddStamps: true}), nil)
				env.locationRepo.EXPECT().FindSettingsByLocation(ctx, f.locationID).Return(f.settings(10, 5), nil)

				return env.store.addCustomer(f.customer("Alice", "555-0001")).ID
			},
			wantErr: domainerrors.ErrValidationFailed,
		},
		{
			name:   "zero stamps",
			stamps: 0,
			setup: func(env stampTestEnv, f fixture) uuid.UUID {
				env.permissions.EXPECT().Require(ctx, f.actorID, f.locationID, entity.CapabilityAddStamps).
					Return(f.staff(entity.CapabilityFlags{CanAddStamps: true}), nil)
				env.locationRepo.EXPECT().FindSettingsByLocation(ctx, f.locationID).Return(f.settings(10, 5), nil)

				return env.store.addCustomer(f.customer("Alice", "555-0001")).ID
			},
			wantErr: domainerrors.ErrValidationFailed,
		},
		{
			name:   "purchase below the minimum",
			stamps: 1,
			amount: ptr(3.0),
			setup: func(env stampTestEnv, f fixture) uuid.UUID {
				env.permissions.EXPECT().Require(ctx, f.actorID, f.locationID, entity.CapabilityAddStamps).
					Return(f.staff(entity.CapabilityFlags{CanAddStamps: true}), nil)
				settings := f.settings(10, 5)
				settings.MinPurchaseAmount = ptr(5.0)
				env.locationRepo.EXPECT().FindSettingsByLocation(ctx, f.locationID).Return(settings, nil)

				return env.store.addCustomer(f.customer("Alice", "555-0001")).ID
			},
			wantErr: domainerrors.ErrValidationFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newStampTestEnv(t)
			f := newFixture()
			customerID := tt.setup(env, f)

			result, err := env.service.AwardStamps(ctx, &usecase.AwardStampsInput{
				ActorID:        f.actorID,
				CustomerID:     customerID,
				LocationID:     f.locationID,
				Stamps:         tt.stamps,
				PurchaseAmount: tt.amount,
			})
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, result)
			assert.Zero(t, env.store.balance(customerID))
			assert.Empty(t, env.store.activitiesFor(customerID))
		})
	}
}

func TestStampService_AwardStamps_PublishFailureIsNotFatal(t *testing.T) {
	env := newStampTestEnv(t)
	f := newFixture()
	ctx := context.Background()
	alice := env.store.addCustomer(f.customer("Alice", "555-0001"))

	env.permissions.EXPECT().Require(ctx, f.actorID, f.locationID, entity.CapabilityAddStamps).
		Return(f.staff(entity.CapabilityFlags{CanAddStamps: true}), nil)
	env.locationRepo.EXPECT().FindSettingsByLocation(ctx, f.locationID).Return(f.settings(10, 5), nil)
	env.publisher.EXPECT().PublishLoyaltyEvent(ctx, mock.Anything).Return(errors.New("broker down"))

	result, err := env.service.AwardStamps(ctx, &usecase.AwardStampsInput{
		ActorID: f.actorID, CustomerID: alice.ID, LocationID: f.locationID, Stamps: 2,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, result.Progress.Balance)
	assert.Equal(t, 2, env.store.balance(alice.ID))
}
