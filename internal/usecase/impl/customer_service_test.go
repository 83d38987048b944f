package impl

import (
	"context"
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

type customerTestEnv struct {
	store        *fakeStore
	locationRepo *mockRepo.MockLocationRepository
	permissions  *mockUsecase.MockPermissionUsecase
	tokens       *mockService.MockQRTokenGenerator
	qrService    *mockService.MockQRCodeService
	publisher    *mockService.MockEventPublisher
	service      usecase.CustomerUsecase
}

func newCustomerTestEnv(t *testing.T) customerTestEnv {
	store := newFakeStore()
	env := customerTestEnv{
		store:        store,
		locationRepo: mockRepo.NewMockLocationRepository(t),
		permissions:  mockUsecase.NewMockPermissionUsecase(t),
		tokens:       mockService.NewMockQRTokenGenerator(t),
		qrService:    mockService.NewMockQRCodeService(t),
		publisher:    mockService.NewMockEventPublisher(t),
	}
	env.service = NewCustomerService(CustomerServiceParams{
		TxManager:    store,
		CustomerRepo: store,
		LedgerRepo:   store,
		ActivityRepo: store,
		LocationRepo: env.locationRepo,
		Permissions:  env.permissions,
		Tokens:       env.tokens,
		QRService:    env.qrService,
		Publisher:    env.publisher,
		Config:       newTestConfig(),
		Logger:       newDiscardLogger(),
	})

	return env
}

func (env customerTestEnv) expectLocation(f fixture) {
	env.locationRepo.EXPECT().FindLocationByID(mock.Anything, f.locationID).Return(f.location(), nil)
	env.locationRepo.EXPECT().FindTenantByID(mock.Anything, f.tenantID).Return(f.tenant(), nil)
}

func (env customerTestEnv) allow(f fixture, capability entity.Capability) {
	env.permissions.EXPECT().Require(mock.Anything, f.actorID, f.locationID, capability).
		Return(f.staff(entity.AllCapabilities()), nil)
}

func TestCustomerService_FindOrRegister_NewCustomer(t *testing.T) {
	env := newCustomerTestEnv(t)
	f := newFixture()
	ctx := context.Background()
	env.expectLocation(f)
	env.allow(f, entity.CapabilityRegisterCustomers)
	env.tokens.EXPECT().NewToken().Return("lq2x9k0abcdefghijkl", nil).Once()
	env.publisher.EXPECT().PublishLoyaltyEvent(ctx, mock.MatchedBy(func(e *service.LoyaltyEvent) bool {
		return e.Type == service.EventCustomerRegistered && e.TenantID == f.tenantID.String()
	})).Return(nil)

	out, err := env.service.FindOrRegister(ctx, &usecase.RegisterCustomerInput{
		ActorID:    f.actorID,
		LocationID: f.locationID,
		CustomerData: &usecase.CustomerData{
			Name:  "Alice",
			Email: " A@X.com ",
			Phone: "555-0001",
		},
	})
	require.NoError(t, err)
	require.True(t, out.Created)

	customer := out.Customer
	assert.Equal(t, "lq2x9k0abcdefghijkl", customer.QRCode)
	assert.Equal(t, entity.CustomerStatusActive, customer.Status)
	assert.Equal(t, f.tenantID, customer.TenantID)
	require.NotNil(t, customer.HomeLocationID)
	assert.Equal(t, f.locationID, *customer.HomeLocationID)
	assert.Equal(t, "a@x.com", *customer.Email)

	activities := env.store.activitiesFor(customer.ID)
	require.Len(t, activities, 1)
	assert.Equal(t, entity.ActivityNewRegistration, activities[0].Action)
}

func TestCustomerService_FindOrRegister_RetriesTokenCollision(t *testing.T) {
	env := newCustomerTestEnv(t)
	f := newFixture()
	ctx := context.Background()
	existing := f.customer("Bob", "555-0002")
	existing.QRCode = "taken"
	env.store.addCustomer(existing)

	env.expectLocation(f)
	env.allow(f, entity.CapabilityRegisterCustomers)
	env.tokens.EXPECT().NewToken().Return("taken", nil).Twice()
	env.tokens.EXPECT().NewToken().Return("fresh", nil).Once()
	env.publisher.EXPECT().PublishLoyaltyEvent(ctx, mock.Anything).Return(nil)

	out, err := env.service.FindOrRegister(ctx, &usecase.RegisterCustomerInput{
		ActorID:      f.actorID,
		LocationID:   f.locationID,
		CustomerData: &usecase.CustomerData{Name: "Alice", Email: "a@x.com", Phone: "555-0001"},
	})
	require.NoError(t, err)
	assert.Equal(t, "fresh", out.Customer.QRCode)
	assert.Len(t, env.store.activitiesFor(out.Customer.ID), 1)
}

func TestCustomerService_FindOrRegister_GivesUpAfterThreeCollisions(t *testing.T) {
	env := newCustomerTestEnv(t)
	f := newFixture()
	existing := f.customer("Bob", "555-0002")
	existing.QRCode = "taken"
	env.store.addCustomer(existing)

	env.expectLocation(f)
	env.allow(f, entity.CapabilityRegisterCustomers)
	env.tokens.EXPECT().NewToken().Return("taken", nil).Times(3)

	_, err := env.service.FindOrRegister(context.Background(), &usecase.RegisterCustomerInput{
		ActorID:      f.actorID,
		LocationID:   f.locationID,
		CustomerData: &usecase.CustomerData{Name: "Alice", Email: "a@x.com", Phone: "555-0001"},
	})
	assert.ErrorIs(t, err, domainerrors.ErrCustomerCreationFailed)
}

func TestCustomerService_FindOrRegister_ScanExisting(t *testing.T) {
	env := newCustomerTestEnv(t)
	f := newFixture()
	ctx := context.Background()
	inactive := f.customer("Carol", "555-0003")
	inactive.Status = entity.CustomerStatusInactive
	env.store.addCustomer(inactive)

	env.expectLocation(f)
	env.allow(f, entity.CapabilityRegisterCustomers)

	input := &usecase.RegisterCustomerInput{ActorID: f.actorID, LocationID: f.locationID, QRCode: inactive.QRCode}

	first, err := env.service.FindOrRegister(ctx, input)
	require.NoError(t, err)
	assert.False(t, first.Created)
	assert.Equal(t, entity.CustomerStatusInactive, first.Customer.Status)

	second, err := env.service.FindOrRegister(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, first.Customer, second.Customer)

	activities := env.store.activitiesFor(inactive.ID)
	require.Len(t, activities, 2)
	assert.Equal(t, entity.ActivityRegistrationScan, activities[0].Action)
}

func TestCustomerService_FindOrRegister_Failures(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		setup   func(env customerTestEnv, f fixture) *usecase.RegisterCustomerInput
		wantErr error
	}{
		{
			name: "unknown location",
			setup: func(env customerTestEnv, f fixture) *usecase.RegisterCustomerInput {
				env.locationRepo.EXPECT().FindLocationByID(ctx, f.locationID).Return(nil, repository.ErrLocationNotFound)

				return &usecase.RegisterCustomerInput{ActorID: f.actorID, LocationID: f.locationID, QRCode: "x"}
			},
			wantErr: domainerrors.ErrInvalidLocation,
		},
		{
			name: "forbidden",
			setup: func(env customerTestEnv, f fixture) *usecase.RegisterCustomerInput {
				env.expectLocation(f)
				env.permissions.EXPECT().Require(ctx, f.actorID, f.locationID, entity.CapabilityRegisterCustomers).
					Return(f.staff(entity.CapabilityFlags{}), domainerrors.ErrForbidden)

				return &usecase.RegisterCustomerInput{ActorID: f.actorID, LocationID: f.locationID, QRCode: "x"}
			},
			wantErr: domainerrors.ErrForbidden,
		},
		{
			name: "blocked customer",
			setup: func(env customerTestEnv, f fixture) *usecase.RegisterCustomerInput {
				env.expectLocation(f)
				env.allow(f, entity.CapabilityRegisterCustomers)
				blocked := f.customer("Mallory", "555-0666")
				blocked.Status = entity.CustomerStatusBlocked
				env.store.addCustomer(blocked)

				return &usecase.RegisterCustomerInput{ActorID: f.actorID, LocationID: f.locationID, QRCode: blocked.QRCode}
			},
			wantErr: domainerrors.ErrCustomerBlocked,
		},
		{
			name: "unknown token without customer data",
			setup: func(env customerTestEnv, f fixture) *usecase.RegisterCustomerInput {
				env.expectLocation(f)
				env.allow(f, entity.CapabilityRegisterCustomers)

				return &usecase.RegisterCustomerInput{ActorID: f.actorID, LocationID: f.locationID, QRCode: "nope"}
			},
			wantErr: domainerrors.ErrCustomerNotFound,
		},
		{
			name: "token of another tenant is not visible",
			setup: func(env customerTestEnv, f fixture) *usecase.RegisterCustomerInput {
				env.expectLocation(f)
				env.allow(f, entity.CapabilityRegisterCustomers)
				other := env.store.addCustomer(newFixture().customer("Eve", "555-0005"))

				return &usecase.RegisterCustomerInput{ActorID: f.actorID, LocationID: f.locationID, QRCode: other.QRCode}
			},
			wantErr: domainerrors.ErrCustomerNotFound,
		},
		{
			name: "missing phone",
			setup: func(env customerTestEnv, f fixture) *usecase.RegisterCustomerInput {
				env.expectLocation(f)
				env.allow(f, entity.CapabilityRegisterCustomers)

				return &usecase.RegisterCustomerInput{
					ActorID:      f.actorID,
					LocationID:   f.locationID,
					CustomerData: &usecase.CustomerData{Name: "Alice", Email: "a@x.com"},
				}
			},
			wantErr: domainerrors.ErrValidationFailed,
		},
		{
			name: "malformed email",
			setup: func(env customerTestEnv, f fixture) *usecase.RegisterCustomerInput {
				env.expectLocation(f)
				env.allow(f, entity.CapabilityRegisterCustomers)

				return &usecase.RegisterCustomerInput{
					ActorID:      f.actorID,
					LocationID:   f.locationID,
					CustomerData: &usecase.CustomerData{Name: "Alice", Email: "not-an-email", Phone: "555-0001"},
				}
			},
			wantErr: domainerrors.ErrValidationFailed,
		},
		{
			name: "neither token nor data",
			setup: func(env customerTestEnv, f fixture) *usecase.RegisterCustomerInput {
				env.expectLocation(f)
				env.allow(f, entity.CapabilityRegisterCustomers)

				return &usecase.RegisterCustomerInput{ActorID: f.actorID, LocationID: f.locationID}
			},
			wantErr: domainerrors.ErrValidationFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newCustomerTestEnv(t)
			f := newFixture()
			input := tt.setup(env, f)

			out, err := env.service.FindOrRegister(ctx, input)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, out)
		})
	}
}

func TestCustomerService_Lookup_IsTenantScoped(t *testing.T) {
	env := newCustomerTestEnv(t)
	f := newFixture()
	ctx := context.Background()
	alice := env.store.addCustomer(f.customer("Alice", "555-0001"))
	env.store.addStamps(alice, 7)
	env.store.addCustomer(newFixture().customer("Alicia", "555-0001"))
	env.allow(f, entity.CapabilityViewCustomerData)

	results, err := env.service.Lookup(ctx, &usecase.LookupCustomerInput{
		ActorID:    f.actorID,
		LocationID: f.locationID,
		Phone:      "555-0001",
	})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, alice.ID, results[0].ID)
	assert.Equal(t, 7, results[0].TotalStamps)
	assert.Zero(t, results[0].TotalRewards)
}

func TestCustomerService_Lookup_Failures(t *testing.T) {
	ctx := context.Background()

	t.Run("two keys", func(t *testing.T) {
		env := newCustomerTestEnv(t)
		f := newFixture()
		env.allow(f, entity.CapabilityViewCustomerData)

		_, err := env.service.Lookup(ctx, &usecase.LookupCustomerInput{
			ActorID: f.actorID, LocationID: f.locationID, Phone: "555-0001", Email: "a@x.com",
		})
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("no match", func(t *testing.T) {
		env := newCustomerTestEnv(t)
		f := newFixture()
		env.allow(f, entity.CapabilityViewCustomerData)

		_, err := env.service.Lookup(ctx, &usecase.LookupCustomerInput{
			ActorID: f.actorID, LocationID: f.locationID, Email: "nobody@x.com",
		})
		assert.ErrorIs(t, err, domainerrors.ErrCustomerNotFound)
	})
}

func TestCustomerService_UpdateStatus(t *testing.T) {
	env := newCustomerTestEnv(t)
	f := newFixture()
	ctx := context.Background()
	alice := env.store.addCustomer(f.customer("Alice", "555-0001"))
	env.allow(f, entity.CapabilityRegisterCustomers)

	updated, err := env.service.UpdateStatus(ctx, &usecase.UpdateCustomerStatusInput{
		ActorID:    f.actorID,
		LocationID: f.locationID,
		CustomerID: alice.ID,
		Status:     entity.CustomerStatusBlocked,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.CustomerStatusBlocked, updated.Status)

	stored, err := env.store.FindCustomerByID(ctx, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.CustomerStatusBlocked, stored.Status)

	activities := env.store.activitiesFor(alice.ID)
	require.Len(t, activities, 1)
	assert.Equal(t, entity.ActivityStatusChanged, activities[0].Action)

	_, err = env.service.UpdateStatus(ctx, &usecase.UpdateCustomerStatusInput{
		ActorID:    f.actorID,
		LocationID: f.locationID,
		CustomerID: alice.ID,
		Status:     entity.CustomerStatus("deleted"),
	})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestCustomerService_RenderQRCode(t *testing.T) {
	env := newCustomerTestEnv(t)
	f := newFixture()
	ctx := context.Background()
	alice := env.store.addCustomer(f.customer("Alice", "555-0001"))
	env.allow(f, entity.CapabilityViewCustomerData)
	env.qrService.EXPECT().GenerateCustomerQR(alice.QRCode).Return([]byte{0x89, 'P', 'N', 'G'}, nil)

	png, err := env.service.RenderQRCode(ctx, f.actorID, f.locationID, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png)

	_, err = env.service.RenderQRCode(ctx, f.actorID, f.locationID, uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrCustomerNotFound)
}

func TestCustomerService_History(t *testing.T) {
	env := newCustomerTestEnv(t)
	f := newFixture()
	ctx := context.Background()
	alice := env.store.addCustomer(f.customer("Alice", "555-0001"))
	env.store.addStamps(alice, 4)
	env.store.addStamps(alice, 9)
	env.allow(f, entity.CapabilityViewCustomerData)
	env.locationRepo.EXPECT().FindSettingsByLocation(ctx, f.locationID).Return(f.settings(10, 5), nil)

	history, err := env.service.History(ctx, f.actorID, f.locationID, alice.ID, 1)
	require.NoError(t, err)
	require.Len(t, history.StampEvents, 1)
	assert.Equal(t, 9, history.StampEvents[0].Stamps)
	assert.Empty(t, history.RewardEvents)
	assert.Equal(t, 13, history.TotalStamps)
	assert.Equal(t, 1, history.AvailableRewards)
	assert.Equal(t, 7, history.StampsForNextReward)
}
