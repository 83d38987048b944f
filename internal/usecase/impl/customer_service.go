package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"stampcard/config"
	deliverycontext "stampcard/internal/delivery/context"
	"stampcard/internal/domain/entity"
	domainerrors "stampcard/internal/domain/errors"
	"stampcard/internal/domain/repository"
	"stampcard/internal/domain/service"
	"stampcard/internal/errors"
	"stampcard/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/fx"
)

const (
	// maxTokenAttempts bounds retries when a generated QR token collides.
	maxTokenAttempts = 3
	maxHistoryLimit  = 200
)

// customerService implements the CustomerUsecase interface.
type customerService struct {
	txManager    repository.TransactionManager
	customerRepo repository.CustomerRepository
	ledgerRepo   repository.LedgerRepository
	activityRepo repository.ActivityRepository
	locationRepo repository.LocationRepository
	permissions  usecase.PermissionUsecase
	tokens       service.QRTokenGenerator
	qrService    service.QRCodeService
	publisher    service.EventPublisher
	loyalty      *config.LoyaltyConfig
	validate     *validator.Validate
	logger       *slog.Logger
	now          func() time.Time
}

// CustomerServiceParams holds dependencies for CustomerService, injected by Fx.
type CustomerServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	CustomerRepo repository.CustomerRepository
	LedgerRepo   repository.LedgerRepository
	ActivityRepo repository.ActivityRepository
	LocationRepo repository.LocationRepository
	Permissions  usecase.PermissionUsecase
	Tokens       service.QRTokenGenerator
	QRService    service.QRCodeService
	Publisher    service.EventPublisher
	Config       *config.Config
	Logger       *slog.Logger
}

// NewCustomerService creates the customer directory.
func NewCustomerService(params CustomerServiceParams) usecase.CustomerUsecase {
	return &customerService{
		txManager:    params.TxManager,
		customerRepo: params.CustomerRepo,
		ledgerRepo:   params.LedgerRepo,
		activityRepo: params.ActivityRepo,
		locationRepo: params.LocationRepo,
		permissions:  params.Permissions,
		tokens:       params.Tokens,
		qrService:    params.QRService,
		publisher:    params.Publisher,
		loyalty:      loyaltyConfig(params.Config),
		validate:     validator.New(),
		logger:       params.Logger,
		now:          time.Now,
	}
}

// FindOrRegister returns the customer behind a scanned QR token, or registers a new one from contact data.
func (s *customerService) FindOrRegister(ctx context.Context, input *usecase.RegisterCustomerInput) (*usecase.RegisterCustomerOutput, error) {
	location, err := s.resolveLocation(ctx, input.LocationID)
	if err != nil {
		return nil, err
	}

	if _, err := s.permissions.Require(ctx, input.ActorID, input.LocationID, entity.CapabilityRegisterCustomers); err != nil {
		return nil, err
	}

	if qrCode := strings.TrimSpace(input.QRCode); qrCode != "" {
		customer, err := s.customerRepo.FindCustomerByQRCode(ctx, location.TenantID, qrCode)
		switch {
		case err == nil:
			return s.scanExisting(ctx, customer, input)
		case !errors.Is(err, repository.ErrCustomerNotFound):
			return nil, errors.Wrap(err, "failed to find customer by qr code")
		case input.CustomerData == nil:
			return nil, domainerrors.ErrCustomerNotFound
		}
		// Unknown tokens are never adopted as new identities; a fresh token is issued below.
	}

	if input.CustomerData == nil {
		return nil, domainerrors.NewValidationError("qr_code or customer_data is required")
	}

	data, err := s.normalizeCustomerData(input.CustomerData)
	if err != nil {
		return nil, err
	}

	customer, err := s.register(ctx, location, input, data)
	if err != nil {
		return nil, err
	}

	return &usecase.RegisterCustomerOutput{Customer: customer, Created: true}, nil
}

func (s *customerService) resolveLocation(ctx context.Context, locationID uuid.UUID) (*entity.Location, error) {
	location, err := s.locationRepo.FindLocationByID(ctx, locationID)
	if err != nil {
		if errors.Is(err, repository.ErrLocationNotFound) {
			return nil, domainerrors.ErrInvalidLocation
		}

		return nil, errors.Wrap(err, "failed to load location")
	}

	tenant, err := s.locationRepo.FindTenantByID(ctx, location.TenantID)
	if err != nil {
		if errors.Is(err, repository.ErrTenantNotFound) {
			return nil, domainerrors.ErrInvalidLocation
		}

		return nil, errors.Wrap(err, "failed to load tenant")
	}

	if !location.Status.IsActive() || !tenant.Status.IsActive() {
		return nil, domainerrors.ErrInvalidLocation
	}

	return location, nil
}

func (s *customerService) scanExisting(ctx context.Context, customer *entity.Customer, input *usecase.RegisterCustomerInput) (*usecase.RegisterCustomerOutput, error) {
	if customer.IsBlocked() {
		return nil, domainerrors.ErrCustomerBlocked
	}

	activity := newActivity(customer, input.LocationID, input.ActorID, entity.ActivityRegistrationScan,
		"qr code scanned at registration", s.now())
	if err := s.activityRepo.CreateActivity(ctx, activity); err != nil {
		return nil, errors.Wrap(err, "failed to record activity")
	}

	return &usecase.RegisterCustomerOutput{Customer: customer, Created: false}, nil
}

func (s *customerService) normalizeCustomerData(data *usecase.CustomerData) (*usecase.CustomerData, error) {
	normalized := &usecase.CustomerData{
		Name:  strings.TrimSpace(data.Name),
		Email: strings.ToLower(strings.TrimSpace(data.Email)),
		Phone: strings.TrimSpace(data.Phone),
	}

	if normalized.Name == "" || normalized.Email == "" || normalized.Phone == "" {
		return nil, domainerrors.NewValidationError("name, email and phone are required")
	}
	if err := s.validate.Var(normalized.Email, "email"); err != nil {
		return nil, domainerrors.NewValidationError("email must be a valid email address")
	}

	return normalized, nil
}

func (s *customerService) register(ctx context.Context, location *entity.Location, input *usecase.RegisterCustomerInput, data *usecase.CustomerData) (*entity.Customer, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)

	for attempt := 1; attempt <= maxTokenAttempts; attempt++ {
		token, err := s.tokens.NewToken()
		if err != nil {
			return nil, errors.Wrap(err, "failed to generate qr token")
		}

		now := s.now()
		homeLocationID := location.ID
		customer := &entity.Customer{
			ID:             uuid.New(),
			TenantID:       location.TenantID,
			HomeLocationID: &homeLocationID,
			Name:           data.Name,
			Email:          &data.Email,
			Phone:          &data.Phone,
			QRCode:         token,
			Status:         entity.CustomerStatusActive,
			CreatedAt:      now,
			UpdatedAt:      now,
		}

		err = s.txManager.Execute(ctx, func(txRepoFactory repository.RepositoryFactory) error {
			if err := txRepoFactory.NewCustomerRepository().CreateCustomer(ctx, customer); err != nil {
				return err
			}

			activity := newActivity(customer, location.ID, input.ActorID, entity.ActivityNewRegistration,
				"registered "+customer.Name, now)

			return txRepoFactory.NewActivityRepository().CreateActivity(ctx, activity)
		})
		if errors.Is(err, repository.ErrDuplicateQRCode) {
			logger.Warn("QR token collision, retrying", slog.Int("attempt", attempt))

			continue
		}
		if err != nil {
			logger.Error("Failed to register customer", slog.Any("error", err))

			return nil, domainerrors.ErrCustomerCreationFailed.WrapMessage(err.Error())
		}

		logger.Info("Customer registered",
			slog.String("customer_id", customer.ID.String()),
			slog.String("location_id", location.ID.String()),
		)

		publishEvent(ctx, s.publisher, s.logger, &service.LoyaltyEvent{
			Type:       service.EventCustomerRegistered,
			TenantID:   customer.TenantID.String(),
			LocationID: location.ID.String(),
			CustomerID: customer.ID.String(),
			ActorID:    input.ActorID.String(),
			OccurredAt: now,
		})

		return customer, nil
	}

	return nil, domainerrors.ErrCustomerCreationFailed.WithDetails(
		fmt.Sprintf("qr token collided %d times", maxTokenAttempts))
}

// Lookup searches the location's tenant by exactly one contact key.
func (s *customerService) Lookup(ctx context.Context, input *usecase.LookupCustomerInput) ([]*entity.CustomerWithTotals, error) {
	perm, err := s.permissions.Require(ctx, input.ActorID, input.LocationID, entity.CapabilityViewCustomerData)
	if err != nil {
		return nil, err
	}

	query := repository.CustomerQuery{
		QRCode: strings.TrimSpace(input.QRCode),
		Phone:  strings.TrimSpace(input.Phone),
		Email:  strings.ToLower(strings.TrimSpace(input.Email)),
	}

	keys := 0
	for _, key := range []string{query.QRCode, query.Phone, query.Email} {
		if key != "" {
			keys++
		}
	}
	if keys != 1 {
		return nil, domainerrors.NewValidationError("exactly one of qr_code, phone or email is required")
	}

	customers, err := s.customerRepo.FindCustomers(ctx, perm.TenantID, query, s.loyalty.LookupLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to search customers")
	}
	if len(customers) == 0 {
		return nil, domainerrors.ErrCustomerNotFound
	}

	ids := make([]uuid.UUID, 0, len(customers))
	for _, customer := range customers {
		ids = append(ids, customer.ID)
	}

	totals, err := s.ledgerRepo.GetTotalsByCustomers(ctx, ids)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load ledger totals")
	}

	results := make([]*entity.CustomerWithTotals, 0, len(customers))
	for _, customer := range customers {
		t := totals[customer.ID]
		results = append(results, &entity.CustomerWithTotals{
			Customer:     customer,
			TotalStamps:  max(t.Balance(), 0),
			TotalRewards: t.RewardCount,
		})
	}

	return results, nil
}

// UpdateStatus changes a customer's lifecycle status and records the change.
func (s *customerService) UpdateStatus(ctx context.Context, input *usecase.UpdateCustomerStatusInput) (*entity.Customer, error) {
	perm, err := s.permissions.Require(ctx, input.ActorID, input.LocationID, entity.CapabilityRegisterCustomers)
	if err != nil {
		return nil, err
	}

	if !input.Status.IsValid() {
		return nil, domainerrors.NewValidationError("status must be one of active, inactive, blocked")
	}

	customer, err := loadCustomer(ctx, s.customerRepo, perm, input.CustomerID)
	if err != nil {
		return nil, err
	}

	if customer.Status == input.Status {
		return customer, nil
	}

	now := s.now()
	previous := customer.Status
	err = s.txManager.Execute(ctx, func(txRepoFactory repository.RepositoryFactory) error {
		if err := txRepoFactory.NewCustomerRepository().UpdateCustomerStatus(ctx, customer.ID, input.Status); err != nil {
			return errors.Wrap(err, "failed to update customer status")
		}

		activity := newActivity(customer, input.LocationID, input.ActorID, entity.ActivityStatusChanged,
			fmt.Sprintf("status changed from %s to %s", previous, input.Status), now)

		return errors.Wrap(txRepoFactory.NewActivityRepository().CreateActivity(ctx, activity), "failed to record activity")
	})
	if err != nil {
		return nil, err
	}

	customer.Status = input.Status
	customer.UpdatedAt = now

	deliverycontext.GetLoggerOrDefault(ctx, s.logger).Info("Customer status changed",
		slog.String("customer_id", customer.ID.String()),
		slog.String("from", previous.String()),
		slog.String("to", input.Status.String()),
	)

	return customer, nil
}

// RenderQRCode encodes the customer's QR token as a PNG.
func (s *customerService) RenderQRCode(ctx context.Context, actorID, locationID, customerID uuid.UUID) ([]byte, error) {
	perm, err := s.permissions.Require(ctx, actorID, locationID, entity.CapabilityViewCustomerData)
	if err != nil {
		return nil, err
	}

	customer, err := loadCustomer(ctx, s.customerRepo, perm, customerID)
	if err != nil {
		return nil, err
	}

	png, err := s.qrService.GenerateCustomerQR(customer.QRCode)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render qr code")
	}

	return png, nil
}

// History returns the newest ledger entries with the balance summary at the location's current threshold.
func (s *customerService) History(ctx context.Context, actorID, locationID, customerID uuid.UUID, limit int) (*entity.CustomerHistory, error) {
	perm, err := s.permissions.Require(ctx, actorID, locationID, entity.CapabilityViewCustomerData)
	if err != nil {
		return nil, err
	}

	customer, err := loadCustomer(ctx, s.customerRepo, perm, customerID)
	if err != nil {
		return nil, err
	}

	if limit <= 0 {
		limit = s.loyalty.HistoryLimit
	}
	limit = min(limit, maxHistoryLimit)

	settings, err := loadSettings(ctx, s.locationRepo, s.loyalty, locationID)
	if err != nil {
		return nil, err
	}

	totals, err := s.ledgerRepo.GetTotals(ctx, customer.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load ledger totals")
	}

	stampEvents, err := s.ledgerRepo.ListStampEvents(ctx, customer.ID, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list stamp events")
	}

	rewardEvents, err := s.ledgerRepo.ListRewardEvents(ctx, customer.ID, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reward events")
	}

	progress := entity.NewCardProgress(totals.Balance(), settings.StampsForReward)

	return &entity.CustomerHistory{
		Customer:            customer,
		StampEvents:         stampEvents,
		RewardEvents:        rewardEvents,
		TotalStamps:         progress.Balance,
		TotalRewards:        totals.RewardCount,
		AvailableRewards:    progress.AvailableRewards,
		StampsForNextReward: progress.StampsForNextReward,
	}, nil
}
