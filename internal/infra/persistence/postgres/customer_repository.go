package postgres

import (
	"context"
	"time"

	"stampcard/internal/domain/entity"
	domainerrors "stampcard/internal/domain/errors"
	"stampcard/internal/domain/repository"
	"stampcard/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

// customerRepository implements the repository.CustomerRepository interface.
type customerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository is the constructor for customerRepository.
func NewCustomerRepository(db *gorm.DB) repository.CustomerRepository {
	return &customerRepository{
		db: db,
	}
}

// CreateCustomer persists a new customer.
func (repo *customerRepository) CreateCustomer(ctx context.Context, customer *entity.Customer) error {
	customerM := fromCustomerDomain(customer)

	if err := repo.db.WithContext(ctx).Create(customerM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateQRCode
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrCustomerCreationFailed.WrapMessage("invalid tenant or location reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrCustomerCreationFailed.WrapMessage("missing required customer information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create customer")
	}

	customer.ID = customerM.ID
	customer.CreatedAt = customerM.CreatedAt
	customer.UpdatedAt = customerM.UpdatedAt

	return nil
}

// FindCustomerByID retrieves a customer by its unique ID.
func (repo *customerRepository) FindCustomerByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	var customerM model.CustomerModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&customerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCustomerNotFound
		}

		return nil, errors.Wrap(err, "failed to find customer by ID")
	}

	return toCustomerDomain(&customerM), nil
}

// FindCustomerByQRCode retrieves a tenant's customer by exact QR token.
func (repo *customerRepository) FindCustomerByQRCode(ctx context.Context, tenantID uuid.UUID, qrCode string) (*entity.Customer, error) {
	var customerM model.CustomerModel

	if err := repo.db.WithContext(ctx).
		Where("tenant_id = ? AND qr_code = ?", tenantID, qrCode).
		First(&customerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCustomerNotFound
		}

		return nil, errors.Wrap(err, "failed to find customer by QR code")
	}

	return toCustomerDomain(&customerM), nil
}

// FindCustomers searches a tenant's customers by a single contact key.
func (repo *customerRepository) FindCustomers(ctx context.Context, tenantID uuid.UUID, query repository.CustomerQuery, limit int) ([]*entity.Customer, error) {
	var customerModels []*model.CustomerModel

	db := repo.db.WithContext(ctx).Where("tenant_id = ?", tenantID)
	switch {
	case query.QRCode != "":
		db = db.Where("qr_code = ?", query.QRCode)
	case query.Phone != "":
		db = db.Where("phone = ?", query.Phone)
	case query.Email != "":
		db = db.Where("LOWER(email) = LOWER(?)", query.Email)
	default:
		return nil, errors.New("customer query requires one search key")
	}
	if limit > 0 {
		db = db.Limit(limit)
	}

	if err := db.Order("created_at DESC").Find(&customerModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to search customers")
	}

	customers := make([]*entity.Customer, 0, len(customerModels))
	for _, customerM := range customerModels {
		customers = append(customers, toCustomerDomain(customerM))
	}

	return customers, nil
}

// LockCustomer reloads the customer with SELECT ... FOR UPDATE.
// It must run inside a transaction; concurrent lockers of the same row wait for commit.
func (repo *customerRepository) LockCustomer(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	var customerM model.CustomerModel

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write, clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&customerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCustomerNotFound
		}

		return nil, errors.Wrap(err, "failed to lock customer")
	}

	return toCustomerDomain(&customerM), nil
}

// UpdateCustomerStatus changes the lifecycle status of a customer.
func (repo *customerRepository) UpdateCustomerStatus(ctx context.Context, id uuid.UUID, status entity.CustomerStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CustomerModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":     string(status),
			"updated_at": time.Now(),
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update customer status")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCustomerNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toCustomerDomain converts a GORM CustomerModel to a domain Customer entity.
func toCustomerDomain(data *model.CustomerModel) *entity.Customer {
	if data == nil {
		return nil
	}

	return &entity.Customer{
		ID:             data.ID,
		TenantID:       data.TenantID,
		HomeLocationID: data.HomeLocationID,
		Name:           data.Name,
		Email:          data.Email,
		Phone:          data.Phone,
		QRCode:         data.QRCode,
		Status:         entity.CustomerStatus(data.Status),
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

// fromCustomerDomain converts a domain Customer entity to a GORM CustomerModel.
func fromCustomerDomain(data *entity.Customer) *model.CustomerModel {
	if data == nil {
		return nil
	}

	return &model.CustomerModel{
		ID:             data.ID,
		TenantID:       data.TenantID,
		HomeLocationID: data.HomeLocationID,
		Name:           data.Name,
		Email:          data.Email,
		Phone:          data.Phone,
		QRCode:         data.QRCode,
		Status:         string(data.Status),
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}
