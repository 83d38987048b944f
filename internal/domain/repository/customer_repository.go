package repository

import (
	"context"

	"stampcard/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	// ErrCustomerNotFound is returned when a customer is not found.
	ErrCustomerNotFound = errors.New("customer not found")
	// ErrDuplicateQRCode is returned when a generated QR token collides with an existing one.
	ErrDuplicateQRCode = errors.New("qr code already exists")
)

// CustomerQuery selects customers by exactly one contact key.
type CustomerQuery struct {
	QRCode string
	Phone  string
	Email  string
}

// CustomerRepository defines customer persistence. Every lookup is tenant-scoped except by id.
type CustomerRepository interface {
	// CreateCustomer persists a new customer; returns ErrDuplicateQRCode on token collision.
	CreateCustomer(ctx context.Context, customer *entity.Customer) error

	// FindCustomerByID retrieves a customer by id.
	FindCustomerByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error)

	// FindCustomerByQRCode retrieves a tenant's customer by exact QR token.
	FindCustomerByQRCode(ctx context.Context, tenantID uuid.UUID, qrCode string) (*entity.Customer, error)

	// FindCustomers searches a tenant's customers by the single key set in query.
	FindCustomers(ctx context.Context, tenantID uuid.UUID, query CustomerQuery, limit int) ([]*entity.Customer, error)

	// LockCustomer reloads the customer holding a row lock until the transaction ends.
	LockCustomer(ctx context.Context, id uuid.UUID) (*entity.Customer, error)

	// UpdateCustomerStatus changes the lifecycle status.
	UpdateCustomerStatus(ctx context.Context, id uuid.UUID, status entity.CustomerStatus) error
}
