package usecase

import (
	"context"

	"stampcard/internal/domain/entity"

	"github.com/google/uuid"
)

// CustomerData is the contact bundle required to register a new customer.
type CustomerData struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// RegisterCustomerInput represents a QR scan or a fresh registration at a location.
type RegisterCustomerInput struct {
	ActorID      uuid.UUID
	LocationID   uuid.UUID
	QRCode       string
	CustomerData *CustomerData
}

// RegisterCustomerOutput reports whether the customer was created or found.
type RegisterCustomerOutput struct {
	Customer *entity.Customer
	Created  bool
}

// LookupCustomerInput searches by exactly one of QRCode, Phone or Email.
type LookupCustomerInput struct {
	ActorID    uuid.UUID
	LocationID uuid.UUID
	QRCode     string
	Phone      string
	Email      string
}

// UpdateCustomerStatusInput moves a customer between active, inactive and blocked.
type UpdateCustomerStatusInput struct {
	ActorID    uuid.UUID
	LocationID uuid.UUID
	CustomerID uuid.UUID
	Status     entity.CustomerStatus
}

// CustomerUsecase defines the customer directory.
type CustomerUsecase interface {
	FindOrRegister(ctx context.Context, input *RegisterCustomerInput) (*RegisterCustomerOutput, error)
	Lookup(ctx context.Context, input *LookupCustomerInput) ([]*entity.CustomerWithTotals, error)
	UpdateStatus(ctx context.Context, input *UpdateCustomerStatusInput) (*entity.Customer, error)

	// RenderQRCode returns the customer's QR card as a PNG image.
	RenderQRCode(ctx context.Context, actorID, locationID, customerID uuid.UUID) ([]byte, error)

	// History returns the latest ledger entries and the current balance summary.
	History(ctx context.Context, actorID, locationID, customerID uuid.UUID, limit int) (*entity.CustomerHistory, error)
}
