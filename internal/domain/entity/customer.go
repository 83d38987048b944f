package entity

import (
	"time"

	"github.com/google/uuid"
)

// CustomerStatus represents the lifecycle of a loyalty customer.
type CustomerStatus string

const (
	CustomerStatusActive   CustomerStatus = "active"
	CustomerStatusInactive CustomerStatus = "inactive"
	CustomerStatusBlocked  CustomerStatus = "blocked"
)

// String returns the string representation of the status.
func (s CustomerStatus) String() string {
	return string(s)
}

// IsValid checks if the status is a known value.
func (s CustomerStatus) IsValid() bool {
	switch s {
	case CustomerStatusActive, CustomerStatusInactive, CustomerStatusBlocked:
		return true
	default:
		return false
	}
}

// Customer is a stamp-card holder owned by a tenant.
// Customers are never deleted; they move to inactive or blocked instead.
type Customer struct {
	ID             uuid.UUID      `json:"id"`
	TenantID       uuid.UUID      `json:"tenant_id"`
	HomeLocationID *uuid.UUID     `json:"home_location_id,omitempty"`
	Name           string         `json:"name"`
	Email          *string        `json:"email,omitempty"`
	Phone          *string        `json:"phone,omitempty"`
	QRCode         string         `json:"qr_code"` // Globally unique and immutable once issued.
	Status         CustomerStatus `json:"status"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

// IsActive reports whether the customer may earn and redeem stamps.
func (c *Customer) IsActive() bool {
	return c.Status == CustomerStatusActive
}

// IsBlocked reports whether the customer has been blocked by staff.
func (c *Customer) IsBlocked() bool {
	return c.Status == CustomerStatusBlocked
}

// CustomerWithTotals is a customer annotated with ledger totals for display.
type CustomerWithTotals struct {
	*Customer
	TotalStamps  int `json:"total_stamps"`
	TotalRewards int `json:"total_rewards"`
}
