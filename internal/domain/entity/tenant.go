// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// RecordStatus is the lifecycle state shared by tenants, locations and staff grants.
type RecordStatus string

const (
	// RecordStatusActive marks a record that takes part in permission resolution.
	RecordStatusActive RecordStatus = "active"
	// RecordStatusInactive marks a disabled record.
	RecordStatusInactive RecordStatus = "inactive"
)

// IsActive reports whether the record is active.
func (s RecordStatus) IsActive() bool {
	return s == RecordStatusActive
}

// Tenant is a top-level business account owning locations, customers and staff.
type Tenant struct {
	ID        uuid.UUID    `json:"id"`
	Name      string       `json:"name"`
	Status    RecordStatus `json:"status"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

// Location is a single physical site belonging to a tenant.
type Location struct {
	ID        uuid.UUID    `json:"id"`
	TenantID  uuid.UUID    `json:"tenant_id"`
	Name      string       `json:"name"`
	Status    RecordStatus `json:"status"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}
