// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"stampcard/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	// ErrLocationNotFound is returned when a location does not exist.
	ErrLocationNotFound = errors.New("location not found")
	// ErrTenantNotFound is returned when a tenant does not exist.
	ErrTenantNotFound = errors.New("tenant not found")
	// ErrSettingsNotFound is returned when a location has no loyalty settings row.
	ErrSettingsNotFound = errors.New("loyalty settings not found")
)

// LocationRepository reads tenants and locations and manages per-location loyalty settings.
type LocationRepository interface {
	// FindLocationByID retrieves a location regardless of its status.
	FindLocationByID(ctx context.Context, id uuid.UUID) (*entity.Location, error)

	// FindTenantByID retrieves a tenant regardless of its status.
	FindTenantByID(ctx context.Context, id uuid.UUID) (*entity.Tenant, error)

	// FindSettingsByLocation retrieves the settings row of a location.
	FindSettingsByLocation(ctx context.Context, locationID uuid.UUID) (*entity.LoyaltySettings, error)

	// UpsertSettings creates or replaces the settings row of a location.
	UpsertSettings(ctx context.Context, settings *entity.LoyaltySettings) error
}
