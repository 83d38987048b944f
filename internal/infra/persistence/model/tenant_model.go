package model

import (
	"time"

	"github.com/google/uuid"
)

// TenantModel mirrors the 'tenants' table. PostgreSQL generates UUIDs via uuid_generate_v7().
// It is an exported type so it can be used by the GORM Gen tool from other packages.
type TenantModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Status    string    `gorm:"type:varchar(20);not null;default:'active'"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Locations []LocationModel `gorm:"foreignKey:TenantID"`
}

// TableName explicitly sets the table name for GORM.
func (TenantModel) TableName() string {
	return "tenants"
}

// LocationModel mirrors the 'locations' table.
type LocationModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	TenantID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Status    string    `gorm:"type:varchar(20);not null;default:'active'"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Settings *LoyaltySettingsModel `gorm:"foreignKey:LocationID"`
}

// TableName explicitly sets the table name for GORM.
func (LocationModel) TableName() string {
	return "locations"
}

// LoyaltySettingsModel mirrors the 'loyalty_settings' table, one row per location.
type LoyaltySettingsModel struct {
	LocationID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	StampsForReward   int       `gorm:"not null;default:10;check:stamps_for_reward > 0"`
	RewardValue       float64   `gorm:"type:numeric(10,2);not null;default:0"`
	MaxStampsPerVisit int       `gorm:"not null;default:5;check:max_stamps_per_visit > 0"`
	StampExpiryDays   *int
	MinPurchaseAmount *float64 `gorm:"type:numeric(10,2)"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TableName explicitly sets the table name for GORM.
func (LoyaltySettingsModel) TableName() string {
	return "loyalty_settings"
}
