package model

import (
	"time"

	"github.com/google/uuid"
)

// StampEventModel mirrors the append-only 'stamp_events' table.
type StampEventModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	CustomerID     uuid.UUID `gorm:"type:uuid;not null;index"`
	LocationID     uuid.UUID `gorm:"type:uuid;not null;index:idx_stamp_events_location_created"`
	TenantID       uuid.UUID `gorm:"type:uuid;not null;index:idx_stamp_events_tenant_created"`
	Stamps         int       `gorm:"not null;check:stamps > 0"`
	PurchaseAmount *float64  `gorm:"type:numeric(10,2)"`
	Note           *string   `gorm:"type:text"`
	ActorID        uuid.UUID `gorm:"type:uuid;not null"`
	CreatedAt      time.Time `gorm:"index:idx_stamp_events_location_created;index:idx_stamp_events_tenant_created"`
}

// TableName explicitly sets the table name for GORM.
func (StampEventModel) TableName() string {
	return "stamp_events"
}

// RewardEventModel mirrors the append-only 'reward_events' table.
type RewardEventModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	CustomerID     uuid.UUID `gorm:"type:uuid;not null;index"`
	LocationID     uuid.UUID `gorm:"type:uuid;not null;index:idx_reward_events_location_created"`
	TenantID       uuid.UUID `gorm:"type:uuid;not null;index:idx_reward_events_tenant_created"`
	RewardType     string    `gorm:"type:varchar(100);not null"`
	RewardValue    float64   `gorm:"type:numeric(10,2);not null;default:0"`
	StampsConsumed int       `gorm:"not null;check:stamps_consumed > 0"`
	ActorID        uuid.UUID `gorm:"type:uuid;not null"`
	Status         string    `gorm:"type:varchar(20);not null;default:'redeemed'"`
	CreatedAt      time.Time `gorm:"index:idx_reward_events_location_created;index:idx_reward_events_tenant_created"`
}

// TableName explicitly sets the table name for GORM.
func (RewardEventModel) TableName() string {
	return "reward_events"
}
