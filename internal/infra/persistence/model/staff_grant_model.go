package model

import (
	"time"

	"github.com/google/uuid"
)

// StaffGrantModel mirrors the 'staff_grants' table.
// A NULL location_id marks a tenant-level grant.
type StaffGrantModel struct {
	ID                   uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID               uuid.UUID  `gorm:"type:uuid;not null;index:idx_staff_grants_user_scope"`
	TenantID             uuid.UUID  `gorm:"type:uuid;not null;index:idx_staff_grants_user_scope"`
	LocationID           *uuid.UUID `gorm:"type:uuid;index:idx_staff_grants_user_scope"`
	Role                 string     `gorm:"type:varchar(20);not null"`
	Status               string     `gorm:"type:varchar(20);not null;default:'active'"`
	CanRegisterCustomers bool       `gorm:"not null;default:false"`
	CanAddStamps         bool       `gorm:"not null;default:false"`
	CanRedeemRewards     bool       `gorm:"not null;default:false"`
	CanViewCustomerData  bool       `gorm:"not null;default:false"`
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// TableName explicitly sets the table name for GORM.
func (StaffGrantModel) TableName() string {
	return "staff_grants"
}
