package model

import (
	"time"

	"github.com/google/uuid"
)

// CustomerModel mirrors the 'customers' table. Rows are never deleted.
type CustomerModel struct {
	ID             uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	TenantID       uuid.UUID  `gorm:"type:uuid;not null;index:idx_customers_tenant_phone;index:idx_customers_tenant_email"`
	HomeLocationID *uuid.UUID `gorm:"type:uuid"`
	Name           string     `gorm:"type:varchar(255);not null"`
	Email          *string    `gorm:"type:varchar(255);index:idx_customers_tenant_email"`
	Phone          *string    `gorm:"type:varchar(50);index:idx_customers_tenant_phone"`
	QRCode         string     `gorm:"column:qr_code;type:varchar(64);uniqueIndex;not null"`
	Status         string     `gorm:"type:varchar(20);not null;default:'active'"`
	CreatedAt      time.Time  `gorm:"index"`
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (CustomerModel) TableName() string {
	return "customers"
}
