package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	CustomerStatusLead    = "lead"
	CustomerStatusActive  = "active"
	CustomerStatusChurned = "churned"
)

// Customer is the paying party: an institution or a private household.
type CustomerModel struct {
	CustomerID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:customer_id" json:"customer_id"`

	CustomerName        string  `gorm:"not null;column:customer_name"          json:"customer_name"`
	CustomerType        string  `gorm:"not null;default:'institution';column:customer_type" json:"customer_type"` // institution|private
	CustomerStatus      string  `gorm:"not null;default:'lead';column:customer_status"      json:"customer_status"`
	CustomerContactName *string `gorm:"column:customer_contact_name"           json:"customer_contact_name,omitempty"`
	CustomerEmail       *string `gorm:"column:customer_email"                  json:"customer_email,omitempty"`
	CustomerPhone       *string `gorm:"column:customer_phone"                  json:"customer_phone,omitempty"`
	CustomerAddress     *string `gorm:"column:customer_address"                json:"customer_address,omitempty"`
	CustomerNote        *string `gorm:"column:customer_note"                   json:"customer_note,omitempty"`

	CustomerCreatedAt time.Time      `gorm:"column:customer_created_at;autoCreateTime" json:"customer_created_at"`
	CustomerUpdatedAt *time.Time     `gorm:"column:customer_updated_at;autoUpdateTime" json:"customer_updated_at,omitempty"`
	CustomerDeletedAt gorm.DeletedAt `gorm:"column:customer_deleted_at;index"          json:"customer_deleted_at,omitempty"`
	CustomerDeletedBy *uuid.UUID     `gorm:"type:uuid;column:customer_deleted_by"      json:"customer_deleted_by,omitempty"`
}

func (CustomerModel) TableName() string { return "customers" }

func (m *CustomerModel) BeforeCreate(tx *gorm.DB) error {
	if m.CustomerID == uuid.Nil {
		m.CustomerID = uuid.New()
	}
	return nil
}
