// internals/features/billing/quotes/model/quote_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

/* =============== STATUS =============== */

const (
	QuoteStatusDraft    = "draft"
	QuoteStatusSent     = "sent"
	QuoteStatusAccepted = "accepted"
	QuoteStatusRejected = "rejected"
	QuoteStatusExpired  = "expired"
)

type QuoteModel struct {
	QuoteID uuid.UUID `gorm:"column:quote_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"quote_id"`

	QuoteCustomerID uuid.UUID  `gorm:"column:quote_customer_id;type:uuid;not null;index" json:"quote_customer_id"`
	QuoteCycleID    *uuid.UUID `gorm:"column:quote_cycle_id;type:uuid;index" json:"quote_cycle_id,omitempty"`

	QuoteNumber string `gorm:"column:quote_number;type:varchar(50);not null;uniqueIndex" json:"quote_number"`

	// [{"description":"...","quantity":2,"unit_price":150}]
	QuoteLineItems datatypes.JSON `gorm:"column:quote_line_items;type:jsonb;not null" json:"quote_line_items"`

	QuoteSubtotal float64 `gorm:"column:quote_subtotal;type:numeric(12,2);not null;default:0" json:"quote_subtotal"`
	QuoteDiscount float64 `gorm:"column:quote_discount;type:numeric(12,2);not null;default:0" json:"quote_discount"`
	QuoteTotal    float64 `gorm:"column:quote_total;type:numeric(12,2);not null;default:0" json:"quote_total"`

	QuoteStatus     string     `gorm:"column:quote_status;type:varchar(20);not null;default:'draft'" json:"quote_status"`
	QuoteValidUntil *time.Time `gorm:"column:quote_valid_until" json:"quote_valid_until,omitempty"`

	QuoteNote *string `gorm:"column:quote_note;type:text" json:"quote_note,omitempty"`

	QuoteAcceptedAt *time.Time `gorm:"column:quote_accepted_at" json:"quote_accepted_at,omitempty"`
	QuoteAcceptedBy *uuid.UUID `gorm:"column:quote_accepted_by;type:uuid" json:"quote_accepted_by,omitempty"`

	QuoteCreatedBy *uuid.UUID `gorm:"column:quote_created_by;type:uuid" json:"quote_created_by,omitempty"`

	QuoteCreatedAt time.Time      `gorm:"column:quote_created_at;autoCreateTime" json:"quote_created_at"`
	QuoteUpdatedAt time.Time      `gorm:"column:quote_updated_at;autoUpdateTime" json:"quote_updated_at"`
	QuoteDeletedAt gorm.DeletedAt `gorm:"column:quote_deleted_at;index" json:"-"`
	QuoteDeletedBy *uuid.UUID     `gorm:"column:quote_deleted_by;type:uuid" json:"-"`
}

func (QuoteModel) TableName() string { return "quotes" }

func (m *QuoteModel) BeforeCreate(tx *gorm.DB) error {
	if m.QuoteID == uuid.Nil {
		m.QuoteID = uuid.New()
	}
	return nil
}
