// internals/features/billing/payments/model/invoice_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =============== STATUS =============== */

const (
	InvoiceStatusPending   = "pending"
	InvoiceStatusPaid      = "paid"
	InvoiceStatusFailed    = "failed"
	InvoiceStatusCancelled = "cancelled"
)

type InvoiceModel struct {
	InvoiceID uuid.UUID `gorm:"column:invoice_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"invoice_id"`

	InvoiceCustomerID uuid.UUID  `gorm:"column:invoice_customer_id;type:uuid;not null;index" json:"invoice_customer_id"`
	InvoiceQuoteID    *uuid.UUID `gorm:"column:invoice_quote_id;type:uuid;index" json:"invoice_quote_id,omitempty"`

	InvoiceOrderID string  `gorm:"column:invoice_order_id;type:varchar(64);not null;uniqueIndex" json:"invoice_order_id"`
	InvoiceAmount  float64 `gorm:"column:invoice_amount;type:numeric(12,2);not null" json:"invoice_amount"`

	InvoiceStatus         string `gorm:"column:invoice_status;type:varchar(20);not null;default:'pending'" json:"invoice_status"`
	InvoicePaymentGateway string `gorm:"column:invoice_payment_gateway;type:varchar(20);not null;default:'midtrans'" json:"invoice_payment_gateway"`
	InvoiceSnapToken      string `gorm:"column:invoice_snap_token;type:text" json:"invoice_snap_token,omitempty"`

	InvoicePaidAt *time.Time `gorm:"column:invoice_paid_at" json:"invoice_paid_at,omitempty"`

	InvoiceNote *string `gorm:"column:invoice_note;type:text" json:"invoice_note,omitempty"`

	InvoiceCreatedAt time.Time      `gorm:"column:invoice_created_at;autoCreateTime" json:"invoice_created_at"`
	InvoiceUpdatedAt time.Time      `gorm:"column:invoice_updated_at;autoUpdateTime" json:"invoice_updated_at"`
	InvoiceDeletedAt gorm.DeletedAt `gorm:"column:invoice_deleted_at;index" json:"-"`
}

func (InvoiceModel) TableName() string { return "invoices" }

func (m *InvoiceModel) BeforeCreate(tx *gorm.DB) error {
	if m.InvoiceID == uuid.Nil {
		m.InvoiceID = uuid.New()
	}
	return nil
}
