// internals/features/billing/payments/dto/invoice_dto.go
package dto

import (
	"github.com/google/uuid"
)

/* =============== REQUESTS =============== */

// Either quote_id (amount is taken from the accepted quote) or an
// explicit amount must be supplied.
type CreateInvoiceRequest struct {
	InvoiceCustomerID uuid.UUID  `json:"invoice_customer_id" validate:"required"`
	InvoiceQuoteID    *uuid.UUID `json:"invoice_quote_id"    validate:"omitempty"`

	InvoiceAmount float64 `json:"invoice_amount" validate:"omitempty,gt=0"`
	InvoiceNote   *string `json:"invoice_note"   validate:"omitempty"`
}

/* =============== RESPONSES =============== */

type CreateInvoiceResponse struct {
	InvoiceID uuid.UUID `json:"invoice_id"`
	OrderID   string    `json:"order_id"`
	SnapToken string    `json:"snap_token"`
}
