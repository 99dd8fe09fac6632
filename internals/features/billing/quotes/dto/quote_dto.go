// internals/features/billing/quotes/dto/quote_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
)

/* =============== LINE ITEMS =============== */

type QuoteLineItem struct {
	Description string  `json:"description" validate:"required"`
	Quantity    int     `json:"quantity"    validate:"required,gt=0"`
	UnitPrice   float64 `json:"unit_price"  validate:"gte=0"`
}

/* =============== REQUESTS =============== */

type CreateQuoteRequest struct {
	QuoteCustomerID uuid.UUID  `json:"quote_customer_id" validate:"required"`
	QuoteCycleID    *uuid.UUID `json:"quote_cycle_id"    validate:"omitempty"`

	LineItems []QuoteLineItem `json:"line_items" validate:"required,min=1,dive"`

	QuoteDiscount   float64    `json:"quote_discount"    validate:"omitempty,gte=0"`
	QuoteValidUntil *time.Time `json:"quote_valid_until" validate:"omitempty"`
	QuoteNote       *string    `json:"quote_note"        validate:"omitempty"`
}

// Update (partial). Only draft quotes are editable.
type UpdateQuoteRequest struct {
	LineItems []QuoteLineItem `json:"line_items" validate:"omitempty,min=1,dive"`

	QuoteDiscount   *float64   `json:"quote_discount"    validate:"omitempty,gte=0"`
	QuoteValidUntil *time.Time `json:"quote_valid_until" validate:"omitempty"`
	QuoteNote       *string    `json:"quote_note"        validate:"omitempty"`
}
