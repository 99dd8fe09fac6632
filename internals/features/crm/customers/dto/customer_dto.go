// internals/features/crm/customers/dto/customer_dto.go
package dto

import (
	m "educrm_backend/internals/features/crm/customers/model"
)

/* =============== REQUESTS =============== */

type CreateCustomerRequest struct {
	CustomerName        string  `json:"customer_name"         validate:"required,min=2"`
	CustomerType        string  `json:"customer_type"         validate:"omitempty,oneof=institution private"`
	CustomerStatus      string  `json:"customer_status"       validate:"omitempty,oneof=lead active churned"`
	CustomerContactName *string `json:"customer_contact_name" validate:"omitempty"`
	CustomerEmail       *string `json:"customer_email"        validate:"omitempty,email"`
	CustomerPhone       *string `json:"customer_phone"        validate:"omitempty"`
	CustomerAddress     *string `json:"customer_address"      validate:"omitempty"`
	CustomerNote        *string `json:"customer_note"         validate:"omitempty"`
}

func (r CreateCustomerRequest) ToModel() *m.CustomerModel {
	out := &m.CustomerModel{
		CustomerName:        r.CustomerName,
		CustomerContactName: r.CustomerContactName,
		CustomerEmail:       r.CustomerEmail,
		CustomerPhone:       r.CustomerPhone,
		CustomerAddress:     r.CustomerAddress,
		CustomerNote:        r.CustomerNote,
	}
	if r.CustomerType != "" {
		out.CustomerType = r.CustomerType
	}
	if r.CustomerStatus != "" {
		out.CustomerStatus = r.CustomerStatus
	}
	return out
}

// Update (partial)
type UpdateCustomerRequest struct {
	CustomerName        *string `json:"customer_name"         validate:"omitempty,min=2"`
	CustomerType        *string `json:"customer_type"         validate:"omitempty,oneof=institution private"`
	CustomerStatus      *string `json:"customer_status"       validate:"omitempty,oneof=lead active churned"`
	CustomerContactName *string `json:"customer_contact_name" validate:"omitempty"`
	CustomerEmail       *string `json:"customer_email"        validate:"omitempty,email"`
	CustomerPhone       *string `json:"customer_phone"        validate:"omitempty"`
	CustomerAddress     *string `json:"customer_address"      validate:"omitempty"`
	CustomerNote        *string `json:"customer_note"         validate:"omitempty"`
}

func (r UpdateCustomerRequest) ApplyTo(mo *m.CustomerModel) {
	if r.CustomerName != nil {
		mo.CustomerName = *r.CustomerName
	}
	if r.CustomerType != nil {
		mo.CustomerType = *r.CustomerType
	}
	if r.CustomerStatus != nil {
		mo.CustomerStatus = *r.CustomerStatus
	}
	if r.CustomerContactName != nil {
		mo.CustomerContactName = r.CustomerContactName
	}
	if r.CustomerEmail != nil {
		mo.CustomerEmail = r.CustomerEmail
	}
	if r.CustomerPhone != nil {
		mo.CustomerPhone = r.CustomerPhone
	}
	if r.CustomerAddress != nil {
		mo.CustomerAddress = r.CustomerAddress
	}
	if r.CustomerNote != nil {
		mo.CustomerNote = r.CustomerNote
	}
}
