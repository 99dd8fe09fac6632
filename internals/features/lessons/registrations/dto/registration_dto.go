// internals/features/lessons/registrations/dto/registration_dto.go
package dto

import (
	"github.com/google/uuid"

	m "educrm_backend/internals/features/lessons/registrations/model"
)

/* =============== REQUESTS =============== */

type CreateRegistrationRequest struct {
	RegistrationCycleID   uuid.UUID `json:"registration_cycle_id"   validate:"required"`
	RegistrationStudentID uuid.UUID `json:"registration_student_id" validate:"required"`

	RegistrationAmount float64 `json:"registration_amount" validate:"omitempty,gte=0"`
	RegistrationStatus string  `json:"registration_status" validate:"omitempty,oneof=registered active cancelled completed"`
	RegistrationNote   *string `json:"registration_note"   validate:"omitempty"`
}

func (r CreateRegistrationRequest) ToModel() *m.RegistrationModel {
	out := &m.RegistrationModel{
		RegistrationCycleID:   r.RegistrationCycleID,
		RegistrationStudentID: r.RegistrationStudentID,
		RegistrationAmount:    r.RegistrationAmount,
		RegistrationNote:      r.RegistrationNote,
	}
	if r.RegistrationStatus != "" {
		out.RegistrationStatus = r.RegistrationStatus
	}
	return out
}

// Update (partial)
type UpdateRegistrationRequest struct {
	RegistrationAmount *float64 `json:"registration_amount" validate:"omitempty,gte=0"`
	RegistrationStatus *string  `json:"registration_status" validate:"omitempty,oneof=registered active cancelled completed"`
	RegistrationNote   *string  `json:"registration_note"   validate:"omitempty"`
}

func (r UpdateRegistrationRequest) ApplyTo(mo *m.RegistrationModel) {
	if r.RegistrationAmount != nil {
		mo.RegistrationAmount = *r.RegistrationAmount
	}
	if r.RegistrationStatus != nil {
		mo.RegistrationStatus = *r.RegistrationStatus
	}
	if r.RegistrationNote != nil {
		mo.RegistrationNote = r.RegistrationNote
	}
}
