// internals/features/crm/instructors/dto/instructor_dto.go
package dto

import (
	m "educrm_backend/internals/features/crm/instructors/model"
)

/* =============== REQUESTS =============== */

type CreateInstructorRequest struct {
	InstructorName  string  `json:"instructor_name"  validate:"required,min=2"`
	InstructorEmail *string `json:"instructor_email" validate:"omitempty,email"`
	InstructorPhone *string `json:"instructor_phone" validate:"omitempty"`

	InstructorEmploymentType string `json:"instructor_employment_type" validate:"required,oneof=employee contractor"`

	InstructorRateFrontal     float64 `json:"instructor_rate_frontal"     validate:"omitempty,gte=0"`
	InstructorRateOnline      float64 `json:"instructor_rate_online"      validate:"omitempty,gte=0"`
	InstructorRatePrivate     float64 `json:"instructor_rate_private"     validate:"omitempty,gte=0"`
	InstructorRatePreparation float64 `json:"instructor_rate_preparation" validate:"omitempty,gte=0"`
}

func (r CreateInstructorRequest) ToModel() *m.InstructorModel {
	return &m.InstructorModel{
		InstructorName:            r.InstructorName,
		InstructorEmail:           r.InstructorEmail,
		InstructorPhone:           r.InstructorPhone,
		InstructorEmploymentType:  r.InstructorEmploymentType,
		InstructorRateFrontal:     r.InstructorRateFrontal,
		InstructorRateOnline:      r.InstructorRateOnline,
		InstructorRatePrivate:     r.InstructorRatePrivate,
		InstructorRatePreparation: r.InstructorRatePreparation,
	}
}

// Update (partial)
type UpdateInstructorRequest struct {
	InstructorName  *string `json:"instructor_name"  validate:"omitempty,min=2"`
	InstructorEmail *string `json:"instructor_email" validate:"omitempty,email"`
	InstructorPhone *string `json:"instructor_phone" validate:"omitempty"`

	InstructorEmploymentType *string `json:"instructor_employment_type" validate:"omitempty,oneof=employee contractor"`

	InstructorRateFrontal     *float64 `json:"instructor_rate_frontal"     validate:"omitempty,gte=0"`
	InstructorRateOnline      *float64 `json:"instructor_rate_online"      validate:"omitempty,gte=0"`
	InstructorRatePrivate     *float64 `json:"instructor_rate_private"     validate:"omitempty,gte=0"`
	InstructorRatePreparation *float64 `json:"instructor_rate_preparation" validate:"omitempty,gte=0"`
}

func (r UpdateInstructorRequest) ApplyTo(mo *m.InstructorModel) {
	if r.InstructorName != nil {
		mo.InstructorName = *r.InstructorName
	}
	if r.InstructorEmail != nil {
		mo.InstructorEmail = r.InstructorEmail
	}
	if r.InstructorPhone != nil {
		mo.InstructorPhone = r.InstructorPhone
	}
	if r.InstructorEmploymentType != nil {
		mo.InstructorEmploymentType = *r.InstructorEmploymentType
	}
	if r.InstructorRateFrontal != nil {
		mo.InstructorRateFrontal = *r.InstructorRateFrontal
	}
	if r.InstructorRateOnline != nil {
		mo.InstructorRateOnline = *r.InstructorRateOnline
	}
	if r.InstructorRatePrivate != nil {
		mo.InstructorRatePrivate = *r.InstructorRatePrivate
	}
	if r.InstructorRatePreparation != nil {
		mo.InstructorRatePreparation = *r.InstructorRatePreparation
	}
}
