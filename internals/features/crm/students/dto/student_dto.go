// internals/features/crm/students/dto/student_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	m "educrm_backend/internals/features/crm/students/model"
)

/* =============== REQUESTS =============== */

type CreateStudentRequest struct {
	StudentCustomerID *uuid.UUID `json:"student_customer_id" validate:"omitempty"`

	StudentName      string     `json:"student_name"       validate:"required,min=2"`
	StudentEmail     *string    `json:"student_email"      validate:"omitempty,email"`
	StudentPhone     *string    `json:"student_phone"      validate:"omitempty"`
	StudentBirthDate *time.Time `json:"student_birth_date" validate:"omitempty"`
	StudentNote      *string    `json:"student_note"       validate:"omitempty"`
}

func (r CreateStudentRequest) ToModel() *m.StudentModel {
	return &m.StudentModel{
		StudentCustomerID: r.StudentCustomerID,
		StudentName:       r.StudentName,
		StudentEmail:      r.StudentEmail,
		StudentPhone:      r.StudentPhone,
		StudentBirthDate:  r.StudentBirthDate,
		StudentNote:       r.StudentNote,
	}
}

// Update (partial)
type UpdateStudentRequest struct {
	StudentCustomerID *uuid.UUID `json:"student_customer_id" validate:"omitempty"`

	StudentName      *string    `json:"student_name"       validate:"omitempty,min=2"`
	StudentEmail     *string    `json:"student_email"      validate:"omitempty,email"`
	StudentPhone     *string    `json:"student_phone"      validate:"omitempty"`
	StudentBirthDate *time.Time `json:"student_birth_date" validate:"omitempty"`
	StudentNote      *string    `json:"student_note"       validate:"omitempty"`
}

func (r UpdateStudentRequest) ApplyTo(mo *m.StudentModel) {
	if r.StudentCustomerID != nil {
		mo.StudentCustomerID = r.StudentCustomerID
	}
	if r.StudentName != nil {
		mo.StudentName = *r.StudentName
	}
	if r.StudentEmail != nil {
		mo.StudentEmail = r.StudentEmail
	}
	if r.StudentPhone != nil {
		mo.StudentPhone = r.StudentPhone
	}
	if r.StudentBirthDate != nil {
		mo.StudentBirthDate = r.StudentBirthDate
	}
	if r.StudentNote != nil {
		mo.StudentNote = r.StudentNote
	}
}
