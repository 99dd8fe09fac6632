package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StudentModel struct {
	StudentID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:student_id" json:"student_id"`

	StudentCustomerID *uuid.UUID `gorm:"type:uuid;index;column:student_customer_id" json:"student_customer_id,omitempty"`

	StudentName      string     `gorm:"not null;column:student_name"       json:"student_name"`
	StudentEmail     *string    `gorm:"column:student_email"               json:"student_email,omitempty"`
	StudentPhone     *string    `gorm:"column:student_phone"               json:"student_phone,omitempty"`
	StudentBirthDate *time.Time `gorm:"type:date;column:student_birth_date" json:"student_birth_date,omitempty"`
	StudentNote      *string    `gorm:"column:student_note"                json:"student_note,omitempty"`

	StudentCreatedAt time.Time      `gorm:"column:student_created_at;autoCreateTime" json:"student_created_at"`
	StudentUpdatedAt *time.Time     `gorm:"column:student_updated_at;autoUpdateTime" json:"student_updated_at,omitempty"`
	StudentDeletedAt gorm.DeletedAt `gorm:"column:student_deleted_at;index"          json:"student_deleted_at,omitempty"`
	StudentDeletedBy *uuid.UUID     `gorm:"type:uuid;column:student_deleted_by"      json:"student_deleted_by,omitempty"`
}

func (StudentModel) TableName() string { return "students" }

func (m *StudentModel) BeforeCreate(tx *gorm.DB) error {
	if m.StudentID == uuid.Nil {
		m.StudentID = uuid.New()
	}
	return nil
}
