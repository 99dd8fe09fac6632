package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Employment types; employees get a 30% markup over the raw hourly rate.
const (
	EmploymentEmployee   = "employee"
	EmploymentContractor = "contractor"
)

type InstructorModel struct {
	InstructorID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:instructor_id" json:"instructor_id"`

	InstructorName  string  `gorm:"not null;column:instructor_name"              json:"instructor_name"`
	InstructorEmail *string `gorm:"column:instructor_email"                      json:"instructor_email,omitempty"`
	InstructorPhone *string `gorm:"column:instructor_phone"                      json:"instructor_phone,omitempty"`

	InstructorEmploymentType string `gorm:"not null;default:'contractor';column:instructor_employment_type" json:"instructor_employment_type"`

	// Hourly rates per activity type; zero when not negotiated.
	InstructorRateFrontal     float64 `gorm:"not null;default:0;column:instructor_rate_frontal"     json:"instructor_rate_frontal"`
	InstructorRateOnline      float64 `gorm:"not null;default:0;column:instructor_rate_online"      json:"instructor_rate_online"`
	InstructorRatePrivate     float64 `gorm:"not null;default:0;column:instructor_rate_private"     json:"instructor_rate_private"`
	InstructorRatePreparation float64 `gorm:"not null;default:0;column:instructor_rate_preparation" json:"instructor_rate_preparation"`

	InstructorCreatedAt time.Time      `gorm:"column:instructor_created_at;autoCreateTime" json:"instructor_created_at"`
	InstructorUpdatedAt *time.Time     `gorm:"column:instructor_updated_at;autoUpdateTime" json:"instructor_updated_at,omitempty"`
	InstructorDeletedAt gorm.DeletedAt `gorm:"column:instructor_deleted_at;index"          json:"instructor_deleted_at,omitempty"`
	InstructorDeletedBy *uuid.UUID     `gorm:"type:uuid;column:instructor_deleted_by"      json:"instructor_deleted_by,omitempty"`
}

func (InstructorModel) TableName() string { return "instructors" }

func (m *InstructorModel) BeforeCreate(tx *gorm.DB) error {
	if m.InstructorID == uuid.Nil {
		m.InstructorID = uuid.New()
	}
	return nil
}
