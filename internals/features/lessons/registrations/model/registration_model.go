package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	RegistrationStatusRegistered = "registered"
	RegistrationStatusActive     = "active"
	RegistrationStatusCancelled  = "cancelled"
	RegistrationStatusCompleted  = "completed"
)

// Registration enrolls a student into a cycle. The set of active
// registrations drives per-child pricing and private-cycle revenue.
type RegistrationModel struct {
	RegistrationID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:registration_id" json:"registration_id"`

	RegistrationCycleID   uuid.UUID `gorm:"type:uuid;not null;index;column:registration_cycle_id"   json:"registration_cycle_id"`
	RegistrationStudentID uuid.UUID `gorm:"type:uuid;not null;index;column:registration_student_id" json:"registration_student_id"`

	// Total amount the student pays for the whole cycle (private pricing).
	RegistrationAmount float64 `gorm:"not null;default:0;column:registration_amount" json:"registration_amount"`
	RegistrationStatus string  `gorm:"not null;default:'registered';column:registration_status" json:"registration_status"`
	RegistrationNote   *string `gorm:"column:registration_note" json:"registration_note,omitempty"`

	RegistrationCreatedAt time.Time      `gorm:"column:registration_created_at;autoCreateTime" json:"registration_created_at"`
	RegistrationUpdatedAt *time.Time     `gorm:"column:registration_updated_at;autoUpdateTime" json:"registration_updated_at,omitempty"`
	RegistrationDeletedAt gorm.DeletedAt `gorm:"column:registration_deleted_at;index"          json:"registration_deleted_at,omitempty"`
}

func (RegistrationModel) TableName() string { return "registrations" }

func (m *RegistrationModel) BeforeCreate(tx *gorm.DB) error {
	if m.RegistrationID == uuid.Nil {
		m.RegistrationID = uuid.New()
	}
	return nil
}
