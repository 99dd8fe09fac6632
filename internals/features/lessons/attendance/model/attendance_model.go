// internals/features/lessons/attendance/model/attendance_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =============== STATUS =============== */

const (
	AttendancePresent = "present"
	AttendanceAbsent  = "absent"
	AttendanceLate    = "late"
	AttendanceExcused = "excused"
)

type AttendanceModel struct {
	AttendanceID uuid.UUID `gorm:"column:attendance_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"attendance_id"`

	AttendanceMeetingID      uuid.UUID `gorm:"column:attendance_meeting_id;type:uuid;not null;index:idx_attendance_meeting_reg,unique,where:attendance_deleted_at IS NULL" json:"attendance_meeting_id"`
	AttendanceRegistrationID uuid.UUID `gorm:"column:attendance_registration_id;type:uuid;not null;index:idx_attendance_meeting_reg,unique,where:attendance_deleted_at IS NULL" json:"attendance_registration_id"`

	AttendanceStatus string  `gorm:"column:attendance_status;type:varchar(20);not null;default:'present'" json:"attendance_status"`
	AttendanceNote   *string `gorm:"column:attendance_note;type:text" json:"attendance_note,omitempty"`

	AttendanceMarkedBy *uuid.UUID `gorm:"column:attendance_marked_by;type:uuid" json:"attendance_marked_by,omitempty"`

	AttendanceCreatedAt time.Time      `gorm:"column:attendance_created_at;autoCreateTime" json:"attendance_created_at"`
	AttendanceUpdatedAt time.Time      `gorm:"column:attendance_updated_at;autoUpdateTime" json:"attendance_updated_at"`
	AttendanceDeletedAt gorm.DeletedAt `gorm:"column:attendance_deleted_at;index" json:"-"`
}

func (AttendanceModel) TableName() string { return "attendances" }

func (m *AttendanceModel) BeforeCreate(tx *gorm.DB) error {
	if m.AttendanceID == uuid.Nil {
		m.AttendanceID = uuid.New()
	}
	return nil
}
