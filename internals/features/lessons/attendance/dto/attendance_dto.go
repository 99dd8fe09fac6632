// internals/features/lessons/attendance/dto/attendance_dto.go
package dto

import (
	"github.com/google/uuid"
)

/* =============== REQUESTS =============== */

type MarkAttendanceItem struct {
	RegistrationID uuid.UUID `json:"registration_id"   validate:"required"`
	Status         string    `json:"attendance_status" validate:"required,oneof=present absent late excused"`
	Note           *string   `json:"attendance_note"   validate:"omitempty"`
}

// Bulk mark for one meeting. Existing marks for the same registration
// are overwritten.
type MarkAttendanceRequest struct {
	Items []MarkAttendanceItem `json:"items" validate:"required,min=1,dive"`
}
