// internals/features/lessons/meetings/dto/meeting_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	m "educrm_backend/internals/features/lessons/meetings/model"
)

/* =============== REQUESTS =============== */

type CreateMeetingRequest struct {
	MeetingCycleID      uuid.UUID  `json:"meeting_cycle_id"      validate:"required"`
	MeetingInstructorID *uuid.UUID `json:"meeting_instructor_id" validate:"omitempty"`

	MeetingDate      time.Time `json:"meeting_date"       validate:"required"`
	MeetingStartTime string    `json:"meeting_start_time" validate:"required,len=5"`
	MeetingEndTime   string    `json:"meeting_end_time"   validate:"required,len=5"`

	MeetingActivityType string  `json:"meeting_activity_type" validate:"required,oneof=online frontal private_lesson"`
	MeetingTopic        *string `json:"meeting_topic"         validate:"omitempty"`
}

func (r CreateMeetingRequest) ToModel() *m.MeetingModel {
	return &m.MeetingModel{
		MeetingCycleID:      r.MeetingCycleID,
		MeetingInstructorID: r.MeetingInstructorID,
		MeetingDate:         r.MeetingDate,
		MeetingStartTime:    r.MeetingStartTime,
		MeetingEndTime:      r.MeetingEndTime,
		MeetingStatus:       m.StatusScheduled,
		MeetingActivityType: r.MeetingActivityType,
		MeetingTopic:        r.MeetingTopic,
	}
}

// Update (partial). Status and financial fields are absent on purpose: they
// move only through the lifecycle endpoints.
type UpdateMeetingRequest struct {
	MeetingInstructorID *uuid.UUID `json:"meeting_instructor_id" validate:"omitempty"`

	MeetingDate      *time.Time `json:"meeting_date"       validate:"omitempty"`
	MeetingStartTime *string    `json:"meeting_start_time" validate:"omitempty,len=5"`
	MeetingEndTime   *string    `json:"meeting_end_time"   validate:"omitempty,len=5"`

	MeetingActivityType *string `json:"meeting_activity_type" validate:"omitempty,oneof=online frontal private_lesson"`
	MeetingTopic        *string `json:"meeting_topic"         validate:"omitempty"`
}

func (r UpdateMeetingRequest) ApplyTo(mo *m.MeetingModel) {
	if r.MeetingInstructorID != nil {
		mo.MeetingInstructorID = r.MeetingInstructorID
	}
	if r.MeetingDate != nil {
		mo.MeetingDate = *r.MeetingDate
	}
	if r.MeetingStartTime != nil {
		mo.MeetingStartTime = *r.MeetingStartTime
	}
	if r.MeetingEndTime != nil {
		mo.MeetingEndTime = *r.MeetingEndTime
	}
	if r.MeetingActivityType != nil {
		mo.MeetingActivityType = *r.MeetingActivityType
	}
	if r.MeetingTopic != nil {
		mo.MeetingTopic = r.MeetingTopic
	}
}
