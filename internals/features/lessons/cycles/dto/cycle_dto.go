// internals/features/lessons/cycles/dto/cycle_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	m "educrm_backend/internals/features/lessons/cycles/model"
)

/* =============== REQUESTS =============== */

type CreateCycleRequest struct {
	CycleCustomerID   *uuid.UUID `json:"cycle_customer_id"   validate:"omitempty"`
	CycleInstructorID *uuid.UUID `json:"cycle_instructor_id" validate:"omitempty"`

	CycleName string `json:"cycle_name" validate:"required,min=2"`

	CycleDayOfWeek       int        `json:"cycle_day_of_week"      validate:"min=0,max=6"`
	CycleStartTime       string     `json:"cycle_start_time"       validate:"required,len=5"` // "16:00"
	CycleEndTime         string     `json:"cycle_end_time"         validate:"required,len=5"`
	CycleDurationMinutes int        `json:"cycle_duration_minutes" validate:"required,gt=0"`
	CycleStartDate       time.Time  `json:"cycle_start_date"       validate:"required"`
	CycleEndDate         *time.Time `json:"cycle_end_date"         validate:"omitempty"`

	CyclePricingMode     string   `json:"cycle_pricing_mode"      validate:"required,oneof=private institutional_fixed institutional_per_child"`
	CyclePricePerStudent *float64 `json:"cycle_price_per_student" validate:"omitempty,gte=0"`
	CycleMeetingRevenue  *float64 `json:"cycle_meeting_revenue"   validate:"omitempty,gte=0"`
	CycleStudentCount    *int     `json:"cycle_student_count"     validate:"omitempty,gte=0"`

	CycleDeliveryMode string `json:"cycle_delivery_mode" validate:"omitempty,oneof=online frontal private_lesson"`
	CycleRequiresZoom bool   `json:"cycle_requires_zoom"`

	CycleTotalMeetings int `json:"cycle_total_meetings" validate:"required,gt=0"`
}

func (r CreateCycleRequest) ToModel() *m.CycleModel {
	out := &m.CycleModel{
		CycleCustomerID:        r.CycleCustomerID,
		CycleInstructorID:      r.CycleInstructorID,
		CycleName:              r.CycleName,
		CycleDayOfWeek:         r.CycleDayOfWeek,
		CycleStartTime:         r.CycleStartTime,
		CycleEndTime:           r.CycleEndTime,
		CycleDurationMinutes:   r.CycleDurationMinutes,
		CycleStartDate:         r.CycleStartDate,
		CycleEndDate:           r.CycleEndDate,
		CyclePricingMode:       r.CyclePricingMode,
		CyclePricePerStudent:   r.CyclePricePerStudent,
		CycleMeetingRevenue:    r.CycleMeetingRevenue,
		CycleStudentCount:      r.CycleStudentCount,
		CycleRequiresZoom:      r.CycleRequiresZoom,
		CycleTotalMeetings:     r.CycleTotalMeetings,
		CycleRemainingMeetings: r.CycleTotalMeetings,
	}
	if r.CycleDeliveryMode != "" {
		out.CycleDeliveryMode = r.CycleDeliveryMode
	}
	return out
}

// Update (partial). Counters are deliberately absent: only the lifecycle
// service and SyncProgress write them.
type UpdateCycleRequest struct {
	CycleCustomerID   *uuid.UUID `json:"cycle_customer_id"   validate:"omitempty"`
	CycleInstructorID *uuid.UUID `json:"cycle_instructor_id" validate:"omitempty"`

	CycleName *string `json:"cycle_name" validate:"omitempty,min=2"`

	CycleDayOfWeek       *int       `json:"cycle_day_of_week"      validate:"omitempty,min=0,max=6"`
	CycleStartTime       *string    `json:"cycle_start_time"       validate:"omitempty,len=5"`
	CycleEndTime         *string    `json:"cycle_end_time"         validate:"omitempty,len=5"`
	CycleDurationMinutes *int       `json:"cycle_duration_minutes" validate:"omitempty,gt=0"`
	CycleStartDate       *time.Time `json:"cycle_start_date"       validate:"omitempty"`
	CycleEndDate         *time.Time `json:"cycle_end_date"         validate:"omitempty"`

	CyclePricingMode     *string  `json:"cycle_pricing_mode"      validate:"omitempty,oneof=private institutional_fixed institutional_per_child"`
	CyclePricePerStudent *float64 `json:"cycle_price_per_student" validate:"omitempty,gte=0"`
	CycleMeetingRevenue  *float64 `json:"cycle_meeting_revenue"   validate:"omitempty,gte=0"`
	CycleStudentCount    *int     `json:"cycle_student_count"     validate:"omitempty,gte=0"`

	CycleDeliveryMode *string `json:"cycle_delivery_mode" validate:"omitempty,oneof=online frontal private_lesson"`
	CycleRequiresZoom *bool   `json:"cycle_requires_zoom" validate:"omitempty"`

	CycleTotalMeetings *int `json:"cycle_total_meetings" validate:"omitempty,gt=0"`
}

func (r UpdateCycleRequest) ApplyTo(mo *m.CycleModel) {
	if r.CycleCustomerID != nil {
		mo.CycleCustomerID = r.CycleCustomerID
	}
	if r.CycleInstructorID != nil {
		mo.CycleInstructorID = r.CycleInstructorID
	}
	if r.CycleName != nil {
		mo.CycleName = *r.CycleName
	}
	if r.CycleDayOfWeek != nil {
		mo.CycleDayOfWeek = *r.CycleDayOfWeek
	}
	if r.CycleStartTime != nil {
		mo.CycleStartTime = *r.CycleStartTime
	}
	if r.CycleEndTime != nil {
		mo.CycleEndTime = *r.CycleEndTime
	}
	if r.CycleDurationMinutes != nil {
		mo.CycleDurationMinutes = *r.CycleDurationMinutes
	}
	if r.CycleStartDate != nil {
		mo.CycleStartDate = *r.CycleStartDate
	}
	if r.CycleEndDate != nil {
		mo.CycleEndDate = r.CycleEndDate
	}
	if r.CyclePricingMode != nil {
		mo.CyclePricingMode = *r.CyclePricingMode
	}
	if r.CyclePricePerStudent != nil {
		mo.CyclePricePerStudent = r.CyclePricePerStudent
	}
	if r.CycleMeetingRevenue != nil {
		mo.CycleMeetingRevenue = r.CycleMeetingRevenue
	}
	if r.CycleStudentCount != nil {
		mo.CycleStudentCount = r.CycleStudentCount
	}
	if r.CycleDeliveryMode != nil {
		mo.CycleDeliveryMode = *r.CycleDeliveryMode
	}
	if r.CycleRequiresZoom != nil {
		mo.CycleRequiresZoom = *r.CycleRequiresZoom
	}
	if r.CycleTotalMeetings != nil {
		mo.CycleTotalMeetings = *r.CycleTotalMeetings
	}
}

type DuplicateCycleRequest struct {
	NewStartDate time.Time `json:"new_start_date" validate:"required"`
}
