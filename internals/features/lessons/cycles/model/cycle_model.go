package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Pricing modes, each with its own revenue formula.
const (
	PricingPrivate            = "private"
	PricingInstitutionalFixed = "institutional_fixed"
	PricingInstitutionalChild = "institutional_per_child"
)

// Delivery modes (also the meeting activity types).
const (
	DeliveryOnline  = "online"
	DeliveryFrontal = "frontal"
	DeliveryPrivate = "private_lesson"
)

// Cycle is a recurring class series. Counters obey
// completed + remaining <= total; the meeting lifecycle service is the only
// writer outside SyncProgress.
type CycleModel struct {
	CycleID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:cycle_id" json:"cycle_id"`

	CycleCustomerID   *uuid.UUID `gorm:"type:uuid;index;column:cycle_customer_id"   json:"cycle_customer_id,omitempty"`
	CycleInstructorID *uuid.UUID `gorm:"type:uuid;index;column:cycle_instructor_id" json:"cycle_instructor_id,omitempty"`

	CycleName string `gorm:"not null;column:cycle_name" json:"cycle_name"`

	// Schedule
	CycleDayOfWeek       int        `gorm:"not null;column:cycle_day_of_week"       json:"cycle_day_of_week"` // 0=Sunday .. 6=Saturday
	CycleStartTime       string     `gorm:"not null;column:cycle_start_time"        json:"cycle_start_time"`  // "16:00"
	CycleEndTime         string     `gorm:"not null;column:cycle_end_time"          json:"cycle_end_time"`
	CycleDurationMinutes int        `gorm:"not null;column:cycle_duration_minutes"  json:"cycle_duration_minutes"`
	CycleStartDate       time.Time  `gorm:"type:date;not null;column:cycle_start_date" json:"cycle_start_date"`
	CycleEndDate         *time.Time `gorm:"type:date;column:cycle_end_date"            json:"cycle_end_date,omitempty"`

	// Pricing
	CyclePricingMode     string   `gorm:"not null;column:cycle_pricing_mode"      json:"cycle_pricing_mode"`
	CyclePricePerStudent *float64 `gorm:"column:cycle_price_per_student"          json:"cycle_price_per_student,omitempty"`
	CycleMeetingRevenue  *float64 `gorm:"column:cycle_meeting_revenue"            json:"cycle_meeting_revenue,omitempty"`
	CycleStudentCount    *int     `gorm:"column:cycle_student_count"              json:"cycle_student_count,omitempty"` // nil → active registration count

	CycleDeliveryMode string `gorm:"not null;default:'frontal';column:cycle_delivery_mode" json:"cycle_delivery_mode"`
	CycleRequiresZoom bool   `gorm:"not null;default:false;column:cycle_requires_zoom"     json:"cycle_requires_zoom"`

	// Counters
	CycleTotalMeetings     int `gorm:"not null;default:0;column:cycle_total_meetings"     json:"cycle_total_meetings"`
	CycleCompletedMeetings int `gorm:"not null;default:0;column:cycle_completed_meetings" json:"cycle_completed_meetings"`
	CycleRemainingMeetings int `gorm:"not null;default:0;column:cycle_remaining_meetings" json:"cycle_remaining_meetings"`

	CycleCreatedAt time.Time      `gorm:"column:cycle_created_at;autoCreateTime" json:"cycle_created_at"`
	CycleUpdatedAt *time.Time     `gorm:"column:cycle_updated_at;autoUpdateTime" json:"cycle_updated_at,omitempty"`
	CycleDeletedAt gorm.DeletedAt `gorm:"column:cycle_deleted_at;index"          json:"cycle_deleted_at,omitempty"`
	CycleDeletedBy *uuid.UUID     `gorm:"type:uuid;column:cycle_deleted_by"      json:"cycle_deleted_by,omitempty"`
}

func (CycleModel) TableName() string { return "cycles" }

func (m *CycleModel) BeforeCreate(tx *gorm.DB) error {
	if m.CycleID == uuid.Nil {
		m.CycleID = uuid.New()
	}
	return nil
}
