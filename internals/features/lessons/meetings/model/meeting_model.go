package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Meeting statuses. scheduled is initial; the rest are terminal for the
// meeting instance (postponed spawns a replacement row).
const (
	StatusScheduled = "scheduled"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
	StatusPostponed = "postponed"
)

// Meeting is one occurrence of a cycle. Financial fields are computed by the
// lifecycle service, never user-entered.
type MeetingModel struct {
	MeetingID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:meeting_id" json:"meeting_id"`

	MeetingCycleID      uuid.UUID  `gorm:"type:uuid;not null;index;column:meeting_cycle_id"  json:"meeting_cycle_id"`
	MeetingInstructorID *uuid.UUID `gorm:"type:uuid;index;column:meeting_instructor_id"      json:"meeting_instructor_id,omitempty"`

	MeetingDate      time.Time `gorm:"type:date;not null;column:meeting_date" json:"meeting_date"`
	MeetingStartTime string    `gorm:"not null;column:meeting_start_time"     json:"meeting_start_time"`
	MeetingEndTime   string    `gorm:"not null;column:meeting_end_time"       json:"meeting_end_time"`

	MeetingStatus       string  `gorm:"not null;default:'scheduled';index;column:meeting_status" json:"meeting_status"`
	MeetingActivityType string  `gorm:"not null;column:meeting_activity_type"                    json:"meeting_activity_type"`
	MeetingTopic        *string `gorm:"column:meeting_topic"                                     json:"meeting_topic,omitempty"`

	// Financials (whole currency units, computed)
	MeetingRevenue           float64 `gorm:"not null;default:0;column:meeting_revenue"            json:"meeting_revenue"`
	MeetingInstructorPayment float64 `gorm:"not null;default:0;column:meeting_instructor_payment" json:"meeting_instructor_payment"`
	MeetingProfit            float64 `gorm:"not null;default:0;column:meeting_profit"             json:"meeting_profit"`

	// Zoom room, when provisioned
	MeetingZoomMeetingID *string `gorm:"column:meeting_zoom_meeting_id" json:"meeting_zoom_meeting_id,omitempty"`
	MeetingZoomJoinURL   *string `gorm:"column:meeting_zoom_join_url"   json:"meeting_zoom_join_url,omitempty"`
	MeetingZoomStartURL  *string `gorm:"column:meeting_zoom_start_url"  json:"meeting_zoom_start_url,omitempty"`
	MeetingZoomPassword  *string `gorm:"column:meeting_zoom_password"   json:"meeting_zoom_password,omitempty"`

	// Provenance: set on a replacement meeting, points at the postponed one.
	MeetingReplacesMeetingID *uuid.UUID `gorm:"type:uuid;index;column:meeting_replaces_meeting_id" json:"meeting_replaces_meeting_id,omitempty"`

	MeetingStatusUpdatedAt *time.Time `gorm:"column:meeting_status_updated_at"            json:"meeting_status_updated_at,omitempty"`
	MeetingStatusUpdatedBy *uuid.UUID `gorm:"type:uuid;column:meeting_status_updated_by"  json:"meeting_status_updated_by,omitempty"`

	MeetingCreatedAt time.Time      `gorm:"column:meeting_created_at;autoCreateTime" json:"meeting_created_at"`
	MeetingUpdatedAt *time.Time     `gorm:"column:meeting_updated_at;autoUpdateTime" json:"meeting_updated_at,omitempty"`
	MeetingDeletedAt gorm.DeletedAt `gorm:"column:meeting_deleted_at;index"          json:"meeting_deleted_at,omitempty"`
	MeetingDeletedBy *uuid.UUID     `gorm:"type:uuid;column:meeting_deleted_by"      json:"meeting_deleted_by,omitempty"`
}

func (MeetingModel) TableName() string { return "meetings" }

func (m *MeetingModel) BeforeCreate(tx *gorm.DB) error {
	if m.MeetingID == uuid.Nil {
		m.MeetingID = uuid.New()
	}
	return nil
}
