package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	TaskStatusPending = "pending"
	TaskStatusRunning = "running"
	TaskStatusDone    = "done"
	TaskStatusFailed  = "failed"
)

// Task types consumed by the worker.
const (
	TaskMeetingReplacement = "meeting.replacement"
	TaskNotifyEmail        = "notify.email"
	TaskNotifyWhatsApp     = "notify.whatsapp"
)

// Task is one row of the outbox: enqueued inside the request, drained by the
// polling worker. At-least-once; consumers must be idempotent.
type TaskModel struct {
	TaskID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:task_id" json:"task_id"`

	TaskType    string         `gorm:"not null;index;column:task_type"               json:"task_type"`
	TaskPayload datatypes.JSON `gorm:"type:jsonb;column:task_payload"                json:"task_payload"`
	TaskStatus  string         `gorm:"not null;default:'pending';index;column:task_status" json:"task_status"`

	TaskAttempts  int        `gorm:"not null;default:0;column:task_attempts" json:"task_attempts"`
	TaskLastError *string    `gorm:"column:task_last_error"                  json:"task_last_error,omitempty"`
	TaskRunAfter  time.Time  `gorm:"not null;index;column:task_run_after"    json:"task_run_after"`
	TaskDoneAt    *time.Time `gorm:"column:task_done_at"                     json:"task_done_at,omitempty"`

	TaskCreatedAt time.Time  `gorm:"column:task_created_at;autoCreateTime" json:"task_created_at"`
	TaskUpdatedAt *time.Time `gorm:"column:task_updated_at;autoUpdateTime" json:"task_updated_at,omitempty"`
}

func (TaskModel) TableName() string { return "tasks" }

func (m *TaskModel) BeforeCreate(tx *gorm.DB) error {
	if m.TaskID == uuid.Nil {
		m.TaskID = uuid.New()
	}
	return nil
}
