// internals/features/system/audit/model/audit_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type AuditLogModel struct {
	AuditID uuid.UUID `gorm:"column:audit_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"audit_id"`

	AuditActorID *uuid.UUID `gorm:"column:audit_actor_id;type:uuid;index" json:"audit_actor_id,omitempty"`
	AuditRole    string     `gorm:"column:audit_role;type:varchar(20)" json:"audit_role,omitempty"`

	AuditMethod string `gorm:"column:audit_method;type:varchar(10);not null" json:"audit_method"`
	AuditPath   string `gorm:"column:audit_path;type:varchar(255);not null;index" json:"audit_path"`
	AuditStatus int    `gorm:"column:audit_status;not null" json:"audit_status"`

	AuditIP     string         `gorm:"column:audit_ip;type:varchar(45)" json:"audit_ip,omitempty"`
	AuditDetail datatypes.JSON `gorm:"column:audit_detail;type:jsonb" json:"audit_detail,omitempty"`

	AuditCreatedAt time.Time `gorm:"column:audit_created_at;autoCreateTime;index" json:"audit_created_at"`
}

func (AuditLogModel) TableName() string { return "audit_logs" }

func (m *AuditLogModel) BeforeCreate(tx *gorm.DB) error {
	if m.AuditID == uuid.Nil {
		m.AuditID = uuid.New()
	}
	return nil
}
