// internals/features/system/tasks/service/task_service.go
package service

import (
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"

	"educrm_backend/internals/features/system/tasks/model"
)

// Enqueue inserts a pending task. Call it on the same *gorm.DB (or tx) as
// the triggering write so the outbox row commits with the state change.
func Enqueue(db *gorm.DB, taskType string, payload interface{}) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal task payload: %w", err)
	}
	task := model.TaskModel{
		TaskType:     taskType,
		TaskPayload:  raw,
		TaskStatus:   model.TaskStatusPending,
		TaskRunAfter: time.Now(),
	}
	return db.Create(&task).Error
}
