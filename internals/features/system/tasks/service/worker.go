// internals/features/system/tasks/service/worker.go
package service

import (
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	"educrm_backend/internals/features/system/tasks/model"
)

// Handler consumes one task payload. Must be idempotent: the worker is
// at-least-once by design.
type Handler func(payload []byte) error

type Worker struct {
	DB          *gorm.DB
	Interval    time.Duration
	MaxAttempts int
	BatchSize   int

	handlers map[string]Handler
	stop     chan struct{}
}

func NewWorker(db *gorm.DB) *Worker {
	return &Worker{
		DB:          db,
		Interval:    5 * time.Second,
		MaxAttempts: 5,
		BatchSize:   20,
		handlers:    make(map[string]Handler),
		stop:        make(chan struct{}),
	}
}

func (w *Worker) Register(taskType string, h Handler) {
	w.handlers[taskType] = h
}

// Start runs the polling loop in a goroutine.
func (w *Worker) Start() {
	go func() {
		ticker := time.NewTicker(w.Interval)
		defer ticker.Stop()
		for {
			select {
			case <-w.stop:
				return
			case <-ticker.C:
				w.drain()
			}
		}
	}()
}

func (w *Worker) Stop() { close(w.stop) }

// Drain processes one batch immediately. Exposed for tests and for callers
// that want side effects flushed without waiting a tick.
func (w *Worker) Drain() { w.drain() }

func (w *Worker) drain() {
	var batch []model.TaskModel
	err := w.DB.
		Where("task_status = ? AND task_run_after <= ?", model.TaskStatusPending, time.Now()).
		Order("task_created_at ASC").
		Limit(w.BatchSize).
		Find(&batch).Error
	if err != nil {
		log.Printf("[ERROR] task poll: %v", err)
		return
	}

	for i := range batch {
		w.runOne(&batch[i])
	}
}

func (w *Worker) runOne(t *model.TaskModel) {
	// Claim: pending → running, guarded so a concurrent worker loses the race.
	claim := w.DB.Model(&model.TaskModel{}).
		Where("task_id = ? AND task_status = ?", t.TaskID, model.TaskStatusPending).
		Update("task_status", model.TaskStatusRunning)
	if claim.Error != nil || claim.RowsAffected == 0 {
		return
	}

	h, ok := w.handlers[t.TaskType]
	if !ok {
		msg := fmt.Sprintf("no handler for task type %q", t.TaskType)
		log.Printf("[ERROR] %s", msg)
		w.fail(t, msg)
		return
	}

	if err := h(t.TaskPayload); err != nil {
		attempts := t.TaskAttempts + 1
		msg := err.Error()
		log.Printf("[WARN] task %s (%s) attempt %d: %v", t.TaskID, t.TaskType, attempts, err)
		if attempts >= w.MaxAttempts {
			w.fail(t, msg)
			return
		}
		// linear backoff, one minute per attempt
		w.DB.Model(&model.TaskModel{}).
			Where("task_id = ?", t.TaskID).
			Updates(map[string]interface{}{
				"task_status":     model.TaskStatusPending,
				"task_attempts":   attempts,
				"task_last_error": msg,
				"task_run_after":  time.Now().Add(time.Duration(attempts) * time.Minute),
			})
		return
	}

	now := time.Now()
	w.DB.Model(&model.TaskModel{}).
		Where("task_id = ?", t.TaskID).
		Updates(map[string]interface{}{
			"task_status":   model.TaskStatusDone,
			"task_attempts": t.TaskAttempts + 1,
			"task_done_at":  &now,
		})
}

func (w *Worker) fail(t *model.TaskModel, msg string) {
	w.DB.Model(&model.TaskModel{}).
		Where("task_id = ?", t.TaskID).
		Updates(map[string]interface{}{
			"task_status":     model.TaskStatusFailed,
			"task_attempts":   t.TaskAttempts + 1,
			"task_last_error": msg,
		})
}

// RequeueStale returns running tasks older than cutoff to pending; covers
// a worker crash between claim and completion.
func (w *Worker) RequeueStale(olderThan time.Duration) {
	res := w.DB.Model(&model.TaskModel{}).
		Where("task_status = ? AND task_updated_at < ?", model.TaskStatusRunning, time.Now().Add(-olderThan)).
		Update("task_status", model.TaskStatusPending)
	if res.Error == nil && res.RowsAffected > 0 {
		log.Printf("🧹 requeued %d stale running tasks", res.RowsAffected)
	}
}
