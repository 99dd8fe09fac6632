// internals/features/system/audit/service/recorder.go
package service

import (
	"encoding/json"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"educrm_backend/internals/features/system/audit/model"
)

// Recorder buffers audit rows through a channel so request handlers never
// block on the audit insert. Entries are dropped, with a log line, if the
// buffer is full.
type Recorder struct {
	db   *gorm.DB
	ch   chan model.AuditLogModel
	done chan struct{}
}

func NewRecorder(db *gorm.DB) *Recorder {
	r := &Recorder{
		db:   db,
		ch:   make(chan model.AuditLogModel, 256),
		done: make(chan struct{}),
	}
	go r.loop()
	return r
}

func (r *Recorder) loop() {
	for entry := range r.ch {
		if err := r.db.Create(&entry).Error; err != nil {
			log.Printf("[ERROR] audit write: %v", err)
		}
	}
	close(r.done)
}

// Close flushes buffered entries and stops the writer.
func (r *Recorder) Close() {
	close(r.ch)
	<-r.done
}

// Middleware records every mutating request after the handler finishes.
func (r *Recorder) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()

		switch c.Method() {
		case fiber.MethodPost, fiber.MethodPut, fiber.MethodPatch, fiber.MethodDelete:
		default:
			return err
		}

		entry := model.AuditLogModel{
			AuditMethod: c.Method(),
			AuditPath:   c.Path(),
			AuditStatus: c.Response().StatusCode(),
			AuditIP:     c.IP(),
		}
		if raw := c.Locals("user_id"); raw != nil {
			switch v := raw.(type) {
			case uuid.UUID:
				entry.AuditActorID = &v
			case string:
				if id, perr := uuid.Parse(v); perr == nil {
					entry.AuditActorID = &id
				}
			}
		}
		if role, ok := c.Locals("role").(string); ok {
			entry.AuditRole = role
		}
		if fe, ok := err.(*fiber.Error); ok {
			entry.AuditStatus = fe.Code
			if detail, merr := json.Marshal(fiber.Map{"error": fe.Message}); merr == nil {
				entry.AuditDetail = datatypes.JSON(detail)
			}
		}

		select {
		case r.ch <- entry:
		default:
			log.Printf("[WARN] audit buffer full, dropping %s %s", entry.AuditMethod, entry.AuditPath)
		}
		return err
	}
}
