// internals/features/lessons/meetings/route/meeting_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	meetCtl "educrm_backend/internals/features/lessons/meetings/controller"
	meetSvc "educrm_backend/internals/features/lessons/meetings/service"
)

func MeetingRoutes(r fiber.Router, db *gorm.DB, svc *meetSvc.MeetingService) {
	ctl := meetCtl.NewMeetingController(db, svc)

	mt := r.Group("/meetings")
	mt.Post("/", ctl.Create)
	mt.Get("/", ctl.List)
	mt.Get("/:id", ctl.GetByID)
	mt.Patch("/:id", ctl.Update)
	mt.Delete("/:id", ctl.Delete)

	mt.Post("/:id/complete", ctl.Complete)
	mt.Post("/:id/postpone", ctl.Postpone)
	mt.Post("/:id/cancel", ctl.Cancel)
	mt.Post("/:id/recalculate", ctl.Recalculate)
}
