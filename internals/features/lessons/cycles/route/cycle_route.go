// internals/features/lessons/cycles/route/cycle_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	cycleCtl "educrm_backend/internals/features/lessons/cycles/controller"
)

func CycleRoutes(r fiber.Router, db *gorm.DB) {
	ctl := cycleCtl.NewCycleController(db)

	cyc := r.Group("/cycles")
	cyc.Post("/", ctl.Create)
	cyc.Get("/", ctl.List)
	cyc.Get("/:id", ctl.GetByID)
	cyc.Patch("/:id", ctl.Update)
	cyc.Delete("/:id", ctl.Delete)

	cyc.Post("/:id/generate-meetings", ctl.GenerateMeetings)
	cyc.Post("/:id/duplicate", ctl.Duplicate)
	cyc.Post("/:id/sync-progress", ctl.SyncProgress)
}
