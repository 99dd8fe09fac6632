// internals/features/crm/instructors/route/instructor_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	insCtl "educrm_backend/internals/features/crm/instructors/controller"
)

func InstructorRoutes(r fiber.Router, db *gorm.DB) {
	ctl := insCtl.NewInstructorController(db)

	ins := r.Group("/instructors")
	ins.Post("/", ctl.Create)
	ins.Get("/", ctl.List)
	ins.Get("/:id", ctl.GetByID)
	ins.Patch("/:id", ctl.Update)
	ins.Delete("/:id", ctl.Delete)
}
