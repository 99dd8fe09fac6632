// internals/features/crm/students/route/student_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	stuCtl "educrm_backend/internals/features/crm/students/controller"
)

func StudentRoutes(r fiber.Router, db *gorm.DB) {
	ctl := stuCtl.NewStudentController(db)

	stu := r.Group("/students")
	stu.Post("/", ctl.Create)
	stu.Get("/", ctl.List)
	stu.Get("/:id", ctl.GetByID)
	stu.Patch("/:id", ctl.Update)
	stu.Delete("/:id", ctl.Delete)
}
