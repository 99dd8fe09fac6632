// internals/features/lessons/attendance/route/attendance_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attCtl "educrm_backend/internals/features/lessons/attendance/controller"
)

func AttendanceRoutes(r fiber.Router, db *gorm.DB) {
	ctl := attCtl.NewAttendanceController(db)

	r.Post("/meetings/:id/attendance", ctl.Mark)
	r.Get("/meetings/:id/attendance", ctl.ListByMeeting)
	r.Get("/registrations/:id/attendance", ctl.ListByRegistration)
}
