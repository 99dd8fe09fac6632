// internals/features/lessons/registrations/route/registration_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	regCtl "educrm_backend/internals/features/lessons/registrations/controller"
)

func RegistrationRoutes(r fiber.Router, db *gorm.DB) {
	ctl := regCtl.NewRegistrationController(db)

	reg := r.Group("/registrations")
	reg.Post("/", ctl.Create)
	reg.Get("/", ctl.List)
	reg.Patch("/:id", ctl.Update)
	reg.Delete("/:id", ctl.Delete)
}
