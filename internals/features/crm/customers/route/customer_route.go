// internals/features/crm/customers/route/customer_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	custCtl "educrm_backend/internals/features/crm/customers/controller"
)

func CustomerRoutes(r fiber.Router, db *gorm.DB) {
	ctl := custCtl.NewCustomerController(db)

	cust := r.Group("/customers")
	cust.Post("/", ctl.Create)
	cust.Get("/", ctl.List)
	cust.Get("/:id", ctl.GetByID)
	cust.Patch("/:id", ctl.Update)
	cust.Delete("/:id", ctl.Delete)
}
