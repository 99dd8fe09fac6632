// internals/features/billing/quotes/route/quote_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	quoteCtl "educrm_backend/internals/features/billing/quotes/controller"
)

func QuoteRoutes(r fiber.Router, db *gorm.DB) {
	ctl := quoteCtl.NewQuoteController(db)

	q := r.Group("/quotes")
	q.Post("/", ctl.Create)
	q.Get("/", ctl.List)
	q.Get("/:id", ctl.GetByID)
	q.Patch("/:id", ctl.Update)
	q.Delete("/:id", ctl.Delete)

	q.Post("/:id/send", ctl.Send)
	q.Post("/:id/accept", ctl.Accept)
	q.Post("/:id/reject", ctl.Reject)
}
