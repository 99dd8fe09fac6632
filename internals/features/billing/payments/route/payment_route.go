// internals/features/billing/payments/route/payment_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	invCtl "educrm_backend/internals/features/billing/payments/controller"
)

// InvoiceRoutes are behind auth.
func InvoiceRoutes(r fiber.Router, db *gorm.DB) {
	ctl := invCtl.NewInvoiceController(db)

	inv := r.Group("/invoices")
	inv.Post("/", ctl.Create)
	inv.Get("/", ctl.List)
	inv.Get("/:id", ctl.GetByID)
}

// PaymentWebhookRoutes is public; the gateway cannot send a bearer token.
func PaymentWebhookRoutes(r fiber.Router, db *gorm.DB) {
	ctl := invCtl.NewInvoiceController(db)
	r.Post("/payments/notification", ctl.HandleNotification)
}
