// internals/features/system/audit/route/audit_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	auditCtl "educrm_backend/internals/features/system/audit/controller"
)

func AuditRoutes(r fiber.Router, db *gorm.DB) {
	ctl := auditCtl.NewAuditController(db)
	r.Get("/audit-logs", ctl.List)
}
