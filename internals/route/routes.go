// internals/route/routes.go
package route

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	invoiceRoute "educrm_backend/internals/features/billing/payments/route"
	quoteRoute "educrm_backend/internals/features/billing/quotes/route"
	customerRoute "educrm_backend/internals/features/crm/customers/route"
	instructorRoute "educrm_backend/internals/features/crm/instructors/route"
	studentRoute "educrm_backend/internals/features/crm/students/route"
	attendanceRoute "educrm_backend/internals/features/lessons/attendance/route"
	cycleRoute "educrm_backend/internals/features/lessons/cycles/route"
	meetingRoute "educrm_backend/internals/features/lessons/meetings/route"
	meetingService "educrm_backend/internals/features/lessons/meetings/service"
	registrationRoute "educrm_backend/internals/features/lessons/registrations/route"
	auditRoute "educrm_backend/internals/features/system/audit/route"
	auditService "educrm_backend/internals/features/system/audit/service"
	authRoute "educrm_backend/internals/features/users/auth/route"

	"educrm_backend/internals/constants"
	authMiddleware "educrm_backend/internals/middlewares/auth"
)

var startTime = time.Now()

/* ===================== BASE ===================== */

// BaseRoutes are unauthenticated service endpoints.
func BaseRoutes(app *fiber.App, db *gorm.DB) {
	app.Get("/health", func(c *fiber.Ctx) error {
		sqlDB, err := db.DB()
		dbStatus := "ok"
		if err != nil || sqlDB.Ping() != nil {
			dbStatus = "down"
		}
		return c.JSON(fiber.Map{
			"status":   "ok",
			"database": dbStatus,
			"uptime":   time.Since(startTime).String(),
		})
	})
}

/* ===================== API ===================== */

func SetupRoutes(app *fiber.App, db *gorm.DB, meetingSvc *meetingService.MeetingService, auditRecorder *auditService.Recorder) {
	log.Println("[INFO] Setting up AuthRoutes...")
	authRoute.AuthRoutes(app, db)

	// Gateway callbacks cannot carry a bearer token.
	log.Println("[INFO] Setting up payment webhook...")
	invoiceRoute.PaymentWebhookRoutes(app.Group("/api"), db)

	log.Println("[INFO] Setting up API group...")
	api := app.Group("/api",
		authMiddleware.AuthMiddleware(db),
		auditRecorder.Middleware(),
	)

	// ===================== CRM =====================
	log.Println("[INFO] Mounting CRM routes...")
	customerRoute.CustomerRoutes(api, db)
	studentRoute.StudentRoutes(api, db)
	instructorRoute.InstructorRoutes(api, db)

	// ===================== LESSONS =====================
	log.Println("[INFO] Mounting Lessons routes...")
	cycleRoute.CycleRoutes(api, db)
	meetingRoute.MeetingRoutes(api, db, meetingSvc)
	registrationRoute.RegistrationRoutes(api, db)
	attendanceRoute.AttendanceRoutes(api, db)

	// ===================== BILLING =====================
	log.Println("[INFO] Mounting Billing routes...")
	billing := api.Group("", authMiddleware.OnlyRoles(constants.FinanceAndAbove...))
	quoteRoute.QuoteRoutes(billing, db)
	invoiceRoute.InvoiceRoutes(billing, db)

	// ===================== SYSTEM =====================
	log.Println("[INFO] Mounting System routes...")
	system := api.Group("", authMiddleware.OnlyRoles(constants.AdminAndAbove...))
	auditRoute.AuditRoutes(system, db)
}
