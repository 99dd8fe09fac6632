package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"github.com/gofiber/utils"

	"educrm_backend/internals/configs"
	database "educrm_backend/internals/databases"
	paymentService "educrm_backend/internals/features/billing/payments/service"
	meetingService "educrm_backend/internals/features/lessons/meetings/service"
	auditService "educrm_backend/internals/features/system/audit/service"
	taskModel "educrm_backend/internals/features/system/tasks/model"
	taskService "educrm_backend/internals/features/system/tasks/service"
	scheduler "educrm_backend/internals/features/users/auth/scheduler"
	"educrm_backend/internals/integrations/notify"
	"educrm_backend/internals/integrations/zoom"
	middlewares "educrm_backend/internals/middlewares"
	routes "educrm_backend/internals/route"
)

func main() {
	configs.LoadEnv()

	app := fiber.New(fiber.Config{
		JSONEncoder:             sonic.Marshal,
		JSONDecoder:             sonic.Unmarshal,
		DisableStartupMessage:   true,
		ProxyHeader:             fiber.HeaderXForwardedFor,
		EnableTrustedProxyCheck: true,
		TrustedProxies:          []string{"0.0.0.0/0"},
	})

	app.Use(compress.New(compress.Config{Level: compress.LevelDefault}))
	app.Use(etag.New())

	// Request-ID + timing
	app.Use(func(c *fiber.Ctx) error {
		id := c.Get("X-Request-ID")
		if id == "" {
			id = utils.UUID()
		}
		c.Set("X-Request-ID", id)
		c.Locals("reqid", id)
		start := time.Now()
		// HTTP timeout guard, aligned with the DB statement_timeout
		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()
		c.SetUserContext(ctx)
		err := c.Next()
		dur := time.Since(start)
		log.Printf("[REQ] id=%s %s %s status=%d dur=%s", id, c.Method(), c.OriginalURL(), c.Response().StatusCode(), dur)
		return err
	})

	middlewares.SetupMiddlewares(app)

	database.ConnectDB()
	database.TunePool()
	database.WarmUpQueries()

	// schedulers after the DB is up
	scheduler.StartBlacklistCleanupScheduler(database.DB)

	paymentService.InitMidtrans(configs.MidtransServerKey)

	// Zoom host pool; disabled when credentials are absent
	zoomClient := zoom.NewClient(
		configs.ZoomAccountID,
		configs.ZoomClientID,
		configs.ZoomClientSecret,
		configs.ZoomHostEmails,
	)

	meetingSvc := meetingService.NewMeetingService(database.DB)
	meetingSvc.Zoom = zoomClient

	// task worker: replacement synthesis + notifications
	mailer := notify.NewMailer(
		configs.SMTPHost, configs.SMTPPort,
		configs.SMTPUser, configs.SMTPPass, configs.SMTPFrom,
	)
	whatsapp := notify.NewWhatsAppSender(configs.WhatsAppAPIURL, configs.WhatsAppToken)

	worker := taskService.NewWorker(database.DB)
	worker.Register(taskModel.TaskMeetingReplacement, meetingSvc.ReplacementHandler())
	worker.Register(taskModel.TaskNotifyEmail, notify.EmailHandler(mailer))
	worker.Register(taskModel.TaskNotifyWhatsApp, notify.WhatsAppHandler(whatsapp))
	worker.RequeueStale(10 * time.Minute)
	worker.Start()

	auditRecorder := auditService.NewRecorder(database.DB)

	routes.BaseRoutes(app, database.DB)
	routes.SetupRoutes(app, database.DB, meetingSvc, auditRecorder)

	app.Server().ReadTimeout = 15 * time.Second
	app.Server().WriteTimeout = 30 * time.Second
	app.Server().IdleTimeout = 90 * time.Second

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	go func() {
		log.Printf("✅ Listening on :%s", port)
		if err := app.Listen("0.0.0.0:" + port); err != nil {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	worker.Stop()
	auditRecorder.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = app.ShutdownWithContext(ctx)

	if sqlDB, err := database.DB.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
