// internals/features/users/auth/route/auth_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authCtl "educrm_backend/internals/features/users/auth/controller"
	"educrm_backend/internals/middlewares"
	authmw "educrm_backend/internals/middlewares/auth"
)

// Public auth endpoints, behind the stricter limiter.
func AuthRoutes(r fiber.Router, db *gorm.DB) {
	ctl := authCtl.NewAuthController(db)

	a := r.Group("/auth", middlewares.AuthRateLimiter())
	a.Post("/register", ctl.Register)
	a.Post("/login", ctl.Login)
	a.Post("/google", ctl.GoogleLogin)
	a.Post("/refresh", ctl.Refresh)

	// endpoints behind auth
	a.Post("/logout", authmw.AuthMiddleware(db), ctl.Logout)
	a.Get("/me", authmw.AuthMiddleware(db), ctl.Me)
}
