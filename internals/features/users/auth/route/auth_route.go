package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "campustrack_backend/internals/features/users/auth/controller"
	"campustrack_backend/internals/middlewares"
)

func AuthRoutes(app *fiber.App, db *gorm.DB) {
	ctl := authController.NewAuthController(db)

	auth := app.Group("/api/auth")
	auth.Post("/login", middlewares.LoginRateLimiter(), ctl.Login)

	authed := auth.Group("", middlewares.AuthJWT())
	authed.Get("/me", ctl.Me)
	authed.Put("/password", ctl.ChangePassword)
}
