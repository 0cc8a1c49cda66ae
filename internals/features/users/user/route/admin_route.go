package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userController "campustrack_backend/internals/features/users/user/controller"
)

// Mounted under /api/a (admin group, AuthJWT + IsAdmin already applied).
func UserAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := userController.NewUserController(db)

	users := admin.Group("/users")
	users.Get("/", ctl.List)
	users.Get("/:id", ctl.Get)
	users.Post("/", ctl.Create)
	users.Put("/:id", ctl.Update)
	users.Delete("/:id", ctl.Delete)
}
