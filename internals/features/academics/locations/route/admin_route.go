package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	locationController "campustrack_backend/internals/features/academics/locations/controller"
)

func LocationAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := locationController.NewLocationController(db)

	locations := admin.Group("/locations")
	locations.Get("/", ctl.List)
	locations.Get("/:id", ctl.Get)
	locations.Post("/", ctl.Create)
	locations.Put("/:id", ctl.Update)
	locations.Delete("/:id", ctl.Delete)
}
