package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	scheduleController "campustrack_backend/internals/features/academics/schedules/controller"
)

func ScheduleAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := scheduleController.NewScheduleController(db)

	schedules := admin.Group("/schedules")
	schedules.Get("/", ctl.List)
	schedules.Get("/today", ctl.Today)
	schedules.Get("/:id", ctl.Get)
	schedules.Get("/:id/roster", ctl.Roster)
	schedules.Post("/reoccurring", ctl.CreateReoccurring)
	schedules.Post("/non-reoccurring", ctl.CreateNonReoccurring)
	schedules.Put("/reoccurring/:id", ctl.UpdateReoccurring)
	schedules.Put("/non-reoccurring/:id", ctl.UpdateNonReoccurring)
	schedules.Delete("/:id", ctl.Delete)
}
