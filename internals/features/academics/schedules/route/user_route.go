package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	scheduleController "campustrack_backend/internals/features/academics/schedules/controller"
)

func ScheduleUserRoutes(user fiber.Router, db *gorm.DB) {
	ctl := scheduleController.NewScheduleController(db)

	schedules := user.Group("/schedules")
	schedules.Get("/", ctl.MySchedules)
}
