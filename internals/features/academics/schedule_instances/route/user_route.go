package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	instanceController "campustrack_backend/internals/features/academics/schedule_instances/controller"
)

func ScheduleInstanceUserRoutes(user fiber.Router, db *gorm.DB) {
	ctl := instanceController.NewScheduleInstanceController(db)

	instances := user.Group("/schedule-instances")
	instances.Get("/", ctl.MyInstances)
	instances.Get("/:id", ctl.Get)
}
