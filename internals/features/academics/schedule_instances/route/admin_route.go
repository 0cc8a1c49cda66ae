package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	instanceController "campustrack_backend/internals/features/academics/schedule_instances/controller"
)

func ScheduleInstanceAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := instanceController.NewScheduleInstanceController(db)

	instances := admin.Group("/schedule-instances")
	instances.Get("/", ctl.List)
	instances.Get("/:id", ctl.Get)
	instances.Get("/:id/roster", ctl.Roster)
	instances.Put("/:id", ctl.Update)
	instances.Delete("/:id", ctl.Delete)
}
