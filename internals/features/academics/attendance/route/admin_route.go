package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attendanceController "campustrack_backend/internals/features/academics/attendance/controller"
)

func AttendanceAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := attendanceController.NewAttendanceController(db)

	attendances := admin.Group("/attendances")
	attendances.Get("/instance/:instance_id", ctl.ListByInstance)

	tracking := admin.Group("/attendance-tracking")
	tracking.Get("/instance/:instance_id", ctl.ListTrackingByInstance)
}
