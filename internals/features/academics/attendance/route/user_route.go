package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attendanceController "campustrack_backend/internals/features/academics/attendance/controller"
)

func AttendanceUserRoutes(user fiber.Router, db *gorm.DB) {
	ctl := attendanceController.NewAttendanceController(db)

	attendances := user.Group("/attendances")
	attendances.Get("/", ctl.MyAttendances)
	attendances.Post("/", ctl.Mark)

	tracking := user.Group("/attendance-tracking")
	tracking.Post("/", ctl.CreateTracking)
}
