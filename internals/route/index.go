package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attendanceRoute "campustrack_backend/internals/features/academics/attendance/route"
	locationRoute "campustrack_backend/internals/features/academics/locations/route"
	instanceRoute "campustrack_backend/internals/features/academics/schedule_instances/route"
	scheduleRoute "campustrack_backend/internals/features/academics/schedules/route"
	statsRoute "campustrack_backend/internals/features/stats/route"
	authRoute "campustrack_backend/internals/features/users/auth/route"
	userRoute "campustrack_backend/internals/features/users/user/route"
	"campustrack_backend/internals/middlewares"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// ===================== PUBLIC =====================
	log.Println("[INFO] Setting up base routes...")
	BaseRoutes(app, db)

	log.Println("[INFO] Setting up auth routes...")
	authRoute.AuthRoutes(app, db)

	// ===================== ADMIN =====================
	log.Println("[INFO] Setting up ADMIN group (/api/a)...")
	admin := app.Group("/api/a",
		middlewares.AuthJWT(),
		middlewares.IsAdmin(),
	)
	userRoute.UserAdminRoutes(admin, db)
	locationRoute.LocationAdminRoutes(admin, db)
	scheduleRoute.ScheduleAdminRoutes(admin, db)
	instanceRoute.ScheduleInstanceAdminRoutes(admin, db)
	attendanceRoute.AttendanceAdminRoutes(admin, db)
	statsRoute.StatsAdminRoutes(admin, db)

	// ===================== ACADEMIC (teacher / student) =====================
	log.Println("[INFO] Setting up ACADEMIC group (/api/u)...")
	user := app.Group("/api/u",
		middlewares.AuthJWT(),
		middlewares.IsAcademic(),
	)
	scheduleRoute.ScheduleUserRoutes(user, db)
	instanceRoute.ScheduleInstanceUserRoutes(user, db)
	attendanceRoute.AttendanceUserRoutes(user, db)
}
