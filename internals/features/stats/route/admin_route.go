package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	statsController "campustrack_backend/internals/features/stats/controller"
)

func StatsAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := statsController.NewStatsController(db)
	admin.Get("/stats", ctl.Get)
}
