package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	locationModel "campustrack_backend/internals/features/academics/locations/model"
	instanceModel "campustrack_backend/internals/features/academics/schedule_instances/model"
	scheduleModel "campustrack_backend/internals/features/academics/schedules/model"
	userModel "campustrack_backend/internals/features/users/user/model"
	helper "campustrack_backend/internals/helpers"
)

type StatsController struct {
	DB *gorm.DB
}

func NewStatsController(db *gorm.DB) *StatsController {
	return &StatsController{DB: db}
}

type statsResponse struct {
	TeachersCount          int64 `json:"teachers_count"`
	StudentsCount          int64 `json:"students_count"`
	LocationsCount         int64 `json:"locations_count"`
	SchedulesCount         int64 `json:"schedules_count"`
	ScheduleInstancesCount int64 `json:"schedule_instances_count"`
}

// GET /api/a/stats — dashboard counters
func (ctl *StatsController) Get(c *fiber.Ctx) error {
	ctx := c.UserContext()
	db := ctl.DB.WithContext(ctx)

	var resp statsResponse

	if err := db.Model(&userModel.UserModel{}).
		Where("user_is_admin = FALSE AND user_is_student = FALSE").
		Count(&resp.TeachersCount).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load stats")
	}
	if err := db.Model(&userModel.UserModel{}).
		Where("user_is_admin = FALSE AND user_is_student = TRUE").
		Count(&resp.StudentsCount).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load stats")
	}
	if err := db.Model(&locationModel.LocationModel{}).Count(&resp.LocationsCount).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load stats")
	}
	if err := db.Model(&scheduleModel.ScheduleModel{}).Count(&resp.SchedulesCount).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load stats")
	}
	if err := db.Model(&instanceModel.ScheduleInstanceModel{}).Count(&resp.ScheduleInstancesCount).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load stats")
	}

	return helper.Success(c, "OK", resp)
}
