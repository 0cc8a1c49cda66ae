package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "campustrack_backend/internals/features/academics/attendance/dto"
	model "campustrack_backend/internals/features/academics/attendance/model"
	instanceModel "campustrack_backend/internals/features/academics/schedule_instances/model"
	helper "campustrack_backend/internals/helpers"
	"campustrack_backend/internals/helpers/dates"
)

type AttendanceController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewAttendanceController(db *gorm.DB) *AttendanceController {
	return &AttendanceController{DB: db, Validate: validator.New()}
}

func currentUserID(c *fiber.Ctx) (uuid.UUID, error) {
	userIDStr, ok := c.Locals("user_id").(string)
	if !ok {
		return uuid.Nil, errors.New("missing user id")
	}
	return uuid.Parse(userIDStr)
}

// statusFor decides present vs late by comparing the submission instant
// against the instance start on its own date. The cutoff is exact: any
// instant strictly after the start, even by a second, is late.
func statusFor(inst *instanceModel.ScheduleInstanceModel, now time.Time) model.AttendanceEnum {
	d := inst.ScheduleInstanceDate
	start := time.Date(d.Year(), d.Month(), d.Day(),
		inst.ScheduleInstanceStartTimeUTC.Hour(),
		inst.ScheduleInstanceStartTimeUTC.Minute(),
		inst.ScheduleInstanceStartTimeUTC.Second(),
		0, time.UTC)
	if now.UTC().After(start) {
		return model.AttendanceLate
	}
	return model.AttendancePresent
}

// POST /api/u/attendances
func (ctl *AttendanceController) Mark(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Invalid user ID in context")
	}

	var req dto.MarkAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	ctx := c.UserContext()

	var inst instanceModel.ScheduleInstanceModel
	if err := ctl.DB.WithContext(ctx).
		First(&inst, "schedule_instance_id = ?", req.ScheduleInstanceID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Schedule instance not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load schedule instance")
	}

	// only roster members may mark themselves present
	var onRoster int64
	if err := ctl.DB.WithContext(ctx).
		Model(&instanceModel.ScheduleInstanceUserModel{}).
		Where("schedule_instance_user_instance_id = ? AND schedule_instance_user_user_id = ?",
			inst.ScheduleInstanceID, userID).
		Count(&onRoster).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to check roster")
	}
	if onRoster == 0 {
		return helper.Error(c, fiber.StatusForbidden, "You are not part of this schedule instance")
	}

	att := model.AttendanceModel{
		AttendanceUserID:             userID,
		AttendanceScheduleInstanceID: inst.ScheduleInstanceID,
		AttendanceStatus:             statusFor(&inst, time.Now()),
	}
	if err := ctl.DB.WithContext(ctx).Create(&att).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return helper.Error(c, fiber.StatusConflict, "Attendance already marked for this schedule instance")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to mark attendance")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Attendance marked", dto.FromModel(&att))
}

// GET /api/u/attendances?start_date=...&end_date=... (defaults: last 15 days)
func (ctl *AttendanceController) MyAttendances(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Invalid user ID in context")
	}

	now := time.Now().UTC()
	startDate := dates.DateOnlyUTC(now.AddDate(0, 0, -15))
	endDate := dates.DateOnlyUTC(now)

	if s := c.Query("start_date"); s != "" {
		d, err := time.ParseInLocation(dates.DateOnlyFormat, s, time.UTC)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "Invalid start_date (YYYY-MM-DD)")
		}
		startDate = d
	}
	if s := c.Query("end_date"); s != "" {
		d, err := time.ParseInLocation(dates.DateOnlyFormat, s, time.UTC)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "Invalid end_date (YYYY-MM-DD)")
		}
		endDate = d
	}

	var attendances []model.AttendanceModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Joins("JOIN schedule_instances ON schedule_instances.schedule_instance_id = attendances.attendance_schedule_instance_id").
		Where("attendances.attendance_user_id = ?", userID).
		Where("schedule_instances.schedule_instance_date BETWEEN ? AND ?", startDate, endDate).
		Order("attendances.attendance_created_at DESC").
		Find(&attendances).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load attendances")
	}

	return helper.Success(c, "OK", dto.FromModels(attendances))
}

// GET /api/a/attendances/instance/:instance_id
func (ctl *AttendanceController) ListByInstance(c *fiber.Ctx) error {
	instanceID, err := uuid.Parse(c.Params("instance_id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid schedule instance id")
	}

	var attendances []model.AttendanceModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Preload("User").
		Where("attendance_schedule_instance_id = ?", instanceID).
		Order("attendance_created_at ASC").
		Find(&attendances).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load attendances")
	}

	return helper.Success(c, "OK", dto.FromModels(attendances))
}

// POST /api/u/attendance-tracking
func (ctl *AttendanceController) CreateTracking(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Invalid user ID in context")
	}

	var req dto.CreateTrackingRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	ctx := c.UserContext()

	var exists int64
	if err := ctl.DB.WithContext(ctx).
		Model(&instanceModel.ScheduleInstanceModel{}).
		Where("schedule_instance_id = ?", req.ScheduleInstanceID).
		Count(&exists).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load schedule instance")
	}
	if exists == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Schedule instance not found")
	}

	ping := model.AttendanceTrackingModel{
		AttendanceTrackingUserID:             userID,
		AttendanceTrackingScheduleInstanceID: req.ScheduleInstanceID,
	}
	if err := ctl.DB.WithContext(ctx).Create(&ping).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to record tracking ping")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Tracking recorded", dto.TrackingFromModel(&ping))
}

// GET /api/a/attendance-tracking/instance/:instance_id
func (ctl *AttendanceController) ListTrackingByInstance(c *fiber.Ctx) error {
	instanceID, err := uuid.Parse(c.Params("instance_id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid schedule instance id")
	}

	var pings []model.AttendanceTrackingModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Preload("User").
		Where("attendance_tracking_schedule_instance_id = ?", instanceID).
		Order("attendance_tracking_created_at ASC").
		Find(&pings).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load tracking pings")
	}

	return helper.Success(c, "OK", dto.TrackingFromModels(pings))
}
