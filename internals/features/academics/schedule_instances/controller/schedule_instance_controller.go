package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "campustrack_backend/internals/features/academics/schedule_instances/dto"
	model "campustrack_backend/internals/features/academics/schedule_instances/model"
	repository "campustrack_backend/internals/features/academics/schedule_instances/repository"
	helper "campustrack_backend/internals/helpers"
	"campustrack_backend/internals/helpers/dates"
)

type ScheduleInstanceController struct {
	DB       *gorm.DB
	Store    *repository.GormStore
	Validate *validator.Validate
}

func NewScheduleInstanceController(db *gorm.DB) *ScheduleInstanceController {
	return &ScheduleInstanceController{
		DB:       db,
		Store:    repository.NewGormStore(db),
		Validate: validator.New(),
	}
}

// GET /api/a/schedule-instances?date=YYYY-MM-DD&from=...&to=...
func (ctl *ScheduleInstanceController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 25, 200)
	ctx := c.UserContext()

	q := ctl.DB.WithContext(ctx).Model(&model.ScheduleInstanceModel{})

	if dateStr := c.Query("date"); dateStr != "" {
		d, err := time.ParseInLocation(dates.DateOnlyFormat, dateStr, time.UTC)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "Invalid date (YYYY-MM-DD)")
		}
		q = q.Where("schedule_instance_date = ?", d)
	}
	if fromStr := c.Query("from"); fromStr != "" {
		d, err := time.ParseInLocation(dates.DateOnlyFormat, fromStr, time.UTC)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "Invalid from (YYYY-MM-DD)")
		}
		q = q.Where("schedule_instance_date >= ?", d)
	}
	if toStr := c.Query("to"); toStr != "" {
		d, err := time.ParseInLocation(dates.DateOnlyFormat, toStr, time.UTC)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "Invalid to (YYYY-MM-DD)")
		}
		q = q.Where("schedule_instance_date <= ?", d)
	}
	if scheduleIDStr := c.Query("schedule_id"); scheduleIDStr != "" {
		sid, err := uuid.Parse(scheduleIDStr)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "Invalid schedule_id")
		}
		q = q.Where("schedule_instance_schedule_id = ?", sid)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to count schedule instances")
	}

	var instances []model.ScheduleInstanceModel
	if err := q.Order("schedule_instance_date DESC, schedule_instance_start_time_utc ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&instances).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load schedule instances")
	}

	resp := dto.FromModels(instances)
	return helper.SuccessWithPagination(c, "OK", resp, helper.BuildPagination(paging, total, len(resp)))
}

// GET /api/a/schedule-instances/:id
func (ctl *ScheduleInstanceController) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid schedule instance id")
	}

	var inst model.ScheduleInstanceModel
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&inst, "schedule_instance_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Schedule instance not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load schedule instance")
	}

	return helper.Success(c, "OK", dto.FromModel(&inst))
}

// GET /api/a/schedule-instances/:id/roster
func (ctl *ScheduleInstanceController) Roster(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid schedule instance id")
	}

	ids, err := ctl.Store.RosterUserIDsForInstance(c.UserContext(), id)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load roster")
	}
	return helper.Success(c, "OK", fiber.Map{"user_ids": ids})
}

// GET /api/u/schedule-instances — instances for the authenticated user
func (ctl *ScheduleInstanceController) MyInstances(c *fiber.Ctx) error {
	userIDStr, ok := c.Locals("user_id").(string)
	if !ok {
		return helper.Error(c, fiber.StatusUnauthorized, "Invalid user ID in context")
	}
	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Invalid UUID format")
	}

	instances, err := ctl.Store.ByUser(c.UserContext(), userID)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load schedule instances")
	}
	return helper.Success(c, "OK", dto.FromModels(instances))
}

// PUT /api/a/schedule-instances/:id — teacher/location only
func (ctl *ScheduleInstanceController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid schedule instance id")
	}

	var req dto.UpdateScheduleInstanceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var inst model.ScheduleInstanceModel
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&inst, "schedule_instance_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Schedule instance not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load schedule instance")
	}

	inst.ScheduleInstanceTeacherID = req.TeacherID
	inst.ScheduleInstanceLocationID = req.LocationID

	if err := ctl.DB.WithContext(c.UserContext()).Save(&inst).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return helper.Error(c, fiber.StatusConflict, "An identical schedule instance already exists")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update schedule instance")
	}

	return helper.Success(c, "Schedule instance updated", dto.FromModel(&inst))
}

// DELETE /api/a/schedule-instances/:id — roster rows go in the same tx;
// attendance rows cascade via FK
func (ctl *ScheduleInstanceController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid schedule instance id")
	}

	err = ctl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&model.ScheduleInstanceUserModel{}, "schedule_instance_user_instance_id = ?", id).Error; err != nil {
			return err
		}
		res := tx.Delete(&model.ScheduleInstanceModel{}, "schedule_instance_id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Schedule instance not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete schedule instance")
	}

	return helper.Success(c, "Deleted successfully", nil)
}
