package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "campustrack_backend/internals/features/academics/schedules/dto"
	model "campustrack_backend/internals/features/academics/schedules/model"
	repository "campustrack_backend/internals/features/academics/schedules/repository"
	userModel "campustrack_backend/internals/features/users/user/model"
	helper "campustrack_backend/internals/helpers"
	"campustrack_backend/internals/helpers/dates"
)

type ScheduleController struct {
	DB       *gorm.DB
	Repo     *repository.ScheduleRepository
	Validate *validator.Validate
}

func NewScheduleController(db *gorm.DB) *ScheduleController {
	return &ScheduleController{
		DB:       db,
		Repo:     repository.NewScheduleRepository(db),
		Validate: validator.New(),
	}
}

/* =========================================================
   Create (recurring / one-off)
   ========================================================= */

// POST /api/a/schedules/reoccurring
func (ctl *ScheduleController) CreateReoccurring(c *fiber.Ctx) error {
	var req dto.CreateReoccurringScheduleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	sched, err := req.ToModel()
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid time format (HH:MM or HH:MM:SS)")
	}

	return ctl.createSchedule(c, sched, req.Students)
}

// POST /api/a/schedules/non-reoccurring
func (ctl *ScheduleController) CreateNonReoccurring(c *fiber.Ctx) error {
	var req dto.CreateNonReoccurringScheduleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	sched, err := req.ToModel()
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid time or date format")
	}

	return ctl.createSchedule(c, sched, req.Students)
}

func (ctl *ScheduleController) createSchedule(c *fiber.Ctx, sched model.ScheduleModel, students []uuid.UUID) error {
	ctx := c.UserContext()

	if !sched.ScheduleStartTimeUTC.Before(sched.ScheduleEndTimeUTC.Time) {
		return helper.Error(c, fiber.StatusBadRequest, "start_time_utc must be before end_time_utc")
	}
	if sched.ScheduleDate != nil && !dates.DayMatchesDate(sched.ScheduleDay, *sched.ScheduleDate) {
		return helper.Error(c, fiber.StatusBadRequest, "day does not match the weekday of date")
	}

	// teacher must exist and be an academic non-student
	var teacher userModel.UserModel
	if err := ctl.DB.WithContext(ctx).
		First(&teacher, "user_id = ? AND user_is_admin = FALSE AND user_is_student = FALSE", sched.ScheduleTeacherID).Error; err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Teacher not found")
	}

	dup, err := ctl.Repo.FindDuplicateSlot(ctx, &sched)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to check for duplicate schedule")
	}
	if dup != nil {
		return helper.Error(c, fiber.StatusConflict, "A schedule already exists for this slot")
	}

	studentIDs, err := ctl.filterStudentIDs(c, students)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to resolve students")
	}

	if err := ctl.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&sched).Error; err != nil {
			return err
		}
		return ctl.Repo.ReplaceRoster(ctx, tx, sched.ScheduleID, sched.ScheduleTeacherID, studentIDs)
	}); err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create schedule")
	}

	// reload with teacher eager-loaded; response falls back to the bare
	// row when the reload fails
	_ = ctl.DB.WithContext(ctx).
		Preload("Teacher").Preload("Teacher.AdditionalDetails").
		First(&sched, "schedule_id = ?", sched.ScheduleID).Error

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Schedule created", dto.FromModel(&sched))
}

func (ctl *ScheduleController) filterStudentIDs(c *fiber.Ctx, candidates []uuid.UUID) ([]uuid.UUID, error) {
	if len(candidates) == 0 {
		return nil, nil
	}
	var ids []uuid.UUID
	err := ctl.DB.WithContext(c.UserContext()).
		Model(&userModel.UserModel{}).
		Where("user_id IN ? AND user_is_admin = FALSE AND user_is_student = TRUE", candidates).
		Pluck("user_id", &ids).Error
	return ids, err
}

/* =========================================================
   Read
   ========================================================= */

// GET /api/a/schedules
func (ctl *ScheduleController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 25, 200)
	ctx := c.UserContext()

	q := ctl.DB.WithContext(ctx).Model(&model.ScheduleModel{})

	if day := c.Query("day"); day != "" {
		if !dates.DayOfWeek(day).Valid() {
			return helper.Error(c, fiber.StatusBadRequest, "Invalid day")
		}
		q = q.Where("schedule_day = ?", day)
	}
	if dateStr := c.Query("date"); dateStr != "" {
		d, err := time.ParseInLocation(dates.DateOnlyFormat, dateStr, time.UTC)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "Invalid date (YYYY-MM-DD)")
		}
		q = q.Where("schedule_date = ?", d)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to count schedules")
	}

	var schedules []model.ScheduleModel
	if err := q.Preload("Teacher").Preload("Teacher.AdditionalDetails").
		Order("schedule_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&schedules).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load schedules")
	}

	resp := dto.FromModels(schedules)
	return helper.SuccessWithPagination(c, "OK", resp, helper.BuildPagination(paging, total, len(resp)))
}

// GET /api/a/schedules/:id
func (ctl *ScheduleController) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid schedule id")
	}

	var sched model.ScheduleModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Preload("Teacher").Preload("Teacher.AdditionalDetails").
		First(&sched, "schedule_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Schedule not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load schedule")
	}

	return helper.Success(c, "OK", dto.FromModel(&sched))
}

// GET /api/a/schedules/today — templates due today (UTC)
func (ctl *ScheduleController) Today(c *fiber.Ctx) error {
	now := time.Now().UTC()
	schedules, err := ctl.Repo.TemplatesDueOn(c.UserContext(), dates.DayOf(now), now)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load today's schedules")
	}
	return helper.Success(c, "OK", dto.FromModels(schedules))
}

// GET /api/u/schedules — templates for the authenticated academic user
func (ctl *ScheduleController) MySchedules(c *fiber.Ctx) error {
	userIDStr, ok := c.Locals("user_id").(string)
	if !ok {
		return helper.Error(c, fiber.StatusUnauthorized, "Invalid user ID in context")
	}
	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Invalid UUID format")
	}

	schedules, err := ctl.Repo.ByUser(c.UserContext(), userID)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load schedules")
	}
	return helper.Success(c, "OK", dto.FromModels(schedules))
}

// GET /api/a/schedules/:id/roster
func (ctl *ScheduleController) Roster(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid schedule id")
	}
	ctx := c.UserContext()

	ids, err := ctl.Repo.RosterUserIDs(ctx, id)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load roster")
	}
	if len(ids) == 0 {
		return helper.Success(c, "OK", []dto.RosterMemberResponse{})
	}

	var users []userModel.UserModel
	if err := ctl.DB.WithContext(ctx).
		Where("user_id IN ?", ids).
		Find(&users).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load roster users")
	}

	return helper.Success(c, "OK", dto.RosterFromUsers(users))
}

/* =========================================================
   Update / Delete
   ========================================================= */

// PUT /api/a/schedules/reoccurring/:id
func (ctl *ScheduleController) UpdateReoccurring(c *fiber.Ctx) error {
	var req dto.CreateReoccurringScheduleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	upd, err := req.ToModel()
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid time format (HH:MM or HH:MM:SS)")
	}
	return ctl.updateSchedule(c, upd, req.Students, true)
}

// PUT /api/a/schedules/non-reoccurring/:id
func (ctl *ScheduleController) UpdateNonReoccurring(c *fiber.Ctx) error {
	var req dto.CreateNonReoccurringScheduleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	upd, err := req.ToModel()
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid time or date format")
	}
	return ctl.updateSchedule(c, upd, req.Students, false)
}

func (ctl *ScheduleController) updateSchedule(c *fiber.Ctx, upd model.ScheduleModel, students []uuid.UUID, reoccurring bool) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid schedule id")
	}
	ctx := c.UserContext()

	var sched model.ScheduleModel
	if err := ctl.DB.WithContext(ctx).First(&sched, "schedule_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Schedule not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load schedule")
	}
	if sched.ScheduleIsReoccurring != reoccurring {
		return helper.Error(c, fiber.StatusBadRequest, "Schedule recurrence kind cannot be changed")
	}

	if !upd.ScheduleStartTimeUTC.Before(upd.ScheduleEndTimeUTC.Time) {
		return helper.Error(c, fiber.StatusBadRequest, "start_time_utc must be before end_time_utc")
	}

	sched.ScheduleTitle = upd.ScheduleTitle
	sched.ScheduleTeacherID = upd.ScheduleTeacherID
	sched.ScheduleLocationID = upd.ScheduleLocationID
	sched.ScheduleDate = upd.ScheduleDate
	sched.ScheduleDay = upd.ScheduleDay
	sched.ScheduleStartTimeUTC = upd.ScheduleStartTimeUTC
	sched.ScheduleEndTimeUTC = upd.ScheduleEndTimeUTC

	dup, err := ctl.Repo.FindDuplicateSlot(ctx, &sched)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to check for duplicate schedule")
	}
	if dup != nil {
		return helper.Error(c, fiber.StatusConflict, "A schedule already exists for this slot")
	}

	studentIDs, err := ctl.filterStudentIDs(c, students)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to resolve students")
	}

	if err := ctl.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&sched).Error; err != nil {
			return err
		}
		return ctl.Repo.ReplaceRoster(ctx, tx, sched.ScheduleID, sched.ScheduleTeacherID, studentIDs)
	}); err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update schedule")
	}

	return helper.Success(c, "Schedule updated", dto.FromModel(&sched))
}

// DELETE /api/a/schedules/:id
func (ctl *ScheduleController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid schedule id")
	}
	ctx := c.UserContext()

	// roster bridge rows go with the template; instances cascade via FK
	err = ctl.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&model.ScheduleUserModel{}, "schedule_user_schedule_id = ?", id).Error; err != nil {
			return err
		}
		res := tx.Delete(&model.ScheduleModel{}, "schedule_id = ?", id)
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
			return helper.Error(c, fiber.StatusNotFound, "Schedule not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete schedule")
	}

	return helper.Success(c, "Deleted successfully", nil)
}
