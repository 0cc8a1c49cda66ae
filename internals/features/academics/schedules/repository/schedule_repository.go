package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	model "campustrack_backend/internals/features/academics/schedules/model"
	"campustrack_backend/internals/helpers/dates"
)

type ScheduleRepository struct {
	DB *gorm.DB
}

func NewScheduleRepository(db *gorm.DB) *ScheduleRepository {
	return &ScheduleRepository{DB: db}
}

// TemplatesDueOn returns the templates due on a given date: recurring
// templates whose weekday matches, plus one-off templates whose date AND
// weekday match. Teacher is eager-loaded for the materializer.
func (r *ScheduleRepository) TemplatesDueOn(ctx context.Context, day dates.DayOfWeek, date time.Time) ([]model.ScheduleModel, error) {
	var schedules []model.ScheduleModel
	err := r.DB.WithContext(ctx).
		Preload("Teacher").
		Where(
			r.DB.Where("schedule_is_reoccurring = TRUE AND schedule_date IS NULL AND schedule_day = ?", day).
				Or("schedule_is_reoccurring = FALSE AND schedule_date = ? AND schedule_day = ?", dates.DateOnlyUTC(date), day),
		).
		Find(&schedules).Error
	if err != nil {
		return nil, err
	}
	return schedules, nil
}

// RosterUserIDs returns the distinct set of user ids on a template's
// roster (teacher + students).
func (r *ScheduleRepository) RosterUserIDs(ctx context.Context, scheduleID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.DB.WithContext(ctx).
		Model(&model.ScheduleUserModel{}).
		Distinct("schedule_user_user_id").
		Where("schedule_user_schedule_id = ?", scheduleID).
		Pluck("schedule_user_user_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// ByUser lists templates the user belongs to, either on the roster or as
// the assigned teacher.
func (r *ScheduleRepository) ByUser(ctx context.Context, userID uuid.UUID) ([]model.ScheduleModel, error) {
	var schedules []model.ScheduleModel
	err := r.DB.WithContext(ctx).
		Preload("Teacher").
		Preload("Location").
		Where(
			r.DB.Where("schedule_id IN (?)",
				r.DB.Model(&model.ScheduleUserModel{}).
					Select("schedule_user_schedule_id").
					Where("schedule_user_user_id = ?", userID),
			).Or("schedule_teacher_id = ?", userID),
		).
		Find(&schedules).Error
	if err != nil {
		return nil, err
	}
	return schedules, nil
}

// FindDuplicateSlot looks for a template occupying the same slot
// (teacher, location, times, and weekday or date).
func (r *ScheduleRepository) FindDuplicateSlot(ctx context.Context, s *model.ScheduleModel) (*model.ScheduleModel, error) {
	q := r.DB.WithContext(ctx).
		Where("schedule_teacher_id = ?", s.ScheduleTeacherID).
		Where("schedule_location_id = ?", s.ScheduleLocationID).
		Where("schedule_start_time_utc = ?", s.ScheduleStartTimeUTC).
		Where("schedule_end_time_utc = ?", s.ScheduleEndTimeUTC)

	if s.ScheduleIsReoccurring {
		q = q.Where("schedule_day = ?", s.ScheduleDay)
	} else {
		q = q.Where("schedule_date = ?", s.ScheduleDate)
	}
	if s.ScheduleID != uuid.Nil {
		q = q.Where("schedule_id <> ?", s.ScheduleID)
	}

	var found model.ScheduleModel
	err := q.First(&found).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &found, nil
}

// ReplaceRoster resets the roster to teacher + given students inside tx.
func (r *ScheduleRepository) ReplaceRoster(ctx context.Context, tx *gorm.DB, scheduleID, teacherID uuid.UUID, studentIDs []uuid.UUID) error {
	if err := tx.WithContext(ctx).
		Delete(&model.ScheduleUserModel{}, "schedule_user_schedule_id = ?", scheduleID).Error; err != nil {
		return err
	}

	rows := []model.ScheduleUserModel{
		{ScheduleUserUserID: teacherID, ScheduleUserScheduleID: scheduleID},
	}
	seen := map[uuid.UUID]bool{teacherID: true}
	for _, sid := range studentIDs {
		if seen[sid] {
			continue
		}
		seen[sid] = true
		rows = append(rows, model.ScheduleUserModel{
			ScheduleUserUserID:     sid,
			ScheduleUserScheduleID: scheduleID,
		})
	}
	return tx.WithContext(ctx).Create(&rows).Error
}
