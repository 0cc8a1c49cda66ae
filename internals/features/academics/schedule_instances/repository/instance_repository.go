package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	instanceModel "campustrack_backend/internals/features/academics/schedule_instances/model"
	"campustrack_backend/internals/features/academics/schedule_instances/service"
	scheduleModel "campustrack_backend/internals/features/academics/schedules/model"
	scheduleRepo "campustrack_backend/internals/features/academics/schedules/repository"
	"campustrack_backend/internals/helpers/dates"
)

// GormStore implements service.Store on a GORM handle. Template queries
// delegate to the schedules repository so both sides share one source of
// truth for "due today".
type GormStore struct {
	DB        *gorm.DB
	Schedules *scheduleRepo.ScheduleRepository
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{DB: db, Schedules: scheduleRepo.NewScheduleRepository(db)}
}

var _ service.Store = (*GormStore)(nil)

func (s *GormStore) TemplatesDueOn(ctx context.Context, day dates.DayOfWeek, date time.Time) ([]scheduleModel.ScheduleModel, error) {
	return s.Schedules.TemplatesDueOn(ctx, day, date)
}

func (s *GormStore) RosterUserIDs(ctx context.Context, scheduleID uuid.UUID) ([]uuid.UUID, error) {
	return s.Schedules.RosterUserIDs(ctx, scheduleID)
}

func (s *GormStore) FindInstanceByIdentity(ctx context.Context, id service.InstanceIdentity) (*instanceModel.ScheduleInstanceModel, error) {
	var inst instanceModel.ScheduleInstanceModel
	err := s.DB.WithContext(ctx).
		Where("schedule_instance_schedule_id = ?", id.ScheduleID).
		Where("schedule_instance_teacher_id = ?", id.TeacherID).
		Where("schedule_instance_location_id = ?", id.LocationID).
		Where("schedule_instance_date = ?", id.Date).
		Where("schedule_instance_start_time_utc = ?", id.StartTimeUTC).
		Where("schedule_instance_end_time_utc = ?", id.EndTimeUTC).
		First(&inst).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &inst, nil
}

// CreateInstanceWithRoster persists the instance and its roster snapshot
// atomically. The identity unique index turns a lost race into
// gorm.ErrDuplicatedKey, which rolls back the roster rows too.
func (s *GormStore) CreateInstanceWithRoster(ctx context.Context, inst *instanceModel.ScheduleInstanceModel, userIDs []uuid.UUID) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(inst).Error; err != nil {
			return err
		}

		if len(userIDs) == 0 {
			return nil
		}

		rows := make([]instanceModel.ScheduleInstanceUserModel, 0, len(userIDs))
		seen := make(map[uuid.UUID]bool, len(userIDs))
		for _, uid := range userIDs {
			if seen[uid] {
				continue
			}
			seen[uid] = true
			rows = append(rows, instanceModel.ScheduleInstanceUserModel{
				ScheduleInstanceUserUserID:     uid,
				ScheduleInstanceUserInstanceID: inst.ScheduleInstanceID,
			})
		}
		return tx.Create(&rows).Error
	})
}

/* =========================================================
   CRUD-side queries (controllers)
   ========================================================= */

func (s *GormStore) RosterUserIDsForInstance(ctx context.Context, instanceID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := s.DB.WithContext(ctx).
		Model(&instanceModel.ScheduleInstanceUserModel{}).
		Distinct("schedule_instance_user_user_id").
		Where("schedule_instance_user_instance_id = ?", instanceID).
		Pluck("schedule_instance_user_user_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// ByUser lists instances the user is rostered on or teaches.
func (s *GormStore) ByUser(ctx context.Context, userID uuid.UUID) ([]instanceModel.ScheduleInstanceModel, error) {
	var instances []instanceModel.ScheduleInstanceModel
	err := s.DB.WithContext(ctx).
		Preload("Teacher").
		Preload("Location").
		Where(
			s.DB.Where("schedule_instance_id IN (?)",
				s.DB.Model(&instanceModel.ScheduleInstanceUserModel{}).
					Select("schedule_instance_user_instance_id").
					Where("schedule_instance_user_user_id = ?", userID),
			).Or("schedule_instance_teacher_id = ?", userID),
		).
		Order("schedule_instance_date DESC").
		Find(&instances).Error
	if err != nil {
		return nil, err
	}
	return instances, nil
}
