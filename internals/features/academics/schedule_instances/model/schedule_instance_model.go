package model

import (
	"time"

	"github.com/google/uuid"

	locationModel "campustrack_backend/internals/features/academics/locations/model"
	scheduleModel "campustrack_backend/internals/features/academics/schedules/model"
	userModel "campustrack_backend/internals/features/users/user/model"
	"campustrack_backend/internals/helpers/dates"
)

// ScheduleInstanceModel is a concrete occurrence of a schedule template on
// a specific date. Teacher and location are snapshotted at creation and
// not kept in sync with the template afterwards.
//
// The composite unique index over (schedule_id, teacher_id, location_id,
// date, start, end) is the materializer's idempotency key: overlapping
// passes both inserting the same tuple resolve to first-writer-wins at
// the storage layer.
type ScheduleInstanceModel struct {
	ScheduleInstanceID uuid.UUID `gorm:"column:schedule_instance_id;type:uuid;default:gen_random_uuid();primaryKey"`

	ScheduleInstanceScheduleID uuid.UUID                    `gorm:"column:schedule_instance_schedule_id;type:uuid;not null;uniqueIndex:uq_schedule_instances_identity"`
	Schedule                   *scheduleModel.ScheduleModel `gorm:"foreignKey:ScheduleInstanceScheduleID;references:ScheduleID;constraint:OnDelete:CASCADE"`

	ScheduleInstanceTeacherID uuid.UUID            `gorm:"column:schedule_instance_teacher_id;type:uuid;not null;uniqueIndex:uq_schedule_instances_identity"`
	Teacher                   *userModel.UserModel `gorm:"foreignKey:ScheduleInstanceTeacherID;references:UserID"`

	ScheduleInstanceLocationID uuid.UUID                    `gorm:"column:schedule_instance_location_id;type:uuid;not null;uniqueIndex:uq_schedule_instances_identity"`
	Location                   *locationModel.LocationModel `gorm:"foreignKey:ScheduleInstanceLocationID;references:LocationID"`

	ScheduleInstanceDate time.Time `gorm:"column:schedule_instance_date;type:date;not null;uniqueIndex:uq_schedule_instances_identity"`

	ScheduleInstanceStartTimeUTC dates.Tod `gorm:"column:schedule_instance_start_time_utc;type:time;not null;uniqueIndex:uq_schedule_instances_identity"`
	ScheduleInstanceEndTimeUTC   dates.Tod `gorm:"column:schedule_instance_end_time_utc;type:time;not null;uniqueIndex:uq_schedule_instances_identity"`

	ScheduleInstanceCreatedAt time.Time  `gorm:"column:schedule_instance_created_at;type:timestamptz;not null;autoCreateTime"`
	ScheduleInstanceUpdatedAt *time.Time `gorm:"column:schedule_instance_updated_at;type:timestamptz;autoUpdateTime"`
}

func (ScheduleInstanceModel) TableName() string { return "schedule_instances" }
