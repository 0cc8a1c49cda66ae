package model

import (
	"time"

	"github.com/google/uuid"

	instanceModel "campustrack_backend/internals/features/academics/schedule_instances/model"
	userModel "campustrack_backend/internals/features/users/user/model"
)

type AttendanceEnum string

const (
	AttendancePresent AttendanceEnum = "present"
	AttendanceLate    AttendanceEnum = "late"
)

func (e AttendanceEnum) Valid() bool {
	return e == AttendancePresent || e == AttendanceLate
}

// AttendanceModel is the definitive attendance record: one row per user
// per schedule instance, written once and never updated. The composite
// unique index is what turns a double submission into a 409.
type AttendanceModel struct {
	AttendanceID uuid.UUID `gorm:"column:attendance_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"attendance_id"`

	AttendanceUserID uuid.UUID            `gorm:"column:attendance_user_id;type:uuid;not null;uniqueIndex:uq_attendances_user_instance" json:"attendance_user_id"`
	User             *userModel.UserModel `gorm:"foreignKey:AttendanceUserID;references:UserID" json:"user,omitempty"`

	AttendanceScheduleInstanceID uuid.UUID                            `gorm:"column:attendance_schedule_instance_id;type:uuid;not null;uniqueIndex:uq_attendances_user_instance" json:"attendance_schedule_instance_id"`
	ScheduleInstance             *instanceModel.ScheduleInstanceModel `gorm:"foreignKey:AttendanceScheduleInstanceID;references:ScheduleInstanceID;constraint:OnDelete:CASCADE" json:"schedule_instance,omitempty"`

	AttendanceStatus AttendanceEnum `gorm:"column:attendance_status;type:varchar(10);not null" json:"attendance_status"`

	AttendanceCreatedAt time.Time `gorm:"column:attendance_created_at;autoCreateTime" json:"attendance_created_at"`
}

func (AttendanceModel) TableName() string { return "attendances" }
