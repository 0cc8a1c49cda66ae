package model

import (
	"time"

	"github.com/google/uuid"

	instanceModel "campustrack_backend/internals/features/academics/schedule_instances/model"
	userModel "campustrack_backend/internals/features/users/user/model"
)

// AttendanceTrackingModel stores presence pings: append-only rows a
// client emits while the user stays in range of the class location.
// Multiple rows per user+instance are expected.
type AttendanceTrackingModel struct {
	AttendanceTrackingID uuid.UUID `gorm:"column:attendance_tracking_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"attendance_tracking_id"`

	AttendanceTrackingUserID uuid.UUID            `gorm:"column:attendance_tracking_user_id;type:uuid;not null;index" json:"attendance_tracking_user_id"`
	User                     *userModel.UserModel `gorm:"foreignKey:AttendanceTrackingUserID;references:UserID" json:"user,omitempty"`

	AttendanceTrackingScheduleInstanceID uuid.UUID                            `gorm:"column:attendance_tracking_schedule_instance_id;type:uuid;not null;index" json:"attendance_tracking_schedule_instance_id"`
	ScheduleInstance                     *instanceModel.ScheduleInstanceModel `gorm:"foreignKey:AttendanceTrackingScheduleInstanceID;references:ScheduleInstanceID;constraint:OnDelete:CASCADE" json:"schedule_instance,omitempty"`

	AttendanceTrackingCreatedAt time.Time `gorm:"column:attendance_tracking_created_at;autoCreateTime" json:"attendance_tracking_created_at"`
}

func (AttendanceTrackingModel) TableName() string { return "attendance_tracking" }
