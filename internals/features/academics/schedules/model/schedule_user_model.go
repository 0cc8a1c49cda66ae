package model

import (
	"github.com/google/uuid"
)

// Roster bridge between schedules and users (teacher + students).
// Existence of a row = membership; the composite PK prevents duplicates.
type ScheduleUserModel struct {
	ScheduleUserUserID     uuid.UUID `gorm:"column:schedule_user_user_id;type:uuid;primaryKey"`
	ScheduleUserScheduleID uuid.UUID `gorm:"column:schedule_user_schedule_id;type:uuid;primaryKey"`
}

func (ScheduleUserModel) TableName() string { return "schedule_users" }
