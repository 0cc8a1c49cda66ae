package model

import (
	"github.com/google/uuid"
)

// Attendee roster snapshot for an instance, copied from the template's
// roster when the instance is materialized.
type ScheduleInstanceUserModel struct {
	ScheduleInstanceUserUserID     uuid.UUID `gorm:"column:schedule_instance_user_user_id;type:uuid;primaryKey"`
	ScheduleInstanceUserInstanceID uuid.UUID `gorm:"column:schedule_instance_user_instance_id;type:uuid;primaryKey"`
}

func (ScheduleInstanceUserModel) TableName() string { return "schedule_instance_users" }
