package model

import (
	"time"

	"github.com/google/uuid"

	locationModel "campustrack_backend/internals/features/academics/locations/model"
	userModel "campustrack_backend/internals/features/users/user/model"
	"campustrack_backend/internals/helpers/dates"
)

// ScheduleModel is a teaching-slot template. Recurring templates carry a
// weekday and no date; one-off templates carry a date and the weekday
// derived from it. Exactly one of the two shapes holds at all times.
type ScheduleModel struct {
	ScheduleID uuid.UUID `gorm:"column:schedule_id;type:uuid;default:gen_random_uuid();primaryKey"`

	ScheduleTeacherID uuid.UUID            `gorm:"column:schedule_teacher_id;type:uuid;not null"`
	Teacher           *userModel.UserModel `gorm:"foreignKey:ScheduleTeacherID;references:UserID"`

	ScheduleLocationID uuid.UUID                    `gorm:"column:schedule_location_id;type:uuid;not null"`
	Location           *locationModel.LocationModel `gorm:"foreignKey:ScheduleLocationID;references:LocationID"`

	ScheduleTitle string `gorm:"column:schedule_title;type:varchar(150);not null"`

	ScheduleIsReoccurring bool `gorm:"column:schedule_is_reoccurring;not null;default:true"`

	// NULL for recurring templates
	ScheduleDate *time.Time      `gorm:"column:schedule_date;type:date"`
	ScheduleDay  dates.DayOfWeek `gorm:"column:schedule_day;type:varchar(10);not null"`

	ScheduleStartTimeUTC dates.Tod `gorm:"column:schedule_start_time_utc;type:time;not null"`
	ScheduleEndTimeUTC   dates.Tod `gorm:"column:schedule_end_time_utc;type:time;not null"`

	ScheduleCreatedAt time.Time  `gorm:"column:schedule_created_at;type:timestamptz;not null;autoCreateTime"`
	ScheduleUpdatedAt *time.Time `gorm:"column:schedule_updated_at;type:timestamptz;autoUpdateTime"`
}

func (ScheduleModel) TableName() string { return "schedules" }

// IsDueOn reports whether the template is due on the given weekday and
// UTC date: recurring templates match on weekday alone (date must be
// NULL), one-off templates need the exact date AND a matching weekday.
// This is the in-process twin of the repository's due-today query.
func (s *ScheduleModel) IsDueOn(day dates.DayOfWeek, date time.Time) bool {
	if s.ScheduleIsReoccurring {
		return s.ScheduleDate == nil && s.ScheduleDay == day
	}
	if s.ScheduleDate == nil {
		return false
	}
	return dates.DateOnlyUTC(*s.ScheduleDate).Equal(dates.DateOnlyUTC(date)) &&
		s.ScheduleDay == day
}
