package dto

import (
	"time"

	"github.com/google/uuid"

	model "campustrack_backend/internals/features/academics/schedule_instances/model"
	"campustrack_backend/internals/helpers/dates"
)

/* =========================================================
   1) REQUESTS
   ========================================================= */

// Only the snapshotted references are editable; identity fields, date and
// times stay as materialized.
type UpdateScheduleInstanceRequest struct {
	TeacherID  uuid.UUID `json:"teacher_id"  validate:"required"`
	LocationID uuid.UUID `json:"location_id" validate:"required"`
}

/* =========================================================
   2) RESPONSES
   ========================================================= */

type ScheduleInstanceResponse struct {
	ID           uuid.UUID `json:"id"`
	ScheduleID   uuid.UUID `json:"schedule_id"`
	TeacherID    uuid.UUID `json:"teacher_id"`
	LocationID   uuid.UUID `json:"location_id"`
	Date         string    `json:"date"`
	StartTimeUTC string    `json:"start_time_utc"`
	EndTimeUTC   string    `json:"end_time_utc"`

	CreatedAt string  `json:"created_at"`
	UpdatedAt *string `json:"updated_at"`
}

func FromModel(m *model.ScheduleInstanceModel) ScheduleInstanceResponse {
	return ScheduleInstanceResponse{
		ID:           m.ScheduleInstanceID,
		ScheduleID:   m.ScheduleInstanceScheduleID,
		TeacherID:    m.ScheduleInstanceTeacherID,
		LocationID:   m.ScheduleInstanceLocationID,
		Date:         m.ScheduleInstanceDate.UTC().Format(dates.DateOnlyFormat),
		StartTimeUTC: m.ScheduleInstanceStartTimeUTC.Format("15:04:05"),
		EndTimeUTC:   m.ScheduleInstanceEndTimeUTC.Format("15:04:05"),
		CreatedAt:    m.ScheduleInstanceCreatedAt.UTC().Format(dates.TimestampZFormat),
		UpdatedAt:    formatTimePtr(m.ScheduleInstanceUpdatedAt),
	}
}

func FromModels(ms []model.ScheduleInstanceModel) []ScheduleInstanceResponse {
	out := make([]ScheduleInstanceResponse, 0, len(ms))
	for i := range ms {
		out = append(out, FromModel(&ms[i]))
	}
	return out
}

func formatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.UTC().Format(dates.TimestampZFormat)
	return &s
}
