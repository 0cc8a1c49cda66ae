package dto

import (
	"github.com/google/uuid"

	"campustrack_backend/internals/features/academics/attendance/model"
	"campustrack_backend/internals/helpers/dates"
)

type MarkAttendanceRequest struct {
	ScheduleInstanceID uuid.UUID `json:"schedule_instance_id" validate:"required"`
}

type CreateTrackingRequest struct {
	ScheduleInstanceID uuid.UUID `json:"schedule_instance_id" validate:"required"`
}

type AttendanceResponse struct {
	AttendanceID       uuid.UUID            `json:"attendance_id"`
	UserID             uuid.UUID            `json:"user_id"`
	ScheduleInstanceID uuid.UUID            `json:"schedule_instance_id"`
	Status             model.AttendanceEnum `json:"attendance_status"`
	CreatedAt          string               `json:"created_at_in_utc"`
}

func FromModel(m *model.AttendanceModel) AttendanceResponse {
	return AttendanceResponse{
		AttendanceID:       m.AttendanceID,
		UserID:             m.AttendanceUserID,
		ScheduleInstanceID: m.AttendanceScheduleInstanceID,
		Status:             m.AttendanceStatus,
		CreatedAt:          m.AttendanceCreatedAt.UTC().Format(dates.TimestampZFormat),
	}
}

func FromModels(ms []model.AttendanceModel) []AttendanceResponse {
	out := make([]AttendanceResponse, 0, len(ms))
	for i := range ms {
		out = append(out, FromModel(&ms[i]))
	}
	return out
}

type TrackingResponse struct {
	AttendanceTrackingID uuid.UUID `json:"attendance_tracking_id"`
	UserID               uuid.UUID `json:"user_id"`
	ScheduleInstanceID   uuid.UUID `json:"schedule_instance_id"`
	CreatedAt            string    `json:"created_at_in_utc"`
}

func TrackingFromModel(m *model.AttendanceTrackingModel) TrackingResponse {
	return TrackingResponse{
		AttendanceTrackingID: m.AttendanceTrackingID,
		UserID:               m.AttendanceTrackingUserID,
		ScheduleInstanceID:   m.AttendanceTrackingScheduleInstanceID,
		CreatedAt:            m.AttendanceTrackingCreatedAt.UTC().Format(dates.TimestampZFormat),
	}
}

func TrackingFromModels(ms []model.AttendanceTrackingModel) []TrackingResponse {
	out := make([]TrackingResponse, 0, len(ms))
	for i := range ms {
		out = append(out, TrackingFromModel(&ms[i]))
	}
	return out
}
