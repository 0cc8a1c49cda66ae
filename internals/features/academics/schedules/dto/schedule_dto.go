package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	model "campustrack_backend/internals/features/academics/schedules/model"
	userDto "campustrack_backend/internals/features/users/user/dto"
	userModel "campustrack_backend/internals/features/users/user/model"
	"campustrack_backend/internals/helpers/dates"
)

/* =========================================================
   1) REQUESTS
   ========================================================= */

// Recurring template: weekday chosen explicitly, no date.
type CreateReoccurringScheduleRequest struct {
	Title        string      `json:"title"          validate:"required,min=2,max=150"`
	TeacherID    uuid.UUID   `json:"teacher_id"     validate:"required"`
	LocationID   uuid.UUID   `json:"location_id"    validate:"required"`
	Day          string      `json:"day"            validate:"required,oneof=monday tuesday wednesday thursday friday saturday sunday"`
	StartTimeUTC string      `json:"start_time_utc" validate:"required"`
	EndTimeUTC   string      `json:"end_time_utc"   validate:"required"`
	Students     []uuid.UUID `json:"students"       validate:"omitempty,dive,required"`
}

// One-off template: explicit date, weekday derived from it.
type CreateNonReoccurringScheduleRequest struct {
	Title        string      `json:"title"          validate:"required,min=2,max=150"`
	TeacherID    uuid.UUID   `json:"teacher_id"     validate:"required"`
	LocationID   uuid.UUID   `json:"location_id"    validate:"required"`
	Date         string      `json:"date"           validate:"required,datetime=2006-01-02"`
	StartTimeUTC string      `json:"start_time_utc" validate:"required"`
	EndTimeUTC   string      `json:"end_time_utc"   validate:"required"`
	Students     []uuid.UUID `json:"students"       validate:"omitempty,dive,required"`
}

func (r CreateReoccurringScheduleRequest) ToModel() (model.ScheduleModel, error) {
	start, err := dates.ParseTod(r.StartTimeUTC)
	if err != nil {
		return model.ScheduleModel{}, err
	}
	end, err := dates.ParseTod(r.EndTimeUTC)
	if err != nil {
		return model.ScheduleModel{}, err
	}

	return model.ScheduleModel{
		ScheduleTitle:         strings.TrimSpace(r.Title),
		ScheduleTeacherID:     r.TeacherID,
		ScheduleLocationID:    r.LocationID,
		ScheduleIsReoccurring: true,
		ScheduleDate:          nil,
		ScheduleDay:           dates.DayOfWeek(r.Day),
		ScheduleStartTimeUTC:  start,
		ScheduleEndTimeUTC:    end,
	}, nil
}

func (r CreateNonReoccurringScheduleRequest) ToModel() (model.ScheduleModel, error) {
	start, err := dates.ParseTod(r.StartTimeUTC)
	if err != nil {
		return model.ScheduleModel{}, err
	}
	end, err := dates.ParseTod(r.EndTimeUTC)
	if err != nil {
		return model.ScheduleModel{}, err
	}
	date, err := time.ParseInLocation(dates.DateOnlyFormat, strings.TrimSpace(r.Date), time.UTC)
	if err != nil {
		return model.ScheduleModel{}, err
	}

	return model.ScheduleModel{
		ScheduleTitle:         strings.TrimSpace(r.Title),
		ScheduleTeacherID:     r.TeacherID,
		ScheduleLocationID:    r.LocationID,
		ScheduleIsReoccurring: false,
		ScheduleDate:          &date,
		// day always derived, never client-chosen, for one-off templates
		ScheduleDay:          dates.DayOf(date),
		ScheduleStartTimeUTC: start,
		ScheduleEndTimeUTC:   end,
	}, nil
}

/* =========================================================
   2) RESPONSES
   ========================================================= */

type ScheduleResponse struct {
	ID            uuid.UUID `json:"id"`
	Title         string    `json:"title"`
	TeacherID     uuid.UUID `json:"teacher_id"`
	LocationID    uuid.UUID `json:"location_id"`
	IsReoccurring bool      `json:"is_reoccurring"`
	Date          *string   `json:"date"`
	Day           string    `json:"day"`
	StartTimeUTC  string    `json:"start_time_utc"`
	EndTimeUTC    string    `json:"end_time_utc"`

	Teacher *userDto.UserResponse `json:"teacher,omitempty"`

	CreatedAt string  `json:"created_at"`
	UpdatedAt *string `json:"updated_at"`
}

type RosterMemberResponse struct {
	ID       uuid.UUID `json:"id"`
	FullName string    `json:"full_name"`
}

func FromModel(s *model.ScheduleModel) ScheduleResponse {
	resp := ScheduleResponse{
		ID:            s.ScheduleID,
		Title:         s.ScheduleTitle,
		TeacherID:     s.ScheduleTeacherID,
		LocationID:    s.ScheduleLocationID,
		IsReoccurring: s.ScheduleIsReoccurring,
		Date:          formatDatePtr(s.ScheduleDate),
		Day:           string(s.ScheduleDay),
		StartTimeUTC:  s.ScheduleStartTimeUTC.Format("15:04:05"),
		EndTimeUTC:    s.ScheduleEndTimeUTC.Format("15:04:05"),
		CreatedAt:     s.ScheduleCreatedAt.UTC().Format(dates.TimestampZFormat),
		UpdatedAt:     formatTimePtr(s.ScheduleUpdatedAt),
	}
	if s.Teacher != nil {
		t := userDto.FromModel(s.Teacher)
		resp.Teacher = &t
	}
	return resp
}

func FromModels(ss []model.ScheduleModel) []ScheduleResponse {
	out := make([]ScheduleResponse, 0, len(ss))
	for i := range ss {
		out = append(out, FromModel(&ss[i]))
	}
	return out
}

func RosterFromUsers(users []userModel.UserModel) []RosterMemberResponse {
	out := make([]RosterMemberResponse, 0, len(users))
	for i := range users {
		out = append(out, RosterMemberResponse{
			ID:       users[i].UserID,
			FullName: users[i].UserFullName,
		})
	}
	return out
}

/* =========================================================
   Helpers
   ========================================================= */

func formatDatePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.UTC().Format(dates.DateOnlyFormat)
	return &s
}

func formatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.UTC().Format(dates.TimestampZFormat)
	return &s
}
