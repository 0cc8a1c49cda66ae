package dto

import (
	"testing"

	"github.com/google/uuid"

	"campustrack_backend/internals/helpers/dates"
)

func TestReoccurringToModel(t *testing.T) {
	req := CreateReoccurringScheduleRequest{
		Title:        "  Calculus I  ",
		TeacherID:    uuid.New(),
		LocationID:   uuid.New(),
		Day:          "wednesday",
		StartTimeUTC: "08:00:00",
		EndTimeUTC:   "09:30:00",
	}

	m, err := req.ToModel()
	if err != nil {
		t.Fatalf("ToModel: %v", err)
	}
	if m.ScheduleTitle != "Calculus I" {
		t.Errorf("title = %q, want trimmed", m.ScheduleTitle)
	}
	if !m.ScheduleIsReoccurring || m.ScheduleDate != nil {
		t.Error("recurring template must have no date")
	}
	if m.ScheduleDay != dates.Wednesday {
		t.Errorf("day = %s, want wednesday", m.ScheduleDay)
	}
	if !m.ScheduleStartTimeUTC.Equal(dates.TodOf(8, 0, 0)) {
		t.Errorf("start = %v, want 08:00:00", m.ScheduleStartTimeUTC)
	}
}

func TestNonReoccurringToModelDerivesDay(t *testing.T) {
	req := CreateNonReoccurringScheduleRequest{
		Title:        "Guest lecture",
		TeacherID:    uuid.New(),
		LocationID:   uuid.New(),
		Date:         "2026-03-06", // a Friday
		StartTimeUTC: "14:00",
		EndTimeUTC:   "15:30",
	}

	m, err := req.ToModel()
	if err != nil {
		t.Fatalf("ToModel: %v", err)
	}
	if m.ScheduleIsReoccurring {
		t.Error("one-off template must not be recurring")
	}
	if m.ScheduleDate == nil {
		t.Fatal("one-off template must have a date")
	}
	if m.ScheduleDay != dates.Friday {
		t.Errorf("derived day = %s, want friday", m.ScheduleDay)
	}
}

func TestToModelRejectsBadTime(t *testing.T) {
	req := CreateReoccurringScheduleRequest{
		Title:        "Broken",
		TeacherID:    uuid.New(),
		LocationID:   uuid.New(),
		Day:          "monday",
		StartTimeUTC: "25:99",
		EndTimeUTC:   "09:00",
	}
	if _, err := req.ToModel(); err == nil {
		t.Fatal("expected parse error for 25:99")
	}
}
