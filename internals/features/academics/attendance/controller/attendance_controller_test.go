package controller

import (
	"testing"
	"time"

	model "campustrack_backend/internals/features/academics/attendance/model"
	instanceModel "campustrack_backend/internals/features/academics/schedule_instances/model"
	"campustrack_backend/internals/helpers/dates"
)

func instanceAt(date time.Time, start dates.Tod) *instanceModel.ScheduleInstanceModel {
	return &instanceModel.ScheduleInstanceModel{
		ScheduleInstanceDate:         dates.DateOnlyUTC(date),
		ScheduleInstanceStartTimeUTC: start,
		ScheduleInstanceEndTimeUTC:   dates.TodOf(start.Hour()+1, start.Minute(), 0),
	}
}

func TestStatusForBeforeStartIsPresent(t *testing.T) {
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	inst := instanceAt(day, dates.TodOf(10, 0, 0))

	now := time.Date(2026, 3, 2, 9, 55, 0, 0, time.UTC)
	if got := statusFor(inst, now); got != model.AttendancePresent {
		t.Fatalf("status = %s, want present", got)
	}
}

func TestStatusForExactlyAtStartIsPresent(t *testing.T) {
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	inst := instanceAt(day, dates.TodOf(10, 0, 0))

	now := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	if got := statusFor(inst, now); got != model.AttendancePresent {
		t.Fatalf("status = %s, want present", got)
	}
}

func TestStatusForSecondsAfterStartIsLate(t *testing.T) {
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	inst := instanceAt(day, dates.TodOf(10, 0, 0))

	// the cutoff is the exact start instant, not the start minute
	now := time.Date(2026, 3, 2, 10, 0, 30, 0, time.UTC)
	if got := statusFor(inst, now); got != model.AttendanceLate {
		t.Fatalf("status = %s, want late", got)
	}
}

func TestStatusForAfterStartIsLate(t *testing.T) {
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	inst := instanceAt(day, dates.TodOf(10, 0, 0))

	now := time.Date(2026, 3, 2, 10, 12, 0, 0, time.UTC)
	if got := statusFor(inst, now); got != model.AttendanceLate {
		t.Fatalf("status = %s, want late", got)
	}
}
