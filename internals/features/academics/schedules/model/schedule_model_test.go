package model

import (
	"testing"
	"time"

	"campustrack_backend/internals/helpers/dates"
)

func datePtr(t time.Time) *time.Time { return &t }

func TestIsDueOn(t *testing.T) {
	// 2024-03-05 is a Tuesday, 2024-03-06 a Wednesday
	tuesday := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)
	wednesday := time.Date(2024, 3, 6, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name string
		s    ScheduleModel
		day  dates.DayOfWeek
		date time.Time
		want bool
	}{
		{
			name: "recurring matching weekday",
			s:    ScheduleModel{ScheduleIsReoccurring: true, ScheduleDay: dates.Tuesday},
			day:  dates.Tuesday, date: tuesday, want: true,
		},
		{
			name: "recurring wrong weekday",
			s:    ScheduleModel{ScheduleIsReoccurring: true, ScheduleDay: dates.Tuesday},
			day:  dates.Wednesday, date: wednesday, want: false,
		},
		{
			name: "recurring with a date set is malformed",
			s:    ScheduleModel{ScheduleIsReoccurring: true, ScheduleDay: dates.Tuesday, ScheduleDate: datePtr(tuesday)},
			day:  dates.Tuesday, date: tuesday, want: false,
		},
		{
			name: "one-off matching date and weekday",
			s:    ScheduleModel{ScheduleDate: datePtr(tuesday), ScheduleDay: dates.Tuesday},
			day:  dates.Tuesday, date: tuesday, want: true,
		},
		{
			name: "one-off on the day after its date",
			s:    ScheduleModel{ScheduleDate: datePtr(tuesday), ScheduleDay: dates.Tuesday},
			day:  dates.Wednesday, date: wednesday, want: false,
		},
		{
			name: "one-off with mismatched weekday field",
			s:    ScheduleModel{ScheduleDate: datePtr(wednesday), ScheduleDay: dates.Friday},
			day:  dates.Wednesday, date: wednesday, want: false,
		},
		{
			name: "one-off without a date",
			s:    ScheduleModel{ScheduleDay: dates.Tuesday},
			day:  dates.Tuesday, date: tuesday, want: false,
		},
		{
			name: "one-off matches regardless of time of day on the instant",
			s:    ScheduleModel{ScheduleDate: datePtr(tuesday), ScheduleDay: dates.Tuesday},
			day:  dates.Tuesday, date: tuesday.Add(23 * time.Hour), want: true,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.s.IsDueOn(c.day, c.date); got != c.want {
				t.Errorf("IsDueOn(%s, %s) = %v, want %v", c.day, c.date.Format(dates.DateOnlyFormat), got, c.want)
			}
		})
	}
}
