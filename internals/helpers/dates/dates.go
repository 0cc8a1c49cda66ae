package dates

import (
	"time"
)

// DayOfWeek as stored in the "day" enum columns.
type DayOfWeek string

const (
	Monday    DayOfWeek = "monday"
	Tuesday   DayOfWeek = "tuesday"
	Wednesday DayOfWeek = "wednesday"
	Thursday  DayOfWeek = "thursday"
	Friday    DayOfWeek = "friday"
	Saturday  DayOfWeek = "saturday"
	Sunday    DayOfWeek = "sunday"
)

// ISO 8601 with Z suffix, used for created/updated timestamps in responses
const TimestampZFormat = "2006-01-02T15:04:05Z"

const DateOnlyFormat = "2006-01-02"

var allDays = map[DayOfWeek]bool{
	Monday: true, Tuesday: true, Wednesday: true, Thursday: true,
	Friday: true, Saturday: true, Sunday: true,
}

func (d DayOfWeek) Valid() bool { return allDays[d] }

// DayOf maps a time to its DayOfWeek, in the instant's own location.
// Callers anchor to UTC first when the UTC weekday is wanted.
func DayOf(t time.Time) DayOfWeek {
	switch t.Weekday() {
	case time.Monday:
		return Monday
	case time.Tuesday:
		return Tuesday
	case time.Wednesday:
		return Wednesday
	case time.Thursday:
		return Thursday
	case time.Friday:
		return Friday
	case time.Saturday:
		return Saturday
	default:
		return Sunday
	}
}

// DateOnlyUTC truncates an instant to its UTC calendar date (midnight UTC).
func DateOnlyUTC(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// SameDate reports whether two instants share a UTC calendar date.
func SameDate(a, b time.Time) bool {
	return DateOnlyUTC(a).Equal(DateOnlyUTC(b))
}

// DayMatchesDate checks the schedule invariant: a set "date" must agree
// with the stored "day".
func DayMatchesDate(day DayOfWeek, date time.Time) bool {
	return DayOf(date.UTC()) == day
}
