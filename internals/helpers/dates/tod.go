package dates

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Tod is a time-of-day for Postgres TIME columns. The date part is pinned
// to 0000-01-01 UTC so equality works across rows.
type Tod struct{ time.Time }

// TodFrom keeps HH:mm:ss of t, drops date and zone.
func TodFrom(t time.Time) Tod {
	return Tod{
		Time: time.Date(0, 1, 1, t.Hour(), t.Minute(), t.Second(), 0, time.UTC),
	}
}

// TodOf builds a Tod from clock parts.
func TodOf(hour, min, sec int) Tod {
	return Tod{Time: time.Date(0, 1, 1, hour, min, sec, 0, time.UTC)}
}

// ParseTod accepts "HH:mm[:ss]".
func ParseTod(s string) (Tod, error) {
	var tt Tod
	return tt, tt.parse(s)
}

// Scan accepts time.Time or string ("HH:MM[:SS]")
func (t *Tod) Scan(v any) error {
	switch x := v.(type) {
	case time.Time:
		*t = TodFrom(x)
		return nil
	case []byte:
		return t.parse(string(x))
	case string:
		return t.parse(x)
	case nil:
		t.Time = time.Time{}
		return nil
	default:
		return fmt.Errorf("tod: unsupported Scan type %T", v)
	}
}

func (t *Tod) parse(s string) error {
	s = strings.TrimSpace(s)
	if len(s) == 5 { // "HH:MM"
		s += ":00"
	}
	tt, err := time.Parse("15:04:05", s)
	if err != nil {
		return err
	}
	t.Time = tt
	return nil
}

// Value sends "HH:MM:SS" so Postgres TIME understands it. The zero value
// is rejected rather than collapsed into midnight: every TIME column here
// is NOT NULL, so an unset Tod reaching the driver is a caller bug.
func (t Tod) Value() (driver.Value, error) {
	if t.Time.IsZero() {
		return nil, fmt.Errorf("tod: zero value has no time-of-day")
	}
	return t.Format("15:04:05"), nil
}

func (t Tod) Equal(o Tod) bool {
	return t.Hour() == o.Hour() && t.Minute() == o.Minute() && t.Second() == o.Second()
}

func (t Tod) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Format("15:04:05"))
}

func (t *Tod) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	return t.parse(s)
}
