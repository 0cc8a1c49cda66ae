package dates

import (
	"testing"
	"time"
)

func TestDayOf(t *testing.T) {
	cases := []struct {
		in   time.Time
		want DayOfWeek
	}{
		{time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), Monday},
		{time.Date(2026, 3, 3, 12, 0, 0, 0, time.UTC), Tuesday},
		{time.Date(2026, 3, 7, 23, 59, 59, 0, time.UTC), Saturday},
		{time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC), Sunday},
	}
	for _, c := range cases {
		if got := DayOf(c.in); got != c.want {
			t.Errorf("DayOf(%v) = %s, want %s", c.in, got, c.want)
		}
	}
}

func TestDateOnlyUTC(t *testing.T) {
	in := time.Date(2026, 3, 2, 23, 45, 12, 999, time.FixedZone("WIB", 7*3600))
	got := DateOnlyUTC(in)
	// 23:45 WIB is 16:45 UTC the same date
	want := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("DateOnlyUTC = %v, want %v", got, want)
	}
}

func TestDateOnlyUTCCrossesMidnight(t *testing.T) {
	// 02:00 WIB on March 3 is still March 2 in UTC
	in := time.Date(2026, 3, 3, 2, 0, 0, 0, time.FixedZone("WIB", 7*3600))
	want := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	if got := DateOnlyUTC(in); !got.Equal(want) {
		t.Fatalf("DateOnlyUTC = %v, want %v", got, want)
	}
}

func TestDayMatchesDate(t *testing.T) {
	monday := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	if !DayMatchesDate(Monday, monday) {
		t.Error("expected monday to match its own date")
	}
	if DayMatchesDate(Friday, monday) {
		t.Error("expected friday not to match a monday date")
	}
}

func TestDayOfWeekValid(t *testing.T) {
	if !Sunday.Valid() {
		t.Error("sunday should be valid")
	}
	if DayOfWeek("funday").Valid() {
		t.Error("funday should not be valid")
	}
}

func TestTodRoundTrip(t *testing.T) {
	tod, err := ParseTod("09:30:00")
	if err != nil {
		t.Fatalf("ParseTod: %v", err)
	}
	if !tod.Equal(TodOf(9, 30, 0)) {
		t.Fatalf("parsed tod != TodOf(9,30,0)")
	}

	v, err := tod.Value()
	if err != nil {
		t.Fatalf("Value: %v", err)
	}
	if v != "09:30:00" {
		t.Fatalf("Value = %q, want 09:30:00", v)
	}

	var scanned Tod
	if err := scanned.Scan("09:30:00"); err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if !scanned.Equal(tod) {
		t.Fatal("scanned tod != parsed tod")
	}
}

func TestTodValueRejectsZeroValue(t *testing.T) {
	var unset Tod
	if _, err := unset.Value(); err == nil {
		t.Fatal("expected error for unset Tod")
	}

	// a deliberate midnight is not the zero value and still serializes
	midnight := TodOf(0, 0, 0)
	v, err := midnight.Value()
	if err != nil {
		t.Fatalf("Value: %v", err)
	}
	if v != "00:00:00" {
		t.Fatalf("Value = %q, want 00:00:00", v)
	}
}

func TestTodOrdering(t *testing.T) {
	start := TodOf(10, 0, 0)
	end := TodOf(11, 0, 0)
	if !start.Before(end.Time) {
		t.Error("expected 10:00 before 11:00")
	}
}
