package directory

import (
	"testing"
	"time"
)

func TestParseWeekday(t *testing.T) {
	cases := map[string]Weekday{
		"monday":    Monday,
		"MONDAY":    Monday,
		" friday ":  Friday,
		"Sunday":    Sunday,
		"wednesday": Wednesday,
	}
	for input, want := range cases {
		got, err := ParseWeekday(input)
		if err != nil {
			t.Errorf("ParseWeekday(%q): unexpected error %v", input, err)
			continue
		}
		if got != want {
			t.Errorf("ParseWeekday(%q): expected %s, got %s", input, want, got)
		}
	}
}

func TestParseWeekday_Invalid(t *testing.T) {
	for _, input := range []string{"", "lunes", "mon", "noday"} {
		if _, err := ParseWeekday(input); err == nil {
			t.Errorf("ParseWeekday(%q): expected error", input)
		}
	}
}

func TestWeekdayOf(t *testing.T) {
	// 2025-03-10 is a Monday.
	d := time.Date(2025, 3, 10, 0, 0, 0, 0, time.Local)
	if got := WeekdayOf(d); got != Monday {
		t.Errorf("expected monday, got %s", got)
	}
	if got := WeekdayOf(d.AddDate(0, 0, 5)); got != Saturday {
		t.Errorf("expected saturday, got %s", got)
	}
}

func TestParseWeekdays(t *testing.T) {
	w, err := ParseWeekdays([]string{"monday", "wednesday", "monday"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(w) != 2 {
		t.Errorf("expected duplicates removed, got %v", w)
	}
	if !w.Contains(Monday) || !w.Contains(Wednesday) {
		t.Error("expected monday and wednesday")
	}
	if w.Contains(Friday) {
		t.Error("did not expect friday")
	}
}

func TestParseWeekdays_Empty(t *testing.T) {
	if _, err := ParseWeekdays(nil); err == nil {
		t.Error("expected error for empty weekday set")
	}
}
