package directory

import (
	"fmt"
	"strings"
	"time"
)

// Weekday is a fixed invariant identifier for a day of the week. Schedules
// store lowercase English names regardless of the server locale.
type Weekday string

const (
	Sunday    Weekday = "sunday"
	Monday    Weekday = "monday"
	Tuesday   Weekday = "tuesday"
	Wednesday Weekday = "wednesday"
	Thursday  Weekday = "thursday"
	Friday    Weekday = "friday"
	Saturday  Weekday = "saturday"
)

var weekdayNames = [7]Weekday{Sunday, Monday, Tuesday, Wednesday, Thursday, Friday, Saturday}

// WeekdayOf returns the Weekday for the given calendar date.
func WeekdayOf(t time.Time) Weekday {
	return weekdayNames[int(t.Weekday())]
}

// ParseWeekday converts a stored identifier into a Weekday. Leading and
// trailing whitespace is trimmed and the match is case-insensitive, but the
// identifier set itself is fixed (no locale spellings).
func ParseWeekday(s string) (Weekday, error) {
	w := Weekday(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range weekdayNames {
		if w == known {
			return w, nil
		}
	}
	return "", fmt.Errorf("unknown weekday %q", s)
}

// Weekdays is the set of days a practitioner sees patients.
type Weekdays []Weekday

// Contains reports whether d is in the set.
func (ws Weekdays) Contains(d Weekday) bool {
	for _, w := range ws {
		if w == d {
			return true
		}
	}
	return false
}

// ParseWeekdays parses a list of stored identifiers, rejecting unknown names
// and empty sets.
func ParseWeekdays(names []string) (Weekdays, error) {
	if len(names) == 0 {
		return nil, fmt.Errorf("weekday set must not be empty")
	}
	out := make(Weekdays, 0, len(names))
	for _, n := range names {
		w, err := ParseWeekday(n)
		if err != nil {
			return nil, err
		}
		if !out.Contains(w) {
			out = append(out, w)
		}
	}
	return out, nil
}

// Strings returns the set as stored identifiers.
func (ws Weekdays) Strings() []string {
	out := make([]string, len(ws))
	for i, w := range ws {
		out[i] = string(w)
	}
	return out
}
