package booking

import (
	"reflect"
	"testing"
)

func TestGenerateSlots(t *testing.T) {
	got := GenerateSlots("09:00", "12:00")
	want := []string{"09:00", "09:30", "10:00", "10:30", "11:00", "11:30"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestGenerateSlots_ZeroPadded(t *testing.T) {
	got := GenerateSlots("08:00", "09:30")
	want := []string{"08:00", "08:30", "09:00"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestGenerateSlots_TrailingPartialSlot(t *testing.T) {
	// A slot is included whenever its start is before the end time, even
	// if the 30 minutes would run past it.
	got := GenerateSlots("09:00", "10:45")
	want := []string{"09:00", "09:30", "10:00", "10:30"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestGenerateSlots_HourRollover(t *testing.T) {
	got := GenerateSlots("10:30", "12:00")
	want := []string{"10:30", "11:00", "11:30"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestGenerateSlots_StartEqualsEnd(t *testing.T) {
	if got := GenerateSlots("09:00", "09:00"); len(got) != 0 {
		t.Errorf("expected no slots, got %v", got)
	}
}

func TestGenerateSlots_StartAfterEnd(t *testing.T) {
	if got := GenerateSlots("15:00", "09:00"); len(got) != 0 {
		t.Errorf("expected no slots, got %v", got)
	}
}

func TestGenerateSlots_Malformed(t *testing.T) {
	cases := []struct{ start, end string }{
		{"", "12:00"},
		{"09:00", ""},
		{"nine", "12:00"},
		{"09:00", "25:00"},
		{"09:61", "12:00"},
		{"0900", "1200"},
	}
	for _, tc := range cases {
		if got := GenerateSlots(tc.start, tc.end); len(got) != 0 {
			t.Errorf("GenerateSlots(%q, %q): expected no slots, got %v", tc.start, tc.end, got)
		}
	}
}

func TestGenerateSlots_Deterministic(t *testing.T) {
	first := GenerateSlots("09:00", "17:00")
	second := GenerateSlots("09:00", "17:00")
	if !reflect.DeepEqual(first, second) {
		t.Error("expected identical output for identical input")
	}
	if len(first) != 16 {
		t.Errorf("expected 16 slots for 09:00-17:00, got %d", len(first))
	}
}
