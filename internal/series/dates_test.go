package series

import (
	"testing"
	"time"
)

func TestFormatDayLabel(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain date", in: "2025-09-08", want: "Sep 8"},
		{name: "double digit day", in: "2025-01-15", want: "Jan 15"},
		{name: "december", in: "2024-12-31", want: "Dec 31"},
		{name: "too short", in: "2025-09", want: "2025-09"},
		{name: "not a date", in: "yesterday", want: "yesterday"},
		{name: "bad month", in: "2025-13-08", want: "2025-13-08"},
		{name: "bad day", in: "2025-09-00", want: "2025-09-00"},
		{name: "empty", in: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatDayLabel(tt.in); got != tt.want {
				t.Errorf("FormatDayLabel(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestFormatDayLabelIgnoresLocalTimezone(t *testing.T) {
	// A UTC-midnight date rendered in a far-west zone must not slip to the
	// previous day.
	orig := time.Local
	time.Local = time.FixedZone("UTC-11", -11*60*60)
	defer func() { time.Local = orig }()

	if got := FormatDayLabel("2025-09-08"); got != "Sep 8" {
		t.Errorf("FormatDayLabel in UTC-11 = %q, want \"Sep 8\"", got)
	}
}

func TestDayOf(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"2025-09-08T10:00:00Z", "2025-09-08"},
		{"2025-09-08 10:00:00", "2025-09-08"},
		{"2025-09-08", "2025-09-08"},
		{"  2025-09-08T10:00:00Z ", "2025-09-08"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := dayOf(tt.in); got != tt.want {
			t.Errorf("dayOf(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
