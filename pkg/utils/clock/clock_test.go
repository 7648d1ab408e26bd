package clock

import (
	"testing"
	"time"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		in   string
		want string
		ok   bool
	}{
		{"14:00", "14:00", true},
		{"1400", "14:00", true},
		{"930", "09:30", true},
		{"9:5", "09:05", true},
		{"0000", "00:00", true},
		{"24:00", "", false},
		{"14:60", "", false},
		{"abc", "", false},
		{"", "", false},
	}
	for _, tc := range cases {
		got, ok := Normalize(tc.in)
		if ok != tc.ok || got != tc.want {
			t.Errorf("Normalize(%q) = %q,%v; want %q,%v", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

func TestFormatTime(t *testing.T) {
	if got := FormatTime(nil); got != "--" {
		t.Errorf("FormatTime(nil) = %q, want --", got)
	}
	ts := time.Date(2025, 3, 1, 22, 5, 0, 0, time.Local)
	if got := FormatTime(&ts); got != "2025-03-01 22:05" {
		t.Errorf("FormatTime = %q", got)
	}
}

func TestFormatDuration(t *testing.T) {
	start := time.Date(2025, 3, 1, 20, 0, 0, 0, time.Local)
	end := start.Add(90 * time.Minute)
	if got := FormatDuration(&start, &end); got != "1h30m" {
		t.Errorf("FormatDuration = %q, want 1h30m", got)
	}
	short := start.Add(20 * time.Minute)
	if got := FormatDuration(&start, &short); got != "20m" {
		t.Errorf("FormatDuration = %q, want 20m", got)
	}
	if got := FormatDuration(&end, &start); got != "--" {
		t.Errorf("FormatDuration inverted = %q, want --", got)
	}
}
