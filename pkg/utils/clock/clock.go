package clock

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Normalize accepts "14:00" or "1400" style input and returns "HH:MM".
// The second return value is false for anything unparseable.
func Normalize(s string) (string, bool) {
	mins, ok := Minutes(s)
	if !ok {
		return "", false
	}
	return fmt.Sprintf("%02d:%02d", mins/60, mins%60), true
}

// Minutes converts a clock string to minutes since midnight.
func Minutes(s string) (int, bool) {
	s = strings.TrimSpace(s)
	var hourPart, minPart string
	if strings.Contains(s, ":") {
		parts := strings.SplitN(s, ":", 2)
		hourPart, minPart = parts[0], parts[1]
	} else {
		if len(s) < 3 || len(s) > 4 {
			return 0, false
		}
		hourPart, minPart = s[:len(s)-2], s[len(s)-2:]
	}

	hour, err := strconv.Atoi(hourPart)
	if err != nil {
		return 0, false
	}
	min, err := strconv.Atoi(minPart)
	if err != nil {
		return 0, false
	}
	if hour < 0 || hour > 23 || min < 0 || min > 59 {
		return 0, false
	}
	return hour*60 + min, true
}

// FormatTime renders a timestamp for reports. Nil or zero times come out as
// the "--" placeholder instead of a bogus date.
func FormatTime(t *time.Time) string {
	if t == nil || t.IsZero() {
		return "--"
	}
	return t.Format("2006-01-02 15:04")
}

// FormatDuration renders the span between two timestamps as "1h30m".
// Missing or inverted inputs come out as "--".
func FormatDuration(start, end *time.Time) string {
	if start == nil || end == nil || start.IsZero() || end.IsZero() || !end.After(*start) {
		return "--"
	}
	d := end.Sub(*start).Round(time.Minute)
	hours := int(d.Hours())
	mins := int(d.Minutes()) - hours*60
	if hours == 0 {
		return fmt.Sprintf("%dm", mins)
	}
	return fmt.Sprintf("%dh%dm", hours, mins)
}
