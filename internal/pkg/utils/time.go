package utils

import (
	"medibook-service/internal/pkg/constvars"
	"strings"
	"time"
)

// TruncateToDay zeroes the clock portion, keeping the location.
func TruncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// IsSameDay reports whether a and b fall on the same calendar day in a's location.
func IsSameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

var clockLayouts = []string{constvars.ClockFormat, "3:04 PM", "3:04PM"}

// ParseClock parses a wall-clock string ("HH:MM", with or without an AM/PM
// suffix) into the offset from midnight. ok is false for anything it cannot
// parse; callers decide whether that fails open or closed.
func ParseClock(clock string) (time.Duration, bool) {
	trimmed := strings.ToUpper(strings.TrimSpace(clock))
	for _, layout := range clockLayouts {
		parsed, err := time.Parse(layout, trimmed)
		if err != nil {
			continue
		}
		return time.Duration(parsed.Hour())*time.Hour + time.Duration(parsed.Minute())*time.Minute, true
	}
	return 0, false
}
