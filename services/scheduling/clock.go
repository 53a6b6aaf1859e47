package scheduling

import (
	"fmt"
	"strings"
	"time"
)

// Accepted wire formats for user-facing dates and times. Dates arrive as
// either ISO or US order; times as 12-hour with am/pm or 24-hour clock.
var (
	dateLayouts  = []string{"2006-01-02", "1/2/2006"}
	clockLayouts = []string{"3:04 pm", "3:04pm", "15:04"}
)

// ParseDate parses a calendar date into midnight of that day in loc.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date format")
}

// ParseClock parses a clock time into minutes from midnight.
func ParseClock(s string) (int, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, layout := range clockLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Hour()*60 + t.Minute(), nil
		}
	}
	return 0, fmt.Errorf("unrecognized time format")
}

// MinutesOfDay returns t's offset from midnight in minutes.
func MinutesOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}
