package dateutil

import (
	"fmt"
	"time"
)

const Day = 24 * time.Hour

var layouts = []string{
	time.RFC3339,
	"2006-01-02",
}

// ParseDate accepts an RFC3339 timestamp or a plain yyyy-mm-dd date (UTC).
func ParseDate(s string) (time.Time, error) {
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}

	return time.Time{}, fmt.Errorf("invalid date %q", s)
}

// DaysBetween returns the number of days from a to b, counting a partial
// day as a whole one.
func DaysBetween(a, b time.Time) int {
	d := b.Sub(a)
	days := int(d / Day)
	if d%Day > 0 {
		days++
	}

	return days
}
