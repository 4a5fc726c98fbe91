package domain

import "time"

// Date layouts accepted for asset dates. The frontend historically stored
// plain ISO dates, older rows carry full RFC 3339 timestamps.
var dayLayouts = []string{
	"2006-01-02",
	time.RFC3339,
}

// DayOf truncates t to UTC midnight.
func DayOf(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ParseDay parses a stored date string and truncates it to UTC midnight.
// ok is false for unparseable input.
func ParseDay(s string) (time.Time, bool) {
	for _, layout := range dayLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return DayOf(t), true
		}
	}
	return time.Time{}, false
}

// SameDay reports whether a and b fall on the same UTC calendar day.
func SameDay(a, b time.Time) bool {
	return DayOf(a).Equal(DayOf(b))
}
