package support

import (
	"fmt"
	"time"
)

// YMD is a calendar date given as explicit year, month and day components.
type YMD struct {
	Year  int
	Month int
	Day   int
}

// ParseDate reads a calendar date from any of the accepted shapes: an ISO
// "YYYY-MM-DD" string, an RFC 3339 datetime (the date part is taken), a
// time.Time, or a YMD triple. The result is midnight UTC. Impossible dates
// such as February 31st are rejected.
func ParseDate(v any) (time.Time, error) {
	switch d := v.(type) {
	case time.Time:
		return Midnight(d), nil
	case YMD:
		return dateOf(d.Year, time.Month(d.Month), d.Day)
	case string:
		if t, err := time.Parse("2006-01-02", d); err == nil {
			return Midnight(t), nil
		}
		if t, err := time.Parse(time.RFC3339, d); err == nil {
			return Midnight(t), nil
		}
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, d)
	default:
		return time.Time{}, fmt.Errorf("%w: %v", ErrInvalidDate, v)
	}
}

// Midnight truncates t to its UTC calendar date.
func Midnight(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// dateOf builds a UTC date and verifies the components round-trip, which
// rejects overflow dates that time.Date would silently normalize.
func dateOf(year int, month time.Month, day int) (time.Time, error) {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || t.Month() != month || t.Day() != day {
		return time.Time{}, fmt.Errorf("%w: %04d-%02d-%02d", ErrInvalidDate, year, month, day)
	}
	return t, nil
}

// FormatDate renders t as its ISO calendar date.
func FormatDate(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}
