package model

import (
	"time"
)

// Dates in the planning API are ISO YYYY-MM-DD strings. A nil or empty
// value means open-ended.
const DateLayout = "2006-01-02"

func ParseDate(s *string) (time.Time, bool) {
	if s == nil || *s == "" {
		return time.Time{}, false
	}

	t, err := time.Parse(DateLayout, *s)
	if err != nil {
		return time.Time{}, false
	}

	return t, true
}

func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// WorkingDaysBetween counts the weekdays from start to end, inclusive of
// both endpoints. Saturdays and Sundays are excluded. If either date is
// missing or invalid the result is 0.
func WorkingDaysBetween(start, end *string) int {
	s, ok := ParseDate(start)
	if !ok {
		return 0
	}

	e, ok := ParseDate(end)
	if !ok {
		return 0
	}

	result := 0
	for d := s; !d.After(e); d = d.AddDate(0, 0, 1) {
		if wd := d.Weekday(); wd != time.Saturday && wd != time.Sunday {
			result++
		}
	}
	return result
}

// OnOrBefore reports whether the date falls on or before t. A missing or
// invalid date is open-ended and always matches.
func OnOrBefore(d *string, t time.Time) bool {
	v, ok := ParseDate(d)
	if !ok {
		return true
	}
	return !v.After(t)
}

// OnOrAfter reports whether the date falls on or after t. A missing or
// invalid date is open-ended and always matches.
func OnOrAfter(d *string, t time.Time) bool {
	v, ok := ParseDate(d)
	if !ok {
		return true
	}
	return !v.Before(t)
}
