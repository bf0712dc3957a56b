package domain

import "time"

// DayOf truncates t to its calendar day in loc. The result is midnight UTC
// of that day so that it compares cleanly with DATE columns.
func DayOf(t time.Time, loc *time.Location) time.Time {
	if loc != nil {
		t = t.In(loc)
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DurationDays is the inclusive number of days between start and seen. A
// creative first seen on its start day has a duration of 1. Start dates in
// the future (clock skew on the source side) also yield 1.
func DurationDays(start, seen time.Time) int {
	days := int(seen.Sub(start).Hours()/24) + 1
	if days < 1 {
		return 1
	}
	return days
}
