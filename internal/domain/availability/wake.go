package availability

import "time"

// ShouldRefreshOnWake reports whether data refreshed at last belongs to an earlier campus-local
// calendar day than now. A nil last always needs a refresh.
func ShouldRefreshOnWake(last *time.Time, now time.Time, loc *time.Location) bool {
	if last == nil {
		return true
	}
	if loc == nil {
		loc = time.UTC
	}
	return calendarDate(last.In(loc)).Before(calendarDate(now.In(loc)))
}

func calendarDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
