package schedule

import "time"

// The calendar is Monday through Friday only. No holidays, no timezones:
// every date is normalized to midnight UTC and treated as a plain calendar
// date.

// DateOnly strips the time-of-day and location from t.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// IsBusinessDay reports whether d falls on Monday through Friday.
func IsBusinessDay(d time.Time) bool {
	wd := d.Weekday()
	return wd != time.Saturday && wd != time.Sunday
}

// NextBusinessDay returns d itself if it is a business day, otherwise the
// next Monday.
func NextBusinessDay(d time.Time) time.Time {
	d = DateOnly(d)
	for !IsBusinessDay(d) {
		d = d.AddDate(0, 0, 1)
	}
	return d
}

// AdvanceBusinessDay always moves to a strictly later business day.
func AdvanceBusinessDay(d time.Time) time.Time {
	return NextBusinessDay(DateOnly(d).AddDate(0, 0, 1))
}

// AddBusinessDays applies AdvanceBusinessDay n times, starting from the
// normalized business day of d.
func AddBusinessDays(d time.Time, n int) time.Time {
	d = NextBusinessDay(d)
	for i := 0; i < n; i++ {
		d = AdvanceBusinessDay(d)
	}
	return d
}
