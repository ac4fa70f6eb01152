package domain

import (
	"time"
)

// daysSince returns the fractional number of days between t and now.
func daysSince(t, now time.Time) float64 {
	return now.Sub(t).Hours() / 24
}

// startOfDay truncates t to midnight in now's location.
func startOfDay(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

// calendarDaysBetween counts calendar days from earlier to later in loc.
// Computed on the date parts so DST changes do not shift the count.
func calendarDaysBetween(earlier, later time.Time, loc *time.Location) int {
	a := startOfDay(earlier, loc)
	b := startOfDay(later, loc)
	da := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	db := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(db.Sub(da).Hours() / 24)
}

// weekdayIndex maps t onto a Monday-first index: Monday is 0, Sunday is 6.
func weekdayIndex(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}
