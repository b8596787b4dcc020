package services

import "time"

// DateAtLocation truncates an instant to local midnight of its calendar day.
// Both upsert components key their per-day uniqueness on this value, so the
// day boundary is always the local (year, month, day) triple and never a
// formatted date string.
func DateAtLocation(value time.Time, location *time.Location) time.Time {
	if location == nil {
		location = time.UTC
	}
	localized := value.In(location)
	year, month, day := localized.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, location)
}

// DayRange returns the half-open [start, end) interval covering the calendar
// day that contains value.
func DayRange(value time.Time, location *time.Location) (time.Time, time.Time) {
	start := DateAtLocation(value, location)
	return start, start.AddDate(0, 0, 1)
}
