package utils

import "time"

// DailyWindowStart returns local midnight of the day containing now
func DailyWindowStart(now time.Time, loc *time.Location) time.Time {
	local := now.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
}

// WeeklyWindowStart returns midnight of the most recent Sunday at or before now
func WeeklyWindowStart(now time.Time, loc *time.Location) time.Time {
	local := now.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day()-int(local.Weekday()), 0, 0, 0, 0, loc)
}

// CalendarDate returns the local calendar day of now as a UTC midnight value, matching how DATE columns scan
func CalendarDate(now time.Time, loc *time.Location) time.Time {
	local := now.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.UTC)
}

// NextDailyWindow returns the start of the next daily window
func NextDailyWindow(now time.Time, loc *time.Location) time.Time {
	start := DailyWindowStart(now, loc)
	return time.Date(start.Year(), start.Month(), start.Day()+1, 0, 0, 0, 0, loc)
}
