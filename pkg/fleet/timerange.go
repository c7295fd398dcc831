package fleet

import "time"

// TimeRangeDays maps the dashboard's time-range tokens to a day count.
// Every endpoint shares the same 30-day fallback for unknown or empty
// tokens.
func TimeRangeDays(timeRange string) int {
	switch timeRange {
	case "7d":
		return 7
	case "30d":
		return 30
	case "90d":
		return 90
	default:
		return 30
	}
}

// timeRangeStart is midnight local time on the first day of an n-day window
// ending today.
func timeRangeStart(now time.Time, days int) time.Time {
	day := now.AddDate(0, 0, -(days - 1))
	return time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
}

// monthStart is midnight on the first day of the current calendar month.
func monthStart(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
}
