package analytics

import (
	"slices"
	"time"
)

// Streak counts consecutive calendar days with at least one entry, ending at the day
// of the most recent timestamp. Multiple entries on the same day count once. The
// input may be in any order.
func Streak(timestamps []time.Time) int {
	if len(timestamps) == 0 {
		return 0
	}

	days := make([]time.Time, len(timestamps))
	for i, t := range timestamps {
		days[i] = DayFloor(t)
	}
	slices.SortFunc(days, func(a, b time.Time) int { return b.Compare(a) })

	streak := 1
	anchor := days[0]
	for _, d := range days[1:] {
		switch DaysBetween(anchor, d) {
		case 0:
			continue
		case 1:
			streak++
			anchor = d
		default:
			return streak
		}
	}
	return streak
}
