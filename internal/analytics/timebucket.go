// Package analytics holds the pure computations behind the insight endpoints.
// Every function takes its reference time explicitly and never reads the clock.
package analytics

import (
	"math"
	"time"
)

const day = 24 * time.Hour

// DayFloor truncates t to midnight UTC of its UTC calendar day.
func DayFloor(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the number of whole calendar days from b to a. It is
// negative when a is before b.
func DaysBetween(a, b time.Time) int {
	return int(math.Floor(DayFloor(a).Sub(DayFloor(b)).Hours() / 24))
}

// CycleDayOf returns the 1-based day of the cycle that date falls on. Dates before
// start wrap into the previous cycle. length must be at least 1.
func CycleDayOf(date, start time.Time, length int) int {
	if length < 1 {
		length = 1
	}
	diff := DaysBetween(date, start)
	return ((diff%length)+length)%length + 1
}

// elapsedDays is the whole number of 24h periods between t and asOf, clamped at 0.
func elapsedDays(t, asOf time.Time) int {
	d := asOf.Sub(t)
	if d < 0 {
		return 0
	}
	return int(d / day)
}

// WindowStart is the inclusive lower bound of a trailing window of days ending at asOf.
func WindowStart(asOf time.Time, days int) time.Time {
	return asOf.Add(-time.Duration(days) * day)
}

// Round2 rounds a display value to two decimals.
func Round2(x float64) float64 {
	return math.Round(x*100) / 100
}
