package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDayFloor(t *testing.T) {
	est := time.FixedZone("EST", -5*60*60)

	tests := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{
			name: "utc afternoon",
			in:   time.Date(2024, 3, 10, 15, 45, 12, 99, time.UTC),
			want: time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "local evening rolls into next utc day",
			in:   time.Date(2024, 3, 10, 23, 30, 0, 0, est),
			want: time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "midnight stays",
			in:   time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
			want: time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.want.Equal(DayFloor(tt.in)), "got %v", DayFloor(tt.in))
		})
	}
}

func TestDaysBetween(t *testing.T) {
	lateEvening := time.Date(2024, 3, 10, 23, 50, 0, 0, time.UTC)
	justAfterMidnight := time.Date(2024, 3, 11, 0, 10, 0, 0, time.UTC)

	assert.Equal(t, 1, DaysBetween(justAfterMidnight, lateEvening))
	assert.Equal(t, -1, DaysBetween(lateEvening, justAfterMidnight))
	assert.Equal(t, 0, DaysBetween(lateEvening, lateEvening.Add(-20*time.Hour)))
	assert.Equal(t, 31, DaysBetween(time.Date(2024, 4, 10, 1, 0, 0, 0, time.UTC), lateEvening))
}

func TestCycleDayOf(t *testing.T) {
	start := time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		date   time.Time
		length int
		want   int
	}{
		{"start is day one", start, 28, 1},
		{"later the same day", start.Add(10 * time.Hour), 28, 1},
		{"last day", start.Add(days(27)), 28, 28},
		{"wraps to next cycle", start.Add(days(28)), 28, 1},
		{"before start wraps backwards", start.Add(-days(1)), 28, 28},
		{"far before start", start.Add(-days(29)), 28, 28},
		{"short cycle", start.Add(days(21)), 21, 1},
		{"length one", start.Add(days(5)), 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CycleDayOf(tt.date, start, tt.length)
			assert.Equal(t, tt.want, got)
			assert.GreaterOrEqual(t, got, 1)
			assert.LessOrEqual(t, got, tt.length)
		})
	}
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 0.33, Round2(1.0/3))
	assert.Equal(t, -0.67, Round2(-2.0/3))
	assert.Equal(t, 0.5, Round2(0.5))
}
