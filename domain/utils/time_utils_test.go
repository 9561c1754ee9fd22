package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDailyWindowStart(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	// 02:30 UTC on the 15th is still the 14th in New York
	now := time.Date(2024, 5, 15, 2, 30, 0, 0, time.UTC)
	start := DailyWindowStart(now, loc)

	assert.Equal(t, time.Date(2024, 5, 14, 0, 0, 0, 0, loc), start)
	assert.Equal(t, time.Date(2024, 5, 15, 0, 0, 0, 0, loc), NextDailyWindow(now, loc))
}

func TestWeeklyWindowStart(t *testing.T) {
	tests := []struct {
		name string
		now  time.Time
		want time.Time
	}{
		{
			name: "wednesday goes back to sunday",
			now:  time.Date(2024, 5, 15, 13, 0, 0, 0, time.UTC),
			want: time.Date(2024, 5, 12, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "sunday is its own start",
			now:  time.Date(2024, 5, 12, 23, 59, 0, 0, time.UTC),
			want: time.Date(2024, 5, 12, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "saturday crosses month boundary",
			now:  time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC),
			want: time.Date(2024, 5, 26, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WeeklyWindowStart(tt.now, time.UTC)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, time.Sunday, got.Weekday())
		})
	}
}

func TestCalendarDate(t *testing.T) {
	loc := time.FixedZone("UTC+10", 10*60*60)
	now := time.Date(2024, 5, 15, 20, 0, 0, 0, time.UTC)

	assert.Equal(t, time.Date(2024, 5, 16, 0, 0, 0, 0, time.UTC), CalendarDate(now, loc))
}
