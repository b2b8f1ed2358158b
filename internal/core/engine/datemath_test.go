package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsLeapYear(t *testing.T) {
	tests := []struct {
		year int
		want bool
	}{
		{2000, true},
		{1900, false},
		{2024, true},
		{2023, false},
		{2100, false},
		{2400, true},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, IsLeapYear(tt.year), "year %d", tt.year)
	}
}

func TestYearProgress(t *testing.T) {
	t.Run("Zero at Jan 1 midnight", func(t *testing.T) {
		now := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
		assert.Equal(t, 0.0, YearProgress(now))
	})

	t.Run("Just below one at the last millisecond", func(t *testing.T) {
		now := time.Date(2025, time.December, 31, 23, 59, 59, int(999*time.Millisecond), time.UTC)
		p := YearProgress(now)
		assert.Less(t, p, 1.0)
		assert.InDelta(t, 1.0, p, 1e-6)
	})

	t.Run("Half of a leap year", func(t *testing.T) {
		now := time.Date(2024, time.July, 2, 0, 0, 0, 0, time.UTC)
		assert.InDelta(t, 183.0/366.0, YearProgress(now), 1e-9)
	})
}

func TestDayProgress(t *testing.T) {
	t.Run("Noon is half", func(t *testing.T) {
		now := time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)
		assert.InDelta(t, 0.5, DayProgress(now), 1e-9)
	})

	t.Run("Midnight is zero", func(t *testing.T) {
		now := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)
		assert.Equal(t, 0.0, DayProgress(now))
	})

	t.Run("DST spring-forward day is 23 hours long", func(t *testing.T) {
		loc, err := time.LoadLocation("Europe/Rome")
		if err != nil {
			t.Skipf("tzdata unavailable: %v", err)
		}
		now := time.Date(2025, time.March, 30, 12, 0, 0, 0, loc)
		// 11 real hours elapsed out of 23.
		assert.InDelta(t, 11.0/23.0, DayProgress(now), 1e-9)
	})
}

func TestWeekProgress(t *testing.T) {
	// 2025-01-15 is a Wednesday.
	wed := time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC)

	t.Run("Sunday start", func(t *testing.T) {
		assert.InDelta(t, 3.0/7.0, WeekProgress(wed, time.Sunday), 1e-9)
	})

	t.Run("Monday start", func(t *testing.T) {
		assert.InDelta(t, 2.0/7.0, WeekProgress(wed, time.Monday), 1e-9)
	})

	t.Run("Sunday with Monday start is the last day", func(t *testing.T) {
		sun := time.Date(2025, time.January, 19, 12, 0, 0, 0, time.UTC)
		assert.InDelta(t, 6.5/7.0, WeekProgress(sun, time.Monday), 1e-9)
	})

	t.Run("Week start crosses a month boundary", func(t *testing.T) {
		now := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC) // Saturday
		start := StartOfWeek(now, time.Monday)
		require.Equal(t, time.Date(2025, time.February, 24, 0, 0, 0, 0, time.UTC), start)
	})
}

func TestDayOfYearIndex(t *testing.T) {
	assert.Equal(t, 1, DayOfYearIndex(time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 365, DayOfYearIndex(time.Date(2025, time.December, 31, 23, 0, 0, 0, time.UTC)))
	assert.Equal(t, 366, DayOfYearIndex(time.Date(2024, time.December, 31, 1, 0, 0, 0, time.UTC)))

	t.Run("Unaffected by DST transitions", func(t *testing.T) {
		loc, err := time.LoadLocation("America/New_York")
		if err != nil {
			t.Skipf("tzdata unavailable: %v", err)
		}
		// Just after midnight on the day after spring-forward.
		now := time.Date(2025, time.March, 10, 0, 30, 0, 0, loc)
		assert.Equal(t, 69, DayOfYearIndex(now))
	})
}

func TestYearDaysElapsed(t *testing.T) {
	now := time.Date(2024, time.January, 11, 0, 0, 0, 0, time.UTC)
	days := YearDaysElapsed(now)

	assert.Equal(t, 366, days.Total)
	assert.Equal(t, 10, days.Passed)
	assert.Equal(t, 356, days.Remaining)
}
