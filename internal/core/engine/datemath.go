// Package engine turns daily activity series and the current time into
// week-aligned grids, intensity tiers, streaks and progress geometry.
// Every function is pure: no I/O, no clocks, no shared state.
package engine

import (
	"math"
	"time"

	"github.com/comitanigiacomo/kanso-widgets/internal/core/domain"
)

func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// StartOfWeek returns local midnight of the most recent weekStart day on or before t.
func StartOfWeek(t time.Time, weekStart time.Weekday) time.Time {
	offset := weekdayOffset(t.Weekday(), weekStart)
	return time.Date(t.Year(), t.Month(), t.Day()-offset, 0, 0, 0, 0, t.Location())
}

func weekdayOffset(day, weekStart time.Weekday) int {
	return ((int(day)-int(weekStart))%domain.DaysPerWeek + domain.DaysPerWeek) % domain.DaysPerWeek
}

func fraction(now, start, end time.Time) float64 {
	span := end.Sub(start)
	if span <= 0 {
		return 0
	}
	return float64(now.Sub(start)) / float64(span)
}

// DayProgress is the elapsed share of today, midnight to midnight in now's zone.
// Day length follows the calendar, so DST days span 23 or 25 hours.
func DayProgress(now time.Time) float64 {
	start := StartOfDay(now)
	end := time.Date(now.Year(), now.Month(), now.Day()+1, 0, 0, 0, 0, now.Location())
	return fraction(now, start, end)
}

func WeekProgress(now time.Time, weekStart time.Weekday) float64 {
	start := StartOfWeek(now, weekStart)
	end := start.AddDate(0, 0, domain.DaysPerWeek)
	return fraction(now, start, end)
}

func YearProgress(now time.Time) float64 {
	start := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
	end := time.Date(now.Year()+1, time.January, 1, 0, 0, 0, 0, now.Location())
	return fraction(now, start, end)
}

func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

func DaysInYear(year int) int {
	if IsLeapYear(year) {
		return 366
	}
	return 365
}

// DayOfYearIndex is the 1-based calendar day of the year: Jan 1 is 1,
// Dec 31 is 365 or 366.
func DayOfYearIndex(now time.Time) int {
	return now.YearDay()
}

func YearDaysElapsed(now time.Time) domain.YearDays {
	total := DaysInYear(now.Year())
	// Nudge so exact day boundaries don't floor to the previous day.
	passed := int(math.Floor(clamp01(YearProgress(now))*float64(total) + 1e-9))
	if passed > total {
		passed = total
	}
	return domain.YearDays{
		Passed:    passed,
		Remaining: total - passed,
		Total:     total,
	}
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
