package engine

import (
	"time"

	"github.com/comitanigiacomo/kanso-widgets/internal/core/domain"
)

// BucketWeeks lays a consecutive daily series into 7-column weeks.
// The first week is left-padded so every column holds the same weekday,
// and the last partial week is right-padded.
func BucketWeeks(records []domain.DayRecord, weekStart time.Weekday) (domain.Calendar, error) {
	if weekStart != time.Sunday && weekStart != time.Monday {
		return domain.Calendar{}, domain.ErrInvalidWeekStart
	}
	cal := domain.Calendar{Weeks: []domain.Week{}, WeekStart: weekStart}
	if len(records) == 0 {
		return cal, nil
	}
	if err := domain.ValidateSeries(records); err != nil {
		return domain.Calendar{}, err
	}

	var current domain.Week
	col := weekdayOffset(records[0].Date.Weekday(), weekStart)

	for _, r := range records {
		current[col] = r
		cal.Total += r.Count
		col++
		if col == domain.DaysPerWeek {
			cal.Weeks = append(cal.Weeks, current)
			current = domain.Week{}
			col = 0
		}
	}

	if col > 0 {
		cal.Weeks = append(cal.Weeks, current)
	}

	return cal, nil
}
