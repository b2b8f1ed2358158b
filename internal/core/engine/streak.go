package engine

import "github.com/comitanigiacomo/kanso-widgets/internal/core/domain"

// CurrentStreak counts consecutive active days ending at the most recent real day.
// An inactive most recent day yields 0.
func CurrentStreak(cal domain.Calendar) int {
	days := cal.RealDays()

	streak := 0
	for i := len(days) - 1; i >= 0; i-- {
		if days[i].Count <= 0 {
			break
		}
		streak++
	}
	return streak
}

func LongestStreak(cal domain.Calendar) int {
	longest, run := 0, 0
	for _, d := range cal.RealDays() {
		if d.Count > 0 {
			run++
			if run > longest {
				longest = run
			}
		} else {
			run = 0
		}
	}
	return longest
}
