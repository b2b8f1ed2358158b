package domain

import "fmt"

type HeatmapCell struct {
	Date  string        `json:"date"`
	Count int           `json:"count"`
	Tier  IntensityTier `json:"tier"`
}

type Heatmap struct {
	Total         int             `json:"total"`
	MaxCount      int             `json:"max_count"`
	CurrentStreak int             `json:"current_streak"`
	LongestStreak int             `json:"longest_streak"`
	WeekStart     string          `json:"week_start"`
	Weeks         [][]HeatmapCell `json:"weeks"`
}

type HeatmapInput struct {
	UserID  string
	EndDate string
	// Timezone resolves "today" when EndDate is empty.
	Timezone string
}

var ErrInvalidTimezone = fmt.Errorf("%w: unknown timezone", ErrInvalidInput)
