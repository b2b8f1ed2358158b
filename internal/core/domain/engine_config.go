package domain

import (
	"errors"
	"time"
)

var (
	ErrInvalidWeekStart  = errors.New("week start must be sunday or monday")
	ErrInvalidThresholds = errors.New("intensity thresholds must be strictly increasing within (0, 1]")
	ErrInvalidResolution = errors.New("arc resolution must be positive")
	ErrInvalidLookback   = errors.New("lookback weeks and history days must be positive")
)

const (
	DefaultArcResolution = 100
	DefaultLookbackWeeks = 17
	DefaultHistoryDays   = 365
	DefaultCellSize      = 7
	DefaultCellGap       = 2
)

// EngineConfig parameterizes every widget variant.
type EngineConfig struct {
	// WeekStart orders heatmap columns; ProgressWeekStart bounds the week ring.
	WeekStart         time.Weekday
	ProgressWeekStart time.Weekday
	Thresholds        [3]float64
	ArcResolution     int
	LookbackWeeks     int
	HistoryDays       int
	CellSize          float64
	CellGap           float64
	Ring              RingSpec
	Bar               BarSpec
}

func DefaultEngineConfig() EngineConfig {
	return EngineConfig{
		WeekStart:         time.Sunday,
		ProgressWeekStart: time.Monday,
		Thresholds:        [3]float64{0.25, 0.5, 0.75},
		ArcResolution:     DefaultArcResolution,
		LookbackWeeks:     DefaultLookbackWeeks,
		HistoryDays:       DefaultHistoryDays,
		CellSize:          DefaultCellSize,
		CellGap:           DefaultCellGap,
		Ring:              RingSpec{Size: 60, LineWidth: 6},
		Bar:               BarSpec{TotalWidth: 280, Height: 16},
	}
}

func (c EngineConfig) Validate() error {
	for _, ws := range []time.Weekday{c.WeekStart, c.ProgressWeekStart} {
		if ws != time.Sunday && ws != time.Monday {
			return ErrInvalidWeekStart
		}
	}
	prev := 0.0
	for _, t := range c.Thresholds {
		if t <= prev || t > 1 {
			return ErrInvalidThresholds
		}
		prev = t
	}
	if c.ArcResolution <= 0 {
		return ErrInvalidResolution
	}
	if c.LookbackWeeks <= 0 || c.HistoryDays <= 0 {
		return ErrInvalidLookback
	}
	return nil
}
