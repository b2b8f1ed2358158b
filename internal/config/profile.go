package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/comitanigiacomo/kanso-widgets/internal/core/domain"
)

var ErrInvalidProfile = errors.New("invalid widget profile")

// WidgetProfile is the on-disk TOML form of domain.EngineConfig.
// Zero-valued fields keep their defaults.
//
//	[heatmap]
//	week_start = "monday"
//	thresholds = [0.2, 0.5, 0.8]
//	lookback_weeks = 26
//
//	[progress]
//	week_start = "monday"
//	arc_resolution = 120
type WidgetProfile struct {
	Heatmap  HeatmapProfile  `toml:"heatmap"`
	Progress ProgressProfile `toml:"progress"`
}

type HeatmapProfile struct {
	WeekStart     string    `toml:"week_start"`
	Thresholds    []float64 `toml:"thresholds"`
	LookbackWeeks int       `toml:"lookback_weeks"`
	HistoryDays   int       `toml:"history_days"`
	CellSize      float64   `toml:"cell_size"`
	CellGap       float64   `toml:"cell_gap"`
}

type ProgressProfile struct {
	WeekStart     string  `toml:"week_start"`
	ArcResolution int     `toml:"arc_resolution"`
	RingSize      float64 `toml:"ring_size"`
	RingLineWidth float64 `toml:"ring_line_width"`
	BarWidth      float64 `toml:"bar_width"`
	BarHeight     float64 `toml:"bar_height"`
}

// LoadProfile decodes the profile at path. An empty path yields the defaults.
func LoadProfile(path string) (domain.EngineConfig, error) {
	if path == "" {
		return domain.DefaultEngineConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return domain.EngineConfig{}, fmt.Errorf("failed to read profile %s: %w", path, err)
	}
	return ParseProfile(data)
}

func ParseProfile(data []byte) (domain.EngineConfig, error) {
	var p WidgetProfile
	if err := toml.Unmarshal(data, &p); err != nil {
		return domain.EngineConfig{}, fmt.Errorf("%w: %w", ErrInvalidProfile, err)
	}
	return p.EngineConfig()
}

func (p WidgetProfile) EngineConfig() (domain.EngineConfig, error) {
	cfg := domain.DefaultEngineConfig()

	if p.Heatmap.WeekStart != "" {
		ws, err := parseWeekStart(p.Heatmap.WeekStart)
		if err != nil {
			return domain.EngineConfig{}, err
		}
		cfg.WeekStart = ws
	}
	if p.Progress.WeekStart != "" {
		ws, err := parseWeekStart(p.Progress.WeekStart)
		if err != nil {
			return domain.EngineConfig{}, err
		}
		cfg.ProgressWeekStart = ws
	}

	if len(p.Heatmap.Thresholds) > 0 {
		if len(p.Heatmap.Thresholds) != len(cfg.Thresholds) {
			return domain.EngineConfig{}, fmt.Errorf("%w: expected %d thresholds, got %d",
				ErrInvalidProfile, len(cfg.Thresholds), len(p.Heatmap.Thresholds))
		}
		copy(cfg.Thresholds[:], p.Heatmap.Thresholds)
	}

	setInt(&cfg.LookbackWeeks, p.Heatmap.LookbackWeeks)
	setInt(&cfg.HistoryDays, p.Heatmap.HistoryDays)
	setInt(&cfg.ArcResolution, p.Progress.ArcResolution)
	setFloat(&cfg.CellSize, p.Heatmap.CellSize)
	setFloat(&cfg.CellGap, p.Heatmap.CellGap)
	setFloat(&cfg.Ring.Size, p.Progress.RingSize)
	setFloat(&cfg.Ring.LineWidth, p.Progress.RingLineWidth)
	setFloat(&cfg.Bar.TotalWidth, p.Progress.BarWidth)
	setFloat(&cfg.Bar.Height, p.Progress.BarHeight)

	if err := cfg.Validate(); err != nil {
		return domain.EngineConfig{}, fmt.Errorf("%w: %w", ErrInvalidProfile, err)
	}
	return cfg, nil
}

func parseWeekStart(s string) (time.Weekday, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "sunday":
		return time.Sunday, nil
	case "monday":
		return time.Monday, nil
	}
	return 0, fmt.Errorf("%w: %w: %q", ErrInvalidProfile, domain.ErrInvalidWeekStart, s)
}

func setInt(dst *int, v int) {
	if v != 0 {
		*dst = v
	}
}

func setFloat(dst *float64, v float64) {
	if v != 0 {
		*dst = v
	}
}
