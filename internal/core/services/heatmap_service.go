package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/comitanigiacomo/kanso-widgets/internal/core/domain"
	"github.com/comitanigiacomo/kanso-widgets/internal/core/engine"
)

type cacheInvalidator interface {
	Invalidate(ctx context.Context, userID string) error
}

type HeatmapService struct {
	source domain.ActivitySource
	cfg    domain.EngineConfig
	now    func() time.Time
}

func NewHeatmapService(source domain.ActivitySource, cfg domain.EngineConfig) *HeatmapService {
	return &HeatmapService{
		source: source,
		cfg:    cfg,
		now:    time.Now,
	}
}

func (s *HeatmapService) WithClock(now func() time.Time) *HeatmapService {
	s.now = now
	return s
}

func (s *HeatmapService) GetHeatmap(ctx context.Context, input domain.HeatmapInput) (*domain.Heatmap, error) {
	loc, err := resolveLocation(input.Timezone)
	if err != nil {
		return nil, err
	}

	var end time.Time
	if input.EndDate == "" {
		end = domain.CivilDate(s.now().In(loc))
	} else {
		end, err = time.Parse(domain.DateLayout, input.EndDate)
		if err != nil {
			return nil, fmt.Errorf("%w: end_date %q", domain.ErrInvalidDate, input.EndDate)
		}
	}
	from := end.AddDate(0, 0, -(s.cfg.HistoryDays - 1))

	series, err := s.source.DailySeries(ctx, input.UserID, from, end)
	if err != nil {
		return nil, fmt.Errorf("heatmap service: failed to load activity: %w", err)
	}
	if !hasActivity(series) {
		return nil, domain.ErrNoActivity
	}

	cal, err := s.bucket(series)
	if err != nil {
		return nil, err
	}
	return s.render(cal), nil
}

// BuildHeatmap runs the grid pipeline over a caller-supplied series.
func (s *HeatmapService) BuildHeatmap(series []domain.DayRecord) (*domain.Heatmap, error) {
	cal, err := s.bucket(series)
	if err != nil {
		return nil, err
	}
	return s.render(cal), nil
}

// BuildHeatmapWithTotal is BuildHeatmap with a total reported by the data
// provider, which may cover a wider span than the series.
func (s *HeatmapService) BuildHeatmapWithTotal(series []domain.DayRecord, total int) (*domain.Heatmap, error) {
	cal, err := s.bucket(series)
	if err != nil {
		return nil, err
	}
	cal.Total = total
	return s.render(cal), nil
}

// Refresh drops the user's cached series and rebuilds the window ending today
// in timezone, the same window a GET with that tz reads next.
func (s *HeatmapService) Refresh(ctx context.Context, userID, timezone string) (*domain.Heatmap, error) {
	if _, err := resolveLocation(timezone); err != nil {
		return nil, err
	}

	if inv, ok := s.source.(cacheInvalidator); ok {
		if err := inv.Invalidate(ctx, userID); err != nil {
			log.Printf("[HEATMAP] Failed to invalidate cache for user %s: %v", userID, err)
		}
	}
	return s.GetHeatmap(ctx, domain.HeatmapInput{UserID: userID, Timezone: timezone})
}

func (s *HeatmapService) bucket(series []domain.DayRecord) (domain.Calendar, error) {
	if len(series) == 0 {
		return domain.Calendar{}, domain.ErrNoActivity
	}
	return engine.BucketWeeks(series, s.cfg.WeekStart)
}

func (s *HeatmapService) render(cal domain.Calendar) *domain.Heatmap {
	display := cal.Tail(s.cfg.LookbackWeeks)
	localMax := engine.LocalMax(display)
	classifier := engine.NewClassifier(s.cfg.Thresholds)

	weeks := make([][]domain.HeatmapCell, 0, len(display.Weeks))
	for _, w := range display.Weeks {
		row := make([]domain.HeatmapCell, 0, domain.DaysPerWeek)
		for _, d := range w {
			row = append(row, domain.HeatmapCell{
				Date:  d.DateKey(),
				Count: d.Count,
				Tier:  classifier.Classify(d.Count, localMax),
			})
		}
		weeks = append(weeks, row)
	}

	return &domain.Heatmap{
		Total:         cal.Total,
		MaxCount:      localMax,
		CurrentStreak: engine.CurrentStreak(cal),
		LongestStreak: engine.LongestStreak(cal),
		WeekStart:     strings.ToLower(s.cfg.WeekStart.String()),
		Weeks:         weeks,
	}
}

// A source window where every day is zero is the same no-data state as an
// empty one, whichever adapter produced it.
func hasActivity(series []domain.DayRecord) bool {
	for _, d := range series {
		if d.Count > 0 {
			return true
		}
	}
	return false
}

func resolveLocation(name string) (*time.Location, error) {
	if name == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidTimezone, name)
	}
	return loc, nil
}
