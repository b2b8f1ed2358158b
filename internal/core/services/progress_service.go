package services

import (
	"time"

	"github.com/comitanigiacomo/kanso-widgets/internal/core/domain"
	"github.com/comitanigiacomo/kanso-widgets/internal/core/engine"
)

type ProgressService struct {
	cfg domain.EngineConfig
	now func() time.Time
}

func NewProgressService(cfg domain.EngineConfig) *ProgressService {
	return &ProgressService{
		cfg: cfg,
		now: time.Now,
	}
}

func (s *ProgressService) WithClock(now func() time.Time) *ProgressService {
	s.now = now
	return s
}

func (s *ProgressService) Snapshot(timezone string) (*domain.ProgressReport, error) {
	loc, err := resolveLocation(timezone)
	if err != nil {
		return nil, err
	}
	now := s.now().In(loc)

	return &domain.ProgressReport{
		GeneratedAt: now.Format(time.RFC3339),
		Year:        now.Year(),
		Day:         s.period(engine.DayProgress(now)),
		Week:        s.period(engine.WeekProgress(now, s.cfg.ProgressWeekStart)),
		YearPeriod:  s.period(engine.YearProgress(now)),
		YearDays:    engine.YearDaysElapsed(now),
	}, nil
}

func (s *ProgressService) period(p float64) domain.PeriodProgress {
	return domain.PeriodProgress{
		Fraction: p,
		Percent:  engine.Percent(p),
		Ring:     engine.RingSegments(p, s.cfg.Ring, s.cfg.ArcResolution),
		Bar:      engine.LinearFill(p, s.cfg.Bar.TotalWidth),
	}
}
