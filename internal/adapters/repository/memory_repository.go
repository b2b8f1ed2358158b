package repository

import (
	"context"
	"sync"
	"time"

	"github.com/comitanigiacomo/kanso-widgets/internal/core/domain"
)

var _ domain.ActivitySource = (*InMemoryActivitySource)(nil)

type InMemoryActivitySource struct {
	store map[string]map[string]int

	mu sync.RWMutex
}

func NewInMemoryActivitySource() *InMemoryActivitySource {
	return &InMemoryActivitySource{
		store: make(map[string]map[string]int),
	}
}

// Record adds count events to the user's day.
func (r *InMemoryActivitySource) Record(userID string, date time.Time, count int) error {
	if count < 0 {
		return domain.ErrInvalidCount
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	days, ok := r.store[userID]
	if !ok {
		days = make(map[string]int)
		r.store[userID] = days
	}
	days[domain.CivilDate(date).Format(domain.DateLayout)] += count
	return nil
}

// Load replaces the user's history with series.
func (r *InMemoryActivitySource) Load(userID string, series []domain.DayRecord) error {
	if err := domain.ValidateSeries(series); err != nil {
		return err
	}

	days := make(map[string]int, len(series))
	for _, d := range series {
		days[d.DateKey()] = d.Count
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.store[userID] = days
	return nil
}

func (r *InMemoryActivitySource) DailySeries(ctx context.Context, userID string, from, to time.Time) ([]domain.DayRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return domain.FillSeries(from, to, r.store[userID]), nil
}
