package services

import (
	"time"

	"github.com/comitanigiacomo/kanso-widgets/internal/core/domain"
	"github.com/comitanigiacomo/kanso-widgets/internal/core/engine"
)

type QuoteService struct {
	phrases []string
	now     func() time.Time
}

// NewQuoteService falls back to the built-in phrases when none are given.
func NewQuoteService(phrases []string) *QuoteService {
	if len(phrases) == 0 {
		phrases = engine.DefaultPhrases
	}
	return &QuoteService{
		phrases: phrases,
		now:     time.Now,
	}
}

func (s *QuoteService) WithClock(now func() time.Time) *QuoteService {
	s.now = now
	return s
}

func (s *QuoteService) Today(timezone string) (*domain.Quote, error) {
	loc, err := resolveLocation(timezone)
	if err != nil {
		return nil, err
	}
	now := s.now().In(loc)
	index := engine.DayOfYearIndex(now)

	text, err := engine.SelectQuote(index, s.phrases)
	if err != nil {
		return nil, err
	}

	return &domain.Quote{
		Text:      text,
		Date:      now.Format(domain.DateLayout),
		DayOfYear: index,
	}, nil
}
