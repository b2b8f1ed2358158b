package domain

import (
	"context"
	"errors"
	"time"
)

var (
	ErrSourceUnavailable = errors.New("activity source unavailable")
)

type ActivitySource interface {
	// DailySeries returns one record per calendar day in [from, to], oldest first.
	// Days without activity are present with a zero count.
	DailySeries(ctx context.Context, userID string, from, to time.Time) ([]DayRecord, error)
}
