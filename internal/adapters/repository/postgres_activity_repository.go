package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/comitanigiacomo/kanso-widgets/internal/core/domain"
)

var _ domain.ActivitySource = (*PostgresActivitySource)(nil)

const undefinedTable = "42P01"

// PostgresActivitySource reads daily activity counts from the habit_entries
// table written by the sync engine. Days are UTC calendar days and
// soft-deleted entries are ignored.
type PostgresActivitySource struct {
	db *sqlx.DB
}

func NewPostgresActivitySource(db *sqlx.DB) *PostgresActivitySource {
	return &PostgresActivitySource{db: db}
}

type dailyCountRow struct {
	Day   string `db:"day"`
	Count int    `db:"count"`
}

func (r *PostgresActivitySource) DailySeries(ctx context.Context, userID string, from, to time.Time) ([]domain.DayRecord, error) {
	start := domain.CivilDate(from)
	end := domain.CivilDate(to)
	if start.After(end) {
		return []domain.DayRecord{}, nil
	}

	rows := []dailyCountRow{}

	query := `
		SELECT to_char(completion_date AT TIME ZONE 'UTC', 'YYYY-MM-DD') AS day,
		       COUNT(*)::int AS count
		FROM habit_entries
		WHERE user_id = $1
		  AND completion_date >= $2
		  AND completion_date < $3
		  AND deleted_at IS NULL
		GROUP BY 1
		ORDER BY 1`

	err := r.db.SelectContext(ctx, &rows, query, userID, start, end.AddDate(0, 0, 1))
	if err != nil {
		return nil, mapPostgresError(err)
	}

	counts := make(map[string]int, len(rows))
	for _, row := range rows {
		counts[row.Day] = row.Count
	}

	return domain.FillSeries(start, end, counts), nil
}

func mapPostgresError(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && string(pqErr.Code) == undefinedTable {
		return fmt.Errorf("%w: %s", domain.ErrSourceUnavailable, pqErr.Message)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == undefinedTable {
		return fmt.Errorf("%w: %s", domain.ErrSourceUnavailable, pgErr.Message)
	}

	return err
}
