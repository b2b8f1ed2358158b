package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

const (
	DaysPerWeek = 7
	DateLayout  = "2006-01-02"
)

var (
	ErrInvalidInput        = errors.New("invalid activity input")
	ErrInvalidCount        = fmt.Errorf("%w: count cannot be negative", ErrInvalidInput)
	ErrInvalidDate         = fmt.Errorf("%w: date must be YYYY-MM-DD", ErrInvalidInput)
	ErrPaddingInSeries     = fmt.Errorf("%w: series contains an undated record", ErrInvalidInput)
	ErrNonContiguousSeries = fmt.Errorf("%w: series dates must be consecutive days", ErrInvalidInput)
	ErrNoActivity          = errors.New("no activity data available")
	ErrEmptyPhraseList     = errors.New("phrase list is empty")
)

// DayRecord is one calendar day and its activity count.
// A zero Date marks a padding cell.
type DayRecord struct {
	Date  time.Time
	Count int
}

func NewDayRecord(date time.Time, count int) (DayRecord, error) {
	if date.IsZero() {
		return DayRecord{}, ErrInvalidDate
	}
	if count < 0 {
		return DayRecord{}, ErrInvalidCount
	}
	return DayRecord{Date: CivilDate(date), Count: count}, nil
}

func ParseDayRecord(date string, count int) (DayRecord, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(date))
	if err != nil {
		return DayRecord{}, fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}
	return NewDayRecord(t, count)
}

func (d DayRecord) IsPadding() bool {
	return d.Date.IsZero()
}

func (d DayRecord) DateKey() string {
	if d.IsPadding() {
		return ""
	}
	return d.Date.Format(DateLayout)
}

type dayRecordJSON struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

func (d DayRecord) MarshalJSON() ([]byte, error) {
	return json.Marshal(dayRecordJSON{Date: d.DateKey(), Count: d.Count})
}

func (d *DayRecord) UnmarshalJSON(data []byte) error {
	var raw dayRecordJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.Date == "" {
		if raw.Count != 0 {
			return fmt.Errorf("%w: padding cell with count %d", ErrInvalidInput, raw.Count)
		}
		*d = DayRecord{}
		return nil
	}
	rec, err := ParseDayRecord(raw.Date, raw.Count)
	if err != nil {
		return err
	}
	*d = rec
	return nil
}

// CivilDate strips the clock and zone, keeping the wall-clock calendar day.
func CivilDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

type Week [DaysPerWeek]DayRecord

// Calendar is a chronological sequence of weeks.
type Calendar struct {
	Weeks     []Week       `json:"weeks"`
	Total     int          `json:"total"`
	WeekStart time.Weekday `json:"week_start"`
}

// RealDays returns the non-padding records in chronological order.
func (c Calendar) RealDays() []DayRecord {
	days := make([]DayRecord, 0, len(c.Weeks)*DaysPerWeek)
	for _, w := range c.Weeks {
		for _, d := range w {
			if !d.IsPadding() {
				days = append(days, d)
			}
		}
	}
	return days
}

// Tail returns a calendar holding at most the last n weeks.
func (c Calendar) Tail(n int) Calendar {
	if n <= 0 || n >= len(c.Weeks) {
		return c
	}
	out := c
	out.Weeks = c.Weeks[len(c.Weeks)-n:]
	return out
}

// ValidateSeries checks that records are dated, non-negative and consecutive.
func ValidateSeries(records []DayRecord) error {
	for i, r := range records {
		if r.IsPadding() {
			return fmt.Errorf("record %d: %w", i, ErrPaddingInSeries)
		}
		if r.Count < 0 {
			return fmt.Errorf("record %d (%s): %w", i, r.DateKey(), ErrInvalidCount)
		}
		if i == 0 {
			continue
		}
		want := CivilDate(records[i-1].Date).AddDate(0, 0, 1)
		if !CivilDate(r.Date).Equal(want) {
			return fmt.Errorf("record %d: expected %s, got %s: %w",
				i, want.Format(DateLayout), r.DateKey(), ErrNonContiguousSeries)
		}
	}
	return nil
}

// FillSeries expands sparse per-day counts into a contiguous series from..to.
func FillSeries(from, to time.Time, counts map[string]int) []DayRecord {
	start := CivilDate(from)
	end := CivilDate(to)
	if start.After(end) {
		return []DayRecord{}
	}

	series := make([]DayRecord, 0, int(end.Sub(start).Hours()/24)+1)
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		series = append(series, DayRecord{Date: d, Count: counts[d.Format(DateLayout)]})
	}
	return series
}
