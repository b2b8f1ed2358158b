// Package contributions normalizes third-party contribution calendars
// into contiguous daily activity series.
package contributions

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/comitanigiacomo/kanso-widgets/internal/core/domain"
)

var (
	ErrUnknownPayloadShape = fmt.Errorf("%w: unrecognized contribution payload", domain.ErrInvalidInput)
	ErrDuplicateDate       = fmt.Errorf("%w: duplicate date in payload", domain.ErrInvalidInput)
)

type Shape int

const (
	ShapeUnknown Shape = iota
	// ShapeAggregator: {"total": {"lastYear": N}, "contributions": [{date, count, level}]}
	ShapeAggregator
	// ShapeGraphQL: {"data": {"user": {"contributionsCollection": {"contributionCalendar": ...}}}}
	ShapeGraphQL
	// ShapeSeries: a bare [{date, count}] array.
	ShapeSeries
)

func (s Shape) String() string {
	switch s {
	case ShapeAggregator:
		return "aggregator"
	case ShapeGraphQL:
		return "graphql"
	case ShapeSeries:
		return "series"
	}
	return "unknown"
}

type AggregatorDay struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
	Level int    `json:"level"`
}

type AggregatorPayload struct {
	Total         map[string]int  `json:"total"`
	Contributions []AggregatorDay `json:"contributions"`
}

type GraphQLDay struct {
	ContributionCount int    `json:"contributionCount"`
	Date              string `json:"date"`
}

type GraphQLWeek struct {
	ContributionDays []GraphQLDay `json:"contributionDays"`
}

type GraphQLCalendar struct {
	TotalContributions int           `json:"totalContributions"`
	Weeks              []GraphQLWeek `json:"weeks"`
}

type GraphQLPayload struct {
	Data struct {
		User *struct {
			ContributionsCollection struct {
				ContributionCalendar GraphQLCalendar `json:"contributionCalendar"`
			} `json:"contributionsCollection"`
		} `json:"user"`
	} `json:"data"`
}

// Payload holds exactly one decoded shape, selected by Shape.
type Payload struct {
	Shape      Shape
	Aggregator *AggregatorPayload
	GraphQL    *GraphQLPayload
	Series     []domain.DayRecord
}

type shapeKeys struct {
	Data          json.RawMessage `json:"data"`
	Contributions json.RawMessage `json:"contributions"`
}

func Decode(data []byte) (Payload, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return Payload{}, ErrUnknownPayloadShape
	}

	if trimmed[0] == '[' {
		var series []domain.DayRecord
		if err := json.Unmarshal(trimmed, &series); err != nil {
			return Payload{}, fmt.Errorf("decode series: %w", wrapSyntax(err))
		}
		return Payload{Shape: ShapeSeries, Series: series}, nil
	}

	var p shapeKeys
	if err := json.Unmarshal(trimmed, &p); err != nil {
		return Payload{}, fmt.Errorf("decode payload: %w", wrapSyntax(err))
	}

	switch {
	case len(p.Contributions) > 0:
		var agg AggregatorPayload
		if err := json.Unmarshal(trimmed, &agg); err != nil {
			return Payload{}, fmt.Errorf("decode aggregator payload: %w", wrapSyntax(err))
		}
		return Payload{Shape: ShapeAggregator, Aggregator: &agg}, nil
	case len(p.Data) > 0:
		var gql GraphQLPayload
		if err := json.Unmarshal(trimmed, &gql); err != nil {
			return Payload{}, fmt.Errorf("decode graphql payload: %w", wrapSyntax(err))
		}
		if gql.Data.User == nil {
			return Payload{}, fmt.Errorf("%w: graphql payload has no user", ErrUnknownPayloadShape)
		}
		return Payload{Shape: ShapeGraphQL, GraphQL: &gql}, nil
	}

	return Payload{}, ErrUnknownPayloadShape
}

// Normalize returns the payload as a contiguous oldest-first series and
// the total reported by the source, falling back to the series sum.
func (p Payload) Normalize() ([]domain.DayRecord, int, error) {
	var (
		series []domain.DayRecord
		total  int
		known  bool
		err    error
	)

	switch p.Shape {
	case ShapeAggregator:
		if p.Aggregator == nil {
			return nil, 0, ErrUnknownPayloadShape
		}
		series, err = normalizeAggregator(p.Aggregator)
		total, known = p.Aggregator.Total["lastYear"]
	case ShapeGraphQL:
		if p.GraphQL == nil || p.GraphQL.Data.User == nil {
			return nil, 0, ErrUnknownPayloadShape
		}
		cal := p.GraphQL.Data.User.ContributionsCollection.ContributionCalendar
		series, err = normalizeGraphQL(cal)
		total, known = cal.TotalContributions, true
	case ShapeSeries:
		series, err = sortSeries(append([]domain.DayRecord(nil), p.Series...))
	default:
		return nil, 0, ErrUnknownPayloadShape
	}
	if err != nil {
		return nil, 0, err
	}

	if err := domain.ValidateSeries(series); err != nil {
		return nil, 0, err
	}

	if !known {
		total = 0
		for _, d := range series {
			total += d.Count
		}
	}
	return series, total, nil
}

func normalizeAggregator(p *AggregatorPayload) ([]domain.DayRecord, error) {
	series := make([]domain.DayRecord, 0, len(p.Contributions))
	for _, c := range p.Contributions {
		rec, err := domain.ParseDayRecord(c.Date, c.Count)
		if err != nil {
			return nil, err
		}
		series = append(series, rec)
	}
	return sortSeries(series)
}

func normalizeGraphQL(cal GraphQLCalendar) ([]domain.DayRecord, error) {
	series := make([]domain.DayRecord, 0, len(cal.Weeks)*domain.DaysPerWeek)
	for _, w := range cal.Weeks {
		for _, d := range w.ContributionDays {
			rec, err := domain.ParseDayRecord(d.Date, d.ContributionCount)
			if err != nil {
				return nil, err
			}
			series = append(series, rec)
		}
	}
	return sortSeries(series)
}

func sortSeries(series []domain.DayRecord) ([]domain.DayRecord, error) {
	sort.SliceStable(series, func(i, j int) bool {
		return series[i].Date.Before(series[j].Date)
	})
	for i := 1; i < len(series); i++ {
		if series[i].Date.Equal(series[i-1].Date) {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateDate, series[i].DateKey())
		}
	}
	return series, nil
}

func wrapSyntax(err error) error {
	if errors.Is(err, domain.ErrInvalidInput) {
		return err
	}
	return fmt.Errorf("%w: %w", domain.ErrInvalidInput, err)
}
