package domain

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// ArcSegment is one straight chord of a polygonal progress ring.
// Angles are in radians, screen coordinates (y grows downward).
type ArcSegment struct {
	StartAngle float64 `json:"start_angle"`
	EndAngle   float64 `json:"end_angle"`
	Start      Point   `json:"start"`
	End        Point   `json:"end"`
}

type LinearProgress struct {
	FilledWidth float64 `json:"filled_width"`
	TotalWidth  float64 `json:"total_width"`
	Quarters    [4]bool `json:"quarters"`
}

// RingSpec describes the square box a progress ring is drawn in.
type RingSpec struct {
	Size      float64 `json:"size"`
	LineWidth float64 `json:"line_width"`
}

func (r RingSpec) Center() Point {
	return Point{X: r.Size / 2, Y: r.Size / 2}
}

func (r RingSpec) Radius() float64 {
	return (r.Size - r.LineWidth) / 2
}

type BarSpec struct {
	TotalWidth float64 `json:"total_width"`
	Height     float64 `json:"height"`
}

type PeriodProgress struct {
	Fraction float64        `json:"fraction"`
	Percent  int            `json:"percent"`
	Ring     []ArcSegment   `json:"ring"`
	Bar      LinearProgress `json:"bar"`
}

type YearDays struct {
	Passed    int `json:"passed"`
	Remaining int `json:"remaining"`
	Total     int `json:"total"`
}

type ProgressReport struct {
	GeneratedAt string         `json:"generated_at"`
	Year        int            `json:"year"`
	Day         PeriodProgress `json:"day"`
	Week        PeriodProgress `json:"week"`
	YearPeriod  PeriodProgress `json:"year_progress"`
	YearDays    YearDays       `json:"year_days"`
}
