package engine

import (
	"math"

	"github.com/comitanigiacomo/kanso-widgets/internal/core/domain"
)

// ArcSegments approximates the covered part of a progress ring with straight
// chords. The circle is split into resolution equal steps starting at
// 12 o'clock and running clockwise; floor(resolution*progress) of them are emitted.
func ArcSegments(progress float64, center domain.Point, radius float64, resolution int) []domain.ArcSegment {
	if resolution <= 0 || !(progress > 0) {
		return []domain.ArcSegment{}
	}

	count := resolution
	if progress < 1 {
		count = int(math.Floor(float64(resolution) * progress))
	}

	step := 2 * math.Pi / float64(resolution)
	segments := make([]domain.ArcSegment, 0, count)
	for i := 0; i < count; i++ {
		start := -math.Pi/2 + float64(i)*step
		end := -math.Pi/2 + float64(i+1)*step
		segments = append(segments, domain.ArcSegment{
			StartAngle: start,
			EndAngle:   end,
			Start:      pointOnCircle(center, radius, start),
			End:        pointOnCircle(center, radius, end),
		})
	}
	return segments
}

func RingSegments(progress float64, ring domain.RingSpec, resolution int) []domain.ArcSegment {
	return ArcSegments(progress, ring.Center(), ring.Radius(), resolution)
}

func pointOnCircle(center domain.Point, radius, angle float64) domain.Point {
	return domain.Point{
		X: center.X + radius*math.Cos(angle),
		Y: center.Y + radius*math.Sin(angle),
	}
}

var quarterMarks = [4]float64{0.25, 0.50, 0.75, 1.0}

func LinearFill(progress, totalWidth float64) domain.LinearProgress {
	p := progress
	if math.IsNaN(p) {
		p = 0
	}
	p = clamp01(p)

	lp := domain.LinearProgress{
		FilledWidth: totalWidth * p,
		TotalWidth:  totalWidth,
	}
	for i, mark := range quarterMarks {
		lp.Quarters[i] = p >= mark
	}
	return lp
}

// Percent rounds a fraction to a whole percentage clamped to [0, 100].
func Percent(progress float64) int {
	if math.IsNaN(progress) {
		return 0
	}
	return int(math.Round(clamp01(progress) * 100))
}
