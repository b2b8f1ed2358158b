package engine

import (
	"math"

	"github.com/comitanigiacomo/kanso-widgets/internal/core/domain"
)

// Classifier buckets a count against the max of the cells drawn alongside it.
// The denominator is a quarter of that max (never below 1), so any non-zero
// day lands at least in the low tier.
type Classifier struct {
	thresholds [3]float64
}

func NewClassifier(thresholds [3]float64) Classifier {
	return Classifier{thresholds: thresholds}
}

var defaultClassifier = NewClassifier(domain.DefaultEngineConfig().Thresholds)

func Classify(count, localMax int) domain.IntensityTier {
	return defaultClassifier.Classify(count, localMax)
}

func (c Classifier) Classify(count, localMax int) domain.IntensityTier {
	if count <= 0 {
		return domain.TierNone
	}

	intensity := math.Min(float64(count)/math.Max(float64(localMax)*0.25, 1), 1)

	switch {
	case intensity < c.thresholds[0]:
		return domain.TierLow
	case intensity < c.thresholds[1]:
		return domain.TierMedium
	case intensity < c.thresholds[2]:
		return domain.TierHigh
	default:
		return domain.TierMax
	}
}

// LocalMax is the largest count among the real days of cal.
func LocalMax(cal domain.Calendar) int {
	maxCount := 0
	for _, w := range cal.Weeks {
		for _, d := range w {
			if !d.IsPadding() && d.Count > maxCount {
				maxCount = d.Count
			}
		}
	}
	return maxCount
}
