package domain

import "fmt"

type IntensityTier int

const (
	TierNone IntensityTier = iota
	TierLow
	TierMedium
	TierHigh
	TierMax
)

var tierNames = [...]string{"none", "low", "medium", "high", "max"}

// Display opacity per tier, applied to the widget foreground color.
var tierOpacity = [...]float64{0.1, 0.3, 0.5, 0.7, 1.0}

func (t IntensityTier) String() string {
	if t < TierNone || t > TierMax {
		return fmt.Sprintf("tier(%d)", int(t))
	}
	return tierNames[t]
}

func (t IntensityTier) Opacity() float64 {
	if t < TierNone || t > TierMax {
		return tierOpacity[TierNone]
	}
	return tierOpacity[t]
}

func (t IntensityTier) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *IntensityTier) UnmarshalText(text []byte) error {
	for i, name := range tierNames {
		if name == string(text) {
			*t = IntensityTier(i)
			return nil
		}
	}
	return fmt.Errorf("unknown intensity tier %q", string(text))
}
