// Package render draws widget geometry onto a terminal using lipgloss.
package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/comitanigiacomo/kanso-widgets/internal/core/domain"
)

var _ domain.RenderTarget = (*Terminal)(nil)

const (
	cellGlyph = "■"
	ringGlyph = "●"
	barFull   = "█"
	barEmpty  = "░"

	ringRows = 11
	ringCols = 2*ringRows - 1
	barCols  = 40
)

var accent = lipgloss.Color("#FF1493")

type TerminalOptions struct {
	// CellPitch is cell size plus gap, used to map rects back to grid slots.
	CellPitch float64
	Ring      domain.RingSpec
	BarWidth  float64
}

// Terminal accumulates draw calls and renders them as text on String.
type Terminal struct {
	opts TerminalOptions

	cells  map[[2]int]domain.IntensityTier
	cols   int
	rows   int
	ring   map[[2]int]bool
	bar    float64
	hasBar bool
}

func NewTerminal(opts TerminalOptions) *Terminal {
	if opts.CellPitch <= 0 {
		opts.CellPitch = domain.DefaultCellSize + domain.DefaultCellGap
	}
	return &Terminal{
		opts:  opts,
		cells: make(map[[2]int]domain.IntensityTier),
		ring:  make(map[[2]int]bool),
	}
}

func (t *Terminal) DrawCell(rect domain.Rect, tier domain.IntensityTier) {
	col := int(math.Round(rect.X / t.opts.CellPitch))
	row := int(math.Round(rect.Y / t.opts.CellPitch))
	t.cells[[2]int{col, row}] = tier
	t.cols = max(t.cols, col+1)
	t.rows = max(t.rows, row+1)
}

func (t *Terminal) DrawSegment(from, to domain.Point) {
	if t.opts.Ring.Radius() <= 0 {
		return
	}
	t.ring[t.ringSlot(from)] = true
	t.ring[t.ringSlot(to)] = true
}

func (t *Terminal) DrawFilledBar(width float64) {
	t.bar = width
	t.hasBar = true
}

func (t *Terminal) ringSlot(p domain.Point) [2]int {
	c := t.opts.Ring.Center()
	r := t.opts.Ring.Radius()
	scale := func(v, origin float64, n int) int {
		s := int(math.Round((v - origin + r) / (2 * r) * float64(n-1)))
		return min(max(s, 0), n-1)
	}
	return [2]int{scale(p.X, c.X, ringCols), scale(p.Y, c.Y, ringRows)}
}

// TierStyle shades a tier as a gray level proportional to its opacity.
func TierStyle(tier domain.IntensityTier) lipgloss.Style {
	level := int(math.Round(tier.Opacity() * 255))
	return lipgloss.NewStyle().Foreground(lipgloss.Color(fmt.Sprintf("#%02X%02X%02X", level, level, level)))
}

func (t *Terminal) Heatmap() string {
	if len(t.cells) == 0 {
		return ""
	}

	var styles [domain.TierMax + 1]lipgloss.Style
	for tier := domain.TierNone; tier <= domain.TierMax; tier++ {
		styles[tier] = TierStyle(tier)
	}

	lines := make([]string, t.rows)
	for row := 0; row < t.rows; row++ {
		var b strings.Builder
		for col := 0; col < t.cols; col++ {
			if col > 0 {
				b.WriteString(" ")
			}
			tier, ok := t.cells[[2]int{col, row}]
			if !ok {
				b.WriteString(" ")
				continue
			}
			b.WriteString(styles[tier].Render(cellGlyph))
		}
		lines[row] = b.String()
	}
	return strings.Join(lines, "\n")
}

func (t *Terminal) Ring() string {
	if len(t.ring) == 0 {
		return ""
	}

	dot := lipgloss.NewStyle().Foreground(accent).Render(ringGlyph)
	lines := make([]string, ringRows)
	for row := 0; row < ringRows; row++ {
		var b strings.Builder
		for col := 0; col < ringCols; col++ {
			if t.ring[[2]int{col, row}] {
				b.WriteString(dot)
			} else {
				b.WriteString(" ")
			}
		}
		lines[row] = strings.TrimRight(b.String(), " ")
	}
	return strings.Join(lines, "\n")
}

func (t *Terminal) Bar() string {
	if !t.hasBar || t.opts.BarWidth <= 0 {
		return ""
	}

	filled := int(math.Round(t.bar / t.opts.BarWidth * barCols))
	filled = min(max(filled, 0), barCols)

	return lipgloss.NewStyle().Foreground(accent).Render(strings.Repeat(barFull, filled)) +
		lipgloss.NewStyle().Foreground(lipgloss.Color("#444")).Render(strings.Repeat(barEmpty, barCols-filled))
}

func (t *Terminal) String() string {
	var parts []string
	for _, s := range []string{t.Heatmap(), t.Ring(), t.Bar()} {
		if s != "" {
			parts = append(parts, s)
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
