package engine

import "github.com/comitanigiacomo/kanso-widgets/internal/core/domain"

// DrawHeatmap emits one cell per day, weeks as columns and weekdays as rows.
func DrawHeatmap(target domain.RenderTarget, weeks [][]domain.HeatmapCell, cellSize, gap float64) {
	pitch := cellSize + gap
	for wi, week := range weeks {
		for di, cell := range week {
			rect := domain.Rect{
				X:      float64(wi) * pitch,
				Y:      float64(di) * pitch,
				Width:  cellSize,
				Height: cellSize,
			}
			target.DrawCell(rect, cell.Tier)
		}
	}
}

func DrawRing(target domain.RenderTarget, segments []domain.ArcSegment) {
	for _, s := range segments {
		target.DrawSegment(s.Start, s.End)
	}
}

func DrawBar(target domain.RenderTarget, bar domain.LinearProgress) {
	target.DrawFilledBar(bar.FilledWidth)
}
