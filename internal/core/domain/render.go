package domain

// RenderTarget is the drawing surface a widget host provides.
type RenderTarget interface {
	DrawCell(rect Rect, tier IntensityTier)
	DrawSegment(from, to Point)
	DrawFilledBar(width float64)
}
