package memopad

// Pen describes how strokes are rasterized. Strokes are always drawn
// with round caps and round joins; Width is the stroke width in
// pixels and SoftEdge is the blur radius applied to the stroke edge
// (0 disables it).
type Pen struct {
	Color     ARGB
	Width     float64
	Antialias bool
	SoftEdge  float64
}

// DefaultPen returns the pen the surface starts with: opaque black,
// 12px wide, anti-aliased, with a 1px soft edge.
func DefaultPen() Pen {
	return Pen{
		Color:     Black,
		Width:     12.0,
		Antialias: true,
		SoftEdge:  1.0,
	}
}

// WithColor returns a copy of the Pen with the given color.
func (p Pen) WithColor(c ARGB) Pen {
	p.Color = c
	return p
}

// WithWidth returns a copy of the Pen with the given stroke width.
func (p Pen) WithWidth(w float64) Pen {
	p.Width = w
	return p
}

// WithSoftEdge returns a copy of the Pen with the given edge blur
// radius. Pass 0 for a hard edge.
func (p Pen) WithSoftEdge(r float64) Pen {
	p.SoftEdge = r
	return p
}

// WithAntialias returns a copy of the Pen with anti-aliasing enabled
// or disabled.
func (p Pen) WithAntialias(on bool) Pen {
	p.Antialias = on
	return p
}
