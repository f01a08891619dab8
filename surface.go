package memopad

import (
	"image"
	"image/draw"
)

// Surface is the compositing engine behind the drawing view. It owns
// the committed stroke layer, the background color, the current pen,
// and the tracker for the stroke in progress. On every frame it
// composites background, committed layer, and in-progress curve, in
// that order; on stroke completion the curve is rasterized permanently
// into the committed layer.
//
// A surface is single-threaded by design: one event loop owns pointer
// handling, style mutation, and rendering. Export works on a snapshot
// and may run on another goroutine.
type Surface struct {
	width      int
	height     int
	committed  *Layer
	background ARGB
	pen        Pen
	tracker    *StrokeTracker
}

// NewSurface creates a surface with the given dimensions, a white
// background, and the default pen.
func NewSurface(width, height int) *Surface {
	s := &Surface{
		background: White,
		pen:        DefaultPen(),
		tracker:    NewStrokeTracker(),
	}
	s.Resize(width, height)
	return s
}

// Resize reallocates the committed layer at the new dimensions, fully
// transparent. Existing content is not preserved; this mirrors the
// original app, where a size change drops prior strokes.
func (s *Surface) Resize(width, height int) {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	s.width = width
	s.height = height
	s.committed = NewLayer(width, height)
	Logger().Debug("surface resized", "width", width, "height", height)
}

// Size returns the surface dimensions in pixels.
func (s *Surface) Size() (width, height int) {
	return s.width, s.height
}

// Tracker returns the stroke tracker owned by the surface.
func (s *Surface) Tracker() *StrokeTracker {
	return s.tracker
}

// Pen returns the current pen.
func (s *Surface) Pen() Pen {
	return s.pen
}

// SetPen replaces the current pen. It takes effect on the next render
// or commit; already-committed pixels are not restyled.
func (s *Surface) SetPen(p Pen) {
	s.pen = p
}

// Background returns the current background color.
func (s *Surface) Background() ARGB {
	return s.background
}

// SetBackground replaces the background color. It takes effect on the
// next render; the committed layer is unaffected.
func (s *Surface) SetBackground(c ARGB) {
	s.background = c
}

// Render produces the current frame: background fill, committed layer
// composited over it, then the in-progress curve stroked with the
// current pen. Render does not mutate surface state.
func (s *Surface) Render() *Layer {
	frame := NewLayer(s.width, s.height)
	frame.Fill(s.background)
	frame.DrawOver(s.committed)
	if !s.tracker.Path().IsEmpty() {
		strokeLayer(frame, s.tracker.Path(), s.pen)
	}
	return frame
}

// CommitStroke rasterizes the curve permanently into the committed
// layer, using the pen active at call time.
func (s *Surface) CommitStroke(p *Path) {
	if p == nil || p.IsEmpty() {
		return
	}
	strokeLayer(s.committed, p, s.pen)
}

// Clear erases the committed layer to fully transparent and discards
// any in-progress stroke. Pen and background are untouched.
func (s *Surface) Clear() {
	s.committed.Clear()
	s.tracker.Clear()
}

// PointerDown begins a new stroke at the given coordinates.
func (s *Surface) PointerDown(x, y float64) {
	s.tracker.Start(Pt(x, y))
}

// PointerMove feeds a move event into the stroke. Buffered historical
// samples delivered with the event are replayed in order before the
// live sample.
func (s *Surface) PointerMove(x, y float64, history []Point) {
	for _, h := range history {
		s.tracker.Extend(h)
	}
	s.tracker.Extend(Pt(x, y))
}

// PointerUp completes the stroke. Historical samples are replayed
// first, then the live sample finishes the curve, which is committed
// with the current pen.
func (s *Surface) PointerUp(x, y float64, history []Point) {
	for _, h := range history {
		s.tracker.Extend(h)
	}
	s.CommitStroke(s.tracker.Finish(Pt(x, y)))
}

// Snapshot flattens the background and the committed layer into a new
// image at the committed layer's dimensions. The in-progress stroke is
// not included, and live state is not mutated; the returned image
// shares no pixels with the surface.
func (s *Surface) Snapshot() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, s.width, s.height))
	draw.Draw(img, img.Rect, image.NewUniform(s.background.NRGBA()), image.Point{}, draw.Src)
	draw.Draw(img, img.Rect, s.committed.Image(), image.Point{}, draw.Over)
	return img
}
