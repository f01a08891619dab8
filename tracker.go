package memopad

import "math"

// Tolerance is the jitter threshold in pixels. A move sample closer
// than this to the previous sample on both axes is discarded.
const Tolerance = 4.0

// StrokeTracker consumes raw pointer samples and incrementally builds
// the smoothed curve of the stroke in progress. Samples within
// Tolerance of the previous one are dropped, and accepted samples are
// joined with quadratic segments through the midpoint rule: the
// previous sample becomes the control point and the segment ends
// halfway toward the new sample. The curve therefore lags one sample
// behind raw input, trading latency for smoothness.
//
// A tracker holds at most one stroke at a time. It is not safe for
// concurrent use; the surface drives it from a single event loop.
type StrokeTracker struct {
	path *Path

	// prevX/prevY are the last raw sample, NaN when no stroke is
	// active. Both are always set or unset together.
	prevX, prevY float64
}

// NewStrokeTracker creates a tracker with no active stroke.
func NewStrokeTracker() *StrokeTracker {
	t := &StrokeTracker{path: NewPath()}
	t.reset()
	return t
}

// Active reports whether a stroke is in progress.
func (t *StrokeTracker) Active() bool {
	return !math.IsNaN(t.prevX)
}

// Path returns the in-progress curve geometry. The surface strokes it
// on every frame; it is empty when no stroke is active.
func (t *StrokeTracker) Path() *Path {
	return t.path
}

// Start discards any previous in-progress geometry and begins a new
// stroke at p. A one-pixel segment is appended immediately so that a
// tap without any drag still leaves a visible dot.
func (t *StrokeTracker) Start(p Point) {
	t.path.Clear()
	t.path.MoveTo(p.X, p.Y)
	t.path.LineTo(p.X+1, p.Y)
	t.prevX = p.X
	t.prevY = p.Y
}

// Extend feeds a move sample into the stroke. Samples within
// Tolerance of the previous one on both axes are dropped. Extend is a
// no-op when no stroke is active.
func (t *StrokeTracker) Extend(p Point) {
	if !t.Active() {
		return
	}
	if math.Abs(p.X-t.prevX) < Tolerance && math.Abs(p.Y-t.prevY) < Tolerance {
		return
	}
	t.path.QuadraticTo(t.prevX, t.prevY, (t.prevX+p.X)/2, (t.prevY+p.Y)/2)
	t.prevX = p.X
	t.prevY = p.Y
}

// Finish completes the stroke with a final straight segment to p and
// returns the finished curve. The tracker is reset, so the returned
// path is no longer aliased by it. Returns nil when no stroke is
// active.
func (t *StrokeTracker) Finish(p Point) *Path {
	if !t.Active() {
		return nil
	}
	done := t.path
	done.LineTo(p.X, p.Y)
	t.path = NewPath()
	t.reset()
	return done
}

// Clear resets the tracker without returning geometry.
func (t *StrokeTracker) Clear() {
	t.path.Clear()
	t.reset()
}

func (t *StrokeTracker) reset() {
	t.prevX = math.NaN()
	t.prevY = math.NaN()
}
