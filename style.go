package memopad

// StyleListener is implemented by the host UI. The cycler notifies it
// when a style index advances; the listener owns the concrete option
// tables and returns the value at the new index, which the cycler
// applies to the surface.
type StyleListener interface {
	// PenColorChanged reports the new pen color index and returns
	// the color at that index.
	PenColorChanged(index int) ARGB

	// PenSizeChanged reports the new pen size index and returns the
	// stroke width at that index.
	PenSizeChanged(index int) float64

	// BackgroundChanged reports the new background index and
	// returns the background color at that index.
	BackgroundChanged(index int) ARGB
}

// StyleCycler rotates through the host's pen color, pen size, and
// background options. It holds only the three indices; it has no
// knowledge of the concrete tables. With a nil listener every advance
// is a safe no-op.
type StyleCycler struct {
	surface  *Surface
	listener StyleListener

	penColorCount   int
	penSizeCount    int
	backgroundCount int

	penColorIndex   int
	penSizeIndex    int
	backgroundIndex int
}

// NewStyleCycler creates a cycler for the given surface. The counts
// are the host's option-table sizes; each index starts at 0, the
// host's default entry.
func NewStyleCycler(s *Surface, l StyleListener, penColorCount, penSizeCount, backgroundCount int) *StyleCycler {
	return &StyleCycler{
		surface:         s,
		listener:        l,
		penColorCount:   penColorCount,
		penSizeCount:    penSizeCount,
		backgroundCount: backgroundCount,
	}
}

// PenColorIndex returns the current pen color index.
func (c *StyleCycler) PenColorIndex() int { return c.penColorIndex }

// PenSizeIndex returns the current pen size index.
func (c *StyleCycler) PenSizeIndex() int { return c.penSizeIndex }

// BackgroundIndex returns the current background index.
func (c *StyleCycler) BackgroundIndex() int { return c.backgroundIndex }

// NextPenColor advances the pen color index by one, wrapping at the
// option count, and applies the color the listener returns.
func (c *StyleCycler) NextPenColor() {
	if c.penColorCount < 1 {
		return
	}
	c.penColorIndex = (c.penColorIndex + 1) % c.penColorCount
	c.ApplyPenColor()
}

// ApplyPenColor re-applies the pen color at the current index.
func (c *StyleCycler) ApplyPenColor() {
	if c.listener == nil {
		return
	}
	argb := c.listener.PenColorChanged(c.penColorIndex)
	c.surface.SetPen(c.surface.Pen().WithColor(argb))
}

// NextPenSize advances the pen size index by one, wrapping at the
// option count, and applies the width the listener returns.
func (c *StyleCycler) NextPenSize() {
	if c.penSizeCount < 1 {
		return
	}
	c.penSizeIndex = (c.penSizeIndex + 1) % c.penSizeCount
	c.ApplyPenSize()
}

// ApplyPenSize re-applies the pen size at the current index.
func (c *StyleCycler) ApplyPenSize() {
	if c.listener == nil {
		return
	}
	width := c.listener.PenSizeChanged(c.penSizeIndex)
	c.surface.SetPen(c.surface.Pen().WithWidth(width))
}

// NextBackground advances the background index by one, wrapping at
// the option count, and applies the color the listener returns.
func (c *StyleCycler) NextBackground() {
	if c.backgroundCount < 1 {
		return
	}
	c.backgroundIndex = (c.backgroundIndex + 1) % c.backgroundCount
	c.ApplyBackground()
}

// ApplyBackground re-applies the background at the current index.
func (c *StyleCycler) ApplyBackground() {
	if c.listener == nil {
		return
	}
	argb := c.listener.BackgroundChanged(c.backgroundIndex)
	c.surface.SetBackground(argb)
}

// ApplyAll re-applies all three current indices. The host calls this
// once at startup so the surface reflects the default table entries.
func (c *StyleCycler) ApplyAll() {
	c.ApplyPenColor()
	c.ApplyPenSize()
	c.ApplyBackground()
}
