package memopad

// PathElement represents a single element in a path.
type PathElement interface {
	isPathElement()
}

// MoveTo moves to a point without drawing.
type MoveTo struct {
	Point Point
}

func (MoveTo) isPathElement() {}

// LineTo draws a line to a point.
type LineTo struct {
	Point Point
}

func (LineTo) isPathElement() {}

// QuadTo draws a quadratic Bezier curve.
type QuadTo struct {
	Control Point
	Point   Point
}

func (QuadTo) isPathElement() {}

// flattenTolerance is the maximum distance from the true curve when
// subdividing quadratics into line segments.
const flattenTolerance = 0.1

// Path is a vector path built from move, line, and quadratic curve
// elements. Strokes captured by the tracker are represented as paths.
type Path struct {
	elements []PathElement
	current  Point
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{
		elements: make([]PathElement, 0, 16),
	}
}

// MoveTo moves to a point without drawing.
func (p *Path) MoveTo(x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, MoveTo{Point: pt})
	p.current = pt
}

// LineTo draws a line to a point.
func (p *Path) LineTo(x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, LineTo{Point: pt})
	p.current = pt
}

// QuadraticTo draws a quadratic Bezier curve to (x, y) with control
// point (cx, cy).
func (p *Path) QuadraticTo(cx, cy, x, y float64) {
	p.elements = append(p.elements, QuadTo{Control: Pt(cx, cy), Point: Pt(x, y)})
	p.current = Pt(x, y)
}

// Clear removes all elements from the path.
func (p *Path) Clear() {
	p.elements = p.elements[:0]
	p.current = Point{}
}

// Elements returns the path elements.
func (p *Path) Elements() []PathElement {
	return p.elements
}

// IsEmpty reports whether the path contains no elements.
func (p *Path) IsEmpty() bool {
	return len(p.elements) == 0
}

// CurrentPoint returns the current point.
func (p *Path) CurrentPoint() Point {
	return p.current
}

// Flatten converts the path into a polyline, subdividing quadratic
// curves until they are within flattenTolerance of the true curve.
func (p *Path) Flatten() []Point {
	var points []Point
	var current Point

	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			current = e.Point
			points = append(points, current)
		case LineTo:
			current = e.Point
			points = append(points, current)
		case QuadTo:
			points = append(points, flattenQuadratic(current, e.Control, e.Point, flattenTolerance)...)
			current = e.Point
		}
	}

	return points
}

// flattenQuadratic recursively subdivides a quadratic Bezier curve
// until the control point is within tolerance of the chord. The start
// point is not included in the result.
func flattenQuadratic(start, control, end Point, tolerance float64) []Point {
	mid := start.Midpoint(end)
	if control.Distance(mid) <= tolerance {
		return []Point{end}
	}

	// De Casteljau split at t = 0.5.
	c1 := start.Midpoint(control)
	c2 := control.Midpoint(end)
	m := c1.Midpoint(c2)

	left := flattenQuadratic(start, c1, m, tolerance)
	right := flattenQuadratic(m, c2, end, tolerance)
	return append(left, right...)
}
