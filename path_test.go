package memopad

import (
	"math"
	"testing"
)

func TestPath_Elements(t *testing.T) {
	p := NewPath()
	p.MoveTo(1, 2)
	p.LineTo(3, 4)
	p.QuadraticTo(5, 6, 7, 8)

	elems := p.Elements()
	if len(elems) != 3 {
		t.Fatalf("len(Elements()) = %d, want 3", len(elems))
	}
	if _, ok := elems[0].(MoveTo); !ok {
		t.Errorf("elements[0] = %T, want MoveTo", elems[0])
	}
	if _, ok := elems[1].(LineTo); !ok {
		t.Errorf("elements[1] = %T, want LineTo", elems[1])
	}
	q, ok := elems[2].(QuadTo)
	if !ok {
		t.Fatalf("elements[2] = %T, want QuadTo", elems[2])
	}
	if q.Control != Pt(5, 6) || q.Point != Pt(7, 8) {
		t.Errorf("QuadTo = %+v, want control (5,6) end (7,8)", q)
	}
	if p.CurrentPoint() != Pt(7, 8) {
		t.Errorf("CurrentPoint() = %v, want (7,8)", p.CurrentPoint())
	}
}

func TestPath_Clear(t *testing.T) {
	p := NewPath()
	p.MoveTo(1, 2)
	p.LineTo(3, 4)

	p.Clear()

	if !p.IsEmpty() {
		t.Error("IsEmpty() = false after Clear()")
	}
}

func TestPath_FlattenLines(t *testing.T) {
	p := NewPath()
	p.MoveTo(0, 0)
	p.LineTo(10, 0)
	p.LineTo(10, 10)

	got := p.Flatten()
	want := []Point{Pt(0, 0), Pt(10, 0), Pt(10, 10)}
	if len(got) != len(want) {
		t.Fatalf("Flatten() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Flatten()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestPath_FlattenQuadratic(t *testing.T) {
	p := NewPath()
	p.MoveTo(0, 0)
	p.QuadraticTo(50, 100, 100, 0)

	pts := p.Flatten()
	if len(pts) < 4 {
		t.Fatalf("Flatten() produced %d points, want a subdivided curve", len(pts))
	}

	// Endpoints are exact.
	if pts[0] != Pt(0, 0) {
		t.Errorf("first point = %v, want (0,0)", pts[0])
	}
	if last := pts[len(pts)-1]; last != Pt(100, 0) {
		t.Errorf("last point = %v, want (100,0)", last)
	}

	// Every flattened point lies on the true curve within tolerance.
	for _, pt := range pts[1:] {
		if !onQuad(pt, Pt(0, 0), Pt(50, 100), Pt(100, 0), flattenTolerance) {
			t.Errorf("point %v is off the true curve", pt)
		}
	}
}

// onQuad reports whether pt is within tol of the quadratic Bezier
// defined by start, control, end, sampled densely.
func onQuad(pt, start, control, end Point, tol float64) bool {
	const samples = 1000
	best := math.Inf(1)
	for i := 0; i <= samples; i++ {
		t := float64(i) / samples
		u := 1 - t
		x := u*u*start.X + 2*u*t*control.X + t*t*end.X
		y := u*u*start.Y + 2*u*t*control.Y + t*t*end.Y
		if d := pt.Distance(Pt(x, y)); d < best {
			best = d
		}
	}
	return best <= tol+1e-6
}

func TestPoint_Helpers(t *testing.T) {
	if got := Pt(2, 3).Add(Pt(4, 5)); got != Pt(6, 8) {
		t.Errorf("Add = %v, want (6,8)", got)
	}
	if got := Pt(2, 3).Midpoint(Pt(4, 7)); got != Pt(3, 5) {
		t.Errorf("Midpoint = %v, want (3,5)", got)
	}
	if got := Pt(3, 4).Length(); got != 5 {
		t.Errorf("Length = %v, want 5", got)
	}
	if got := Pt(0, 10).Normalize(); got != Pt(0, 1) {
		t.Errorf("Normalize = %v, want (0,1)", got)
	}
	if got := Pt(1, 0).Perp(); got != Pt(0, 1) {
		t.Errorf("Perp = %v, want (0,1)", got)
	}
	if got := (Point{}).Normalize(); got != (Point{}) {
		t.Errorf("Normalize of zero vector = %v, want zero", got)
	}
}
