package memopad

import (
	"reflect"
	"testing"
)

// recordingListener captures notification order and serves fixed
// option tables.
type recordingListener struct {
	penColorCalls   []int
	penSizeCalls    []int
	backgroundCalls []int

	penColors   []ARGB
	penSizes    []float64
	backgrounds []ARGB
}

func (l *recordingListener) PenColorChanged(index int) ARGB {
	l.penColorCalls = append(l.penColorCalls, index)
	return l.penColors[index]
}

func (l *recordingListener) PenSizeChanged(index int) float64 {
	l.penSizeCalls = append(l.penSizeCalls, index)
	return l.penSizes[index]
}

func (l *recordingListener) BackgroundChanged(index int) ARGB {
	l.backgroundCalls = append(l.backgroundCalls, index)
	return l.backgrounds[index]
}

func newRecordingListener() *recordingListener {
	return &recordingListener{
		penColors:   []ARGB{Black, Red, Blue},
		penSizes:    []float64{12, 6, 24},
		backgrounds: []ARGB{White, Yellow, Green},
	}
}

func TestStyleCycler_Wraparound(t *testing.T) {
	s := NewSurface(10, 10)
	l := newRecordingListener()
	c := NewStyleCycler(s, l, 3, 3, 3)

	c.NextPenColor()
	c.NextPenColor()
	c.NextPenColor()

	want := []int{1, 2, 0}
	if !reflect.DeepEqual(l.penColorCalls, want) {
		t.Errorf("notified indices = %v, want %v", l.penColorCalls, want)
	}
	if c.PenColorIndex() != 0 {
		t.Errorf("PenColorIndex() = %d, want 0 after full cycle", c.PenColorIndex())
	}
}

func TestStyleCycler_AppliesListenerValues(t *testing.T) {
	s := NewSurface(10, 10)
	l := newRecordingListener()
	c := NewStyleCycler(s, l, 3, 3, 3)

	c.NextPenColor()
	if got := s.Pen().Color; got != Red {
		t.Errorf("pen color = %08X, want listener value red", uint32(got))
	}

	c.NextPenSize()
	if got := s.Pen().Width; got != 6 {
		t.Errorf("pen width = %v, want listener value 6", got)
	}

	c.NextBackground()
	if got := s.Background(); got != Yellow {
		t.Errorf("background = %08X, want listener value yellow", uint32(got))
	}
}

func TestStyleCycler_IndependentIndices(t *testing.T) {
	s := NewSurface(10, 10)
	l := newRecordingListener()
	c := NewStyleCycler(s, l, 3, 3, 3)

	c.NextPenColor()
	c.NextPenColor()
	c.NextBackground()

	if c.PenColorIndex() != 2 || c.PenSizeIndex() != 0 || c.BackgroundIndex() != 1 {
		t.Errorf("indices = (%d,%d,%d), want (2,0,1)",
			c.PenColorIndex(), c.PenSizeIndex(), c.BackgroundIndex())
	}
}

func TestStyleCycler_NilListener(t *testing.T) {
	s := NewSurface(10, 10)
	before := s.Pen()
	c := NewStyleCycler(s, nil, 3, 3, 3)

	// The index still rotates; applying it is a safe no-op.
	c.NextPenColor()
	c.ApplyAll()

	if c.PenColorIndex() != 1 {
		t.Errorf("PenColorIndex() = %d, want 1", c.PenColorIndex())
	}
	if s.Pen() != before {
		t.Errorf("pen changed with nil listener: %+v", s.Pen())
	}
}

func TestStyleCycler_ZeroCount(t *testing.T) {
	s := NewSurface(10, 10)
	l := newRecordingListener()
	c := NewStyleCycler(s, l, 0, 0, 0)

	c.NextPenColor()
	c.NextPenSize()
	c.NextBackground()

	if len(l.penColorCalls)+len(l.penSizeCalls)+len(l.backgroundCalls) != 0 {
		t.Error("listener notified despite zero option counts")
	}
}

func TestStyleCycler_ApplyAll(t *testing.T) {
	s := NewSurface(10, 10)
	l := newRecordingListener()
	c := NewStyleCycler(s, l, 3, 3, 3)

	c.ApplyAll()

	if got := s.Pen().Color; got != Black {
		t.Errorf("pen color = %08X, want table default black", uint32(got))
	}
	if got := s.Pen().Width; got != 12 {
		t.Errorf("pen width = %v, want table default 12", got)
	}
	if got := s.Background(); got != White {
		t.Errorf("background = %08X, want table default white", uint32(got))
	}
}
