package main

import (
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	memopad "github.com/abhimir/MemoPad"
)

// padWidget is the drawing area. It feeds pointer events into the
// surface and displays the composited frame through a canvas.Raster.
type padWidget struct {
	widget.BaseWidget

	surface *memopad.Surface
	raster  *canvas.Raster
	drawing bool
}

var (
	_ fyne.Widget       = (*padWidget)(nil)
	_ fyne.Draggable    = (*padWidget)(nil)
	_ desktop.Mouseable = (*padWidget)(nil)
)

func newPadWidget(s *memopad.Surface) *padWidget {
	w := &padWidget{surface: s}
	w.raster = canvas.NewRaster(w.drawFrame)
	w.ExtendBaseWidget(w)
	return w
}

// drawFrame is the raster generator. Fyne hands it the pixel
// dimensions of the widget, which also keeps the committed layer in
// step with the rendered size.
func (w *padWidget) drawFrame(pw, ph int) image.Image {
	if sw, sh := w.surface.Size(); sw != pw || sh != ph {
		w.surface.Resize(pw, ph)
	}
	return w.surface.Render()
}

// scale maps logical widget coordinates to surface pixels (they
// differ on high-DPI displays).
func (w *padWidget) scale() float64 {
	size := w.Size()
	if size.Width <= 0 {
		return 1
	}
	sw, _ := w.surface.Size()
	return float64(sw) / float64(size.Width)
}

func (w *padWidget) MouseDown(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	k := w.scale()
	w.drawing = true
	w.surface.PointerDown(float64(e.Position.X)*k, float64(e.Position.Y)*k)
	w.raster.Refresh()
}

func (w *padWidget) Dragged(e *fyne.DragEvent) {
	if !w.drawing {
		return
	}
	k := w.scale()
	w.surface.PointerMove(float64(e.Position.X)*k, float64(e.Position.Y)*k, nil)
	w.raster.Refresh()
}

func (w *padWidget) MouseUp(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary || !w.drawing {
		return
	}
	k := w.scale()
	w.drawing = false
	w.surface.PointerUp(float64(e.Position.X)*k, float64(e.Position.Y)*k, nil)
	w.raster.Refresh()
}

func (w *padWidget) DragEnd() {}

func (w *padWidget) MouseIn(*desktop.MouseEvent) {}

func (w *padWidget) MouseOut() {}

func (w *padWidget) MouseMoved(*desktop.MouseEvent) {}

// Redraw refreshes the displayed frame after a style or clear action.
func (w *padWidget) Redraw() {
	w.raster.Refresh()
}

func (w *padWidget) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(w.raster)
}
