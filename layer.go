package memopad

import (
	"image"
	"image/color"
	"image/draw"
)

// Layer is a rectangular pixel buffer holding non-premultiplied RGBA
// pixels. The committed stroke layer and rendered frames are layers.
// A new layer is fully transparent.
type Layer struct {
	img *image.NRGBA
}

// NewLayer creates a transparent layer with the given dimensions.
func NewLayer(width, height int) *Layer {
	return &Layer{img: image.NewNRGBA(image.Rect(0, 0, width, height))}
}

// Width returns the width of the layer.
func (l *Layer) Width() int {
	return l.img.Rect.Dx()
}

// Height returns the height of the layer.
func (l *Layer) Height() int {
	return l.img.Rect.Dy()
}

// Image returns the underlying pixel buffer. Mutating it mutates the
// layer.
func (l *Layer) Image() *image.NRGBA {
	return l.img
}

// Clear resets every pixel to fully transparent.
func (l *Layer) Clear() {
	clear(l.img.Pix)
}

// Fill sets every pixel to the given color.
func (l *Layer) Fill(c ARGB) {
	draw.Draw(l.img, l.img.Rect, image.NewUniform(c.NRGBA()), image.Point{}, draw.Src)
}

// DrawOver composites src over the layer with source-over blending.
func (l *Layer) DrawOver(src image.Image) {
	draw.Draw(l.img, l.img.Rect, src, image.Point{}, draw.Over)
}

// Clone returns a deep copy of the layer.
func (l *Layer) Clone() *Layer {
	c := NewLayer(l.Width(), l.Height())
	copy(c.img.Pix, l.img.Pix)
	return c
}

// GetPixel returns the color of a single pixel, or Transparent when
// out of bounds.
func (l *Layer) GetPixel(x, y int) ARGB {
	if x < 0 || x >= l.Width() || y < 0 || y >= l.Height() {
		return Transparent
	}
	return FromColor(l.img.NRGBAAt(x, y))
}

// SetPixel sets the color of a single pixel. Out-of-bounds writes are
// ignored.
func (l *Layer) SetPixel(x, y int, c ARGB) {
	if x < 0 || x >= l.Width() || y < 0 || y >= l.Height() {
		return
	}
	l.img.SetNRGBA(x, y, c.NRGBA())
}

// At implements the image.Image interface.
func (l *Layer) At(x, y int) color.Color {
	return l.img.At(x, y)
}

// Bounds implements the image.Image interface.
func (l *Layer) Bounds() image.Rectangle {
	return l.img.Bounds()
}

// ColorModel implements the image.Image interface.
func (l *Layer) ColorModel() color.Model {
	return color.NRGBAModel
}
