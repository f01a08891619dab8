package memopad

import (
	"image"
	"image/draw"
	"math"

	"github.com/anthonynsimon/bild/blur"
	"golang.org/x/image/vector"
)

// strokeLayer rasterizes the path into dst using the pen. The stroke
// is stamped as a union of oriented quads (one per polyline segment)
// and discs (one per vertex), which yields round caps and round joins
// without computing a single offset outline. Coverage saturates where
// the stamps overlap, so the union renders seamlessly.
func strokeLayer(dst *Layer, p *Path, pen Pen) {
	pts := p.Flatten()
	if len(pts) == 0 {
		return
	}

	half := pen.Width / 2
	if half <= 0 {
		half = 0.5 // hairline
	}

	bounds := dst.Image().Bounds()
	mask := strokeMask(bounds, pts, half)
	if !pen.Antialias {
		thresholdMask(mask)
	}

	src := image.NewUniform(pen.Color.NRGBA())
	if pen.SoftEdge > 0 {
		// Rasterize into a scratch layer first so the blur sees
		// the stroke against transparency, then composite.
		scratch := image.NewNRGBA(bounds)
		draw.DrawMask(scratch, bounds, src, image.Point{}, mask, image.Point{}, draw.Src)
		blurred := blur.Gaussian(scratch, pen.SoftEdge)
		draw.Draw(dst.Image(), bounds, blurred, image.Point{}, draw.Over)
		return
	}
	draw.DrawMask(dst.Image(), bounds, src, image.Point{}, mask, image.Point{}, draw.Over)
}

// strokeMask renders the stroke coverage into an alpha mask.
func strokeMask(bounds image.Rectangle, pts []Point, half float64) *image.Alpha {
	r := vector.NewRasterizer(bounds.Dx(), bounds.Dy())
	r.DrawOp = draw.Src

	for i := 0; i+1 < len(pts); i++ {
		addSegment(r, pts[i], pts[i+1], half)
	}
	for _, c := range pts {
		addDisc(r, c, half)
	}

	mask := image.NewAlpha(bounds)
	r.Draw(mask, bounds, image.Opaque, image.Point{})
	return mask
}

// addSegment stamps the rectangle covering a single polyline segment
// at the given half-width. Zero-length segments are skipped; the
// vertex discs already cover them.
func addSegment(r *vector.Rasterizer, a, b Point, half float64) {
	d := b.Sub(a)
	if d.Length() < 1e-9 {
		return
	}
	n := d.Normalize().Perp().Mul(half)

	// Wound the same way as the discs so overlapping stamps
	// accumulate instead of canceling.
	moveTo(r, a.Sub(n))
	lineTo(r, b.Sub(n))
	lineTo(r, b.Add(n))
	lineTo(r, a.Add(n))
	r.ClosePath()
}

// addDisc stamps a filled circle approximated by eight quadratic arcs.
func addDisc(r *vector.Rasterizer, c Point, radius float64) {
	const arcs = 8
	step := 2 * math.Pi / arcs
	// Control points sit on the tangent intersection, slightly
	// outside the circle.
	ctrlRadius := radius / math.Cos(step/2)

	moveTo(r, Pt(c.X+radius, c.Y))
	for i := 0; i < arcs; i++ {
		mid := float64(i)*step + step/2
		end := float64(i+1) * step
		r.QuadTo(
			float32(c.X+ctrlRadius*math.Cos(mid)), float32(c.Y+ctrlRadius*math.Sin(mid)),
			float32(c.X+radius*math.Cos(end)), float32(c.Y+radius*math.Sin(end)),
		)
	}
	r.ClosePath()
}

func moveTo(r *vector.Rasterizer, p Point) {
	r.MoveTo(float32(p.X), float32(p.Y))
}

func lineTo(r *vector.Rasterizer, p Point) {
	r.LineTo(float32(p.X), float32(p.Y))
}

// thresholdMask converts anti-aliased coverage into hard binary
// coverage.
func thresholdMask(m *image.Alpha) {
	for i, v := range m.Pix {
		if v >= 0x80 {
			m.Pix[i] = 0xFF
		} else {
			m.Pix[i] = 0
		}
	}
}
