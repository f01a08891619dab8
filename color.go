package memopad

import "image/color"

// ARGB is a packed 32-bit color in AARRGGBB order, the scalar form
// exchanged with the host UI over the style contract.
type ARGB uint32

// Built-in palette shared by the default pen and background tables.
const (
	Transparent ARGB = 0x00000000
	Black       ARGB = 0xFF000000
	White       ARGB = 0xFFFFFFFF
	Red         ARGB = 0xFFFF0000
	Green       ARGB = 0xFF00FF00
	Blue        ARGB = 0xFF0000FF
	Yellow      ARGB = 0xFFFFFF00
)

// ARGBOf packs the four channels into an ARGB scalar.
func ARGBOf(a, r, g, b uint8) ARGB {
	return ARGB(a)<<24 | ARGB(r)<<16 | ARGB(g)<<8 | ARGB(b)
}

// FromColor converts any color.Color to its packed ARGB form.
func FromColor(c color.Color) ARGB {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return ARGBOf(n.A, n.R, n.G, n.B)
}

// Alpha returns the alpha channel.
func (c ARGB) Alpha() uint8 { return uint8(c >> 24) }

// Red returns the red channel.
func (c ARGB) Red() uint8 { return uint8(c >> 16) }

// Green returns the green channel.
func (c ARGB) Green() uint8 { return uint8(c >> 8) }

// Blue returns the blue channel.
func (c ARGB) Blue() uint8 { return uint8(c) }

// NRGBA returns the color in non-premultiplied RGBA form.
func (c ARGB) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.Red(), G: c.Green(), B: c.Blue(), A: c.Alpha()}
}

// RGBA implements the color.Color interface.
func (c ARGB) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}

// Opaque returns the color with the alpha channel forced to 0xFF.
func (c ARGB) Opaque() ARGB {
	return c | 0xFF000000
}
