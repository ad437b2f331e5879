package gizmos

import (
	"image/color"

	"golang.org/x/image/colornames"
)

// Color is a straight (non-premultiplied) RGBA color, components in [0, 1].
// The zero value is the "unset" sentinel: it resolves to DefaultColor at draw time.
type Color [4]float32

// DefaultColor is used for every gizmo whose color was left unset.
var DefaultColor = ColorFrom(colornames.Magenta)

var (
	Red    = Color{1, 0, 0, 1}
	Green  = Color{0, 1, 0, 1}
	Blue   = Color{0, 0, 1, 1}
	Yellow = Color{1, 1, 0, 1}
	White  = Color{1, 1, 1, 1}
)

func NewColor(r, g, b, a float32) Color {
	return Color{r, g, b, a}
}

// ColorFrom converts any image/color value.
func ColorFrom(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{
		float32(n.R) / 255,
		float32(n.G) / 255,
		float32(n.B) / 255,
		float32(n.A) / 255,
	}
}

func (c Color) IsZero() bool {
	return c == Color{}
}

// Resolve returns c, or DefaultColor when c is unset.
func (c Color) Resolve() Color {
	if c.IsZero() {
		return DefaultColor
	}
	return c
}

// RGBA implements color.Color (alpha-premultiplied, 16 bits per channel).
func (c Color) RGBA() (r, g, b, a uint32) {
	alpha := clamp01(c[3])
	r = uint32(clamp01(c[0]) * alpha * 0xffff)
	g = uint32(clamp01(c[1]) * alpha * 0xffff)
	b = uint32(clamp01(c[2]) * alpha * 0xffff)
	a = uint32(alpha * 0xffff)
	return
}

// NRGBA returns the 8-bit straight-alpha form used by most backends.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: uint8(clamp01(c[0])*255 + 0.5),
		G: uint8(clamp01(c[1])*255 + 0.5),
		B: uint8(clamp01(c[2])*255 + 0.5),
		A: uint8(clamp01(c[3])*255 + 0.5),
	}
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
