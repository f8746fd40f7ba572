package render

import (
	"image/color"
	"math"
)

// Color is an opaque 8-bit RGB color.
type Color struct {
	R, G, B uint8
}

// RGB creates a Color.
func RGB(r, g, b uint8) Color {
	return Color{r, g, b}
}

// Hex creates a Color from 0xRRGGBB.
func Hex(v uint32) Color {
	return Color{uint8(v >> 16), uint8(v >> 8), uint8(v)}
}

var (
	ColorBlack = RGB(0, 0, 0)
	ColorWhite = RGB(255, 255, 255)
	ColorRed   = RGB(255, 0, 0)
	ColorGreen = RGB(0, 255, 0)
	ColorBlue  = RGB(0, 0, 255)
)

// RGBA converts to the image/color type.
func (c Color) RGBA() color.RGBA {
	return color.RGBA{c.R, c.G, c.B, 255}
}

// FromRGBA converts from the image/color type, dropping alpha.
func FromRGBA(c color.RGBA) Color {
	return Color{c.R, c.G, c.B}
}

// HSL converts hue, saturation and lightness to a Color. Hue is in turns
// and wraps, so h = 7.3 is the same as h = 0.3.
func HSL(h, s, l float64) Color {
	h = h - math.Floor(h)
	s = clamp01(s)
	l = clamp01(l)

	c := (1 - math.Abs(2*l-1)) * s
	hp := h * 6
	x := c * (1 - math.Abs(math.Mod(hp, 2)-1))
	m := l - c/2

	var r, g, b float64
	switch {
	case hp < 1:
		r, g, b = c, x, 0
	case hp < 2:
		r, g, b = x, c, 0
	case hp < 3:
		r, g, b = 0, c, x
	case hp < 4:
		r, g, b = 0, x, c
	case hp < 5:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}
	return Color{toByte(r + m), toByte(g + m), toByte(b + m)}
}

// MultiplyColor scales a color by f, clamping each channel to 255.
func MultiplyColor(c Color, f float64) Color {
	return Color{
		toByte(float64(c.R) / 255 * f),
		toByte(float64(c.G) / 255 * f),
		toByte(float64(c.B) / 255 * f),
	}
}

// ModulateColor multiplies two colors channel by channel.
func ModulateColor(a, b Color) Color {
	return Color{
		uint8(uint16(a.R) * uint16(b.R) / 255),
		uint8(uint16(a.G) * uint16(b.G) / 255),
		uint8(uint16(a.B) * uint16(b.B) / 255),
	}
}

func lerpColor(a, b Color, t float64) Color {
	return Color{
		uint8(float64(a.R) + (float64(b.R)-float64(a.R))*t),
		uint8(float64(a.G) + (float64(b.G)-float64(a.G))*t),
		uint8(float64(a.B) + (float64(b.B)-float64(a.B))*t),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func toByte(v float64) uint8 {
	return uint8(math.Round(clamp01(v) * 255))
}
