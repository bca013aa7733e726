// Package rain implements the digital-rain animation: a grid of glyph
// columns that spawn bright characters at a random cadence and fade them
// toward black, one tick at a time.
package rain

import "github.com/lucasb-eyer/go-colorful"

// Color is a 24-bit RGB color.
type Color struct {
	R, G, B uint8
}

// Spawn colors for freshly dropped glyphs. Every new drop head is one of
// these two, picked per tick.
var (
	ColorBlue  = Color{R: 0, G: 150, B: 255}
	ColorGreen = Color{R: 0, G: 255, B: 43}
)

var spawnColors = [2]Color{ColorBlue, ColorGreen}

// faded returns the color one fade step darker: saturation scaled by 0.9 and
// lightness by 0.93 in HSL space. Fading in HSL keeps the hue stable while
// the glyph trails off, instead of the hue drift a plain RGB scale causes.
func (c Color) faded() Color {
	h, s, l := colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}.Hsl()

	s = clamp01(s * 0.9)
	l = clamp01(l * 0.93)

	f := colorful.Hsl(h, s, l).Clamped()
	return Color{
		R: uint8(f.R * 255),
		G: uint8(f.G * 255),
		B: uint8(f.B * 255),
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
