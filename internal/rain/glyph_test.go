package rain

import (
	"math/rand"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
)

// hsl returns the saturation and lightness of a color for monotonicity checks.
func hsl(c Color) (s, l float64) {
	_, s, l = colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}.Hsl()
	return s, l
}

func TestFadeNeverBrightens(t *testing.T) {
	tests := []struct {
		name  string
		color Color
	}{
		{"Spawn blue", ColorBlue},
		{"Spawn green", ColorGreen},
		{"White", Color{255, 255, 255}},
		{"Dark red", Color{40, 0, 0}},
		{"Mid gray", Color{128, 128, 128}},
		{"Almost black", Color{1, 1, 1}},
	}

	// Quantizing back to 8-bit channels can wiggle saturation by a hair, so
	// the comparisons carry a small epsilon.
	const eps = 0.02

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGlyph('x', tt.color)
			s0, l0 := hsl(tt.color)
			g.Fade()
			s1, l1 := hsl(g.Color)
			if s1 > s0+eps {
				t.Errorf("Fade raised saturation from %.4f to %.4f", s0, s1)
			}
			if l1 > l0+eps {
				t.Errorf("Fade raised lightness from %.4f to %.4f", l0, l1)
			}
		})
	}
}

func TestFadeConvergesToBlack(t *testing.T) {
	tests := []struct {
		name  string
		color Color
	}{
		{"Spawn blue", ColorBlue},
		{"Spawn green", ColorGreen},
		{"White", Color{255, 255, 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGlyph('x', tt.color)
			_, prev := hsl(g.Color)
			for i := 0; i < 300; i++ {
				g.Fade()
				_, l := hsl(g.Color)
				if l > prev+0.02 {
					t.Fatalf("lightness rose from %.4f to %.4f on fade %d", prev, l, i+1)
				}
				prev = l
			}
			if g.Color != (Color{}) {
				t.Errorf("Expected color to converge to black, got %v", g.Color)
			}
		})
	}
}

func TestFadeBlackIsFixedPoint(t *testing.T) {
	g := EmptyGlyph()
	g.Fade()
	if g.Color != (Color{}) {
		t.Errorf("Expected black to stay black, got %v", g.Color)
	}
}

func TestEmptyGlyph(t *testing.T) {
	g := EmptyGlyph()
	if g.Char != ' ' {
		t.Errorf("Expected blank character, got %q", g.Char)
	}
	if g.Color != (Color{}) {
		t.Errorf("Expected black, got %v", g.Color)
	}
}

func TestRandomGlyphSamplesAlphabet(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	inAlphabet := make(map[rune]bool, len(alphabet))
	for _, r := range alphabet {
		inAlphabet[r] = true
	}

	for i := 0; i < 500; i++ {
		g := RandomGlyph(rng, ColorGreen)
		if !inAlphabet[g.Char] {
			t.Fatalf("Expected character from the alphabet, got %q", g.Char)
		}
		if g.Color != ColorGreen {
			t.Fatalf("Expected the given color, got %v", g.Color)
		}
	}
}

func TestGlyphRenderSequence(t *testing.T) {
	g := NewGlyph('A', Color{10, 20, 30})
	sink := &opSink{}
	if err := g.Render(sink); err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	want := []string{"bg 0 0 0", "fg 10 20 30", "print A"}
	assertOps(t, sink.ops, want)
}
