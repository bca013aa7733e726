package rain

import (
	"math/rand"

	"github.com/pheano/drip/internal/term"
)

// Glyph is one terminal cell's visible content: a character and its color.
type Glyph struct {
	Char  rune
	Color Color
}

// NewGlyph returns a glyph with the given character and color.
func NewGlyph(ch rune, color Color) Glyph {
	return Glyph{Char: ch, Color: color}
}

// EmptyGlyph returns the blank black glyph columns are initially filled with.
func EmptyGlyph() Glyph {
	return Glyph{Char: ' ', Color: Color{}}
}

// RandomGlyph returns a glyph with a character sampled uniformly from the
// alphabet. All randomness comes from rng so callers control reproducibility.
func RandomGlyph(rng *rand.Rand, color Color) Glyph {
	return Glyph{
		Char:  alphabet[rng.Intn(len(alphabet))],
		Color: color,
	}
}

// Fade darkens and desaturates the glyph's color by one step. Repeated
// application converges the color to black; black stays black.
func (g *Glyph) Fade() {
	g.Color = g.Color.faded()
}

// Render queues the glyph to the sink: black background, the glyph's color
// as foreground, then the character.
func (g Glyph) Render(sink term.Sink) error {
	if err := sink.SetBackground(0, 0, 0); err != nil {
		return err
	}
	if err := sink.SetForeground(g.Color.R, g.Color.G, g.Color.B); err != nil {
		return err
	}
	return sink.Print(g.Char)
}
