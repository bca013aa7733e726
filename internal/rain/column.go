package rain

import (
	"math/rand"

	"github.com/pheano/drip/internal/term"
)

// Column is one vertical strip of the terminal, height glyphs tall. The
// active index is the row the next spawned glyph lands on; it advances one
// row per non-gated tick and wraps back to the top.
type Column struct {
	height int
	base   Color
	glyphs []Glyph
	active int
}

// NewColumn returns a column of height empty glyphs with the active index at
// the top.
func NewColumn(height int, base Color) Column {
	glyphs := make([]Glyph, height)
	for i := range glyphs {
		glyphs[i] = EmptyGlyph()
	}
	return Column{height: height, base: base, glyphs: glyphs}
}

// RenderRow queues the glyph at row to the sink.
func (c *Column) RenderRow(sink term.Sink, row int) error {
	return c.glyphs[row].Render(sink)
}

// Step advances the column by one tick. When the active index sits at the
// top, the column restarts a new drop only 10% of the time; the other 90% of
// ticks it idles untouched, which is what staggers the columns. A non-gated
// tick fades every glyph uniformly, then overwrites the active row with a
// fresh glyph in one of the two spawn colors, so the new head is never faded
// on the tick it appears.
func (c *Column) Step(rng *rand.Rand) {
	if c.active == 0 && rng.Float64() > 0.1 {
		return
	}

	for i := range c.glyphs {
		c.glyphs[i].Fade()
	}

	color := spawnColors[rng.Intn(len(spawnColors))]
	c.glyphs[c.active] = RandomGlyph(rng, color)

	c.active++
	if c.active >= c.height {
		c.active = 0
	}
}
