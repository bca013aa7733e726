package rain

import (
	"fmt"
	"math/rand"

	"github.com/pheano/drip/internal/term"
)

// Waterfall is the full grid: one column per terminal column, all sharing
// the same height. Columns are independent; nothing is shared between them.
type Waterfall struct {
	width, height int
	base          Color
	columns       []Column
}

// NewWaterfall returns a grid of width independent columns, each height
// cells tall.
func NewWaterfall(width, height int, base Color) *Waterfall {
	columns := make([]Column, width)
	for i := range columns {
		columns[i] = NewColumn(height, base)
	}
	return &Waterfall{width: width, height: height, base: base, columns: columns}
}

// Render queues a full frame to the sink and flushes it. Cells are written
// row-major, columns left to right, so the frame paints as one linear stream
// with no per-cell cursor movement.
func (w *Waterfall) Render(sink term.Sink) error {
	if err := sink.HideCursor(); err != nil {
		return fmt.Errorf("rendering frame: %w", err)
	}
	if err := sink.MoveTo(0, 0); err != nil {
		return fmt.Errorf("rendering frame: %w", err)
	}
	for y := 0; y < w.height; y++ {
		for i := range w.columns {
			if err := w.columns[i].RenderRow(sink, y); err != nil {
				return fmt.Errorf("rendering frame: %w", err)
			}
		}
	}
	if err := sink.Reset(); err != nil {
		return fmt.Errorf("rendering frame: %w", err)
	}
	if err := sink.Flush(); err != nil {
		return fmt.Errorf("flushing frame: %w", err)
	}
	return nil
}

// Step advances every column by one tick. Left-to-right order is fixed only
// so a seeded rng replays the same frames.
func (w *Waterfall) Step(rng *rand.Rand) {
	for i := range w.columns {
		w.columns[i].Step(rng)
	}
}
