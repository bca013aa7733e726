package rain

import (
	"context"
	"math/rand"
	"time"

	"github.com/pheano/drip/internal/term"
)

// TickInterval is the fixed frame interval.
const TickInterval = 80 * time.Millisecond

// Run drives the animation: render the current state, advance it one tick,
// wait out the interval, repeat. It returns nil once ctx is canceled, or the
// first render error.
func Run(ctx context.Context, sink term.Sink, w *Waterfall, rng *rand.Rand) error {
	ticker := time.NewTicker(TickInterval)
	defer ticker.Stop()

	for {
		if err := w.Render(sink); err != nil {
			return err
		}
		w.Step(rng)

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}
