package solver

import (
	"github.com/rayriffy/azx-service-solver/combo"
	"github.com/rayriffy/azx-service-solver/grid"
)

// estimateFuture returns an optimistic one-move score estimate for g: the
// triangular score of the largest move found by a rectangle-free scan.
// Skipping the rectangle pass biases the estimate low but keeps the call
// cheap enough to run at every expanded search node; the value ranks
// branches and guarantees nothing.
func estimateFuture(g *grid.Grid, opts Options) int {
	maxSize := 0
	for _, m := range combo.Find(g, opts.comboOptions(false)) {
		if len(m) > maxSize {
			maxSize = len(m)
		}
	}

	return MoveScore(maxSize)
}
