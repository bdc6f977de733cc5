package solver

import (
	"math"

	"github.com/rayriffy/azx-service-solver/combo"
	"github.com/rayriffy/azx-service-solver/grid"
)

// lookaheadBranch caps how many candidate moves each recursion level of the
// lookahead evaluation explores. Completeness is traded for tractability.
const lookaheadBranch = 5

// GreedyLookahead solves g by repeatedly committing the single move with
// the highest lookahead evaluation until no move remains. Committed moves
// are never undone. Deterministic: ties keep the earliest-enumerated move.
//
// Complexity: O(steps × moves × lookaheadBranch^depth) evaluations.
func GreedyLookahead(g *grid.Grid, depth int, opts Options) []Step {
	if depth < 1 {
		depth = 1
	}

	steps := make([]Step, 0)
	current := g
	fullOpts := opts.comboOptions(true)

	for {
		moves := combo.Find(current, fullOpts)
		if len(moves) == 0 {
			break
		}

		bestIdx, bestValue := 0, math.MinInt
		for idx, m := range moves {
			if v := evaluate(current, m, depth, opts); v > bestValue {
				bestValue = v
				bestIdx = idx
			}
		}

		best := moves[bestIdx]
		nextGrid := current.Apply(best.Positions())
		steps = append(steps, Step{
			Cells:     append([]combo.Cell(nil), best...),
			Sum:       opts.Target,
			GridAfter: nextGrid.Matrix(),
		})
		current = nextGrid
	}

	return steps
}

// evaluate scores committing m on g with depth levels of lookahead.
//
//   - depth <= 1: immediate score plus half the heuristic estimate of the
//     resulting board, a cheap terminal approximation.
//   - dead end (no follow-up move): immediate score minus a small penalty
//     proportional to the tiles stranded.
//   - otherwise: immediate score plus 90% of the best recursive evaluation
//     over at most lookaheadBranch first-enumerated follow-ups — future
//     value is discounted in favor of near-term certainty.
func evaluate(g *grid.Grid, m combo.Move, depth int, opts Options) int {
	next := g.Apply(m.Positions())
	immediate := MoveScore(len(m))

	if depth <= 1 {
		return immediate + estimateFuture(next, opts)/2
	}

	followUps := combo.Find(next, opts.comboOptions(true))
	if len(followUps) == 0 {
		return immediate - next.Remaining()/10
	}

	limit := lookaheadBranch
	if len(followUps) < limit {
		limit = len(followUps)
	}
	bestFuture := 0
	for _, fm := range followUps[:limit] {
		if v := evaluate(next, fm, depth-1, opts); v > bestFuture {
			bestFuture = v
		}
	}

	return immediate + bestFuture*9/10
}
