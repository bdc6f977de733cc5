package solver

import (
	"sort"

	"github.com/rayriffy/azx-service-solver/combo"
	"github.com/rayriffy/azx-service-solver/grid"
)

// searchState is one partial solution inside the beam: a board snapshot,
// the append-only Step history that reached it, the cumulative score, a
// precomputed sort priority (score + heuristic estimate), and the count of
// non-empty cells left. States are owned by a single beam generation and
// never mutated after creation.
type searchState struct {
	grid      *grid.Grid
	steps     []Step
	score     int
	priority  int
	remaining int
}

// BeamSearch explores move sequences from g keeping at most width candidate
// states per round and returns the Steps of the best terminal state found.
//
// Each round expands every beam state by every valid move. A candidate
// whose board hash was already reached with an equal-or-better cumulative
// score is discarded (dominated-state pruning); survivors are ranked by
// priority, ties broken by fewer remaining cells, and the top width
// states advance. A state with no valid moves is terminal and competes for
// the result on (higher score, then fewer remaining cells).
//
// The visited map lives for exactly one call; nothing is shared between
// invocations, and the same inputs always yield the identical Step
// sequence. A width below 1 is treated as 1.
//
// Complexity: O(rounds × width × moves) expansions, each costing one
// enumeration, one board copy, one hash, and one heuristic scan.
func BeamSearch(g *grid.Grid, width int, opts Options) []Step {
	if width < 1 {
		width = 1
	}

	// visited maps a board hash to the best cumulative score reaching it.
	visited := make(map[uint64]int, 1024)

	beam := []searchState{{
		grid:      g,
		steps:     nil,
		score:     0,
		priority:  estimateFuture(g, opts),
		remaining: g.Remaining(),
	}}

	var (
		bestSteps     = make([]Step, 0)
		bestScore     = -1
		bestRemaining = int(^uint(0) >> 1)
	)

	fullOpts := opts.comboOptions(true)

	for len(beam) > 0 {
		next := make([]searchState, 0, width*10)

		for i := range beam {
			state := &beam[i]
			moves := combo.Find(state.grid, fullOpts)

			if len(moves) == 0 {
				// Terminal: best score wins, then fewest remaining cells.
				if state.score > bestScore ||
					(state.score == bestScore && state.remaining < bestRemaining) {
					bestScore = state.score
					bestRemaining = state.remaining
					bestSteps = state.steps
				}

				continue
			}

			for _, m := range moves {
				nextGrid := state.grid.Apply(m.Positions())
				key := nextGrid.Hash()
				nextScore := state.score + MoveScore(len(m))

				if existing, ok := visited[key]; ok && existing >= nextScore {
					continue
				}
				visited[key] = nextScore

				steps := make([]Step, len(state.steps), len(state.steps)+1)
				copy(steps, state.steps)
				steps = append(steps, Step{
					Cells:     append([]combo.Cell(nil), m...),
					Sum:       opts.Target,
					GridAfter: nextGrid.Matrix(),
				})

				next = append(next, searchState{
					grid:      nextGrid,
					steps:     steps,
					score:     nextScore,
					priority:  nextScore + estimateFuture(nextGrid, opts),
					remaining: nextGrid.Remaining(),
				})
			}
		}

		// Rank survivors; stable sort keeps discovery order on full ties so
		// truncation stays deterministic.
		sort.SliceStable(next, func(a, b int) bool {
			if next[a].priority != next[b].priority {
				return next[a].priority > next[b].priority
			}

			return next[a].remaining < next[b].remaining
		})
		if len(next) > width {
			next = next[:width]
		}
		beam = next
	}

	if bestSteps == nil {
		bestSteps = make([]Step, 0)
	}

	return bestSteps
}
