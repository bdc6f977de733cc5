package solver

import (
	"github.com/rayriffy/azx-service-solver/combo"
	"github.com/rayriffy/azx-service-solver/grid"
)

// Plan is a resolved strategy choice: which algorithm to run and its
// parameter (beam width or lookahead depth).
type Plan struct {
	Strategy Strategy
	// Width is the beam width when Strategy is StrategyBeam.
	Width int
	// Depth is the lookahead depth when Strategy is StrategyGreedy.
	Depth int
}

// PlanFor selects the strategy for a board with the given non-empty cell
// count: sparse boards get the wide beam, medium boards the narrow beam,
// dense boards fall back to greedy lookahead.
func PlanFor(remaining int, opts Options) Plan {
	switch {
	case remaining <= opts.SmallBoardCells:
		return Plan{Strategy: StrategyBeam, Width: opts.SmallBeamWidth}
	case remaining <= opts.MediumBoardCells:
		return Plan{Strategy: StrategyBeam, Width: opts.MediumBeamWidth}
	default:
		return Plan{Strategy: StrategyGreedy, Depth: opts.LookaheadDepth}
	}
}

// Solve is the solver's single external operation: validate the board,
// choose a strategy by tile density, and return the ordered Steps of the
// solution found. A board with no valid move yields an empty, non-nil Step
// list; that is a normal terminal case, not an error.
//
// Errors: option sentinels from Validate, board sentinels from grid.New,
// and ErrBoardTooLarge when a dimension exceeds combo.MaxAxis.
//
// Deterministic: identical input and options produce the identical Step
// sequence.
func Solve(values [][]uint8, opts Options) ([]Step, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	g, err := grid.New(values)
	if err != nil {
		return nil, err
	}
	if g.Rows() > combo.MaxAxis || g.Cols() > combo.MaxAxis {
		return nil, ErrBoardTooLarge
	}

	plan := PlanFor(g.Remaining(), opts)
	if plan.Strategy == StrategyGreedy {
		return GreedyLookahead(g, plan.Depth, opts), nil
	}

	return BeamSearch(g, plan.Width, opts), nil
}
