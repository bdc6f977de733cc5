// Package solver defines result types, options, and sentinel errors for
// the puzzle solving strategies.
package solver

import (
	"errors"

	"github.com/rayriffy/azx-service-solver/combo"
)

// Sentinel errors for option validation and board acceptance.
var (
	// ErrBadTarget indicates a non-positive target sum.
	ErrBadTarget = errors.New("solver: target sum must be positive")
	// ErrBadWidth indicates a beam width below 1.
	ErrBadWidth = errors.New("solver: beam width must be at least 1")
	// ErrBadDepth indicates a lookahead depth below 1.
	ErrBadDepth = errors.New("solver: lookahead depth must be at least 1")
	// ErrBadThresholds indicates density thresholds that are negative or
	// out of order.
	ErrBadThresholds = errors.New("solver: board-size thresholds must satisfy 0 <= small <= medium")
	// ErrBadSubsetLen indicates a subset-sum bound below 1.
	ErrBadSubsetLen = errors.New("solver: subset length bound must be at least 1")
	// ErrBoardTooLarge indicates a board dimension beyond the contiguity
	// bitmask bound.
	ErrBoardTooLarge = errors.New("solver: board dimensions exceed supported size")
)

// Step records one committed move: the cells cleared, the sum achieved
// (always the target, retained for auditability), and the full board
// snapshot immediately after the move. The ordered Step sequence from the
// initial board to a terminal state is the solver's entire output.
// JSON field names form the solver's wire contract.
type Step struct {
	Cells     []combo.Cell `json:"cells"`
	Sum       int          `json:"sum"`
	GridAfter [][]uint8    `json:"gridAfter"`
}

// Strategy identifies which solving algorithm a plan selects.
type Strategy int

const (
	// StrategyBeam is bounded-width beam search with state deduplication.
	StrategyBeam Strategy = iota
	// StrategyGreedy is depth-limited lookahead greedy search.
	StrategyGreedy
)

// String returns the strategy name used in CLI reports.
func (s Strategy) String() string {
	if s == StrategyGreedy {
		return "greedy"
	}

	return "beam"
}

// Options holds the tunable parameters of a solve call.
//
// Strategy selection by non-empty cell count:
//
//   - count <= SmallBoardCells  → beam search with SmallBeamWidth
//   - count <= MediumBoardCells → beam search with MediumBeamWidth
//   - otherwise                 → greedy lookahead with LookaheadDepth
//
// The thresholds encode a running-time/quality trade-off: beam search wins
// on sparse boards, greedy lookahead stays tractable on dense ones.
type Options struct {
	// Target is the exact sum every move must reach.
	Target int
	// SmallBoardCells is the inclusive cell-count bound for the wide beam.
	SmallBoardCells int
	// SmallBeamWidth is the beam width used at or below SmallBoardCells.
	SmallBeamWidth int
	// MediumBoardCells is the inclusive cell-count bound for the narrow beam.
	MediumBoardCells int
	// MediumBeamWidth is the beam width used at or below MediumBoardCells.
	MediumBeamWidth int
	// LookaheadDepth is the greedy solver's recursive evaluation depth.
	LookaheadDepth int
	// MaxSubsetLen bounds subset-sum input length during enumeration.
	MaxSubsetLen int
}

// DefaultOptions returns the reference configuration:
// target 10, beam width 20 up to 30 cells, width 12 up to 50 cells,
// greedy lookahead depth 3 beyond that, subset bound 20.
func DefaultOptions() Options {
	return Options{
		Target:           10,
		SmallBoardCells:  30,
		SmallBeamWidth:   20,
		MediumBoardCells: 50,
		MediumBeamWidth:  12,
		LookaheadDepth:   3,
		MaxSubsetLen:     20,
	}
}

// Validate reports the first violated option bound as a sentinel error.
func (o Options) Validate() error {
	if o.Target < 1 {
		return ErrBadTarget
	}
	if o.SmallBeamWidth < 1 || o.MediumBeamWidth < 1 {
		return ErrBadWidth
	}
	if o.LookaheadDepth < 1 {
		return ErrBadDepth
	}
	if o.SmallBoardCells < 0 || o.MediumBoardCells < o.SmallBoardCells {
		return ErrBadThresholds
	}
	if o.MaxSubsetLen < 1 {
		return ErrBadSubsetLen
	}

	return nil
}

// comboOptions derives enumeration options; rectangles are disabled for
// heuristic scans.
func (o Options) comboOptions(rectangles bool) combo.Options {
	return combo.Options{
		Target:       o.Target,
		MaxSubsetLen: o.MaxSubsetLen,
		Rectangles:   rectangles,
	}
}
