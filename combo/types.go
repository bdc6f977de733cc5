// Package combo defines the move model and enumeration options.
package combo

// MaxAxis bounds board width and height supported by the contiguity
// bitmasks. Boards within this bound cover every practical puzzle size.
const MaxAxis = 64

// Cell is a board position together with the value it held immediately
// before being cleared. A Cell never represents an empty position.
// JSON field names form part of the solver's wire contract.
type Cell struct {
	Row   int   `json:"row"`
	Col   int   `json:"col"`
	Value uint8 `json:"value"`
}

// Move is a non-empty set of mutually distinct cells whose values sum to
// the target. Two moves are the same move when their position sets are
// equal, regardless of which enumeration pass produced them.
type Move []Cell

// Positions returns the (row, col) pairs of the move, in move order.
func (m Move) Positions() [][2]int {
	out := make([][2]int, len(m))
	for i, c := range m {
		out[i] = [2]int{c.Row, c.Col}
	}

	return out
}

// Sum returns the total of the move's cell values.
func (m Move) Sum() int {
	s := 0
	for _, c := range m {
		s += int(c.Value)
	}

	return s
}

// Options contains tunable parameters for move enumeration.
type Options struct {
	// Target is the exact sum a move's cell values must reach.
	Target int
	// MaxSubsetLen bounds the length of any row/column candidate list fed
	// to subset-sum search; longer lists are skipped silently.
	MaxSubsetLen int
	// Rectangles enables the rectangle pass. The heuristic estimator
	// disables it to keep per-node cost low.
	Rectangles bool
}

// DefaultOptions returns Options with reference settings:
// Target=10, MaxSubsetLen=20, Rectangles=true.
func DefaultOptions() Options {
	return Options{
		Target:       10,
		MaxSubsetLen: 20,
		Rectangles:   true,
	}
}
