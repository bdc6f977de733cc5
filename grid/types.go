// Package grid defines the Grid type and sentinel errors for board
// construction.
package grid

import "errors"

// MaxValue is the largest tile value a board cell may hold.
const MaxValue = 9

// Sentinel errors for grid construction.
var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input must have at least one row and one column")
	// ErrRaggedGrid indicates rows of differing lengths.
	ErrRaggedGrid = errors.New("grid: all rows must have the same length")
	// ErrValueRange indicates a cell value outside 0..9.
	ErrValueRange = errors.New("grid: cell values must be in range 0..9")
)

// Grid is a rectangular board of digit tiles stored row-major in a flat
// byte slice. A value of 0 marks an empty cell. Grid is immutable by
// convention: search code never mutates a Grid that another branch may
// still hold; Apply returns a fresh copy instead.
type Grid struct {
	data []uint8
	rows int
	cols int
}
