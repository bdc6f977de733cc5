package grid

// New constructs a Grid from a non-empty, rectangular 2D slice of digits.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if values has no rows or no columns,
// ErrRaggedGrid if any row length differs,
// ErrValueRange if any cell lies outside 0..9.
// Complexity: O(W×H) time and memory.
func New(values [][]uint8) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	rows, cols := len(values), len(values[0])
	for _, row := range values {
		if len(row) != cols {
			return nil, ErrRaggedGrid
		}
		for _, v := range row {
			if v > MaxValue {
				return nil, ErrValueRange
			}
		}
	}
	// Deep copy into a single contiguous allocation.
	data := make([]uint8, 0, rows*cols)
	for _, row := range values {
		data = append(data, row...)
	}

	return &Grid{data: data, rows: rows, cols: cols}, nil
}

// Rows returns the number of board rows. Complexity: O(1).
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of board columns. Complexity: O(1).
func (g *Grid) Cols() int { return g.cols }

// Get returns the value at (row, col). Bounds are the caller's contract;
// out-of-range coordinates are not checked. Complexity: O(1).
func (g *Grid) Get(row, col int) uint8 {
	return g.data[row*g.cols+col]
}

// Set writes value at (row, col). Bounds are the caller's contract.
// Set is intended for freshly cloned grids only; shared grids must never
// be written. Complexity: O(1).
func (g *Grid) Set(row, col int, value uint8) {
	g.data[row*g.cols+col] = value
}

// Clone returns an independent copy of the grid.
// Complexity: O(W×H) time and memory.
func (g *Grid) Clone() *Grid {
	data := make([]uint8, len(g.data))
	copy(data, g.data)

	return &Grid{data: data, rows: g.rows, cols: g.cols}
}

// Apply returns a new Grid equal to the receiver except that every given
// (row, col) position is cleared to 0. The receiver is not mutated.
// Complexity: O(W×H + len(positions)).
func (g *Grid) Apply(positions [][2]int) *Grid {
	next := g.Clone()
	for _, p := range positions {
		next.Set(p[0], p[1], 0)
	}

	return next
}

// Remaining returns the number of non-empty cells.
// Complexity: O(W×H).
func (g *Grid) Remaining() int {
	n := 0
	for _, v := range g.data {
		if v > 0 {
			n++
		}
	}

	return n
}

// fnv64 offset basis and prime, per FNV-1a.
const (
	fnvOffset64 = 14695981039346656037
	fnvPrime64  = 1099511628211
)

// Hash returns a fast FNV-1a digest of the dimensions and raw cell bytes.
// It is a structural fingerprint for deduplication: two grids with equal
// content always hash equal; a collision between distinct grids costs
// search quality, not correctness. Complexity: O(W×H).
func (g *Grid) Hash() uint64 {
	h := uint64(fnvOffset64)
	h ^= uint64(g.rows)
	h *= fnvPrime64
	h ^= uint64(g.cols)
	h *= fnvPrime64
	for _, v := range g.data {
		h ^= uint64(v)
		h *= fnvPrime64
	}

	return h
}

// Matrix exports the board as a fresh [][]uint8, row-major.
// Mutating the result does not affect the Grid.
// Complexity: O(W×H) time and memory.
func (g *Grid) Matrix() [][]uint8 {
	out := make([][]uint8, g.rows)
	for r := 0; r < g.rows; r++ {
		row := make([]uint8, g.cols)
		copy(row, g.data[r*g.cols:(r+1)*g.cols])
		out[r] = row
	}

	return out
}
