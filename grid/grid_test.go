package grid_test

import (
	"errors"
	"testing"

	"github.com/rayriffy/azx-service-solver/grid"
)

//----------------------------------------------------------------------------//
// Construction Tests
//----------------------------------------------------------------------------//

// TestNew_Errors verifies that New rejects empty, ragged, and out-of-range input.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name   string
		values [][]uint8
		err    error
	}{
		{"EmptyRows", [][]uint8{}, grid.ErrEmptyGrid},
		{"EmptyCols", [][]uint8{{}}, grid.ErrEmptyGrid},
		{"Ragged", [][]uint8{{1, 2}, {3}}, grid.ErrRaggedGrid},
		{"ValueTooLarge", [][]uint8{{1, 2}, {3, 10}}, grid.ErrValueRange},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := grid.New(tc.values)
			if !errors.Is(err, tc.err) {
				t.Errorf("New(%v) error = %v; want %v", tc.values, err, tc.err)
			}
		})
	}
}

// TestNew_DeepCopies verifies that mutating the input after construction
// does not leak into the Grid.
func TestNew_DeepCopies(t *testing.T) {
	values := [][]uint8{{1, 2}, {3, 4}}
	g, err := grid.New(values)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	values[0][0] = 9
	if got := g.Get(0, 0); got != 1 {
		t.Errorf("Get(0,0) = %d after external mutation; want 1", got)
	}
}

//----------------------------------------------------------------------------//
// Accessor and Counter Tests
//----------------------------------------------------------------------------//

// TestGetSetRemaining checks element access and the non-empty counter.
func TestGetSetRemaining(t *testing.T) {
	g, err := grid.New([][]uint8{
		{0, 5, 0},
		{7, 0, 2},
	})
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	if g.Rows() != 2 || g.Cols() != 3 {
		t.Fatalf("dims = %dx%d; want 2x3", g.Rows(), g.Cols())
	}
	if got := g.Get(1, 2); got != 2 {
		t.Errorf("Get(1,2) = %d; want 2", got)
	}
	if got := g.Remaining(); got != 3 {
		t.Errorf("Remaining() = %d; want 3", got)
	}

	c := g.Clone()
	c.Set(0, 1, 0)
	if got := c.Remaining(); got != 2 {
		t.Errorf("Remaining() after Set = %d; want 2", got)
	}
	if got := g.Remaining(); got != 3 {
		t.Errorf("original Remaining() = %d after clone mutation; want 3", got)
	}
}

//----------------------------------------------------------------------------//
// Apply and Hash Tests
//----------------------------------------------------------------------------//

// TestApply verifies copy-on-write move application.
func TestApply(t *testing.T) {
	g, err := grid.New([][]uint8{
		{5, 5},
		{2, 8},
	})
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	next := g.Apply([][2]int{{0, 0}, {0, 1}})
	if got := next.Get(0, 0); got != 0 {
		t.Errorf("cleared cell (0,0) = %d; want 0", got)
	}
	if got := next.Get(1, 1); got != 8 {
		t.Errorf("untouched cell (1,1) = %d; want 8", got)
	}
	if got := g.Get(0, 0); got != 5 {
		t.Errorf("receiver cell (0,0) = %d after Apply; want 5", got)
	}
}

// TestHash_ContentEquality verifies that equal content hashes equal and that
// distinct placements of the same multiset of values hash differently.
func TestHash_ContentEquality(t *testing.T) {
	a, _ := grid.New([][]uint8{{1, 2}, {3, 4}})
	b, _ := grid.New([][]uint8{{1, 2}, {3, 4}})
	c, _ := grid.New([][]uint8{{2, 1}, {3, 4}})

	if a.Hash() != b.Hash() {
		t.Error("equal grids must hash equal")
	}
	if a.Hash() == c.Hash() {
		t.Error("transposed values unexpectedly collide")
	}
}

// TestHash_Dimensions verifies that dimensions participate in the digest:
// a 1x4 and a 2x2 board with identical bytes must not collide.
func TestHash_Dimensions(t *testing.T) {
	a, _ := grid.New([][]uint8{{1, 2, 3, 4}})
	b, _ := grid.New([][]uint8{{1, 2}, {3, 4}})
	if a.Hash() == b.Hash() {
		t.Error("1x4 and 2x2 boards with same bytes must hash differently")
	}
}

// TestMatrix verifies round-trip export.
func TestMatrix(t *testing.T) {
	values := [][]uint8{{0, 9}, {3, 0}}
	g, _ := grid.New(values)
	out := g.Matrix()
	for r := range values {
		for c := range values[r] {
			if out[r][c] != values[r][c] {
				t.Fatalf("Matrix()[%d][%d] = %d; want %d", r, c, out[r][c], values[r][c])
			}
		}
	}
	// Exported matrix must be detached from the Grid.
	out[0][1] = 0
	if g.Get(0, 1) != 9 {
		t.Error("mutating exported matrix leaked into Grid")
	}
}
