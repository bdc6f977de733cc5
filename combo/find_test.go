package combo_test

import (
	"fmt"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rayriffy/azx-service-solver/combo"
	"github.com/rayriffy/azx-service-solver/grid"
)

// mustGrid builds a grid or fails the test.
func mustGrid(t *testing.T, values [][]uint8) *grid.Grid {
	t.Helper()
	g, err := grid.New(values)
	require.NoError(t, err)

	return g
}

// sortedPositions extracts a move's position pairs for set comparison.
func sortedPositions(m combo.Move) map[[2]int]bool {
	out := make(map[[2]int]bool, len(m))
	for _, c := range m {
		out[[2]int{c.Row, c.Col}] = true
	}

	return out
}

//----------------------------------------------------------------------------//
// Sum and Shape Invariants
//----------------------------------------------------------------------------//

// TestFind_AllMovesSumToTarget verifies the core invariant on a mixed board:
// every emitted move sums exactly to the target, contains no duplicate
// positions, and stays in bounds.
func TestFind_AllMovesSumToTarget(t *testing.T) {
	g := mustGrid(t, [][]uint8{
		{1, 9, 2, 8},
		{3, 7, 4, 6},
		{5, 5, 1, 9},
	})
	moves := combo.Find(g, combo.DefaultOptions())
	require.NotEmpty(t, moves)

	for _, m := range moves {
		require.Equal(t, 10, m.Sum(), "move %v", m)
		seen := make(map[[2]int]bool)
		for _, c := range m {
			require.GreaterOrEqual(t, c.Row, 0)
			require.Less(t, c.Row, g.Rows())
			require.GreaterOrEqual(t, c.Col, 0)
			require.Less(t, c.Col, g.Cols())
			require.False(t, seen[[2]int{c.Row, c.Col}], "duplicate position in %v", m)
			seen[[2]int{c.Row, c.Col}] = true
			require.Equal(t, g.Get(c.Row, c.Col), c.Value)
		}
	}
}

// TestFind_RejectsNonTargetPair encodes the faithful-sum negative case:
// on [[5,5],[2,8]] the vertical pair 5+2=7 must never be emitted.
func TestFind_RejectsNonTargetPair(t *testing.T) {
	g := mustGrid(t, [][]uint8{
		{5, 5},
		{2, 8},
	})
	moves := combo.Find(g, combo.DefaultOptions())

	bad := map[[2]int]bool{{0, 0}: true, {1, 0}: true}
	for _, m := range moves {
		require.NotEqual(t, bad, sortedPositions(m), "5+2=7 pair must not be a move")
	}
}

// TestFind_SimplePair verifies [[5,5]] yields exactly the two-cell
// horizontal move.
func TestFind_SimplePair(t *testing.T) {
	g := mustGrid(t, [][]uint8{{5, 5}})
	moves := combo.Find(g, combo.DefaultOptions())
	require.Len(t, moves, 1)
	require.Equal(t, map[[2]int]bool{{0, 0}: true, {0, 1}: true}, sortedPositions(moves[0]))
}

//----------------------------------------------------------------------------//
// Contiguity Rule
//----------------------------------------------------------------------------//

// TestFind_GapRules checks that empty gaps inside a run are allowed while
// occupied gaps invalidate it.
func TestFind_GapRules(t *testing.T) {
	// Row 0: 4 _ 6 — empty gap, legal run.
	// Row 1: 4 1 6 — occupied gap; {4,6} is illegal, but {4,1,6} would be 11.
	g := mustGrid(t, [][]uint8{
		{4, 0, 6},
		{4, 1, 6},
	})
	moves := combo.Find(g, combo.Options{Target: 10, MaxSubsetLen: 20, Rectangles: false})

	var foundGap, foundBlocked bool
	for _, m := range moves {
		pos := sortedPositions(m)
		if pos[[2]int{0, 0}] && pos[[2]int{0, 2}] && len(m) == 2 {
			foundGap = true
		}
		if pos[[2]int{1, 0}] && pos[[2]int{1, 2}] && len(m) == 2 {
			foundBlocked = true
		}
	}
	require.True(t, foundGap, "run skipping an empty cell must be emitted")
	require.False(t, foundBlocked, "run skipping an occupied cell must be rejected")
}

// TestFind_SingleCellMove verifies that a lone cell equal to the target is
// a valid one-cell run.
func TestFind_SingleCellMove(t *testing.T) {
	g := mustGrid(t, [][]uint8{{0, 9, 0}})
	moves := combo.Find(g, combo.Options{Target: 9, MaxSubsetLen: 20, Rectangles: true})
	require.Len(t, moves, 1)
	require.Len(t, moves[0], 1)
	require.Equal(t, combo.Cell{Row: 0, Col: 1, Value: 9}, moves[0][0])
}

//----------------------------------------------------------------------------//
// Rectangle Pass and Deduplication
//----------------------------------------------------------------------------//

// TestFind_RectangleMove verifies a 2×2 block summing to the target is found
// by the rectangle pass even though no single row or column reaches it.
func TestFind_RectangleMove(t *testing.T) {
	g := mustGrid(t, [][]uint8{
		{1, 2, 0},
		{3, 4, 0},
		{0, 0, 9},
	})
	moves := combo.Find(g, combo.DefaultOptions())

	want := map[[2]int]bool{{0, 0}: true, {0, 1}: true, {1, 0}: true, {1, 1}: true}
	var found bool
	for _, m := range moves {
		if len(m) == 4 && m.Sum() == 10 {
			if pos := sortedPositions(m); pos[[2]int{0, 0}] && pos[[2]int{0, 1}] && pos[[2]int{1, 0}] && pos[[2]int{1, 1}] {
				require.Equal(t, want, pos)
				found = true
			}
		}
	}
	require.True(t, found, "2x2 rectangle 1+2+3+4 must be emitted")
}

// TestFind_RectanglesToggle verifies the heuristic-scan mode omits
// rectangle-only moves.
func TestFind_RectanglesToggle(t *testing.T) {
	g := mustGrid(t, [][]uint8{
		{1, 2},
		{3, 4},
	})
	withRect := combo.Find(g, combo.DefaultOptions())
	require.NotEmpty(t, withRect)

	opts := combo.DefaultOptions()
	opts.Rectangles = false
	withoutRect := combo.Find(g, opts)
	require.Empty(t, withoutRect, "no row or column sums to 10 here")
}

// TestFind_Deduplicates verifies that no position set is emitted twice even
// when multiple passes can reach it.
func TestFind_Deduplicates(t *testing.T) {
	g := mustGrid(t, [][]uint8{
		{2, 0},
		{8, 0},
	})
	moves := combo.Find(g, combo.DefaultOptions())
	require.Len(t, moves, 1, "the {2,8} column pair must appear exactly once")

	g = mustGrid(t, [][]uint8{
		{1, 9, 2, 8},
		{3, 7, 4, 6},
	})
	seen := make(map[string]bool)
	for _, m := range combo.Find(g, combo.DefaultOptions()) {
		pos := m.Positions()
		sort.Slice(pos, func(i, j int) bool {
			if pos[i][0] != pos[j][0] {
				return pos[i][0] < pos[j][0]
			}

			return pos[i][1] < pos[j][1]
		})
		key := fmt.Sprint(pos)
		require.False(t, seen[key], "duplicate move %v", m)
		seen[key] = true
	}
}

// TestFind_Determinism verifies two Find calls agree element-for-element.
func TestFind_Determinism(t *testing.T) {
	g := mustGrid(t, [][]uint8{
		{1, 9, 2, 8},
		{3, 7, 4, 6},
		{5, 5, 1, 9},
	})
	a := combo.Find(g, combo.DefaultOptions())
	b := combo.Find(g, combo.DefaultOptions())
	require.Equal(t, a, b)
}

//----------------------------------------------------------------------------//
// Safety Bound
//----------------------------------------------------------------------------//

// TestFind_SubsetLenBound verifies that an over-long candidate line is
// skipped silently rather than failing the enumeration.
func TestFind_SubsetLenBound(t *testing.T) {
	row := make([]uint8, 12)
	for i := range row {
		row[i] = 1
	}
	g := mustGrid(t, [][]uint8{row})

	opts := combo.DefaultOptions()
	opts.Rectangles = false
	opts.MaxSubsetLen = 10
	moves := combo.Find(g, opts)
	require.Empty(t, moves, "12-cell row exceeds the subset-sum bound")

	// Columns of length 1 cannot reach 10, so every move below comes from
	// the re-enabled row path.
	opts.MaxSubsetLen = 12
	moves = combo.Find(g, opts)
	require.NotEmpty(t, moves, "raising the bound restores enumeration")
}

// TestFind_EmptyBoard verifies a fully cleared board has no moves.
func TestFind_EmptyBoard(t *testing.T) {
	g := mustGrid(t, [][]uint8{
		{0, 0},
		{0, 0},
	})
	require.Empty(t, combo.Find(g, combo.DefaultOptions()))
}
