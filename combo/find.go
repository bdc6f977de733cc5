package combo

import (
	"sort"

	"github.com/rayriffy/azx-service-solver/grid"
)

// Find returns every distinct valid move on g under opts, in deterministic
// order: horizontal pass first, then vertical, then rectangles, each in
// discovery order. A move found by more than one pass is emitted once, by
// the first pass that reached it.
//
// Complexity: see package documentation; the enumeration is the solver's
// hot path and allocates only for emitted moves and per-line scratch.
func Find(g *grid.Grid, opts Options) []Move {
	f := finder{
		g:    g,
		opts: opts,
		seen: make(map[string]struct{}),
	}

	f.horizontal()
	f.vertical()
	if opts.Rectangles {
		f.rectangles()
	}

	return f.moves
}

// finder carries the enumeration state of one Find call.
type finder struct {
	g     *grid.Grid
	opts  Options
	seen  map[string]struct{}
	moves []Move
}

// emit records a move unless its position set was already seen.
func (f *finder) emit(m Move) {
	key := positionKey(m)
	if _, dup := f.seen[key]; dup {
		return
	}
	f.seen[key] = struct{}{}
	f.moves = append(f.moves, m)
}

// positionKey builds the dedup identity of a move: its sorted (row, col)
// pairs packed two bytes per cell. Row and column indices fit a byte by
// the MaxAxis bound.
func positionKey(m Move) string {
	pos := make([][2]int, len(m))
	for i, c := range m {
		pos[i] = [2]int{c.Row, c.Col}
	}
	sort.Slice(pos, func(i, j int) bool {
		if pos[i][0] != pos[j][0] {
			return pos[i][0] < pos[j][0]
		}

		return pos[i][1] < pos[j][1]
	})

	key := make([]byte, 0, 2*len(pos))
	for _, p := range pos {
		key = append(key, byte(p[0]), byte(p[1]))
	}

	return string(key)
}

// lineCells gathers the non-empty cells of one row (horizontal=true) or one
// column, in axis order.
func (f *finder) lineCells(idx int, horizontal bool) []Cell {
	var cells []Cell
	if horizontal {
		for c := 0; c < f.g.Cols(); c++ {
			if v := f.g.Get(idx, c); v > 0 {
				cells = append(cells, Cell{Row: idx, Col: c, Value: v})
			}
		}
	} else {
		for r := 0; r < f.g.Rows(); r++ {
			if v := f.g.Get(r, idx); v > 0 {
				cells = append(cells, Cell{Row: r, Col: idx, Value: v})
			}
		}
	}

	return cells
}

// horizontal enumerates contiguous-run moves within each row.
func (f *finder) horizontal() {
	for row := 0; row < f.g.Rows(); row++ {
		cells := f.lineCells(row, true)
		if len(cells) == 0 {
			continue
		}
		for _, subset := range subsetSums(cells, f.opts.Target, f.opts.MaxSubsetLen) {
			if f.contiguousRun(subset, true) {
				f.emit(subset)
			}
		}
	}
}

// vertical enumerates contiguous-run moves within each column.
func (f *finder) vertical() {
	for col := 0; col < f.g.Cols(); col++ {
		cells := f.lineCells(col, false)
		if len(cells) == 0 {
			continue
		}
		for _, subset := range subsetSums(cells, f.opts.Target, f.opts.MaxSubsetLen) {
			if f.contiguousRun(subset, false) {
				f.emit(subset)
			}
		}
	}
}

// contiguousRun reports whether a single-line subset forms a legal run:
// every position strictly between the subset's extremes that is not part of
// the subset must be empty on the board. Subsets of size 1 are runs by
// definition. The selected-position bitmask caps supported axes at MaxAxis.
func (f *finder) contiguousRun(m Move, horizontal bool) bool {
	if len(m) <= 1 {
		return len(m) == 1
	}

	axis := func(c Cell) int {
		if horizontal {
			return c.Col
		}

		return c.Row
	}

	lo, hi := axis(m[0]), axis(m[0])
	var selected uint64
	for _, c := range m {
		a := axis(c)
		selected |= 1 << uint(a)
		if a < lo {
			lo = a
		}
		if a > hi {
			hi = a
		}
	}

	for a := lo; a <= hi; a++ {
		if selected&(1<<uint(a)) != 0 {
			continue
		}
		if horizontal {
			if f.g.Get(m[0].Row, a) != 0 {
				return false
			}
		} else if f.g.Get(a, m[0].Col) != 0 {
			return false
		}
	}

	return true
}

// rectangles enumerates multi-row, multi-column rectangle moves. For each
// top-left corner the bottom-right corner grows row-first; colSums[c] holds
// the running sum of column c between the corner rows, so each growth step
// adds exactly the newly admitted cells. Single rows and columns are left
// to the run passes. Values are non-negative, so once a rectangle's total
// overshoots the target no wider rectangle on the same rows can match.
func (f *finder) rectangles() {
	rows, cols := f.g.Rows(), f.g.Cols()
	colSums := make([]int, cols)

	for minRow := 0; minRow < rows; minRow++ {
		for minCol := 0; minCol < cols; minCol++ {
			for c := minCol; c < cols; c++ {
				colSums[c] = 0
			}
			for maxRow := minRow; maxRow < rows; maxRow++ {
				for c := minCol; c < cols; c++ {
					colSums[c] += int(f.g.Get(maxRow, c))
				}
				if maxRow == minRow {
					continue
				}
				total := 0
				for maxCol := minCol; maxCol < cols; maxCol++ {
					total += colSums[maxCol]
					if maxCol == minCol {
						continue
					}
					if total > f.opts.Target {
						break
					}
					if total == f.opts.Target {
						if m := f.rectCells(minRow, minCol, maxRow, maxCol); len(m) > 0 {
							f.emit(m)
						}
					}
				}
			}
		}
	}
}

// rectCells collects the non-empty cells of a rectangle, row-major.
// Called only on target-sum rectangles, so the result stays tiny.
func (f *finder) rectCells(minRow, minCol, maxRow, maxCol int) Move {
	var m Move
	for r := minRow; r <= maxRow; r++ {
		for c := minCol; c <= maxCol; c++ {
			if v := f.g.Get(r, c); v > 0 {
				m = append(m, Cell{Row: r, Col: c, Value: v})
			}
		}
	}

	return m
}
