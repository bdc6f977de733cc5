// Package combo enumerates the valid moves of the tile-clearing puzzle.
//
// What:
//
//   - A move is a set of non-empty cells summing exactly to the target value
//     (10 by default) in one of three shapes: a contiguous horizontal run,
//     a contiguous vertical run, or an axis-aligned rectangle.
//   - Find returns every distinct move available on a board snapshot,
//     deduplicated by the set of cell positions involved.
//   - Runs may skip over empty cells: a gap inside a run is legal only when
//     every skipped cell is empty at evaluation time.
//
// Why:
//
//   - Both solver strategies (beam search and greedy lookahead) expand states
//     by the full move set of the current board; enumeration is the hot path
//     of the whole solver.
//   - The heuristic estimator reuses Find with Rectangles disabled, trading
//     estimate quality for per-node cost.
//
// Complexity:
//
//   - Subset-sum per row/column: exponential worst case, heavily pruned by
//     suffix sums and overshoot cuts; lists longer than MaxSubsetLen are
//     skipped outright.
//   - Rectangle pass: O(W²×H²) rectangle candidates with O(1) incremental
//     sum maintenance per candidate.
//
// Options:
//
//   - Options.Target: required sum of a move's cell values.
//   - Options.MaxSubsetLen: safety bound on subset-sum input length.
//   - Options.Rectangles: include the rectangle pass (disable for cheap
//     heuristic scans).
package combo
