// Package grid provides the dense board representation used by the
// tile-clearing solver.
//
// What:
//
//   - Grid wraps a rectangular board of digit tiles (0 = empty, 1–9 = tile)
//     in a single contiguous row-major byte slice.
//   - O(1) unchecked Get/Set, a fast structural Hash for state deduplication,
//     and a non-empty-cell counter.
//   - Apply produces a fresh Grid with a set of positions cleared, never
//     mutating the receiver, so divergent search branches can share ancestors
//     safely.
//
// Why:
//
//   - Search solvers clone board states thousands of times per solve; a flat
//     byte slice keeps clones to a single allocation and one memcpy.
//   - Structural hashing lets a beam search recognize a board it has already
//     reached through a different move order.
//
// Complexity:
//
//   - Get/Set:    O(1).
//   - Clone/Apply: O(W×H) time and memory.
//   - Hash:        O(W×H).
//   - Remaining:   O(W×H).
//
// Errors:
//
//   - ErrEmptyGrid: input has no rows or no columns.
//   - ErrRaggedGrid: rows have differing lengths.
//   - ErrValueRange: a cell value lies outside 0..9.
package grid
