// Package solver turns a board of digit tiles into an ordered list of
// scoring moves.
//
// What:
//
//   - Solve validates a board, picks a strategy by tile density, and returns
//     the committed Steps: cells cleared, target sum, and the board snapshot
//     after each move.
//   - BeamSearch keeps a bounded set of best-looking partial solutions per
//     round, pruning re-derived board states through a structural-hash
//     visited map, and returns the best terminal solution found.
//   - GreedyLookahead commits one move at a time, ranked by a depth-bounded
//     recursive evaluation with a capped branching factor — the fallback for
//     large, dense boards where beam search is too expensive.
//
// Why:
//
//   - Clearing n tiles in one move scores n(n+1)/2, so the search must hunt
//     for large combined clears rather than grabbing pairs greedily.
//   - Neither strategy proves optimality; both trade completeness for
//     bounded running time and return a good solution deterministically.
//
// Complexity:
//
//   - BeamSearch: O(rounds × width × moves-per-state) expansions; each
//     expansion costs one enumeration plus one heuristic scan.
//   - GreedyLookahead: O(moves × 5^depth) evaluations per committed step.
//
// Options:
//
//   - Options.Target: move sum (10 by default).
//   - Beam widths and density thresholds, lookahead depth: see Options.
//
// Errors:
//
//   - Board construction errors from package grid (empty, ragged,
//     out-of-range input).
//   - ErrBoardTooLarge: a dimension exceeds the contiguity-mask bound.
//   - ErrBadTarget, ErrBadWidth, ErrBadDepth, ErrBadThresholds,
//     ErrBadSubsetLen: option validation.
//
// Both strategies are deterministic: the same board and options always
// produce the identical Step sequence.
package solver
