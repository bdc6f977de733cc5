package combo

// subsetSums enumerates every subset of cells whose values sum exactly to
// target, via include/exclude depth-first backtracking.
//
// Pruning:
//  1. Suffix sums — a branch is abandoned when even including every
//     remaining element cannot reach the target.
//  2. Overshoot — a branch is abandoned once the accumulated sum exceeds
//     the target.
//
// A matching subset is recorded and the search continues past it: siblings
// and descendants may also match. The algorithm does not assume values are
// non-zero even though board tiles never are.
//
// Inputs longer than maxLen (or empty) yield no subsets; the caller treats
// that as a silent safety skip, never as an error.
//
// Complexity: O(2^n) worst case, far lower in practice for small positive
// values summing to a small target.
func subsetSums(cells []Cell, target, maxLen int) []Move {
	n := len(cells)
	if n == 0 || n > maxLen {
		return nil
	}

	// suffix[i] holds the sum of cells[i:].
	suffix := make([]int, n+1)
	for i := n - 1; i >= 0; i-- {
		suffix[i] = suffix[i+1] + int(cells[i].Value)
	}

	var (
		out     []Move
		current = make([]Cell, 0, n)
	)

	var backtrack func(idx, sum int)
	backtrack = func(idx, sum int) {
		if sum == target && len(current) > 0 {
			m := make(Move, len(current))
			copy(m, current)
			out = append(out, m)
			// Keep searching: zero-valued elements could extend a match.
		}
		if idx >= n {
			return
		}
		if sum+suffix[idx] < target {
			return
		}
		if sum > target {
			return
		}

		// Include cells[idx].
		current = append(current, cells[idx])
		backtrack(idx+1, sum+int(cells[idx].Value))
		current = current[:len(current)-1]

		// Exclude cells[idx].
		backtrack(idx+1, sum)
	}

	backtrack(0, 0)

	return out
}
