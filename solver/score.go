package solver

// MoveScore returns the points awarded for clearing n cells in one move:
// n(n+1)/2. The triangular growth makes one large clear worth more than
// the same cells cleared piecemeal, which is the incentive both search
// strategies exploit.
func MoveScore(n int) int {
	return n * (n + 1) / 2
}
