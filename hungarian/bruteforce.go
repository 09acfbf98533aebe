package hungarian

import (
	"fmt"

	"gonum.org/v1/gonum/stat/combin"

	"github.com/katalvlaran/assignment/matrix"
)

// BruteForce returns an optimal assignment by enumerating all n! permutations.
// It exists as an independent reference for Solve on small inputs.
//
// Among several optimal permutations, the lexicographically smallest
// Columns slice wins, so results do not depend on enumeration order.
//
// Errors: ErrInvalidDimension, ErrNonFiniteCost (as Solve),
// ErrTooLarge when n > MaxBruteForceSize.
// Complexity: O(n·n!) time, O(n²) space.
func BruteForce[T matrix.Number](cost matrix.Matrix[T]) (Result[T], error) {
	if matrix.ValidateSquare(cost) == nil && cost.Rows() > MaxBruteForceSize {
		return Result[T]{}, fmt.Errorf("%w: n=%d > %d", ErrTooLarge, cost.Rows(), MaxBruteForceSize)
	}
	vals, n, err := loadCosts(cost)
	if err != nil {
		return Result[T]{}, err
	}

	var (
		gen  = combin.NewPermutationGenerator(n, n)
		perm = make([]int, n)
		best = make([]int, n)
		have bool
		low  T
		sum  T
		r    int
	)
	for gen.Next() {
		perm = gen.Permutation(perm)
		sum = 0
		for r = 0; r < n; r++ {
			sum += vals[r*n+perm[r]]
		}
		if !have || sum < low || (sum == low && lexLess(perm, best)) {
			copy(best, perm)
			low = sum
			have = true
		}
	}

	out, _ := matrix.NewZeros[int](n, n) // n ≥ 1 was validated by loadCosts
	for r = 0; r < n; r++ {
		_ = out.Set(r, best[r], 1)
	}

	return Result[T]{Assignment: out, Columns: best, Cost: low}, nil
}

// lexLess reports whether a sorts before b; both have equal length.
func lexLess(a, b []int) bool {
	var i int
	for i = range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}

	return false
}
