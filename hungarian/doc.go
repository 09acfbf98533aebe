// Package hungarian solves the linear assignment problem with the
// Kuhn–Munkres ("Hungarian") method.
//
// Overview:
//
//   - Given an n×n cost matrix, find the one-to-one mapping of rows to
//     columns with minimum total cost.
//   - The solver works on a private copy of the costs and a grid of cell
//     marks (unmarked / starred / primed) with row and column covers.
//   - Starred zeros form the current matching; primed zeros are collected while
//     looking for an augmenting path that grows the matching by one.
//
// Phases:
//
//	reduce       subtract row minima, then column minima
//	star         greedily star independent zeros (row-major)
//	covering     cover starred columns; all n covered → done
//	searching    find a zero in an uncovered row and column, resuming
//	             below the last detour row until the pass ends
//	priming      prime it; its row has a star → cover row, uncover star column
//	augmenting   flip the alternating prime/star path, reset primes and covers
//	adjusting    no uncovered zero: add δ to covered rows, subtract δ from
//	             uncovered columns (δ = minimum uncovered value)
//
// The loop is an explicit state machine (see solver.run). At most one star
// per row and per column holds after every mark mutation.
//
// Complexity:
//
//   - Time:  O(n³): at most n augmentations, at most n adjustments between two.
//   - Space: O(n²) for the cost snapshot, working copy and mark grid.
//
// Errors (sentinel):
//
//   - ErrInvalidDimension: nil, empty or non-square matrix (before any work).
//   - ErrNonFiniteCost:    NaN/±Inf in a float matrix.
//   - ErrNotPermutation:   from ValidatePermutation / TotalCost.
//   - ErrTooLarge:         from BruteForce when n > MaxBruteForceSize.
//
// Thread safety:
//
//   - Each call owns all of its state; independent calls may run in parallel.
//   - The cost matrix is only read, but must not be mutated concurrently.
//
// Example:
//
//	cost, _ := matrix.NewDenseFromRows([][]int{{1, 2, 3}, {2, 4, 6}, {3, 6, 9}})
//	res, err := hungarian.Assign(cost)
//	// res.Columns == []int{2, 1, 0}, res.Cost == 10
package hungarian
