// Package hungarian - entry points of the Kuhn–Munkres solver.
//
// This file provides:
//
//   - Solve: cost matrix in, 0/1 permutation matrix out (the core contract).
//   - Assign: Solve plus the row→column map and the total original cost.
//   - TotalCost / ValidatePermutation: checks on externally produced assignments.
//
// Every entry point validates before building any state and never mutates
// the caller's matrix: the solver works on its own copy.
package hungarian

import (
	"fmt"

	"github.com/katalvlaran/assignment/matrix"
)

// Solve returns the minimum-cost assignment of rows to columns of cost as an
// n×n 0/1 matrix with exactly one 1 per row and per column.
//
// Contracts:
//   - cost must be non-nil, square and non-empty; otherwise ErrInvalidDimension.
//   - float costs must be finite; otherwise ErrNonFiniteCost.
//   - cost is only read. Negative costs are accepted (reduction shifts them).
//   - The element type must be wide enough for the values plus the
//     cumulative adjustments; overflow is not detected.
//
// Ties between several optimal assignments are broken deterministically by
// the row-major scan orders of starring and searching.
//
// Complexity: O(n³) time, O(n²) space.
func Solve[T matrix.Number](cost matrix.Matrix[T], opts ...Option) (*matrix.Dense[int], error) {
	res, err := Assign(cost, opts...)
	if err != nil {
		return nil, err
	}

	return res.Assignment, nil
}

// Assign is Solve that also reports Columns (row r → Columns[r]) and Cost,
// the sum of the original costs of the matched cells.
//
// Errors: as Solve.
// Complexity: O(n³) time, O(n²) space.
func Assign[T matrix.Number](cost matrix.Matrix[T], opts ...Option) (Result[T], error) {
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	s, err := newSolver(cost, cfg)
	if err != nil {
		return Result[T]{}, err
	}
	s.solve()

	return s.extract(), nil
}

// extract reads the final stars into the result. Called once, after run has
// covered all n columns, so every row holds exactly one star.
func (s *solver[T]) extract() Result[T] {
	var (
		n    = s.n
		cols = make([]int, n)
		r, c int
		sum  T
	)
	out, _ := matrix.NewZeros[int](n, n) // n ≥ 1 was validated on entry
	for r = 0; r < n; r++ {
		for c = 0; c < n; c++ {
			if s.grid.at(r, c) == Starred {
				_ = out.Set(r, c, 1)
				cols[r] = c
				sum += s.orig[r*n+c]
			}
		}
	}

	return Result[T]{Assignment: out, Columns: cols, Cost: sum}
}

// ValidatePermutation checks that m is square and holds exactly one 1 per row
// and per column, with zeros elsewhere.
//
// Errors: ErrInvalidDimension for nil, empty or non-square m;
// ErrNotPermutation (wrapped with the offending position) otherwise.
// Complexity: O(n²).
func ValidatePermutation(m matrix.Matrix[int]) error {
	if err := matrix.ValidateSquare(m); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDimension, err)
	}

	var (
		n       = m.Rows()
		colSeen = make([]bool, n)
		r, c    int
		ones    int
		v       int
		err     error
	)
	for r = 0; r < n; r++ {
		ones = 0
		for c = 0; c < n; c++ {
			if v, err = m.At(r, c); err != nil {
				return err
			}
			switch v {
			case 0:
			case 1:
				if colSeen[c] {
					return fmt.Errorf("%w: column %d matched twice", ErrNotPermutation, c)
				}
				colSeen[c] = true
				ones++
			default:
				return fmt.Errorf("%w: value %d at (%d,%d)", ErrNotPermutation, v, r, c)
			}
		}
		if ones != 1 {
			return fmt.Errorf("%w: row %d has %d ones", ErrNotPermutation, r, ones)
		}
	}

	// n rows with one 1 each and no column repeated: every column is used.
	return nil
}

// TotalCost sums cost over the 1-cells of assignment.
//
// Errors: ErrInvalidDimension when cost is not square or the shapes differ;
// ErrNotPermutation when assignment is not a permutation matrix.
// Complexity: O(n²).
func TotalCost[T matrix.Number](cost matrix.Matrix[T], assignment matrix.Matrix[int]) (T, error) {
	var sum T
	if err := matrix.ValidateSameShape(cost, assignment); err != nil {
		return sum, fmt.Errorf("%w: %w", ErrInvalidDimension, err)
	}
	if err := ValidatePermutation(assignment); err != nil {
		return sum, err
	}

	var (
		n    = assignment.Rows()
		r, c int
		a    int
		v    T
		err  error
	)
	for r = 0; r < n; r++ {
		for c = 0; c < n; c++ {
			if a, err = assignment.At(r, c); err != nil {
				return sum, err
			}
			if a != 1 {
				continue
			}
			if v, err = cost.At(r, c); err != nil {
				return sum, err
			}
			sum += v
		}
	}

	return sum, nil
}
