package hungarian

import (
	"fmt"

	"github.com/katalvlaran/assignment/matrix"
)

// state is a phase of the main augmentation loop.
type state uint8

const (
	stateCovering   state = iota // cover starred columns; done when all n are covered
	stateSearching               // look for a zero in an uncovered row and column
	statePriming                 // prime the found zero and branch on its row's star
	stateAugmenting              // flip the alternating path starting at the prime
	stateAdjusting               // shift costs by the minimum uncovered value
	stateDone
)

func (s state) String() string {
	switch s {
	case stateCovering:
		return "covering"
	case stateSearching:
		return "searching"
	case statePriming:
		return "priming"
	case stateAugmenting:
		return "augmenting"
	case stateAdjusting:
		return "adjusting"
	case stateDone:
		return "done"
	default:
		return fmt.Sprintf("state(%d)", uint8(s))
	}
}

// cell is a (row, column) coordinate in the n×n grid.
type cell struct {
	row, col int
}

// solver owns every piece of mutable state of one solve call.
// Nothing in it is shared with the caller or with other calls.
type solver[T matrix.Number] struct {
	n    int
	orig []T // read-only snapshot of the caller's costs, row-major
	work []T // working copy mutated by reduce and adjust, row-major
	grid *markGrid
	log  Logger

	augmentations int
	adjustments   int
}

// newSolver validates cost and snapshots it twice (orig and work).
// Nothing is built when validation fails.
//
// Errors: ErrInvalidDimension, ErrNonFiniteCost, or an At error of a custom Matrix.
func newSolver[T matrix.Number](cost matrix.Matrix[T], opts Options) (*solver[T], error) {
	orig, n, err := loadCosts(cost)
	if err != nil {
		return nil, err
	}
	work := make([]T, len(orig))
	copy(work, orig)

	return &solver[T]{
		n:    n,
		orig: orig,
		work: work,
		grid: newMarkGrid(n),
		log:  opts.Logger,
	}, nil
}

// loadCosts checks the shape and finiteness of cost and copies it row-major.
// Shape and nil checks go through matrix.ValidateSquare.
func loadCosts[T matrix.Number](cost matrix.Matrix[T]) ([]T, int, error) {
	if err := matrix.ValidateSquare(cost); err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrInvalidDimension, err)
	}

	var (
		n   = cost.Rows()
		out = make([]T, n*n)
		i   int
		j   int
		v   T
		err error
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if v, err = cost.At(i, j); err != nil {
				return nil, 0, err
			}
			if !matrix.IsFinite(v) {
				return nil, 0, fmt.Errorf("%w: at (%d,%d)", ErrNonFiniteCost, i, j)
			}
			out[i*n+j] = v
		}
	}

	return out, n, nil
}

// solve runs every phase; afterwards the stars form a perfect matching.
func (s *solver[T]) solve() {
	s.reduce()
	s.starInitial()
	s.log.Debug("hungarian: initial matching", "n", s.n, "stars", s.grid.stars)
	s.run()
	s.log.Debug("hungarian: solved", "n", s.n,
		"augmentations", s.augmentations, "adjustments", s.adjustments)
}

// reduce subtracts each row's minimum from the row, then each column's
// minimum (over the row-reduced values) from the column.
// Afterwards every entry is ≥ 0 and every row and column holds an exact zero.
// Complexity: O(n²).
func (s *solver[T]) reduce() {
	var (
		n    = s.n
		r, c int
		base int
		low  T
	)
	for r = 0; r < n; r++ {
		base = r * n
		low = s.work[base]
		for c = 1; c < n; c++ {
			if s.work[base+c] < low {
				low = s.work[base+c]
			}
		}
		for c = 0; c < n; c++ {
			s.work[base+c] -= low
		}
	}
	for c = 0; c < n; c++ {
		low = s.work[c]
		for r = 1; r < n; r++ {
			if s.work[r*n+c] < low {
				low = s.work[r*n+c]
			}
		}
		for r = 0; r < n; r++ {
			s.work[r*n+c] -= low
		}
	}
}

// starInitial greedily stars zeros in row-major order, skipping any zero whose
// row or column already holds a star. The two flag vectors are transient and
// independent of the coverage vectors.
func (s *solver[T]) starInitial() {
	var (
		n      = s.n
		rowHas = make([]bool, n)
		colHas = make([]bool, n)
		r, c   int
	)
	for r = 0; r < n; r++ {
		for c = 0; c < n; c++ {
			if s.work[r*n+c] == 0 && !rowHas[r] && !colHas[c] {
				s.grid.star(r, c)
				rowHas[r] = true
				colHas[c] = true
			}
		}
	}
}

// run drives the state machine until every column is covered by a star.
//
// Transitions:
//
//	covering   → done (n covered) | searching
//	searching  → priming (zero found) | adjusting
//	priming    → searching (row had a star) | augmenting
//	augmenting → covering
//	adjusting  → searching
//
// A search pass runs top to bottom once: after a detour it resumes at the
// next row, and only a pass that reaches the last row without an augmenting
// zero goes through adjusting and starts over at row 0.
func (s *solver[T]) run() {
	var (
		st   = stateCovering
		z    cell // zero located by searching, consumed by priming/augmenting
		from int  // first row of the rest of the current pass
		ok   bool
	)
	for st != stateDone {
		switch st {
		case stateCovering:
			from = 0
			if s.grid.coverStarredColumns() == s.n {
				st = stateDone
			} else {
				st = stateSearching
			}

		case stateSearching:
			if z, ok = s.findUncoveredZero(from); ok {
				st = statePriming
			} else {
				st = stateAdjusting
			}

		case statePriming:
			s.grid.prime(z.row, z.col)
			if c := s.grid.starInRow[z.row]; c >= 0 {
				// Detour: hide this row, reopen the star's column.
				s.grid.coverRow(z.row)
				s.grid.uncoverCol(c)
				from = z.row + 1
				st = stateSearching
			} else {
				st = stateAugmenting
			}

		case stateAugmenting:
			path := s.buildPath(z)
			s.flipPath(path)
			s.grid.clearPrimes()
			s.grid.clearCovers()
			s.augmentations++
			s.log.Debug("hungarian: augmented", "path_len", len(path), "stars", s.grid.stars)
			st = stateCovering

		case stateAdjusting:
			// δ is 0 when a detour reopened a column holding a zero in a row
			// above it; the next pass from row 0 finds that zero.
			if delta := s.adjust(); delta != 0 {
				s.adjustments++
				s.log.Debug("hungarian: adjusted", "delta", delta,
					"covered_cols", s.grid.coveredCols)
			}
			from = 0
			st = stateSearching

		default:
			panic(fmt.Sprintf("hungarian: unreachable %s", st))
		}
	}
}

// findUncoveredZero scans uncovered rows from row `from` down and, within a
// row, uncovered columns in ascending order.
func (s *solver[T]) findUncoveredZero(from int) (cell, bool) {
	var (
		n    = s.n
		g    = s.grid
		r, c int
	)
	for r = from; r < n; r++ {
		if g.rowCovered[r] {
			continue
		}
		for c = 0; c < n; c++ {
			if !g.colCovered[c] && s.work[r*n+c] == 0 {
				return cell{row: r, col: c}, true
			}
		}
	}

	return cell{}, false
}

// adjust finds δ, the minimum over cells whose row and column are both
// uncovered, then adds δ to every covered row and subtracts δ from every
// uncovered column. The two shifts cancel on covered-row/uncovered-column
// cells, so only doubly covered cells grow and doubly uncovered cells shrink;
// no intermediate value leaves [0, old+δ], which keeps unsigned types safe.
//
// Fewer than n lines are covered here, so δ exists. It is 0 when the pass
// skipped a zero above a detour row; the shift is then a no-op and skipped.
func (s *solver[T]) adjust() T {
	var (
		n     = s.n
		g     = s.grid
		r, c  int
		delta T
		seen  bool
	)
	for r = 0; r < n; r++ {
		if g.rowCovered[r] {
			continue
		}
		for c = 0; c < n; c++ {
			if !g.colCovered[c] && (!seen || s.work[r*n+c] < delta) {
				delta = s.work[r*n+c]
				seen = true
			}
		}
	}
	if delta == 0 {
		return delta
	}

	for r = 0; r < n; r++ {
		for c = 0; c < n; c++ {
			switch {
			case g.rowCovered[r] && g.colCovered[c]:
				s.work[r*n+c] += delta
			case !g.rowCovered[r] && !g.colCovered[c]:
				s.work[r*n+c] -= delta
			}
		}
	}

	return delta
}
