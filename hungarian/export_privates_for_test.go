package hungarian

import "github.com/katalvlaran/assignment/matrix"

// Test-bridge for hungarian_test: exposes single phases and a mark-grid
// observer without widening the production API. Compiled only under `go test`.

// Reduce_TestOnly validates cost, runs the cost reducer on the working copy
// and returns the reduced values as rows.
func Reduce_TestOnly[T matrix.Number](cost matrix.Matrix[T]) ([][]T, error) {
	s, err := newSolver(cost, DefaultOptions())
	if err != nil {
		return nil, err
	}
	s.reduce()

	return s.rows(), nil
}

// InitialStars_TestOnly runs reduction plus greedy starring and returns the
// resulting marks as rows.
func InitialStars_TestOnly[T matrix.Number](cost matrix.Matrix[T]) ([][]Mark, error) {
	s, err := newSolver(cost, DefaultOptions())
	if err != nil {
		return nil, err
	}
	s.reduce()
	s.starInitial()

	return snapshot(s.grid), nil
}

// AssignObserved_TestOnly runs Assign and calls observe with a copy of the
// mark grid after every single mark mutation.
func AssignObserved_TestOnly[T matrix.Number](cost matrix.Matrix[T], observe func(marks [][]Mark)) (Result[T], error) {
	s, err := newSolver(cost, DefaultOptions())
	if err != nil {
		return Result[T]{}, err
	}
	s.grid.onMutate = func(g *markGrid) { observe(snapshot(g)) }
	s.solve()

	return s.extract(), nil
}

func (s *solver[T]) rows() [][]T {
	out := make([][]T, s.n)
	for r := 0; r < s.n; r++ {
		out[r] = append([]T(nil), s.work[r*s.n:(r+1)*s.n]...)
	}

	return out
}

func snapshot(g *markGrid) [][]Mark {
	out := make([][]Mark, g.n)
	for r := 0; r < g.n; r++ {
		out[r] = append([]Mark(nil), g.marks[r*g.n:(r+1)*g.n]...)
	}

	return out
}
