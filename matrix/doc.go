// Package matrix provides the dense numeric grid consumed and produced by
// the assignment solvers.
//
// The matrix package provides:
//
//   - Matrix[T], a minimal bounds-checked interface (Rows, Cols, At, Set, Clone).
//   - Dense[T], a row-major implementation over a flat buffer, generic over
//     any fixed-width integer or floating-point element type (Number).
//   - Central validators (ValidateNotNil, ValidateSquare, ValidateSameShape).
//   - gonum interop (FromGonum, ToGonum) for pipelines that already hold
//     costs in a gonum mat.Matrix.
//
// All constructors reject empty shapes and ragged row literals with
// ErrInvalidDimensions; indexers return ErrOutOfRange instead of panicking.
//
//	m, _ := matrix.NewDenseFromRows([][]int{{1, 2}, {3, 4}})
//	v, _ := m.At(1, 0) // 3
package matrix
