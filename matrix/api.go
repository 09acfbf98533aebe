// SPDX-License-Identifier: MIT
// Package matrix — constructor facades.
//
// Purpose:
//   - Provide thin, intention-revealing entry points over NewDense.
//   - Avoid logic duplication: each facade delegates to the canonical constructor.

package matrix

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// It is a thin alias of NewDense with an intention-revealing name.
// Complexity: O(rows*cols).
func NewZeros[T Number](rows, cols int) (*Dense[T], error) {
	return NewDense[T](rows, cols)
}

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// The identity is also the trivial permutation matrix (row i → column i).
// Complexity: O(n^2) zeroing + O(n) diagonal writes.
func NewIdentity[T Number](n int) (*Dense[T], error) {
	I, err := NewDense[T](n, n)
	if err != nil {
		return nil, err // propagate constructor error unchanged
	}
	var i int
	for i = 0; i < n; i++ { // fixed i order guarantees reproducibility
		I.data[i*n+i] = 1
	}

	return I, nil
}

// ZerosLike returns a new zero matrix of element type T with the same shape as m.
// The source element type may differ from T.
// Complexity: O(rows*cols).
func ZerosLike[T, S Number](m Matrix[S]) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}

	return NewDense[T](m.Rows(), m.Cols())
}
