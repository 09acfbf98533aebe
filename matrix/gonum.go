// SPDX-License-Identifier: MIT

// Package matrix - gonum interop.
//
// Purpose:
//   - Accept cost matrices produced by gonum pipelines (mat.Dense, views, transposes).
//   - Hand results back to gonum for further linear algebra.
//
// Both directions copy; no storage is shared with gonum.

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// FromGonum copies any gonum mat.Matrix into a new *Dense[float64].
//
// Errors:
//   - ErrNilMatrix when src is nil.
//   - ErrInvalidDimensions for an empty source.
//   - ErrNaNInf when the source holds NaN/±Inf (default numeric policy).
//
// Complexity: O(r*c).
func FromGonum(src mat.Matrix) (*Dense[float64], error) {
	if src == nil {
		return nil, validatorErrorf("FromGonum", ErrNilMatrix)
	}
	r, c := src.Dims()
	m, err := NewDense[float64](r, c)
	if err != nil {
		return nil, validatorErrorf("FromGonum", err)
	}

	var i, j int
	var v float64
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			v = src.At(i, j)
			if !IsFinite(v) {
				return nil, denseErrorf("FromGonum", i, j, ErrNaNInf)
			}
			m.data[i*c+j] = v
		}
	}

	return m, nil
}

// ToGonum copies m into a new *mat.Dense, converting every element to float64.
// Integer values beyond 2^53 lose precision in the conversion.
//
// Errors: ErrNilMatrix, or any At error from a custom Matrix implementation.
// Complexity: O(r*c).
func ToGonum[T Number](m Matrix[T]) (*mat.Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}
	r, c := m.Rows(), m.Cols()
	if r <= 0 || c <= 0 {
		return nil, fmt.Errorf("ToGonum: %dx%d: %w", r, c, ErrInvalidDimensions)
	}
	buf := make([]float64, r*c)

	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return nil, err
			}
			buf[i*c+j] = float64(v)
		}
	}

	return mat.NewDense(r, c, buf), nil
}
