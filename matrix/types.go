// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by the dense storage and its callers.
// This file contains ONLY the element constraint and the public Matrix
// interface. Errors live in errors.go, storage in dense.go.
package matrix

import "golang.org/x/exp/constraints"

// Number is the set of element types a Matrix may hold.
// Any fixed-width integer or floating-point type qualifies; overflow follows
// Go's wrap-around rules for integers and IEEE-754 for floats.
type Number interface {
	constraints.Integer | constraints.Float
}

// Matrix represents a two-dimensional mutable array of T values.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix[T Number] interface {
	// Rows returns the number of rows in the matrix.
	// Complexity: O(1).
	Rows() int

	// Cols returns the number of columns in the matrix.
	// Complexity: O(1).
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	// Complexity: O(1).
	At(i, j int) (T, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	// Complexity: O(1).
	Set(i, j int, v T) error

	// Clone returns a deep copy of the matrix.
	// The returned Matrix is independent of the original.
	// Complexity: O(rows*cols).
	Clone() Matrix[T]
}
