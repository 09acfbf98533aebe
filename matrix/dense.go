// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Enforce a numeric policy (optional rejection of NaN/Inf) from a single source of truth.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; NewDenseFromRows: O(r*c); At/Set: O(1); Clone: O(r*c).

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// DefaultValidateNaNInf is the numeric policy applied by every constructor:
// Set and Apply reject NaN/±Inf. It never fires for integer element types.
const DefaultValidateNaNInf = true

// ---------- error context tags ----------

const (
	ctxAt      = "At"       // method tag used in error wrappers
	ctxSet     = "Set"      // method tag used in error wrappers
	ctxApply   = "Apply"    // method tag used in error wrappers
	ctxFromRow = "FromRows" // ctor tag for NewDenseFromRows
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Stable, human-friendly messages; preserves the sentinel via %w.
// Complexity: O(1).
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// IsFinite reports whether v is neither NaN nor ±Inf.
// Integer values always pass; the float64 conversion is exact for NaN/Inf detection.
func IsFinite[T Number](v T) bool {
	f := float64(v)

	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//   - validateNaNInf enables NaN/Inf rejection in Set and Apply.
type Dense[T Number] struct {
	r, c           int  // row and column counts (>0)
	data           []T  // contiguous row-major storage (len == r*c)
	validateNaNInf bool // numeric guard: reject NaN/Inf when true
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix[float64] = (*Dense[float64])(nil)
	_ Matrix[int]     = (*Dense[int])(nil)
	_ fmt.Stringer    = (*Dense[int])(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
// MAIN DESCRIPTION:
//   - Public constructor for Dense with strict shape validation and default numeric policy.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: allocate zero-filled buffer and initialize policy.
//
// Behavior highlights:
//   - No panics on user errors; returns sentinel errors.
//   - Public constructor forbids empty dimensions to avoid accidental 0×0 matrices.
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense[T Number](rows, cols int) (*Dense[T], error) {
	// Validate shape.
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", rows, cols, ErrInvalidDimensions)
	}

	// make() zero-fills the flat buffer deterministically.
	return &Dense[T]{
		r:              rows,
		c:              cols,
		data:           make([]T, rows*cols),
		validateNaNInf: DefaultValidateNaNInf,
	}, nil
}

// NewDenseFromRows builds a Dense from row literals, copying every value.
// MAIN DESCRIPTION:
//   - Convenience constructor for tests, codecs and small literal inputs.
//
// Implementation:
//   - Stage 1: reject an empty outer slice or an empty first row.
//   - Stage 2: check every row has the length of the first one (row-length consistency).
//   - Stage 3: copy rows into the flat buffer, enforcing the numeric policy.
//
// Errors:
//   - ErrInvalidDimensions for empty or ragged input.
//   - ErrNaNInf for non-finite float values.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDenseFromRows[T Number](rows [][]T) (*Dense[T], error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("Dense.%s: empty input: %w", ctxFromRow, ErrInvalidDimensions)
	}
	var (
		r = len(rows)
		c = len(rows[0])
	)
	m, err := NewDense[T](r, c)
	if err != nil {
		return nil, err
	}

	var i, j int
	for i = 0; i < r; i++ {
		if len(rows[i]) != c {
			return nil, fmt.Errorf("Dense.%s: row %d has %d columns, want %d: %w",
				ctxFromRow, i, len(rows[i]), c, ErrInvalidDimensions)
		}
		for j = 0; j < c; j++ {
			if m.validateNaNInf && !IsFinite(rows[i][j]) {
				return nil, denseErrorf(ctxFromRow, i, j, ErrNaNInf)
			}
			m.data[i*c+j] = rows[i][j]
		}
	}

	return m, nil
}

// Rows returns the row count; 0 for a nil receiver. No side effects.
// Complexity: O(1).
func (m *Dense[T]) Rows() int {
	if m == nil {
		return 0
	}

	return m.r
}

// Cols returns the column count; 0 for a nil receiver. No side effects.
// Complexity: O(1).
func (m *Dense[T]) Cols() int {
	if m == nil {
		return 0
	}

	return m.c
}

// Shape packs Rows() and Cols() into a single call for convenience.
// Complexity: O(1).
func (m *Dense[T]) Shape() (rows, cols int) { return m.Rows(), m.Cols() }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Returns the bare sentinel; public methods wrap it with coordinates.
// Complexity: O(1).
func (m *Dense[T]) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// MAIN DESCRIPTION:
//   - Safe element read at coordinates.
//
// Behavior highlights:
//   - Never panics on out-of-range; returns sentinel error.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense[T]) At(row, col int) (T, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		var zero T

		return zero, denseErrorf(ctxAt, row, col, err) // wrap with context
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns an error (bounds or numeric policy).
// MAIN DESCRIPTION:
//   - Safe element write with optional finite-only policy.
//
// Implementation:
//   - Stage 1: compute offset via indexOf (bounds check).
//   - Stage 2: enforce numeric policy (reject NaN/±Inf when enabled).
//   - Stage 3: write into flat buffer.
//
// Errors:
//   - ErrOutOfRange for bounds; ErrNaNInf for invalid numbers.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense[T]) Set(row, col int, v T) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err) // wrap with context
	}
	// Numeric policy: optional finite-only enforcement.
	if m.validateNaNInf && !IsFinite(v) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[off] = v // direct flat write

	return nil
}

// Clone returns a deep copy (new buffer, same numeric policy).
// Mutations of the clone never affect the original.
// Complexity: Time O(r*c), Space O(r*c).
func (m *Dense[T]) Clone() Matrix[T] {
	return m.Copy()
}

// Copy is Clone with the concrete return type, so callers keep access to
// Dense-only methods (Shape, Row, Do, Apply) without a type assertion.
// Complexity: O(r*c).
func (m *Dense[T]) Copy() *Dense[T] {
	cp := make([]T, len(m.data))
	copy(cp, m.data)

	return &Dense[T]{
		r:              m.r,
		c:              m.c,
		data:           cp,
		validateNaNInf: m.validateNaNInf, // preserve guard policy
	}
}

// Row returns a copy of row i, or ErrOutOfRange.
// Complexity: O(c).
func (m *Dense[T]) Row(i int) ([]T, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf("Row", i, 0, ErrOutOfRange)
	}
	out := make([]T, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// ToRows materializes the matrix as a fresh slice of rows.
// Complexity: O(r*c).
func (m *Dense[T]) ToRows() [][]T {
	out := make([][]T, m.r)
	var i int
	for i = 0; i < m.r; i++ {
		out[i] = make([]T, m.c)
		copy(out[i], m.data[i*m.c:(i+1)*m.c])
	}

	return out
}

// String renders rows as "[a, b, c]\n" lines for diagnostics.
// Not for hot paths; fixed traversal order.
// Complexity: O(r*c).
func (m *Dense[T]) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ { // iterate rows deterministically
		b.WriteString(_fmtRowOpen) // open row
		base = i * m.c
		for j = 0; j < m.c; j++ { // iterate cols
			fmt.Fprintf(&b, "%v", m.data[base+j])
			if j+1 < m.c {
				b.WriteString(_fmtSep) // separate values with comma + space
			}
		}
		b.WriteString(_fmtRowClose) // close row
	}

	return b.String()
}

// Do visits each element (i,j) in row-major order and calls f(i,j,v).
// MAIN DESCRIPTION:
//   - Read-only visitor; stops early when f returns false.
//
// Determinism:
//   - Fixed i→j order.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func (m *Dense[T]) Do(f func(i, j int, v T) bool) {
	var i, j, base int

	for i = 0; i < m.r; i++ { // iterate rows deterministically
		base = i * m.c            // flat base offset for row i
		for j = 0; j < m.c; j++ { // iterate columns
			if !f(i, j, m.data[base+j]) {
				return // early exit requested by caller
			}
		}
	}
}

// Apply replaces each element with f(i,j,v) in-place.
// MAIN DESCRIPTION:
//   - In-place map with policy enforcement and deterministic order.
//
// Behavior highlights:
//   - Respects validateNaNInf (rejects NaN/±Inf when enabled).
//   - Early error aborts; elements written before the error remain updated.
//
// Errors:
//   - ErrNaNInf when the transformer produced a non-finite value.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func (m *Dense[T]) Apply(f func(i, j int, v T) T) error {
	var i, j, base int
	var nv T

	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			nv = f(i, j, m.data[base+j])
			if m.validateNaNInf && !IsFinite(nv) {
				return denseErrorf(ctxApply, i, j, ErrNaNInf)
			}
			m.data[base+j] = nv
		}
	}

	return nil
}
