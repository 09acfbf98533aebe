// Package hungarian defines the sentinel errors, cell marks, options and
// result types shared by the Kuhn–Munkres solver and its reference solvers.
//
// Errors (sentinel):
//
//	– ErrInvalidDimension  the cost matrix is nil, empty or not square.
//	– ErrNonFiniteCost     a float cost matrix holds NaN or ±Inf.
//	– ErrNotPermutation    an assignment matrix is not a 0/1 permutation matrix.
//	– ErrTooLarge          BruteForce was asked for more than MaxBruteForceSize rows.
//
// Options:
//
//	– Logger: structured logger receiving Debug records of the solver phases.
//	  Defaults to a no-op logger.
package hungarian

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/assignment/matrix"
)

// Sentinel errors returned by the solvers.
var (
	// ErrInvalidDimension indicates a nil, empty or non-square cost matrix.
	// It is always raised before any working state is built.
	ErrInvalidDimension = errors.New("hungarian: cost matrix must be square and non-empty")

	// ErrNonFiniteCost indicates a NaN or ±Inf entry in a float cost matrix.
	ErrNonFiniteCost = errors.New("hungarian: cost matrix holds NaN or Inf")

	// ErrNotPermutation indicates an assignment matrix that does not hold
	// exactly one 1 per row and per column with zeros elsewhere.
	ErrNotPermutation = errors.New("hungarian: assignment is not a permutation matrix")

	// ErrTooLarge indicates BruteForce was called with n > MaxBruteForceSize.
	ErrTooLarge = errors.New("hungarian: matrix too large for exhaustive search")
)

// MaxBruteForceSize bounds BruteForce: 10! = 3 628 800 permutations.
const MaxBruteForceSize = 10

// Mark is the tri-state annotation carried by every cell of the mark grid.
type Mark uint8

const (
	// Unmarked is the zero value: the cell takes no part in the matching.
	Unmarked Mark = iota

	// Starred marks a zero-cost cell tentatively included in the matching.
	// At most one Starred cell exists per row and per column.
	Starred

	// Primed marks a zero found while probing for an augmenting path.
	Primed
)

// String implements fmt.Stringer.
func (m Mark) String() string {
	switch m {
	case Unmarked:
		return "unmarked"
	case Starred:
		return "starred"
	case Primed:
		return "primed"
	default:
		return fmt.Sprintf("Mark(%d)", uint8(m))
	}
}

// Logger receives structured records from the solver.
// Every method accepts key-value pairs, compatible with slog and zap's sugared logger.
type Logger interface {
	Debug(msg string, keysAndValues ...any)
	Info(msg string, keysAndValues ...any)
	Warn(msg string, keysAndValues ...any)
	Error(msg string, keysAndValues ...any)
}

// nopLogger discards everything.
type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Info(string, ...any)  {}
func (nopLogger) Warn(string, ...any)  {}
func (nopLogger) Error(string, ...any) {}

// Options configures a solve call.
type Options struct {
	Logger Logger // receives Debug records per phase; never nil after DefaultOptions
}

// Option represents a functional option for configuring Solve and Assign.
type Option func(*Options)

// WithLogger routes solver records to l. A nil l keeps the no-op logger.
func WithLogger(l Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// DefaultOptions returns Options with a no-op logger.
func DefaultOptions() Options {
	return Options{Logger: nopLogger{}}
}

// Result is the full outcome of an assignment solve.
type Result[T matrix.Number] struct {
	// Assignment is the n×n 0/1 permutation matrix; 1 at (r,c) matches row r to column c.
	Assignment *matrix.Dense[int]

	// Columns maps each row to its matched column: Columns[r] == c.
	Columns []int

	// Cost is the sum of the original costs of the matched cells.
	Cost T
}
