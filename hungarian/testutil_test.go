package hungarian_test

import (
	"fmt"
	"math/rand"
	"sync"
	"testing"

	"github.com/katalvlaran/assignment/matrix"
	"github.com/stretchr/testify/require"
)

// dense builds a Dense from row literals or fails the test.
func dense[T matrix.Number](t testing.TB, rows [][]T) *matrix.Dense[T] {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)

	return m
}

// randomCosts returns an n×n matrix with entries in [0, limit) from a fixed seed.
func randomCosts(t testing.TB, rng *rand.Rand, n, limit int) *matrix.Dense[int] {
	t.Helper()
	rows := make([][]int, n)
	for r := range rows {
		rows[r] = make([]int, n)
		for c := range rows[r] {
			rows[r][c] = rng.Intn(limit)
		}
	}

	return dense(t, rows)
}

// requirePermutation asserts exactly one 1 per row and column, zeros elsewhere.
func requirePermutation(t testing.TB, m *matrix.Dense[int]) {
	t.Helper()
	n := m.Rows()
	require.Equal(t, n, m.Cols())
	colOnes := make([]int, n)
	for r, row := range m.ToRows() {
		rowOnes := 0
		for c, v := range row {
			require.Containsf(t, []int{0, 1}, v, "value %d at (%d,%d)", v, r, c)
			rowOnes += v
			colOnes[c] += v
		}
		require.Equalf(t, 1, rowOnes, "row %d", r)
	}
	for c, ones := range colOnes {
		require.Equalf(t, 1, ones, "column %d", c)
	}
}

// emptyMatrix is a 0×0 Matrix that Dense cannot represent.
type emptyMatrix struct{}

var _ matrix.Matrix[int] = emptyMatrix{}

func (emptyMatrix) Rows() int { return 0 }
func (emptyMatrix) Cols() int { return 0 }
func (emptyMatrix) At(i, j int) (int, error) { return 0, matrix.ErrOutOfRange }
func (emptyMatrix) Set(i, j int, v int) error { return matrix.ErrOutOfRange }
func (emptyMatrix) Clone() matrix.Matrix[int] { return emptyMatrix{} }

// recordingLogger keeps every message it receives.
type recordingLogger struct {
	mu   sync.Mutex
	msgs []string
}

func (l *recordingLogger) record(level, msg string, kv ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.msgs = append(l.msgs, fmt.Sprintf("%s %s %v", level, msg, kv))
}

func (l *recordingLogger) Debug(msg string, kv ...any) { l.record("DEBUG", msg, kv...) }
func (l *recordingLogger) Info(msg string, kv ...any) { l.record("INFO", msg, kv...) }
func (l *recordingLogger) Warn(msg string, kv ...any) { l.record("WARN", msg, kv...) }
func (l *recordingLogger) Error(msg string, kv ...any) { l.record("ERROR", msg, kv...) }
