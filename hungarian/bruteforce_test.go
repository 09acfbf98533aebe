package hungarian_test

import (
	"testing"

	"github.com/katalvlaran/assignment/hungarian"
	"github.com/katalvlaran/assignment/matrix"
	"github.com/stretchr/testify/require"
)

// TestBruteForce_WorkedExample checks the reference solver on the 3×3 example.
func TestBruteForce_WorkedExample(t *testing.T) {
	res, err := hungarian.BruteForce(dense(t, [][]int{
		{1, 2, 3},
		{2, 4, 6},
		{3, 6, 9},
	}))
	require.NoError(t, err)
	require.Equal(t, 10, res.Cost)
	require.Equal(t, []int{2, 1, 0}, res.Columns)
	require.NoError(t, hungarian.ValidatePermutation(res.Assignment))
}

// TestBruteForce_TiesPickLexicographicallySmallest: every permutation of a
// constant matrix ties, so the identity wins.
func TestBruteForce_TiesPickLexicographicallySmallest(t *testing.T) {
	rows := make([][]int, 5)
	for r := range rows {
		rows[r] = []int{7, 7, 7, 7, 7}
	}
	res, err := hungarian.BruteForce(dense(t, rows))
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 2, 3, 4}, res.Columns)
	require.Equal(t, 35, res.Cost)
}

// TestBruteForce_Errors covers shape validation and the size cap.
func TestBruteForce_Errors(t *testing.T) {
	_, err := hungarian.BruteForce(dense(t, [][]int{{1, 2}}))
	require.ErrorIs(t, err, hungarian.ErrInvalidDimension)

	_, err = hungarian.BruteForce[int](nil)
	require.ErrorIs(t, err, hungarian.ErrInvalidDimension)

	big, err := matrix.NewDense[int](hungarian.MaxBruteForceSize+1, hungarian.MaxBruteForceSize+1)
	require.NoError(t, err)
	_, err = hungarian.BruteForce(big)
	require.ErrorIs(t, err, hungarian.ErrTooLarge)
}

// TestValidatePermutation covers accepted and rejected assignment matrices.
func TestValidatePermutation(t *testing.T) {
	tests := []struct {
		name    string
		rows    [][]int
		wantErr error
	}{
		{"identity", [][]int{{1, 0}, {0, 1}}, nil},
		{"swap", [][]int{{0, 1}, {1, 0}}, nil},
		{"empty row", [][]int{{0, 0}, {1, 1}}, hungarian.ErrNotPermutation},
		{"shared column", [][]int{{1, 0}, {1, 0}}, hungarian.ErrNotPermutation},
		{"non binary", [][]int{{2, 0}, {0, 1}}, hungarian.ErrNotPermutation},
		{"rectangular", [][]int{{1, 0, 0}, {0, 1, 0}}, hungarian.ErrInvalidDimension},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := hungarian.ValidatePermutation(dense(t, tc.rows))
			if tc.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.wantErr)
		})
	}

	require.ErrorIs(t, hungarian.ValidatePermutation(nil), hungarian.ErrInvalidDimension)
}

// TestTotalCost covers the sum and its shape/permutation guards.
func TestTotalCost(t *testing.T) {
	cost := dense(t, [][]float64{{1.5, 2}, {3, 4.25}})

	sum, err := hungarian.TotalCost(cost, dense(t, [][]int{{0, 1}, {1, 0}}))
	require.NoError(t, err)
	require.Equal(t, 5.0, sum)

	_, err = hungarian.TotalCost(cost, dense(t, [][]int{{1, 1}, {0, 0}}))
	require.ErrorIs(t, err, hungarian.ErrNotPermutation)

	_, err = hungarian.TotalCost(cost, dense(t, [][]int{{1}}))
	require.ErrorIs(t, err, hungarian.ErrInvalidDimension)
}
