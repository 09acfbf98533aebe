package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/assignment/matrix"
)

// ExampleNewDenseFromRows builds a small cost matrix and reads it back.
func ExampleNewDenseFromRows() {
	m, err := matrix.NewDenseFromRows([][]int{
		{1, 2, 3},
		{2, 4, 6},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	v, _ := m.At(1, 2)
	fmt.Println(m.Rows(), m.Cols(), v)
	fmt.Print(m)

	// Output:
	// 2 3 6
	// [1, 2, 3]
	// [2, 4, 6]
}

// ExampleValidateSquare shows the sentinel returned for a rectangular matrix.
func ExampleValidateSquare() {
	m, _ := matrix.NewDense[float64](2, 3)
	fmt.Println(matrix.ValidateSquare[float64](m))

	// Output:
	// ValidateSquare: 2x3: matrix: matrix is not square
}
