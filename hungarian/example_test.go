package hungarian_test

import (
	"fmt"

	"github.com/katalvlaran/assignment/hungarian"
	"github.com/katalvlaran/assignment/matrix"
)

// ExampleSolve assigns three workers to three jobs at minimum total cost.
func ExampleSolve() {
	cost, _ := matrix.NewDenseFromRows([][]int{
		{1, 2, 3},
		{2, 4, 6},
		{3, 6, 9},
	})

	assignment, err := hungarian.Solve(cost)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Print(assignment)
	// Output:
	// [0, 0, 1]
	// [0, 1, 0]
	// [1, 0, 0]
}

// ExampleAssign reports the row→column map and the total original cost.
func ExampleAssign() {
	cost, _ := matrix.NewDenseFromRows([][]float64{
		{4, 1, 3},
		{2, 0, 5},
		{3, 2, 2},
	})

	res, err := hungarian.Assign(cost)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("columns:", res.Columns)
	fmt.Println("cost:", res.Cost)
	// Output:
	// columns: [1 0 2]
	// cost: 5
}

// ExampleSolve_nonSquare shows the dimension check.
func ExampleSolve_nonSquare() {
	cost, _ := matrix.NewDenseFromRows([][]int{
		{1, 2, 3},
		{4, 5, 6},
	})

	_, err := hungarian.Solve(cost)
	fmt.Println(err)
	// Output:
	// hungarian: cost matrix must be square and non-empty: ValidateSquare: 2x3: matrix: matrix is not square
}
