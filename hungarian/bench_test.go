// Package hungarian_test provides benchmarks for the solver, using
// deterministic random cost matrices.
package hungarian_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/assignment/hungarian"
	"github.com/katalvlaran/assignment/matrix"
)

// benchSizes are the matrix sizes to benchmark.
var benchSizes = []int{16, 64, 128}

// sinks to defeat dead-code elimination
var (
	sinkA *matrix.Dense[int]
	sinkR hungarian.Result[float64]
)

func BenchmarkSolve(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			cost := randomCosts(b, rand.New(rand.NewSource(1337)), n, 1000)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				a, err := hungarian.Solve(cost)
				if err != nil {
					b.Fatal(err)
				}
				sinkA = a
			}
		})
	}
}

// BenchmarkSolve_Degenerate uses few distinct values, which forces many
// adjustment rounds with heavy ties.
func BenchmarkSolve_Degenerate(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			cost := randomCosts(b, rand.New(rand.NewSource(4242)), n, 3)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				a, err := hungarian.Solve(cost)
				if err != nil {
					b.Fatal(err)
				}
				sinkA = a
			}
		})
	}
}

func BenchmarkAssignFloat(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			rng := rand.New(rand.NewSource(7))
			rows := make([][]float64, n)
			for r := range rows {
				rows[r] = make([]float64, n)
				for c := range rows[r] {
					rows[r][c] = rng.Float64() * 100
				}
			}
			cost := dense(b, rows)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				res, err := hungarian.Assign(cost)
				if err != nil {
					b.Fatal(err)
				}
				sinkR = res
			}
		})
	}
}
