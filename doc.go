// Package assignment solves the linear assignment problem: given an n×n cost
// matrix, pick one cell per row and per column so that the total cost is
// minimal.
//
// 🚀 What is in here?
//
//	A small generic library plus a command-line front end:
//		• Kuhn–Munkres (Hungarian) solver, O(n³), for any integer or float type
//		• Brute-force reference solver for small n
//		• Permutation checks and total-cost evaluation of external assignments
//		• Dense matrices with gonum interop
//
// ✨ Why choose assignment?
//
//   - Deterministic – identical input, identical assignment, every time
//   - Safe – the caller's matrix is never mutated, no shared state
//   - Observable – plug any structured logger in with WithLogger
//
// Layout:
//
//	hungarian/         — Solve, Assign, BruteForce, TotalCost, ValidatePermutation
//	matrix/            — generic Dense matrix, validators, gonum bridge
//	cmd/hungarian/     — CLI: text/yaml/json in, assignment out
//	internal/codec/    — input/output formats used by the CLI
//	internal/config/   — YAML configuration for the CLI
//	internal/logging/  — log/slog adapter for hungarian.Logger
//
// Quick example:
//
//	cost, _ := matrix.NewDenseFromRows([][]int{
//		{1, 2, 3},
//		{2, 4, 6},
//		{3, 6, 9},
//	})
//	res, _ := hungarian.Assign(cost)
//	// res.Columns == [2 1 0], res.Cost == 10
//
//	go install github.com/katalvlaran/assignment/cmd/hungarian@latest
package assignment
