package hungarian

import "fmt"

// markGrid is the mutable state of one solve: an n×n grid of marks plus the
// row/column coverage vectors.
//
// Invariant: at most one Starred cell per row and per column, after every
// single mutation. star() enforces it; starInRow/starInCol mirror the marks
// so lookups never rescan a row or column. Because of the invariant, the
// mirrors give the same answer a row-major scan would.
type markGrid struct {
	n     int
	marks []Mark // row-major, len n*n

	rowCovered  []bool
	colCovered  []bool
	coveredCols int // number of true entries in colCovered

	starInRow  []int // column of the star in row r, or -1
	starInCol  []int // row of the star in column c, or -1
	primeInRow []int // column of the prime in row r, or -1
	stars      int   // current matching size

	onMutate func(g *markGrid) // called after each mark mutation; nil outside tests
}

func newMarkGrid(n int) *markGrid {
	g := &markGrid{
		n:          n,
		marks:      make([]Mark, n*n),
		rowCovered: make([]bool, n),
		colCovered: make([]bool, n),
		starInRow:  make([]int, n),
		starInCol:  make([]int, n),
		primeInRow: make([]int, n),
	}
	var i int
	for i = 0; i < n; i++ {
		g.starInRow[i] = -1
		g.starInCol[i] = -1
		g.primeInRow[i] = -1
	}

	return g
}

func (g *markGrid) at(r, c int) Mark { return g.marks[r*g.n+c] }

func (g *markGrid) mutated() {
	if g.onMutate != nil {
		g.onMutate(g)
	}
}

// star marks (r,c) Starred. The cell may currently be Unmarked or Primed.
// Panics if row r or column c already holds a star: that is a solver bug,
// never a consequence of user input.
func (g *markGrid) star(r, c int) {
	if g.starInRow[r] >= 0 || g.starInCol[c] >= 0 {
		panic(fmt.Sprintf("hungarian: second star at (%d,%d): row star col %d, col star row %d",
			r, c, g.starInRow[r], g.starInCol[c]))
	}
	if g.primeInRow[r] == c {
		g.primeInRow[r] = -1
	}
	g.marks[r*g.n+c] = Starred
	g.starInRow[r] = c
	g.starInCol[c] = r
	g.stars++
	g.mutated()
}

// unstar clears the star at (r,c).
func (g *markGrid) unstar(r, c int) {
	g.marks[r*g.n+c] = Unmarked
	g.starInRow[r] = -1
	g.starInCol[c] = -1
	g.stars--
	g.mutated()
}

// prime marks the zero at (r,c) Primed.
func (g *markGrid) prime(r, c int) {
	g.marks[r*g.n+c] = Primed
	g.primeInRow[r] = c
	g.mutated()
}

// clearPrimes turns every Primed cell back to Unmarked.
// Each row holds at most one prime, so the mirror locates all of them.
func (g *markGrid) clearPrimes() {
	var r int
	for r = 0; r < g.n; r++ {
		if c := g.primeInRow[r]; c >= 0 {
			g.marks[r*g.n+c] = Unmarked
			g.primeInRow[r] = -1
		}
	}
	g.mutated()
}

func (g *markGrid) coverRow(r int) { g.rowCovered[r] = true }

func (g *markGrid) uncoverCol(c int) {
	if g.colCovered[c] {
		g.colCovered[c] = false
		g.coveredCols--
	}
}

// clearCovers uncovers every row and column.
func (g *markGrid) clearCovers() {
	var i int
	for i = 0; i < g.n; i++ {
		g.rowCovered[i] = false
		g.colCovered[i] = false
	}
	g.coveredCols = 0
}

// coverStarredColumns covers each column holding a star and returns the
// covered-column count, recomputed from scratch.
func (g *markGrid) coverStarredColumns() int {
	var c int
	g.coveredCols = 0
	for c = 0; c < g.n; c++ {
		if g.starInCol[c] >= 0 {
			g.colCovered[c] = true
			g.coveredCols++
		}
	}

	return g.coveredCols
}
