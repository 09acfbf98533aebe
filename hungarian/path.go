package hungarian

import "fmt"

// buildPath constructs the alternating sequence that starts at the primed
// zero z (whose row holds no star):
//
//	prime(z) → star in z's column → prime in that star's row → star in its column → …
//
// It stops at the first prime whose column holds no star, so the path always
// has odd length with primes at even indices and stars at odd ones.
//
// Every star met here sits in a covered row (its column was reopened by a
// detour through that row's prime), so the prime lookup cannot miss; a miss
// means the grid is corrupt and panics.
// Complexity: O(n) with the row/column mirrors.
func (s *solver[T]) buildPath(z cell) []cell {
	var (
		g    = s.grid
		path = []cell{z}
		col  = z.col
		r, c int
	)
	for {
		if r = g.starInCol[col]; r < 0 {
			return path
		}
		path = append(path, cell{row: r, col: col})

		if c = g.primeInRow[r]; c < 0 {
			panic(fmt.Sprintf("hungarian: star (%d,%d) on path has no prime in its row", r, col))
		}
		path = append(path, cell{row: r, col: c})
		col = c
	}
}

// flipPath unstars every starred cell of path, then stars every primed one.
// Unstarring first keeps at most one star per row and column after each
// single mutation: once the path stars are gone, each prime's row and column
// are free (the head prime's row never had a star, the tail prime's column
// never had one). The matching grows by exactly one.
func (s *solver[T]) flipPath(path []cell) {
	var i int
	for i = 1; i < len(path); i += 2 {
		s.grid.unstar(path[i].row, path[i].col)
	}
	for i = 0; i < len(path); i += 2 {
		s.grid.star(path[i].row, path[i].col)
	}
}
