// Package life implements Conway's Game of Life (B3/S23) on a bounded grid.
//
// Every function is pure: inputs are never mutated and each call returns a
// freshly allocated grid.
package life

import "life-canvas/pkg/core"

// NeighborsOf lists the in-bounds Moore neighbors of c. Offsets are scanned
// row-major (dr then dc ascending) and cells past the edge are dropped, so
// corners have 3 neighbors and a 1x1 grid has none.
func NeighborsOf(c core.Coordinate, g *core.Grid) []core.Coordinate {
	neighbors := make([]core.Coordinate, 0, 8)
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			n := core.Coordinate{Row: c.Row + dr, Col: c.Col + dc}
			if g.InBounds(n) {
				neighbors = append(neighbors, n)
			}
		}
	}
	return neighbors
}

// LiveNeighbors counts the live cells among the neighbors of c.
func LiveNeighbors(c core.Coordinate, g *core.Grid) int {
	cells := g.Cells()
	count := 0
	for _, n := range NeighborsOf(c, g) {
		if cells[g.Index(n)] {
			count++
		}
	}
	return count
}

// NextState applies the B3/S23 rule.
func NextState(alive bool, liveNeighbors int) bool {
	if alive {
		return liveNeighbors == 2 || liveNeighbors == 3
	}
	return liveNeighbors == 3
}

// Step advances g by one generation. All neighbor counts read from g, which
// is left untouched.
func Step(g *core.Grid) *core.Grid {
	next, err := core.NewGrid(g.H, g.W)
	if err != nil {
		// g already satisfies the dimension invariant.
		panic(err)
	}
	src := g.Cells()
	dst := next.Cells()
	for r := 0; r < g.H; r++ {
		for c := 0; c < g.W; c++ {
			coord := core.Coordinate{Row: r, Col: c}
			idx := g.Index(coord)
			dst[idx] = NextState(src[idx], LiveNeighbors(coord, g))
		}
	}
	return next
}

// StepN applies Step n times. A non-positive n returns a clone of g.
func StepN(g *core.Grid, n int) *core.Grid {
	cur := g.Clone()
	for i := 0; i < n; i++ {
		cur = Step(cur)
	}
	return cur
}
