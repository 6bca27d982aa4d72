package core

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDimension is returned when a grid is requested with a
	// non-positive height or width.
	ErrInvalidDimension = errors.New("grid dimensions must be positive")
	// ErrNotRectangular is returned when rows of differing lengths are
	// supplied to FromRows.
	ErrNotRectangular = errors.New("grid rows must all have the same length")
)

// Coordinate addresses a cell by row and column.
type Coordinate struct {
	Row int
	Col int
}

// Grid stores a fixed H×W matrix of binary cells in row-major order.
//
// The engine treats a Grid as immutable once it has been returned: every
// operation that changes cells produces a new Grid.
type Grid struct {
	W, H int
	data []bool
}

// NewGrid allocates a blank grid with the given height and width.
func NewGrid(height, width int) (*Grid, error) {
	if height <= 0 || width <= 0 {
		return nil, fmt.Errorf("new grid %dx%d: %w", height, width, ErrInvalidDimension)
	}
	return &Grid{W: width, H: height, data: make([]bool, width*height)}, nil
}

// FromRows builds a grid from a row slice, rejecting empty or jagged input.
func FromRows(rows [][]bool) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("from rows: %w", ErrInvalidDimension)
	}
	width := len(rows[0])
	for i, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("from rows: row %d has %d cells, want %d: %w", i, len(row), width, ErrNotRectangular)
		}
	}
	g, err := NewGrid(len(rows), width)
	if err != nil {
		return nil, err
	}
	for r, row := range rows {
		copy(g.data[r*width:(r+1)*width], row)
	}
	return g, nil
}

// Cells exposes the backing slice in row-major order.
func (g *Grid) Cells() []bool { return g.data }

// Index returns the linear slice index for a coordinate.
func (g *Grid) Index(c Coordinate) int { return c.Row*g.W + c.Col }

// InBounds reports whether c addresses a cell of g.
func (g *Grid) InBounds(c Coordinate) bool {
	return c.Row >= 0 && c.Row < g.H && c.Col >= 0 && c.Col < g.W
}

// Alive reports the state of the cell at c. c must be in bounds.
func (g *Grid) Alive(c Coordinate) bool {
	if !g.InBounds(c) {
		panic(fmt.Sprintf("core: cell %v outside %dx%d grid", c, g.H, g.W))
	}
	return g.data[g.Index(c)]
}

// Set writes the state of the cell at c. It is meant for building a grid
// before it is handed to the engine or the driver.
func (g *Grid) Set(c Coordinate, alive bool) {
	if !g.InBounds(c) {
		panic(fmt.Sprintf("core: cell %v outside %dx%d grid", c, g.H, g.W))
	}
	g.data[g.Index(c)] = alive
}

// Clone returns a deep copy of g.
func (g *Grid) Clone() *Grid {
	data := make([]bool, len(g.data))
	copy(data, g.data)
	return &Grid{W: g.W, H: g.H, data: data}
}

// WithToggled returns a copy of g with the cell at c flipped.
func (g *Grid) WithToggled(c Coordinate) *Grid {
	next := g.Clone()
	next.Set(c, !g.Alive(c))
	return next
}

// Rows returns the cells as a freshly allocated row slice.
func (g *Grid) Rows() [][]bool {
	rows := make([][]bool, g.H)
	for r := range rows {
		rows[r] = append([]bool(nil), g.data[r*g.W:(r+1)*g.W]...)
	}
	return rows
}

// LiveCells lists the coordinates of every live cell in row-major order.
func (g *Grid) LiveCells() []Coordinate {
	var live []Coordinate
	for i, alive := range g.data {
		if alive {
			live = append(live, Coordinate{Row: i / g.W, Col: i % g.W})
		}
	}
	return live
}

// Population counts live cells.
func (g *Grid) Population() int {
	n := 0
	for _, alive := range g.data {
		if alive {
			n++
		}
	}
	return n
}

// Equal reports whether both grids have the same dimensions and cells.
func (g *Grid) Equal(other *Grid) bool {
	if g == nil || other == nil {
		return g == other
	}
	if g.W != other.W || g.H != other.H {
		return false
	}
	for i := range g.data {
		if g.data[i] != other.data[i] {
			return false
		}
	}
	return true
}
