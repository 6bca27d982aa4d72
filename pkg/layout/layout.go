// Package layout maps between grid cells and pixel space.
package layout

import (
	"math"

	"life-canvas/pkg/core"
)

// epsilon absorbs float error when a surface divides evenly into cells.
const epsilon = 1e-9

// Surface is the pixel size of the area a grid is drawn onto.
type Surface struct {
	W float64
	H float64
}

// Valid reports whether both sides are positive.
func (s Surface) Valid() bool { return s.W > 0 && s.H > 0 }

// Geometry is the pixel placement of a grid: the edge length of one cell and
// the offset of the grid's top-left corner.
type Geometry struct {
	CellLength float64
	OriginX    float64
	OriginY    float64
}

// Rect is an axis-aligned pixel rectangle.
type Rect struct {
	X, Y, W, H float64
}

// Compute fits columns cells across surfaceWidth, centering horizontally.
// Non-positive inputs yield the zero Geometry.
func Compute(columns int, surfaceWidth float64) Geometry {
	if columns <= 0 || surfaceWidth <= 0 {
		return Geometry{}
	}
	cell := surfaceWidth / float64(columns)
	return Geometry{
		CellLength: cell,
		OriginX:    (surfaceWidth - cell*float64(columns)) / 2,
		OriginY:    0,
	}
}

// PixelToCell returns the cell containing pixel (x, y). The result is not
// bounds-checked; callers must use Grid.InBounds before indexing. A zero
// geometry maps every point to (-1, -1).
func PixelToCell(x, y float64, geom Geometry) core.Coordinate {
	if geom.CellLength <= 0 {
		return core.Coordinate{Row: -1, Col: -1}
	}
	return core.Coordinate{
		Row: int(math.Floor((y - geom.OriginY) / geom.CellLength)),
		Col: int(math.Floor((x - geom.OriginX) / geom.CellLength)),
	}
}

// CellRect returns the pixel rectangle covered by cell c.
func (g Geometry) CellRect(c core.Coordinate) Rect {
	return Rect{
		X: g.OriginX + float64(c.Col)*g.CellLength,
		Y: g.OriginY + float64(c.Row)*g.CellLength,
		W: g.CellLength,
		H: g.CellLength,
	}
}

// RowsFor returns how many whole rows fit in surfaceHeight.
func (g Geometry) RowsFor(surfaceHeight float64) int {
	if g.CellLength <= 0 || surfaceHeight <= 0 {
		return 0
	}
	return int(math.Floor(surfaceHeight/g.CellLength + epsilon))
}

// GridSize returns the pixel extent of a grid drawn with g.
func (g Geometry) GridSize(grid *core.Grid) (float64, float64) {
	return float64(grid.W) * g.CellLength, float64(grid.H) * g.CellLength
}

// FitRows derives the row count of a resized grid from the surface: as many
// rows as fit once the new column count fixes the cell length. Existing
// cells shift down one row on expand, leaving a dead border on top.
type FitRows struct {
	Surface Surface
}

// Rows returns floor(H / (W / cols)), at least 1. An invalid surface keeps cur.
func (f FitRows) Rows(cur, cols int) int {
	if !f.Surface.Valid() {
		return cur
	}
	rows := Compute(cols, f.Surface.W).RowsFor(f.Surface.H)
	if rows < 1 {
		rows = 1
	}
	return rows
}

// RowMargin is one row.
func (FitRows) RowMargin() int { return 1 }
