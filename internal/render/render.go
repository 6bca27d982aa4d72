package render

import (
	"image/color"

	"life-canvas/pkg/core"
	"life-canvas/pkg/layout"
)

// Surface is a drawing target that can fill axis-aligned rectangles.
type Surface interface {
	FillRect(x, y, w, h float64, c color.Color)
}

// Style holds the cell border and fill colors.
type Style struct {
	BorderWidth float64
	Border      color.Color
	Live        color.Color
	Dead        color.Color
}

// DefaultStyle returns the palette used by the GUI.
func DefaultStyle() Style {
	return Style{
		BorderWidth: 1,
		Border:      color.RGBA{R: 40, G: 40, B: 48, A: 255},
		Live:        color.RGBA{R: 240, G: 240, B: 235, A: 255},
		Dead:        color.RGBA{R: 16, G: 16, B: 20, A: 255},
	}
}

// DrawGrid paints every cell of g as a bordered rectangle: the full cell in
// the border color, then the interior in the live or dead color. Borders
// that would swallow the interior leave the cell border-colored.
func DrawGrid(dst Surface, g *core.Grid, geom layout.Geometry, st Style) {
	if geom.CellLength <= 0 {
		return
	}
	bw := st.BorderWidth
	if bw < 0 {
		bw = 0
	}
	cells := g.Cells()
	for r := 0; r < g.H; r++ {
		for c := 0; c < g.W; c++ {
			coord := core.Coordinate{Row: r, Col: c}
			rect := geom.CellRect(coord)
			fill := st.Dead
			if cells[g.Index(coord)] {
				fill = st.Live
			}
			if bw == 0 {
				dst.FillRect(rect.X, rect.Y, rect.W, rect.H, fill)
				continue
			}
			dst.FillRect(rect.X, rect.Y, rect.W, rect.H, st.Border)
			if 2*bw >= rect.W {
				continue
			}
			dst.FillRect(rect.X+bw, rect.Y+bw, rect.W-2*bw, rect.H-2*bw, fill)
		}
	}
}
