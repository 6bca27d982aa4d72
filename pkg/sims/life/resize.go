package life

import (
	"errors"
	"fmt"

	"life-canvas/pkg/core"
)

// ErrCannotShrink signals that a grid is already at the minimum size. It is
// not fatal; callers usually ignore it.
var ErrCannotShrink = errors.New("grid is too small to shrink")

// RowPolicy decides the height of a resized grid.
type RowPolicy interface {
	// Rows returns the row count for a grid that currently has cur rows and
	// is being resized to cols columns.
	Rows(cur, cols int) int
	// RowMargin is the number of rows added above existing cells on expand
	// (and removed on shrink).
	RowMargin() int
}

// KeepRows preserves the row count so only the width changes.
type KeepRows struct{}

// Rows returns cur unchanged.
func (KeepRows) Rows(cur, _ int) int { return cur }

// RowMargin is zero: rows are not shifted.
func (KeepRows) RowMargin() int { return 0 }

// Expand returns a grid two columns wider with every cell shifted one column
// right and policy.RowMargin() rows down. Cells falling outside the new
// height are dropped.
func Expand(g *core.Grid, policy RowPolicy) (*core.Grid, error) {
	if policy == nil {
		policy = KeepRows{}
	}
	width := g.W + 2
	next, err := core.NewGrid(policy.Rows(g.H, width), width)
	if err != nil {
		return nil, fmt.Errorf("expand: %w", err)
	}
	margin := policy.RowMargin()
	copyShifted(next, g, margin, 1)
	return next, nil
}

// Shrink returns a grid two columns narrower, cropped around the center. It
// returns ErrCannotShrink when either dimension is 2 or less.
func Shrink(g *core.Grid, policy RowPolicy) (*core.Grid, error) {
	if g.H <= 2 || g.W <= 2 {
		return nil, fmt.Errorf("shrink %dx%d: %w", g.H, g.W, ErrCannotShrink)
	}
	if policy == nil {
		policy = KeepRows{}
	}
	width := g.W - 2
	next, err := core.NewGrid(policy.Rows(g.H, width), width)
	if err != nil {
		return nil, fmt.Errorf("shrink: %w", err)
	}
	margin := policy.RowMargin()
	copyShifted(next, g, -margin, -1)
	return next, nil
}

// copyShifted writes every live cell (r, c) of src to (r+dr, c+dc) in dst
// when that position exists.
func copyShifted(dst, src *core.Grid, dr, dc int) {
	cells := dst.Cells()
	for _, live := range src.LiveCells() {
		to := core.Coordinate{Row: live.Row + dr, Col: live.Col + dc}
		if dst.InBounds(to) {
			cells[dst.Index(to)] = true
		}
	}
}
