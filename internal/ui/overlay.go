//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	pcore "life-canvas/pkg/core"
	"life-canvas/pkg/layout"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

type cellLocator interface {
	CellAt(x, y float64) (pcore.Coordinate, bool)
	Geometry() layout.Geometry
	Paused() bool
	Generation() int
}

// Overlay highlights the cell under the cursor while editing and shows the
// pause banner.
type Overlay struct {
	source    cellLocator
	showCoord bool

	hover    pcore.Coordinate
	hovering bool
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(source cellLocator) *Overlay {
	return &Overlay{source: source}
}

// Update tracks the hovered cell. Key 1 toggles the coordinate readout.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showCoord = !o.showCoord
	}
	mx, my := ebiten.CursorPosition()
	o.hover, o.hovering = o.source.CellAt(float64(mx), float64(my))
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.source.Paused() {
		return
	}
	face := basicfont.Face7x13
	banner := fmt.Sprintf("PAUSED  gen %d", o.source.Generation())
	text.Draw(screen, banner, face, overlayPadding, overlayPadding+overlayBaseline, bannerColor)

	if !o.hovering {
		return
	}
	rect := o.source.Geometry().CellRect(o.hover)
	vector.StrokeRect(screen, float32(rect.X), float32(rect.Y), float32(rect.W), float32(rect.H), hoverStroke, hoverColor, false)
	if o.showCoord {
		label := fmt.Sprintf("(%d,%d)", o.hover.Row, o.hover.Col)
		text.Draw(screen, label, face, int(rect.X+rect.W)+overlayPadding/2, int(rect.Y)+overlayBaseline, hoverColor)
	}
}

var (
	bannerColor = color.RGBA{R: 255, G: 200, B: 80, A: 255}
	hoverColor  = color.RGBA{R: 90, G: 170, B: 240, A: 255}
)

const (
	overlayPadding  = 8
	overlayBaseline = 13
	hoverStroke     = 2
)
