//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// EbitenSurface paints onto an ebiten image.
type EbitenSurface struct {
	dst *ebiten.Image
}

// NewEbitenSurface wraps dst.
func NewEbitenSurface(dst *ebiten.Image) *EbitenSurface {
	return &EbitenSurface{dst: dst}
}

// FillRect draws a filled rectangle without antialiasing.
func (s *EbitenSurface) FillRect(x, y, w, h float64, c color.Color) {
	if w <= 0 || h <= 0 {
		return
	}
	vector.DrawFilledRect(s.dst, float32(x), float32(y), float32(w), float32(h), c, false)
}
