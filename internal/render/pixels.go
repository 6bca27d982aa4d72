package render

import (
	"image"
	"image/color"
	"math"
)

// ImageSurface paints into an in-memory RGBA image. Rectangle edges are
// rounded to the nearest pixel so adjacent cells tile without gaps.
type ImageSurface struct {
	Img *image.RGBA
}

// NewImageSurface allocates a w×h surface.
func NewImageSurface(w, h int) *ImageSurface {
	return &ImageSurface{Img: image.NewRGBA(image.Rect(0, 0, w, h))}
}

// FillRect fills the rectangle clipped to the image bounds.
func (s *ImageSurface) FillRect(x, y, w, h float64, c color.Color) {
	r := image.Rect(
		int(math.Round(x)), int(math.Round(y)),
		int(math.Round(x+w)), int(math.Round(y+h)),
	).Intersect(s.Img.Bounds())
	if r.Empty() {
		return
	}
	px := rgbaBytes(c)
	for yy := r.Min.Y; yy < r.Max.Y; yy++ {
		base := s.Img.PixOffset(r.Min.X, yy)
		for xx := r.Min.X; xx < r.Max.X; xx++ {
			copy(s.Img.Pix[base:base+4], px[:])
			base += 4
		}
	}
}

// rgbaBytes converts c into premultiplied 8-bit RGBA.
func rgbaBytes(c color.Color) [4]byte {
	r, g, b, a := c.RGBA()
	return [4]byte{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
}
