package pixel

import (
	"image"
	"image/color"

	"github.com/Serapieum-of-alex/cleopatra/colors"
)

// GlyphImage renders a grid through a norm and a colormap, one pixel per
// cell. Masked cells are transparent.
type GlyphImage struct {
	Grid *Grid
	Norm Norm
	Cmap colors.Colormap
}

func (p *GlyphImage) ColorModel() color.Model {
	return color.RGBAModel
}

func (p *GlyphImage) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.Grid.W, p.Grid.H)
}

func (p *GlyphImage) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}).In(p.Bounds()) {
		return color.Transparent
	}
	if p.Grid.Masked(x, y) {
		return color.Transparent
	}
	return p.Cmap.At(p.Norm.Normalize(p.Grid.At(x, y)))
}

// RGBImage is a composite of three float bands with 0-1 channels, stored
// interleaved in row-major order.
type RGBImage struct {
	// Rect is the image bounding box.
	Rect image.Rectangle

	// Pix holds r, g, b triples, 3*W*H values.
	Pix []float64
}

// NewRGBImage returns a black w×h composite.
func NewRGBImage(w, h int) *RGBImage {
	return &RGBImage{
		Rect: image.Rect(0, 0, w, h),
		Pix:  make([]float64, 3*w*h),
	}
}

func (p *RGBImage) ColorModel() color.Model {
	return color.RGBAModel
}

func (p *RGBImage) Bounds() image.Rectangle {
	return p.Rect
}

func (p *RGBImage) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return color.Transparent
	}
	i := p.offset(x, y)
	return color.RGBA{
		R: channel(p.Pix[i+0]),
		G: channel(p.Pix[i+1]),
		B: channel(p.Pix[i+2]),
		A: 0xff,
	}
}

// Channel returns the band b value at (x, y).
func (p *RGBImage) Channel(x, y, b int) float64 {
	return p.Pix[p.offset(x, y)+b]
}

// SetChannel stores the band b value at (x, y).
func (p *RGBImage) SetChannel(x, y, b int, v float64) {
	p.Pix[p.offset(x, y)+b] = v
}

func (p *RGBImage) offset(x, y int) int {
	return 3 * (y*p.Rect.Dx() + x)
}

func channel(v float64) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 0xff
	}
	return uint8(v*255 + 0.5)
}

// Interface checks.
var (
	_ image.Image = (*GlyphImage)(nil)
	_ image.Image = (*RGBImage)(nil)
)
