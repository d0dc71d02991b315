package draw

import (
	"image"
	"image/color"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"
)

var (
	regular *truetype.Font
	faces   = map[float64]font.Face{}
)

func init() {
	f, err := truetype.Parse(goregular.TTF)
	if err != nil {
		panic("draw: parse builtin font: " + err.Error())
	}
	regular = f
}

// The figure renderer is synchronous, so a plain face cache is enough.
func face(size float64) font.Face {
	if f, ok := faces[size]; ok {
		return f
	}
	f := truetype.NewFace(regular, &truetype.Options{Size: size, DPI: 72})
	faces[size] = f
	return f
}

// Text draws s with its baseline starting at p.
func Text(dst Image, p image.Point, s string, size float64, c color.Color) {
	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: face(size),
		Dot:  fixed.P(p.X, p.Y),
	}
	d.DrawString(s)
}

// TextCentered draws s centered horizontally and vertically on p.
func TextCentered(dst Image, p image.Point, s string, size float64, c color.Color) {
	w := TextWidth(s, size)
	m := face(size).Metrics()
	asc := m.Ascent.Round()
	dsc := m.Descent.Round()
	Text(dst, image.Pt(p.X-w/2, p.Y+(asc-dsc)/2), s, size, c)
}

// TextWidth returns the advance of s in pixels.
func TextWidth(s string, size float64) int {
	return font.MeasureString(face(size), s).Round()
}

// TextHeight returns the line height of the face at the given size.
func TextHeight(size float64) int {
	m := face(size).Metrics()
	return m.Ascent.Round() + m.Descent.Round()
}
