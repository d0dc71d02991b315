// Package draw implements the raster primitives used to assemble figures:
// lines, boxes, markers and text.
package draw

import (
	"image"
	"image/color"
	"image/draw"
)

// Image is an alias for [image/draw.Image].
type Image = draw.Image

// Op is an alias for [image/draw.Op].
type Op = draw.Op

const (
	// Over specifies ``(src in mask) over dst''.
	Over Op = iota

	// Src specifies ``src in mask''.
	Src
)

// Draw composes src over the rectangle r of dst.
func Draw(dst Image, r image.Rectangle, src image.Image, sp image.Point, op Op) {
	draw.Draw(dst, r, src, sp, op)
}

// Fill fills the rectangle r with a uniform color, alpha-blending
// translucent colors over the existing content.
func Fill(dst Image, r image.Rectangle, c color.Color) {
	draw.Draw(dst, r, image.NewUniform(c), image.Point{}, draw.Over)
}
