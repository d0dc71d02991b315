package draw

import (
	"image"
	"image/color"
)

// HorizontalLine draws a line between (x,y) and (x+w-1,y).
func HorizontalLine(dst Image, x, y, w int, c color.Color) {
	for i := 0; i < w; i++ {
		dst.Set(x+i, y, c)
	}
}

// VerticalLine draws a line between (x,y) and (x,y+h-1).
func VerticalLine(dst Image, x, y, h int, c color.Color) {
	for i := 0; i < h; i++ {
		dst.Set(x, y+i, c)
	}
}

// Rectangle draws the outline of rect.
func Rectangle(dst Image, rect image.Rectangle, c color.Color) {
	HorizontalLine(dst, rect.Min.X, rect.Min.Y, rect.Dx(), c)
	HorizontalLine(dst, rect.Min.X, rect.Max.Y-1, rect.Dx(), c)
	VerticalLine(dst, rect.Min.X, rect.Min.Y, rect.Dy(), c)
	VerticalLine(dst, rect.Max.X-1, rect.Min.Y, rect.Dy(), c)
}

// Box draws a filled rectangle by overwriting pixels. Use [Fill] for
// translucent colors.
func Box(dst Image, rect image.Rectangle, c color.Color) {
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			dst.Set(x, y, c)
		}
	}
}

// FilledCircle draws a filled circle marker centered at (x0,y0).
func FilledCircle(dst Image, x0, y0, radius int, c color.Color) {
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx*dx+dy*dy <= radius*radius {
				dst.Set(x0+dx, y0+dy, c)
			}
		}
	}
}
