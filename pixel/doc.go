// Package pixel implements the raster building blocks for array plots.
//
// It provides a masked float64 sample grid, the value normalizations that
// map samples into a colormap range, and image types compatible with Go's
// native [color.Color] and [image.Image] interfaces.
package pixel
