// Package colors normalizes user supplied color values into a uniform
// representation.
//
// A color may be given as a hex string (with or without a leading "#"), an
// SVG 1.1 color name, an RGB triple with 0-255 integer channels, or an RGB
// triple with 0-1 float channels. Lists mixing all notations are supported
// and keep their input order. The package also extracts color ramps from
// images and builds continuous colormaps compatible with Go's native
// [color.Color] interface.
package colors
