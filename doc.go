// Package cleopatra is a thin visualization layer for numeric arrays.
//
// An [ArrayGlyph] displays a 2D grid (or a 3D stack) as a raster with a
// configurable color scale, colorbar, cell values and point overlays, and
// can animate a stack over a time axis or compose three bands into an RGB
// image. A [Statistic] overlays per-column histograms. Figures are plain
// [image.Image] rasters; animations can be written to GIF directly or to
// MP4/AVI/MOV through an external ffmpeg encoder.
package cleopatra
