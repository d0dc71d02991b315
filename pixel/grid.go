package pixel

import (
	"errors"
	"math"
)

// Grid errors.
var (
	ErrRagged = errors.New("pixel: ragged rows in grid data")
	ErrEmpty  = errors.New("pixel: empty grid")
)

// Grid holds a rectangular block of float64 samples with an optional mask.
// Masked cells are excluded from statistics and rendered transparent.
type Grid struct {
	// W and H are the grid dimensions in cells.
	W, H int

	// Val are the samples in row-major order.
	Val []float64

	// Mask marks excluded cells; nil means no cell is masked.
	Mask []bool
}

// NewGrid returns an unmasked w×h grid with all samples zero.
func NewGrid(w, h int) *Grid {
	return &Grid{W: w, H: h, Val: make([]float64, w*h)}
}

// GridFromRows copies row-major data into a grid. All rows must have the
// same length.
func GridFromRows(rows [][]float64) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmpty
	}
	w := len(rows[0])
	g := NewGrid(w, len(rows))
	for y, row := range rows {
		if len(row) != w {
			return nil, ErrRagged
		}
		copy(g.Val[y*w:], row)
	}
	return g, nil
}

// At returns the sample at (x, y).
func (g *Grid) At(x, y int) float64 {
	return g.Val[y*g.W+x]
}

// Set stores a sample at (x, y).
func (g *Grid) Set(x, y int, v float64) {
	g.Val[y*g.W+x] = v
}

// Masked reports whether the cell at (x, y) is excluded.
func (g *Grid) Masked(x, y int) bool {
	if g.Mask == nil {
		return math.IsNaN(g.Val[y*g.W+x])
	}
	return g.Mask[y*g.W+x]
}

// MaskValues masks every cell close to one of the sentinel values. With a
// single sentinel the relative tolerance is 1e-7, with two it is 1e-3. NaN
// samples are always masked.
func (g *Grid) MaskValues(sentinels ...float64) {
	rtol := 1e-7
	if len(sentinels) > 1 {
		rtol = 1e-3
	}
	if g.Mask == nil {
		g.Mask = make([]bool, len(g.Val))
	}
	for i, v := range g.Val {
		if math.IsNaN(v) {
			g.Mask[i] = true
			continue
		}
		for _, s := range sentinels {
			if isClose(v, s, rtol) {
				g.Mask[i] = true
				break
			}
		}
	}
}

// isClose reports |a-b| <= atol + rtol*|b| with an absolute tolerance of
// 1e-8.
func isClose(a, b, rtol float64) bool {
	return math.Abs(a-b) <= 1e-8+rtol*math.Abs(b)
}

// MinMax returns the smallest and largest unmasked samples. For a fully
// masked grid both returns are NaN.
func (g *Grid) MinMax() (min, max float64) {
	min, max = math.NaN(), math.NaN()
	for i, v := range g.Val {
		if g.Mask != nil && g.Mask[i] || math.IsNaN(v) {
			continue
		}
		if math.IsNaN(min) || v < min {
			min = v
		}
		if math.IsNaN(max) || v > max {
			max = v
		}
	}
	return min, max
}

// Count returns the number of unmasked cells.
func (g *Grid) Count() int {
	if g.Mask == nil {
		n := 0
		for _, v := range g.Val {
			if !math.IsNaN(v) {
				n++
			}
		}
		return n
	}
	n := 0
	for i, v := range g.Val {
		if !g.Mask[i] && !math.IsNaN(v) {
			n++
		}
	}
	return n
}
