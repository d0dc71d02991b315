package pixel

import "math"

// Norm maps a data value into [0, 1] for colormap lookup.
type Norm interface {
	Normalize(v float64) float64
}

// Linear maps [Vmin, Vmax] linearly onto [0, 1].
type Linear struct {
	Vmin, Vmax float64
}

func (n Linear) Normalize(v float64) float64 {
	return clamp01((v - n.Vmin) / (n.Vmax - n.Vmin))
}

// Power applies a power-law with exponent Gamma to the linear position.
type Power struct {
	Vmin, Vmax float64
	Gamma      float64
}

func (n Power) Normalize(v float64) float64 {
	t := clamp01((v - n.Vmin) / (n.Vmax - n.Vmin))
	return math.Pow(t, n.Gamma)
}

// SymLog is a symmetric logarithmic mapping (base e) that stays linear
// within ±LinThresh of zero, compressed by LinScale.
type SymLog struct {
	Vmin, Vmax float64
	LinThresh  float64
	LinScale   float64
}

func (n SymLog) transform(v float64) float64 {
	adj := n.LinScale / (1 - 1/math.E)
	if math.Abs(v) <= n.LinThresh {
		return v * adj
	}
	sign := 1.0
	if v < 0 {
		sign = -1
	}
	return sign * n.LinThresh * (adj + math.Log(math.Abs(v)/n.LinThresh))
}

func (n SymLog) Normalize(v float64) float64 {
	lo, hi := n.transform(n.Vmin), n.transform(n.Vmax)
	return clamp01((n.transform(v) - lo) / (hi - lo))
}

// Boundary maps values into discrete intervals: a value in
// [Bounds[i], Bounds[i+1]) lands on level i of len(Bounds)-1 levels.
type Boundary struct {
	Bounds []float64
}

func (n Boundary) Normalize(v float64) float64 {
	levels := len(n.Bounds) - 1
	if levels < 1 {
		return 0
	}
	i := 0
	for i < levels-1 && v >= n.Bounds[i+1] {
		i++
	}
	if levels == 1 {
		return 0
	}
	return float64(i) / float64(levels-1)
}

// Midpoint splits the scale at Mid: values interpolate over
// {Vmin→0, Mid→0.5, Vmax→1}.
type Midpoint struct {
	Vmin, Vmax float64
	Mid        float64
}

func (n Midpoint) Normalize(v float64) float64 {
	switch {
	case v <= n.Vmin:
		return 0
	case v >= n.Vmax:
		return 1
	case v <= n.Mid:
		return 0.5 * (v - n.Vmin) / (n.Mid - n.Vmin)
	default:
		return 0.5 + 0.5*(v-n.Mid)/(n.Vmax-n.Mid)
	}
}

func clamp01(t float64) float64 {
	switch {
	case math.IsNaN(t):
		return 0
	case t < 0:
		return 0
	case t > 1:
		return 1
	}
	return t
}

// Interface checks.
var (
	_ Norm = Linear{}
	_ Norm = Power{}
	_ Norm = SymLog{}
	_ Norm = Boundary{}
	_ Norm = Midpoint{}
)
