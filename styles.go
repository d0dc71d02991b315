package cleopatra

import "math"

// Rescale linearly maps v from [oldMin, oldMax] to [newMin, newMax].
func Rescale(v, oldMin, oldMax, newMin, newMax float64) float64 {
	return (v-oldMin)*(newMax-newMin)/(oldMax-oldMin) + newMin
}

// LogScale returns a scalar for symbol sizing: values are shifted positive
// relative to minval and mapped through log10.
func LogScale(minval float64) func(float64) float64 {
	return func(v float64) float64 {
		return math.Log10(v + math.Abs(minval) + 1)
	}
}

// PowerScale returns a scalar for symbol sizing: values are shifted
// positive relative to minval, then squared on a 1/1000 scale.
func PowerScale(minval float64) func(float64) float64 {
	return func(v float64) float64 {
		v = v + math.Abs(minval) + 1
		return (v / 1000) * (v / 1000)
	}
}

// IdentityScale returns a scalar yielding a constant symbol size.
func IdentityScale() func(float64) float64 {
	return func(float64) float64 { return 2 }
}
