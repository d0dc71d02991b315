package pixel

import (
	"math"
	"testing"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestLinear(t *testing.T) {
	n := Linear{Vmin: 0, Vmax: 10}
	for _, tc := range []struct{ v, want float64 }{
		{0, 0}, {5, 0.5}, {10, 1}, {-5, 0}, {15, 1},
	} {
		if got := n.Normalize(tc.v); !approx(got, tc.want) {
			t.Errorf("Normalize(%v): expected %v, got %v", tc.v, tc.want, got)
		}
	}
}

func TestPower(t *testing.T) {
	n := Power{Vmin: 0, Vmax: 100, Gamma: 0.5}
	if got := n.Normalize(25); !approx(got, 0.5) {
		t.Errorf("expected sqrt(0.25)=0.5, got %v", got)
	}
	if got := n.Normalize(100); !approx(got, 1) {
		t.Errorf("expected 1 at vmax, got %v", got)
	}
	// Gamma below one lifts the lower range.
	lin := Linear{Vmin: 0, Vmax: 100}
	if n.Normalize(10) <= lin.Normalize(10) {
		t.Error("expected power norm with gamma<1 to sit above linear")
	}
}

func TestSymLog(t *testing.T) {
	n := SymLog{Vmin: -100, Vmax: 100, LinThresh: 1e-4, LinScale: 1e-3}
	if got := n.Normalize(0); !approx(got, 0.5) {
		t.Errorf("expected 0.5 at zero for a symmetric range, got %v", got)
	}
	if got := n.Normalize(-100); !approx(got, 0) {
		t.Errorf("expected 0 at vmin, got %v", got)
	}
	if got := n.Normalize(100); !approx(got, 1) {
		t.Errorf("expected 1 at vmax, got %v", got)
	}
	// Monotone across the linear threshold.
	prev := -1.0
	for _, v := range []float64{-100, -1, -1e-4, 0, 1e-4, 1, 100} {
		got := n.Normalize(v)
		if got < prev {
			t.Errorf("expected monotone mapping, %v mapped to %v after %v", v, got, prev)
		}
		prev = got
	}
}

func TestBoundary(t *testing.T) {
	n := Boundary{Bounds: []float64{0, 5, 10, 20}}
	if got := n.Normalize(2); !approx(got, 0) {
		t.Errorf("expected level 0, got %v", got)
	}
	if got := n.Normalize(7); !approx(got, 0.5) {
		t.Errorf("expected level 1 of 2, got %v", got)
	}
	if got := n.Normalize(15); !approx(got, 1) {
		t.Errorf("expected top level, got %v", got)
	}
	if got := n.Normalize(999); !approx(got, 1) {
		t.Errorf("expected values past the last bound on the top level, got %v", got)
	}
}

func TestMidpoint(t *testing.T) {
	n := Midpoint{Vmin: -10, Vmax: 30, Mid: 0}
	for _, tc := range []struct{ v, want float64 }{
		{-10, 0}, {0, 0.5}, {30, 1}, {-5, 0.25}, {15, 0.75},
	} {
		if got := n.Normalize(tc.v); !approx(got, tc.want) {
			t.Errorf("Normalize(%v): expected %v, got %v", tc.v, tc.want, got)
		}
	}
}
