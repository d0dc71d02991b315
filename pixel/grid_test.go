package pixel

import (
	"errors"
	"math"
	"testing"
)

func TestGridFromRows(t *testing.T) {
	g, err := GridFromRows([][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})
	if err != nil {
		t.Fatal(err)
	}
	if g.W != 3 || g.H != 3 {
		t.Fatalf("expected 3x3 grid, got %dx%d", g.W, g.H)
	}
	if g.At(2, 0) != 3 || g.At(0, 2) != 7 {
		t.Errorf("expected row-major layout, got At(2,0)=%v At(0,2)=%v", g.At(2, 0), g.At(0, 2))
	}

	if _, err := GridFromRows([][]float64{{1, 2}, {3}}); !errors.Is(err, ErrRagged) {
		t.Errorf("expected ErrRagged, got %v", err)
	}
	if _, err := GridFromRows(nil); !errors.Is(err, ErrEmpty) {
		t.Errorf("expected ErrEmpty, got %v", err)
	}
}

func TestMaskValues(t *testing.T) {
	g, err := GridFromRows([][]float64{{-9999, 2}, {3, -9999}})
	if err != nil {
		t.Fatal(err)
	}
	g.MaskValues(-9999)
	if !g.Masked(0, 0) || !g.Masked(1, 1) {
		t.Error("expected sentinel cells to be masked")
	}
	if g.Masked(1, 0) || g.Masked(0, 1) {
		t.Error("expected data cells to stay unmasked")
	}
	if n := g.Count(); n != 2 {
		t.Errorf("expected 2 unmasked cells, got %d", n)
	}

	min, max := g.MinMax()
	if min != 2 || max != 3 {
		t.Errorf("expected min 2 max 3, got %v %v", min, max)
	}
}

func TestMaskTwoSentinels(t *testing.T) {
	g, err := GridFromRows([][]float64{{-9999, 0}, {5, 400}})
	if err != nil {
		t.Fatal(err)
	}
	g.MaskValues(-9999, 400)
	if !g.Masked(0, 0) || !g.Masked(1, 1) {
		t.Error("expected both sentinels to be masked")
	}
	if n := g.Count(); n != 2 {
		t.Errorf("expected 2 unmasked cells, got %d", n)
	}
}

func TestNaNMasked(t *testing.T) {
	g := NewGrid(2, 1)
	g.Set(0, 0, math.NaN())
	g.Set(1, 0, 7)
	if !g.Masked(0, 0) {
		t.Error("expected NaN cell to be masked without an explicit mask")
	}
	if n := g.Count(); n != 1 {
		t.Errorf("expected 1 unmasked cell, got %d", n)
	}
	min, max := g.MinMax()
	if min != 7 || max != 7 {
		t.Errorf("expected min=max=7, got %v %v", min, max)
	}
}
