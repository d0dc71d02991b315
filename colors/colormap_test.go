package colors

import (
	"errors"
	"testing"
)

func TestByName(t *testing.T) {
	for _, name := range []string{"gray", "coolwarm", "coolwarm-r", "terrain", "viridis"} {
		t.Run(name, func(t *testing.T) {
			if _, err := ByName(name); err != nil {
				t.Errorf("expected %q to resolve, got %v", name, err)
			}
		})
	}
	if _, err := ByName("plasma"); !errors.Is(err, ErrColormap) {
		t.Errorf("expected ErrColormap, got %v", err)
	}
}

func TestGradientEndpoints(t *testing.T) {
	g, err := ByName("gray")
	if err != nil {
		t.Fatal(err)
	}
	r, gg, b, _ := g.At(0).RGBA()
	if r != 0 || gg != 0 || b != 0 {
		t.Errorf("expected black at 0, got (%d, %d, %d)", r, gg, b)
	}
	r, gg, b, _ = g.At(1).RGBA()
	if r != 0xffff || gg != 0xffff || b != 0xffff {
		t.Errorf("expected white at 1, got (%#04x, %#04x, %#04x)", r, gg, b)
	}
	// Out-of-range positions clamp to the endpoints.
	if g.At(-0.5) != g.At(0) {
		t.Error("expected t below 0 to clamp to the first stop")
	}
	if g.At(1.5) != g.At(1) {
		t.Error("expected t above 1 to clamp to the last stop")
	}
}

func TestGradientReversed(t *testing.T) {
	g, err := ByName("coolwarm")
	if err != nil {
		t.Fatal(err)
	}
	rev := g.Reversed()
	if rev.At(0) != g.At(1) {
		t.Error("expected reversed gradient to start at the original end")
	}
	if rev.At(1) != g.At(0) {
		t.Error("expected reversed gradient to end at the original start")
	}
}

func TestListColormap(t *testing.T) {
	l, err := New("#000000", "#ff0000", "#ffffff")
	if err != nil {
		t.Fatal(err)
	}
	g, err := l.Colormap("")
	if err != nil {
		t.Fatal(err)
	}
	if g.Name() != "custom" {
		t.Errorf("expected name custom, got %q", g.Name())
	}
	r, _, _, _ := g.At(0.5).RGBA()
	if r != 0xffff {
		t.Errorf("expected pure red channel at the middle stop, got %#04x", r)
	}

	if _, err := (List{}).Colormap("empty"); err == nil {
		t.Error("expected an error for an empty list")
	}
}
