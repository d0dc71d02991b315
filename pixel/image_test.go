package pixel

import (
	"image/color"
	"testing"

	"github.com/Serapieum-of-alex/cleopatra/colors"
)

func TestGlyphImage(t *testing.T) {
	g, err := GridFromRows([][]float64{{0, 5}, {10, -9999}})
	if err != nil {
		t.Fatal(err)
	}
	g.MaskValues(-9999)
	cmap, err := colors.ByName("gray")
	if err != nil {
		t.Fatal(err)
	}
	im := &GlyphImage{Grid: g, Norm: Linear{Vmin: 0, Vmax: 10}, Cmap: cmap}

	if im.Bounds().Dx() != 2 || im.Bounds().Dy() != 2 {
		t.Fatalf("expected 2x2 bounds, got %v", im.Bounds())
	}
	r, _, _, a := im.At(0, 0).RGBA()
	if r != 0 || a != 0xffff {
		t.Errorf("expected opaque black at vmin, got r=%#04x a=%#04x", r, a)
	}
	r, _, _, _ = im.At(0, 1).RGBA()
	if r != 0xffff {
		t.Errorf("expected white at vmax, got %#04x", r)
	}
	if _, _, _, a := im.At(1, 1).RGBA(); a != 0 {
		t.Errorf("expected masked cell to be transparent, got alpha %#04x", a)
	}
	if _, _, _, a := im.At(5, 5).RGBA(); a != 0 {
		t.Errorf("expected out-of-bounds to be transparent, got alpha %#04x", a)
	}
}

func TestRGBImage(t *testing.T) {
	p := NewRGBImage(2, 2)
	p.SetChannel(1, 0, 0, 1.0)
	p.SetChannel(1, 0, 1, 0.5)

	c := p.At(1, 0).(color.RGBA)
	if c.R != 0xff {
		t.Errorf("expected full red channel, got %#02x", c.R)
	}
	if c.G != 128 {
		t.Errorf("expected green channel 128, got %d", c.G)
	}
	if c.A != 0xff {
		t.Errorf("expected opaque pixel, got alpha %#02x", c.A)
	}

	// Channels clip to [0, 1].
	p.SetChannel(0, 0, 2, 1.5)
	if c := p.At(0, 0).(color.RGBA); c.B != 0xff {
		t.Errorf("expected clipped blue channel, got %#02x", c.B)
	}
}
