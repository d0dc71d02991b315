package colors

import "testing"

func TestKinds(t *testing.T) {
	l, err := New("ff0000", "#23a9dd", [3]int{128, 51, 204}, [3]float64{0.5, 0.2, 0.8})
	if err != nil {
		t.Fatal(err)
	}
	want := []Kind{Hex, Hex, RGB, RGBNorm}
	kinds := l.Kinds()
	if len(kinds) != len(want) {
		t.Fatalf("expected %d kinds, got %d", len(want), len(kinds))
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Errorf("entry %d: expected kind %q, got %q", i, want[i], kinds[i])
		}
	}
}

func TestKindsSingleHex(t *testing.T) {
	l, err := New("ff0000")
	if err != nil {
		t.Fatal(err)
	}
	kinds := l.Kinds()
	if len(kinds) != 1 || kinds[0] != Hex {
		t.Errorf("expected [hex], got %v", kinds)
	}
}

func TestValidHex(t *testing.T) {
	l, err := New([3]int{128, 51, 204}, "#23a9dd", [3]float64{0.5, 0.2, 0.8}, "nonsense!")
	if err != nil {
		t.Fatal(err)
	}
	want := []bool{false, true, false, false}
	valid := l.ValidHex()
	for i := range want {
		if valid[i] != want[i] {
			t.Errorf("entry %d: expected %v, got %v", i, want[i], valid[i])
		}
	}
	// Idempotent and order-preserving.
	again := l.ValidHex()
	for i := range valid {
		if valid[i] != again[i] {
			t.Errorf("entry %d: second run disagrees", i)
		}
	}
}

func TestValidRGB(t *testing.T) {
	l, err := New([3]int{128, 51, 204}, "#23a9dd", [3]float64{0.5, 0.2, 0.8})
	if err != nil {
		t.Fatal(err)
	}
	want := []bool{true, false, true}
	valid := l.ValidRGB()
	for i := range want {
		if valid[i] != want[i] {
			t.Errorf("entry %d: expected %v, got %v", i, want[i], valid[i])
		}
	}
}

func TestRGB(t *testing.T) {
	l, err := New("#ff0000", "#23a9dd")
	if err != nil {
		t.Fatal(err)
	}
	rgb, err := l.RGB()
	if err != nil {
		t.Fatal(err)
	}
	if rgb[0] != [3]float64{1, 0, 0} {
		t.Errorf("expected (1, 0, 0), got %v", rgb[0])
	}
	approx := func(a, b float64) bool {
		d := a - b
		return d < 1e-9 && d > -1e-9
	}
	if !approx(rgb[1][0], 35.0/255) || !approx(rgb[1][1], 169.0/255) || !approx(rgb[1][2], 221.0/255) {
		t.Errorf("expected (35, 169, 221)/255, got %v", rgb[1])
	}

	rgb255, err := l.RGB255()
	if err != nil {
		t.Fatal(err)
	}
	if rgb255[0] != [3]uint8{255, 0, 0} {
		t.Errorf("expected (255, 0, 0), got %v", rgb255[0])
	}
	if rgb255[1] != [3]uint8{35, 169, 221} {
		t.Errorf("expected (35, 169, 221), got %v", rgb255[1])
	}
}

func TestHexRoundTrip(t *testing.T) {
	for _, h := range []string{"#ff0000", "#23a9dd", "#8033cc"} {
		t.Run(h, func(t *testing.T) {
			l, err := New(h)
			if err != nil {
				t.Fatal(err)
			}
			rgb, err := l.RGB()
			if err != nil {
				t.Fatal(err)
			}
			back, err := List{RGBNormValue(rgb[0][0], rgb[0][1], rgb[0][2])}.Hex()
			if err != nil {
				t.Fatal(err)
			}
			if back[0] != h {
				t.Errorf("expected %q, got %q", h, back[0])
			}
		})
	}
}

func TestHexMixed(t *testing.T) {
	l, err := New([3]int{128, 51, 204}, "#23a9dd", [3]float64{0.5, 0.2, 0.8})
	if err != nil {
		t.Fatal(err)
	}
	hex, err := l.Hex()
	if err != nil {
		t.Fatal(err)
	}
	if hex[0] != "#8033cc" {
		t.Errorf("expected #8033cc, got %q", hex[0])
	}
	if hex[1] != "#23a9dd" {
		t.Errorf("expected #23a9dd, got %q", hex[1])
	}
}

func TestNamedColor(t *testing.T) {
	l, err := New("red")
	if err != nil {
		t.Fatal(err)
	}
	hex, err := l.Hex()
	if err != nil {
		t.Fatal(err)
	}
	if hex[0] != "#ff0000" {
		t.Errorf("expected #ff0000, got %q", hex[0])
	}
}

func TestMalformed(t *testing.T) {
	l, err := New("not-a-color")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := l.Hex(); err == nil {
		t.Error("expected an error for a malformed color")
	}
	if _, err := New(42); err == nil {
		t.Error("expected an error for an unsupported type")
	}
}
