package colors

import (
	"fmt"
	"image"
	"os"

	// Decoders for the ramp image formats found in the wild.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
)

// FromImage extracts a color ramp from an image of a horizontal color
// strip. It walks the middle pixel row left to right and returns one entry
// per column, as 0-255 RGB triples.
func FromImage(path string) (List, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("colors: open ramp image: %w", err)
	}
	defer f.Close()

	m, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("colors: decode ramp image %q: %w", path, err)
	}

	b := m.Bounds()
	y := b.Min.Y + b.Dy()/2
	l := make(List, 0, b.Dx())
	for x := b.Min.X; x < b.Max.X; x++ {
		r, g, bb, _ := m.At(x, y).RGBA()
		l = append(l, RGBValue(int(r>>8), int(g>>8), int(bb>>8)))
	}
	return l, nil
}
