package cleopatra

import (
	"fmt"
	"sort"

	"github.com/aclements/go-moremath/stats"

	"github.com/Serapieum-of-alex/cleopatra/pixel"
)

// prepareRGB selects three bands of a band-first stack and composes them
// into an RGB image with 0-1 channels. Percentile stretching takes
// precedence over surface-reflectance scaling; with neither set the raw
// values are used as channels.
func prepareRGB(stack [][][]float64, bands []int, reflectance float64, cutoff []float64, percentile float64) (*pixel.RGBImage, error) {
	if len(bands) != 3 {
		return nil, fmt.Errorf("%w: %d band indices", ErrBands, len(bands))
	}
	for _, b := range bands {
		if b < 0 || b >= len(stack) {
			return nil, fmt.Errorf("%w: band index %d out of %d", ErrBands, b, len(stack))
		}
	}
	h := len(stack[bands[0]])
	if h == 0 || len(stack[bands[0]][0]) == 0 {
		return nil, pixel.ErrEmpty
	}
	w := len(stack[bands[0]][0])

	img := pixel.NewRGBImage(w, h)
	for c, b := range bands {
		for y, row := range stack[b] {
			if len(row) != w {
				return nil, pixel.ErrRagged
			}
			for x, v := range row {
				img.SetChannel(x, y, c, v)
			}
		}
	}

	switch {
	case percentile > 0:
		scalePercentile(img, percentile)
	case reflectance > 0:
		scaleReflectance(img, reflectance, cutoff)
	}
	return img, nil
}

// scalePercentile stretches each channel between its p-th and (100-p)-th
// percentile values, clipped to [0, 1].
func scalePercentile(img *pixel.RGBImage, p float64) {
	w, h := img.Rect.Dx(), img.Rect.Dy()
	for c := 0; c < 3; c++ {
		band := make([]float64, 0, w*h)
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				band = append(band, img.Channel(x, y, c))
			}
		}
		sort.Float64s(band)
		s := stats.Sample{Xs: band, Sorted: true}
		lower := s.Quantile(p / 100)
		upper := s.Quantile(1-p/100) - lower
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				v := (img.Channel(x, y, c) - lower) / upper
				img.SetChannel(x, y, c, clip01(v))
			}
		}
	}
}

// scaleReflectance divides every channel by the reflectance constant and
// clips to [0, 1]. A per-band cutoff re-clips the raw values against the
// cutoff instead.
func scaleReflectance(img *pixel.RGBImage, reflectance float64, cutoff []float64) {
	w, h := img.Rect.Dx(), img.Rect.Dy()
	for c := 0; c < 3; c++ {
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				raw := img.Channel(x, y, c)
				v := clip01(raw / reflectance)
				if c < len(cutoff) && cutoff[c] > 0 {
					v = clip(raw, 0, cutoff[c]) / cutoff[c]
				}
				img.SetChannel(x, y, c, v)
			}
		}
	}
}

func clip01(v float64) float64 { return clip(v, 0, 1) }

func clip(v, lo, hi float64) float64 {
	switch {
	case v < lo:
		return lo
	case v > hi:
		return hi
	}
	return v
}
