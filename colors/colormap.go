package colors

import (
	"errors"
	"fmt"
	"image/color"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// ErrColormap is returned for unknown colormap names.
var ErrColormap = errors.New("colors: unknown colormap")

// Colormap maps a position in [0, 1] to a color.
type Colormap interface {
	At(t float64) color.Color
}

type stop struct {
	col colorful.Color
	pos float64
}

// Gradient is a continuous colormap built from keypoint colors, blended in
// HCL space between neighbouring keypoints.
type Gradient struct {
	name  string
	stops []stop
}

// Name returns the name the gradient was registered or built under.
func (g Gradient) Name() string { return g.name }

// At returns the blended color at position t, clamping t to [0, 1].
func (g Gradient) At(t float64) color.Color {
	if len(g.stops) == 0 {
		return color.Black
	}
	if t <= g.stops[0].pos {
		return g.stops[0].col
	}
	if t >= g.stops[len(g.stops)-1].pos {
		return g.stops[len(g.stops)-1].col
	}
	for i := 0; i < len(g.stops)-1; i++ {
		a, b := g.stops[i], g.stops[i+1]
		if a.pos <= t && t <= b.pos {
			if t == b.pos {
				return b.col
			}
			f := (t - a.pos) / (b.pos - a.pos)
			return a.col.BlendHcl(b.col, f).Clamped()
		}
	}
	return g.stops[len(g.stops)-1].col
}

// Reversed returns the gradient mirrored around t=0.5.
func (g Gradient) Reversed() Gradient {
	rev := Gradient{name: g.name + "-r", stops: make([]stop, len(g.stops))}
	for i, s := range g.stops {
		rev.stops[len(g.stops)-1-i] = stop{col: s.col, pos: 1 - s.pos}
	}
	return rev
}

// Colormap builds a continuous colormap from the stored colors, spaced
// evenly over [0, 1] in input order.
func (l List) Colormap(name string) (Gradient, error) {
	cols, err := l.Colors()
	if err != nil {
		return Gradient{}, err
	}
	if len(cols) == 0 {
		return Gradient{}, fmt.Errorf("%w: empty color list", ErrMalformed)
	}
	if name == "" {
		name = "custom"
	}
	g := Gradient{name: name, stops: make([]stop, len(cols))}
	for i, c := range cols {
		cc, _ := colorful.MakeColor(c)
		pos := 0.0
		if len(cols) > 1 {
			pos = float64(i) / float64(len(cols)-1)
		}
		g.stops[i] = stop{col: cc, pos: pos}
	}
	return g, nil
}

func mustGradient(name string, hexes ...string) Gradient {
	g := Gradient{name: name, stops: make([]stop, len(hexes))}
	for i, h := range hexes {
		c, err := colorful.Hex(h)
		if err != nil {
			panic("colors: bad builtin gradient " + name + ": " + err.Error())
		}
		pos := 0.0
		if len(hexes) > 1 {
			pos = float64(i) / float64(len(hexes)-1)
		}
		g.stops[i] = stop{col: c, pos: pos}
	}
	return g
}

var builtins = map[string]Gradient{
	"gray":     mustGradient("gray", "#000000", "#ffffff"),
	"coolwarm": mustGradient("coolwarm", "#3b4cc0", "#9abbff", "#dddddd", "#f49a7b", "#b40426"),
	"viridis":  mustGradient("viridis", "#440154", "#3b528b", "#21918c", "#5ec962", "#fde725"),
	"terrain":  mustGradient("terrain", "#333399", "#0099ff", "#00cc66", "#ffff99", "#805c54", "#ffffff"),
}

// ByName looks up a built-in colormap. A trailing "-r" selects the
// reversed variant of any built-in, e.g. "coolwarm-r".
func ByName(name string) (Gradient, error) {
	if g, ok := builtins[name]; ok {
		return g, nil
	}
	if n, found := strings.CutSuffix(name, "-r"); found {
		if g, ok := builtins[n]; ok {
			return g.Reversed(), nil
		}
	}
	return Gradient{}, fmt.Errorf("%w: %q", ErrColormap, name)
}
