package colors

import (
	"errors"
	"fmt"
	"image/color"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// Errors.
var (
	ErrMalformed = errors.New("colors: malformed color value")
)

// Kind classifies the notation a color value was supplied in.
type Kind string

// Supported notations.
const (
	Hex     Kind = "hex"            // hex string or color name
	RGB     Kind = "rgb"            // 0-255 integer channels
	RGBNorm Kind = "rgb-normalized" // 0-1 float channels
)

// Value is a single user supplied color, kept as given.
type Value struct {
	str   string
	isStr bool
	r     float64
	g     float64
	b     float64
	ints  bool
}

// HexValue returns a Value holding a hex string or color name.
func HexValue(s string) Value {
	return Value{str: s, isStr: true}
}

// RGBValue returns a Value holding a 0-255 integer RGB triple.
func RGBValue(r, g, b int) Value {
	return Value{r: float64(r), g: float64(g), b: float64(b), ints: true}
}

// RGBNormValue returns a Value holding a 0-1 float RGB triple.
func RGBNormValue(r, g, b float64) Value {
	return Value{r: r, g: g, b: b}
}

// Kind reports the notation of the value. The second return is false when
// the value is not a valid color in any notation.
func (v Value) Kind() (Kind, bool) {
	switch {
	case v.ValidRGBNorm():
		return RGBNorm, true
	case v.ValidRGB255():
		return RGB, true
	case v.ValidHex():
		return Hex, true
	}
	return "", false
}

// ValidHex reports whether the value is a parseable hex string or a known
// color name.
func (v Value) ValidHex() bool {
	if !v.isStr {
		return false
	}
	_, err := parseString(v.str)
	return err == nil
}

// ValidRGB255 reports whether the value is an integer triple in 0-255.
func (v Value) ValidRGB255() bool {
	if v.isStr || !v.ints {
		return false
	}
	return inRange(v.r, 0, 255) && inRange(v.g, 0, 255) && inRange(v.b, 0, 255)
}

// ValidRGBNorm reports whether the value is a float triple in 0-1.
func (v Value) ValidRGBNorm() bool {
	if v.isStr || v.ints {
		return false
	}
	return inRange(v.r, 0, 1) && inRange(v.g, 0, 1) && inRange(v.b, 0, 1)
}

func inRange(v, lo, hi float64) bool {
	return v >= lo && v <= hi
}

func (v Value) parse() (colorful.Color, error) {
	if v.isStr {
		return parseString(v.str)
	}
	if v.ValidRGB255() {
		return colorful.Color{R: v.r / 255, G: v.g / 255, B: v.b / 255}, nil
	}
	if v.ValidRGBNorm() {
		return colorful.Color{R: v.r, G: v.g, B: v.b}, nil
	}
	return colorful.Color{}, fmt.Errorf("%w: (%v, %v, %v)", ErrMalformed, v.r, v.g, v.b)
}

// parseString accepts "#rgb", "#rrggbb", the same without the leading "#",
// and SVG 1.1 color names.
func parseString(s string) (colorful.Color, error) {
	if s == "" {
		return colorful.Color{}, fmt.Errorf("%w: empty string", ErrMalformed)
	}
	hex := s
	if !strings.HasPrefix(hex, "#") {
		if c, ok := colornames.Map[strings.ToLower(s)]; ok {
			return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}, nil
		}
		hex = "#" + hex
	}
	if len(hex) != 4 && len(hex) != 7 {
		return colorful.Color{}, fmt.Errorf("%w: %q", ErrMalformed, s)
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return colorful.Color{}, fmt.Errorf("%w: %q", ErrMalformed, s)
	}
	return c, nil
}

// List is an ordered list of color values as supplied by the caller.
type List []Value

// New builds a List from a mix of supported notations. Each argument must
// be a string, a [3]int (0-255) or a [3]float64 (0-1) triple, or a Value.
func New(values ...any) (List, error) {
	l := make(List, 0, len(values))
	for _, val := range values {
		switch c := val.(type) {
		case string:
			l = append(l, HexValue(c))
		case [3]int:
			l = append(l, RGBValue(c[0], c[1], c[2]))
		case [3]float64:
			l = append(l, RGBNormValue(c[0], c[1], c[2]))
		case Value:
			l = append(l, c)
		default:
			return nil, fmt.Errorf("%w: unsupported type %T", ErrMalformed, val)
		}
	}
	return l, nil
}

// Kinds classifies each valid entry, in input order.
func (l List) Kinds() []Kind {
	kinds := make([]Kind, 0, len(l))
	for _, v := range l {
		if k, ok := v.Kind(); ok {
			kinds = append(kinds, k)
		}
	}
	return kinds
}

// ValidHex reports per-entry hex validity, in input order.
func (l List) ValidHex() []bool {
	valid := make([]bool, len(l))
	for i, v := range l {
		valid[i] = v.ValidHex()
	}
	return valid
}

// ValidRGB reports per-entry RGB validity (either 0-255 or 0-1), in input
// order.
func (l List) ValidRGB() []bool {
	valid := make([]bool, len(l))
	for i, v := range l {
		valid[i] = v.ValidRGB255() || v.ValidRGBNorm()
	}
	return valid
}

// Hex converts every entry to lowercase "#rrggbb" notation.
func (l List) Hex() ([]string, error) {
	out := make([]string, len(l))
	for i, v := range l {
		c, err := v.parse()
		if err != nil {
			return nil, err
		}
		out[i] = c.Hex()
	}
	return out, nil
}

// RGB converts every entry to a float triple with 0-1 channels.
func (l List) RGB() ([][3]float64, error) {
	out := make([][3]float64, len(l))
	for i, v := range l {
		c, err := v.parse()
		if err != nil {
			return nil, err
		}
		out[i] = [3]float64{c.R, c.G, c.B}
	}
	return out, nil
}

// RGB255 converts every entry to an integer triple with 0-255 channels.
func (l List) RGB255() ([][3]uint8, error) {
	out := make([][3]uint8, len(l))
	for i, v := range l {
		c, err := v.parse()
		if err != nil {
			return nil, err
		}
		r, g, b := c.RGB255()
		out[i] = [3]uint8{r, g, b}
	}
	return out, nil
}

// Colors converts every entry to a native [color.Color].
func (l List) Colors() ([]color.Color, error) {
	out := make([]color.Color, len(l))
	for i, v := range l {
		c, err := v.parse()
		if err != nil {
			return nil, err
		}
		out[i] = c
	}
	return out, nil
}
