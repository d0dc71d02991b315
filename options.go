package cleopatra

import (
	"fmt"
	"math"
)

// Options overrides entries of a default-option table. Option names are
// validated by key membership against the table; an unknown name is an
// error, values are not range checked.
type Options map[string]any

// options is a resolved table: defaults merged with caller overrides.
type options map[string]any

// styleDefaults are shared by all figure kinds.
func styleDefaults() options {
	return options{
		"figsize":          [2]int{8, 8}, // inches at 100 dpi
		"title":            "Array Plot",
		"title_size":       15.0,
		"cmap":             "coolwarm-r",
		"color_scale":      "linear",
		"gamma":            0.5,
		"line_threshold":   1e-4,
		"line_scale":       1e-3,
		"bounds":           []float64(nil),
		"midpoint":         0.0,
		"ticks_spacing":    0.0, // 0 derives (vmax-vmin)/10
		"cbar_orientation": "vertical",
		"cbar_length":      0.75,
		"cbar_label":       "Value",
		"cbar_label_size":  12.0,
		"grid_alpha":       0.75,
		"xlabel":           "",
		"ylabel":           "",
		"xlabel_font_size": 12.0,
		"ylabel_font_size": 12.0,
		"xtick_font_size":  10.0,
		"ytick_font_size":  10.0,
	}
}

// arrayDefaults is the option table of ArrayGlyph figures.
func arrayDefaults() options {
	o := styleDefaults()
	o["vmin"] = math.NaN()
	o["vmax"] = math.NaN()
	o["num_size"] = 8.0
	o["display_cell_value"] = false
	o["background_color_threshold"] = math.NaN()
	o["precision"] = 2
	return o
}

// statisticDefaults is the option table of Statistic figures.
func statisticDefaults() options {
	o := styleDefaults()
	o["figsize"] = [2]int{5, 5}
	o["bins"] = 15
	o["color"] = []string{"#0504aa"}
	o["alpha"] = 0.7
	o["rwidth"] = 0.85
	return o
}

func (o options) apply(overrides Options) error {
	for key, val := range overrides {
		def, ok := o[key]
		if !ok {
			return fmt.Errorf("%w: %q", ErrUnknownOption, key)
		}
		coerced, err := coerce(def, val)
		if err != nil {
			return fmt.Errorf("%w: %q wants %T, got %T", ErrOptionType, key, def, val)
		}
		o[key] = coerced
	}
	return nil
}

func (o options) clone() options {
	c := make(options, len(o))
	for key, val := range o {
		c[key] = val
	}
	return c
}

// coerce accepts a value for an option slot, widening ints to floats where
// the default is a float.
func coerce(def, val any) (any, error) {
	switch def.(type) {
	case float64:
		switch v := val.(type) {
		case float64:
			return v, nil
		case int:
			return float64(v), nil
		}
	case int:
		if v, ok := val.(int); ok {
			return v, nil
		}
	case string:
		if v, ok := val.(string); ok {
			return v, nil
		}
	case bool:
		if v, ok := val.(bool); ok {
			return v, nil
		}
	case []float64:
		if v, ok := val.([]float64); ok {
			return v, nil
		}
	case []string:
		if v, ok := val.([]string); ok {
			return v, nil
		}
	case [2]int:
		if v, ok := val.([2]int); ok {
			return v, nil
		}
	}
	return nil, fmt.Errorf("type mismatch")
}

func (o options) float(key string) float64    { return o[key].(float64) }
func (o options) int(key string) int          { return o[key].(int) }
func (o options) str(key string) string       { return o[key].(string) }
func (o options) bool(key string) bool        { return o[key].(bool) }
func (o options) floats(key string) []float64 { return o[key].([]float64) }
func (o options) strings(key string) []string { return o[key].([]string) }
func (o options) size(key string) (w, h int) {
	s := o[key].([2]int)
	return s[0], s[1]
}
