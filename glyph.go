package cleopatra

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/Serapieum-of-alex/cleopatra/colors"
	"github.com/Serapieum-of-alex/cleopatra/draw"
	"github.com/Serapieum-of-alex/cleopatra/pixel"
)

// Config controls how an [ArrayGlyph] interprets its input array.
type Config struct {
	// ExcludeValues are sentinel values masked out before display. One
	// sentinel is matched with relative tolerance 1e-7, two with 1e-3.
	// NaN samples are always masked.
	ExcludeValues []float64

	// Extent is the spatial coverage [xmin, ymin, xmax, ymax]. When set,
	// the plot axes are annotated with the corner coordinates.
	Extent []float64

	// RGB selects three band indices (red, green, blue) of a 3D stack to
	// compose into an RGB image. Sentinel-2 style ordering is {3, 2, 1}.
	RGB []int

	// SurfaceReflectance scales raw digital values into 0-1 reflectance
	// for RGB display. Ignored when Percentile is set.
	SurfaceReflectance float64

	// Cutoff caps pixel values per band before reflectance scaling.
	Cutoff []float64

	// Percentile enables per-band contrast stretching between the p-th
	// and (100-p)-th percentiles. Zero means disabled.
	Percentile float64

	// Options overrides entries of the default display option table.
	Options Options
}

// ArrayGlyph wraps a 2D grid or a 3D stack of float64 samples for raster
// display.
type ArrayGlyph struct {
	grid  *pixel.Grid
	stack []*pixel.Grid
	rgb   *pixel.RGBImage

	vmin, vmax   float64
	ticksSpacing float64
	extent       []float64

	opts options
	anim *Animation
}

// New wraps a 2D array. cfg may be nil for defaults.
func New(values [][]float64, cfg *Config) (*ArrayGlyph, error) {
	if cfg == nil {
		cfg = &Config{}
	}
	o := arrayDefaults()
	if err := o.apply(cfg.Options); err != nil {
		return nil, err
	}
	grid, err := pixel.GridFromRows(values)
	if err != nil {
		return nil, err
	}
	if len(cfg.ExcludeValues) > 0 {
		grid.MaskValues(cfg.ExcludeValues...)
	}
	g := &ArrayGlyph{grid: grid, extent: cfg.Extent, opts: o}
	g.setRange(grid.MinMax())
	return g, nil
}

// NewStack wraps a 3D stack, either as an RGB composite (when cfg.RGB is
// set) or as an animatable sequence of 2D slices.
func NewStack(values [][][]float64, cfg *Config) (*ArrayGlyph, error) {
	if cfg == nil {
		cfg = &Config{}
	}
	o := arrayDefaults()
	if err := o.apply(cfg.Options); err != nil {
		return nil, err
	}
	if len(values) == 0 {
		return nil, pixel.ErrEmpty
	}

	if cfg.RGB != nil {
		if len(values) < 3 {
			return nil, fmt.Errorf("%w: got %d", ErrBands, len(values))
		}
		img, err := prepareRGB(values, cfg.RGB, cfg.SurfaceReflectance, cfg.Cutoff, cfg.Percentile)
		if err != nil {
			return nil, err
		}
		return &ArrayGlyph{rgb: img, extent: cfg.Extent, opts: o}, nil
	}

	g := &ArrayGlyph{extent: cfg.Extent, opts: o}
	vmin, vmax := math.NaN(), math.NaN()
	for _, frame := range values {
		grid, err := pixel.GridFromRows(frame)
		if err != nil {
			return nil, err
		}
		if len(cfg.ExcludeValues) > 0 {
			grid.MaskValues(cfg.ExcludeValues...)
		}
		lo, hi := grid.MinMax()
		if math.IsNaN(vmin) || lo < vmin {
			vmin = lo
		}
		if math.IsNaN(vmax) || hi > vmax {
			vmax = hi
		}
		g.stack = append(g.stack, grid)
	}
	g.grid = g.stack[0]
	g.setRange(vmin, vmax)
	return g, nil
}

// setRange fixes vmin/vmax (option overrides win over the data range) and
// derives the default tick spacing.
func (g *ArrayGlyph) setRange(vmin, vmax float64) {
	if v := g.opts.float("vmin"); !math.IsNaN(v) {
		vmin = v
	}
	if v := g.opts.float("vmax"); !math.IsNaN(v) {
		vmax = v
	}
	g.vmin, g.vmax = vmin, vmax
	// Spacing that yields ten ticks.
	g.ticksSpacing = (vmax - vmin) / 10
}

// VMin returns the smallest displayed value.
func (g *ArrayGlyph) VMin() float64 { return g.vmin }

// VMax returns the largest displayed value.
func (g *ArrayGlyph) VMax() float64 { return g.vmax }

// Count returns the number of unmasked cells of the displayed grid.
func (g *ArrayGlyph) Count() int {
	if g.grid == nil {
		return 0
	}
	return g.grid.Count()
}

func (g *ArrayGlyph) String() string {
	return fmt.Sprintf("Min: %v\nMax: %v\nExclude: masked %d of %d cells\nRGB: %v",
		g.vmin, g.vmax, g.gridCells()-g.Count(), g.gridCells(), g.rgb != nil)
}

func (g *ArrayGlyph) gridCells() int {
	if g.grid == nil {
		return 0
	}
	return g.grid.W * g.grid.H
}

// Ticks returns the colorbar tick values: steps of the tick spacing from
// vmin, plus one extra tick when the spacing does not divide vmax evenly.
func (g *ArrayGlyph) Ticks() []float64 {
	spacing := g.opts.float("ticks_spacing")
	if spacing == 0 {
		spacing = g.ticksSpacing
	}
	return ticksFor(g.vmin, g.vmax, spacing)
}

func ticksFor(vmin, vmax, spacing float64) []float64 {
	if spacing <= 0 || math.IsNaN(spacing) {
		return []float64{vmin, vmax}
	}
	// math.Mod accumulates float error here, hence the rounded remainder.
	rem := math.Round(math.Remainder(vmax, spacing)*1000) / 1000
	var ticks []float64
	for i := 0; ; i++ {
		v := vmin + float64(i)*spacing
		if v >= vmax+spacing {
			break
		}
		ticks = append(ticks, v)
	}
	if rem != 0 {
		ticks = append(ticks, math.Trunc(vmax/spacing)*spacing+spacing)
	}
	return ticks
}

// normFor dispatches the color_scale option to a normalization. It returns
// the norm and the tick values the colorbar should annotate.
func normFor(o options, vmin, vmax float64, ticks []float64) (pixel.Norm, []float64, error) {
	switch scale := strings.ToLower(o.str("color_scale")); scale {
	case "linear":
		return pixel.Linear{Vmin: vmin, Vmax: vmax}, ticks, nil
	case "power":
		return pixel.Power{Vmin: vmin, Vmax: vmax, Gamma: o.float("gamma")}, ticks, nil
	case "sym-lognorm":
		return pixel.SymLog{
			Vmin:      vmin,
			Vmax:      vmax,
			LinThresh: o.float("line_threshold"),
			LinScale:  o.float("line_scale"),
		}, ticks, nil
	case "boundary-norm":
		bounds := o.floats("bounds")
		if len(bounds) == 0 {
			bounds = ticks
		}
		return pixel.Boundary{Bounds: bounds}, bounds, nil
	case "midpoint":
		return pixel.Midpoint{Vmin: vmin, Vmax: vmax, Mid: o.float("midpoint")}, ticks, nil
	default:
		return nil, nil, fmt.Errorf("%w: %q, use linear, power, sym-lognorm, boundary-norm or midpoint", ErrColorScale, scale)
	}
}

// Point is an overlay marker addressed in fractional cell coordinates.
type Point struct {
	ID  float64
	Row float64
	Col float64
}

// PlotConfig controls the optional plot overlays.
type PlotConfig struct {
	Points     []Point
	PointColor string // marker color, default red
	PointSize  int    // marker area in squared points, default 100
	IDColor    string // id label color, default blue
	IDSize     float64
}

func (c *PlotConfig) defaults() {
	if c.PointColor == "" {
		c.PointColor = "red"
	}
	if c.PointSize == 0 {
		c.PointSize = 100
	}
	if c.IDColor == "" {
		c.IDColor = "blue"
	}
	if c.IDSize == 0 {
		c.IDSize = 10
	}
}

// Plot renders the array into a figure raster. cfg may be nil, opts
// overrides the display options for this call only.
func (g *ArrayGlyph) Plot(cfg *PlotConfig, opts Options) (*Figure, error) {
	o := g.opts.clone()
	if err := o.apply(opts); err != nil {
		return nil, err
	}
	if cfg == nil {
		cfg = &PlotConfig{}
	}
	cfg.defaults()

	if g.rgb != nil {
		f := newFigure(o, g.rgb.Rect.Dx(), g.rgb.Rect.Dy(), false)
		f.blit(g.rgb)
		g.drawExtent(f, o)
		if err := g.drawPoints(f, cfg); err != nil {
			return nil, err
		}
		return &Figure{img: f.img}, nil
	}

	f, norm, err := g.renderGrid(o, g.grid)
	if err != nil {
		return nil, err
	}
	if o.bool("display_cell_value") {
		g.drawCellValues(f, o, g.grid, norm, "", color.White)
	}
	if err := g.drawPoints(f, cfg); err != nil {
		return nil, err
	}
	debugf("rendered %dx%d figure, scale %s", f.img.Rect.Dx(), f.img.Rect.Dy(), o.str("color_scale"))
	return &Figure{img: f.img}, nil
}

// renderGrid draws one grid through the configured scale and colormap onto
// a fresh canvas with a colorbar. Tick endpoints override vmin/vmax so the
// colorbar covers the full tick range.
func (g *ArrayGlyph) renderGrid(o options, grid *pixel.Grid) (*figure, pixel.Norm, error) {
	spacing := o.float("ticks_spacing")
	if spacing == 0 {
		spacing = g.ticksSpacing
	}
	vmin, vmax := g.vmin, g.vmax
	if v := o.float("vmin"); !math.IsNaN(v) {
		vmin = v
	}
	if v := o.float("vmax"); !math.IsNaN(v) {
		vmax = v
	}
	ticks := ticksFor(vmin, vmax, spacing)
	if len(ticks) > 0 {
		vmin, vmax = ticks[0], ticks[len(ticks)-1]
	}

	norm, cbarTicks, err := normFor(o, vmin, vmax, ticks)
	if err != nil {
		return nil, nil, err
	}
	cmap, err := colors.ByName(o.str("cmap"))
	if err != nil {
		return nil, nil, err
	}

	f := newFigure(o, grid.W, grid.H, true)
	f.blit(&pixel.GlyphImage{Grid: grid, Norm: norm, Cmap: cmap})
	f.grid()
	f.colorbar(cmap, norm, cbarTicks)
	f.axisLabels()
	g.drawExtent(f, o)
	return f, norm, nil
}

// drawExtent annotates the plot corners with the spatial coverage.
func (g *ArrayGlyph) drawExtent(f *figure, o options) {
	if len(g.extent) != 4 {
		return
	}
	size := o.float("xtick_font_size")
	format := func(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }
	draw.Text(f.img, image.Pt(f.plot.Min.X+2, f.plot.Max.Y+12), format(g.extent[0]), size, color.Black)
	x1 := format(g.extent[2])
	draw.Text(f.img, image.Pt(f.plot.Max.X-draw.TextWidth(x1, size)-2, f.plot.Max.Y+12), x1, size, color.Black)
	y0 := format(g.extent[1])
	draw.Text(f.img, image.Pt(f.plot.Min.X-draw.TextWidth(y0, size)-4, f.plot.Max.Y-2), y0, size, color.Black)
	y1 := format(g.extent[3])
	draw.Text(f.img, image.Pt(f.plot.Min.X-draw.TextWidth(y1, size)-4, f.plot.Min.Y+12), y1, size, color.Black)
}

// drawCellValues writes each unmasked sample centered on its cell. With an
// empty aboveColor name every label uses fallback; otherwise the label color
// switches on whether the normalized value exceeds threshold.
func (g *ArrayGlyph) drawCellValues(f *figure, o options, grid *pixel.Grid, norm pixel.Norm, aboveColor string, fallback color.Color) {
	precision := o.int("precision")
	size := o.float("num_size")
	threshold := g.backgroundThreshold(o, norm)
	above := fallback
	if aboveColor != "" {
		if c, err := parseColor(aboveColor); err == nil {
			above = c
		}
	}
	for y := 0; y < grid.H; y++ {
		for x := 0; x < grid.W; x++ {
			if grid.Masked(x, y) {
				continue
			}
			v := grid.At(x, y)
			c := fallback
			if aboveColor != "" && norm.Normalize(v) > threshold {
				c = above
			}
			draw.TextCentered(f.img, f.cellCenter(float64(x), float64(y)), formatTick(v, precision), size, c)
		}
	}
}

// backgroundThreshold is the normalized value above which cell text flips to
// the dark color: the background_color_threshold option when set, half the
// normalized maximum otherwise.
func (g *ArrayGlyph) backgroundThreshold(o options, norm pixel.Norm) float64 {
	if t := o.float("background_color_threshold"); !math.IsNaN(t) {
		return norm.Normalize(t)
	}
	return norm.Normalize(g.vmax) / 2
}

// drawPoints renders the point markers and their id labels.
func (g *ArrayGlyph) drawPoints(f *figure, cfg *PlotConfig) error {
	if len(cfg.Points) == 0 {
		return nil
	}
	marker, err := parseColor(cfg.PointColor)
	if err != nil {
		return err
	}
	idColor, err := parseColor(cfg.IDColor)
	if err != nil {
		return err
	}
	// Marker size is an area in squared points.
	radius := int(math.Sqrt(float64(cfg.PointSize)/math.Pi) + 0.5)
	if radius < 1 {
		radius = 1
	}
	for _, p := range cfg.Points {
		c := f.cellCenter(p.Col, p.Row)
		draw.FilledCircle(f.img, c.X, c.Y, radius, marker)
		id := strconv.FormatFloat(p.ID, 'g', -1, 64)
		draw.TextCentered(f.img, c, id, cfg.IDSize, idColor)
	}
	return nil
}
