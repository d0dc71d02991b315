package cleopatra

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"strconv"

	"github.com/aclements/go-moremath/stats"

	"github.com/Serapieum-of-alex/cleopatra/draw"
)

// Statistic wraps one or more numeric series for histogram display.
type Statistic struct {
	series [][]float64
	twoD   bool
	opts   options
}

// NewStatistic wraps a single 1D series. opts overrides the histogram
// option table; an unknown option name is an error.
func NewStatistic(values []float64, opts Options) (*Statistic, error) {
	o := statisticDefaults()
	if err := o.apply(opts); err != nil {
		return nil, err
	}
	return &Statistic{series: [][]float64{values}, opts: o}, nil
}

// NewStatisticColumns wraps a 2D row-major table, one series per column.
func NewStatisticColumns(values [][]float64, opts Options) (*Statistic, error) {
	o := statisticDefaults()
	if err := o.apply(opts); err != nil {
		return nil, err
	}
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, fmt.Errorf("cleopatra: empty histogram input")
	}
	cols := len(values[0])
	series := make([][]float64, cols)
	for _, row := range values {
		if len(row) != cols {
			return nil, fmt.Errorf("cleopatra: ragged histogram input")
		}
		for i, v := range row {
			series[i] = append(series[i], v)
		}
	}
	return &Statistic{series: series, twoD: true, opts: o}, nil
}

// Values returns the wrapped series, one per column.
func (s *Statistic) Values() [][]float64 { return s.series }

// HistogramData carries the binning result, one entry per series.
type HistogramData struct {
	// Counts are the per-bin sample counts.
	Counts [][]float64

	// Edges are the bin boundaries, one more than the bin count.
	Edges [][]float64
}

// Histogram renders the series as overlaid histograms, one per column, and
// returns the figure together with the bin counts and edges.
func (s *Statistic) Histogram(opts Options) (*Figure, *HistogramData, error) {
	o := s.opts.clone()
	if err := o.apply(opts); err != nil {
		return nil, nil, err
	}
	colorNames := o.strings("color")
	if len(colorNames) == 0 || (s.twoD && len(colorNames) != len(s.series)) {
		return nil, nil, fmt.Errorf("%w: %d colors, %d series", ErrColorCount, len(colorNames), len(s.series))
	}

	bins := o.int("bins")
	data := &HistogramData{}
	for _, vals := range s.series {
		counts, edges := binSeries(vals, bins)
		data.Counts = append(data.Counts, counts)
		data.Edges = append(data.Edges, edges)
	}

	f := newFigure(o, 1, 1, false)
	s.renderBars(f, o, data, colorNames)
	f.axisLabels()
	return &Figure{img: f.img}, data, nil
}

// binSeries fills a linear histogram spanning the series range.
func binSeries(vals []float64, bins int) (counts, edges []float64) {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range vals {
		if math.IsNaN(v) {
			continue
		}
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	if math.IsInf(lo, 1) || lo == hi {
		// Degenerate range: a single bin around the value.
		hi = lo + 1
	}
	h := stats.NewLinearHist(lo, hi, bins)
	for _, v := range vals {
		if !math.IsNaN(v) {
			h.Add(v)
		}
	}
	_, binned, over := h.Counts()
	counts = make([]float64, bins)
	for i, c := range binned {
		counts[i] = float64(c)
	}
	// Samples equal to the range maximum fall past the last bucket; fold
	// them back so the top edge is inclusive.
	counts[bins-1] += float64(over)

	edges = make([]float64, bins+1)
	for i := range edges {
		edges[i] = lo + float64(i)*(hi-lo)/float64(bins)
	}
	return counts, edges
}

// renderBars draws the overlaid translucent bars plus the y-grid and axis
// annotations.
func (s *Statistic) renderBars(f *figure, o options, data *HistogramData, colorNames []string) {
	alpha := o.float("alpha")
	rwidth := o.float("rwidth")

	// Shared axes over all series.
	xmin, xmax := math.Inf(1), math.Inf(-1)
	peak := 0.0
	for i := range data.Counts {
		edges := data.Edges[i]
		xmin = math.Min(xmin, edges[0])
		xmax = math.Max(xmax, edges[len(edges)-1])
		for _, c := range data.Counts[i] {
			peak = math.Max(peak, c)
		}
	}
	if peak == 0 {
		peak = 1
	}

	toX := func(v float64) int {
		return f.plot.Min.X + int((v-xmin)/(xmax-xmin)*float64(f.plot.Dx()-1))
	}
	toY := func(count float64) int {
		return f.plot.Max.Y - int(count/peak*float64(f.plot.Dy()-1))
	}

	// Horizontal grid lines at five count levels, like a y-axis grid.
	gc := color.NRGBA{A: uint8(o.float("grid_alpha")*255 + 0.5)}
	for i := 1; i <= 5; i++ {
		y := toY(peak * float64(i) / 5)
		draw.HorizontalLine(f.img, f.plot.Min.X, y, f.plot.Dx(), gc)
	}

	for i := range data.Counts {
		name := colorNames[0]
		if i < len(colorNames) {
			name = colorNames[i]
		}
		c, err := parseColor(name)
		if err != nil {
			c = color.Black
		}
		nc := color.NRGBAModel.Convert(c).(color.NRGBA)
		nc.A = uint8(alpha*255 + 0.5)

		edges := data.Edges[i]
		for b, count := range data.Counts[i] {
			if count == 0 {
				continue
			}
			x0, x1 := toX(edges[b]), toX(edges[b+1])
			// Shrink the bar around its bin center by rwidth.
			pad := int(float64(x1-x0) * (1 - rwidth) / 2)
			draw.Fill(f.img, image.Rect(x0+pad, toY(count), x1-pad, f.plot.Max.Y), nc)
		}
	}

	draw.Rectangle(f.img, f.plot, color.Black)
	tickSize := o.float("xtick_font_size")
	draw.Text(f.img, image.Pt(f.plot.Min.X, f.plot.Max.Y+14),
		strconv.FormatFloat(xmin, 'g', 4, 64), tickSize, color.Black)
	hi := strconv.FormatFloat(xmax, 'g', 4, 64)
	draw.Text(f.img, image.Pt(f.plot.Max.X-draw.TextWidth(hi, tickSize), f.plot.Max.Y+14),
		hi, tickSize, color.Black)
	top := strconv.FormatFloat(peak, 'g', -1, 64)
	draw.Text(f.img, image.Pt(f.plot.Min.X-draw.TextWidth(top, tickSize)-4, f.plot.Min.Y+6),
		top, tickSize, color.Black)
}
