package cleopatra

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"strconv"

	xdraw "golang.org/x/image/draw"

	"github.com/Serapieum-of-alex/cleopatra/colors"
	"github.com/Serapieum-of-alex/cleopatra/draw"
	"github.com/Serapieum-of-alex/cleopatra/pixel"
)

// dpi converts figsize inches to canvas pixels.
const dpi = 100

// Figure is a rendered raster ready to be saved or composed further.
type Figure struct {
	img *image.RGBA
}

// Image returns the underlying raster.
func (f *Figure) Image() *image.RGBA { return f.img }

// Bounds returns the canvas rectangle.
func (f *Figure) Bounds() image.Rectangle { return f.img.Bounds() }

// SavePNG writes the figure to path as a PNG file.
func (f *Figure) SavePNG(path string) error {
	w, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(w, f.img); err != nil {
		w.Close()
		return err
	}
	return w.Close()
}

// Canvas layout constants, in pixels.
const (
	marginLeft   = 40
	marginRight  = 40
	marginBottom = 40
	titlePad     = 12
	cbarStrip    = 22
	cbarTickLen  = 4
	cbarTickPad  = 4
	cbarGap      = 14
)

// figure is a canvas under construction: a white background with a title
// band and a plot rectangle, with room reserved for a colorbar.
type figure struct {
	img  *image.RGBA
	plot image.Rectangle

	// Source grid dimensions, for cell coordinate mapping.
	srcW, srcH int

	opts options
}

// newFigure allocates the canvas and draws the title. srcW and srcH are the
// displayed grid dimensions; withCbar reserves space for a colorbar on the
// side given by the cbar_orientation option.
func newFigure(opts options, srcW, srcH int, withCbar bool) *figure {
	wIn, hIn := opts.size("figsize")
	w, h := wIn*dpi, hIn*dpi
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Box(img, img.Bounds(), color.White)

	titleH := draw.TextHeight(opts.float("title_size")) + 2*titlePad
	plot := image.Rect(marginLeft, titleH, w-marginRight, h-marginBottom)
	if withCbar {
		labelH := draw.TextHeight(opts.float("cbar_label_size"))
		tickH := draw.TextHeight(10)
		switch opts.str("cbar_orientation") {
		case "horizontal":
			plot.Max.Y -= cbarStrip + cbarGap + tickH + labelH + 2*cbarTickPad
		default:
			plot.Max.X -= cbarStrip + cbarGap + 60 + labelH + 2*cbarTickPad
		}
	}

	f := &figure{img: img, plot: plot, srcW: srcW, srcH: srcH, opts: opts}
	if title := opts.str("title"); title != "" {
		draw.TextCentered(img, image.Pt(w/2, titleH/2), title, opts.float("title_size"), color.Black)
	}
	return f
}

// blit scales src to fill the plot rectangle. Nearest-neighbor keeps cell
// boundaries crisp.
func (f *figure) blit(src image.Image) {
	xdraw.NearestNeighbor.Scale(f.img, f.plot, src, src.Bounds(), xdraw.Over, nil)
}

// cellCenter maps fractional grid coordinates to the canvas pixel at the
// center of the addressed cell.
func (f *figure) cellCenter(col, row float64) image.Point {
	cw := float64(f.plot.Dx()) / float64(f.srcW)
	ch := float64(f.plot.Dy()) / float64(f.srcH)
	return image.Pt(
		f.plot.Min.X+int((col+0.5)*cw),
		f.plot.Min.Y+int((row+0.5)*ch),
	)
}

// grid draws cell boundary lines over the plot area, blended with the
// grid_alpha option.
func (f *figure) grid() {
	alpha := f.opts.float("grid_alpha")
	if alpha <= 0 {
		return
	}
	c := color.NRGBA{A: uint8(alpha*255 + 0.5)}
	for i := 0; i <= f.srcW; i++ {
		x := f.plot.Min.X + i*f.plot.Dx()/f.srcW
		if x >= f.plot.Max.X {
			x = f.plot.Max.X - 1
		}
		draw.VerticalLine(f.img, x, f.plot.Min.Y, f.plot.Dy(), c)
	}
	for i := 0; i <= f.srcH; i++ {
		y := f.plot.Min.Y + i*f.plot.Dy()/f.srcH
		if y >= f.plot.Max.Y {
			y = f.plot.Max.Y - 1
		}
		draw.HorizontalLine(f.img, f.plot.Min.X, y, f.plot.Dx(), c)
	}
}

// colorbar renders the color strip next to the plot area with tick marks at
// the given data values and the cbar_label caption.
func (f *figure) colorbar(cmap colors.Colormap, norm pixel.Norm, ticks []float64) {
	length := f.opts.float("cbar_length")
	label := f.opts.str("cbar_label")
	labelSize := f.opts.float("cbar_label_size")
	precision := f.opts.int("precision")

	if f.opts.str("cbar_orientation") == "horizontal" {
		span := int(float64(f.plot.Dx()) * length)
		x0 := f.plot.Min.X + (f.plot.Dx()-span)/2
		y0 := f.plot.Max.Y + cbarGap
		strip := image.Rect(x0, y0, x0+span, y0+cbarStrip)
		for x := strip.Min.X; x < strip.Max.X; x++ {
			t := float64(x-strip.Min.X) / float64(span-1)
			draw.VerticalLine(f.img, x, strip.Min.Y, cbarStrip, cmap.At(t))
		}
		draw.Rectangle(f.img, strip, color.Black)
		for _, v := range ticks {
			x := strip.Min.X + int(norm.Normalize(v)*float64(span-1))
			draw.VerticalLine(f.img, x, strip.Max.Y, cbarTickLen, color.Black)
			draw.TextCentered(f.img, image.Pt(x, strip.Max.Y+cbarTickLen+cbarTickPad+draw.TextHeight(10)/2),
				formatTick(v, precision), 10, color.Black)
		}
		if label != "" {
			y := strip.Max.Y + cbarTickLen + 2*cbarTickPad + draw.TextHeight(10) + draw.TextHeight(labelSize)/2
			draw.TextCentered(f.img, image.Pt(strip.Min.X+span/2, y), label, labelSize, color.Black)
		}
		return
	}

	span := int(float64(f.plot.Dy()) * length)
	x0 := f.plot.Max.X + cbarGap
	y0 := f.plot.Min.Y + (f.plot.Dy()-span)/2
	strip := image.Rect(x0, y0, x0+cbarStrip, y0+span)
	for y := strip.Min.Y; y < strip.Max.Y; y++ {
		// t=1 at the top of the strip.
		t := float64(strip.Max.Y-1-y) / float64(span-1)
		draw.HorizontalLine(f.img, strip.Min.X, y, cbarStrip, cmap.At(t))
	}
	draw.Rectangle(f.img, strip, color.Black)
	for _, v := range ticks {
		y := strip.Max.Y - 1 - int(norm.Normalize(v)*float64(span-1))
		draw.HorizontalLine(f.img, strip.Max.X, y, cbarTickLen, color.Black)
		s := formatTick(v, precision)
		draw.Text(f.img, image.Pt(strip.Max.X+cbarTickLen+cbarTickPad, y+draw.TextHeight(10)/3), s, 10, color.Black)
	}
	if label != "" {
		y := strip.Min.Y - cbarTickPad - draw.TextHeight(labelSize)/2
		if y < draw.TextHeight(labelSize) {
			y = strip.Min.Y + span/2
		}
		draw.TextCentered(f.img, image.Pt(strip.Min.X+cbarStrip/2, y), label, labelSize, color.Black)
	}
}

// axisLabels draws the xlabel and ylabel captions when set. The ylabel is
// drawn horizontally beside the plot; there is no text rotation.
func (f *figure) axisLabels() {
	if s := f.opts.str("xlabel"); s != "" {
		size := f.opts.float("xlabel_font_size")
		draw.TextCentered(f.img,
			image.Pt(f.plot.Min.X+f.plot.Dx()/2, f.plot.Max.Y+marginBottom/2), s, size, color.Black)
	}
	if s := f.opts.str("ylabel"); s != "" {
		size := f.opts.float("ylabel_font_size")
		draw.TextCentered(f.img,
			image.Pt(marginLeft/2, f.plot.Min.Y+f.plot.Dy()/2), s, size, color.Black)
	}
}

// formatTick renders a tick value with the requested number of decimals,
// trimming a trailing ".00" style suffix for whole numbers.
func formatTick(v float64, precision int) string {
	if v == float64(int64(v)) {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatFloat(v, 'f', precision, 64)
}

// parseColor resolves a color given as a hex string or a common color name.
func parseColor(s string) (color.Color, error) {
	l, err := colors.New(s)
	if err != nil {
		return nil, fmt.Errorf("cleopatra: bad color %q: %w", s, err)
	}
	cols, err := l.Colors()
	if err != nil {
		return nil, fmt.Errorf("cleopatra: bad color %q: %w", s, err)
	}
	return cols[0], nil
}
