package cleopatra

import (
	"fmt"
	"image"
	"image/color"
	"time"

	"github.com/Serapieum-of-alex/cleopatra/draw"
	"github.com/Serapieum-of-alex/cleopatra/video"
)

// Animation is a rendered frame sequence.
type Animation struct {
	// Frames are the rendered canvases, one per stack slice.
	Frames []*image.RGBA

	// Delay is the per-frame display delay.
	Delay time.Duration
}

// Save writes the animation to path. The format is selected by file
// extension: .gif uses the built-in encoder, .mp4/.avi/.mov shell out to
// ffmpeg.
func (a *Animation) Save(path string, fps int) error {
	w, err := video.ForPath(path)
	if err != nil {
		return err
	}
	return w.Write(path, a.Frames, fps)
}

// AnimateConfig controls animation rendering on top of the usual plot
// overlays.
type AnimateConfig struct {
	PlotConfig

	// TextColors are the cell value label colors below and above the
	// background color threshold. Default white, black.
	TextColors [2]string

	// Interval is the per-frame delay, default 200ms.
	Interval time.Duration

	// TextLoc positions the frame label, in fractional cell coordinates.
	// Default {0.1, 0.2}.
	TextLoc [2]float64
}

func (c *AnimateConfig) defaults() {
	c.PlotConfig.defaults()
	if c.TextColors == ([2]string{}) {
		c.TextColors = [2]string{"white", "black"}
	}
	if c.Interval == 0 {
		c.Interval = 200 * time.Millisecond
	}
	if c.TextLoc == ([2]float64{}) {
		c.TextLoc = [2]float64{0.1, 0.2}
	}
}

// Animate renders one frame per slice of a 3D stack, labelled with the
// matching entry of labels. All frames share the stack-wide vmin/vmax so
// colors are comparable across time. The animation is retained for
// [ArrayGlyph.SaveAnimation].
func (g *ArrayGlyph) Animate(labels []string, cfg *AnimateConfig, opts Options) (*Animation, error) {
	if g.stack == nil {
		return nil, ErrNotStack
	}
	if len(labels) != len(g.stack) {
		return nil, fmt.Errorf("%w: %d labels, %d frames", ErrFrameLabels, len(labels), len(g.stack))
	}
	o := g.opts.clone()
	if err := o.apply(opts); err != nil {
		return nil, err
	}
	if cfg == nil {
		cfg = &AnimateConfig{}
	}
	cfg.defaults()

	belowColor, err := parseColor(cfg.TextColors[0])
	if err != nil {
		return nil, err
	}
	labelSize := o.float("cbar_label_size")

	anim := &Animation{Delay: cfg.Interval}
	for i, frame := range g.stack {
		f, norm, err := g.renderGrid(o, frame)
		if err != nil {
			return nil, err
		}
		drawFrameLabel(f, cfg.TextLoc, labels[i], labelSize)
		if o.bool("display_cell_value") {
			g.drawCellValues(f, o, frame, norm, cfg.TextColors[1], belowColor)
		}
		if err := g.drawPoints(f, &cfg.PlotConfig); err != nil {
			return nil, err
		}
		anim.Frames = append(anim.Frames, f.img)
	}
	g.anim = anim
	debugf("rendered %d animation frames, %v delay", len(anim.Frames), anim.Delay)
	return anim, nil
}

// drawFrameLabel writes the per-frame time caption, truncated to ten
// characters like a yyyy-mm-dd date.
func drawFrameLabel(f *figure, loc [2]float64, label string, size float64) {
	if r := []rune(label); len(r) > 10 {
		label = string(r[:10])
	}
	p := f.cellCenter(loc[0], loc[1])
	draw.Text(f.img, p, "Date = "+label, size, color.Black)
}

// SaveAnimation writes the animation produced by the last [Animate] call.
func (g *ArrayGlyph) SaveAnimation(path string, fps int) error {
	if g.anim == nil {
		return ErrNoAnimation
	}
	return g.anim.Save(path, fps)
}
