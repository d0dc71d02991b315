package video

import (
	"errors"
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"os"
)

// GIF writes frames with the stdlib GIF encoder, quantized to the Plan 9
// palette.
type GIF struct{}

func (GIF) Write(path string, frames []*image.RGBA, fps int) error {
	if len(frames) == 0 {
		return errors.New("video: no frames to write")
	}
	if fps <= 0 {
		fps = 2
	}
	// GIF delays are in hundredths of a second.
	delay := 100 / fps
	if delay < 1 {
		delay = 1
	}

	out := &gif.GIF{LoopCount: 0}
	for _, frame := range frames {
		p := image.NewPaletted(frame.Bounds(), palette.Plan9)
		draw.FloydSteinberg.Draw(p, frame.Bounds(), frame, image.Point{})
		out.Image = append(out.Image, p)
		out.Delay = append(out.Delay, delay)
	}

	w, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := gif.EncodeAll(w, out); err != nil {
		w.Close()
		return err
	}
	return w.Close()
}
