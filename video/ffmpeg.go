package video

import (
	"errors"
	"fmt"
	"image"
	"os"
	"os/exec"

	"github.com/kballard/go-shellquote"
)

// FFmpeg pipes raw RGBA frames into an external ffmpeg process. A missing
// binary is not an error: the user gets a download hint on stderr and the
// output file is simply not written.
type FFmpeg struct{}

func (FFmpeg) Write(path string, frames []*image.RGBA, fps int) error {
	if len(frames) == 0 {
		return errors.New("video: no frames to write")
	}
	if fps <= 0 {
		fps = 2
	}
	bounds := frames[0].Bounds()

	args := []string{
		"-y",
		"-f", "rawvideo",
		"-pixel_format", "rgba",
		"-video_size", fmt.Sprintf("%dx%d", bounds.Dx(), bounds.Dy()),
		"-framerate", fmt.Sprint(fps),
		"-i", "-",
		"-pix_fmt", "yuv420p",
		path,
	}

	bin, err := exec.LookPath("ffmpeg")
	if err != nil {
		fmt.Fprintf(os.Stderr,
			"ffmpeg was not found on PATH; please visit https://ffmpeg.org/ and install a version compatible with your operating system (wanted to run: %s)\n",
			shellquote.Join(append([]string{"ffmpeg"}, args...)...))
		return nil
	}

	cmd := exec.Command(bin, args...)
	cmd.Stderr = os.Stderr
	stdin, err := cmd.StdinPipe()
	if err != nil {
		return err
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("video: start %s: %w", shellquote.Join(append([]string{bin}, args...)...), err)
	}
	for _, frame := range frames {
		if frame.Bounds() != bounds {
			stdin.Close()
			cmd.Wait()
			return errors.New("video: frames have mismatched bounds")
		}
		if _, err := stdin.Write(frame.Pix); err != nil {
			stdin.Close()
			cmd.Wait()
			return fmt.Errorf("video: write frame: %w", err)
		}
	}
	if err := stdin.Close(); err != nil {
		cmd.Wait()
		return err
	}
	if err := cmd.Wait(); err != nil {
		return fmt.Errorf("video: %s: %w", shellquote.Join(append([]string{bin}, args...)...), err)
	}
	return nil
}
