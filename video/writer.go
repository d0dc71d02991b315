// Package video writes rendered frame sequences to disk. GIF output uses
// the stdlib encoder; MP4, AVI and MOV shell out to an external ffmpeg
// binary.
package video

import (
	"errors"
	"fmt"
	"image"
	"path/filepath"
	"strings"
)

// ErrFormat is returned for file extensions no writer supports.
var ErrFormat = errors.New("video: unsupported file format")

// Writer encodes a frame sequence into a file.
type Writer interface {
	Write(path string, frames []*image.RGBA, fps int) error
}

// ForPath selects a writer by the extension of path.
func ForPath(path string) (Writer, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gif":
		return GIF{}, nil
	case ".mp4", ".avi", ".mov":
		return FFmpeg{}, nil
	}
	return nil, fmt.Errorf("%w: %q, use .gif, .mp4, .avi or .mov", ErrFormat, filepath.Ext(path))
}
