package cleopatra

import (
	"errors"
	"fmt"
	"os"
)

var debug bool

func init() {
	debug = os.Getenv("CLEOPATRA_DEBUG") != ""
}

func debugf(format string, args ...any) {
	if !debug {
		return
	}
	fmt.Fprintf(os.Stderr, "cleopatra: "+format+"\n", args...)
}

// Errors.
var (
	ErrUnknownOption = errors.New("cleopatra: unknown option")
	ErrOptionType    = errors.New("cleopatra: option value has the wrong type")
	ErrColorScale    = errors.New("cleopatra: invalid color scale")
	ErrColorCount    = errors.New("cleopatra: color count does not match series count")
	ErrBands         = errors.New("cleopatra: RGB display needs 3 bands")
	ErrFrameLabels   = errors.New("cleopatra: label count does not match frame count")
	ErrNoAnimation   = errors.New("cleopatra: no animation, call Animate first")
	ErrNotStack      = errors.New("cleopatra: operation needs a 3D stack")
)
