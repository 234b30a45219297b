package ansi

import (
	"github.com/mattn/go-isatty"
)

// ColorMode decides when output is colorized.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// ColorEnabled resolves mode for the file descriptor fd. In auto mode color
// is used only on a terminal and only when NO_COLOR is unset; noColor carries
// that variable's value.
func ColorEnabled(mode ColorMode, fd uintptr, noColor string) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}
	if noColor != "" {
		return false
	}
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
