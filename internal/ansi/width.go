package ansi

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

var escapeRe = regexp.MustCompile(`\x1b\[[0-9;]*[mK]`)

// Strip removes SGR and erase-line escape sequences.
func Strip(s string) string {
	return escapeRe.ReplaceAllString(s, "")
}

// VisibleWidth counts the runes left after stripping escape sequences.
func VisibleWidth(s string) int {
	return utf8.RuneCountInString(Strip(s))
}

// CellWidth counts terminal cells after stripping escape sequences, so
// East Asian wide glyphs and most emoji count as two.
func CellWidth(s string) int {
	return runewidth.StringWidth(Strip(s))
}

// Measure computes the visible width of a possibly styled string.
type Measure func(string) int

// WidthMode selects how visible width is measured.
type WidthMode string

const (
	WidthRunes WidthMode = "runes"
	WidthCells WidthMode = "cells"
)

// MeasureFor returns the measure for mode. Unknown modes count runes.
func MeasureFor(mode WidthMode) Measure {
	if mode == WidthCells {
		return CellWidth
	}
	return VisibleWidth
}

// Padding is the number of spaces s needs to measure width. Strings already
// at or over width need none. A nil measure counts runes.
func Padding(s string, width int, measure Measure) int {
	if measure == nil {
		measure = VisibleWidth
	}
	if gap := width - measure(s); gap > 0 {
		return gap
	}
	return 0
}

// PadRight appends Padding spaces after s.
func PadRight(s string, width int, measure Measure) string {
	return s + strings.Repeat(" ", Padding(s, width, measure))
}

// Truncate shortens plain text to at most width runes.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= width {
		return s
	}
	return string([]rune(s)[:width])
}
