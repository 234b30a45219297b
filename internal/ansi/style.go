// Package ansi styles terminal text with SGR escape sequences and measures
// the visible width of styled strings.
package ansi

import (
	"github.com/fatih/color"
)

// Style is an immutable set of display attributes. The zero Style is plain.
type Style struct {
	fg    int
	bold  bool
	blink bool
}

// Fg returns a style with the given xterm-256 foreground color.
func Fg(n int) Style {
	return Style{fg: n + 1}
}

// Bold returns a copy of s rendered bold.
func (s Style) Bold() Style {
	s.bold = true
	return s
}

// Blink returns a copy of s rendered blinking.
func (s Style) Blink() Style {
	s.blink = true
	return s
}

// IsPlain reports whether the style carries no attributes.
func (s Style) IsPlain() bool {
	return s == Style{}
}

func (s Style) attributes() []color.Attribute {
	var attrs []color.Attribute
	if s.fg > 0 {
		attrs = append(attrs, color.Attribute(38), color.Attribute(5), color.Attribute(s.fg-1))
	}
	if s.bold {
		attrs = append(attrs, color.Bold)
	}
	if s.blink {
		attrs = append(attrs, color.BlinkSlow)
	}
	return attrs
}

// Run is a span of text drawn in a single style.
type Run struct {
	Text  string
	Style Style
}

// Painter applies styles. A disabled painter returns text unchanged so the
// same rendering code produces the plain-text fallback.
type Painter struct {
	enabled bool
}

// NewPainter returns a painter that emits escape sequences when enabled.
func NewPainter(enabled bool) Painter {
	return Painter{enabled: enabled}
}

// Paint wraps text in the style's SGR sequence followed by a reset.
func (p Painter) Paint(text string, s Style) string {
	if !p.enabled || s.IsPlain() || text == "" {
		return text
	}
	c := color.New(s.attributes()...)
	c.EnableColor()
	return c.Sprint(text)
}

// Runs paints each run and concatenates the result.
func (p Painter) Runs(runs ...Run) string {
	out := ""
	for _, r := range runs {
		out += p.Paint(r.Text, r.Style)
	}
	return out
}
