package ansi_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/couchcryptid/weather-cli/internal/ansi"
)

func TestPaint(t *testing.T) {
	on := ansi.NewPainter(true)
	off := ansi.NewPainter(false)

	t.Run("foreground color", func(t *testing.T) {
		out := on.Paint("hot", ansi.Fg(196))
		assert.Contains(t, out, "\x1b[38;5;196")
		assert.Equal(t, "hot", ansi.Strip(out))
	})

	t.Run("bold and blink", func(t *testing.T) {
		out := on.Paint("⚡", ansi.Fg(228).Bold().Blink())
		assert.Contains(t, out, "\x1b[38;5;228;1;5m")
		assert.Equal(t, "⚡", ansi.Strip(out))
	})

	t.Run("disabled painter is plain", func(t *testing.T) {
		assert.Equal(t, "hot", off.Paint("hot", ansi.Fg(196)))
	})

	t.Run("plain style is untouched", func(t *testing.T) {
		assert.Equal(t, "x", on.Paint("x", ansi.Style{}))
	})

	t.Run("empty text stays empty", func(t *testing.T) {
		assert.Empty(t, on.Paint("", ansi.Fg(21)))
	})
}

func TestRuns(t *testing.T) {
	p := ansi.NewPainter(true)
	out := p.Runs(
		ansi.Run{Text: "  ", Style: ansi.Style{}},
		ansi.Run{Text: "‚'", Style: ansi.Fg(21).Bold()},
		ansi.Run{Text: "⚡", Style: ansi.Fg(228).Blink()},
	)
	assert.Equal(t, "  ‚'⚡", ansi.Strip(out))
	assert.Contains(t, out, "\x1b[38;5;21;1m")
	assert.Contains(t, out, "\x1b[38;5;228;5m")
}

func TestStyleIsPlain(t *testing.T) {
	assert.True(t, ansi.Style{}.IsPlain())
	assert.False(t, ansi.Fg(0).IsPlain())
	assert.False(t, ansi.Style{}.Bold().IsPlain())
	assert.True(t, strings.HasPrefix(ansi.NewPainter(true).Paint("#", ansi.Fg(0)), "\x1b[38;5;0m#"))
}
