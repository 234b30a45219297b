package render

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/couchcryptid/weather-cli/internal/ansi"
)

func TestGradientColor(t *testing.T) {
	g := DefaultGradient()

	tests := []struct {
		name    string
		celsius float64
		want    int
	}{
		{"deep cold", -40, 21},
		{"at -15", -15.0, 21},
		{"just over -15", -14.999, 27},
		{"freezing", 0.0, 51},
		{"just over freezing", 0.1, 50},
		{"mild", 11.5, 82},
		{"warm", 24.9, 226},
		{"at hottest bound", 37, 202},
		{"just over hottest bound", 37.001, 196},
		{"extreme", 55, 196},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, g.Color(tt.celsius))
		})
	}
}

func TestGradientAdjacentBuckets(t *testing.T) {
	g := DefaultGradient()
	assert.Equal(t, g.Index(-15.0)+1, g.Index(-14.999))
}

func TestGradientTotalAndMonotone(t *testing.T) {
	g := DefaultGradient()

	prev := g.Index(math.Inf(-1))
	for c := -60.0; c <= 60; c += 0.25 {
		i := g.Index(c)
		assert.GreaterOrEqual(t, i, prev, "%.2f", c)
		prev = i
	}
	assert.Equal(t, 196, g.Color(math.Inf(1)))
	assert.Equal(t, 21, g.Color(math.Inf(-1)))
	assert.Equal(t, 196, g.Color(math.NaN()))
}

func TestGradientStyle(t *testing.T) {
	assert.Equal(t, ansi.Fg(46), DefaultGradient().Style(9))
}
