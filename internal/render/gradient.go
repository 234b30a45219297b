package render

import (
	"github.com/couchcryptid/weather-cli/internal/ansi"
)

// Threshold maps temperatures at or below Max (°C) to an xterm-256 color.
type Threshold struct {
	Max   float64
	Color int
}

// Gradient is an ascending list of thresholds plus the color used above the
// last bound. It is total: every float64, NaN included, gets a color.
type Gradient struct {
	thresholds []Threshold
	hottest    int
}

// NewGradient copies thresholds, which must be in ascending order.
func NewGradient(hottest int, thresholds ...Threshold) Gradient {
	return Gradient{
		thresholds: append([]Threshold(nil), thresholds...),
		hottest:    hottest,
	}
}

// DefaultGradient runs blue through cyan and green to red.
func DefaultGradient() Gradient {
	return NewGradient(196,
		Threshold{-15, 21},
		Threshold{-12, 27},
		Threshold{-9, 33},
		Threshold{-6, 39},
		Threshold{-3, 45},
		Threshold{0, 51},
		Threshold{2, 50},
		Threshold{4, 49},
		Threshold{6, 48},
		Threshold{8, 47},
		Threshold{10, 46},
		Threshold{13, 82},
		Threshold{16, 118},
		Threshold{19, 154},
		Threshold{22, 190},
		Threshold{25, 226},
		Threshold{28, 220},
		Threshold{31, 214},
		Threshold{34, 208},
		Threshold{37, 202},
	)
}

// Index returns the bucket position for celsius; len(thresholds) is the
// hottest bucket. NaN compares false everywhere and lands there too.
func (g Gradient) Index(celsius float64) int {
	for i, th := range g.thresholds {
		if celsius <= th.Max {
			return i
		}
	}
	return len(g.thresholds)
}

// Color returns the xterm-256 color for celsius.
func (g Gradient) Color(celsius float64) int {
	i := g.Index(celsius)
	if i == len(g.thresholds) {
		return g.hottest
	}
	return g.thresholds[i].Color
}

// Style returns a foreground style for celsius.
func (g Gradient) Style(celsius float64) ansi.Style {
	return ansi.Fg(g.Color(celsius))
}
