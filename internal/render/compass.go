package render

import (
	"math"

	"github.com/couchcryptid/weather-cli/internal/domain"
)

// UnknownDirection is shown when a bearing is missing or not finite.
const UnknownDirection = "?"

var points = [16]string{
	"N", "NNE", "NE", "ENE", "E", "ESE", "SE", "SSE",
	"S", "SSW", "SW", "WSW", "W", "WNW", "NW", "NNW",
}

// Compass converts a bearing in degrees to a 16-point label. Each label
// covers 22.5° centred on its direction; bearings wrap around 360.
func Compass(degrees float64) string {
	if math.IsNaN(degrees) || math.IsInf(degrees, 0) {
		return UnknownDirection
	}
	d := math.Mod(degrees, 360)
	if d < 0 {
		d += 360
	}
	return points[int((d+11.25)/22.5)%16]
}

// CompassFor converts a decoded bearing field.
func CompassFor(n domain.Number) string {
	if !n.OK() {
		return UnknownDirection
	}
	return Compass(n.Value)
}
