package render

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/weather-cli/internal/ansi"
	"github.com/couchcryptid/weather-cli/internal/domain"
)

func num(field, raw string) domain.Number {
	return domain.ParseNumber(field, &raw)
}

func missing(field string) domain.Number {
	return domain.ParseNumber(field, nil)
}

func sampleReport() domain.Report {
	return domain.Report{
		Area:    "Oslo",
		Country: "Norway",
		Current: &domain.Current{
			Temp:       num("temp_C", "0"),
			FeelsLike:  num("FeelsLikeC", "-3"),
			Condition:  "Partly cloudy",
			Wind:       domain.Wind{Bearing: num("winddirDegree", "350"), SpeedKmh: num("windspeedKmph", "15")},
			Humidity:   num("humidity", "81"),
			Visibility: num("visibility", "10"),
			Pressure:   num("pressure", "1015"),
			ObservedAt: "09:12 AM",
		},
		Days: []domain.ForecastDay{{
			Date:    "2024-05-01",
			MaxTemp: num("maxtempC", "24"),
			MinTemp: num("mintempC", "-15.5"),
			Hours: []domain.Hour{
				{
					TimeCode:  num("time", "0"),
					Temp:      num("tempC", "-3"),
					Condition: "Light rain",
					Wind:      domain.Wind{Bearing: num("winddirDegree", "180"), SpeedKmh: num("windspeedKmph", "9")},
					PrecipMm:  num("precipMM", "0.3"),
				},
				{
					TimeCode:  num("time", "300"),
					Temp:      num("tempC", "warm"),
					Condition: "Thundery heavy rain",
					Wind:      domain.Wind{Bearing: missing("winddirDegree"), SpeedKmh: num("windspeedKmph", "22")},
					PrecipMm:  num("precipMM", "1.2"),
				},
			},
		}},
		Astronomy: &domain.Astronomy{
			Sunrise: "05:01 AM",
			Sunset:  "09:58 PM",
			Moonset: "03:10 AM",
		},
	}
}

func plainFormatter() *Formatter {
	return NewFormatter(DefaultCatalog(), DefaultGradient(), Options{})
}

func TestFormatPlain(t *testing.T) {
	lines := plainFormatter().Format(sampleReport())
	icon := DefaultCatalog().Lookup("Partly cloudy").Lines(ansi.NewPainter(false))
	for i := range icon {
		icon[i] = ansi.PadRight(icon[i], IconWidth, ansi.VisibleWidth)
	}
	blank := "             "

	want := []string{
		"Weather report: Oslo, Norway",
		"",
		icon[0] + "  Condition:  Partly cloudy",
		icon[1] + "  Temp:       0°C / 32°F",
		icon[2] + "  Feels like: -3°C / 26°F",
		icon[3] + "  Wind:       N 15 km/h",
		icon[4] + "  Humidity:   81%",
		blank + "  Visibility: 10 km",
		blank + "  Pressure:   1015 hPa",
		blank + "  Observed:   09:12 AM",
		"",
		"Date: 2024-05-01  High: 24°C / 75°F  Low: -15°C / 4°F",
		"┌───────┬──────────────────────┬───────────────┬───────────┬───────────┐",
		"│ Time  │ Weather              │ Temp          │ Wind km/h │ Rain      │",
		"├───────┼──────────────────────┼───────────────┼───────────┼───────────┤",
		"│ 00:00 │ Light rain           │ -3°C / 26°F   │ S 9       │ 0.3 mm    │",
		"│ 03:00 │ Thundery heavy rain  │ ERR           │ ? 22      │ ⚡ 1.2 mm  │",
		"└───────┴──────────────────────┴───────────────┴───────────┴───────────┘",
		"",
		"Moon phase not available",
		"Sunrise: 05:01 AM  Sunset: 09:58 PM",
		"Moonrise: n/a  Moonset: 03:10 AM",
		"Civil twilight not available",
		"Nautical twilight not available",
		"Astronomical twilight not available",
	}
	if diff := cmp.Diff(want, lines); diff != "" {
		t.Errorf("report mismatch (-want +got):\n%s", diff)
	}
}

func TestFormatCurrentAlignsInCellMode(t *testing.T) {
	rep := sampleReport()
	rep.Current.Condition = "Thundery heavy rain"

	for _, colored := range []bool{false, true} {
		f := NewFormatter(DefaultCatalog(), DefaultGradient(), Options{
			Painter: ansi.NewPainter(colored),
			Measure: ansi.CellWidth,
		})
		lines := f.Format(rep)
		current := lines[2:10]

		for i, l := range current {
			plain := ansi.Strip(l)
			idx := strings.Index(plain, ":")
			require.Positive(t, idx, plain)
			label := strings.LastIndex(plain[:idx], "  ") + 2
			assert.Equal(t, IconWidth+2, ansi.CellWidth(plain[:label]), "line %d: %q", i, plain)
		}
		assert.Contains(t, ansi.Strip(current[3]), "⚡")
	}
}

func TestFormatColoredMatchesPlain(t *testing.T) {
	colored := NewFormatter(DefaultCatalog(), DefaultGradient(), Options{Painter: ansi.NewPainter(true)})
	plain := plainFormatter().Format(sampleReport())
	lines := colored.Format(sampleReport())

	require.Len(t, lines, len(plain))
	for i := range lines {
		assert.Equal(t, plain[i], ansi.Strip(lines[i]))
	}

	// Hour at -3°C sits in the (-6, -3] bucket; both numbers share its color.
	assert.Contains(t, lines[15], "\x1b[38;5;45m-3")
	assert.Contains(t, lines[15], "\x1b[38;5;45m26")
	assert.Contains(t, lines[16], "\x1b[38;5;228;5m⚡")

	for _, l := range lines[12:18] {
		assert.Equal(t, ansi.VisibleWidth(lines[12]), ansi.VisibleWidth(l), ansi.Strip(l))
	}
}

func TestFormatCellWidthAlignment(t *testing.T) {
	f := NewFormatter(DefaultCatalog(), DefaultGradient(), Options{
		Painter: ansi.NewPainter(true),
		Measure: ansi.CellWidth,
		Border:  ASCIIBorder,
	})
	lines := f.Format(sampleReport())

	for _, l := range lines[12:18] {
		assert.Equal(t, ansi.CellWidth(lines[12]), ansi.CellWidth(l), ansi.Strip(l))
	}
	assert.Equal(t, "| Time  | Weather              | Temp          | Wind km/h | Rain      |", lines[13])
}

func TestFormatDegradesOnMissingSections(t *testing.T) {
	r := domain.Report{
		Problems: []error{
			domain.MissingField("nearest_area"),
			domain.MissingField("current_condition"),
		},
	}
	lines := plainFormatter().Format(r)

	want := []string{
		"Weather report: location not available",
		"Error: missing field nearest_area",
		"Error: missing field current_condition",
		"",
		"Current conditions not available",
		"",
		"Moon phase not available",
		"Astronomy not available",
	}
	assert.Equal(t, want, lines)
}

func TestFormatFieldErrorsStayLocal(t *testing.T) {
	r := sampleReport()
	r.Current.Temp = missing("temp_C")
	r.Current.Humidity = num("humidity", "wet")
	r.Days[0].Hours[0].PrecipMm = missing("precipMM")
	r.Moon = &domain.Moon{Phase: "Waxing Gibbous", Illumination: "78", Age: "11"}

	lines := plainFormatter().Format(r)

	assert.Contains(t, lines[3], "Temp:       Error: missing field temp_C")
	assert.Contains(t, lines[4], "Feels like: -3°C / 26°F")
	assert.Contains(t, lines[6], "Humidity:   Error: invalid numeric humidity")
	assert.Equal(t, "│ 00:00 │ Light rain           │ -3°C / 26°F   │ S 9       │ n/a       │", lines[15])
	assert.Equal(t, []string{
		"Moon phase: Waxing Gibbous",
		"Moon illumination: 78%",
		"Moon age: 11 days",
	}, lines[19:22])
}

func TestTimeLabel(t *testing.T) {
	assert.Equal(t, "00:00", TimeLabel(0))
	assert.Equal(t, "03:00", TimeLabel(300))
	assert.Equal(t, "18:00", TimeLabel(1800))
	assert.Equal(t, "21:00", TimeLabel(2100))
}

func TestConditionCellTruncates(t *testing.T) {
	assert.Equal(t, "Moderate or heavy ra", conditionCell("Moderate or heavy rain with thunder", 20))
	assert.Equal(t, MissingMarker, conditionCell("", 20))
}
