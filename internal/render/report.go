package render

import (
	"fmt"
	"strconv"

	"github.com/couchcryptid/weather-cli/internal/ansi"
	"github.com/couchcryptid/weather-cli/internal/domain"
)

// Cell markers for numeric fields that could not be shown.
const (
	MissingMarker = "n/a"
	InvalidMarker = "ERR"
)

// Hourly table columns.
var hourlyColumns = []Column{
	{Header: "Time", Width: 5},
	{Header: "Weather", Width: 20},
	{Header: "Temp", Width: 13},
	{Header: "Wind km/h", Width: 9},
	{Header: "Rain", Width: 9},
}

// Options controls presentation. The zero value renders plain text with
// Unicode borders and rune-counted widths.
type Options struct {
	Painter ansi.Painter
	Measure ansi.Measure
	Border  BorderStyle
}

// Formatter turns a report into display lines. It holds only immutable
// tables and never fails; problems in the report become placeholder text.
type Formatter struct {
	catalog  *Catalog
	gradient Gradient
	opts     Options
}

// NewFormatter wires the catalog and gradient into a formatter.
func NewFormatter(catalog *Catalog, gradient Gradient, opts Options) *Formatter {
	if opts.Measure == nil {
		opts.Measure = ansi.VisibleWidth
	}
	if opts.Border.Vertical == "" {
		opts.Border = UnicodeBorder
	}
	return &Formatter{catalog: catalog, gradient: gradient, opts: opts}
}

// Format renders the location line, problems, current conditions, one table
// per forecast day, and the moon and astronomy sections.
func (f *Formatter) Format(r domain.Report) []string {
	loc := r.Location()
	if loc == "" {
		loc = "location not available"
	}
	out := []string{"Weather report: " + loc}
	for _, p := range r.Problems {
		out = append(out, "Error: "+p.Error())
	}
	out = append(out, "")

	out = append(out, f.current(r.Current)...)
	out = append(out, "")

	for _, d := range r.Days {
		out = append(out, f.dayHeader(d))
		out = append(out, f.hourly(d.Hours)...)
		out = append(out, "")
	}

	out = append(out, f.moon(r.Moon)...)
	out = append(out, f.astronomy(r.Astronomy)...)
	return out
}

func (f *Formatter) current(c *domain.Current) []string {
	if c == nil {
		return []string{"Current conditions not available"}
	}

	condition := c.Condition
	if condition == "" {
		condition = "not available"
	}
	summary := []string{
		"Condition:  " + condition,
		"Temp:       " + f.summaryTemp(c.Temp),
		"Feels like: " + f.summaryTemp(c.FeelsLike),
		"Wind:       " + f.summaryWind(c.Wind),
		"Humidity:   " + summaryValue(c.Humidity, "%"),
		"Visibility: " + summaryValue(c.Visibility, " km"),
		"Pressure:   " + summaryValue(c.Pressure, " hPa"),
	}
	if c.ObservedAt != "" {
		summary = append(summary, "Observed:   "+c.ObservedAt)
	}

	icon := f.catalog.Lookup(c.Condition).Lines(f.opts.Painter)
	lines := make([]string, 0, len(summary))
	for i, s := range summary {
		art := ""
		if i < len(icon) {
			art = icon[i]
		}
		lines = append(lines, ansi.PadRight(art, IconWidth, f.opts.Measure)+"  "+s)
	}
	return lines
}

func (f *Formatter) dayHeader(d domain.ForecastDay) string {
	date := d.Date
	if date == "" {
		date = "unknown date"
	}
	return fmt.Sprintf("Date: %s  High: %s  Low: %s",
		date, f.summaryTemp(d.MaxTemp), f.summaryTemp(d.MinTemp))
}

func (f *Formatter) hourly(hours []domain.Hour) []string {
	tbl := NewTable(f.opts.Border, f.opts.Measure, hourlyColumns...)
	for _, h := range hours {
		tbl.AddRow(
			timeCell(h.TimeCode),
			conditionCell(h.Condition, hourlyColumns[1].Width),
			f.tempCell(h.Temp),
			windCell(h.Wind),
			f.rainCell(h.PrecipMm, h.Condition),
		)
	}
	return tbl.Render()
}

func (f *Formatter) moon(m *domain.Moon) []string {
	if m == nil {
		return []string{"Moon phase not available"}
	}
	phase := m.Phase
	if phase == "" {
		phase = "not available"
	}
	out := []string{"Moon phase: " + phase}
	if m.Illumination != "" {
		out = append(out, "Moon illumination: "+m.Illumination+"%")
	}
	if m.Age != "" {
		out = append(out, "Moon age: "+m.Age+" days")
	}
	return out
}

func (f *Formatter) astronomy(a *domain.Astronomy) []string {
	if a == nil {
		return []string{"Astronomy not available"}
	}
	return []string{
		"Sunrise: " + orNA(a.Sunrise) + "  Sunset: " + orNA(a.Sunset),
		"Moonrise: " + orNA(a.Moonrise) + "  Moonset: " + orNA(a.Moonset),
		twilight("Civil", a.CivilTwilight),
		twilight("Nautical", a.NauticalTwilight),
		twilight("Astronomical", a.AstronomicalTwilight),
	}
}

func twilight(name string, iv domain.Interval) string {
	if iv.Begin == "" && iv.End == "" {
		return name + " twilight not available"
	}
	return name + " twilight: " + orNA(iv.Begin) + " - " + orNA(iv.End)
}

// paintTemp renders "C°C / F°F" with both numbers in the Celsius bucket color.
func (f *Formatter) paintTemp(t domain.Temperature) string {
	style := f.gradient.Style(t.Celsius)
	p := f.opts.Painter
	return p.Paint(strconv.Itoa(t.DisplayCelsius()), style) + "°C / " +
		p.Paint(strconv.Itoa(t.DisplayFahrenheit()), style) + "°F"
}

func (f *Formatter) summaryTemp(n domain.Number) string {
	t, err := domain.TemperatureOf(n)
	if err != nil {
		return "Error: " + err.Error()
	}
	return f.paintTemp(t)
}

func (f *Formatter) summaryWind(w domain.Wind) string {
	if !w.SpeedKmh.OK() {
		return CompassFor(w.Bearing) + " Error: " + w.SpeedKmh.Err.Error()
	}
	return CompassFor(w.Bearing) + " " + w.SpeedKmh.Raw + " km/h"
}

func summaryValue(n domain.Number, unit string) string {
	if !n.OK() {
		return "Error: " + n.Err.Error()
	}
	return n.Raw + unit
}

func (f *Formatter) tempCell(n domain.Number) string {
	t, err := domain.TemperatureOf(n)
	if err != nil {
		return marker(n)
	}
	return f.paintTemp(t)
}

func (f *Formatter) rainCell(n domain.Number, condition string) string {
	text := marker(n)
	if n.OK() {
		text = n.Raw + " mm"
	}
	if Thundery(condition) {
		text = f.opts.Painter.Paint("⚡", ansi.Style(boltFg)) + " " + text
	}
	return text
}

// TimeLabel formats an HMM time code as "HH:00".
func TimeLabel(code int) string {
	return fmt.Sprintf("%02d:00", code/100)
}

func timeCell(n domain.Number) string {
	if !n.OK() {
		return marker(n)
	}
	return TimeLabel(int(n.Value))
}

func conditionCell(condition string, width int) string {
	if condition == "" {
		return MissingMarker
	}
	return ansi.Truncate(condition, width)
}

func windCell(w domain.Wind) string {
	speed := marker(w.SpeedKmh)
	if w.SpeedKmh.OK() {
		speed = w.SpeedKmh.Raw
	}
	return CompassFor(w.Bearing) + " " + speed
}

func marker(n domain.Number) string {
	if n.IsMissing() {
		return MissingMarker
	}
	return InvalidMarker
}

func orNA(s string) string {
	if s == "" {
		return "n/a"
	}
	return s
}
