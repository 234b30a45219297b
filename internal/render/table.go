package render

import (
	"strings"

	"github.com/couchcryptid/weather-cli/internal/ansi"
)

// BorderStyle holds the glyphs used to draw table rules.
type BorderStyle struct {
	Horizontal string
	Vertical   string

	TopLeft, TopMid, TopRight          string
	MidLeft, Cross, MidRight           string
	BottomLeft, BottomMid, BottomRight string
}

var (
	UnicodeBorder = BorderStyle{
		Horizontal: "─", Vertical: "│",
		TopLeft: "┌", TopMid: "┬", TopRight: "┐",
		MidLeft: "├", Cross: "┼", MidRight: "┤",
		BottomLeft: "└", BottomMid: "┴", BottomRight: "┘",
	}

	ASCIIBorder = BorderStyle{
		Horizontal: "-", Vertical: "|",
		TopLeft: "+", TopMid: "+", TopRight: "+",
		MidLeft: "+", Cross: "+", MidRight: "+",
		BottomLeft: "+", BottomMid: "+", BottomRight: "+",
	}
)

// BorderFor returns ASCIIBorder for "ascii" and UnicodeBorder otherwise.
func BorderFor(name string) BorderStyle {
	if strings.EqualFold(name, "ascii") {
		return ASCIIBorder
	}
	return UnicodeBorder
}

// Column is a table column with a fixed content width.
type Column struct {
	Header string
	Width  int
}

// Cell is text that must occupy Width visible columns.
type Cell struct {
	Text  string
	Width int
}

// Padding is the number of spaces needed after Text. Overflowing text gets
// none.
func (c Cell) Padding(measure ansi.Measure) int {
	return ansi.Padding(c.Text, c.Width, measure)
}

// Render returns Text followed by its padding.
func (c Cell) Render(measure ansi.Measure) string {
	return ansi.PadRight(c.Text, c.Width, measure)
}

// Table lays out styled cells in fixed-width columns. A cell wider than its
// column is written unpadded and pushes the rest of its row right.
type Table struct {
	border  BorderStyle
	measure ansi.Measure
	columns []Column
	rows    [][]string
}

// NewTable creates an empty table. A nil measure counts runes.
func NewTable(border BorderStyle, measure ansi.Measure, columns ...Column) *Table {
	if measure == nil {
		measure = ansi.VisibleWidth
	}
	return &Table{
		border:  border,
		measure: measure,
		columns: append([]Column(nil), columns...),
	}
}

// AddRow appends a row. Missing trailing cells render blank and extra cells
// are dropped.
func (t *Table) AddRow(cells ...string) {
	row := make([]string, len(t.columns))
	copy(row, cells)
	t.rows = append(t.rows, row)
}

// Render returns the top rule, header, separator, rows and bottom rule.
func (t *Table) Render() []string {
	b := t.border
	out := make([]string, 0, len(t.rows)+4)

	out = append(out, t.rule(b.TopLeft, b.TopMid, b.TopRight))
	headers := make([]string, len(t.columns))
	for i, c := range t.columns {
		headers[i] = c.Header
	}
	out = append(out, t.line(headers))
	out = append(out, t.rule(b.MidLeft, b.Cross, b.MidRight))
	for _, row := range t.rows {
		out = append(out, t.line(row))
	}
	out = append(out, t.rule(b.BottomLeft, b.BottomMid, b.BottomRight))
	return out
}

func (t *Table) rule(left, mid, right string) string {
	var sb strings.Builder
	sb.WriteString(left)
	for i, c := range t.columns {
		if i > 0 {
			sb.WriteString(mid)
		}
		sb.WriteString(strings.Repeat(t.border.Horizontal, c.Width+2))
	}
	sb.WriteString(right)
	return sb.String()
}

func (t *Table) line(cells []string) string {
	var sb strings.Builder
	sb.WriteString(t.border.Vertical)
	for i, c := range t.columns {
		sb.WriteString(" ")
		sb.WriteString(Cell{Text: cells[i], Width: c.Width}.Render(t.measure))
		sb.WriteString(" ")
		sb.WriteString(t.border.Vertical)
	}
	return sb.String()
}
