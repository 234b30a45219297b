package render

import (
	"github.com/couchcryptid/weather-cli/internal/ansi"
)

const (
	// IconHeight is the number of lines in every icon.
	IconHeight = 5
	// IconWidth is the column width reserved for an icon. No line is wider,
	// in runes or in terminal cells.
	IconWidth = 13
)

// IconBlock is a five-line piece of art. Each line is a sequence of runs so
// a single line can mix colors.
type IconBlock struct {
	Name  string
	lines [IconHeight][]ansi.Run
}

// Lines paints the icon. Lines carry no trailing padding; callers pad them to
// IconWidth with the measure they lay out with.
func (b IconBlock) Lines(p ansi.Painter) []string {
	out := make([]string, IconHeight)
	for i, runs := range b.lines {
		out[i] = p.Runs(runs...)
	}
	return out
}

type tone ansi.Style

func (t tone) run(s string) ansi.Run {
	return ansi.Run{Text: s, Style: ansi.Style(t)}
}

var (
	plain       = tone(ansi.Style{})
	sunFg       = tone(ansi.Fg(226))
	cloudFg     = tone(ansi.Fg(250))
	darkCloudFg = tone(ansi.Fg(240).Bold())
	fogFg       = tone(ansi.Fg(251))
	lightRainFg = tone(ansi.Fg(111))
	heavyRainFg = tone(ansi.Fg(21).Bold())
	snowFg      = tone(ansi.Fg(255))
	heavySnowFg = tone(ansi.Fg(255).Bold())
	boltFg      = tone(ansi.Fg(228).Blink())
)

func line(runs ...ansi.Run) []ansi.Run {
	return runs
}

// newIcon copies up to IconHeight lines; missing lines stay empty.
func newIcon(name string, lines ...[]ansi.Run) IconBlock {
	b := IconBlock{Name: name}
	for i := 0; i < IconHeight && i < len(lines); i++ {
		b.lines[i] = append([]ansi.Run(nil), lines[i]...)
	}
	return b
}

func sunnyIcon() IconBlock {
	return newIcon("sunny",
		line(sunFg.run("    \\   /")),
		line(sunFg.run("     .-.")),
		line(sunFg.run("  ― (   ) ―")),
		line(sunFg.run("     `-’")),
		line(sunFg.run("    /   \\")),
	)
}

func partlyCloudyIcon() IconBlock {
	return newIcon("partly cloudy",
		line(sunFg.run("   \\  /")),
		line(sunFg.run(" _ /\"\""), cloudFg.run(".-.")),
		line(sunFg.run("   \\_"), cloudFg.run("(   ).")),
		line(sunFg.run("   /"), cloudFg.run("(___(__)")),
		line(),
	)
}

func cloudyIcon() IconBlock {
	return newIcon("cloudy",
		line(),
		line(cloudFg.run("     .--.")),
		line(cloudFg.run("  .-(    ).")),
		line(cloudFg.run(" (___.__)__)")),
		line(),
	)
}

func overcastIcon() IconBlock {
	return newIcon("overcast",
		line(),
		line(darkCloudFg.run("     .--.")),
		line(darkCloudFg.run("  .-(    ).")),
		line(darkCloudFg.run(" (___.__)__)")),
		line(),
	)
}

func fogIcon() IconBlock {
	return newIcon("fog",
		line(),
		line(fogFg.run(" _ - _ - _ -")),
		line(fogFg.run("  _ - _ - _")),
		line(fogFg.run(" _ - _ - _ -")),
		line(),
	)
}

func lightShowersIcon() IconBlock {
	return newIcon("light showers",
		line(sunFg.run(" _`/\"\""), cloudFg.run(".-.")),
		line(sunFg.run("  ,\\_"), cloudFg.run("(   ).")),
		line(sunFg.run("   /"), cloudFg.run("(___(__)")),
		line(lightRainFg.run("     ‘ ‘ ‘ ‘")),
		line(lightRainFg.run("    ‘ ‘ ‘ ‘")),
	)
}

func heavyShowersIcon() IconBlock {
	return newIcon("heavy showers",
		line(sunFg.run(" _`/\"\""), darkCloudFg.run(".-.")),
		line(sunFg.run("  ,\\_"), darkCloudFg.run("(   ).")),
		line(sunFg.run("   /"), darkCloudFg.run("(___(__)")),
		line(heavyRainFg.run("   ‚‘‚‘‚‘‚‘")),
		line(heavyRainFg.run("   ‚’‚’‚’‚’")),
	)
}

func lightRainIcon() IconBlock {
	return newIcon("light rain",
		line(cloudFg.run("     .-.")),
		line(cloudFg.run("    (   ).")),
		line(cloudFg.run("   (___(__)")),
		line(lightRainFg.run("    ‘ ‘ ‘ ‘")),
		line(lightRainFg.run("   ‘ ‘ ‘ ‘")),
	)
}

func heavyRainIcon() IconBlock {
	return newIcon("heavy rain",
		line(darkCloudFg.run("     .-.")),
		line(darkCloudFg.run("    (   ).")),
		line(darkCloudFg.run("   (___(__)")),
		line(heavyRainFg.run("  ‚‘‚‘‚‘‚‘")),
		line(heavyRainFg.run("  ‚’‚’‚’‚’")),
	)
}

func lightSnowIcon() IconBlock {
	return newIcon("light snow",
		line(cloudFg.run("     .-.")),
		line(cloudFg.run("    (   ).")),
		line(cloudFg.run("   (___(__)")),
		line(snowFg.run("    *  *  *")),
		line(snowFg.run("   *  *  *")),
	)
}

func heavySnowIcon() IconBlock {
	return newIcon("heavy snow",
		line(darkCloudFg.run("     .-.")),
		line(darkCloudFg.run("    (   ).")),
		line(darkCloudFg.run("   (___(__)")),
		line(heavySnowFg.run("   * * * *")),
		line(heavySnowFg.run("  * * * *")),
	)
}

func lightSnowShowersIcon() IconBlock {
	return newIcon("light snow showers",
		line(sunFg.run(" _`/\"\""), cloudFg.run(".-.")),
		line(sunFg.run("  ,\\_"), cloudFg.run("(   ).")),
		line(sunFg.run("   /"), cloudFg.run("(___(__)")),
		line(snowFg.run("     *  *  *")),
		line(snowFg.run("    *  *  *")),
	)
}

func heavySnowShowersIcon() IconBlock {
	return newIcon("heavy snow showers",
		line(sunFg.run(" _`/\"\""), darkCloudFg.run(".-.")),
		line(sunFg.run("  ,\\_"), darkCloudFg.run("(   ).")),
		line(sunFg.run("   /"), darkCloudFg.run("(___(__)")),
		line(heavySnowFg.run("    * * * *")),
		line(heavySnowFg.run("   * * * *")),
	)
}

func lightSleetIcon() IconBlock {
	return newIcon("light sleet",
		line(cloudFg.run("     .-.")),
		line(cloudFg.run("    (   ).")),
		line(cloudFg.run("   (___(__)")),
		line(lightRainFg.run("    ‘ "), snowFg.run("*"), lightRainFg.run(" ‘ "), snowFg.run("*")),
		line(snowFg.run("   *"), lightRainFg.run(" ‘ "), snowFg.run("*"), lightRainFg.run(" ‘")),
	)
}

func lightSleetShowersIcon() IconBlock {
	return newIcon("light sleet showers",
		line(sunFg.run(" _`/\"\""), cloudFg.run(".-.")),
		line(sunFg.run("  ,\\_"), cloudFg.run("(   ).")),
		line(sunFg.run("   /"), cloudFg.run("(___(__)")),
		line(lightRainFg.run("     ‘ "), snowFg.run("*"), lightRainFg.run(" ‘ "), snowFg.run("*")),
		line(snowFg.run("    *"), lightRainFg.run(" ‘ "), snowFg.run("*"), lightRainFg.run(" ‘")),
	)
}

func thunderyShowersIcon() IconBlock {
	return newIcon("thundery showers",
		line(sunFg.run(" _`/\"\""), cloudFg.run(".-.")),
		line(sunFg.run("  ,\\_"), cloudFg.run("(   ).")),
		line(sunFg.run("   /"), cloudFg.run("(___(__)")),
		line(boltFg.run("    ⚡"), lightRainFg.run("‘‘"), boltFg.run("⚡"), lightRainFg.run("‘‘")),
		line(lightRainFg.run("    ‘ ‘ ‘ ‘")),
	)
}

func thunderyHeavyRainIcon() IconBlock {
	return newIcon("thundery heavy rain",
		line(darkCloudFg.run("     .-.")),
		line(darkCloudFg.run("    (   ).")),
		line(darkCloudFg.run("   (___(__)")),
		line(heavyRainFg.run("  ‚‘"), boltFg.run("⚡"), heavyRainFg.run("‘‚"), boltFg.run("⚡"), heavyRainFg.run("‚‘")),
		line(heavyRainFg.run("  ‚’‚’"), boltFg.run("⚡"), heavyRainFg.run("’‚’")),
	)
}

func thunderySnowShowersIcon() IconBlock {
	return newIcon("thundery snow showers",
		line(sunFg.run(" _`/\"\""), cloudFg.run(".-.")),
		line(sunFg.run("  ,\\_"), cloudFg.run("(   ).")),
		line(sunFg.run("   /"), cloudFg.run("(___(__)")),
		line(snowFg.run("    *"), boltFg.run("⚡"), snowFg.run(" *"), boltFg.run("⚡"), snowFg.run(" *")),
		line(snowFg.run("    *  *  *")),
	)
}

func unknownIcon() IconBlock {
	return newIcon("unknown",
		line(plain.run("    .-.")),
		line(plain.run("     __)")),
		line(plain.run("    (")),
		line(plain.run("     `-’")),
		line(plain.run("      •")),
	)
}
