// Command render renders a saved wttr.in j1 payload without touching the
// network. It is handy for producing and inspecting fixtures.
//
// Usage:
//
//	curl -s 'https://wttr.in/Oslo?format=j1' > oslo.json
//	go run ./cmd/render -in oslo.json -days 1 -color
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/couchcryptid/weather-cli/internal/adapter/wttr"
	"github.com/couchcryptid/weather-cli/internal/ansi"
	"github.com/couchcryptid/weather-cli/internal/domain"
	"github.com/couchcryptid/weather-cli/internal/render"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	in := flag.String("in", "-", "j1 JSON file to render, - for stdin")
	out := flag.String("out", "-", "output file, - for stdout")
	days := flag.Int("days", -1, "forecast days to show, negative for all")
	colorize := flag.Bool("color", false, "emit ANSI color sequences")
	border := flag.String("border", "unicode", "table border: unicode or ascii")
	width := flag.String("width", string(ansi.WidthRunes), "width measure: runes or cells")
	flag.Parse()

	if *border != "unicode" && *border != "ascii" {
		flag.Usage()
		return fmt.Errorf("invalid -border %q", *border)
	}
	mode := ansi.WidthMode(*width)
	if mode != ansi.WidthRunes && mode != ansi.WidthCells {
		flag.Usage()
		return fmt.Errorf("invalid -width %q", *width)
	}

	rep, err := decodeFile(*in)
	if err != nil {
		return err
	}

	f := render.NewFormatter(render.DefaultCatalog(), render.DefaultGradient(), render.Options{
		Painter: ansi.NewPainter(*colorize),
		Measure: ansi.MeasureFor(mode),
		Border:  render.BorderFor(*border),
	})
	text := strings.Join(f.Format(rep.WithDays(*days)), "\n") + "\n"

	if err := writeText(*out, text); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	printProblems(rep)
	return nil
}

func decodeFile(path string) (domain.Report, error) {
	var r io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return domain.Report{}, fmt.Errorf("open: %w", err)
		}
		defer f.Close()
		r = f
	}
	rep, err := wttr.Decode(r)
	if err != nil {
		return domain.Report{}, fmt.Errorf("decode %s: %w", path, err)
	}
	return rep, nil
}

func writeText(path, text string) error {
	if path == "-" {
		_, err := io.WriteString(os.Stdout, text)
		return err
	}
	return os.WriteFile(path, []byte(text), 0o600)
}

// printProblems logs every field that failed to decode, grouped by message.
func printProblems(rep domain.Report) {
	errs := rep.FieldErrors()
	if len(errs) == 0 {
		return
	}
	counts := map[string]int{}
	var order []string
	for _, err := range errs {
		msg := err.Error()
		if counts[msg] == 0 {
			order = append(order, msg)
		}
		counts[msg]++
	}
	log.Printf("%d field problems", len(errs))
	for _, msg := range order {
		log.Printf("  %-40s %d", msg, counts[msg])
	}
}
