// Command weather is the interactive terminal client. It locates the caller
// by IP, shows the report for that place, then prompts for further
// locations until told to exit. A location given as arguments skips the
// IP lookup.
//
// Usage:
//
//	go run ./cmd/weather [location]
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/jonboulle/clockwork"
	"github.com/joho/godotenv"

	"github.com/couchcryptid/weather-cli/internal/adapter/geoip"
	"github.com/couchcryptid/weather-cli/internal/adapter/upstream"
	"github.com/couchcryptid/weather-cli/internal/adapter/wttr"
	"github.com/couchcryptid/weather-cli/internal/ansi"
	"github.com/couchcryptid/weather-cli/internal/config"
	"github.com/couchcryptid/weather-cli/internal/observability"
	"github.com/couchcryptid/weather-cli/internal/render"
	"github.com/couchcryptid/weather-cli/internal/session"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()
	clock := clockwork.NewRealClock()
	backoff := upstream.DefaultBackoff(cfg.MaxRetries)

	weather := wttr.NewClient(cfg.WTTRBaseURL,
		upstream.NewClient("wttr", cfg.WTTRTimeout, backoff, clock, metrics, logger), logger)
	locator := geoip.NewClient(cfg.IPifyURL, cfg.GeoIPBaseURL,
		upstream.NewClient("geoip", cfg.WTTRTimeout, backoff, clock, metrics, logger), logger)

	formatter := render.NewFormatter(render.DefaultCatalog(), render.DefaultGradient(), render.Options{
		Painter: ansi.NewPainter(ansi.ColorEnabled(cfg.Color, os.Stdout.Fd(), cfg.NoColor)),
		Measure: ansi.MeasureFor(cfg.WidthMode),
		Border:  render.BorderFor(cfg.Border),
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	s := session.New(session.Config{
		In:        os.Stdin,
		Out:       os.Stdout,
		Fetcher:   weather,
		Formatter: formatter,
		Clock:     clock,
		Logger:    logger,
		Days:      -1,
	})

	if location := strings.Join(os.Args[1:], " "); location != "" {
		s.StartWith(location)
	} else {
		start(ctx, s, locator, logger)
	}

	return s.Run(ctx)
}

// start seeds the session with the caller's place. When the lookup fails
// the session falls back to prompting.
func start(ctx context.Context, s *session.Session, locator *geoip.Client, logger *slog.Logger) {
	place, err := locator.Locate(ctx)
	switch {
	case err == nil:
		s.StartAt(place)
	case place.IP == "":
		logger.Warn("public ip lookup failed", "error", err)
		fmt.Println("Failed to get IP address.")
	default:
		logger.Warn("geolocation failed", "ip", place.IP, "error", err)
		fmt.Println("Failed to get location.")
	}
}
