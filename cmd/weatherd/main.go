// Command weatherd serves rendered weather reports over HTTP, curl-style:
//
//	curl localhost:8080/weather/Oslo?days=1
//
// Reports are cached in memory and the locations listed in
// WEATHER_WARM_LOCATIONS are refreshed in the background.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/jonboulle/clockwork"
	"github.com/joho/godotenv"

	httpadapter "github.com/couchcryptid/weather-cli/internal/adapter/http"
	"github.com/couchcryptid/weather-cli/internal/adapter/upstream"
	"github.com/couchcryptid/weather-cli/internal/adapter/wttr"
	"github.com/couchcryptid/weather-cli/internal/ansi"
	"github.com/couchcryptid/weather-cli/internal/config"
	"github.com/couchcryptid/weather-cli/internal/observability"
	"github.com/couchcryptid/weather-cli/internal/render"
	"github.com/couchcryptid/weather-cli/internal/scheduler"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()
	clock := clockwork.NewRealClock()

	getter := upstream.NewClient("wttr", cfg.WTTRTimeout, upstream.DefaultBackoff(cfg.MaxRetries), clock, metrics, logger)
	fetcher := wttr.NewCachedFetcher(wttr.NewClient(cfg.WTTRBaseURL, getter, logger), cfg.CacheSize, cfg.CacheTTL, clock, metrics)
	logger.Info("report cache enabled", "size", cfg.CacheSize, "ttl", cfg.CacheTTL)

	warmer := scheduler.NewWarmer(fetcher, cfg.WarmLocations, cfg.WarmInterval, metrics, logger)

	weather := httpadapter.NewWeatherHandler(fetcher, render.DefaultCatalog(), render.DefaultGradient(),
		httpadapter.RenderDefaults{
			Color:  cfg.Color != ansi.ColorNever,
			Border: cfg.Border,
			Width:  cfg.WidthMode,
			Days:   3,
		}, metrics, logger)

	srv := httpadapter.NewServer(cfg.HTTPAddr, weather, warmer, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Start HTTP server.
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
		}
	}()

	// Start cache warmer.
	if err := warmer.Start(ctx); err != nil {
		logger.Error("cache warmer error", "error", err)
	}

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	warmer.Stop()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}

	logger.Info("shutdown complete")
}
