package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	sharedcfg "github.com/couchcryptid/storm-data-shared/config"

	"github.com/couchcryptid/weather-cli/internal/ansi"
)

// Config holds all settings, populated from environment variables.
type Config struct {
	// Upstream services.
	WTTRBaseURL  string
	WTTRTimeout  time.Duration
	IPifyURL     string
	GeoIPBaseURL string
	MaxRetries   int

	// Presentation.
	Color     ansi.ColorMode
	WidthMode ansi.WidthMode
	Border    string
	NoColor   string

	// Report cache and warmer.
	CacheSize     int
	CacheTTL      time.Duration
	WarmLocations []string
	WarmInterval  time.Duration

	HTTPAddr        string
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration
}

// Load reads configuration from environment variables, applying defaults where unset.
func Load() (*Config, error) {
	shutdownTimeout, err := sharedcfg.ParseShutdownTimeout()
	if err != nil {
		return nil, err
	}

	wttrTimeout, err := parseDuration("WTTR_TIMEOUT", "10s")
	if err != nil {
		return nil, err
	}
	cacheTTL, err := parseDuration("WEATHER_CACHE_TTL", "10m")
	if err != nil {
		return nil, err
	}
	warmInterval, err := parseDuration("WEATHER_WARM_INTERVAL", "15m")
	if err != nil {
		return nil, err
	}
	cacheSize, err := parseInt("WEATHER_CACHE_SIZE", "100", 1)
	if err != nil {
		return nil, err
	}
	maxRetries, err := parseInt("UPSTREAM_MAX_RETRIES", "2", 0)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		WTTRBaseURL:  strings.TrimRight(sharedcfg.EnvOrDefault("WTTR_BASE_URL", "https://wttr.in"), "/"),
		WTTRTimeout:  wttrTimeout,
		IPifyURL:     sharedcfg.EnvOrDefault("IPIFY_URL", "https://api.ipify.org"),
		GeoIPBaseURL: strings.TrimRight(sharedcfg.EnvOrDefault("GEOIP_BASE_URL", "http://ip-api.com/json"), "/"),
		MaxRetries:   maxRetries,

		Color:     ansi.ColorMode(strings.ToLower(sharedcfg.EnvOrDefault("WEATHER_COLOR", "auto"))),
		WidthMode: ansi.WidthMode(strings.ToLower(sharedcfg.EnvOrDefault("WEATHER_WIDTH_MODE", "runes"))),
		Border:    strings.ToLower(sharedcfg.EnvOrDefault("WEATHER_BORDER", "unicode")),
		NoColor:   os.Getenv("NO_COLOR"),

		CacheSize:     cacheSize,
		CacheTTL:      cacheTTL,
		WarmLocations: parseList(os.Getenv("WEATHER_WARM_LOCATIONS")),
		WarmInterval:  warmInterval,

		HTTPAddr:        sharedcfg.EnvOrDefault("HTTP_ADDR", ":8080"),
		LogLevel:        sharedcfg.EnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:       sharedcfg.EnvOrDefault("LOG_FORMAT", "text"),
		ShutdownTimeout: shutdownTimeout,
	}

	if cfg.WTTRBaseURL == "" {
		return nil, errors.New("WTTR_BASE_URL is required")
	}
	switch cfg.Color {
	case ansi.ColorAuto, ansi.ColorAlways, ansi.ColorNever:
	default:
		return nil, errors.New("WEATHER_COLOR must be auto, always or never")
	}
	switch cfg.WidthMode {
	case ansi.WidthRunes, ansi.WidthCells:
	default:
		return nil, errors.New("WEATHER_WIDTH_MODE must be runes or cells")
	}
	if cfg.Border != "unicode" && cfg.Border != "ascii" {
		return nil, errors.New("WEATHER_BORDER must be unicode or ascii")
	}
	if cfg.WarmInterval < time.Minute {
		return nil, errors.New("WEATHER_WARM_INTERVAL must be at least 1m")
	}

	return cfg, nil
}

func parseDuration(key, def string) (time.Duration, error) {
	d, err := time.ParseDuration(sharedcfg.EnvOrDefault(key, def))
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("invalid %s", key)
	}
	return d, nil
}

func parseInt(key, def string, minimum int) (int, error) {
	n, err := strconv.Atoi(sharedcfg.EnvOrDefault(key, def))
	if err != nil || n < minimum {
		return 0, fmt.Errorf("invalid %s: must be an integer >= %d", key, minimum)
	}
	return n, nil
}

func parseList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ";") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
