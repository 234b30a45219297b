package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/weather-cli/internal/ansi"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://wttr.in", cfg.WTTRBaseURL)
	assert.Equal(t, 10*time.Second, cfg.WTTRTimeout)
	assert.Equal(t, "https://api.ipify.org", cfg.IPifyURL)
	assert.Equal(t, "http://ip-api.com/json", cfg.GeoIPBaseURL)
	assert.Equal(t, 2, cfg.MaxRetries)
	assert.Equal(t, ansi.ColorAuto, cfg.Color)
	assert.Equal(t, ansi.WidthRunes, cfg.WidthMode)
	assert.Equal(t, "unicode", cfg.Border)
	assert.Empty(t, cfg.NoColor)
	assert.Equal(t, 100, cfg.CacheSize)
	assert.Equal(t, 10*time.Minute, cfg.CacheTTL)
	assert.Empty(t, cfg.WarmLocations)
	assert.Equal(t, 15*time.Minute, cfg.WarmInterval)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
}

func TestLoad_CustomEnv(t *testing.T) {
	t.Setenv("WTTR_BASE_URL", "http://localhost:8002/")
	t.Setenv("WTTR_TIMEOUT", "3s")
	t.Setenv("IPIFY_URL", "http://localhost:8003")
	t.Setenv("GEOIP_BASE_URL", "http://localhost:8004/json/")
	t.Setenv("UPSTREAM_MAX_RETRIES", "0")
	t.Setenv("WEATHER_COLOR", "ALWAYS")
	t.Setenv("WEATHER_WIDTH_MODE", "cells")
	t.Setenv("WEATHER_BORDER", "ascii")
	t.Setenv("NO_COLOR", "1")
	t.Setenv("WEATHER_CACHE_SIZE", "5")
	t.Setenv("WEATHER_CACHE_TTL", "1m")
	t.Setenv("WEATHER_WARM_LOCATIONS", "Oslo; Paris, France ;;")
	t.Setenv("WEATHER_WARM_INTERVAL", "30m")
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("SHUTDOWN_TIMEOUT", "30s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8002", cfg.WTTRBaseURL)
	assert.Equal(t, 3*time.Second, cfg.WTTRTimeout)
	assert.Equal(t, "http://localhost:8003", cfg.IPifyURL)
	assert.Equal(t, "http://localhost:8004/json", cfg.GeoIPBaseURL)
	assert.Equal(t, 0, cfg.MaxRetries)
	assert.Equal(t, ansi.ColorAlways, cfg.Color)
	assert.Equal(t, ansi.WidthCells, cfg.WidthMode)
	assert.Equal(t, "ascii", cfg.Border)
	assert.Equal(t, "1", cfg.NoColor)
	assert.Equal(t, 5, cfg.CacheSize)
	assert.Equal(t, time.Minute, cfg.CacheTTL)
	assert.Equal(t, []string{"Oslo", "Paris, France"}, cfg.WarmLocations)
	assert.Equal(t, 30*time.Minute, cfg.WarmInterval)
	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, 30*time.Second, cfg.ShutdownTimeout)
}

func TestLoad_InvalidShutdownTimeout(t *testing.T) {
	t.Setenv("SHUTDOWN_TIMEOUT", "not-a-duration")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SHUTDOWN_TIMEOUT")
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		key   string
		value string
	}{
		{"WTTR_TIMEOUT", "bad"},
		{"WTTR_TIMEOUT", "-1s"},
		{"WEATHER_CACHE_TTL", "0s"},
		{"WEATHER_CACHE_SIZE", "0"},
		{"WEATHER_CACHE_SIZE", "many"},
		{"UPSTREAM_MAX_RETRIES", "-1"},
		{"WEATHER_COLOR", "sometimes"},
		{"WEATHER_WIDTH_MODE", "pixels"},
		{"WEATHER_BORDER", "double"},
		{"WEATHER_WARM_INTERVAL", "10s"},
	}

	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.key)
		})
	}
}
