package http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/couchcryptid/weather-cli/internal/ansi"
	"github.com/couchcryptid/weather-cli/internal/domain"
	"github.com/couchcryptid/weather-cli/internal/observability"
	"github.com/couchcryptid/weather-cli/internal/render"
)

// fetchTimeout bounds the upstream fetch for one request.
const fetchTimeout = 20 * time.Second

var validate = validator.New()

// RenderDefaults apply when a request does not override them.
type RenderDefaults struct {
	Color  bool
	Border string
	Width  ansi.WidthMode
	Days   int
}

// WeatherHandler serves GET /weather/{location} as plain text.
type WeatherHandler struct {
	fetcher  domain.ReportFetcher
	catalog  *render.Catalog
	gradient render.Gradient
	defaults RenderDefaults
	metrics  *observability.Metrics
	logger   *slog.Logger
}

// NewWeatherHandler wires a fetcher to the renderer.
func NewWeatherHandler(fetcher domain.ReportFetcher, catalog *render.Catalog, gradient render.Gradient, defaults RenderDefaults, metrics *observability.Metrics, logger *slog.Logger) *WeatherHandler {
	return &WeatherHandler{
		fetcher:  fetcher,
		catalog:  catalog,
		gradient: gradient,
		defaults: defaults,
		metrics:  metrics,
		logger:   logger,
	}
}

type weatherQuery struct {
	Location string `validate:"required,max=128"`
	Days     int    `validate:"min=0,max=3"`
	Color    bool
	Border   string `validate:"omitempty,oneof=unicode ascii"`
	Width    string `validate:"omitempty,oneof=runes cells"`
}

func (h *WeatherHandler) bind(r *http.Request) (weatherQuery, error) {
	q := weatherQuery{
		Location: strings.TrimSpace(r.PathValue("location")),
		Days:     h.defaults.Days,
		Color:    h.defaults.Color,
		Border:   h.defaults.Border,
		Width:    string(h.defaults.Width),
	}
	params := r.URL.Query()

	if s := params.Get("days"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			return q, fmt.Errorf("days: %w", err)
		}
		q.Days = n
	}
	if s := params.Get("color"); s != "" {
		b, err := strconv.ParseBool(s)
		if err != nil {
			return q, fmt.Errorf("color: %w", err)
		}
		q.Color = b
	}
	if s := params.Get("border"); s != "" {
		q.Border = strings.ToLower(s)
	}
	if s := params.Get("width"); s != "" {
		q.Width = strings.ToLower(s)
	}

	if err := validate.Struct(q); err != nil {
		return q, err
	}
	return q, nil
}

func (h *WeatherHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	q, err := h.bind(r)
	if err != nil {
		writeText(w, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), fetchTimeout)
	defer cancel()

	rep, err := h.fetcher.Fetch(ctx, q.Location)
	switch {
	case errors.Is(err, domain.ErrUnknownLocation):
		writeText(w, http.StatusNotFound, "unknown location: "+q.Location)
		return
	case err != nil:
		h.logger.Error("fetch report failed", "location", q.Location, "error", err)
		writeText(w, http.StatusBadGateway, "weather service unavailable")
		return
	}

	rep = rep.WithDays(q.Days)
	f := render.NewFormatter(h.catalog, h.gradient, render.Options{
		Painter: ansi.NewPainter(q.Color),
		Measure: ansi.MeasureFor(ansi.WidthMode(q.Width)),
		Border:  render.BorderFor(q.Border),
	})
	lines := f.Format(rep)

	problems := len(rep.FieldErrors())
	h.metrics.ReportsRendered.Inc()
	h.metrics.FieldProblems.Add(float64(problems))

	w.Header().Set("X-Weather-Problems", strconv.Itoa(problems))
	writeText(w, http.StatusOK, strings.Join(lines, "\n"))
}

func writeText(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body + "\n"))
}
