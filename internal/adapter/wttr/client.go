// Package wttr fetches and decodes reports from wttr.in's j1 JSON format.
package wttr

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/couchcryptid/weather-cli/internal/adapter/upstream"
	"github.com/couchcryptid/weather-cli/internal/domain"
)

// Getter performs a GET and returns the response body.
type Getter interface {
	Get(ctx context.Context, url string) ([]byte, error)
}

// Client implements domain.ReportFetcher against wttr.in.
type Client struct {
	baseURL string
	getter  Getter
	logger  *slog.Logger
}

// NewClient creates a wttr client rooted at baseURL, e.g. "https://wttr.in".
func NewClient(baseURL string, getter Getter, logger *slog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		getter:  getter,
		logger:  logger,
	}
}

// URL returns the j1 endpoint for location.
func (c *Client) URL(location string) string {
	return c.baseURL + "/" + url.PathEscape(location) + "?format=j1"
}

// Fetch retrieves and decodes the report for location. A 404 or a body that
// is not JSON means wttr.in did not recognize the location.
func (c *Client) Fetch(ctx context.Context, location string) (domain.Report, error) {
	location = strings.TrimSpace(location)
	if location == "" {
		return domain.Report{}, fmt.Errorf("wttr fetch: empty location: %w", domain.ErrUnknownLocation)
	}

	body, err := c.getter.Get(ctx, c.URL(location))
	if err != nil {
		var se *upstream.StatusError
		if errors.As(err, &se) && se.Code == http.StatusNotFound {
			return domain.Report{}, fmt.Errorf("wttr fetch %q: %w", location, domain.ErrUnknownLocation)
		}
		return domain.Report{}, fmt.Errorf("wttr fetch %q: %w", location, err)
	}

	rep, err := Decode(bytes.NewReader(body))
	if err != nil {
		return domain.Report{}, fmt.Errorf("wttr fetch %q: %w: %w", location, domain.ErrUnknownLocation, err)
	}

	if len(rep.Problems) > 0 {
		c.logger.Warn("wttr report incomplete", "location", location, "problems", len(rep.Problems))
	}
	c.logger.Debug("wttr report fetched", "location", location, "area", rep.Area, "days", len(rep.Days))
	return rep, nil
}
