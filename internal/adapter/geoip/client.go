// Package geoip resolves the caller's public IP address and its approximate
// city using ipify and ip-api.
package geoip

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/url"
	"strings"

	"github.com/couchcryptid/weather-cli/internal/domain"
)

// ErrLookupFailed is returned when ip-api cannot place the address.
var ErrLookupFailed = errors.New("geoip lookup failed")

// Getter performs a GET and returns the response body.
type Getter interface {
	Get(ctx context.Context, url string) ([]byte, error)
}

// Client implements domain.Locator.
type Client struct {
	ipifyURL string
	geoURL   string
	getter   Getter
	logger   *slog.Logger
}

// NewClient creates a locator. geoURL is the ip-api JSON root, e.g.
// "http://ip-api.com/json".
func NewClient(ipifyURL, geoURL string, getter Getter, logger *slog.Logger) *Client {
	return &Client{
		ipifyURL: ipifyURL,
		geoURL:   strings.TrimRight(geoURL, "/"),
		getter:   getter,
		logger:   logger,
	}
}

// Locate returns the caller's IP address with its city and country.
func (c *Client) Locate(ctx context.Context) (domain.Place, error) {
	ip, err := c.PublicIP(ctx)
	if err != nil {
		return domain.Place{}, err
	}
	place, err := c.Lookup(ctx, ip)
	if err != nil {
		return domain.Place{IP: ip}, err
	}
	c.logger.Debug("located caller", "ip", ip, "city", place.City, "country", place.Country)
	return place, nil
}

// PublicIP asks ipify for the caller's public address.
func (c *Client) PublicIP(ctx context.Context) (string, error) {
	body, err := c.getter.Get(ctx, c.ipifyURL)
	if err != nil {
		return "", fmt.Errorf("get public ip: %w", err)
	}
	ip := strings.TrimSpace(string(body))
	if net.ParseIP(ip) == nil {
		return "", fmt.Errorf("get public ip: unexpected response %q", ip)
	}
	return ip, nil
}

type lookupResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	City    string `json:"city"`
	Country string `json:"country"`
	Query   string `json:"query"`
}

// Lookup resolves ip to a place.
func (c *Client) Lookup(ctx context.Context, ip string) (domain.Place, error) {
	body, err := c.getter.Get(ctx, c.geoURL+"/"+url.PathEscape(ip))
	if err != nil {
		return domain.Place{}, fmt.Errorf("geoip lookup %s: %w", ip, err)
	}

	var resp lookupResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return domain.Place{}, fmt.Errorf("decode geoip response: %w", err)
	}
	if resp.Status != "success" {
		return domain.Place{}, fmt.Errorf("%w: %s: %s", ErrLookupFailed, ip, resp.Message)
	}
	return domain.Place{IP: ip, City: resp.City, Country: resp.Country}, nil
}
