// Package upstream performs resilient GET requests against the public
// services a report depends on.
package upstream

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/sony/gobreaker"

	"github.com/couchcryptid/weather-cli/internal/observability"
)

// maxBody bounds how much of a response is read.
const maxBody = 4 << 20

// ErrCircuitOpen is returned while the breaker rejects requests.
var ErrCircuitOpen = errors.New("circuit breaker open")

// StatusError is a non-2xx response.
type StatusError struct {
	Source string
	Code   int
	Body   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: status %d: %s", e.Source, e.Code, e.Body)
}

// Retryable reports whether the status is worth another attempt.
func (e *StatusError) Retryable() bool {
	return e.Code == http.StatusTooManyRequests || e.Code >= 500
}

// Backoff controls retry pacing. Delays double from Initial up to Max.
type Backoff struct {
	MaxRetries int
	Initial    time.Duration
	Max        time.Duration
}

// DefaultBackoff retries up to maxRetries times, starting at half a second.
func DefaultBackoff(maxRetries int) Backoff {
	return Backoff{MaxRetries: maxRetries, Initial: 500 * time.Millisecond, Max: 5 * time.Second}
}

func (b Backoff) delay(attempt int) time.Duration {
	d := b.Initial
	for i := 0; i < attempt && (b.Max <= 0 || d < b.Max); i++ {
		d *= 2
	}
	if b.Max > 0 && d > b.Max {
		d = b.Max
	}
	return d
}

// Client is an HTTP getter guarded by a circuit breaker with retries.
type Client struct {
	source     string
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker
	backoff    Backoff
	clock      clockwork.Clock
	metrics    *observability.Metrics
	logger     *slog.Logger
}

// NewClient creates a client labelled source in logs and metrics.
func NewClient(source string, timeout time.Duration, backoff Backoff, clock clockwork.Clock, metrics *observability.Metrics, logger *slog.Logger) *Client {
	return &Client{
		source:     source,
		httpClient: &http.Client{Timeout: timeout},
		breaker: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:        source,
			MaxRequests: 3,
			Interval:    time.Minute,
			Timeout:     30 * time.Second,
		}),
		backoff: backoff,
		clock:   clock,
		metrics: metrics,
		logger:  logger,
	}
}

type response struct {
	code int
	body []byte
}

// Get fetches url and returns the body of a 2xx response. Client errors are
// returned as *StatusError at once; transport errors, 429 and 5xx are retried.
func (c *Client) Get(ctx context.Context, url string) ([]byte, error) {
	start := c.clock.Now()
	body, err := c.get(ctx, url)
	c.metrics.FetchDuration.WithLabelValues(c.source).Observe(c.clock.Since(start).Seconds())
	c.metrics.FetchRequests.WithLabelValues(c.source, outcome(err)).Inc()
	return body, err
}

func (c *Client) get(ctx context.Context, url string) ([]byte, error) {
	for attempt := 0; ; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		result, err := c.breaker.Execute(func() (interface{}, error) {
			return c.do(ctx, url)
		})
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, fmt.Errorf("%s: %w", c.source, ErrCircuitOpen)
		}
		if err == nil {
			resp := result.(response)
			if resp.code >= 200 && resp.code < 300 {
				return resp.body, nil
			}
			return nil, &StatusError{Source: c.source, Code: resp.code, Body: snippet(resp.body)}
		}

		if attempt >= c.backoff.MaxRetries || ctx.Err() != nil {
			return nil, err
		}

		delay := c.backoff.delay(attempt)
		c.logger.Warn("upstream request failed, retrying",
			"source", c.source, "attempt", attempt+1, "delay", delay, "error", err)
		c.metrics.FetchRetries.WithLabelValues(c.source).Inc()

		timer := c.clock.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.Chan():
		}
	}
}

// do performs one attempt. Non-retryable statuses are results, not errors,
// so they do not count against the breaker.
func (c *Client) do(ctx context.Context, url string) (response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return response{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", "weather-cli")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return response{}, fmt.Errorf("%s request: %w", c.source, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return response{}, fmt.Errorf("%s read body: %w", c.source, err)
	}

	se := &StatusError{Source: c.source, Code: resp.StatusCode, Body: snippet(body)}
	if se.Retryable() {
		return response{}, se
	}
	return response{code: resp.StatusCode, body: body}, nil
}

func outcome(err error) string {
	var se *StatusError
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, ErrCircuitOpen):
		return "circuit_open"
	case errors.As(err, &se) && se.Code == http.StatusNotFound:
		return "not_found"
	default:
		return "error"
	}
}

func snippet(b []byte) string {
	const n = 200
	if len(b) > n {
		b = b[:n]
	}
	return string(b)
}
