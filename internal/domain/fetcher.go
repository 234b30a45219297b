package domain

import (
	"context"
	"errors"
)

// ErrUnknownLocation is returned when the weather source does not recognize
// the requested location.
var ErrUnknownLocation = errors.New("unknown location")

// ReportFetcher retrieves a weather report for a free-text location.
type ReportFetcher interface {
	Fetch(ctx context.Context, location string) (Report, error)
}

// Place is the caller's approximate position as resolved from their IP.
type Place struct {
	IP      string
	City    string
	Country string
}

// Query returns the location string to hand to a ReportFetcher.
func (p Place) Query() string {
	if p.City == "" {
		return p.Country
	}
	if p.Country == "" {
		return p.City
	}
	return p.City + ", " + p.Country
}

// Locator resolves the caller's approximate position.
type Locator interface {
	Locate(ctx context.Context) (Place, error)
}
