// Package ratelimit paces outbound calls to the public weather services.
package ratelimit

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/time/rate"

	"weatherdash/manager"
	"weatherdash/models"
)

// Geocoding wraps a manager.Geocoding with rate limiting
type Geocoding struct {
	source  manager.Geocoding
	limiter *rate.Limiter
}

// NewGeocoding creates a rate limited geocoder.
// rps is the maximum requests per second allowed, burst the maximum burst size.
func NewGeocoding(source manager.Geocoding, rps float64, burst int) *Geocoding {
	return &Geocoding{
		source:  source,
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
	}
}

// Resolve waits for limiter permission, then forwards to the underlying geocoder.
// Blank names are forwarded immediately since they never reach the network.
func (g *Geocoding) Resolve(ctx context.Context, name string) (models.Location, error) {
	if strings.TrimSpace(name) == "" {
		return g.source.Resolve(ctx, name)
	}

	if err := wait(ctx, g.limiter); err != nil {
		return models.Location{}, err
	}

	return g.source.Resolve(ctx, name)
}

// Forecast wraps a manager.Forecast with rate limiting
type Forecast struct {
	source  manager.Forecast
	limiter *rate.Limiter
}

// NewForecast creates a rate limited forecast fetcher.
func NewForecast(source manager.Forecast, rps float64, burst int) *Forecast {
	return &Forecast{
		source:  source,
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
	}
}

// Fetch waits for limiter permission, then forwards to the underlying fetcher.
func (f *Forecast) Fetch(ctx context.Context, coordinate models.Coordinate) (*models.ForecastResponse, error) {
	if err := wait(ctx, f.limiter); err != nil {
		return nil, err
	}

	return f.source.Fetch(ctx, coordinate)
}

func wait(ctx context.Context, limiter *rate.Limiter) error {
	if err := limiter.Wait(ctx); err != nil {
		return manager.NewNetworkError(fmt.Errorf("rate limit wait canceled: %w", err))
	}
	return nil
}

var (
	_ manager.Geocoding = (*Geocoding)(nil)
	_ manager.Forecast  = (*Forecast)(nil)
)
