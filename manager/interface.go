package manager

import (
	"context"

	"weatherdash/models"
)

//go:generate mockgen -source=interface.go -destination=mock/mock.go

// Geocoding resolves a free-text place name to a Location.
type Geocoding interface {
	Resolve(ctx context.Context, name string) (models.Location, error)
}

// Forecast retrieves the forecast payload for a coordinate.
type Forecast interface {
	Fetch(ctx context.Context, coordinate models.Coordinate) (*models.ForecastResponse, error)
}

// Locator reports where the device is. It fails with ErrLocationDenied or
// ErrLocationUnavailable when it can't.
type Locator interface {
	Locate(ctx context.Context) (models.Coordinate, error)
}

// Resolver picks the location to show when the user hasn't searched.
// It never fails: device errors fall back to the last known location.
type Resolver interface {
	ResolveCurrent(ctx context.Context) models.Location
	ResolveWith(ctx context.Context, locator Locator) models.Location
	Remember(location models.Location)
	Last() models.Location
}
