package location

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/umahmood/haversine"

	"weatherdash/logger"
	"weatherdash/manager"
	"weatherdash/models"
)

// CurrentLocationName is shown for positions reported by the device.
const CurrentLocationName = "Current Location"

// Fallback reasons.
const (
	reasonDenied      = "denied"
	reasonUnavailable = "unavailable"
	reasonError       = "error"
)

// Resolver implements manager.Resolver. Device failures never reach the
// caller; they are logged and answered with the last known location.
type Resolver struct {
	locator manager.Locator

	mu   sync.RWMutex
	last models.Location
}

// NewResolver creates a resolver asking locator for the device position,
// with fallback as the initial last known location. A nil locator means the
// host has no location capability.
func NewResolver(locator manager.Locator, fallback models.Location) *Resolver {
	return &Resolver{
		locator: locator,
		last:    fallback,
	}
}

func (r *Resolver) ResolveCurrent(ctx context.Context) models.Location {
	return r.ResolveWith(ctx, r.locator)
}

func (r *Resolver) ResolveWith(ctx context.Context, locator manager.Locator) models.Location {
	last := r.Last()

	if locator == nil {
		logFallback(reasonUnavailable, manager.ErrLocationUnavailable, last)
		return last
	}

	coordinate, err := locator.Locate(ctx)
	if err == nil && !coordinate.Valid() {
		err = fmt.Errorf("device reported %+v: %w", coordinate, manager.ErrLocationUnavailable)
	}
	if err != nil {
		logFallback(reason(err), err, last)
		return last
	}

	_, km := haversine.Distance(
		haversine.Coord{Lat: last.Coordinate.Latitude, Lon: last.Coordinate.Longitude},
		haversine.Coord{Lat: coordinate.Latitude, Lon: coordinate.Longitude},
	)
	logger.WithFields(logrus.Fields{
		"latitude":     coordinate.Latitude,
		"longitude":    coordinate.Longitude,
		"distance_km":  km,
		"last_display": last.DisplayName,
	}).Debug("device location resolved")

	return models.Location{Coordinate: coordinate, DisplayName: CurrentLocationName}
}

// Remember records location as the fallback for later device failures.
func (r *Resolver) Remember(location models.Location) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.last = location
}

func (r *Resolver) Last() models.Location {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.last
}

func reason(err error) string {
	switch {
	case errors.Is(err, manager.ErrLocationDenied):
		return reasonDenied
	case errors.Is(err, manager.ErrLocationUnavailable):
		return reasonUnavailable
	}
	return reasonError
}

func logFallback(reason string, err error, fallback models.Location) {
	logger.WithFields(logrus.Fields{
		"reason":   reason,
		"fallback": fallback.DisplayName,
	}).WithError(err).Warn("device location failed, using fallback")
}

var _ manager.Resolver = (*Resolver)(nil)
