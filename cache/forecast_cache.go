package cache

import (
	"context"
	"math"
	"strconv"
	"sync/atomic"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"

	"weatherdash/logger"
	"weatherdash/manager"
	"weatherdash/models"
)

// DefaultPrecision rounds keys to 2 decimal places, about 1.1 km.
const DefaultPrecision = 2

// CachedForecast wraps a manager.Forecast with a response cache. Concurrent
// misses for one key share a single upstream request; failures aren't cached.
type CachedForecast struct {
	source    manager.Forecast
	store     *Store
	group     singleflight.Group
	precision int

	hits   atomic.Int64
	misses atomic.Int64
}

// NewCachedForecast creates a cached wrapper around a forecast fetcher.
func NewCachedForecast(source manager.Forecast, store *Store, precision int) *CachedForecast {
	return &CachedForecast{
		source:    source,
		store:     store,
		precision: precision,
	}
}

// Key rounds each component to precision decimals, halves away from zero,
// and joins them as "lat,lon".
func Key(coordinate models.Coordinate, precision int) string {
	return formatRounded(coordinate.Latitude, precision) + "," +
		formatRounded(coordinate.Longitude, precision)
}

func formatRounded(x float64, precision int) string {
	scale := math.Pow10(precision)
	return strconv.FormatFloat(math.Round(x*scale)/scale, 'f', precision, 64)
}

// Fetch returns the cached response for the coordinate's key, or fetches and stores it.
// Repeated hits return the identical pointer.
func (c *CachedForecast) Fetch(ctx context.Context, coordinate models.Coordinate) (*models.ForecastResponse, error) {
	key := Key(coordinate, c.precision)
	log := logger.WithFields(logrus.Fields{"key": key})

	if resp, ok := c.store.Get(key); ok {
		c.hits.Add(1)
		log.Debug("forecast cache hit")
		return resp, nil
	}

	v, err, shared := c.group.Do(key, func() (interface{}, error) {
		// a flight that finished between the lookup above and Do already stored it
		if resp, ok := c.store.Get(key); ok {
			return resp, nil
		}

		c.misses.Add(1)
		log.Debug("forecast cache miss")

		// the flight outlives any single caller that joined it
		resp, err := c.source.Fetch(context.WithoutCancel(ctx), coordinate)
		if err != nil {
			return nil, err
		}

		c.store.Add(key, resp)
		return resp, nil
	})
	if err != nil {
		return nil, err
	}

	if shared {
		log.Debug("forecast request shared")
	}

	return v.(*models.ForecastResponse), nil
}

// Stats returns cache hit and miss counts.
func (c *CachedForecast) Stats() (hits, misses int64) {
	return c.hits.Load(), c.misses.Load()
}

var _ manager.Forecast = (*CachedForecast)(nil)
