package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/tj/assert"

	"weatherdash/manager"
	"weatherdash/models"
)

type countingSource struct {
	calls int32
	err   error
	gate  chan struct{}
}

func (s *countingSource) Fetch(ctx context.Context, coordinate models.Coordinate) (*models.ForecastResponse, error) {
	atomic.AddInt32(&s.calls, 1)
	if s.gate != nil {
		select {
		case <-s.gate:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if s.err != nil {
		return nil, s.err
	}
	return &models.ForecastResponse{Latitude: coordinate.Latitude, Longitude: coordinate.Longitude}, nil
}

func (s *countingSource) Calls() int32 {
	return atomic.LoadInt32(&s.calls)
}

func TestKey(t *testing.T) {
	cases := []struct {
		name      string
		coord     models.Coordinate
		precision int
		expected  string
	}{
		{name: "new york", coord: models.Coordinate{Latitude: 40.7128, Longitude: -74.0060}, precision: 2, expected: "40.71,-74.01"},
		{name: "london", coord: models.Coordinate{Latitude: 51.5074, Longitude: -0.1278}, precision: 2, expected: "51.51,-0.13"},
		{name: "whole degrees", coord: models.Coordinate{Latitude: 10, Longitude: 20}, precision: 2, expected: "10.00,20.00"},
		{name: "coarser", coord: models.Coordinate{Latitude: 40.7128, Longitude: -74.0060}, precision: 1, expected: "40.7,-74.0"},
		{name: "ties away from zero", coord: models.Coordinate{Latitude: 0.125, Longitude: -0.125}, precision: 2, expected: "0.13,-0.13"},
		{name: "ties in range", coord: models.Coordinate{Latitude: 40.375, Longitude: -73.625}, precision: 2, expected: "40.38,-73.63"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Key(tc.coord, tc.precision))
		})
	}
}

func TestFetchSameRoundedKey(t *testing.T) {
	ctx := context.Background()
	source := &countingSource{}
	cached := NewCachedForecast(source, NewStore(8, 0), DefaultPrecision)

	first, err := cached.Fetch(ctx, models.Coordinate{Latitude: 40.7128, Longitude: -74.0060})
	assert.Nil(t, err)

	second, err := cached.Fetch(ctx, models.Coordinate{Latitude: 40.7131, Longitude: -74.0058})
	assert.Nil(t, err)

	assert.Equal(t, int32(1), source.Calls())
	assert.True(t, first == second)

	hits, misses := cached.Stats()
	assert.Equal(t, int64(1), hits)
	assert.Equal(t, int64(1), misses)
}

func TestFetchDifferentKeys(t *testing.T) {
	ctx := context.Background()
	source := &countingSource{}
	cached := NewCachedForecast(source, NewStore(8, 0), DefaultPrecision)

	_, err := cached.Fetch(ctx, models.Coordinate{Latitude: 40.71, Longitude: -74.00})
	assert.Nil(t, err)
	_, err = cached.Fetch(ctx, models.Coordinate{Latitude: 40.72, Longitude: -74.00})
	assert.Nil(t, err)

	assert.Equal(t, int32(2), source.Calls())
}

func TestFetchFailureNotCached(t *testing.T) {
	ctx := context.Background()
	source := &countingSource{err: manager.NewStatusError("Failed to fetch weather data", "500 Internal Server Error")}
	store := NewStore(8, 0)
	cached := NewCachedForecast(source, store, DefaultPrecision)
	coord := models.Coordinate{Latitude: 1, Longitude: 2}

	for i := 0; i < 2; i++ {
		resp, err := cached.Fetch(ctx, coord)
		assert.Nil(t, resp)

		var netErr *manager.NetworkError
		assert.True(t, errors.As(err, &netErr))
	}

	assert.Equal(t, int32(2), source.Calls())
	assert.Equal(t, 0, store.Len())
}

func TestFetchSingleFlight(t *testing.T) {
	ctx := context.Background()
	source := &countingSource{gate: make(chan struct{})}
	cached := NewCachedForecast(source, NewStore(8, 0), DefaultPrecision)
	coord := models.Coordinate{Latitude: 35.6895, Longitude: 139.6917}

	const callers = 8
	results := make([]*models.ForecastResponse, callers)

	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			resp, err := cached.Fetch(ctx, coord)
			assert.Nil(t, err)
			results[i] = resp
		}(i)
	}

	// let the first flight start, then give the others time to join it
	for source.Calls() == 0 {
		time.Sleep(time.Millisecond)
	}
	time.Sleep(20 * time.Millisecond)
	close(source.gate)
	wg.Wait()

	assert.Equal(t, int32(1), source.Calls())
	for _, resp := range results {
		assert.True(t, resp == results[0])
	}
}

func TestFetchSurvivesFirstCallerCancel(t *testing.T) {
	source := &countingSource{gate: make(chan struct{})}
	cached := NewCachedForecast(source, NewStore(8, 0), DefaultPrecision)
	coord := models.Coordinate{Latitude: -33.8688, Longitude: 151.2093}

	firstCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var wg sync.WaitGroup
	wg.Add(2)

	var firstErr error
	go func() {
		defer wg.Done()
		_, firstErr = cached.Fetch(firstCtx, coord)
	}()

	for source.Calls() == 0 {
		time.Sleep(time.Millisecond)
	}

	var (
		second    *models.ForecastResponse
		secondErr error
	)
	go func() {
		defer wg.Done()
		second, secondErr = cached.Fetch(context.Background(), coord)
	}()

	time.Sleep(20 * time.Millisecond)
	cancel()
	time.Sleep(20 * time.Millisecond)
	close(source.gate)
	wg.Wait()

	assert.Nil(t, firstErr)
	assert.Nil(t, secondErr)
	assert.NotNil(t, second)
	assert.Equal(t, int32(1), source.Calls())
}

func TestStoreEviction(t *testing.T) {
	ctx := context.Background()
	source := &countingSource{}
	store := NewStore(1, 0)
	cached := NewCachedForecast(source, store, DefaultPrecision)
	paris := models.Coordinate{Latitude: 48.8566, Longitude: 2.3522}
	rome := models.Coordinate{Latitude: 41.9028, Longitude: 12.4964}

	_, _ = cached.Fetch(ctx, paris)
	_, _ = cached.Fetch(ctx, rome)
	_, _ = cached.Fetch(ctx, paris)

	assert.Equal(t, int32(3), source.Calls())
	assert.Equal(t, 1, store.Len())
}

func TestStoreTTL(t *testing.T) {
	store := NewStore(4, 50*time.Millisecond)
	resp := &models.ForecastResponse{}

	store.Add("1.00,2.00", resp)
	got, ok := store.Get("1.00,2.00")
	assert.True(t, ok)
	assert.True(t, got == resp)

	time.Sleep(100 * time.Millisecond)

	_, ok = store.Get("1.00,2.00")
	assert.False(t, ok)
}
