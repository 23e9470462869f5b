package manager

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"weatherdash/logger"
	"weatherdash/models"
	"weatherdash/series"
)

// Triggers that start an acquisition flow.
const (
	TriggerMount   = "mount"
	TriggerLocate  = "locate"
	TriggerSearch  = "search"
	TriggerRefresh = "refresh"
)

type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusSuccess
	StatusError
)

var statusNames = [...]string{"idle", "loading", "success", "error"}

func (s Status) String() string {
	if s < 0 || int(s) >= len(statusNames) {
		return "unknown"
	}
	return statusNames[s]
}

func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// State is a snapshot of what the dashboard should display.
// Forecast and Dashboard always describe Location.
type State struct {
	Status    Status                   `json:"status"`
	Location  models.Location          `json:"location"`
	Forecast  *models.ForecastResponse `json:"-"`
	Dashboard *series.Dashboard        `json:"dashboard,omitempty"`
	Err       string                   `json:"error,omitempty"`
	Seq       uint64                   `json:"seq"`
}

// Controller sequences geocoding and forecast fetches and owns the display state.
// Each trigger takes a sequence number; a result is applied only while its
// sequence is the latest issued, so a slow response never overwrites a newer request.
type Controller struct {
	geocoding Geocoding
	forecast  Forecast
	resolver  Resolver

	mu     sync.Mutex
	state  State
	latest uint64
}

func New(geocoding Geocoding, forecast Forecast, resolver Resolver) *Controller {
	return &Controller{
		geocoding: geocoding,
		forecast:  forecast,
		resolver:  resolver,
	}
}

// Snapshot returns the current state.
func (c *Controller) Snapshot() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.state
}

// Mount performs the initial load from the device or fallback location.
func (c *Controller) Mount(ctx context.Context) State {
	return c.run(ctx, TriggerMount, func(ctx context.Context) (models.Location, error) {
		return c.resolver.ResolveCurrent(ctx), nil
	})
}

// Locate is the "use my location" action with the configured device locator.
func (c *Controller) Locate(ctx context.Context) State {
	return c.LocateWith(ctx, nil)
}

// LocateWith is the "use my location" action with a position reported by the client.
// A nil locator uses the resolver's own.
func (c *Controller) LocateWith(ctx context.Context, locator Locator) State {
	return c.run(ctx, TriggerLocate, func(ctx context.Context) (models.Location, error) {
		if locator == nil {
			return c.resolver.ResolveCurrent(ctx), nil
		}
		return c.resolver.ResolveWith(ctx, locator), nil
	})
}

// Search geocodes query and loads its forecast. Blank input goes straight to
// the error state without touching the displayed data. It still takes a
// sequence number, so a flow already in flight can't clear the error.
func (c *Controller) Search(ctx context.Context, query string) State {
	if strings.TrimSpace(query) == "" {
		c.mu.Lock()
		defer c.mu.Unlock()

		c.latest++
		c.state.Status = StatusError
		c.state.Err = Message(ErrEmptyQuery)
		c.state.Seq = c.latest
		return c.state
	}

	return c.run(ctx, TriggerSearch, func(ctx context.Context) (models.Location, error) {
		return c.geocoding.Resolve(ctx, query)
	})
}

// Refresh reloads the displayed location, or the last known one before any success.
func (c *Controller) Refresh(ctx context.Context) State {
	return c.run(ctx, TriggerRefresh, func(ctx context.Context) (models.Location, error) {
		c.mu.Lock()
		current := c.state
		c.mu.Unlock()

		if current.Forecast != nil {
			return current.Location, nil
		}
		return c.resolver.Last(), nil
	})
}

func (c *Controller) run(ctx context.Context, trigger string, resolve func(context.Context) (models.Location, error)) State {
	seq := c.begin()

	log := logger.WithFields(logrus.Fields{
		"request_id": uuid.NewString(),
		"seq":        seq,
		"trigger":    trigger,
	})
	log.Debug("acquisition started")

	location, err := resolve(ctx)
	if err != nil {
		return c.fail(log, seq, err)
	}

	resp, err := c.forecast.Fetch(ctx, location.Coordinate)
	if err != nil {
		return c.fail(log, seq, err)
	}

	return c.succeed(log, seq, location, resp)
}

func (c *Controller) begin() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.latest++
	c.state.Status = StatusLoading
	c.state.Err = ""
	c.state.Seq = c.latest

	return c.latest
}

func (c *Controller) succeed(log *logrus.Entry, seq uint64, location models.Location, resp *models.ForecastResponse) State {
	dashboard := series.Build(resp)

	c.mu.Lock()
	defer c.mu.Unlock()

	if seq != c.latest {
		log.WithField("latest", c.latest).Info("discarding stale forecast")
		return c.state
	}

	c.state = State{
		Status:    StatusSuccess,
		Location:  location,
		Forecast:  resp,
		Dashboard: dashboard,
		Seq:       seq,
	}
	c.resolver.Remember(location)

	log.WithField("location", location.DisplayName).Info("forecast loaded")

	return c.state
}

func (c *Controller) fail(log *logrus.Entry, seq uint64, err error) State {
	c.mu.Lock()
	defer c.mu.Unlock()

	if seq != c.latest {
		log.WithError(err).WithField("latest", c.latest).Info("discarding stale failure")
		return c.state
	}

	c.state.Status = StatusError
	c.state.Err = Message(err)

	log.WithError(err).Warn("acquisition failed")

	return c.state
}
