package location

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"weatherdash/manager"
	"weatherdash/models"
)

// Static always reports the same position.
type Static models.Coordinate

func (s Static) Locate(ctx context.Context) (models.Coordinate, error) {
	return models.Coordinate(s), nil
}

// None is a host without location capability.
type None struct{}

func (None) Locate(ctx context.Context) (models.Coordinate, error) {
	return models.Coordinate{}, manager.ErrLocationUnavailable
}

// reported is the outcome of a geolocation request made by a client.
type reported struct {
	coordinate models.Coordinate
	err        error
}

func (r reported) Locate(ctx context.Context) (models.Coordinate, error) {
	return r.coordinate, r.err
}

// Reported wraps a position delivered by a client's success callback.
func Reported(coordinate models.Coordinate) manager.Locator {
	return reported{coordinate: coordinate}
}

// ReportedError wraps a client's error callback. Codes follow the browser
// GeolocationPositionError: 1 or "denied" is a permission denial, 2 or
// "unavailable" is a missing position, anything else is a device error.
func ReportedError(code string) manager.Locator {
	var err error

	switch strings.ToLower(strings.TrimSpace(code)) {
	case "1", "denied", "permission_denied":
		err = manager.ErrLocationDenied
	case "2", "unavailable", "position_unavailable", "unsupported":
		err = manager.ErrLocationUnavailable
	case "":
		err = errors.New("device location error")
	default:
		err = fmt.Errorf("device location error: %s", code)
	}

	return reported{err: err}
}
