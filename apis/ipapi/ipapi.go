// Package ipapi approximates the device position from its public IP address,
// for hosts without a platform geolocation capability.
package ipapi

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-resty/resty/v2"

	"weatherdash/apis"
	"weatherdash/manager"
	"weatherdash/models"
)

const apiName = "ip-api.com"

func New(url string) *locator {
	return &locator{
		url:    url,
		client: apis.NewClient(apiName, 0),
	}
}

type locator struct {
	url    string
	client *resty.Client
}

type lookupResponse struct {
	Status  string  `json:"status"`
	Message string  `json:"message"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}

func (l *locator) Locate(ctx context.Context) (models.Coordinate, error) {
	response, err := l.client.R().
		SetContext(ctx).
		SetQueryParam("fields", "status,message,lat,lon").
		Get(l.url)
	if err != nil {
		return models.Coordinate{}, manager.NewNetworkError(err)
	}

	if !response.IsSuccess() {
		return models.Coordinate{}, manager.NewStatusError("Failed to look up IP location", response.Status())
	}

	var result lookupResponse
	if err := json.Unmarshal(response.Body(), &result); err != nil {
		return models.Coordinate{}, fmt.Errorf("failed to decode ip location: %w", err)
	}

	if result.Status != "success" {
		return models.Coordinate{}, fmt.Errorf("ip lookup %s: %w", result.Message, manager.ErrLocationUnavailable)
	}

	return models.Coordinate{Latitude: result.Lat, Longitude: result.Lon}, nil
}
