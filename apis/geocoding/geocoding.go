package geocoding

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/go-resty/resty/v2"
	"golang.org/x/text/unicode/norm"

	"weatherdash/apis"
	"weatherdash/config"
	"weatherdash/manager"
	"weatherdash/models"
)

const (
	apiName         = "geocoding-api.open-meteo.com"
	defaultLanguage = "en"
)

func New(cfg config.Geocoding) *geocoding {
	language := cfg.Language
	if language == "" {
		language = defaultLanguage
	}

	return &geocoding{
		url:      cfg.URL,
		language: language,
		client:   apis.NewClient(apiName, cfg.Timeout),
	}
}

type geocoding struct {
	url      string
	language string
	client   *resty.Client
}

// Resolve looks up name and returns the best match. Search terms aren't cached.
func (g *geocoding) Resolve(ctx context.Context, name string) (models.Location, error) {
	name = strings.TrimSpace(norm.NFC.String(name))
	if name == "" {
		return models.Location{}, manager.ErrEmptyQuery
	}

	params := map[string]string{
		"name":     name,
		"count":    "1",
		"language": g.language,
		"format":   "json",
	}

	result, err := processRequest(ctx, g.client, g.url, params)
	if err != nil {
		return models.Location{}, err
	}

	if len(result.Results) == 0 {
		return models.Location{}, fmt.Errorf("%q: %w", name, manager.ErrNotFound)
	}

	first := result.Results[0]

	return models.Location{
		Coordinate: models.Coordinate{
			Latitude:  first.Latitude,
			Longitude: first.Longitude,
		},
		DisplayName: first.Name,
	}, nil
}

type searchResponse struct {
	Results []struct {
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
		Name      string  `json:"name"`
	} `json:"results"`
}

func processRequest(ctx context.Context, client *resty.Client, path string, params map[string]string) (searchResponse, error) {
	response, err := client.R().
		SetContext(ctx).
		SetQueryParams(params).
		Get(path)
	if err != nil {
		return searchResponse{}, manager.NewNetworkError(err)
	}

	if !response.IsSuccess() {
		return searchResponse{}, manager.NewStatusError("Failed to fetch city coordinates", response.Status())
	}

	var result searchResponse
	if err := json.Unmarshal(response.Body(), &result); err != nil {
		return searchResponse{}, manager.NewNetworkError(fmt.Errorf("failed to decode geocoding response: %w", err))
	}

	return result, nil
}
