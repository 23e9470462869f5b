package openmeteo

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-resty/resty/v2"

	"weatherdash/apis"
	"weatherdash/config"
	"weatherdash/manager"
	"weatherdash/models"
)

const (
	apiName             = "api.open-meteo.com"
	defaultForecastDays = 7
)

var (
	currentFields = []string{
		"temperature_2m",
		"relative_humidity_2m",
		"apparent_temperature",
		"weather_code",
		"wind_speed_10m",
		"wind_direction_10m",
		"pressure_msl",
		"cloud_cover",
		"is_day",
	}
	hourlyFields = []string{
		"temperature_2m",
		"relative_humidity_2m",
		"precipitation_probability",
		"weather_code",
	}
	dailyFields = []string{
		"temperature_2m_max",
		"temperature_2m_min",
		"weather_code",
		"precipitation_sum",
		"wind_speed_10m_max",
	}
)

func New(cfg config.OpenMeteo) *forecast {
	days := cfg.ForecastDays
	if days < 1 {
		days = defaultForecastDays
	}

	return &forecast{
		url:    cfg.URL,
		days:   days,
		client: apis.NewClient(apiName, cfg.Timeout),
	}
}

type forecast struct {
	url    string
	days   int
	client *resty.Client
}

// Fetch requests current, hourly and daily fields for coordinate in the location's own timezone.
func (f *forecast) Fetch(ctx context.Context, coordinate models.Coordinate) (*models.ForecastResponse, error) {
	params := map[string]string{
		"latitude":      strconv.FormatFloat(coordinate.Latitude, 'f', -1, 64),
		"longitude":     strconv.FormatFloat(coordinate.Longitude, 'f', -1, 64),
		"current":       strings.Join(currentFields, ","),
		"hourly":        strings.Join(hourlyFields, ","),
		"daily":         strings.Join(dailyFields, ","),
		"timezone":      "auto",
		"forecast_days": strconv.Itoa(f.days),
	}

	return processRequest(ctx, f.client, f.url, params)
}

func processRequest(ctx context.Context, client *resty.Client, path string, params map[string]string) (*models.ForecastResponse, error) {
	response, err := client.R().
		SetContext(ctx).
		SetQueryParams(params).
		Get(path)
	if err != nil {
		return nil, manager.NewNetworkError(err)
	}

	if !response.IsSuccess() {
		return nil, manager.NewStatusError("Failed to fetch weather data", response.Status())
	}

	result := &models.ForecastResponse{}
	if err := json.Unmarshal(response.Body(), result); err != nil {
		return nil, manager.NewNetworkError(fmt.Errorf("failed to decode forecast response: %w", err))
	}

	return result, nil
}
