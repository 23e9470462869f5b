package series

import (
	"fmt"
	"testing"

	"github.com/tj/assert"

	"weatherdash/models"
)

func hourlyResponse(hours int) *models.ForecastResponse {
	resp := &models.ForecastResponse{}
	for i := 0; i < hours; i++ {
		resp.Hourly.Time = append(resp.Hourly.Time, fmt.Sprintf("2025-03-%02dT%02d:00", 10+i/24, i%24))
		resp.Hourly.Temperature = append(resp.Hourly.Temperature, float64(i)+0.5)
		resp.Hourly.PrecipitationProbability = append(resp.Hourly.PrecipitationProbability, float64(i))
	}
	return resp
}

func TestHourly(t *testing.T) {
	cases := []struct {
		name     string
		resp     *models.ForecastResponse
		expected int
	}{
		{name: "nil response", resp: nil, expected: 0},
		{name: "no hourly section", resp: &models.ForecastResponse{}, expected: 0},
		{name: "shorter than a day", resp: hourlyResponse(5), expected: 5},
		{name: "full week truncated", resp: hourlyResponse(168), expected: HourlyLimit},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			points := Hourly(tc.resp)
			assert.NotNil(t, points)
			assert.Equal(t, tc.expected, len(points))
		})
	}
}

func TestHourlyPoints(t *testing.T) {
	resp := hourlyResponse(168)

	points := Hourly(resp)

	assert.Equal(t, HourlyPoint{Label: "0:00", Temperature: 1, PrecipitationProbability: 0}, points[0])
	assert.Equal(t, HourlyPoint{Label: "13:00", Temperature: 14, PrecipitationProbability: 13}, points[13])
	assert.Equal(t, "23:00", points[23].Label)
}

func TestHourlyMissingValues(t *testing.T) {
	resp := &models.ForecastResponse{}
	resp.Hourly.Time = []string{"2025-03-10T09:00", "2025-03-10T10:00", "not a time"}
	resp.Hourly.Temperature = []float64{-2.5}
	resp.Hourly.PrecipitationProbability = nil

	points := Hourly(resp)

	assert.Equal(t, []HourlyPoint{
		{Label: "9:00", Temperature: -2, PrecipitationProbability: 0},
		{Label: "10:00", Temperature: 0, PrecipitationProbability: 0},
		{Label: "not a time", Temperature: 0, PrecipitationProbability: 0},
	}, points)
}

func TestDaily(t *testing.T) {
	resp := &models.ForecastResponse{}
	resp.Daily = models.DailyForecast{
		Time:             []string{"2025-03-10", "2025-03-11", "2025-03-12"},
		TemperatureMax:   []float64{12.4, 13.5, 9.9},
		TemperatureMin:   []float64{3.2, 4.6, -1.5},
		WeatherCode:      []int{61, 3},
		PrecipitationSum: []float64{2.3},
		WindSpeedMax:     []float64{20.2, 31.7, 15},
	}

	points := Daily(resp)

	assert.Equal(t, []DailyPoint{
		{Label: "Mon, Mar 10", MaxTemp: 12, MinTemp: 3, WeatherCode: 61, PrecipitationSum: 2.3, MaxWindSpeed: 20},
		{Label: "Tue, Mar 11", MaxTemp: 14, MinTemp: 5, WeatherCode: 3, PrecipitationSum: 0, MaxWindSpeed: 32},
		{Label: "Wed, Mar 12", MaxTemp: 10, MinTemp: -1, WeatherCode: 0, PrecipitationSum: 0, MaxWindSpeed: 15},
	}, points)
}

func TestDailyEmpty(t *testing.T) {
	assert.Equal(t, 0, len(Daily(nil)))
	assert.Equal(t, 0, len(Daily(&models.ForecastResponse{})))
}

func TestSeriesIdempotent(t *testing.T) {
	resp := hourlyResponse(48)
	resp.Daily.Time = []string{"2025-03-10", "2025-03-11"}
	resp.Daily.TemperatureMax = []float64{1, 2}

	assert.Equal(t, Hourly(resp), Hourly(resp))
	assert.Equal(t, Daily(resp), Daily(resp))
}

func TestBuild(t *testing.T) {
	resp := hourlyResponse(30)
	resp.Daily.Time = []string{"2025-03-10"}
	resp.Current = models.CurrentWeather{
		Temperature:         7.6,
		ApparentTemperature: 4.2,
		RelativeHumidity:    81,
		WeatherCode:         2,
		WindSpeed:           14.5,
		WindDirection:       250,
		PressureMSL:         1013.4,
		CloudCover:          60,
		IsDay:               0,
	}

	dashboard := Build(resp)

	assert.Equal(t, 8, dashboard.Current.Temperature)
	assert.Equal(t, 4, dashboard.Current.ApparentTemperature)
	assert.Equal(t, 15, dashboard.Current.WindSpeed)
	assert.Equal(t, 1013, dashboard.Current.Pressure)
	assert.False(t, dashboard.Current.IsDay)
	assert.Equal(t, "Partly cloudy", dashboard.Current.Description)
	assert.Equal(t, IconCloud, dashboard.Current.Icon)
	assert.Equal(t, HourlyLimit, len(dashboard.Hourly))
	assert.Equal(t, 1, len(dashboard.Daily))
}

func TestBuildNil(t *testing.T) {
	dashboard := Build(nil)

	assert.Equal(t, "Clear sky", dashboard.Current.Description)
	assert.Equal(t, 0, len(dashboard.Hourly))
	assert.Equal(t, 0, len(dashboard.Daily))
}
