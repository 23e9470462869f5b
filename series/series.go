// Package series shapes raw forecast payloads into chart-ready sequences.
// Every function here is total: missing or short arrays degrade to zero values.
package series

import (
	"fmt"
	"math"
	"time"

	"weatherdash/models"
)

// HourlyLimit is the length of the hourly trend.
const HourlyLimit = 24

const (
	hourLayout = "2006-01-02T15:04"
	dateLayout = "2006-01-02"
	dayLabel   = "Mon, Jan 2"
)

type HourlyPoint struct {
	Label                    string `json:"label"`
	Temperature              int    `json:"temperature"`
	PrecipitationProbability int    `json:"precipitationProbability"`
}

type DailyPoint struct {
	Label            string  `json:"label"`
	MaxTemp          int     `json:"maxTemp"`
	MinTemp          int     `json:"minTemp"`
	WeatherCode      int     `json:"weatherCode"`
	PrecipitationSum float64 `json:"precipitationSum"`
	MaxWindSpeed     int     `json:"maxWindSpeed"`
}

// Hourly returns the first min(24, len(time)) hourly points in time order.
func Hourly(resp *models.ForecastResponse) []HourlyPoint {
	if resp == nil {
		return []HourlyPoint{}
	}

	h := resp.Hourly
	n := len(h.Time)
	if n > HourlyLimit {
		n = HourlyLimit
	}

	points := make([]HourlyPoint, 0, n)
	for i := 0; i < n; i++ {
		points = append(points, HourlyPoint{
			Label:                    hourLabel(h.Time[i]),
			Temperature:              round(floatAt(h.Temperature, i)),
			PrecipitationProbability: round(floatAt(h.PrecipitationProbability, i)),
		})
	}

	return points
}

// Daily returns one point per entry of the daily date array.
func Daily(resp *models.ForecastResponse) []DailyPoint {
	if resp == nil {
		return []DailyPoint{}
	}

	d := resp.Daily
	points := make([]DailyPoint, 0, len(d.Time))
	for i, date := range d.Time {
		points = append(points, DailyPoint{
			Label:            dateLabel(date),
			MaxTemp:          round(floatAt(d.TemperatureMax, i)),
			MinTemp:          round(floatAt(d.TemperatureMin, i)),
			WeatherCode:      intAt(d.WeatherCode, i),
			PrecipitationSum: finite(floatAt(d.PrecipitationSum, i)),
			MaxWindSpeed:     round(floatAt(d.WindSpeedMax, i)),
		})
	}

	return points
}

// "13:00", without zero padding. Unparseable values are passed through.
func hourLabel(ts string) string {
	t, err := time.Parse(hourLayout, ts)
	if err != nil {
		if t, err = time.Parse(time.RFC3339, ts); err != nil {
			return ts
		}
	}

	return fmt.Sprintf("%d:00", t.Hour())
}

// "Mon, Jan 2". Unparseable values are passed through.
func dateLabel(date string) string {
	t, err := time.Parse(dateLayout, date)
	if err != nil {
		return date
	}

	return t.Format(dayLabel)
}

func floatAt(xs []float64, i int) float64 {
	if i < 0 || i >= len(xs) {
		return 0
	}
	return xs[i]
}

func intAt(xs []int, i int) int {
	if i < 0 || i >= len(xs) {
		return 0
	}
	return xs[i]
}

func finite(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0
	}
	return x
}

// round rounds half up, so -2.5 becomes -2.
func round(x float64) int {
	return int(math.Floor(finite(x) + 0.5))
}
