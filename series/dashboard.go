package series

import "weatherdash/models"

// CurrentConditions is the "now" card.
type CurrentConditions struct {
	Temperature         int          `json:"temperature"`
	ApparentTemperature int          `json:"apparentTemperature"`
	Humidity            int          `json:"humidity"`
	WindSpeed           int          `json:"windSpeed"`
	WindDirection       int          `json:"windDirection"`
	Pressure            int          `json:"pressure"`
	CloudCover          int          `json:"cloudCover"`
	IsDay               bool         `json:"isDay"`
	WeatherCode         int          `json:"weatherCode"`
	Description         string       `json:"description"`
	Icon                IconCategory `json:"icon"`
}

type Dashboard struct {
	Current CurrentConditions `json:"current"`
	Hourly  []HourlyPoint     `json:"hourly"`
	Daily   []DailyPoint      `json:"daily"`
}

func Current(resp *models.ForecastResponse) CurrentConditions {
	if resp == nil {
		return CurrentConditions{Description: Describe(0), Icon: IconFor(0, true)}
	}

	c := resp.Current
	isDay := c.IsDay != 0

	return CurrentConditions{
		Temperature:         round(c.Temperature),
		ApparentTemperature: round(c.ApparentTemperature),
		Humidity:            round(c.RelativeHumidity),
		WindSpeed:           round(c.WindSpeed),
		WindDirection:       round(c.WindDirection),
		Pressure:            round(c.PressureMSL),
		CloudCover:          round(c.CloudCover),
		IsDay:               isDay,
		WeatherCode:         c.WeatherCode,
		Description:         Describe(c.WeatherCode),
		Icon:                IconFor(c.WeatherCode, isDay),
	}
}

// Build assembles everything a client needs to draw the dashboard.
func Build(resp *models.ForecastResponse) *Dashboard {
	return &Dashboard{
		Current: Current(resp),
		Hourly:  Hourly(resp),
		Daily:   Daily(resp),
	}
}
