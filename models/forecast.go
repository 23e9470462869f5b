package models

// ForecastResponse is the forecast payload as returned by the weather service.
// Arrays within Hourly and Daily are index aligned: index i of every array
// describes the same timestamp.
type ForecastResponse struct {
	Latitude  float64        `json:"latitude"`
	Longitude float64        `json:"longitude"`
	Timezone  string         `json:"timezone"`
	Current   CurrentWeather `json:"current"`
	Hourly    HourlyForecast `json:"hourly"`
	Daily     DailyForecast  `json:"daily"`
}

// CurrentWeather is a single snapshot of conditions.
type CurrentWeather struct {
	Time                string  `json:"time"`
	Temperature         float64 `json:"temperature_2m"`
	RelativeHumidity    float64 `json:"relative_humidity_2m"`
	ApparentTemperature float64 `json:"apparent_temperature"`
	WeatherCode         int     `json:"weather_code"`
	WindSpeed           float64 `json:"wind_speed_10m"`
	WindDirection       float64 `json:"wind_direction_10m"`
	PressureMSL         float64 `json:"pressure_msl"`
	CloudCover          float64 `json:"cloud_cover"`
	IsDay               int     `json:"is_day"`
}

// HourlyForecast holds parallel time-indexed arrays. JSON nulls decode as zero.
type HourlyForecast struct {
	Time                     []string  `json:"time"`
	Temperature              []float64 `json:"temperature_2m"`
	RelativeHumidity         []float64 `json:"relative_humidity_2m"`
	PrecipitationProbability []float64 `json:"precipitation_probability"`
	WeatherCode              []int     `json:"weather_code"`
}

// DailyForecast holds parallel date-indexed arrays. JSON nulls decode as zero.
type DailyForecast struct {
	Time             []string  `json:"time"`
	TemperatureMax   []float64 `json:"temperature_2m_max"`
	TemperatureMin   []float64 `json:"temperature_2m_min"`
	WeatherCode      []int     `json:"weather_code"`
	PrecipitationSum []float64 `json:"precipitation_sum"`
	WindSpeedMax     []float64 `json:"wind_speed_10m_max"`
}
