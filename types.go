package main

// Location is a resolved place that weather can be fetched for. It is always
// fully populated before it reaches a ForecastService.
type Location struct {
	CityName    string
	Latitude    float64
	Longitude   float64
	CountryCode string
}

// Coordinates are raw latitude/longitude degrees supplied by the client.
type Coordinates struct {
	Latitude  float64
	Longitude float64
}

// LocationQuery is what the client asked for: either a city name or a pair of
// coordinates. When both are set the city takes precedence.
type LocationQuery struct {
	City        string
	Coordinates *Coordinates
}

// ForecastResponse mirrors the subset of the Open-Meteo forecast payload that
// the report is built from.
type ForecastResponse struct {
	Current CurrentConditions `json:"current"`
	Daily   DailySummary      `json:"daily"`
}

type CurrentConditions struct {
	Temperature         float64 `json:"temperature_2m"`
	RelativeHumidity    int     `json:"relative_humidity_2m"`
	ApparentTemperature float64 `json:"apparent_temperature"`
	IsDay               int     `json:"is_day"`
	WeatherCode         int     `json:"weather_code"`
	CloudCover          int     `json:"cloud_cover"`
	PressureMSL         float64 `json:"pressure_msl"`
	WindSpeed           float64 `json:"wind_speed_10m"`
	WindDirection       float64 `json:"wind_direction_10m"`
}

// DailySummary holds single-element arrays describing today.
type DailySummary struct {
	Sunrise    []string  `json:"sunrise"`
	Sunset     []string  `json:"sunset"`
	UVIndexMax []float64 `json:"uv_index_max"`
}

// WeatherReport is the flat payload returned to the client.
type WeatherReport struct {
	City        string `json:"city"`
	Country     string `json:"country"`
	Temperature int    `json:"temperature"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	FeelsLike   int    `json:"feelsLike"`
	Humidity    int    `json:"humidity"`
	WindSpeed   int    `json:"windSpeed"`
	Pressure    int    `json:"pressure"`
	Visibility  int    `json:"visibility"`
	UVIndex     int    `json:"uvIndex"`
	Sunrise     string `json:"sunrise"`
	Sunset      string `json:"sunset"`
	CloudCover  int    `json:"cloudCover"`
	DewPoint    int    `json:"dewPoint"`
}

type ErrorResponse struct {
	Message string `json:"message"`
}

type HealthResponse struct {
	Status string `json:"status"`
}
