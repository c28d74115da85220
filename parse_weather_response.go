package main

import (
	"encoding/json"
	"fmt"
	"io"
)

// ParseForecastOMeteo decodes an Open-Meteo forecast payload and checks that
// the current block and today's daily entries are present.
func ParseForecastOMeteo(body io.Reader) (ForecastResponse, error) {
	var payload struct {
		Current *CurrentConditions `json:"current"`
		Daily   DailySummary       `json:"daily"`
	}

	if err := json.NewDecoder(body).Decode(&payload); err != nil {
		return ForecastResponse{}, fmt.Errorf("failed to decode forecast response: %w", err)
	}

	if payload.Current == nil {
		return ForecastResponse{}, fmt.Errorf("%w: no current conditions", ErrIncompleteForecast)
	}
	if len(payload.Daily.Sunrise) == 0 || len(payload.Daily.Sunset) == 0 {
		return ForecastResponse{}, ErrIncompleteForecast
	}

	return ForecastResponse{Current: *payload.Current, Daily: payload.Daily}, nil
}

// buildWeatherReport derives the display fields from a raw forecast and merges
// in the resolved location. It is deterministic: identical input always yields
// an identical report.
func buildWeatherReport(location Location, forecast ForecastResponse) (WeatherReport, error) {
	current := forecast.Current
	daily := forecast.Daily

	if len(daily.Sunrise) == 0 || len(daily.Sunset) == 0 {
		return WeatherReport{}, ErrIncompleteForecast
	}

	sunrise, err := formatClockTime(daily.Sunrise[0])
	if err != nil {
		return WeatherReport{}, fmt.Errorf("invalid sunrise: %w", err)
	}
	sunset, err := formatClockTime(daily.Sunset[0])
	if err != nil {
		return WeatherReport{}, fmt.Errorf("invalid sunset: %w", err)
	}

	var uvIndexMax float64
	if len(daily.UVIndexMax) > 0 {
		uvIndexMax = daily.UVIndexMax[0]
	}

	// At 0% humidity the dew point is undefined; roundToInt reports it as 0.
	dewPointF := roundToInt(dewPoint(current.Temperature, float64(current.RelativeHumidity)))

	report := WeatherReport{
		City:        location.CityName,
		Country:     location.CountryCode,
		Temperature: roundToInt(current.Temperature),
		Description: interpretWeatherCode(current.WeatherCode),
		Icon:        weatherIcon(current.WeatherCode, current.IsDay == 1),
		FeelsLike:   roundToInt(current.ApparentTemperature),
		Humidity:    current.RelativeHumidity,
		WindSpeed:   roundToInt(current.WindSpeed),
		Pressure:    roundToInt(current.PressureMSL),
		Visibility:  estimateVisibility(current.WeatherCode, current.RelativeHumidity),
		UVIndex:     max(roundToInt(uvIndexMax), 0),
		Sunrise:     sunrise,
		Sunset:      sunset,
		CloudCover:  current.CloudCover,
		DewPoint:    dewPointF,
	}

	return report, nil
}
