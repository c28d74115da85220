package main

import (
	"context"
	"fmt"
	"net/http"
)

const (
	lookupKindCity        = "city"
	lookupKindCoordinates = "coordinates"
)

// getWeatherReport runs the whole lookup for one request: resolve the location,
// fetch the forecast, then derive the report. The first failure aborts the
// lookup; callers never see a partially built report.
func (cfg *apiConfig) getWeatherReport(ctx context.Context, query LocationQuery) (WeatherReport, error) {
	kind := lookupKindCoordinates
	if query.City != "" {
		kind = lookupKindCity
	}

	report, err := cfg.lookupWeather(ctx, query)
	outcome := "success"
	if err != nil {
		outcome = lookupOutcome(err)
	}
	weatherLookupsTotal.WithLabelValues(kind, outcome).Inc()

	return report, err
}

func (cfg *apiConfig) lookupWeather(ctx context.Context, query LocationQuery) (WeatherReport, error) {
	location, err := cfg.resolveLocation(ctx, query)
	if err != nil {
		return WeatherReport{}, err
	}

	forecast, err := cfg.forecaster.Forecast(ctx, location)
	if err != nil {
		return WeatherReport{}, fmt.Errorf("could not fetch forecast for %s: %w", location.CityName, err)
	}

	report, err := buildWeatherReport(location, forecast)
	if err != nil {
		return WeatherReport{}, fmt.Errorf("could not build weather report: %w", err)
	}

	return report, nil
}

func lookupOutcome(err error) string {
	switch statusForError(err) {
	case http.StatusBadRequest:
		return "bad_request"
	case http.StatusNotFound:
		return "not_found"
	default:
		return "error"
	}
}
