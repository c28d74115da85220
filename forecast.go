package main

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

// Variables requested from the forecast provider. Units are fixed to imperial
// and the timezone is resolved by the provider from the coordinates.
const (
	forecastCurrentParameters = "temperature_2m,relative_humidity_2m,apparent_temperature,is_day,weather_code,cloud_cover,pressure_msl,wind_speed_10m,wind_direction_10m"
	forecastDailyParameters   = "sunrise,sunset,uv_index_max"
)

// ForecastService fetches current conditions and today's summary for a
// resolved location.
type ForecastService interface {
	Forecast(ctx context.Context, location Location) (ForecastResponse, error)
}

// OpenMeteoForecastService is a ForecastService backed by the Open-Meteo
// forecast API.
type OpenMeteoForecastService struct {
	forecastURL string
	httpClient  *http.Client
}

func NewOpenMeteoForecastService(forecastURL string, httpClient *http.Client) *OpenMeteoForecastService {
	return &OpenMeteoForecastService{
		forecastURL: forecastURL,
		httpClient:  httpClient,
	}
}

func (s *OpenMeteoForecastService) Forecast(ctx context.Context, location Location) (ForecastResponse, error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "forecast", trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()
	span.SetAttributes(
		attribute.Float64("latitude", location.Latitude),
		attribute.Float64("longitude", location.Longitude),
	)

	forecast, err := s.performForecastRequest(ctx, location)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "forecast failed")
		return ForecastResponse{}, err
	}
	return forecast, nil
}

func (s *OpenMeteoForecastService) performForecastRequest(ctx context.Context, location Location) (ForecastResponse, error) {
	forecastURL, err := s.wrapForForecast(location)
	if err != nil {
		return ForecastResponse{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, forecastURL, nil)
	if err != nil {
		return ForecastResponse{}, fmt.Errorf("failed to create forecast request: %w", err)
	}
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return ForecastResponse{}, fmt.Errorf("forecast API request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return ForecastResponse{}, newUpstreamError("forecast", resp)
	}

	return ParseForecastOMeteo(resp.Body)
}

// wrapForForecast builds the forecast request URL for a location.
func (s *OpenMeteoForecastService) wrapForForecast(location Location) (string, error) {
	baseURL, err := url.Parse(s.forecastURL)
	if err != nil {
		return "", fmt.Errorf("failed to parse base forecast URL: %w", err)
	}

	q := baseURL.Query()
	q.Set("latitude", strconv.FormatFloat(location.Latitude, 'f', -1, 64))
	q.Set("longitude", strconv.FormatFloat(location.Longitude, 'f', -1, 64))
	q.Set("current", forecastCurrentParameters)
	q.Set("daily", forecastDailyParameters)
	q.Set("timezone", "auto")
	q.Set("temperature_unit", "fahrenheit")
	q.Set("wind_speed_unit", "mph")
	q.Set("precipitation_unit", "inch")
	baseURL.RawQuery = q.Encode()

	return baseURL.String(), nil
}
