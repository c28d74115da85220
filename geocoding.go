package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

// This file provides the application's geocoding capability: turning a free-text
// city name into coordinates, a canonical name and a country code. The provider
// sits behind the GeocodingService interface so handlers can be tested without
// network access.

const (
	tracerName          = "github.com/cor0nius/weatherlookup"
	unknownCountryCode  = "N/A"
	geocodeResultCount  = "1"
	geocodeLanguage     = "en"
	geocodeResultFormat = "json"
)

// GeocodingService resolves a city name to a Location.
type GeocodingService interface {
	Geocode(ctx context.Context, cityName string) (Location, error)
}

// OpenMeteoGeocodingService is a GeocodingService backed by the Open-Meteo
// geocoding API.
type OpenMeteoGeocodingService struct {
	geocodeURL string
	httpClient *http.Client
}

func NewOpenMeteoGeocodingService(geocodeURL string, httpClient *http.Client) *OpenMeteoGeocodingService {
	return &OpenMeteoGeocodingService{
		geocodeURL: geocodeURL,
		httpClient: httpClient,
	}
}

// Geocode asks for the single best English-language match for cityName.
// ErrCityNotFound is returned when the provider has no match.
func (s *OpenMeteoGeocodingService) Geocode(ctx context.Context, cityName string) (Location, error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "geocode", trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()
	span.SetAttributes(attribute.String("city", cityName))

	location, err := s.performGeocodeRequest(ctx, cityName)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "geocoding failed")
		return Location{}, err
	}
	return location, nil
}

func (s *OpenMeteoGeocodingService) performGeocodeRequest(ctx context.Context, cityName string) (Location, error) {
	baseURL, err := url.Parse(s.geocodeURL)
	if err != nil {
		return Location{}, fmt.Errorf("failed to parse base geocode URL: %w", err)
	}

	q := baseURL.Query()
	q.Set("name", cityName)
	q.Set("count", geocodeResultCount)
	q.Set("language", geocodeLanguage)
	q.Set("format", geocodeResultFormat)
	baseURL.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL.String(), nil)
	if err != nil {
		return Location{}, fmt.Errorf("failed to create geocoding request: %w", err)
	}
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return Location{}, fmt.Errorf("geocoding API request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Location{}, newUpstreamError("geocoding", resp)
	}

	var responseJSON geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&responseJSON); err != nil {
		return Location{}, fmt.Errorf("failed to decode geocoding response: %w", err)
	}

	if len(responseJSON.Results) == 0 {
		return Location{}, ErrCityNotFound
	}

	return parseLocationFromResult(responseJSON.Results[0]), nil
}

// parseLocationFromResult prefers the ISO country code, then the full country
// name, then the "N/A" placeholder.
func parseLocationFromResult(result geocodeResult) Location {
	country := unknownCountryCode
	switch {
	case result.CountryCode != "":
		country = strings.ToUpper(result.CountryCode)
	case result.Country != "":
		country = result.Country
	}

	return Location{
		CityName:    result.Name,
		Latitude:    result.Latitude,
		Longitude:   result.Longitude,
		CountryCode: country,
	}
}

// The following structs represent the Open-Meteo geocoding response. The
// provider omits "results" entirely when nothing matches.
type geocodeResponse struct {
	Results []geocodeResult `json:"results"`
}

type geocodeResult struct {
	Name        string  `json:"name"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	CountryCode string  `json:"country_code"`
	Country     string  `json:"country"`
}
