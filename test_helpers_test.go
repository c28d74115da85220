package main

import (
	"context"
	"embed"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
)

//go:embed testdata/*.json
var testData embed.FS

// --- Mocks ---

// mockGeocodingService is a mock for the GeocodingService interface.
type mockGeocodingService struct {
	GeocodeFunc func(ctx context.Context, cityName string) (Location, error)
	calls       int
}

func (m *mockGeocodingService) Geocode(ctx context.Context, cityName string) (Location, error) {
	m.calls++
	if m.GeocodeFunc != nil {
		return m.GeocodeFunc(ctx, cityName)
	}
	return Location{}, errors.New("GeocodeFunc not implemented in mock")
}

// mockForecastService is a mock for the ForecastService interface.
type mockForecastService struct {
	ForecastFunc func(ctx context.Context, location Location) (ForecastResponse, error)
	calls        int
}

func (m *mockForecastService) Forecast(ctx context.Context, location Location) (ForecastResponse, error) {
	m.calls++
	if m.ForecastFunc != nil {
		return m.ForecastFunc(ctx, location)
	}
	return ForecastResponse{}, errors.New("ForecastFunc not implemented in mock")
}

// testAPIConfig bundles an apiConfig with the mocks it was built from.
type testAPIConfig struct {
	*apiConfig
	mockGeocoder   *mockGeocodingService
	mockForecaster *mockForecastService
}

func newTestAPIConfig(t *testing.T) *testAPIConfig {
	t.Helper()
	geocoder := &mockGeocodingService{}
	forecaster := &mockForecastService{}
	return &testAPIConfig{
		apiConfig: &apiConfig{
			geocoder:   geocoder,
			forecaster: forecaster,
			logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		},
		mockGeocoder:   geocoder,
		mockForecaster: forecaster,
	}
}

func setupMockServer(handler http.HandlerFunc) *httptest.Server {
	return httptest.NewServer(handler)
}

// serveTestData returns a handler that writes the named fixture with status 200.
func serveTestData(t *testing.T, name string) http.HandlerFunc {
	t.Helper()
	data, err := testData.ReadFile(name)
	if err != nil {
		t.Fatalf("Failed to read test data: %v", err)
	}
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
	}
}

// MockParisLocation is what the geocoder fixture resolves to.
var MockParisLocation = Location{
	CityName:    "Paris",
	Latitude:    48.85341,
	Longitude:   2.3488,
	CountryCode: "FR",
}

// MockRainForecast matches testdata/forecast_openmeteo.json.
var MockRainForecast = ForecastResponse{
	Current: CurrentConditions{
		Temperature:         70.4,
		RelativeHumidity:    90,
		ApparentTemperature: 68.9,
		IsDay:               1,
		WeatherCode:         61,
		CloudCover:          100,
		PressureMSL:         1012.6,
		WindSpeed:           8.5,
		WindDirection:       245,
	},
	Daily: DailySummary{
		Sunrise:    []string{"2025-06-14T05:46"},
		Sunset:     []string{"2025-06-14T21:55"},
		UVIndexMax: []float64{6.45},
	},
}
