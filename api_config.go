package main

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultGeocodeURL  = "https://geocoding-api.open-meteo.com/v1/search"
	defaultForecastURL = "https://api.open-meteo.com/v1/forecast"
)

type apiConfig struct {
	geocoder     GeocodingService
	forecaster   ForecastService
	geocodeURL   string
	forecastURL  string
	httpClient   *http.Client
	port         string
	devMode      bool
	otelEndpoint string
	serviceName  string
	logger       *slog.Logger
}

// getEnv retrieves an environment variable by key, with a fallback value.
func getEnv(key, fallback string, logger *slog.Logger) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	logger.Info("environment variable not set, using fallback", "key", key, "fallback", fallback)
	return fallback
}

// getEnvAsInt retrieves an environment variable as an integer, with a fallback value.
func getEnvAsInt(key string, fallback int, logger *slog.Logger) int {
	valStr, ok := os.LookupEnv(key)
	if !ok || valStr == "" {
		logger.Info("environment variable not set, using fallback", "key", key, "fallback", fallback)
		return fallback
	}
	val, err := strconv.Atoi(valStr)
	if err != nil || val <= 0 {
		logger.Warn("invalid integer value for environment variable, using fallback", "key", key, "value", valStr, "error", err)
		return fallback
	}
	return val
}

// getEnvAsURL retrieves an environment variable that must hold an absolute
// http(s) URL.
func getEnvAsURL(key, fallback string, logger *slog.Logger) (string, error) {
	val := getEnv(key, fallback, logger)
	u, err := url.ParseRequestURI(val)
	if err != nil {
		return "", fmt.Errorf("invalid %s: %w", key, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("invalid %s: unsupported scheme %q", key, u.Scheme)
	}
	return val, nil
}

func newLogger(w io.Writer, devMode bool) *slog.Logger {
	if devMode {
		return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	}
	return slog.New(slog.NewJSONHandler(w, nil))
}

// NewAPIConfig loads configuration from the environment (and a .env file if
// present) and wires the upstream services. Log output goes to logOutput.
func NewAPIConfig(logOutput io.Writer) (*apiConfig, error) {
	bootstrapLogger := slog.New(slog.NewJSONHandler(logOutput, nil))
	if err := godotenv.Load(); err != nil {
		bootstrapLogger.Info("no .env file found, relying on environment variables")
	}

	devMode, err := strconv.ParseBool(os.Getenv("DEV_MODE"))
	if err != nil {
		devMode = false
	}
	logger := newLogger(logOutput, devMode)

	geocodeURL, err := getEnvAsURL("GEOCODE_URL", defaultGeocodeURL, logger)
	if err != nil {
		return nil, err
	}
	forecastURL, err := getEnvAsURL("FORECAST_URL", defaultForecastURL, logger)
	if err != nil {
		return nil, err
	}

	timeoutSec := getEnvAsInt("HTTP_TIMEOUT_SEC", 10, logger)
	httpClient := &http.Client{
		Timeout:   time.Duration(timeoutSec) * time.Second,
		Transport: newMetricsTransport(http.DefaultTransport),
	}

	cfg := apiConfig{
		geocoder:     NewOpenMeteoGeocodingService(geocodeURL, httpClient),
		forecaster:   NewOpenMeteoForecastService(forecastURL, httpClient),
		geocodeURL:   geocodeURL,
		forecastURL:  forecastURL,
		httpClient:   httpClient,
		port:         getEnv("PORT", "8080", logger),
		devMode:      devMode,
		otelEndpoint: os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"),
		serviceName:  getEnv("SERVICE_NAME", "weatherlookup", logger),
		logger:       logger,
	}

	return &cfg, nil
}
