package main

import (
	"context"
	"net/http"
)

// This file contains the HTTP handlers for the application.

// @Summary      Get current weather
// @Description  Resolves a city name or a lat/lon pair and returns current conditions
// @Description  together with today's sunrise, sunset and UV index.
// @Tags         weather
// @Produce      json
// @Param        city query     string  false  "City name to search for (e.g., 'Paris')"
// @Param        lat  query     number  false  "Latitude (e.g., 40.7)"
// @Param        lon  query     number  false  "Longitude (e.g., -74.0)"
// @Success      200  {object}  WeatherReport
// @Failure      400  {object}  ErrorResponse "Bad Request - Missing or invalid location parameters"
// @Failure      404  {object}  ErrorResponse "Not Found - City not found"
// @Failure      500  {object}  ErrorResponse "Internal Server Error - Upstream or unexpected failure"
// @Router       /api/weather [get]
func (cfg *apiConfig) handlerWeather(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		cfg.respondWithError(w, http.StatusMethodNotAllowed, "Method Not Allowed", nil)
		return
	}
	logger := cfg.requestLogger(r)

	query, err := getLocationQueryFromRequest(r)
	if err != nil {
		logger.Debug("rejected weather request", "error", err)
		cfg.respondWithError(w, http.StatusBadRequest, err.Error(), nil)
		return
	}
	logger.Debug("weather request", "city", query.City, "coordinates", query.Coordinates != nil)

	// Upstream calls run to completion even if the client goes away.
	ctx := context.WithoutCancel(r.Context())

	report, err := cfg.getWeatherReport(ctx, query)
	if err != nil {
		status := statusForError(err)
		logger.Error("weather lookup failed", "status", status, "error", err)
		msg := err.Error()
		if status == http.StatusNotFound {
			msg = cityNotFoundMessage
		}
		cfg.respondWithError(w, status, msg, nil)
		return
	}

	cfg.respondWithJSON(w, http.StatusOK, report)
}

const cityNotFoundMessage = "City not found. Please check the spelling and try again."

// @Summary      Health check
// @Tags         health
// @Produce      json
// @Success      200  {object}  HealthResponse
// @Router       /healthz [get]
func (cfg *apiConfig) handlerHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		cfg.respondWithError(w, http.StatusMethodNotAllowed, "Method Not Allowed", nil)
		return
	}
	cfg.respondWithJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
}
