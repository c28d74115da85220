package main

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrMissingQuery is returned when a request carries neither a city nor a
	// complete lat/lon pair.
	ErrMissingQuery = errors.New("either city or lat/lon query parameters are required")

	// ErrInvalidCityQuery is returned when the city parameter is not valid UTF-8.
	ErrInvalidCityQuery = errors.New("city must be valid UTF-8 text")

	// ErrInvalidCoordinates is returned when lat or lon is not a number.
	ErrInvalidCoordinates = errors.New("lat and lon must be numbers")

	// ErrCityNotFound is returned when the geocoder has no match for a city.
	ErrCityNotFound = errors.New("city not found")

	// ErrIncompleteForecast is returned when the forecast payload lacks the
	// daily entries for today.
	ErrIncompleteForecast = errors.New("forecast response is missing daily data")
)

// UpstreamError reports a non-2xx answer from one of the upstream APIs.
type UpstreamError struct {
	Service    string
	StatusCode int
	Status     string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s API request returned non-200 status: %s", e.Service, e.Status)
}

func newUpstreamError(service string, resp *http.Response) *UpstreamError {
	status := resp.Status
	if status == "" {
		status = fmt.Sprintf("%d %s", resp.StatusCode, http.StatusText(resp.StatusCode))
	}
	return &UpstreamError{
		Service:    service,
		StatusCode: resp.StatusCode,
		Status:     status,
	}
}

// statusForError maps a lookup failure onto the HTTP status returned to the
// client. Anything unclassified is a server error.
func statusForError(err error) int {
	switch {
	case errors.Is(err, ErrMissingQuery), errors.Is(err, ErrInvalidCityQuery), errors.Is(err, ErrInvalidCoordinates):
		return http.StatusBadRequest
	case errors.Is(err, ErrCityNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
