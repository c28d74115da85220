package main

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
)

// This file contains helper functions related to location handling: reading the
// location query from an HTTP request and resolving it to coordinates.

const currentLocationName = "Current Location"

var validate = validator.New()

// coordinateParams holds the raw lat/lon query values for validation.
type coordinateParams struct {
	Lat string `validate:"required,numeric"`
	Lon string `validate:"required,numeric"`
}

// getLocationQueryFromRequest extracts a LocationQuery from the request's query
// string. A non-blank city wins over coordinates; otherwise both lat and lon
// must be present and numeric. Coordinate ranges are not checked.
func getLocationQueryFromRequest(r *http.Request) (LocationQuery, error) {
	query := r.URL.Query()

	cityName, err := normalizeCityQuery(query.Get("city"))
	if err != nil {
		return LocationQuery{}, fmt.Errorf("%w: %v", ErrInvalidCityQuery, err)
	}
	if cityName != "" {
		return LocationQuery{City: cityName}, nil
	}

	params := coordinateParams{
		Lat: query.Get("lat"),
		Lon: query.Get("lon"),
	}
	if params.Lat == "" || params.Lon == "" {
		return LocationQuery{}, ErrMissingQuery
	}
	if err := validate.Struct(params); err != nil {
		return LocationQuery{}, fmt.Errorf("%w: %v", ErrInvalidCoordinates, err)
	}

	lat, err := strconv.ParseFloat(params.Lat, 64)
	if err != nil {
		return LocationQuery{}, fmt.Errorf("%w: invalid latitude: %v", ErrInvalidCoordinates, err)
	}
	lon, err := strconv.ParseFloat(params.Lon, 64)
	if err != nil {
		return LocationQuery{}, fmt.Errorf("%w: invalid longitude: %v", ErrInvalidCoordinates, err)
	}

	return LocationQuery{Coordinates: &Coordinates{Latitude: lat, Longitude: lon}}, nil
}

// resolveLocation turns a LocationQuery into a fully populated Location.
// Coordinates pass straight through with placeholder name and country; only a
// city query reaches the geocoder.
func (cfg *apiConfig) resolveLocation(ctx context.Context, query LocationQuery) (Location, error) {
	if query.City != "" {
		location, err := cfg.geocoder.Geocode(ctx, query.City)
		if err != nil {
			return Location{}, fmt.Errorf("could not geocode city '%s': %w", query.City, err)
		}
		cfg.logger.Debug("city geocoded", "query", query.City, "city", location.CityName, "country", location.CountryCode)
		return location, nil
	}

	if query.Coordinates != nil {
		return Location{
			CityName:    currentLocationName,
			Latitude:    query.Coordinates.Latitude,
			Longitude:   query.Coordinates.Longitude,
			CountryCode: unknownCountryCode,
		}, nil
	}

	return Location{}, ErrMissingQuery
}
