package main

import (
	"fmt"
	"math"
	"time"
)

// This file holds the pure derivations applied to raw forecast values: the
// Open-Meteo weather-code tables, the visibility estimate, the dew point and
// the clock formatting used for sunrise and sunset.

const unknownWeatherDescription = "unknown"

type iconPair struct {
	day   string
	night string
}

// clearSkyIcons is used for any code missing from weatherIcons.
var clearSkyIcons = iconPair{day: "01d", night: "01n"}

// weatherDescriptions and weatherIcons are read-only after initialization.
var weatherDescriptions = map[int]string{
	0:  "clear sky",
	1:  "mainly clear",
	2:  "partly cloudy",
	3:  "overcast",
	45: "fog",
	48: "depositing rime fog",
	51: "light drizzle",
	53: "moderate drizzle",
	55: "dense drizzle",
	61: "slight rain",
	63: "moderate rain",
	65: "heavy rain",
	71: "slight snow",
	73: "moderate snow",
	75: "heavy snow",
	95: "thunderstorm",
	96: "thunderstorm with slight hail",
	99: "thunderstorm with heavy hail",
}

var weatherIcons = map[int]iconPair{
	0:  {"01d", "01n"},
	1:  {"01d", "01n"},
	2:  {"02d", "02n"},
	3:  {"03d", "03n"},
	45: {"50d", "50n"},
	48: {"50d", "50n"},
	51: {"09d", "09n"},
	53: {"09d", "09n"},
	55: {"09d", "09n"},
	61: {"10d", "10n"},
	63: {"10d", "10n"},
	65: {"10d", "10n"},
	71: {"13d", "13n"},
	73: {"13d", "13n"},
	75: {"13d", "13n"},
	95: {"11d", "11n"},
	96: {"11d", "11n"},
	99: {"11d", "11n"},
}

func interpretWeatherCode(code int) string {
	if description, ok := weatherDescriptions[code]; ok {
		return description
	}
	return unknownWeatherDescription
}

func weatherIcon(code int, isDay bool) string {
	icons, ok := weatherIcons[code]
	if !ok {
		icons = clearSkyIcons
	}
	if isDay {
		return icons.day
	}
	return icons.night
}

// Visibility estimates in km. Open-Meteo does not report visibility for the
// current hour, so it is derived from the weather code family and humidity.
const (
	fogVisibility   = 2
	snowVisibility  = 3
	rainVisibility  = 5
	humidVisibility = 8
	clearVisibility = 10
)

func estimateVisibility(code, humidity int) int {
	switch {
	case code >= 45 && code <= 48:
		return fogVisibility
	case code >= 51 && code <= 65:
		return rainVisibility
	case code >= 71 && code <= 75:
		return snowVisibility
	case humidity > 80:
		return humidVisibility
	default:
		return clearVisibility
	}
}

// Magnus formula coefficients.
const (
	magnusA = 17.27
	magnusB = 237.7
)

// dewPoint approximates the dew point from temperature and relative humidity
// (percent) using the Magnus formula. The result is in the temperature's unit.
func dewPoint(temperature float64, humidity float64) float64 {
	alpha := (magnusA*temperature)/(magnusB+temperature) + math.Log(humidity/100)
	return (magnusB * alpha) / (magnusA - alpha)
}

// roundToInt rounds half away from zero. Non-finite input yields 0.
func roundToInt(val float64) int {
	if math.IsNaN(val) || math.IsInf(val, 0) {
		return 0
	}
	return int(math.Round(val))
}

// Open-Meteo returns sunrise/sunset as local wall-clock time without an
// offset when timezone=auto is requested.
var clockInputLayouts = []string{
	"2006-01-02T15:04",
	"2006-01-02T15:04:05",
	time.RFC3339,
}

const clockOutputLayout = "3:04 PM"

// formatClockTime renders a provider timestamp as a 12-hour clock string such
// as "6:42 AM". The wall-clock value is kept as sent, so the output does not
// depend on the host's timezone or locale.
func formatClockTime(value string) (string, error) {
	for _, layout := range clockInputLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.Format(clockOutputLayout), nil
		}
	}
	return "", fmt.Errorf("unrecognized time format: %q", value)
}
