package main

import (
	"errors"
	"fmt"
)

// This file defines the error taxonomy shared by the pipeline stages.
// Geocoding and routing failures abort a whole request; weather failures
// degrade the affected point only (see routeweather.go).

// ErrInvalidInput is returned for empty location strings, malformed
// polylines and non-positive sampling intervals.
var ErrInvalidInput = errors.New("invalid input")

// ErrNoResultsFound is returned when a geocoding query yields no results.
var ErrNoResultsFound = errors.New("no results found for the given query")

// ErrNoRoute is returned when the routing engine cannot connect the two
// endpoints.
var ErrNoRoute = errors.New("no route found between the given locations")

// WeatherErrorKind discriminates weather-fetch failures so callers and
// metrics can tell a bad credential from a flaky network.
type WeatherErrorKind string

const (
	WeatherErrUnauthorized WeatherErrorKind = "unauthorized"
	WeatherErrRateLimited  WeatherErrorKind = "rate_limited"
	WeatherErrServer       WeatherErrorKind = "server"
	WeatherErrNetwork      WeatherErrorKind = "network"
	WeatherErrDecode       WeatherErrorKind = "decode"
	WeatherErrTimeout      WeatherErrorKind = "timeout"
)

// WeatherAPIError wraps a failure from the weather provider with its kind
// and, where applicable, the HTTP status that produced it.
type WeatherAPIError struct {
	Kind       WeatherErrorKind
	StatusCode int
	Err        error
}

func (e *WeatherAPIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("weather api error (%s): %v", e.Kind, e.Err)
	}
	if e.StatusCode != 0 {
		return fmt.Sprintf("weather api error (%s): status %d", e.Kind, e.StatusCode)
	}
	return fmt.Sprintf("weather api error (%s)", e.Kind)
}

func (e *WeatherAPIError) Unwrap() error {
	return e.Err
}

// weatherErrorKind extracts the kind from an error chain, or "network"
// when the error is not a WeatherAPIError (transport-level failures).
func weatherErrorKind(err error) WeatherErrorKind {
	var apiErr *WeatherAPIError
	if errors.As(err, &apiErr) {
		return apiErr.Kind
	}
	return WeatherErrNetwork
}
