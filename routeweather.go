package main

import (
	"context"
	"fmt"
	"sync"
)

// This file contains the high-level logic for one route-weather request:
// geocode both endpoints, compute the driving route, sample it, fetch
// weather for every sampled point and classify each one. Geocoding and
// routing failures abort the whole request; a weather failure degrades
// only the affected point, so a single flaky fetch never hides the rest
// of the route.

// weatherFetchParallelism bounds concurrent weather lookups per request.
// Fetches are independent reads; output order is fixed by sample index,
// not completion order.
const weatherFetchParallelism = 4

// minSampleIntervalMeters floors the requested interval so a long route
// cannot fan out into thousands of weather calls.
const minSampleIntervalMeters = 1000.0

// RouteWeatherRequest describes one route-weather query. Each endpoint
// is given either as a place name or as raw coordinates; a place name
// wins when both are set.
type RouteWeatherRequest struct {
	From           string
	To             string
	FromCoord      *Coordinate
	ToCoord        *Coordinate
	IntervalMeters float64
}

// routeWeather runs the full pipeline for a single request.
func (cfg *apiConfig) routeWeather(ctx context.Context, req RouteWeatherRequest) (RouteWeatherResponse, error) {
	interval := req.IntervalMeters
	if interval == 0 {
		interval = cfg.sampleIntervalMeters
	}
	if interval < minSampleIntervalMeters {
		return RouteWeatherResponse{}, fmt.Errorf("%w: sampling interval must be at least %.0f meters", ErrInvalidInput, minSampleIntervalMeters)
	}

	start, err := cfg.resolveEndpoint(ctx, req.From, req.FromCoord)
	if err != nil {
		return RouteWeatherResponse{}, fmt.Errorf("could not resolve start location: %w", err)
	}
	end, err := cfg.resolveEndpoint(ctx, req.To, req.ToCoord)
	if err != nil {
		return RouteWeatherResponse{}, fmt.Errorf("could not resolve end location: %w", err)
	}

	route, err := cfg.router.Route(ctx,
		Coordinate{Latitude: start.Latitude, Longitude: start.Longitude},
		Coordinate{Latitude: end.Latitude, Longitude: end.Longitude},
	)
	if err != nil {
		return RouteWeatherResponse{}, fmt.Errorf("could not compute route: %w", err)
	}

	samples, err := SampleRoute(route.Polyline, interval)
	if err != nil {
		return RouteWeatherResponse{}, fmt.Errorf("could not sample route: %w", err)
	}

	points := cfg.fetchWeatherPoints(ctx, samples, start, end)

	return RouteWeatherResponse{
		Start:           start,
		End:             end,
		DistanceMeters:  route.DistanceMeters,
		DurationSeconds: route.DurationSeconds,
		Geometry:        encodeGeometry(route.Polyline),
		Points:          points,
	}, nil
}

// fetchWeatherPoints fans out weather lookups for all sampled points with
// bounded parallelism and assembles the results in sample order.
func (cfg *apiConfig) fetchWeatherPoints(ctx context.Context, samples []RoutePoint, start, end Location) []WeatherPoint {
	points := make([]WeatherPoint, len(samples))
	sem := make(chan struct{}, weatherFetchParallelism)
	var wg sync.WaitGroup

	for i, sample := range samples {
		wg.Add(1)
		go func(i int, sample RoutePoint) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			points[i] = cfg.weatherPointAt(ctx, sample, pointLabel(i, len(samples), sample, start, end))
		}(i, sample)
	}

	wg.Wait()
	return points
}

// weatherPointAt fetches and classifies conditions for one sampled point.
// On failure it returns an error-marker point instead of propagating, so
// the rest of the route still gets results.
func (cfg *apiConfig) weatherPointAt(ctx context.Context, sample RoutePoint, label string) WeatherPoint {
	point := WeatherPoint{
		Coordinate:     sample.Coordinate,
		Label:          label,
		DistanceMeters: sample.DistanceMeters,
	}

	conditions, err := cfg.cachedOrFetchConditions(ctx, sample.Coordinate)
	if err != nil {
		cfg.logger.Warn("weather fetch failed for sampled point",
			"label", label,
			"latitude", sample.Coordinate.Latitude,
			"longitude", sample.Coordinate.Longitude,
			"error", err,
		)
		point.Conditions = "Error fetching weather"
		point.IsHazard = true
		point.HazardMessage = fmt.Sprintf("hazard: weather unavailable: %v", err)
		return point
	}

	point.Conditions = conditions.Condition
	if conditions.Description != "" {
		point.Conditions = fmt.Sprintf("%s (%s)", conditions.Condition, conditions.Description)
	}
	point.TemperatureF = conditions.TemperatureF
	point.IsHazard, point.HazardMessage = ClassifyHazard(conditions.Condition, conditions.Description)
	if point.IsHazard {
		hazardsFlaggedTotal.Inc()
	}
	return point
}

// pointLabel names a sampled point for display: the place names at the
// endpoints, the distance from start in between.
func pointLabel(i, n int, sample RoutePoint, start, end Location) string {
	switch {
	case i == 0 && start.PlaceName != "":
		return start.PlaceName
	case i == 0:
		return "Start"
	case i == n-1 && end.PlaceName != "":
		return end.PlaceName
	case i == n-1:
		return "End"
	default:
		return fmt.Sprintf("%.0f km", sample.DistanceMeters/1000)
	}
}
