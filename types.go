package main

import (
	"time"

	"github.com/google/uuid"
)

// Coordinate is a WGS 84 latitude/longitude pair. Immutable value type.
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Polyline is an ordered sequence of coordinates describing a route path.
// It is produced once by the routing service and read-only afterwards.
type Polyline []Coordinate

// Route is the result of a routing request: the path geometry plus its
// total driving distance and estimated duration.
type Route struct {
	Polyline        Polyline
	DistanceMeters  float64
	DurationSeconds float64
}

// RoutePoint is a coordinate on the route together with its cumulative
// distance from the route start. It only exists during sampling.
type RoutePoint struct {
	Coordinate     Coordinate
	DistanceMeters float64
}

type Location struct {
	LocationID  uuid.UUID `json:"location_id"`
	PlaceName   string    `json:"place_name"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	CountryCode string    `json:"country_code"`
}

// Conditions is a single current-weather observation for one coordinate.
type Conditions struct {
	SourceAPI       string    `json:"source_api"`
	Timestamp       time.Time `json:"timestamp"`
	Condition       string    `json:"condition"`
	Description     string    `json:"description"`
	TemperatureF    float64   `json:"temperature_f"`
	WindSpeedMph    float64   `json:"wind_speed_mph"`
	PrecipitationMm float64   `json:"precipitation_mm"`
}

// WeatherPoint is one sampled point on the route with its weather and
// hazard verdict. The sequence is ordered by sample index; the first and
// last points are always the exact route start and end coordinates.
type WeatherPoint struct {
	Coordinate     Coordinate `json:"coordinate"`
	Label          string     `json:"label"`
	DistanceMeters float64    `json:"distance_meters"`
	Conditions     string     `json:"conditions"`
	TemperatureF   float64    `json:"temperature_f"`
	IsHazard       bool       `json:"is_hazard"`
	HazardMessage  string     `json:"hazard_message,omitempty"`
}

type RouteWeatherResponse struct {
	Start           Location       `json:"start"`
	End             Location       `json:"end"`
	DistanceMeters  float64        `json:"distance_meters"`
	DurationSeconds float64        `json:"duration_seconds"`
	Geometry        string         `json:"geometry"`
	Points          []WeatherPoint `json:"points"`
}

type ConfigResponse struct {
	DevMode          bool   `json:"dev_mode"`
	SampleIntervalKm int    `json:"sample_interval_km"`
	RefreshInterval  string `json:"refresh_interval"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
