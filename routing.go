package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/twpayne/go-polyline"
)

// This file provides the driving-route lookup. The routing engine is
// abstracted behind a RoutingService interface; the concrete client talks
// to an OSRM HTTP server and decodes its encoded polyline geometry.

// RoutingService computes a driving route between two coordinates.
type RoutingService interface {
	Route(ctx context.Context, from, to Coordinate) (Route, error)
}

// OSRMRoutingService is an implementation of RoutingService backed by the
// OSRM route service (route/v1/driving).
type OSRMRoutingService struct {
	osrmURL    string
	httpClient *http.Client
}

// NewOSRMRoutingService creates a new OSRMRoutingService. osrmURL is the
// server base, e.g. "https://router.project-osrm.org".
func NewOSRMRoutingService(osrmURL string, httpClient *http.Client) *OSRMRoutingService {
	return &OSRMRoutingService{
		osrmURL:    osrmURL,
		httpClient: httpClient,
	}
}

func (s *OSRMRoutingService) Route(ctx context.Context, from, to Coordinate) (Route, error) {
	// OSRM expects lon,lat pairs in the path.
	requestURL := fmt.Sprintf("%s/route/v1/driving/%f,%f;%f,%f?overview=full&geometries=polyline",
		s.osrmURL, from.Longitude, from.Latitude, to.Longitude, to.Latitude)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return Route{}, fmt.Errorf("failed to build routing request: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return Route{}, fmt.Errorf("routing API request failed: %w", err)
	}
	defer resp.Body.Close()

	// OSRM reports "NoRoute" (and related codes) in the body with a 400
	// status, so Bad Request responses still get decoded. Any other
	// non-200 status did not come from OSRM and carries no usable body.
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusBadRequest {
		return Route{}, fmt.Errorf("routing API request returned non-200 status: %s", resp.Status)
	}

	var responseJSON osrmRouteResponse
	if err := json.NewDecoder(resp.Body).Decode(&responseJSON); err != nil {
		return Route{}, fmt.Errorf("failed to decode routing response: %w", err)
	}

	switch responseJSON.Code {
	case "Ok":
	case "NoRoute", "NoSegment":
		return Route{}, ErrNoRoute
	default:
		return Route{}, fmt.Errorf("routing API returned code: %s", responseJSON.Code)
	}

	if len(responseJSON.Routes) == 0 {
		return Route{}, ErrNoRoute
	}

	best := responseJSON.Routes[0]
	coords, _, err := polyline.DecodeCoords([]byte(best.Geometry))
	if err != nil {
		return Route{}, fmt.Errorf("failed to decode route geometry: %w", err)
	}
	if len(coords) < 2 {
		return Route{}, fmt.Errorf("%w: route geometry has %d vertices", ErrInvalidInput, len(coords))
	}

	path := make(Polyline, len(coords))
	for i, c := range coords {
		path[i] = Coordinate{Latitude: c[0], Longitude: c[1]}
	}

	return Route{
		Polyline:        path,
		DistanceMeters:  best.Distance,
		DurationSeconds: best.Duration,
	}, nil
}

// encodeGeometry converts a polyline back to the encoded wire format for
// responses, so clients can draw the route without re-requesting it.
func encodeGeometry(p Polyline) string {
	coords := make([][]float64, len(p))
	for i, c := range p {
		coords[i] = []float64{c.Latitude, c.Longitude}
	}
	return string(polyline.EncodeCoords(coords))
}

// The following structs represent the OSRM route response.
type osrmRouteResponse struct {
	Code   string      `json:"code"`
	Routes []osrmRoute `json:"routes"`
}

type osrmRoute struct {
	Geometry string  `json:"geometry"`
	Distance float64 `json:"distance"`
	Duration float64 `json:"duration"`
}
