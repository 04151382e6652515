package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

// This file provides the application's geocoding capabilities, which
// resolve free-text place names to coordinates. The provider is abstracted
// behind a GeocodingService interface so the pipeline does not depend on a
// specific service like the Google Maps Platform, and tests can substitute
// a mock.

// GeocodingService defines a generic interface for geocoding operations.
type GeocodingService interface {
	Geocode(ctx context.Context, placeName string) (Location, error)
	ReverseGeocode(ctx context.Context, lat, lng float64) (Location, error)
}

// GmpGeocodingService is an implementation of GeocodingService that uses
// the Google Maps Platform Geocoding API.
type GmpGeocodingService struct {
	gmpKey        string
	gmpGeocodeURL string
	httpClient    *http.Client
}

// NewGmpGeocodingService creates a new GmpGeocodingService.
func NewGmpGeocodingService(gmpKey, gmpGeocodeURL string, httpClient *http.Client) *GmpGeocodingService {
	return &GmpGeocodingService{
		gmpKey:        gmpKey,
		gmpGeocodeURL: gmpGeocodeURL,
		httpClient:    httpClient,
	}
}

// Geocode and ReverseGeocode prepare the specific parameters for their
// respective operations (by place name or by lat/lng) and delegate the
// API call to performGeocodeRequest.
func (s *GmpGeocodingService) Geocode(ctx context.Context, placeName string) (Location, error) {
	params := map[string]string{
		"address": placeName,
	}
	return s.performGeocodeRequest(ctx, params)
}

func (s *GmpGeocodingService) ReverseGeocode(ctx context.Context, lat, lng float64) (Location, error) {
	params := map[string]string{
		"latlng": fmt.Sprintf("%.2f,%.2f", lat, lng),
	}
	return s.performGeocodeRequest(ctx, params)
}

// performGeocodeRequest handles the actual HTTP request to the Google
// Geocoding API.
func (s *GmpGeocodingService) performGeocodeRequest(ctx context.Context, queryParams map[string]string) (Location, error) {
	baseURL, err := url.Parse(s.gmpGeocodeURL + "json")
	if err != nil {
		return Location{}, fmt.Errorf("failed to parse base geocode URL: %w", err)
	}

	q := baseURL.Query()
	q.Set("key", s.gmpKey)
	for key, value := range queryParams {
		q.Set(key, value)
	}
	baseURL.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL.String(), nil)
	if err != nil {
		return Location{}, fmt.Errorf("failed to build geocoding request: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return Location{}, fmt.Errorf("geocoding API request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Location{}, fmt.Errorf("geocoding API request returned non-200 status: %s", resp.Status)
	}

	var responseJSON geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&responseJSON); err != nil {
		return Location{}, fmt.Errorf("failed to decode geocoding response: %w", err)
	}

	if responseJSON.Status != "OK" {
		if responseJSON.Status == "ZERO_RESULTS" {
			return Location{}, ErrNoResultsFound
		}
		return Location{}, fmt.Errorf("geocoding API returned status: %s", responseJSON.Status)
	}

	if len(responseJSON.Results) == 0 {
		return Location{}, ErrNoResultsFound
	}

	return parseLocationFromResult(responseJSON.Results[0]), nil
}

// parseLocationFromResult extracts Location data from a single geocoding
// API result.
func parseLocationFromResult(result geocodeResult) Location {
	var location Location
	location.Latitude = result.Geometry.Location.Latitude
	location.Longitude = result.Geometry.Location.Longitude

	for _, component := range result.AddressComponents {
		for _, componentType := range component.Types {
			switch componentType {
			case "locality":
				location.PlaceName = component.LongName
			case "country":
				location.CountryCode = component.ShortName
			}
		}
	}
	return location
}

// The following structs represent the structure of the Google Geocoding
// API JSON response.
type geocodeResponse struct {
	Results []geocodeResult `json:"results"`
	Status  string          `json:"status"`
}

type geocodeResult struct {
	AddressComponents []addressComponent `json:"address_components"`
	Geometry          geocodeGeometry    `json:"geometry"`
}

type addressComponent struct {
	LongName  string   `json:"long_name"`
	ShortName string   `json:"short_name"`
	Types     []string `json:"types"`
}

type geocodeGeometry struct {
	Location latLng `json:"location"`
}

type latLng struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lng"`
}
