package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/dkrzeminski/routecast/internal/database"
)

// --- Mocks ---

// mockGeocodingService is a mock for the GeocodingService interface.
type mockGeocodingService struct {
	GeocodeFunc        func(ctx context.Context, placeName string) (Location, error)
	ReverseGeocodeFunc func(ctx context.Context, lat, lng float64) (Location, error)
}

func (m *mockGeocodingService) Geocode(ctx context.Context, placeName string) (Location, error) {
	if m.GeocodeFunc != nil {
		return m.GeocodeFunc(ctx, placeName)
	}
	return Location{}, errors.New("GeocodeFunc not implemented in mock")
}

func (m *mockGeocodingService) ReverseGeocode(ctx context.Context, lat, lng float64) (Location, error) {
	if m.ReverseGeocodeFunc != nil {
		return m.ReverseGeocodeFunc(ctx, lat, lng)
	}
	return Location{}, errors.New("ReverseGeocodeFunc not implemented in mock")
}

// mockRoutingService is a mock for the RoutingService interface.
type mockRoutingService struct {
	RouteFunc func(ctx context.Context, from, to Coordinate) (Route, error)
}

func (m *mockRoutingService) Route(ctx context.Context, from, to Coordinate) (Route, error) {
	if m.RouteFunc != nil {
		return m.RouteFunc(ctx, from, to)
	}
	return Route{}, errors.New("RouteFunc not implemented in mock")
}

// mockWeatherService is a mock for the WeatherService interface.
type mockWeatherService struct {
	CurrentAtFunc func(ctx context.Context, coord Coordinate) (Conditions, error)
}

func (m *mockWeatherService) CurrentAt(ctx context.Context, coord Coordinate) (Conditions, error) {
	if m.CurrentAtFunc != nil {
		return m.CurrentAtFunc(ctx, coord)
	}
	return Conditions{}, errors.New("CurrentAtFunc not implemented in mock")
}

// mockCache is a mock for the Cache interface.
type mockCache struct {
	getFunc   func(ctx context.Context, key string) (string, error)
	setFunc   func(ctx context.Context, key string, value any, expiration time.Duration) error
	flushFunc func(ctx context.Context) error
}

func (m *mockCache) Get(ctx context.Context, key string) (string, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, key)
	}
	return "", ErrCacheMiss
}

func (m *mockCache) Set(ctx context.Context, key string, value any, expiration time.Duration) error {
	if m.setFunc != nil {
		return m.setFunc(ctx, key, value, expiration)
	}
	return nil
}

func (m *mockCache) Flush(ctx context.Context) error {
	if m.flushFunc != nil {
		return m.flushFunc(ctx)
	}
	return nil
}

// mockQuerier is a comprehensive, safe mock for the dbQuerier interface.
// It fails the test if any unexpected method is called.
type mockQuerier struct {
	t *testing.T

	CreateLocationFunc      func(ctx context.Context, arg database.CreateLocationParams) (database.Location, error)
	CreateLocationAliasFunc func(ctx context.Context, arg database.CreateLocationAliasParams) (database.LocationAlias, error)
	DeleteAllLocationsFunc  func(ctx context.Context) error
	GetLocationByAliasFunc  func(ctx context.Context, alias string) (database.Location, error)
	GetLocationByNameFunc   func(ctx context.Context, placeName string) (database.Location, error)
	ListLocationsFunc       func(ctx context.Context) ([]database.Location, error)
}

func (m *mockQuerier) fail(method string) {
	m.t.Helper()
	m.t.Fatalf("unexpected call to mockQuerier method: %s", method)
}

func (m *mockQuerier) CreateLocation(ctx context.Context, arg database.CreateLocationParams) (database.Location, error) {
	if m.CreateLocationFunc != nil {
		return m.CreateLocationFunc(ctx, arg)
	}
	m.fail("CreateLocation")
	return database.Location{}, nil
}

func (m *mockQuerier) CreateLocationAlias(ctx context.Context, arg database.CreateLocationAliasParams) (database.LocationAlias, error) {
	if m.CreateLocationAliasFunc != nil {
		return m.CreateLocationAliasFunc(ctx, arg)
	}
	m.fail("CreateLocationAlias")
	return database.LocationAlias{}, nil
}

func (m *mockQuerier) DeleteAllLocations(ctx context.Context) error {
	if m.DeleteAllLocationsFunc != nil {
		return m.DeleteAllLocationsFunc(ctx)
	}
	m.fail("DeleteAllLocations")
	return nil
}

func (m *mockQuerier) GetLocationByAlias(ctx context.Context, alias string) (database.Location, error) {
	if m.GetLocationByAliasFunc != nil {
		return m.GetLocationByAliasFunc(ctx, alias)
	}
	m.fail("GetLocationByAlias")
	return database.Location{}, nil
}

func (m *mockQuerier) GetLocationByName(ctx context.Context, placeName string) (database.Location, error) {
	if m.GetLocationByNameFunc != nil {
		return m.GetLocationByNameFunc(ctx, placeName)
	}
	m.fail("GetLocationByName")
	return database.Location{}, nil
}

func (m *mockQuerier) ListLocations(ctx context.Context) ([]database.Location, error) {
	if m.ListLocationsFunc != nil {
		return m.ListLocationsFunc(ctx)
	}
	m.fail("ListLocations")
	return nil, nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestConfig returns an apiConfig with all collaborators mocked and a
// discarding logger, for use in handler and pipeline tests.
func newTestConfig(t *testing.T) (*apiConfig, *mockQuerier, *mockCache, *mockGeocodingService, *mockRoutingService, *mockWeatherService) {
	t.Helper()

	querier := &mockQuerier{t: t}
	cache := &mockCache{}
	geocoder := &mockGeocodingService{}
	router := &mockRoutingService{}
	weather := &mockWeatherService{}

	cfg := &apiConfig{
		dbQueries:            querier,
		cache:                cache,
		geocoder:             geocoder,
		router:               router,
		weather:              weather,
		sampleIntervalMeters: defaultSampleIntervalMeters,
		refreshInterval:      10 * time.Minute,
		port:                 "8080",
		logger:               discardLogger(),
	}

	return cfg, querier, cache, geocoder, router, weather
}
