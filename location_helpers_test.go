package main

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/dkrzeminski/routecast/internal/database"
	"github.com/google/uuid"
)

func TestResolveEndpoint_RequiresNameOrCoordinates(t *testing.T) {
	cfg, _, _, _, _, _ := newTestConfig(t)

	tests := []struct {
		name      string
		placeName string
	}{
		{"empty name, no coordinates", ""},
		{"whitespace name, no coordinates", "   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := cfg.resolveEndpoint(context.Background(), tt.placeName, nil)
			if !errors.Is(err, ErrInvalidInput) {
				t.Errorf("Expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestResolveEndpoint_NamePrecedesCoordinates(t *testing.T) {
	cfg, querier, _, geocoder, _, _ := newTestConfig(t)

	stored := database.Location{ID: uuid.New(), PlaceName: "Chicago", Latitude: 41.88, Longitude: -87.63, CountryCode: "US"}
	querier.GetLocationByAliasFunc = func(ctx context.Context, alias string) (database.Location, error) {
		return stored, nil
	}
	geocoder.ReverseGeocodeFunc = func(ctx context.Context, lat, lng float64) (Location, error) {
		t.Fatal("ReverseGeocode must not be called when a place name is given")
		return Location{}, nil
	}

	location, err := cfg.resolveEndpoint(context.Background(), "Chicago", &Coordinate{Latitude: 1, Longitude: 2})
	if err != nil {
		t.Fatalf("resolveEndpoint() returned an unexpected error: %v", err)
	}
	if location.LocationID != stored.ID {
		t.Errorf("Expected location ID %v, got %v", stored.ID, location.LocationID)
	}
}

func TestGetOrCreateLocation_AliasHit(t *testing.T) {
	cfg, querier, _, geocoder, _, _ := newTestConfig(t)

	stored := database.Location{ID: uuid.New(), PlaceName: "Chicago", Latitude: 41.88, Longitude: -87.63, CountryCode: "US"}
	querier.GetLocationByAliasFunc = func(ctx context.Context, alias string) (database.Location, error) {
		if alias != "chicago" {
			t.Errorf("Expected normalized alias 'chicago', got %q", alias)
		}
		return stored, nil
	}
	geocoder.GeocodeFunc = func(ctx context.Context, placeName string) (Location, error) {
		t.Fatal("Geocoder must not be called on an alias hit")
		return Location{}, nil
	}

	location, err := cfg.getOrCreateLocation(context.Background(), "CHICAGO")
	if err != nil {
		t.Fatalf("getOrCreateLocation() returned an unexpected error: %v", err)
	}
	if location.PlaceName != "Chicago" {
		t.Errorf("Expected place name 'Chicago', got %q", location.PlaceName)
	}
	if location.LocationID != stored.ID {
		t.Errorf("Expected location ID %v, got %v", stored.ID, location.LocationID)
	}
}

func TestGetOrCreateLocation_CanonicalHitCreatesAlias(t *testing.T) {
	cfg, querier, _, geocoder, _, _ := newTestConfig(t)

	stored := database.Location{ID: uuid.New(), PlaceName: "Chicago", Latitude: 41.88, Longitude: -87.63, CountryCode: "US"}

	querier.GetLocationByAliasFunc = func(ctx context.Context, alias string) (database.Location, error) {
		return database.Location{}, sql.ErrNoRows
	}
	geocoder.GeocodeFunc = func(ctx context.Context, placeName string) (Location, error) {
		return Location{PlaceName: "Chicago", Latitude: 41.88, Longitude: -87.63, CountryCode: "US"}, nil
	}
	querier.GetLocationByNameFunc = func(ctx context.Context, placeName string) (database.Location, error) {
		return stored, nil
	}

	var aliasCreated string
	querier.CreateLocationAliasFunc = func(ctx context.Context, arg database.CreateLocationAliasParams) (database.LocationAlias, error) {
		aliasCreated = arg.Alias
		if arg.LocationID != stored.ID {
			t.Errorf("Alias linked to wrong location: %v", arg.LocationID)
		}
		return database.LocationAlias{Alias: arg.Alias, LocationID: arg.LocationID}, nil
	}

	location, err := cfg.getOrCreateLocation(context.Background(), "Windy City")
	if err != nil {
		t.Fatalf("getOrCreateLocation() returned an unexpected error: %v", err)
	}
	if location.LocationID != stored.ID {
		t.Errorf("Expected existing location, got %v", location.LocationID)
	}
	if aliasCreated != "windy city" {
		t.Errorf("Expected alias 'windy city' to be created, got %q", aliasCreated)
	}
}

func TestGetOrCreateLocation_CreatesLocationAndAliases(t *testing.T) {
	cfg, querier, _, geocoder, _, _ := newTestConfig(t)

	created := database.Location{ID: uuid.New(), PlaceName: "Chicago", Latitude: 41.88, Longitude: -87.63, CountryCode: "US"}

	querier.GetLocationByAliasFunc = func(ctx context.Context, alias string) (database.Location, error) {
		return database.Location{}, sql.ErrNoRows
	}
	geocoder.GeocodeFunc = func(ctx context.Context, placeName string) (Location, error) {
		return Location{PlaceName: "Chicago", Latitude: 41.88, Longitude: -87.63, CountryCode: "US"}, nil
	}
	querier.GetLocationByNameFunc = func(ctx context.Context, placeName string) (database.Location, error) {
		return database.Location{}, sql.ErrNoRows
	}
	querier.CreateLocationFunc = func(ctx context.Context, arg database.CreateLocationParams) (database.Location, error) {
		if arg.PlaceName != "Chicago" {
			t.Errorf("Expected canonical place name 'Chicago', got %q", arg.PlaceName)
		}
		return created, nil
	}

	var aliases []string
	querier.CreateLocationAliasFunc = func(ctx context.Context, arg database.CreateLocationAliasParams) (database.LocationAlias, error) {
		aliases = append(aliases, arg.Alias)
		return database.LocationAlias{Alias: arg.Alias, LocationID: arg.LocationID}, nil
	}

	location, err := cfg.getOrCreateLocation(context.Background(), "Windy City")
	if err != nil {
		t.Fatalf("getOrCreateLocation() returned an unexpected error: %v", err)
	}
	if location.LocationID != created.ID {
		t.Errorf("Expected new location, got %v", location.LocationID)
	}

	// Both the user's spelling and the canonical name get aliases.
	if len(aliases) != 2 {
		t.Fatalf("Expected 2 aliases, got %d: %v", len(aliases), aliases)
	}
	if aliases[0] != "windy city" || aliases[1] != "chicago" {
		t.Errorf("Expected aliases ['windy city', 'chicago'], got %v", aliases)
	}
}

func TestGetOrCreateLocation_SkipsDuplicateCanonicalAlias(t *testing.T) {
	cfg, querier, _, geocoder, _, _ := newTestConfig(t)

	created := database.Location{ID: uuid.New(), PlaceName: "Chicago", Latitude: 41.88, Longitude: -87.63, CountryCode: "US"}

	querier.GetLocationByAliasFunc = func(ctx context.Context, alias string) (database.Location, error) {
		return database.Location{}, sql.ErrNoRows
	}
	geocoder.GeocodeFunc = func(ctx context.Context, placeName string) (Location, error) {
		return Location{PlaceName: "Chicago", Latitude: 41.88, Longitude: -87.63, CountryCode: "US"}, nil
	}
	querier.GetLocationByNameFunc = func(ctx context.Context, placeName string) (database.Location, error) {
		return database.Location{}, sql.ErrNoRows
	}
	querier.CreateLocationFunc = func(ctx context.Context, arg database.CreateLocationParams) (database.Location, error) {
		return created, nil
	}

	var aliases []string
	querier.CreateLocationAliasFunc = func(ctx context.Context, arg database.CreateLocationAliasParams) (database.LocationAlias, error) {
		aliases = append(aliases, arg.Alias)
		return database.LocationAlias{Alias: arg.Alias, LocationID: arg.LocationID}, nil
	}

	// The user's input normalizes to the canonical alias.
	if _, err := cfg.getOrCreateLocation(context.Background(), "CHICAGO"); err != nil {
		t.Fatalf("getOrCreateLocation() returned an unexpected error: %v", err)
	}

	if len(aliases) != 1 {
		t.Fatalf("Expected 1 alias when input matches the canonical name, got %d: %v", len(aliases), aliases)
	}
	if aliases[0] != "chicago" {
		t.Errorf("Expected alias 'chicago', got %q", aliases[0])
	}
}

func TestGetOrCreateLocation_GeocodeFailure(t *testing.T) {
	cfg, querier, _, geocoder, _, _ := newTestConfig(t)

	querier.GetLocationByAliasFunc = func(ctx context.Context, alias string) (database.Location, error) {
		return database.Location{}, sql.ErrNoRows
	}
	geocoder.GeocodeFunc = func(ctx context.Context, placeName string) (Location, error) {
		return Location{}, ErrNoResultsFound
	}

	_, err := cfg.getOrCreateLocation(context.Background(), "Nowhere")
	if !errors.Is(err, ErrNoResultsFound) {
		t.Errorf("Expected ErrNoResultsFound, got %v", err)
	}
}

func TestGetOrCreateLocation_DBError(t *testing.T) {
	cfg, querier, _, _, _, _ := newTestConfig(t)

	dbErr := errors.New("connection refused")
	querier.GetLocationByAliasFunc = func(ctx context.Context, alias string) (database.Location, error) {
		return database.Location{}, dbErr
	}

	_, err := cfg.getOrCreateLocation(context.Background(), "Chicago")
	if !errors.Is(err, dbErr) {
		t.Errorf("Expected the database error to propagate, got %v", err)
	}
}
