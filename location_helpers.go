package main

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/dkrzeminski/routecast/internal/database"
)

// This file contains helper functions related to location management. A
// geocoded place is stored once, under every normalized spelling seen for
// it, so repeat lookups of "Chicago", "chicago" or "CHICAGO" skip the
// geocoding API. Only canonical locations are stored; route queries and
// their results are never persisted.

// resolveEndpoint turns one end of a requested route into a stored
// location. A place name goes straight to the alias cache; coordinates
// are reverse geocoded to a place name first, so both request forms end
// up in the same locations table.
func (cfg *apiConfig) resolveEndpoint(ctx context.Context, placeName string, coord *Coordinate) (Location, error) {
	placeName = strings.TrimSpace(placeName)
	if placeName != "" {
		return cfg.getOrCreateLocation(ctx, placeName)
	}

	if coord != nil {
		location, err := cfg.geocoder.ReverseGeocode(ctx, coord.Latitude, coord.Longitude)
		if err != nil {
			return Location{}, fmt.Errorf("could not reverse geocode coordinates: %w", err)
		}
		return cfg.getOrCreateLocation(ctx, location.PlaceName)
	}

	return Location{}, fmt.Errorf("%w: a place name or coordinates are required for each route endpoint", ErrInvalidInput)
}

// getOrCreateLocation retrieves a location from the database or geocodes
// and stores it.
//
// The logic is as follows:
// 1. Normalize the input placeName to create a standardized alias.
// 2. Attempt to find the location by this alias.
// 3. If found, return the location.
// 4. If not found, call the geocoding service for the canonical data.
// 5. If a location with the canonical name already exists, link the
//    user's alias to it.
// 6. Otherwise create a new location record plus aliases for both the
//    user's input and the canonical name.
func (cfg *apiConfig) getOrCreateLocation(ctx context.Context, placeName string) (Location, error) {
	alias, err := normalizePlaceName(placeName)
	if err != nil {
		return Location{}, fmt.Errorf("could not normalize place name: %w", err)
	}

	dbLocation, err := cfg.dbQueries.GetLocationByAlias(ctx, alias)
	if err == nil {
		cfg.logger.Debug("location found by alias", "alias", alias, "place", dbLocation.PlaceName)
		return databaseLocationToLocation(dbLocation), nil
	}
	if err != sql.ErrNoRows {
		return Location{}, fmt.Errorf("database error when fetching location by alias: %w", err)
	}

	cfg.logger.Debug("alias not found, geocoding", "alias", alias, "original_place", placeName)
	geocodedLocation, geoErr := cfg.geocoder.Geocode(ctx, placeName)
	if geoErr != nil {
		return Location{}, fmt.Errorf("could not geocode place '%s': %w", placeName, geoErr)
	}

	dbLocation, err = cfg.dbQueries.GetLocationByName(ctx, geocodedLocation.PlaceName)
	if err == nil {
		cfg.logger.Debug("canonical location found in db, creating new alias", "place", dbLocation.PlaceName, "alias", alias)
		_, aliasErr := cfg.dbQueries.CreateLocationAlias(ctx, database.CreateLocationAliasParams{Alias: alias, LocationID: dbLocation.ID})
		if aliasErr != nil {
			cfg.logger.Warn("could not create location alias", "alias", alias, "location_id", dbLocation.ID, "error", aliasErr)
		}
		return databaseLocationToLocation(dbLocation), nil
	}
	if err != sql.ErrNoRows {
		return Location{}, fmt.Errorf("database error when fetching location by canonical name: %w", err)
	}

	cfg.logger.Debug("no location found, creating new location and aliases", "place", geocodedLocation.PlaceName)
	persistedLocation, createErr := cfg.dbQueries.CreateLocation(ctx, locationToCreateLocationParams(geocodedLocation))
	if createErr != nil {
		return Location{}, fmt.Errorf("could not persist new location: %w", createErr)
	}

	_, aliasErr := cfg.dbQueries.CreateLocationAlias(ctx, database.CreateLocationAliasParams{Alias: alias, LocationID: persistedLocation.ID})
	if aliasErr != nil {
		cfg.logger.Warn("could not create user input alias", "alias", alias, "location_id", persistedLocation.ID, "error", aliasErr)
	}

	canonicalAlias, err := normalizePlaceName(persistedLocation.PlaceName)
	if err != nil {
		cfg.logger.Error("could not normalize canonical place name", "place", persistedLocation.PlaceName, "error", err)
	} else if alias != canonicalAlias {
		_, aliasErr = cfg.dbQueries.CreateLocationAlias(ctx, database.CreateLocationAliasParams{Alias: canonicalAlias, LocationID: persistedLocation.ID})
		if aliasErr != nil {
			cfg.logger.Warn("could not create canonical alias", "alias", canonicalAlias, "location_id", persistedLocation.ID, "error", aliasErr)
		}
	}

	return databaseLocationToLocation(persistedLocation), nil
}
