package main

import (
	"github.com/dkrzeminski/routecast/internal/database"
)

// This file contains conversion functions between the database models and
// the application's domain models.

func databaseLocationToLocation(dbLocation database.Location) Location {
	return Location{
		LocationID:  dbLocation.ID,
		PlaceName:   dbLocation.PlaceName,
		Latitude:    dbLocation.Latitude,
		Longitude:   dbLocation.Longitude,
		CountryCode: dbLocation.CountryCode,
	}
}

func locationToCreateLocationParams(location Location) database.CreateLocationParams {
	return database.CreateLocationParams{
		PlaceName:   location.PlaceName,
		Latitude:    location.Latitude,
		Longitude:   location.Longitude,
		CountryCode: location.CountryCode,
	}
}
