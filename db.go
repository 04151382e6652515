package main

import (
	"context"

	"github.com/dkrzeminski/routecast/internal/database"
	_ "github.com/lib/pq"
)

// dbQuerier is an interface that abstracts all database operations.
// It is implemented by the sqlc-generated Queries struct, allowing for
// dependency injection and easy mocking in tests. This decouples business
// logic from the data layer.
type dbQuerier interface {
	CreateLocation(ctx context.Context, arg database.CreateLocationParams) (database.Location, error)
	CreateLocationAlias(ctx context.Context, arg database.CreateLocationAliasParams) (database.LocationAlias, error)
	DeleteAllLocations(ctx context.Context) error
	GetLocationByAlias(ctx context.Context, alias string) (database.Location, error)
	GetLocationByName(ctx context.Context, placeName string) (database.Location, error)
	ListLocations(ctx context.Context) ([]database.Location, error)
}
