package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// This file contains the caching layer in front of the weather provider.
// A cross-country route can sample dozens of points, and consecutive
// requests for similar routes hit many of the same cells, so current
// conditions are cached per coordinate cell rather than per exact
// coordinate.

// conditionsCacheTTL keeps cached conditions slightly fresher than the
// scheduler's default refresh interval.
const conditionsCacheTTL = 9 * time.Minute

// conditionsCacheKey rounds the coordinate to two decimal places (about
// 1.1 km at the equator) so nearby samples share a cache entry.
func conditionsCacheKey(coord Coordinate) string {
	return fmt.Sprintf("conditions:%.2f:%.2f", coord.Latitude, coord.Longitude)
}

// cachedOrFetchConditions checks the Redis cache for the coordinate's cell
// and falls back to the weather provider on a miss. Cache failures are
// logged and treated as misses; only provider failures propagate.
func (cfg *apiConfig) cachedOrFetchConditions(ctx context.Context, coord Coordinate) (Conditions, error) {
	cacheKey := conditionsCacheKey(coord)

	cachedData, err := cfg.cache.Get(ctx, cacheKey)
	if err == nil {
		var conditions Conditions
		if jsonErr := json.Unmarshal([]byte(cachedData), &conditions); jsonErr == nil {
			cfg.logger.Debug("cache hit", "key", cacheKey)
			return conditions, nil
		} else {
			cfg.logger.Warn("invalid cache entry: unmarshal error", "key", cacheKey, "error", jsonErr)
		}
	} else if !errors.Is(err, ErrCacheMiss) {
		cfg.logger.Warn("error reading conditions cache", "key", cacheKey, "error", err)
	}

	conditions, err := cfg.weather.CurrentAt(ctx, coord)
	if err != nil {
		weatherFetchErrorsTotal.WithLabelValues(string(weatherErrorKind(err))).Inc()
		return Conditions{}, err
	}
	cfg.logger.Debug("weather fetch successful", "key", cacheKey)

	if cacheErr := cfg.cache.Set(ctx, cacheKey, conditions, conditionsCacheTTL); cacheErr != nil {
		cfg.logger.Warn("error writing conditions cache", "key", cacheKey, "error", cacheErr)
	}

	return conditions, nil
}

// refreshConditions fetches fresh conditions for the coordinate's cell and
// overwrites any cached entry. Used by the scheduler to keep conditions for
// known locations warm.
func (cfg *apiConfig) refreshConditions(ctx context.Context, coord Coordinate) error {
	cacheKey := conditionsCacheKey(coord)

	conditions, err := cfg.weather.CurrentAt(ctx, coord)
	if err != nil {
		weatherFetchErrorsTotal.WithLabelValues(string(weatherErrorKind(err))).Inc()
		return err
	}

	if cacheErr := cfg.cache.Set(ctx, cacheKey, conditions, conditionsCacheTTL); cacheErr != nil {
		cfg.logger.Warn("error writing conditions cache", "key", cacheKey, "error", cacheErr)
	}

	return nil
}
