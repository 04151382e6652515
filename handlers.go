package main

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// This file contains the main HTTP handlers for the application. Each handler is responsible
// for processing incoming API requests, calling the appropriate helper functions to fetch
// and process data, and writing the final JSON response.

// @Summary      Get weather along a route
// @Description  Resolves the start and end locations (by name, or by reverse geocoding
// @Description  lat/lon pairs), computes a driving route between them, samples the route
// @Description  at a fixed interval and returns current weather conditions with hazard
// @Description  flags for every sampled point, in route order.
// @Tags         weather
// @Produce      json
// @Param        from        query  string  false  "Start location name (e.g., 'Chicago')"
// @Param        to          query  string  false  "End location name (e.g., 'Denver')"
// @Param        from_lat    query  number  false  "Start latitude, used with from_lon when no start name is given"
// @Param        from_lon    query  number  false  "Start longitude"
// @Param        to_lat      query  number  false  "End latitude, used with to_lon when no end name is given"
// @Param        to_lon      query  number  false  "End longitude"
// @Param        interval_km query  number  false  "Sampling interval in kilometers (default 48)"
// @Success      200  {object}  RouteWeatherResponse
// @Failure      400  {object}  ErrorResponse "Bad Request - Missing or invalid parameters"
// @Failure      404  {object}  ErrorResponse "Not Found - Location could not be geocoded or no route exists"
// @Failure      500  {object}  ErrorResponse "Internal Server Error - Failed to compute route weather"
// @Router       /api/routeweather [get]
func (cfg *apiConfig) handlerRouteWeather(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if r.Method != http.MethodGet {
		cfg.respondWithError(w, http.StatusMethodNotAllowed, "Method Not Allowed", nil)
		return
	}

	query := r.URL.Query()
	req := RouteWeatherRequest{
		From: query.Get("from"),
		To:   query.Get("to"),
	}

	fromCoord, err := coordinateParam(query, "from_lat", "from_lon")
	if err != nil {
		cfg.respondWithError(w, http.StatusBadRequest, "Invalid start coordinates", err)
		return
	}
	req.FromCoord = fromCoord

	toCoord, err := coordinateParam(query, "to_lat", "to_lon")
	if err != nil {
		cfg.respondWithError(w, http.StatusBadRequest, "Invalid end coordinates", err)
		return
	}
	req.ToCoord = toCoord

	if intervalStr := query.Get("interval_km"); intervalStr != "" {
		intervalKm, err := strconv.ParseFloat(intervalStr, 64)
		if err != nil {
			cfg.respondWithError(w, http.StatusBadRequest, "Invalid interval_km parameter", err)
			return
		}
		req.IntervalMeters = intervalKm * 1000
	}

	cfg.logger.Debug("route weather request", "from", req.From, "to", req.To)

	start := time.Now()
	response, err := cfg.routeWeather(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			cfg.respondWithError(w, http.StatusBadRequest, "Invalid request parameters", err)
		case errors.Is(err, ErrNoResultsFound):
			cfg.respondWithError(w, http.StatusNotFound, "Location could not be found", err)
		case errors.Is(err, ErrNoRoute):
			cfg.respondWithError(w, http.StatusNotFound, "No route found between the given locations", err)
		default:
			cfg.respondWithError(w, http.StatusInternalServerError, "Error computing route weather", err)
		}
		return
	}

	cfg.logger.Info("route weather computed",
		"from", response.Start.PlaceName,
		"to", response.End.PlaceName,
		"points", len(response.Points),
		"duration", time.Since(start).String(),
	)

	cfg.respondWithJSON(w, http.StatusOK, response)
}

// coordinateParam reads an optional lat/lon query parameter pair. Both
// values must be present and numeric, or neither.
func coordinateParam(query url.Values, latKey, lonKey string) (*Coordinate, error) {
	latStr := query.Get(latKey)
	lonStr := query.Get(lonKey)
	if latStr == "" && lonStr == "" {
		return nil, nil
	}
	if latStr == "" || lonStr == "" {
		return nil, fmt.Errorf("%s and %s must be provided together", latKey, lonKey)
	}

	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %v", latKey, err)
	}
	lon, err := strconv.ParseFloat(lonStr, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %v", lonKey, err)
	}

	return &Coordinate{Latitude: lat, Longitude: lon}, nil
}

// handlerConfig provides client-side applications with necessary configuration,
// such as whether the application is running in development mode.

// @Summary      Get application configuration
// @Description  Provides client-side applications with necessary configuration details,
// @Description  such as whether the application is running in development mode, the
// @Description  default sampling interval and the weather refresh interval.
// @Tags         configuration
// @Produce      json
// @Success      200  {object}  ConfigResponse
// @Router       /api/config [get]
func (cfg *apiConfig) handlerConfig(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		cfg.respondWithError(w, http.StatusMethodNotAllowed, "Method Not Allowed", nil)
		return
	}

	response := ConfigResponse{
		DevMode:          cfg.devMode,
		SampleIntervalKm: int(cfg.sampleIntervalMeters / 1000),
		RefreshInterval:  cfg.refreshInterval.String(),
	}

	cfg.respondWithJSON(w, http.StatusOK, response)
}

// @Summary      Health check
// @Description  Reports whether the service is up and able to accept requests.
// @Tags         health
// @Produce      json
// @Success      200  {object}  map[string]string "Example: `{\"status\":\"ok\"}`"
// @Router       /healthz [get]
func (cfg *apiConfig) handlerHealthz(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		cfg.respondWithError(w, http.StatusMethodNotAllowed, "Method Not Allowed", nil)
		return
	}
	cfg.respondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handlerResetDB is a development-only endpoint that completely wipes the database and the Redis cache.
// Deleting all locations cascades and clears all related aliases.

// @Summary      Reset database and cache (development only)
// @Description  Completely wipes the stored locations and the Redis cache. This endpoint is
// @Description  intended for development and testing purposes only. It should not be enabled
// @Description  in production environments.
// @Tags         development
// @Produce      json
// @Success      200  {object}  map[string]string "Confirmation of reset. Example: `{\"status\":\"database and cache reset\"}`"
// @Failure      500  {object}  ErrorResponse "Internal Server Error - Failed to reset database or cache"
// @Router       /dev/reset-db [post]
func (cfg *apiConfig) handlerResetDB(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		cfg.respondWithError(w, http.StatusMethodNotAllowed, "Method Not Allowed", nil)
		return
	}
	cfg.logger.Debug("database reset request received")

	ctx := r.Context()

	err := cfg.dbQueries.DeleteAllLocations(ctx)
	if err != nil {
		cfg.respondWithError(w, http.StatusInternalServerError, "Failed to reset database", err)
		return
	}

	err = cfg.cache.Flush(ctx)
	if err != nil {
		cfg.respondWithError(w, http.StatusInternalServerError, "Failed to flush cache", err)
		return
	}

	cfg.respondWithJSON(w, http.StatusOK, map[string]string{"status": "database and cache reset"})
}

// handlerRefreshWeather is a development-only endpoint that manually triggers
// a run of the scheduled weather refresh job.

// @Summary      Manually trigger a weather refresh (development only)
// @Description  Manually triggers a refresh of cached conditions for all known locations.
// @Description  This endpoint is intended for development and testing purposes only.
// @Tags         development
// @Produce      json
// @Success      202  {object}  map[string]string "Confirmation of triggering. Example: `{\"status\":\"weather refresh triggered\"}`"
// @Router       /dev/refresh-weather [post]
func (s *Scheduler) handlerRefreshWeather(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.cfg.respondWithError(w, http.StatusMethodNotAllowed, "Method Not Allowed", nil)
		return
	}
	s.cfg.logger.Info("manual weather refresh triggered")

	s.ticker.Reset(s.cfg.refreshInterval)

	go func() {
		s.refreshJob()
		s.cfg.logger.Info("manual weather refresh finished")
	}()

	s.cfg.respondWithJSON(w, http.StatusAccepted, map[string]string{"status": "weather refresh triggered"})
}
