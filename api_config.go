package main

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/dkrzeminski/routecast/internal/database"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
)

type apiConfig struct {
	dbQueries            dbQuerier
	cache                Cache
	geocoder             GeocodingService
	router               RoutingService
	weather              WeatherService
	httpClient           *http.Client
	sampleIntervalMeters float64
	refreshInterval      time.Duration
	port                 string
	devMode              bool
	logger               *slog.Logger
}

// getRequiredEnv retrieves an environment variable by key, and fatals if it's not set.
func getRequiredEnv(key string, logger *slog.Logger) string {
	val, ok := os.LookupEnv(key)
	if !ok {
		logger.Error("environment variable must be set", "key", key)
		os.Exit(1)
	}
	return val
}

// getEnv retrieves an environment variable by key, with a fallback value.
func getEnv(key, fallback string, logger *slog.Logger) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	logger.Info("environment variable not set, using fallback", "key", key, "fallback", fallback)
	return fallback
}

// getEnvAsInt retrieves an environment variable as an integer, with a fallback value.
func getEnvAsInt(key string, fallback int, logger *slog.Logger) int {
	valStr, ok := os.LookupEnv(key)
	if !ok {
		logger.Info("environment variable not set, using fallback", "key", key, "fallback", fallback)
		return fallback
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		logger.Warn("invalid integer value for environment variable, using fallback", "key", key, "value", valStr, "error", err)
		return fallback
	}
	return val
}

func config() *apiConfig {
	devModeStr := os.Getenv("DEV_MODE")
	devMode, err := strconv.ParseBool(devModeStr)
	if err != nil {
		devMode = false
	}

	var logger *slog.Logger
	if devMode {
		logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	} else {
		logger = slog.New(slog.NewJSONHandler(os.Stdout, nil))
	}

	if err := godotenv.Load(); err != nil {
		logger.Info("no .env file found, relying on environment variables")
	}

	dbURL := getRequiredEnv("DB_URL", logger)
	db, err := sql.Open("postgres", dbURL)
	if err != nil {
		logger.Error("couldn't prepare connection to database", "error", err)
		os.Exit(1)
	}
	if err := db.Ping(); err != nil {
		logger.Error("couldn't connect to database", "error", err)
		os.Exit(1)
	}
	dbQueries := database.New(db)

	redisURL := getRequiredEnv("REDIS_URL", logger)
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		logger.Error("could not parse Redis URL", "error", err)
		os.Exit(1)
	}
	redisClient := redis.NewClient(opt)
	if _, err := redisClient.Ping(context.Background()).Result(); err != nil {
		logger.Error("could not connect to Redis", "error", err)
		os.Exit(1)
	}
	cache := NewRedisCache(redisClient)

	httpClient := &http.Client{
		Timeout: 10 * time.Second,
	}

	geocoder := NewGmpGeocodingService(
		getRequiredEnv("GMP_KEY", logger),
		getRequiredEnv("GMP_GEOCODE_URL", logger),
		httpClient,
	)

	router := NewOSRMRoutingService(
		getEnv("OSRM_URL", "https://router.project-osrm.org", logger),
		httpClient,
	)

	// Without an OpenWeatherMap key the service still runs, serving
	// deterministic simulated conditions instead of live data.
	var weather WeatherService
	owmKey := os.Getenv("OWM_KEY")
	if owmKey == "" {
		logger.Info("OWM_KEY not set, using simulated weather provider")
		weather = NewSimulatedWeatherService(logger)
	} else {
		weather = NewOWMWeatherService(
			owmKey,
			getEnv("OWM_WEATHER_URL", "https://api.openweathermap.org/data/2.5/weather", logger),
			httpClient,
		)
	}

	sampleIntervalKm := getEnvAsInt("SAMPLE_INTERVAL_KM", 48, logger)
	refreshIntervalMin := getEnvAsInt("WEATHER_REFRESH_MIN", 10, logger)

	cfg := apiConfig{
		dbQueries:            dbQueries,
		cache:                cache,
		geocoder:             geocoder,
		router:               router,
		weather:              weather,
		httpClient:           httpClient,
		sampleIntervalMeters: float64(sampleIntervalKm) * 1000,
		refreshInterval:      time.Duration(refreshIntervalMin) * time.Minute,
		port:                 getEnv("PORT", "8080", logger),
		devMode:              devMode,
		logger:               logger,
	}

	return &cfg
}
