package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"net/url"
	"time"

	"github.com/sony/gobreaker"
)

// This file provides the per-point weather lookup. The provider sits
// behind a WeatherService interface; the production implementation talks
// to the OpenWeatherMap current-weather API through a circuit breaker so a
// dead provider trips open instead of hammering the API once per sampled
// point. When no API key is configured, a simulated provider is used so
// the pipeline stays demoable without credentials.

// WeatherService returns current conditions at a coordinate.
type WeatherService interface {
	CurrentAt(ctx context.Context, coord Coordinate) (Conditions, error)
}

// OWMWeatherService is an implementation of WeatherService backed by the
// OpenWeatherMap current-weather endpoint.
type OWMWeatherService struct {
	owmKey     string
	owmURL     string
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker
}

// NewOWMWeatherService creates a new OWMWeatherService.
func NewOWMWeatherService(owmKey, owmURL string, httpClient *http.Client) *OWMWeatherService {
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "openweathermap",
		MaxRequests: 5,
		Interval:    1 * time.Minute,
		Timeout:     2 * time.Minute,
	})
	return &OWMWeatherService{
		owmKey:     owmKey,
		owmURL:     owmURL,
		httpClient: httpClient,
		breaker:    cb,
	}
}

func (s *OWMWeatherService) CurrentAt(ctx context.Context, coord Coordinate) (Conditions, error) {
	values := url.Values{}
	values.Set("lat", fmt.Sprintf("%f", coord.Latitude))
	values.Set("lon", fmt.Sprintf("%f", coord.Longitude))
	values.Set("units", "imperial")
	values.Set("appid", s.owmKey)
	requestURL := fmt.Sprintf("%s?%s", s.owmURL, values.Encode())

	result, err := s.breaker.Execute(func() (any, error) {
		return s.fetch(ctx, requestURL)
	})
	if err != nil {
		var apiErr *WeatherAPIError
		if errors.As(err, &apiErr) {
			return Conditions{}, err
		}
		if errors.Is(err, context.DeadlineExceeded) {
			return Conditions{}, &WeatherAPIError{Kind: WeatherErrTimeout, Err: err}
		}
		return Conditions{}, &WeatherAPIError{Kind: WeatherErrNetwork, Err: err}
	}
	return result.(Conditions), nil
}

func (s *OWMWeatherService) fetch(ctx context.Context, requestURL string) (Conditions, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return Conditions{}, &WeatherAPIError{Kind: WeatherErrNetwork, Err: err}
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return Conditions{}, &WeatherAPIError{Kind: WeatherErrTimeout, Err: err}
		}
		return Conditions{}, &WeatherAPIError{Kind: WeatherErrNetwork, Err: err}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
	case resp.StatusCode == http.StatusUnauthorized:
		return Conditions{}, &WeatherAPIError{Kind: WeatherErrUnauthorized, StatusCode: resp.StatusCode}
	case resp.StatusCode == http.StatusTooManyRequests:
		return Conditions{}, &WeatherAPIError{Kind: WeatherErrRateLimited, StatusCode: resp.StatusCode}
	default:
		return Conditions{}, &WeatherAPIError{Kind: WeatherErrServer, StatusCode: resp.StatusCode}
	}

	var payload owmCurrentResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return Conditions{}, &WeatherAPIError{Kind: WeatherErrDecode, Err: err}
	}

	conditions := Conditions{
		SourceAPI:       "OpenWeatherMap API",
		Timestamp:       time.Unix(payload.Dt, 0).UTC(),
		TemperatureF:    payload.Main.Temp,
		WindSpeedMph:    payload.Wind.Speed,
		PrecipitationMm: payload.Rain.OneHour + payload.Snow.OneHour,
	}
	if len(payload.Weather) > 0 {
		conditions.Condition = payload.Weather[0].Main
		conditions.Description = payload.Weather[0].Description
	}
	return conditions, nil
}

// owmCurrentResponse mirrors the OpenWeatherMap current-weather payload.
type owmCurrentResponse struct {
	Dt   int64 `json:"dt"`
	Main struct {
		Temp     float64 `json:"temp"`
		Humidity float64 `json:"humidity"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
	Rain struct {
		OneHour float64 `json:"1h"`
	} `json:"rain"`
	Snow struct {
		OneHour float64 `json:"1h"`
	} `json:"snow"`
	Weather []struct {
		Main        string `json:"main"`
		Description string `json:"description"`
	} `json:"weather"`
}

// SimulatedWeatherService is the no-credential fallback. It derives
// conditions deterministically from the coordinate so repeated lookups for
// the same point agree, which keeps demos and tests stable. It is a
// fixture, not a forecast.
type SimulatedWeatherService struct {
	logger *slog.Logger
}

func NewSimulatedWeatherService(logger *slog.Logger) *SimulatedWeatherService {
	return &SimulatedWeatherService{logger: logger}
}

var simulatedConditions = []struct {
	condition   string
	description string
}{
	{"Clear", "clear sky"},
	{"Clouds", "scattered clouds"},
	{"Rain", "light rain"},
	{"Drizzle", "light intensity drizzle"},
	{"Clouds", "overcast clouds"},
	{"Rain", "heavy rain"},
	{"Thunderstorm", "thunderstorm with rain"},
	{"Snow", "light snow"},
}

func (s *SimulatedWeatherService) CurrentAt(ctx context.Context, coord Coordinate) (Conditions, error) {
	if err := ctx.Err(); err != nil {
		return Conditions{}, err
	}

	// Hash the coordinate cell into the fixture table.
	seed := int64(math.Abs(coord.Latitude*1000)) + int64(math.Abs(coord.Longitude*1000))*7919
	pick := simulatedConditions[seed%int64(len(simulatedConditions))]

	return Conditions{
		SourceAPI:    "Simulated",
		Timestamp:    time.Now().UTC(),
		Condition:    pick.condition,
		Description:  pick.description,
		TemperatureF: 20 + float64(seed%60),
		WindSpeedMph: float64(seed % 25),
	}, nil
}
