package main

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// This file defines the Prometheus metrics that are exposed by the application.

// httpRequestsTotal is a Prometheus counter vector that tracks the total number of HTTP requests.
// It is partitioned by the request's URL path, HTTP method, and the resulting status code.
var httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "routecast_http_requests_total",
	Help: "Total number of HTTP requests by path, method and code.",
}, []string{"path", "method", "code"})

// weatherFetchErrorsTotal counts failed upstream weather lookups, partitioned
// by failure kind (unauthorized, rate_limited, server, network, decode, timeout).
var weatherFetchErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "routecast_weather_fetch_errors_total",
	Help: "Total number of failed weather fetches by error kind.",
}, []string{"kind"})

// hazardsFlaggedTotal counts sampled route points that were classified as hazardous.
var hazardsFlaggedTotal = promauto.NewCounter(prometheus.CounterOpts{
	Name: "routecast_hazards_flagged_total",
	Help: "Total number of route points flagged as weather hazards.",
})
