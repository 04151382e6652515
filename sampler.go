package main

import (
	"fmt"
	"math"
)

// This file implements the route sampler: it walks a route polyline and
// emits coordinates at fixed distance intervals so each one can be checked
// for weather. Segment distances use the haversine formula, the same
// metric used for the polyline's total length, which keeps sample spacing
// consistent with the reported route distance.

const earthRadiusMeters = 6371000.0

// defaultSampleIntervalMeters is roughly 30 miles between weather checks.
const defaultSampleIntervalMeters = 48000.0

// haversineMeters returns the great-circle distance between two
// coordinates.
func haversineMeters(a, b Coordinate) float64 {
	lat1 := a.Latitude * math.Pi / 180
	lat2 := b.Latitude * math.Pi / 180
	dLat := (b.Latitude - a.Latitude) * math.Pi / 180
	dLon := (b.Longitude - a.Longitude) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	return 2 * earthRadiusMeters * math.Asin(math.Sqrt(h))
}

// polylineLengthMeters sums the haversine lengths of all segments.
func polylineLengthMeters(p Polyline) float64 {
	var total float64
	for i := 1; i < len(p); i++ {
		total += haversineMeters(p[i-1], p[i])
	}
	return total
}

// interpolate returns the coordinate at fraction t (0..1) along the
// segment from a to b. Linear interpolation of latitude and longitude is
// a flat approximation; routing polylines have short segments, so the
// error is negligible for weather sampling, but it is not geodesically
// exact.
func interpolate(a, b Coordinate, t float64) Coordinate {
	return Coordinate{
		Latitude:  a.Latitude + (b.Latitude-a.Latitude)*t,
		Longitude: a.Longitude + (b.Longitude-a.Longitude)*t,
	}
}

// SampleRoute walks the polyline and returns the start vertex, one point
// for every multiple of intervalMeters strictly below the total distance,
// and the end vertex. Start and end are always the exact polyline
// endpoints even when they do not fall on an interval boundary, so the
// final gap may be shorter than the interval. A polyline shorter than one
// interval yields exactly [start, end].
func SampleRoute(p Polyline, intervalMeters float64) ([]RoutePoint, error) {
	if len(p) < 2 {
		return nil, fmt.Errorf("%w: polyline must have at least 2 vertices, got %d", ErrInvalidInput, len(p))
	}
	if intervalMeters <= 0 {
		return nil, fmt.Errorf("%w: sampling interval must be positive, got %f", ErrInvalidInput, intervalMeters)
	}

	segLengths := make([]float64, len(p)-1)
	var total float64
	for i := 1; i < len(p); i++ {
		segLengths[i-1] = haversineMeters(p[i-1], p[i])
		total += segLengths[i-1]
	}

	points := []RoutePoint{{Coordinate: p[0], DistanceMeters: 0}}

	seg := 0
	distBefore := 0.0
	// The sub-micrometer tolerance keeps a route whose length is an exact
	// interval multiple from emitting a duplicate of the end vertex.
	for target := intervalMeters; target < total-1e-6; target += intervalMeters {
		// Segments are scanned in order; the cursor never moves backwards
		// because targets are strictly increasing.
		for seg < len(segLengths) && distBefore+segLengths[seg] < target {
			distBefore += segLengths[seg]
			seg++
		}
		if seg >= len(segLengths) {
			break
		}
		t := (target - distBefore) / segLengths[seg]
		points = append(points, RoutePoint{
			Coordinate:     interpolate(p[seg], p[seg+1], t),
			DistanceMeters: target,
		})
	}

	points = append(points, RoutePoint{Coordinate: p[len(p)-1], DistanceMeters: total})
	return points, nil
}
