package main

import (
	"errors"
	"math"
	"testing"
)

// metersToLatDegrees converts a north-south distance to degrees of latitude.
// Along a meridian the haversine distance is exactly R * delta-phi, so
// polylines built this way have known segment lengths.
func metersToLatDegrees(meters float64) float64 {
	return meters / earthRadiusMeters * 180 / math.Pi
}

// meridianPolyline builds a polyline running due north from the equator
// with vertices at the given cumulative distances in meters.
func meridianPolyline(distances ...float64) Polyline {
	p := make(Polyline, len(distances))
	for i, d := range distances {
		p[i] = Coordinate{Latitude: metersToLatDegrees(d), Longitude: 0}
	}
	return p
}

func TestSampleRoute(t *testing.T) {
	p := meridianPolyline(0, 30000, 70000, 100000)

	points, err := SampleRoute(p, 48000)
	if err != nil {
		t.Fatalf("SampleRoute() returned an unexpected error: %v", err)
	}

	if len(points) != 4 {
		t.Fatalf("Expected 4 points, got %d", len(points))
	}

	wantDistances := []float64{0, 48000, 96000, 100000}
	for i, want := range wantDistances {
		if math.Abs(points[i].DistanceMeters-want) > 1 {
			t.Errorf("Point %d: expected distance %.0f, got %.2f", i, want, points[i].DistanceMeters)
		}
	}

	// Start and end must be the exact polyline endpoints.
	if points[0].Coordinate != p[0] {
		t.Errorf("Expected start point %+v, got %+v", p[0], points[0].Coordinate)
	}
	if points[3].Coordinate != p[len(p)-1] {
		t.Errorf("Expected end point %+v, got %+v", p[len(p)-1], points[3].Coordinate)
	}

	// Interpolated points must sit at the right latitude along the meridian.
	for _, i := range []int{1, 2} {
		wantLat := metersToLatDegrees(wantDistances[i])
		if math.Abs(points[i].Coordinate.Latitude-wantLat) > 1e-9 {
			t.Errorf("Point %d: expected latitude %.9f, got %.9f", i, wantLat, points[i].Coordinate.Latitude)
		}
		if points[i].Coordinate.Longitude != 0 {
			t.Errorf("Point %d: expected longitude 0, got %f", i, points[i].Coordinate.Longitude)
		}
	}
}

func TestSampleRoute_ShorterThanInterval(t *testing.T) {
	p := meridianPolyline(0, 20000)

	points, err := SampleRoute(p, 48000)
	if err != nil {
		t.Fatalf("SampleRoute() returned an unexpected error: %v", err)
	}

	if len(points) != 2 {
		t.Fatalf("Expected 2 points for a route shorter than one interval, got %d", len(points))
	}
	if points[0].DistanceMeters != 0 {
		t.Errorf("Expected start distance 0, got %f", points[0].DistanceMeters)
	}
	if math.Abs(points[1].DistanceMeters-20000) > 1 {
		t.Errorf("Expected end distance 20000, got %f", points[1].DistanceMeters)
	}
}

func TestSampleRoute_EndOnIntervalBoundary(t *testing.T) {
	p := meridianPolyline(0, 96000)

	points, err := SampleRoute(p, 48000)
	if err != nil {
		t.Fatalf("SampleRoute() returned an unexpected error: %v", err)
	}

	// The end vertex covers the final boundary; it must not be duplicated.
	if len(points) != 3 {
		t.Fatalf("Expected 3 points, got %d", len(points))
	}
	if math.Abs(points[2].DistanceMeters-96000) > 1 {
		t.Errorf("Expected end distance 96000, got %f", points[2].DistanceMeters)
	}
}

func TestSampleRoute_DistancesStrictlyIncreasing(t *testing.T) {
	p := meridianPolyline(0, 15000, 16000, 55000, 90000, 137000)

	points, err := SampleRoute(p, 25000)
	if err != nil {
		t.Fatalf("SampleRoute() returned an unexpected error: %v", err)
	}

	for i := 1; i < len(points); i++ {
		if points[i].DistanceMeters <= points[i-1].DistanceMeters {
			t.Errorf("Distances not strictly increasing at index %d: %f then %f",
				i, points[i-1].DistanceMeters, points[i].DistanceMeters)
		}
	}
}

func TestSampleRoute_InvalidInput(t *testing.T) {
	if _, err := SampleRoute(meridianPolyline(0), 48000); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Expected ErrInvalidInput for a single-vertex polyline, got %v", err)
	}
	if _, err := SampleRoute(Polyline{}, 48000); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Expected ErrInvalidInput for an empty polyline, got %v", err)
	}
	if _, err := SampleRoute(meridianPolyline(0, 10000), 0); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Expected ErrInvalidInput for a zero interval, got %v", err)
	}
	if _, err := SampleRoute(meridianPolyline(0, 10000), -100); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Expected ErrInvalidInput for a negative interval, got %v", err)
	}
}

func TestHaversineMeters(t *testing.T) {
	// One degree of latitude along a meridian.
	a := Coordinate{Latitude: 0, Longitude: 0}
	b := Coordinate{Latitude: 1, Longitude: 0}

	want := earthRadiusMeters * math.Pi / 180
	got := haversineMeters(a, b)
	if math.Abs(got-want) > 0.01 {
		t.Errorf("Expected %.2f meters, got %.2f", want, got)
	}

	if d := haversineMeters(a, a); d != 0 {
		t.Errorf("Expected zero distance for identical coordinates, got %f", d)
	}
}
