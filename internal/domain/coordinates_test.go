package domain

import (
	"math"
	"testing"
)

func TestHaversineOneDegreeAtEquator(t *testing.T) {
	// One degree of longitude at the equator is roughly 111.32 km.
	got := HaversineMeters(Coordinates{Lat: 0, Lng: 0}, Coordinates{Lat: 0, Lng: 1})

	const want = 111320.0
	if math.Abs(got-want) > want*0.01 {
		t.Fatalf("HaversineMeters = %.0f, want %.0f +/- 1%%", got, want)
	}
}

func TestHaversineZeroDistance(t *testing.T) {
	p := Coordinates{Lat: 48.8584, Lng: 2.2945}
	if got := HaversineMeters(p, p); got != 0 {
		t.Fatalf("HaversineMeters(p, p) = %f, want 0", got)
	}
}

func TestHaversineSymmetry(t *testing.T) {
	a := Coordinates{Lat: 48.8584, Lng: 2.2945}
	b := Coordinates{Lat: 48.8606, Lng: 2.3376}

	ab := HaversineMeters(a, b)
	ba := HaversineMeters(b, a)
	if math.Abs(ab-ba) > 1e-6 {
		t.Fatalf("distance not symmetric: %f vs %f", ab, ba)
	}
}
