package domain

import "testing"

func TestSegmentKeyStableUnderJitter(t *testing.T) {
	origin := Coordinates{Lat: 48.858370, Lng: 2.294480}
	dest := Coordinates{Lat: 48.860600, Lng: 2.337600}

	// Jitter well below the 5-decimal rounding must not change the key.
	jittered := Coordinates{Lat: 48.8583700004, Lng: 2.2944799996}

	k1 := SegmentKey("a", "b", origin, dest)
	k2 := SegmentKey("a", "b", jittered, dest)
	if k1 != k2 {
		t.Fatalf("keys differ under sub-meter jitter:\n%s\n%s", k1, k2)
	}

	if k1 != "a->b:48.85837,2.29448|48.8606,2.3376" {
		t.Fatalf("unexpected key format: %s", k1)
	}
}

func TestSegmentKeySensitiveToLocation(t *testing.T) {
	origin := Coordinates{Lat: 48.85837, Lng: 2.29448}
	dest := Coordinates{Lat: 48.8606, Lng: 2.3376}
	moved := Coordinates{Lat: 48.8607, Lng: 2.3376}

	if SegmentKey("a", "b", origin, dest) == SegmentKey("a", "b", origin, moved) {
		t.Fatal("keys collide for genuinely different destinations")
	}
}
