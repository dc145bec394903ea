package services

import (
	"itinerary-planner-service/internal/domain"
	"testing"
)

// Shared fixture helpers for the services tests.
func pt(lat, lng float64) *domain.Coordinates {
	return &domain.Coordinates{Lat: lat, Lng: lng}
}

func act(id, start, end string, coords *domain.Coordinates) domain.Activity {
	return domain.Activity{ID: id, Name: id, StartTime: start, EndTime: end, Coords: coords}
}

func TestBuildDaySegmentsPairsConsecutiveStops(t *testing.T) {
	activities := []domain.Activity{
		act("louvre", "09:00", "11:00", pt(48.8606, 2.3376)),
		act("eiffel", "11:30", "13:00", pt(48.8584, 2.2945)),
	}

	segments := BuildDaySegments(0, activities)
	if len(segments) != 1 {
		t.Fatalf("expected 1 segment, got %d", len(segments))
	}

	s := segments[0]
	if s.FromID != "louvre" || s.ToID != "eiffel" {
		t.Errorf("unexpected pair: %s -> %s", s.FromID, s.ToID)
	}
	if s.Mode != domain.ModeDriving {
		t.Errorf("expected driving fallback mode, got %q", s.Mode)
	}
	if s.FromEndMinutes != 660 {
		t.Errorf("expected FromEndMinutes 660, got %d", s.FromEndMinutes)
	}
	if s.GapMinutes != 30 {
		t.Errorf("expected GapMinutes 30, got %d", s.GapMinutes)
	}

	want := domain.SegmentKey("louvre", "eiffel", *activities[0].Coords, *activities[1].Coords)
	if s.Key != want {
		t.Errorf("key mismatch:\n got %q\nwant %q", s.Key, want)
	}
}

func TestBuildDaySegmentsSortsByStartTime(t *testing.T) {
	activities := []domain.Activity{
		act("late", "14:00", "15:00", pt(48.86, 2.34)),
		act("early", "09:00", "10:00", pt(48.85, 2.29)),
	}

	segments := BuildDaySegments(0, activities)
	if len(segments) != 1 {
		t.Fatalf("expected 1 segment, got %d", len(segments))
	}
	if segments[0].FromID != "early" || segments[0].ToID != "late" {
		t.Errorf("expected early -> late, got %s -> %s", segments[0].FromID, segments[0].ToID)
	}
}

func TestBuildDaySegmentsSkipsUnusableActivities(t *testing.T) {
	deleted := act("gone", "10:30", "11:00", pt(48.86, 2.34))
	deleted.Deleted = true

	activities := []domain.Activity{
		act("a", "09:00", "10:00", pt(48.85, 2.29)),
		act("unlocated", "10:00", "10:30", nil),
		deleted,
		act("untimed", "", "", pt(48.87, 2.35)),
		act("b", "11:00", "12:00", pt(48.86, 2.33)),
	}

	segments := BuildDaySegments(0, activities)

	// unlocated sits between a and b, so neither adjacent pair has
	// coordinates on both ends.
	if len(segments) != 0 {
		t.Fatalf("expected no segments, got %d", len(segments))
	}
}

func TestBuildDaySegmentsUsesPreferredMode(t *testing.T) {
	walker := act("a", "09:00", "10:00", pt(48.85, 2.29))
	walker.TravelMode = domain.ModeWalking

	segments := BuildDaySegments(0, []domain.Activity{
		walker,
		act("b", "10:30", "11:30", pt(48.86, 2.33)),
	})
	if len(segments) != 1 {
		t.Fatalf("expected 1 segment, got %d", len(segments))
	}
	if segments[0].Mode != domain.ModeWalking {
		t.Errorf("expected walking mode from departing stop, got %q", segments[0].Mode)
	}
}
