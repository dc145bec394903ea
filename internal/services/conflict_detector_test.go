package services

import (
	"itinerary-planner-service/internal/domain"
	"testing"
)

func TestDetectConflictsBoundaryTouchIsNotOverlap(t *testing.T) {
	activities := []domain.Activity{
		act("a", "09:00", "10:00", nil),
		act("b", "10:00", "11:00", nil),
	}

	conflicts := DetectConflicts(activities, nil)
	if len(conflicts) != 0 {
		t.Fatalf("expected no conflicts, got %d: %+v", len(conflicts), conflicts)
	}
}

func TestDetectConflictsOverlap(t *testing.T) {
	activities := []domain.Activity{
		act("a", "09:00", "10:30", nil),
		act("b", "10:00", "11:00", nil),
	}

	conflicts := DetectConflicts(activities, nil)
	if len(conflicts) != 1 {
		t.Fatalf("expected 1 conflict, got %d: %+v", len(conflicts), conflicts)
	}

	c := conflicts[0]
	if c.Kind != domain.ConflictOverlap {
		t.Fatalf("expected overlap conflict, got %q", c.Kind)
	}
	if c.Severity != domain.SeverityError {
		t.Errorf("overlaps are always errors, got %q", c.Severity)
	}
	if len(c.Resolutions) != 2 {
		t.Fatalf("expected 2 resolutions, got %d", len(c.Resolutions))
	}
	if c.Resolutions[0].NewEnd != "10:00:00" {
		t.Errorf("expected clip to 10:00:00, got %q", c.Resolutions[0].NewEnd)
	}
	if c.Resolutions[1].NewStart != "10:30:00" {
		t.Errorf("expected push to 10:30:00, got %q", c.Resolutions[1].NewStart)
	}
}

func TestDetectConflictsInsufficientTravelWarning(t *testing.T) {
	a := act("a", "09:00", "09:30", pt(48.8606, 2.3376))
	b := act("b", "10:00", "11:00", pt(48.8584, 2.2945))

	key := domain.SegmentKey("a", "b", *a.Coords, *b.Coords)
	travel := map[string]*domain.TravelTimeResult{
		// 40 minutes needed against a 30-minute gap: 10-minute shortfall.
		key: {DurationSeconds: 2400, Mode: domain.ModeDriving},
	}

	conflicts := DetectConflicts([]domain.Activity{a, b}, travel)
	if len(conflicts) != 1 {
		t.Fatalf("expected 1 conflict, got %d: %+v", len(conflicts), conflicts)
	}

	c := conflicts[0]
	if c.Kind != domain.ConflictInsufficientTravel {
		t.Fatalf("expected insufficient_travel, got %q", c.Kind)
	}
	if c.Severity != domain.SeverityWarning {
		t.Errorf("10-minute shortfall should stay a warning, got %q", c.Severity)
	}

	// Resolutions shift by shortfall plus the 5-minute margin.
	if c.Resolutions[0].NewEnd != "09:15:00" {
		t.Errorf("expected earlier end 09:15:00, got %q", c.Resolutions[0].NewEnd)
	}
	if c.Resolutions[1].NewStart != "10:15:00" {
		t.Errorf("expected later start 10:15:00, got %q", c.Resolutions[1].NewStart)
	}
}

func TestDetectConflictsInsufficientTravelError(t *testing.T) {
	a := act("a", "09:00", "09:30", pt(48.8606, 2.3376))
	b := act("b", "10:00", "11:00", pt(48.8584, 2.2945))

	key := domain.SegmentKey("a", "b", *a.Coords, *b.Coords)
	travel := map[string]*domain.TravelTimeResult{
		// 60 minutes needed: 30-minute shortfall crosses the error threshold.
		key: {DurationSeconds: 3600, Mode: domain.ModeDriving},
	}

	conflicts := DetectConflicts([]domain.Activity{a, b}, travel)
	if len(conflicts) != 1 {
		t.Fatalf("expected 1 conflict, got %d", len(conflicts))
	}
	if conflicts[0].Severity != domain.SeverityError {
		t.Errorf("expected error severity, got %q", conflicts[0].Severity)
	}
}

func TestDetectConflictsUnknownTravelTimeSkipsCheck(t *testing.T) {
	a := act("a", "09:00", "09:30", pt(48.8606, 2.3376))
	b := act("b", "09:35", "11:00", pt(48.8584, 2.2945))

	key := domain.SegmentKey("a", "b", *a.Coords, *b.Coords)
	travel := map[string]*domain.TravelTimeResult{key: nil}

	conflicts := DetectConflicts([]domain.Activity{a, b}, travel)
	if len(conflicts) != 0 {
		t.Fatalf("nil travel result must suppress the check, got %+v", conflicts)
	}
}

func TestDetectConflictsBlockedMealWindow(t *testing.T) {
	long := act("conference", "11:00", "15:00", nil)

	conflicts := DetectConflicts([]domain.Activity{long}, nil)
	if len(conflicts) != 1 {
		t.Fatalf("expected 1 conflict, got %d: %+v", len(conflicts), conflicts)
	}
	if conflicts[0].Kind != domain.ConflictMealTiming {
		t.Fatalf("expected meal_timing, got %q", conflicts[0].Kind)
	}
	if conflicts[0].Severity != domain.SeverityWarning {
		t.Errorf("meal conflicts are warnings, got %q", conflicts[0].Severity)
	}
}

func TestDetectConflictsMealWindowSatisfiedByOverlap(t *testing.T) {
	long := act("conference", "11:00", "15:00", nil)
	lunch := act("lunch", "12:00", "12:30", nil)
	lunch.Categories = []string{"cafe"}

	// The cafe overlaps the lunch window even though the conference covers
	// it, so the window is not blocked.
	conflicts := DetectConflicts([]domain.Activity{long, lunch}, nil)
	for _, c := range conflicts {
		if c.Kind == domain.ConflictMealTiming {
			t.Fatalf("unexpected meal conflict: %+v", c)
		}
	}
}

func TestDetectConflictsClosedVenueBeforeOpening(t *testing.T) {
	early := act("orsay", "08:00", "09:30", nil)
	early.Categories = []string{"museum"}

	conflicts := DetectConflicts([]domain.Activity{early}, nil)
	if len(conflicts) != 1 {
		t.Fatalf("expected 1 conflict, got %d: %+v", len(conflicts), conflicts)
	}

	c := conflicts[0]
	if c.Kind != domain.ConflictClosedVenue {
		t.Fatalf("expected closed_venue, got %q", c.Kind)
	}
	if len(c.Resolutions) != 1 || c.Resolutions[0].NewStart != "09:00:00" {
		t.Errorf("expected move-to-opening resolution at 09:00:00, got %+v", c.Resolutions)
	}
}

func TestDetectConflictsBarOpenPastMidnight(t *testing.T) {
	evening := act("cocktails", "18:00", "19:30", nil)
	evening.Categories = []string{"bar"}
	afternoon := act("early drinks", "15:00", "16:00", nil)
	afternoon.Categories = []string{"bar"}

	conflicts := DetectConflicts([]domain.Activity{afternoon, evening}, nil)
	if len(conflicts) != 1 {
		t.Fatalf("expected 1 conflict, got %d: %+v", len(conflicts), conflicts)
	}
	if conflicts[0].ActivityIDs[0] != "early drinks" {
		t.Errorf("expected the afternoon visit flagged, got %v", conflicts[0].ActivityIDs)
	}
}

func TestDetectConflictsBankClosedOnSaturday(t *testing.T) {
	bank := act("exchange money", "10:00", "10:30", nil)
	bank.Categories = []string{"bank"}
	bank.Date = "2026-01-03" // a Saturday

	conflicts := DetectConflicts([]domain.Activity{bank}, nil)
	if len(conflicts) != 1 {
		t.Fatalf("expected 1 conflict, got %d: %+v", len(conflicts), conflicts)
	}
	if conflicts[0].Kind != domain.ConflictClosedVenue {
		t.Fatalf("expected closed_venue, got %q", conflicts[0].Kind)
	}
}

func TestDetectConflictsOneVenueConflictPerActivity(t *testing.T) {
	early := act("combo", "08:00", "09:00", nil)
	early.Categories = []string{"museum", "bank"}
	early.Date = "2026-01-03"

	// Both categories would flag, but only the first match is checked.
	conflicts := DetectConflicts([]domain.Activity{early}, nil)
	if len(conflicts) != 1 {
		t.Fatalf("expected 1 conflict, got %d: %+v", len(conflicts), conflicts)
	}
}
