package services

import (
	"itinerary-planner-service/internal/domain"
	"testing"
)

func TestFindFreeTimeEmptyDay(t *testing.T) {
	gaps := FindFreeTime(nil)
	if len(gaps) != 1 {
		t.Fatalf("expected 1 gap, got %d", len(gaps))
	}

	g := gaps[0]
	if g.StartTime != "06:00:00" || g.EndTime != "23:00:00" {
		t.Errorf("expected the full waking window, got %s-%s", g.StartTime, g.EndTime)
	}
	if g.DurationMinutes != 1020 {
		t.Errorf("expected 1020 minutes, got %d", g.DurationMinutes)
	}
	if g.Category != domain.GapLong {
		t.Errorf("expected long gap, got %q", g.Category)
	}
	if !g.MealOverlap {
		t.Error("the full day intersects every meal window")
	}
	if len(g.Suggestions) == 0 || len(g.Suggestions) > 4 {
		t.Errorf("expected 1-4 suggestions, got %d", len(g.Suggestions))
	}
}

func TestFindFreeTimeAroundOneActivity(t *testing.T) {
	gaps := FindFreeTime([]domain.Activity{
		act("museum", "10:00", "12:00", nil),
	})
	if len(gaps) != 2 {
		t.Fatalf("expected 2 gaps, got %d: %+v", len(gaps), gaps)
	}

	if gaps[0].StartTime != "06:00:00" || gaps[0].EndTime != "10:00:00" {
		t.Errorf("morning gap: got %s-%s", gaps[0].StartTime, gaps[0].EndTime)
	}
	if gaps[0].DurationMinutes != 240 {
		t.Errorf("morning gap: expected 240 minutes, got %d", gaps[0].DurationMinutes)
	}
	if gaps[1].StartTime != "12:00:00" || gaps[1].EndTime != "23:00:00" {
		t.Errorf("evening gap: got %s-%s", gaps[1].StartTime, gaps[1].EndTime)
	}
}

func TestFindFreeTimeDropsShortGaps(t *testing.T) {
	gaps := FindFreeTime([]domain.Activity{
		act("a", "09:00", "10:00", nil),
		act("b", "10:10", "22:50", nil),
	})

	// The 10-minute mid-day and tail gaps fall below the threshold.
	if len(gaps) != 1 {
		t.Fatalf("expected only the morning gap, got %d: %+v", len(gaps), gaps)
	}
	if gaps[0].EndTime != "09:00:00" {
		t.Errorf("expected gap ending 09:00:00, got %s", gaps[0].EndTime)
	}
}

func TestFindFreeTimeGapCategories(t *testing.T) {
	gaps := FindFreeTime([]domain.Activity{
		act("a", "06:20", "09:00", nil),
		act("b", "10:00", "22:40", nil),
	})
	if len(gaps) != 3 {
		t.Fatalf("expected 3 gaps, got %d: %+v", len(gaps), gaps)
	}

	if gaps[0].Category != domain.GapShort {
		t.Errorf("20-minute gap: expected short, got %q", gaps[0].Category)
	}
	if gaps[1].Category != domain.GapMedium {
		t.Errorf("60-minute gap: expected medium, got %q", gaps[1].Category)
	}
	if gaps[2].Category != domain.GapShort {
		t.Errorf("tail gap: expected short, got %q", gaps[2].Category)
	}
}

func TestFindFreeTimeSuggestionsFitTheGap(t *testing.T) {
	gaps := FindFreeTime([]domain.Activity{
		act("first", "06:20", "23:00", nil),
	})
	if len(gaps) != 1 {
		t.Fatalf("expected 1 gap, got %d", len(gaps))
	}

	g := gaps[0]
	for _, s := range g.Suggestions {
		if s.DurationMinutes > g.DurationMinutes {
			t.Errorf("suggestion %q exceeds the gap: %d > %d", s.Text, s.DurationMinutes, g.DurationMinutes)
		}
	}
}

func TestFindFreeTimeSuggestionsRankedByPriority(t *testing.T) {
	gaps := FindFreeTime(nil)
	rank := map[domain.Priority]int{
		domain.PriorityHigh:   0,
		domain.PriorityMedium: 1,
		domain.PriorityLow:    2,
	}

	suggestions := gaps[0].Suggestions
	for i := 1; i < len(suggestions); i++ {
		if rank[suggestions[i-1].Priority] > rank[suggestions[i].Priority] {
			t.Fatalf("suggestions out of priority order: %+v", suggestions)
		}
	}
}
