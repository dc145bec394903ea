package services

import (
	"itinerary-planner-service/internal/domain"
	"testing"
)

func TestOptimizeRouteNearestNeighbor(t *testing.T) {
	// Four stops on a small square near the equator, visited in a zigzag.
	// The greedy walk recovers the perimeter order.
	activities := []domain.Activity{
		act("a", "09:00", "10:00", pt(0, 0)),
		act("c", "10:30", "11:30", pt(0.001, 0.001)),
		act("b", "12:00", "13:00", pt(0, 0.001)),
		act("d", "13:30", "14:30", pt(0.001, 0)),
	}

	route, ok := OptimizeRoute(domain.StrategyNearestNeighbor, activities)
	if !ok {
		t.Fatal("expected a route")
	}

	want := []string{"a", "b", "c", "d"}
	for i, id := range want {
		if route.OptimizedOrder[i] != id {
			t.Fatalf("optimized order mismatch: got %v, want %v", route.OptimizedOrder, want)
		}
	}

	if route.OptimizedDistanceMeters >= route.OriginalDistanceMeters {
		t.Errorf("expected shorter path: %f >= %f", route.OptimizedDistanceMeters, route.OriginalDistanceMeters)
	}
	if route.Savings.DistanceSavedMeters <= 0 {
		t.Errorf("expected positive distance savings, got %f", route.Savings.DistanceSavedMeters)
	}
	if route.Savings.TimeSavedMinutes <= 0 {
		t.Errorf("expected positive time savings, got %f", route.Savings.TimeSavedMinutes)
	}
}

func TestOptimizeRouteCategoryCluster(t *testing.T) {
	museum := act("m1", "09:00", "10:00", pt(0, 0))
	museum.Categories = []string{"museum"}
	eatery := act("r1", "12:00", "13:00", pt(0, 0.001))
	eatery.Categories = []string{"restaurant"}
	park := act("x1", "14:00", "15:00", pt(0.001, 0))
	park.Categories = []string{"park"}
	mall := act("s1", "16:00", "17:00", pt(0.001, 0.001))
	mall.Categories = []string{"shopping_mall"}

	route, ok := OptimizeRoute(domain.StrategyCategoryCluster, []domain.Activity{museum, eatery, park, mall})
	if !ok {
		t.Fatal("expected a route")
	}

	want := []string{"r1", "m1", "s1", "x1"}
	for i, id := range want {
		if route.OptimizedOrder[i] != id {
			t.Fatalf("cluster order mismatch: got %v, want %v", route.OptimizedOrder, want)
		}
	}
}

func TestOptimizeRouteTimeAwarePutsMealsFirst(t *testing.T) {
	lunch := act("lunch", "12:00", "13:00", pt(0, 0))
	lunch.Categories = []string{"restaurant"}

	route, ok := OptimizeRoute(domain.StrategyTimeAware, []domain.Activity{
		act("early", "09:00", "10:00", pt(0, 0.001)),
		lunch,
		act("late", "15:00", "16:00", pt(0.001, 0)),
	})
	if !ok {
		t.Fatal("expected a route")
	}

	want := []string{"lunch", "early", "late"}
	for i, id := range want {
		if route.OptimizedOrder[i] != id {
			t.Fatalf("time-aware order mismatch: got %v, want %v", route.OptimizedOrder, want)
		}
	}
}

func TestOptimizeRouteNeedsThreeLocatedStops(t *testing.T) {
	activities := []domain.Activity{
		act("a", "09:00", "10:00", pt(0, 0)),
		act("b", "10:30", "11:30", pt(0, 0.001)),
		act("unlocated", "12:00", "13:00", nil),
	}

	if _, ok := OptimizeRoute(domain.StrategyNearestNeighbor, activities); ok {
		t.Error("two located stops must not produce a route")
	}
}

func TestOptimizeRouteUnknownStrategy(t *testing.T) {
	activities := []domain.Activity{
		act("a", "09:00", "10:00", pt(0, 0)),
		act("b", "10:30", "11:30", pt(0, 0.001)),
		act("c", "12:00", "13:00", pt(0.001, 0)),
	}

	if _, ok := OptimizeRoute("annealing", activities); ok {
		t.Error("unknown strategy must not produce a route")
	}
}

func TestOptimizeDayProducesAllStrategies(t *testing.T) {
	activities := []domain.Activity{
		act("a", "09:00", "10:00", pt(0, 0)),
		act("b", "10:30", "11:30", pt(0, 0.001)),
		act("c", "12:00", "13:00", pt(0.001, 0)),
	}

	routes := OptimizeDay(activities)
	if len(routes) != 3 {
		t.Fatalf("expected 3 candidate routes, got %d", len(routes))
	}

	seen := map[string]bool{}
	for _, r := range routes {
		seen[r.Strategy] = true
	}
	for _, s := range []string{domain.StrategyNearestNeighbor, domain.StrategyCategoryCluster, domain.StrategyTimeAware} {
		if !seen[s] {
			t.Errorf("missing strategy %q", s)
		}
	}
}

func TestApplyRouteRemapsTimeSlots(t *testing.T) {
	activities := []domain.Activity{
		act("a", "09:00", "10:00", pt(0, 0)),
		act("b", "10:30", "11:30", pt(0, 0.001)),
		act("c", "12:00", "13:00", pt(0.001, 0)),
	}

	route := domain.OptimizedRoute{
		Strategy:       domain.StrategyNearestNeighbor,
		OriginalOrder:  []string{"a", "b", "c"},
		OptimizedOrder: []string{"c", "a", "b"},
	}

	applied := ApplyRoute(activities, route)
	if len(applied) != 3 {
		t.Fatalf("expected 3 activities, got %d", len(applied))
	}

	// The sorted slot multiset lands positionally on the new order.
	checks := []struct {
		id    string
		start string
		end   string
	}{
		{"c", "09:00", "10:00"},
		{"a", "10:30", "11:30"},
		{"b", "12:00", "13:00"},
	}
	for i, want := range checks {
		got := applied[i]
		if got.ID != want.id || got.StartTime != want.start || got.EndTime != want.end {
			t.Errorf("position %d: got %s %s-%s, want %s %s-%s",
				i, got.ID, got.StartTime, got.EndTime, want.id, want.start, want.end)
		}
	}
}

func TestApplyRouteKeepsNonRouteActivities(t *testing.T) {
	activities := []domain.Activity{
		act("a", "09:00", "10:00", pt(0, 0)),
		act("b", "10:30", "11:30", pt(0, 0.001)),
		act("c", "12:00", "13:00", pt(0.001, 0)),
		act("note", "", "", nil),
	}

	route := domain.OptimizedRoute{
		OriginalOrder:  []string{"a", "b", "c"},
		OptimizedOrder: []string{"b", "c", "a"},
	}

	applied := ApplyRoute(activities, route)
	if len(applied) != 4 {
		t.Fatalf("expected 4 activities, got %d", len(applied))
	}
	last := applied[3]
	if last.ID != "note" || last.StartTime != "" {
		t.Errorf("non-route activity must trail untouched, got %+v", last)
	}

	// The input slice itself is a snapshot.
	if activities[0].StartTime != "09:00" {
		t.Errorf("input mutated: %+v", activities[0])
	}
}
