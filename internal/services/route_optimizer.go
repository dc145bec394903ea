package services

import (
	"itinerary-planner-service/internal/domain"
	"sort"
)

// Walking-equivalent speed used to turn distance savings into time savings.
const walkingMetersPerMinute = 50.0

// Fixed bucket priority for the category clustering strategy; categories
// not listed fall into a trailing "other" bucket.
var clusterPriority = []string{"restaurant", "tourist_attraction", "museum", "shopping_mall"}

// OptimizeDay computes every candidate reordering for one day's stops.
// Fewer than 3 coordinate-bearing activities yields no candidates.
func OptimizeDay(activities []domain.Activity) []domain.OptimizedRoute {
	routes := make([]domain.OptimizedRoute, 0, 3)
	for _, strategy := range []string{
		domain.StrategyNearestNeighbor,
		domain.StrategyCategoryCluster,
		domain.StrategyTimeAware,
	} {
		if route, ok := OptimizeRoute(strategy, activities); ok {
			routes = append(routes, route)
		}
	}
	return routes
}

// OptimizeRoute computes one named reordering strategy over a snapshot of
// the day's activities. ok is false for unknown strategies or degenerate
// input (fewer than 3 stops with coordinates). The input list is never
// mutated; heuristics are deliberately greedy approximations, acceptable
// for day itineraries of at most a dozen or so stops.
func OptimizeRoute(strategy string, activities []domain.Activity) (domain.OptimizedRoute, bool) {
	stops := make([]domain.Activity, 0, len(activities))
	for _, a := range activities {
		if a.Deleted || a.Coords == nil {
			continue
		}
		stops = append(stops, a)
	}
	if len(stops) < 3 {
		return domain.OptimizedRoute{}, false
	}

	var order []int
	switch strategy {
	case domain.StrategyNearestNeighbor:
		order = nearestNeighborOrder(stops)
	case domain.StrategyCategoryCluster:
		order = categoryClusterOrder(stops)
	case domain.StrategyTimeAware:
		order = timeAwareOrder(stops)
	default:
		return domain.OptimizedRoute{}, false
	}

	originalOrder := make([]int, len(stops))
	for i := range stops {
		originalOrder[i] = i
	}

	originalDistance := pathDistanceMeters(stops, originalOrder)
	optimizedDistance := pathDistanceMeters(stops, order)

	saved := originalDistance - optimizedDistance
	gain := 0.0
	if originalDistance > 0 {
		gain = saved / originalDistance * 100
	}

	return domain.OptimizedRoute{
		Strategy:                strategy,
		OriginalOrder:           idsOf(stops, originalOrder),
		OptimizedOrder:          idsOf(stops, order),
		OriginalDistanceMeters:  originalDistance,
		OptimizedDistanceMeters: optimizedDistance,
		Savings: domain.RouteSavings{
			DistanceSavedMeters:   saved,
			TimeSavedMinutes:      saved / walkingMetersPerMinute,
			EfficiencyGainPercent: gain,
		},
	}, true
}

// Greedy nearest-neighbor TSP approximation: start from the first stop in
// original order and repeatedly append the closest unvisited stop. Strict
// < comparison means ties go to the earliest stop in input order.
func nearestNeighborOrder(stops []domain.Activity) []int {
	order := make([]int, 0, len(stops))
	visited := make([]bool, len(stops))

	current := 0
	order = append(order, current)
	visited[current] = true

	for len(order) < len(stops) {
		best := -1
		bestDistance := 0.0
		for i := range stops {
			if visited[i] {
				continue
			}
			d := domain.HaversineMeters(*stops[current].Coords, *stops[i].Coords)
			if best == -1 || d < bestDistance {
				best = i
				bestDistance = d
			}
		}

		order = append(order, best)
		visited[best] = true
		current = best
	}

	return order
}

// Bucket stops by primary category and concatenate buckets in fixed
// priority order; unknown categories trail as "other". Intra-bucket order
// is the original order.
func categoryClusterOrder(stops []domain.Activity) []int {
	buckets := make(map[string][]int)
	for i, a := range stops {
		key := "other"
		for _, c := range clusterPriority {
			if a.PrimaryCategory() == c {
				key = c
				break
			}
		}
		buckets[key] = append(buckets[key], i)
	}

	order := make([]int, 0, len(stops))
	for _, c := range clusterPriority {
		order = append(order, buckets[c]...)
	}
	order = append(order, buckets["other"]...)

	return order
}

// Meal stops first (stable among themselves), everything else ordered by
// the raw start-time string, matching how the stops read on the schedule.
func timeAwareOrder(stops []domain.Activity) []int {
	order := make([]int, len(stops))
	for i := range stops {
		order[i] = i
	}

	sort.SliceStable(order, func(x, y int) bool {
		a, b := stops[order[x]], stops[order[y]]
		aMeal := a.HasAnyCategory(mealCategories)
		bMeal := b.HasAnyCategory(mealCategories)
		if aMeal != bMeal {
			return aMeal
		}
		return a.StartTime < b.StartTime
	})

	return order
}

func pathDistanceMeters(stops []domain.Activity, order []int) float64 {
	total := 0.0
	for i := 0; i+1 < len(order); i++ {
		total += domain.HaversineMeters(*stops[order[i]].Coords, *stops[order[i+1]].Coords)
	}
	return total
}

func idsOf(stops []domain.Activity, order []int) []string {
	ids := make([]string, 0, len(order))
	for _, i := range order {
		ids = append(ids, stops[i].ID)
	}
	return ids
}

// ApplyRoute reorders activities to match a chosen route while preserving
// the original multiset of time slots: the sorted (start, end) pairs of the
// pre-optimization schedule are re-mapped positionally onto the new order.
// No new times are invented. Activities outside the route (deleted or
// without coordinates) keep their position after the reordered stops,
// untouched. The input is copied, never mutated.
func ApplyRoute(activities []domain.Activity, route domain.OptimizedRoute) []domain.Activity {
	byID := make(map[string]domain.Activity, len(activities))
	inRoute := make(map[string]bool, len(route.OptimizedOrder))
	for _, a := range activities {
		byID[a.ID] = a
	}
	for _, id := range route.OptimizedOrder {
		inRoute[id] = true
	}

	type slot struct {
		start string
		end   string
	}
	slots := make([]slot, 0, len(route.OriginalOrder))
	for _, id := range route.OriginalOrder {
		a, ok := byID[id]
		if !ok || !a.Timed() {
			continue
		}
		slots = append(slots, slot{start: a.StartTime, end: a.EndTime})
	}
	sort.Slice(slots, func(i, j int) bool {
		si, _ := domain.ParseClock(slots[i].start)
		sj, _ := domain.ParseClock(slots[j].start)
		return si < sj
	})

	out := make([]domain.Activity, 0, len(activities))
	for i, id := range route.OptimizedOrder {
		a, ok := byID[id]
		if !ok {
			continue
		}
		if i < len(slots) {
			a.StartTime = slots[i].start
			a.EndTime = slots[i].end
		}
		out = append(out, a)
	}

	for _, a := range activities {
		if !inRoute[a.ID] {
			out = append(out, a)
		}
	}

	return out
}
