package services

import (
	"fmt"
	"itinerary-planner-service/internal/domain"
	"time"
)

const (
	// Shortfall beyond which an insufficient-travel conflict escalates from
	// warning to error.
	travelErrorThresholdMinutes = 15
	// Safety margin added on top of the shortfall by proposed resolutions.
	travelSafetyMarginMinutes = 5
)

type mealWindow struct {
	name  string
	start int
	end   int
}

var mealWindows = []mealWindow{
	{"breakfast", 7 * 60, 10 * 60},
	{"lunch", 11*60 + 30, 14*60 + 30},
	{"dinner", 17*60 + 30, 21 * 60},
}

// Categories that count as eating a meal.
var mealCategories = map[string]struct{}{
	"restaurant":    {},
	"cafe":          {},
	"food":          {},
	"bakery":        {},
	"meal_takeaway": {},
}

type venueHours struct {
	category string
	open     int
	close    int // smaller than open when the venue closes past midnight
	weekdays map[time.Weekday]struct{} // nil means open every day
}

var venueHoursTable = []venueHours{
	{"museum", 9 * 60, 17 * 60, nil},
	{"tourist_attraction", 8 * 60, 18 * 60, nil},
	{"shopping_mall", 10 * 60, 22 * 60, nil},
	{"restaurant", 11 * 60, 22 * 60, nil},
	{"bar", 17 * 60, 2 * 60, nil},
	{"bank", 9 * 60, 17 * 60, map[time.Weekday]struct{}{
		time.Monday: {}, time.Tuesday: {}, time.Wednesday: {},
		time.Thursday: {}, time.Friday: {},
	}},
	{"post_office", 9 * 60, 17 * 60, map[time.Weekday]struct{}{
		time.Monday: {}, time.Tuesday: {}, time.Wednesday: {},
		time.Thursday: {}, time.Friday: {}, time.Saturday: {},
	}},
}

// DetectConflicts sweeps one day's activities for scheduling problems:
// overlapping pairs, insufficient travel time between stops, blocked meal
// windows and venues visited outside their opening hours.
//
// travel maps segment keys (see domain.SegmentKey) to the resolved result
// for the segment's preferred mode; nil or absent entries mean the travel
// time is unknown and the travel check is skipped for that pair.
//
// Activities with absent or malformed times or coordinates are excluded
// from the checks that need them; detection degrades gracefully and never
// fails. The input is treated as a snapshot and never mutated.
func DetectConflicts(activities []domain.Activity, travel map[string]*domain.TravelTimeResult) []domain.Conflict {
	timed := timedSorted(activities)

	conflicts := make([]domain.Conflict, 0)
	conflicts = append(conflicts, overlapConflicts(timed)...)
	conflicts = append(conflicts, travelConflicts(timed, travel)...)
	conflicts = append(conflicts, mealConflicts(timed)...)
	conflicts = append(conflicts, closedVenueConflicts(timed)...)

	return conflicts
}

// Adjacent pairs in start order that strictly overlap. Boundary-touching
// (a ends exactly when b starts) is not an overlap.
func overlapConflicts(timed []domain.Activity) []domain.Conflict {
	out := make([]domain.Conflict, 0)

	for i := 0; i+1 < len(timed); i++ {
		a, b := timed[i], timed[i+1]
		aEnd, _ := a.EndMinutes()
		bStart, _ := b.StartMinutes()

		if aEnd <= bStart {
			continue
		}

		out = append(out, domain.Conflict{
			Kind:     domain.ConflictOverlap,
			Severity: domain.SeverityError,
			Message: fmt.Sprintf(
				"%q overlaps %q by %d minutes",
				a.Name, b.Name, aEnd-bStart,
			),
			ActivityIDs: []string{a.ID, b.ID},
			Resolutions: []domain.Resolution{
				{
					Description: fmt.Sprintf("End %q at %s", a.Name, domain.FormatClock(bStart)),
					NewEnd:      domain.FormatClock(bStart),
				},
				{
					Description: fmt.Sprintf("Start %q at %s", b.Name, domain.FormatClock(aEnd)),
					NewStart:    domain.FormatClock(aEnd),
				},
			},
		})
	}

	return out
}

func travelConflicts(timed []domain.Activity, travel map[string]*domain.TravelTimeResult) []domain.Conflict {
	out := make([]domain.Conflict, 0)

	for i := 0; i+1 < len(timed); i++ {
		a, b := timed[i], timed[i+1]
		if a.Coords == nil || b.Coords == nil {
			continue
		}

		key := domain.SegmentKey(a.ID, b.ID, *a.Coords, *b.Coords)
		result := travel[key]
		if result == nil {
			// Unknown travel time suppresses the check rather than guessing.
			continue
		}

		aEnd, _ := a.EndMinutes()
		bStart, _ := b.StartMinutes()

		available := bStart - aEnd
		required := result.DurationMinutes()
		if available >= required {
			continue
		}

		shortfall := required - available
		severity := domain.SeverityWarning
		if shortfall > travelErrorThresholdMinutes {
			severity = domain.SeverityError
		}

		shift := shortfall + travelSafetyMarginMinutes
		out = append(out, domain.Conflict{
			Kind:     domain.ConflictInsufficientTravel,
			Severity: severity,
			Message: fmt.Sprintf(
				"Only %d minutes to travel from %q to %q; %d needed",
				available, a.Name, b.Name, required,
			),
			ActivityIDs: []string{a.ID, b.ID},
			Resolutions: []domain.Resolution{
				{
					Description: fmt.Sprintf("End %q at %s", a.Name, domain.FormatClock(aEnd-shift)),
					NewEnd:      domain.FormatClock(aEnd - shift),
				},
				{
					Description: fmt.Sprintf("Start %q at %s", b.Name, domain.FormatClock(bStart+shift)),
					NewStart:    domain.FormatClock(bStart + shift),
				},
			},
		})
	}

	return out
}

// A meal window is blocked when no meal-category activity overlaps it and
// some other activity covers it entirely.
func mealConflicts(timed []domain.Activity) []domain.Conflict {
	out := make([]domain.Conflict, 0)

	for _, w := range mealWindows {
		satisfied := false
		for i := range timed {
			if !timed[i].HasAnyCategory(mealCategories) {
				continue
			}
			start, _ := timed[i].StartMinutes()
			end, _ := timed[i].EndMinutes()
			if start < w.end && end > w.start {
				satisfied = true
				break
			}
		}
		if satisfied {
			continue
		}

		for i := range timed {
			start, _ := timed[i].StartMinutes()
			end, _ := timed[i].EndMinutes()
			if start > w.start || end < w.end {
				continue
			}

			out = append(out, domain.Conflict{
				Kind:     domain.ConflictMealTiming,
				Severity: domain.SeverityWarning,
				Message: fmt.Sprintf(
					"%q covers the whole %s window (%s-%s), leaving no time to eat",
					timed[i].Name, w.name,
					domain.FormatClock(w.start), domain.FormatClock(w.end),
				),
				ActivityIDs: []string{timed[i].ID},
			})
			break
		}
	}

	return out
}

func closedVenueConflicts(timed []domain.Activity) []domain.Conflict {
	out := make([]domain.Conflict, 0)

	for i := range timed {
		a := timed[i]
		start, _ := a.StartMinutes()

		for _, vh := range venueHoursTable {
			if !hasCategory(a, vh.category) {
				continue
			}

			if vh.weekdays != nil {
				if day, err := time.Parse("2006-01-02", a.Date); err == nil {
					if _, open := vh.weekdays[day.Weekday()]; !open {
						out = append(out, domain.Conflict{
							Kind:     domain.ConflictClosedVenue,
							Severity: domain.SeverityWarning,
							Message: fmt.Sprintf(
								"%q (%s) is closed on %s",
								a.Name, vh.category, day.Weekday(),
							),
							ActivityIDs: []string{a.ID},
						})
						break
					}
				}
			}

			if outsideHours(start, vh.open, vh.close) {
				out = append(out, domain.Conflict{
					Kind:     domain.ConflictClosedVenue,
					Severity: domain.SeverityWarning,
					Message: fmt.Sprintf(
						"%q (%s) starts at %s, outside opening hours %s-%s",
						a.Name, vh.category, domain.FormatClock(start),
						domain.FormatClock(vh.open), domain.FormatClock(vh.close),
					),
					ActivityIDs: []string{a.ID},
					Resolutions: []domain.Resolution{
						{
							Description: fmt.Sprintf("Move to opening time (%s)", domain.FormatClock(vh.open)),
							NewStart:    domain.FormatClock(vh.open),
						},
					},
				})
			}

			// Only the first matching category is checked so an activity
			// never yields duplicate venue conflicts.
			break
		}
	}

	return out
}

func hasCategory(a domain.Activity, category string) bool {
	for _, c := range a.Categories {
		if c == category {
			return true
		}
	}
	return false
}

// outsideHours handles windows that wrap past midnight (close < open).
func outsideHours(start, open, close int) bool {
	if close < open {
		return start < open && start >= close
	}
	return start < open || start >= close
}
