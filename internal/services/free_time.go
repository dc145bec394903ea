package services

import (
	"fmt"
	"itinerary-planner-service/internal/domain"
	"sort"
)

// The waking window the advisor reasons over: 06:00-23:00.
const (
	wakingStartMinutes = 6 * 60
	wakingEndMinutes   = 23 * 60
	minGapMinutes      = 15
	maxSuggestions     = 4
)

type gapPosition int

const (
	gapAtStart gapPosition = iota
	gapBetween
	gapAtEnd
)

// FindFreeTime reports the idle stretches of one day: the complement of the
// scheduled activity intervals within the 06:00-23:00 waking window. Gaps
// shorter than 15 minutes are ignored. Each gap is categorized by length,
// flagged when it intersects a meal window, and annotated with up to 4
// ranked suggestions. A day with no timed activities yields a single gap
// spanning the whole window.
func FindFreeTime(activities []domain.Activity) []domain.FreeTimeGap {
	timed := timedSorted(activities)

	gaps := make([]domain.FreeTimeGap, 0)
	cursor := wakingStartMinutes

	for i := range timed {
		start, _ := timed[i].StartMinutes()
		end, _ := timed[i].EndMinutes()

		if start-cursor >= minGapMinutes && cursor < wakingEndMinutes {
			pos := gapBetween
			if i == 0 {
				pos = gapAtStart
			}
			gapEnd := min(start, wakingEndMinutes)
			if gapEnd-cursor >= minGapMinutes {
				gaps = append(gaps, buildGap(cursor, gapEnd, pos))
			}
		}

		if end > cursor {
			cursor = end
		}
	}

	if wakingEndMinutes-cursor >= minGapMinutes {
		pos := gapAtEnd
		if len(timed) == 0 {
			pos = gapAtStart
		}
		gaps = append(gaps, buildGap(cursor, wakingEndMinutes, pos))
	}

	return gaps
}

func buildGap(start, end int, pos gapPosition) domain.FreeTimeGap {
	duration := end - start

	category := domain.GapLong
	switch {
	case duration < 30:
		category = domain.GapShort
	case duration < 120:
		category = domain.GapMedium
	}

	mealOverlap := false
	for _, w := range mealWindows {
		if start < w.end && end > w.start {
			mealOverlap = true
			break
		}
	}

	return domain.FreeTimeGap{
		StartTime:       domain.FormatClock(start),
		EndTime:         domain.FormatClock(end),
		DurationMinutes: duration,
		Category:        category,
		MealOverlap:     mealOverlap,
		Suggestions:     suggestFor(duration, category, mealOverlap, pos),
	}
}

// Fixed rule table keyed by duration category, meal overlap and position in
// the day. Suggestions are ranked by priority and capped at 4; a suggested
// duration never exceeds the gap itself.
func suggestFor(duration int, category domain.GapCategory, mealOverlap bool, pos gapPosition) []domain.GapSuggestion {
	add := func(out []domain.GapSuggestion, text string, p domain.Priority, minutes int) []domain.GapSuggestion {
		if minutes > duration {
			minutes = duration
		}
		return append(out, domain.GapSuggestion{Text: text, Priority: p, DurationMinutes: minutes})
	}

	out := make([]domain.GapSuggestion, 0, maxSuggestions+2)

	if mealOverlap {
		out = add(out, "Grab a meal nearby", domain.PriorityHigh, 60)
	}

	switch category {
	case domain.GapShort:
		out = add(out, "Take a short break", domain.PriorityLow, duration)
	case domain.GapMedium:
		out = add(out, "Explore the surrounding neighborhood", domain.PriorityMedium, 60)
		out = add(out, "Stop for a coffee", domain.PriorityLow, 45)
	case domain.GapLong:
		out = add(out, "Add another activity to fill this gap", domain.PriorityHigh, 120)
		out = add(out, "Join a guided tour in the area", domain.PriorityMedium, 90)
	}

	switch pos {
	case gapAtStart:
		out = add(out, "Ease into the day before your first stop", domain.PriorityLow, 30)
	case gapAtEnd:
		out = add(out, fmt.Sprintf("Wind down with a %d-minute walk", min(duration, 30)), domain.PriorityLow, 30)
	}

	rank := map[domain.Priority]int{
		domain.PriorityHigh:   0,
		domain.PriorityMedium: 1,
		domain.PriorityLow:    2,
	}
	sort.SliceStable(out, func(i, j int) bool {
		return rank[out[i].Priority] < rank[out[j].Priority]
	})

	if len(out) > maxSuggestions {
		out = out[:maxSuggestions]
	}
	return out
}
