package services

import (
	"itinerary-planner-service/internal/domain"
	"sort"
)

// timedSorted returns the non-deleted activities with well-formed start and
// end times, sorted ascending by start minute. The sort is stable so input
// order breaks ties. The input slice is never mutated.
func timedSorted(activities []domain.Activity) []domain.Activity {
	out := make([]domain.Activity, 0, len(activities))
	for _, a := range activities {
		if a.Deleted {
			continue
		}
		if a.Timed() {
			out = append(out, a)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		si, _ := out[i].StartMinutes()
		sj, _ := out[j].StartMinutes()
		return si < sj
	})

	return out
}

// BuildDaySegments derives one commute segment per consecutive pair of a
// day's activities. A pair only yields a segment when both activities have
// coordinates and parseable time boundaries; everything else is skipped
// silently. The preferred mode comes from the departing activity, falling
// back to driving.
func BuildDaySegments(dayIndex int, activities []domain.Activity) []domain.CommuteSegment {
	timed := timedSorted(activities)

	segments := make([]domain.CommuteSegment, 0, len(timed))
	for i := 0; i+1 < len(timed); i++ {
		from, to := timed[i], timed[i+1]
		if from.Coords == nil || to.Coords == nil {
			continue
		}

		fromEnd, _ := from.EndMinutes()
		toStart, _ := to.StartMinutes()

		mode := from.TravelMode
		if mode == "" {
			mode = domain.ModeDriving
		}

		segments = append(segments, domain.CommuteSegment{
			Key:            domain.SegmentKey(from.ID, to.ID, *from.Coords, *to.Coords),
			DayIndex:       dayIndex,
			FromID:         from.ID,
			ToID:           to.ID,
			Mode:           mode,
			Origin:         *from.Coords,
			Dest:           *to.Coords,
			FromEndMinutes: fromEnd,
			GapMinutes:     toStart - fromEnd,
		})
	}

	return segments
}
