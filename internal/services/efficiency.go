package services

import (
	"itinerary-planner-service/internal/domain"
	"math"
)

const (
	// 17 waking hours, matching the free-time window.
	totalWakingMinutes = 17 * 60
	// Active share of the waking day that scores 100.
	optimalActiveRatio = 0.65
)

// ScoreDay produces the 0-100 time-utilization score and recommendation for
// one day. Active time is the summed duration of timed activities; travel
// time is the summed resolved travel results (rounded up to whole minutes)
// across the day's segments, unknown results counting as zero. A day with
// no timed activities returns the zero value.
//
// The score is 100 - |activeRatio - 0.65| * 200, clamped to [0, 100]: a 65%
// active day scores 100 and the score falls off by 2 points per percentage
// point of deviation either way.
func ScoreDay(
	activities []domain.Activity,
	segments []domain.CommuteSegment,
	travel map[string]*domain.TravelTimeResult,
) domain.DayEfficiency {
	timed := timedSorted(activities)
	if len(timed) == 0 {
		return domain.DayEfficiency{}
	}

	activeMinutes := 0
	for i := range timed {
		start, _ := timed[i].StartMinutes()
		end, _ := timed[i].EndMinutes()
		activeMinutes += end - start
	}

	travelMinutes := 0
	for _, s := range segments {
		if r := travel[s.Key]; r != nil {
			travelMinutes += r.DurationMinutes()
		}
	}

	freeMinutes := totalWakingMinutes - activeMinutes - travelMinutes
	if freeMinutes < 0 {
		freeMinutes = 0
	}

	activeRatio := float64(activeMinutes) / totalWakingMinutes
	travelRatio := float64(travelMinutes) / totalWakingMinutes

	score := int(math.Round(100 - math.Abs(activeRatio-optimalActiveRatio)*200))
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	recommendation, suggestions := recommend(score, activeRatio, travelRatio, len(timed))

	return domain.DayEfficiency{
		Score:          score,
		ActiveMinutes:  activeMinutes,
		TravelMinutes:  travelMinutes,
		FreeMinutes:    freeMinutes,
		ActivityCount:  len(timed),
		Recommendation: recommendation,
		Suggestions:    suggestions,
	}
}

// Threshold order matters: a high score wins outright, then extreme active
// ratios, then excessive transit, then a residual bucket keyed on how much
// of the day is scheduled at all.
func recommend(score int, activeRatio, travelRatio float64, activityCount int) (domain.Recommendation, []string) {
	switch {
	case score >= 85:
		return domain.RecommendationOptimal, []string{
			"Your day is well balanced - keep it as planned",
		}
	case activeRatio > 0.8:
		return domain.RecommendationOverpacked, []string{
			"Consider dropping or shortening one activity",
			"Leave buffer time between stops",
		}
	case activeRatio < 0.3:
		return domain.RecommendationUnderpacked, []string{
			"Add another activity or extend an existing one",
			"Check the free-time suggestions for this day",
		}
	case travelRatio > 0.25:
		return domain.RecommendationUnbalanced, []string{
			"Too much of the day is spent in transit",
			"Reorder stops to cut down on travel",
			"Group nearby activities together",
		}
	case activityCount <= 2:
		return domain.RecommendationUnbalanced, []string{
			"Schedule more of the day to improve balance",
		}
	default:
		return domain.RecommendationUnbalanced, []string{
			"Rebalance activity durations across the day",
		}
	}
}
