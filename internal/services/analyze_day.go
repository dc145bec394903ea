package services

import (
	"context"
	"fmt"
	"itinerary-planner-service/internal/domain"
	"itinerary-planner-service/internal/platform/obs"
	"itinerary-planner-service/internal/ports"
)

// DayAnalysis is the full scheduling picture of one calendar day, assembled
// for rendering collaborators: alerts, calendar layout and summary panels.
type DayAnalysis struct {
	Date        string
	Activities  []domain.Activity
	Segments    []domain.CommuteSegment
	TravelTimes map[string]*domain.TravelTimeResult
	Layout      []SegmentLayout
	Conflicts   []domain.Conflict
	Gaps        []domain.FreeTimeGap
	Efficiency  domain.DayEfficiency
}

// AnalyzeDay loads one day's activities and runs the whole engine over a
// snapshot: commute segments, travel times (fetched through the dedup
// layer), conflicts, overlap layout, free-time gaps and the efficiency
// score. Travel lookups that fail stay unknown; every downstream
// computation degrades rather than erroring.
func AnalyzeDay(
	ctx context.Context,
	date string,
	repo ports.ActivityRepository,
	fetcher *TravelTimeFetcher,
) (_ *DayAnalysis, err error) {
	defer obs.Time(ctx, "services.AnalyzeDay")(&err)

	activities, err := repo.ListActivitiesByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("analyze day: list activities for %q: %w", date, err)
	}

	segments := BuildDaySegments(0, activities)

	fetcher.Sync(ctx, segments)
	fetcher.Wait()

	travel := make(map[string]*domain.TravelTimeResult, len(segments))
	for _, s := range segments {
		if r, ok := fetcher.Result(s.Key, s.Mode); ok {
			travel[s.Key] = r
		}
	}

	return &DayAnalysis{
		Date:        date,
		Activities:  activities,
		Segments:    segments,
		TravelTimes: travel,
		Layout:      LayoutSegments(segments, travel),
		Conflicts:   DetectConflicts(activities, travel),
		Gaps:        FindFreeTime(activities),
		Efficiency:  ScoreDay(activities, segments, travel),
	}, nil
}
