package domain

// Recommendation buckets for a scored day.
type Recommendation string

const (
	RecommendationOptimal     Recommendation = "optimal"
	RecommendationOverpacked  Recommendation = "overpacked"
	RecommendationUnderpacked Recommendation = "underpacked"
	RecommendationUnbalanced  Recommendation = "unbalanced"
)

// DayEfficiency is the time-utilization summary for one day.
type DayEfficiency struct {
	Score          int // 0-100
	ActiveMinutes  int
	TravelMinutes  int
	FreeMinutes    int
	ActivityCount  int
	Recommendation Recommendation
	Suggestions    []string
}
