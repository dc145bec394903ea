package domain

type GapCategory string

const (
	GapShort  GapCategory = "short"  // under 30 minutes
	GapMedium GapCategory = "medium" // 30 to 120 minutes
	GapLong   GapCategory = "long"   // 120 minutes and up
)

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// GapSuggestion proposes one way to spend an idle stretch. The suggested
// duration never exceeds the gap itself.
type GapSuggestion struct {
	Text            string
	Priority        Priority
	DurationMinutes int
}

// FreeTimeGap is an idle stretch inside the waking window, between
// activities or at the edges of the day.
type FreeTimeGap struct {
	StartTime       string
	EndTime         string
	DurationMinutes int
	Category        GapCategory
	MealOverlap     bool
	Suggestions     []GapSuggestion
}
