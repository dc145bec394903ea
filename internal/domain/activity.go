package domain

// Represents a single place/time entry on an itinerary day.
// Date, time boundaries and coordinates are all optional and validated
// lazily: components that need them exclude activities where they are
// missing or malformed instead of erroring.
type Activity struct {
	ID         string
	Name       string
	Date       string // calendar day "2006-01-02"; empty means unscheduled
	StartTime  string // wall clock "HH:MM:SS"; empty means no start set
	EndTime    string
	Coords     *Coordinates
	Categories []string
	Notes      string
	TravelMode string // preferred mode of travel to the next stop
	Deleted    bool   // soft-deleted activities are excluded from scheduling
}

// StartMinutes parses the start boundary into minutes since midnight.
func (a *Activity) StartMinutes() (int, bool) {
	return ParseClock(a.StartTime)
}

// EndMinutes parses the end boundary into minutes since midnight.
func (a *Activity) EndMinutes() (int, bool) {
	return ParseClock(a.EndTime)
}

// Timed reports whether both time boundaries are present and well formed.
func (a *Activity) Timed() bool {
	_, startOK := a.StartMinutes()
	_, endOK := a.EndMinutes()
	return startOK && endOK
}

// PrimaryCategory returns the first category tag, or "" when untagged.
func (a *Activity) PrimaryCategory() string {
	if len(a.Categories) == 0 {
		return ""
	}
	return a.Categories[0]
}

// HasAnyCategory reports whether any of the activity's tags is in the set.
func (a *Activity) HasAnyCategory(set map[string]struct{}) bool {
	for _, c := range a.Categories {
		if _, ok := set[c]; ok {
			return true
		}
	}
	return false
}
