package domain

// TravelTimeResult is one resolved travel-time lookup for a segment and mode.
// A nil *TravelTimeResult means the lookup failed or the mode is unsupported;
// consumers treat nil as "unknown" and suppress travel-based conclusions
// instead of assuming either success or failure.
type TravelTimeResult struct {
	DurationSeconds int
	DurationText    string
	DistanceText    string
	Mode            string
}

// DurationMinutes rounds the travel time up to whole minutes.
func (r *TravelTimeResult) DurationMinutes() int {
	return (r.DurationSeconds + 59) / 60
}
