package domain

import (
	"fmt"
	"math"
	"strconv"
)

// Travel modes understood by travel-time providers.
const (
	ModeWalking   = "walking"
	ModeDriving   = "driving"
	ModeTransit   = "transit"
	ModeBicycling = "bicycling"
)

// CommuteSegment is the commute leg between two consecutive activities on
// the same calendar day. A segment only exists when both endpoints have
// coordinates and well-formed time boundaries.
type CommuteSegment struct {
	Key        string
	DayIndex   int
	FromID     string
	ToID       string
	Mode       string
	Origin     Coordinates
	Dest       Coordinates
	// FromEndMinutes is where the leg starts on the day's timeline.
	FromEndMinutes int
	GapMinutes     int // to.start - from.end; negative when the pair overlaps
}

// SegmentKey builds the stable identity of a commute leg. Coordinates are
// rounded to 5 decimal places (~1m) so keys survive floating-point jitter
// from upstream geocoding while staying distinct for genuinely different
// locations.
func SegmentKey(fromID, toID string, origin, dest Coordinates) string {
	return fmt.Sprintf("%s->%s:%s,%s|%s,%s",
		fromID, toID,
		round5(origin.Lat), round5(origin.Lng),
		round5(dest.Lat), round5(dest.Lng),
	)
}

func round5(v float64) string {
	return strconv.FormatFloat(math.Round(v*1e5)/1e5, 'f', -1, 64)
}
