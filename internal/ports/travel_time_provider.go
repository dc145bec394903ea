package ports

import (
	"context"
	"itinerary-planner-service/internal/domain"
)

// Contract for the external travel-time lookup.
type TravelTimeProvider interface {
	// Return one result per requested mode. A mode absent from the map means
	// the provider could not produce a result for it; callers record those
	// modes as unknown rather than retrying.
	TravelTimes(
		ctx context.Context,
		origin domain.Coordinates,
		dest domain.Coordinates,
		modes []string,
	) (map[string]domain.TravelTimeResult, error)
}
