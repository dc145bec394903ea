package ports

import (
	"context"
	"itinerary-planner-service/internal/domain"
)

// Port: persistent storage for resolved travel-time results, keyed by an
// opaque cache key (rounded coordinate pair plus mode). Keys are expected
// to be consistent (already normalized) by the caller.
type TravelCache interface {
	// Fetch cached results for the given keys; absent keys are simply
	// missing from the returned map.
	GetMany(ctx context.Context, keys []string) (map[string]domain.TravelTimeResult, error)
	// Store resolved results by cache key.
	PutMany(ctx context.Context, results map[string]domain.TravelTimeResult) error
}
