package ports

import (
	"context"
	"itinerary-planner-service/internal/domain"
)

// Port: a boundary for retrieving itinerary activities from a data source.
// Implementations must exclude soft-deleted rows.
type ActivityRepository interface {
	// Retrieve all activities on the itinerary.
	ListActivities(ctx context.Context) ([]domain.Activity, error)
	// Retrieve the activities scheduled on one calendar day.
	ListActivitiesByDate(ctx context.Context, date string) ([]domain.Activity, error)
}
