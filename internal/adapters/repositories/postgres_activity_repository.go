package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"itinerary-planner-service/internal/domain"
	"itinerary-planner-service/internal/platform/obs"
	"strings"
)

// Postgres-backed implementation of the ActivityRepository port.
type PostgresActivityRepository struct{ DB *sql.DB }

func NewPostgresActivityRepository(db *sql.DB) *PostgresActivityRepository {
	return &PostgresActivityRepository{DB: db}
}

// Return all activities on the itinerary.
func (p *PostgresActivityRepository) ListActivities(ctx context.Context) (_ []domain.Activity, err error) {
	defer obs.Time(ctx, "activities.ListActivities")(&err)

	if p.DB == nil {
		return nil, errors.New("postgres activity repository: DB is nil")
	}

	query := `
	SELECT ` + activityColumns + `
	FROM activities
	WHERE deleted = FALSE
	ORDER BY trip_date, start_time, activity_id;
	`
	rows, err := p.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list activities: query activities table: %w", err)
	}
	defer rows.Close()

	return scanActivities(rows)
}

// Return the activities scheduled on one calendar day.
func (p *PostgresActivityRepository) ListActivitiesByDate(ctx context.Context, date string) (_ []domain.Activity, err error) {
	defer obs.Time(ctx, "activities.ListActivitiesByDate")(&err)

	if p.DB == nil {
		return nil, errors.New("postgres activity repository: DB is nil")
	}
	if strings.TrimSpace(date) == "" {
		return nil, errors.New("list activities: date must be non-empty")
	}

	query := `
	SELECT ` + activityColumns + `
	FROM activities
	WHERE deleted = FALSE AND trip_date = $1
	ORDER BY start_time, activity_id;
	`
	rows, err := p.DB.QueryContext(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("list activities by date: query activities table: %w", err)
	}
	defer rows.Close()

	return scanActivities(rows)
}
