package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"itinerary-planner-service/internal/domain"
	"strings"
)

// SQLite-backed implementation of the ActivityRepository port.
// Soft-deleted rows never leave this layer.
type SqliteActivityRepository struct{ DB *sql.DB }

func NewSqliteActivityRepository(db *sql.DB) *SqliteActivityRepository {
	return &SqliteActivityRepository{DB: db}
}

const activityColumns = `
	activity_id,
	name,
	trip_date,
	start_time,
	end_time,
	lat,
	lng,
	categories,
	notes,
	travel_mode
`

// Return all activities on the itinerary.
func (s *SqliteActivityRepository) ListActivities(ctx context.Context) ([]domain.Activity, error) {
	if s.DB == nil {
		return nil, errors.New("sqlite activity repository: DB is nil")
	}

	query := `
	SELECT ` + activityColumns + `
	FROM activities
	WHERE deleted = 0
	ORDER BY trip_date, start_time, activity_id;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list activities: query activities table: %w", err)
	}
	defer rows.Close()

	return scanActivities(rows)
}

// Return the activities scheduled on one calendar day.
func (s *SqliteActivityRepository) ListActivitiesByDate(ctx context.Context, date string) ([]domain.Activity, error) {
	if s.DB == nil {
		return nil, errors.New("sqlite activity repository: DB is nil")
	}
	if strings.TrimSpace(date) == "" {
		return nil, errors.New("list activities: date must be non-empty")
	}

	query := `
	SELECT ` + activityColumns + `
	FROM activities
	WHERE deleted = 0 AND trip_date = ?
	ORDER BY start_time, activity_id;
	`
	rows, err := s.DB.QueryContext(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("list activities by date: query activities table: %w", err)
	}
	defer rows.Close()

	return scanActivities(rows)
}

func scanActivities(rows *sql.Rows) ([]domain.Activity, error) {
	activities := make([]domain.Activity, 0, 16)
	for rows.Next() {
		var (
			a          domain.Activity
			date       sql.NullString
			start      sql.NullString
			end        sql.NullString
			lat        sql.NullFloat64
			lng        sql.NullFloat64
			categories sql.NullString
			notes      sql.NullString
			mode       sql.NullString
		)

		if err := rows.Scan(&a.ID, &a.Name, &date, &start, &end, &lat, &lng, &categories, &notes, &mode); err != nil {
			return nil, fmt.Errorf("list activities: scan row: %w", err)
		}

		a.Date = date.String
		a.StartTime = start.String
		a.EndTime = end.String
		a.Notes = notes.String
		a.TravelMode = mode.String
		if lat.Valid && lng.Valid {
			a.Coords = &domain.Coordinates{Lat: lat.Float64, Lng: lng.Float64}
		}
		if categories.Valid && categories.String != "" {
			a.Categories = strings.Split(categories.String, ",")
		}

		activities = append(activities, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list activities: row iteration: %w", err)
	}

	return activities, nil
}
