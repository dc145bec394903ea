package repositories

import (
	"database/sql"
	"errors"
	"fmt"
)

// Initialize the Postgres database schema.
func InitPostgresSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init postgres schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init postgres schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createActivitiesQuery := `
	CREATE TABLE IF NOT EXISTS activities (
		activity_id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		trip_date TEXT,
		start_time TEXT,
		end_time TEXT,
		lat DOUBLE PRECISION,
		lng DOUBLE PRECISION,
		categories TEXT,
		notes TEXT,
		travel_mode TEXT,
		deleted BOOLEAN NOT NULL DEFAULT FALSE
	);
	`

	createTravelCacheQuery := `
	CREATE TABLE IF NOT EXISTS travel_cache (
        cache_key TEXT PRIMARY KEY,
        mode TEXT NOT NULL,
        duration_seconds INTEGER NOT NULL,
        duration_text TEXT NOT NULL,
        distance_text TEXT NOT NULL
    );
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_activities_trip_date
    ON activities(trip_date, start_time);
	`

	statements := []string{
		createActivitiesQuery,
		createTravelCacheQuery,
		createIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init postgres schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init postgres schema: commit tx: %w", err)
	}

	return nil
}

// Populate Postgres with itinerary data from a JSON file.
func SeedPostgresFromJSON(db *sql.DB, jsonPath string) error {
	rows, err := loadSeeds(jsonPath)
	if err != nil {
		return err
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed activities: begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `
	INSERT INTO activities (
		activity_id, name, trip_date, start_time, end_time,
		lat, lng, categories, notes, travel_mode, deleted
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, FALSE)
	ON CONFLICT (activity_id) DO UPDATE
	SET name = EXCLUDED.name,
		trip_date = EXCLUDED.trip_date,
		start_time = EXCLUDED.start_time,
		end_time = EXCLUDED.end_time,
		lat = EXCLUDED.lat,
		lng = EXCLUDED.lng,
		categories = EXCLUDED.categories,
		notes = EXCLUDED.notes,
		travel_mode = EXCLUDED.travel_mode,
		deleted = FALSE;
	`
	stmt, err := tx.Prepare(query)
	if err != nil {
		return fmt.Errorf("seed activities: prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, a := range rows {
		if _, err := stmt.Exec(
			a.ActivityID, a.Name, a.Date, a.StartTime, a.EndTime,
			a.Lat, a.Lng, joinCategories(a.Categories), a.Notes, a.TravelMode,
		); err != nil {
			return fmt.Errorf("seed activities: insert activity_id=%s: %w", a.ActivityID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed activities: commit tx: %w", err)
	}

	return nil
}
