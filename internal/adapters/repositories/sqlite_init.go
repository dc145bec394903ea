package repositories

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
)

// Initialize the SQLite database schema.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createActivitiesQuery := `
	CREATE TABLE IF NOT EXISTS activities (
		activity_id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		trip_date TEXT,
		start_time TEXT,
		end_time TEXT,
		lat REAL,
		lng REAL,
		categories TEXT,
		notes TEXT,
		travel_mode TEXT,
		deleted INTEGER NOT NULL DEFAULT 0
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
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

type ActivitySeed struct {
	ActivityID string   `json:"activity_id"`
	Name       string   `json:"name"`
	Date       string   `json:"date"`
	StartTime  string   `json:"start_time"`
	EndTime    string   `json:"end_time"`
	Lat        *float64 `json:"lat"`
	Lng        *float64 `json:"lng"`
	Categories []string `json:"categories"`
	Notes      string   `json:"notes"`
	TravelMode string   `json:"travel_mode"`
}

// loadSeeds reads and validates seed data. Seeds without an explicit
// activity_id get a fresh UUID.
func loadSeeds(jsonPath string) ([]ActivitySeed, error) {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return nil, fmt.Errorf("seed activities: read %q: %w", jsonPath, err)
	}

	var data []ActivitySeed
	if err := json.Unmarshal(bytes, &data); err != nil {
		return nil, fmt.Errorf("seed activities: parse json: %w", err)
	}

	rows := make([]ActivitySeed, 0, len(data))
	for i, item := range data {
		if strings.TrimSpace(item.Name) == "" {
			return nil, fmt.Errorf("seed activities: item at index %d: name cannot be empty", i+1)
		}
		if strings.TrimSpace(item.ActivityID) == "" {
			item.ActivityID = uuid.NewString()
		}
		if (item.Lat == nil) != (item.Lng == nil) {
			return nil, fmt.Errorf("seed activities: item at index %d: lat and lng must be set together", i+1)
		}
		rows = append(rows, item)
	}

	return rows, nil
}

func joinCategories(categories []string) string {
	return strings.Join(categories, ",")
}

// Populate the SQLite database with itinerary data from a JSON file.
func SeedFromJSON(db *sql.DB, jsonPath string) error {
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
	INSERT OR REPLACE INTO activities (
		activity_id,
		name,
		trip_date,
		start_time,
		end_time,
		lat,
		lng,
		categories,
		notes,
		travel_mode,
		deleted
	)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, 0);
	`
	stmt, err := tx.Prepare(query)
	if err != nil {
		return fmt.Errorf("seed activities: prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, a := range rows {
		if _, err := stmt.Exec(
			a.ActivityID,
			a.Name,
			a.Date,
			a.StartTime,
			a.EndTime,
			a.Lat,
			a.Lng,
			joinCategories(a.Categories),
			a.Notes,
			a.TravelMode,
		); err != nil {
			return fmt.Errorf("seed activities: insert activity_id=%s: %w", a.ActivityID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed activities: commit tx: %w", err)
	}

	return nil
}
