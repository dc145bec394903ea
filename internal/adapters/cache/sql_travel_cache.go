package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"itinerary-planner-service/internal/domain"
	"itinerary-planner-service/internal/platform/obs"
	"strings"
)

// SQLTravelCache is a Postgres-backed cache for resolved travel-time results.
type SQLTravelCache struct {
	DB *sql.DB
}

func NewSQLTravelCache(db *sql.DB) *SQLTravelCache {
	return &SQLTravelCache{DB: db}
}

// Fetch cached results for the given keys.
func (s *SQLTravelCache) GetMany(
	ctx context.Context,
	keys []string,
) (_ map[string]domain.TravelTimeResult, err error) {
	defer obs.Time(ctx, "travel.cache.GetMany")(&err)

	if s.DB == nil {
		return nil, errors.New("travel cache: db is nil")
	}

	if len(keys) == 0 {
		return map[string]domain.TravelTimeResult{}, nil
	}

	seen := map[string]struct{}{}
	uniq := make([]string, 0, len(keys))
	for _, k := range keys {
		k = strings.TrimSpace(k)
		if k == "" {
			continue
		}

		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		uniq = append(uniq, k)
	}

	if len(uniq) == 0 {
		return map[string]domain.TravelTimeResult{}, nil
	}

	q := `
	SELECT cache_key, mode, duration_seconds, duration_text, distance_text
    FROM travel_cache
    WHERE cache_key = ANY($1::text[]);
	`

	rows, err := s.DB.QueryContext(ctx, q, uniq)
	if err != nil {
		return nil, fmt.Errorf("get travel cache: query travel_cache table: %w", err)
	}
	defer rows.Close()

	out := make(map[string]domain.TravelTimeResult, len(uniq))
	for rows.Next() {
		var key string
		var r domain.TravelTimeResult
		if err := rows.Scan(&key, &r.Mode, &r.DurationSeconds, &r.DurationText, &r.DistanceText); err != nil {
			return nil, fmt.Errorf("get travel cache: scan rows: %w", err)
		}
		out[key] = r
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get travel cache: row iteration: %w", err)
	}

	return out, nil
}

// Store resolved travel results by cache key.
func (s *SQLTravelCache) PutMany(ctx context.Context, results map[string]domain.TravelTimeResult) error {
	if s.DB == nil {
		return errors.New("travel cache: db is nil")
	}

	if len(results) == 0 {
		return nil
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("insert travel cache: db begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
	INSERT INTO travel_cache (cache_key, mode, duration_seconds, duration_text, distance_text)
    VALUES ($1, $2, $3, $4, $5)
	ON CONFLICT (cache_key) DO UPDATE
	SET mode = EXCLUDED.mode,
		duration_seconds = EXCLUDED.duration_seconds,
		duration_text = EXCLUDED.duration_text,
		distance_text = EXCLUDED.distance_text;
	`)
	if err != nil {
		return fmt.Errorf("insert travel cache: db prepare: %w", err)
	}
	defer stmt.Close()

	for key, r := range results {
		if strings.TrimSpace(key) == "" {
			return fmt.Errorf("insert travel cache: empty cache key")
		}

		if _, err := stmt.ExecContext(ctx, key, r.Mode, r.DurationSeconds, r.DurationText, r.DistanceText); err != nil {
			return fmt.Errorf("insert travel cache key=%q: %w", key, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("insert travel cache commit: %w", err)
	}

	return nil
}
