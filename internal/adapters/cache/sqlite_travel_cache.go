package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"itinerary-planner-service/internal/domain"
	"strings"
)

// SQLite backed cache for resolved travel-time results. Keys are expected
// to be consistent (already coordinate-rounded) by the caller.
type SqliteTravelCache struct {
	DB *sql.DB
}

func NewSqliteTravelCache(db *sql.DB) *SqliteTravelCache {
	return &SqliteTravelCache{DB: db}
}

// Fetch cached results for the given keys.
func (s *SqliteTravelCache) GetMany(
	ctx context.Context,
	keys []string,
) (map[string]domain.TravelTimeResult, error) {
	if s.DB == nil {
		return nil, errors.New("travel cache: db is nil")
	}

	if len(keys) == 0 {
		return map[string]domain.TravelTimeResult{}, nil
	}

	seen := map[string]struct{}{}
	uniq := make([]string, 0, len(keys))
	ph := make([]string, 0, len(keys))
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
		ph = append(ph, "?")
	}

	if len(uniq) == 0 {
		return map[string]domain.TravelTimeResult{}, nil
	}

	args := make([]any, 0, len(uniq))
	for _, k := range uniq {
		args = append(args, k)
	}

	// SQLite does not support binding slices directly in an IN (...) clause.
	// Only the placeholder structure is interpolated; all values remain parameterized.
	q := fmt.Sprintf(`
	SELECT
        cache_key,
        mode,
        duration_seconds,
        duration_text,
        distance_text
    FROM travel_cache
    WHERE cache_key IN (%s);
	`, strings.Join(ph, ","))

	rows, err := s.DB.QueryContext(ctx, q, args...)
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
func (s *SqliteTravelCache) PutMany(ctx context.Context, results map[string]domain.TravelTimeResult) error {
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
	INSERT OR REPLACE INTO travel_cache (
        cache_key,
        mode,
        duration_seconds,
        duration_text,
        distance_text
    )
    VALUES (?, ?, ?, ?, ?);
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
