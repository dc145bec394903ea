package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"itinerary-planner-service/internal/domain"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisTravelPrefix = "travel:"

// RedisTravelCache stores resolved travel-time results as JSON values in
// Redis, one key per coordinate pair and mode. Entries expire so stale
// routing data eventually refreshes.
type RedisTravelCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisTravelCache(client *redis.Client, ttl time.Duration) *RedisTravelCache {
	if ttl <= 0 {
		ttl = 7 * 24 * time.Hour
	}
	return &RedisTravelCache{Client: client, TTL: ttl}
}

// Fetch cached results for the given keys.
func (r *RedisTravelCache) GetMany(
	ctx context.Context,
	keys []string,
) (map[string]domain.TravelTimeResult, error) {
	if r.Client == nil {
		return nil, errors.New("travel cache: redis client is nil")
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

	redisKeys := make([]string, 0, len(uniq))
	for _, k := range uniq {
		redisKeys = append(redisKeys, redisTravelPrefix+k)
	}

	values, err := r.Client.MGet(ctx, redisKeys...).Result()
	if err != nil {
		return nil, fmt.Errorf("get travel cache: redis mget: %w", err)
	}

	out := make(map[string]domain.TravelTimeResult, len(uniq))
	for i, v := range values {
		if v == nil {
			continue
		}
		raw, ok := v.(string)
		if !ok {
			continue
		}

		var result domain.TravelTimeResult
		if err := json.Unmarshal([]byte(raw), &result); err != nil {
			// A corrupt entry behaves like a miss and gets rewritten.
			continue
		}
		out[uniq[i]] = result
	}

	return out, nil
}

// Store resolved travel results by cache key.
func (r *RedisTravelCache) PutMany(ctx context.Context, results map[string]domain.TravelTimeResult) error {
	if r.Client == nil {
		return errors.New("travel cache: redis client is nil")
	}

	if len(results) == 0 {
		return nil
	}

	pipe := r.Client.Pipeline()
	for key, result := range results {
		if strings.TrimSpace(key) == "" {
			return errors.New("insert travel cache: empty cache key")
		}

		payload, err := json.Marshal(result)
		if err != nil {
			return fmt.Errorf("insert travel cache key=%q: marshal: %w", key, err)
		}
		pipe.Set(ctx, redisTravelPrefix+key, payload, r.TTL)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("insert travel cache: redis pipeline: %w", err)
	}

	return nil
}
