package cache

import (
	"context"
	"itinerary-planner-service/internal/domain"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func TestRedisTravelCacheRoundTrip(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	c := NewRedisTravelCache(client, time.Hour)

	key := "48.85837,2.29448|48.8606,2.3376:walking"
	stored := domain.TravelTimeResult{
		DurationSeconds: 2280,
		DurationText:    "38 min",
		DistanceText:    "3.2 km",
		Mode:            domain.ModeWalking,
	}

	if err := c.PutMany(context.Background(), map[string]domain.TravelTimeResult{key: stored}); err != nil {
		t.Fatalf("PutMany: %v", err)
	}

	got, err := c.GetMany(context.Background(), []string{key, "missing|key:driving"})
	if err != nil {
		t.Fatalf("GetMany: %v", err)
	}

	if len(got) != 1 {
		t.Fatalf("expected 1 hit, got %d", len(got))
	}
	if got[key] != stored {
		t.Fatalf("round trip mismatch: got %+v, want %+v", got[key], stored)
	}
}

func TestRedisTravelCacheEmptyInput(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	c := NewRedisTravelCache(client, time.Hour)

	got, err := c.GetMany(context.Background(), nil)
	if err != nil {
		t.Fatalf("GetMany(nil): %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no hits, got %d", len(got))
	}

	if err := c.PutMany(context.Background(), nil); err != nil {
		t.Fatalf("PutMany(nil): %v", err)
	}
}

func TestRedisTravelCacheCorruptEntryIsAMiss(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	c := NewRedisTravelCache(client, time.Hour)

	key := "0,0|0,1:driving"
	mr.Set(redisTravelPrefix+key, "not json")

	got, err := c.GetMany(context.Background(), []string{key})
	if err != nil {
		t.Fatalf("GetMany: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("corrupt entry should be a miss, got %+v", got)
	}
}
