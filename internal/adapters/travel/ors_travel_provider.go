package travel

import (
	"context"
	"errors"
	"fmt"
	"itinerary-planner-service/internal/domain"
	"itinerary-planner-service/internal/platform/obs"
	"itinerary-planner-service/internal/ports"
	"log"
	"net/http"
	"time"
)

// ORS routing profiles per travel mode. ORS has no transit profile, so
// transit lookups report no result and stay unknown downstream.
var orsProfiles = map[string]string{
	domain.ModeDriving:   "driving-car",
	domain.ModeWalking:   "foot-walking",
	domain.ModeBicycling: "cycling-regular",
}

// ORSTravelProvider implements TravelTimeProvider using OpenRouteService.
//
// It coordinates:
//   - Persistent caching of resolved results per coordinate pair and mode
//   - One matrix call per uncached mode
//   - External API calls with retry/backoff
//
// The provider is safe for concurrent use.
type ORSTravelProvider struct {
	session *http.Client
	apiKey  string
	baseURL string
	cache   ports.TravelCache
}

func NewORSTravelProvider(apiKey string, cache ports.TravelCache) (*ORSTravelProvider, error) {
	if apiKey == "" {
		return nil, errors.New("ORS api key is empty")
	}

	return &ORSTravelProvider{
		session: &http.Client{Timeout: 10 * time.Second},
		apiKey:  apiKey,
		baseURL: "https://api.openrouteservice.org",
		cache:   cache,
	}, nil
}

// cacheKey matches the rounding of segment keys so recomputes hit the same
// cache rows despite upstream coordinate jitter.
func cacheKey(origin, dest domain.Coordinates, mode string) string {
	return fmt.Sprintf("%.5f,%.5f|%.5f,%.5f:%s", origin.Lat, origin.Lng, dest.Lat, dest.Lng, mode)
}

// TravelTimes resolves travel time between two points for each requested
// mode. Unsupported modes are absent from the result; callers treat those
// as unknown.
func (o *ORSTravelProvider) TravelTimes(
	ctx context.Context,
	origin domain.Coordinates,
	dest domain.Coordinates,
	modes []string,
) (_ map[string]domain.TravelTimeResult, err error) {
	defer obs.Time(ctx, "ors.TravelTimes")(&err)

	seen := make(map[string]struct{}, len(modes))
	supported := make([]string, 0, len(modes))
	for _, m := range modes {
		if _, ok := orsProfiles[m]; !ok {
			continue
		}
		if _, dup := seen[m]; dup {
			continue
		}
		seen[m] = struct{}{}
		supported = append(supported, m)
	}

	if len(supported) == 0 {
		return map[string]domain.TravelTimeResult{}, nil
	}

	out := make(map[string]domain.TravelTimeResult, len(supported))

	// Check the persistent cache before issuing external API calls.
	misses := supported
	if o.cache != nil {
		keys := make([]string, 0, len(supported))
		byKey := make(map[string]string, len(supported))
		for _, m := range supported {
			k := cacheKey(origin, dest, m)
			keys = append(keys, k)
			byKey[k] = m
		}

		hits, err := o.cache.GetMany(ctx, keys)
		if err != nil {
			return nil, fmt.Errorf("ORS travel cache: %w", err)
		}

		misses = make([]string, 0, len(supported))
		for k, m := range byKey {
			if r, ok := hits[k]; ok {
				out[m] = r
			}
		}
		for _, m := range supported {
			if _, ok := out[m]; !ok {
				misses = append(misses, m)
			}
		}
	}

	fresh := make(map[string]domain.TravelTimeResult, len(misses))
	for _, m := range misses {
		r, err := o.fetchMatrixCell(ctx, orsProfiles[m], origin, dest)
		if err != nil {
			return nil, fmt.Errorf("ORS matrix %s: %w", m, err)
		}
		r.Mode = m
		out[m] = r
		fresh[cacheKey(origin, dest, m)] = r
	}

	if o.cache != nil && len(fresh) > 0 {
		if err := o.cache.PutMany(ctx, fresh); err != nil {
			log.Printf("travel cache write failed: %v", err)
		}
	}

	return out, nil
}
