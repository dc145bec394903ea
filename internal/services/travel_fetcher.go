package services

import (
	"context"
	"itinerary-planner-service/internal/domain"
	"itinerary-planner-service/internal/ports"
	"strings"
	"sync"
)

// Travel lookups run concurrently but bounded, mirroring how external
// routing APIs rate-limit.
const maxConcurrentLookups = 5

// TravelTimeFetcher is the request-dedup layer between the scheduling
// engine and the external travel-time lookup. It owns two pieces of state:
// resolved results keyed by segment then mode (nil meaning a failed or
// unsupported lookup, terminal until the caller re-requests), and an
// in-flight set keyed "segmentKey::mode" that prevents duplicate concurrent
// requests for the same pair and mode.
//
// Sync prunes both maps to the currently relevant segment set, so state
// never grows across recomputes; results arriving for segments pruned in
// the meantime are dropped instead of applied. There is no automatic retry
// and no timeout at this layer - the injected provider enforces its own.
type TravelTimeFetcher struct {
	provider ports.TravelTimeProvider

	mu       sync.Mutex
	results  map[string]map[string]*domain.TravelTimeResult
	inflight map[string]struct{}
	closed   bool

	sem chan struct{}
	wg  sync.WaitGroup
}

func NewTravelTimeFetcher(provider ports.TravelTimeProvider) *TravelTimeFetcher {
	return &TravelTimeFetcher{
		provider: provider,
		results:  make(map[string]map[string]*domain.TravelTimeResult),
		inflight: make(map[string]struct{}),
		sem:      make(chan struct{}, maxConcurrentLookups),
	}
}

func inflightKey(segmentKey, mode string) string {
	return segmentKey + "::" + mode
}

// The modes a segment wants resolved: its preferred mode plus the two the
// UI always offers as alternatives.
func wantedModes(preferred string) []string {
	modes := []string{preferred}
	for _, m := range []string{domain.ModeDriving, domain.ModeWalking} {
		if m != preferred {
			modes = append(modes, m)
		}
	}
	return modes
}

// Sync reconciles fetcher state with the given segment set: entries for
// segments no longer present are pruned, and one batched request per
// segment is issued for any of its wanted modes that are neither resolved
// nor already in flight. Failures resolve the affected modes to nil.
func (f *TravelTimeFetcher) Sync(ctx context.Context, segments []domain.CommuteSegment) {
	type request struct {
		segment domain.CommuteSegment
		modes   []string
	}

	f.mu.Lock()

	relevant := make(map[string]struct{}, len(segments))
	for _, s := range segments {
		relevant[s.Key] = struct{}{}
	}
	f.pruneLocked(relevant)

	requests := make([]request, 0, len(segments))
	for _, s := range segments {
		if _, ok := f.results[s.Key]; !ok {
			f.results[s.Key] = make(map[string]*domain.TravelTimeResult)
		}

		missing := make([]string, 0, 3)
		for _, mode := range wantedModes(s.Mode) {
			if _, resolved := f.results[s.Key][mode]; resolved {
				continue
			}
			if _, pending := f.inflight[inflightKey(s.Key, mode)]; pending {
				continue
			}
			f.inflight[inflightKey(s.Key, mode)] = struct{}{}
			missing = append(missing, mode)
		}

		if len(missing) > 0 {
			requests = append(requests, request{segment: s, modes: missing})
		}
	}

	f.mu.Unlock()

	for _, r := range requests {
		f.wg.Add(1)
		go func(r request) {
			defer f.wg.Done()
			f.sem <- struct{}{}
			defer func() { <-f.sem }()

			results, err := f.provider.TravelTimes(ctx, r.segment.Origin, r.segment.Dest, r.modes)
			f.apply(r.segment.Key, r.modes, results, err)
		}(r)
	}
}

func (f *TravelTimeFetcher) apply(
	segmentKey string,
	modes []string,
	results map[string]domain.TravelTimeResult,
	err error,
) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, mode := range modes {
		delete(f.inflight, inflightKey(segmentKey, mode))
	}

	// Consumer torn down, or segment pruned while the request was out:
	// drop the results instead of resurrecting state.
	if f.closed {
		return
	}
	byMode, ok := f.results[segmentKey]
	if !ok {
		return
	}

	for _, mode := range modes {
		if err != nil {
			byMode[mode] = nil
			continue
		}
		if r, ok := results[mode]; ok {
			resolved := r
			byMode[mode] = &resolved
		} else {
			byMode[mode] = nil
		}
	}
}

// Result returns the resolved travel time for a segment and mode. ok is
// false while the lookup is pending or was never requested; a true ok with
// a nil result means the lookup failed and will not be retried.
func (f *TravelTimeFetcher) Result(segmentKey, mode string) (*domain.TravelTimeResult, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	byMode, ok := f.results[segmentKey]
	if !ok {
		return nil, false
	}
	r, ok := byMode[mode]
	return r, ok
}

// Pending reports whether a lookup for the pair is currently in flight.
func (f *TravelTimeFetcher) Pending(segmentKey, mode string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	_, ok := f.inflight[inflightKey(segmentKey, mode)]
	return ok
}

// Prune drops resolved and in-flight state for any segment not in keys.
func (f *TravelTimeFetcher) Prune(keys map[string]struct{}) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pruneLocked(keys)
}

func (f *TravelTimeFetcher) pruneLocked(relevant map[string]struct{}) {
	for key := range f.results {
		if _, ok := relevant[key]; !ok {
			delete(f.results, key)
		}
	}
	for key := range f.inflight {
		segmentKey, _, ok := strings.Cut(key, "::")
		if !ok {
			continue
		}
		if _, ok := relevant[segmentKey]; !ok {
			delete(f.inflight, key)
		}
	}
}

// Wait blocks until every outstanding lookup has completed.
func (f *TravelTimeFetcher) Wait() {
	f.wg.Wait()
}

// Close marks the fetcher torn down: results still in flight are discarded
// on arrival instead of applied.
func (f *TravelTimeFetcher) Close() {
	f.mu.Lock()
	f.closed = true
	f.mu.Unlock()
}
