package travel

import (
	"context"
	"fmt"
	"itinerary-planner-service/internal/domain"
	"sync"
)

type MockLeg struct {
	Origin  domain.Coordinates
	Dest    domain.Coordinates
	Mode    string
	Seconds int
	Meters  int
}

// MockTravelProvider serves travel times from a fixed table, for tests and
// offline runs. Modes missing from the table are simply absent from the
// result, matching how real providers report unsupported modes. Setting Err
// makes every call fail; a non-nil Gate blocks calls until it is closed.
type MockTravelProvider struct {
	Err  error
	Gate chan struct{}

	mu    sync.Mutex
	legs  map[string]domain.TravelTimeResult
	calls int
}

func NewMockTravelProvider(legs []MockLeg) *MockTravelProvider {
	m := make(map[string]domain.TravelTimeResult, len(legs))
	for _, l := range legs {
		m[mockKey(l.Origin, l.Dest, l.Mode)] = domain.TravelTimeResult{
			DurationSeconds: l.Seconds,
			DurationText:    fmt.Sprintf("%d min", (l.Seconds+59)/60),
			DistanceText:    fmt.Sprintf("%d m", l.Meters),
			Mode:            l.Mode,
		}
	}
	return &MockTravelProvider{legs: m}
}

func mockKey(origin, dest domain.Coordinates, mode string) string {
	return fmt.Sprintf("%.5f,%.5f|%.5f,%.5f:%s", origin.Lat, origin.Lng, dest.Lat, dest.Lng, mode)
}

func (p *MockTravelProvider) TravelTimes(
	ctx context.Context,
	origin domain.Coordinates,
	dest domain.Coordinates,
	modes []string,
) (map[string]domain.TravelTimeResult, error) {
	if p.Gate != nil {
		select {
		case <-p.Gate:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	p.mu.Lock()
	p.calls++
	err := p.Err
	p.mu.Unlock()

	if err != nil {
		return nil, err
	}

	out := make(map[string]domain.TravelTimeResult, len(modes))
	for _, mode := range modes {
		if r, ok := p.legs[mockKey(origin, dest, mode)]; ok {
			out[mode] = r
		}
	}
	return out, nil
}

// Calls reports how many lookups have been issued.
func (p *MockTravelProvider) Calls() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls
}
