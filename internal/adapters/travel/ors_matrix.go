package travel

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"itinerary-planner-service/internal/domain"
	"math"
	"net/http"
)

type matrixRequest struct {
	Locations    [][]float64 `json:"locations"`
	Destinations []int       `json:"destinations"`
	Metrics      []string    `json:"metrics"`
	Sources      []int       `json:"sources"`
}

type matrixResponse struct {
	Distances [][]*float64 `json:"distances"`
	Durations [][]*float64 `json:"durations"`
}

// fetchMatrixCell retrieves distance and duration for a single origin and
// destination using the OpenRouteService matrix endpoint.
func (o *ORSTravelProvider) fetchMatrixCell(
	ctx context.Context,
	profile string,
	origin domain.Coordinates,
	dest domain.Coordinates,
) (domain.TravelTimeResult, error) {
	endpoint := fmt.Sprintf("%s/v2/matrix/%s", o.baseURL, profile)

	// ORS expects [lon, lat] pairs.
	bodyObj := matrixRequest{
		Locations:    [][]float64{{origin.Lng, origin.Lat}, {dest.Lng, dest.Lat}},
		Destinations: []int{1},
		Metrics:      []string{"distance", "duration"},
		Sources:      []int{0},
	}

	payload, err := json.Marshal(bodyObj)
	if err != nil {
		return domain.TravelTimeResult{}, fmt.Errorf("marshal matrix request: %w", err)
	}

	resp, err := o.doWithRetry(ctx, func() (*http.Request, error) {
		body := bytes.NewReader(payload)
		return o.newRequest(ctx, http.MethodPost, endpoint, body)
	})
	if err != nil {
		return domain.TravelTimeResult{}, fmt.Errorf("matrix request failed: %w", err)
	}
	defer resp.Body.Close()

	var mr matrixResponse
	if err := json.NewDecoder(resp.Body).Decode(&mr); err != nil {
		return domain.TravelTimeResult{}, fmt.Errorf("decode matrix response: %w", err)
	}

	if len(mr.Distances) != 1 || len(mr.Durations) != 1 ||
		len(mr.Distances[0]) != 1 || len(mr.Durations[0]) != 1 {
		return domain.TravelTimeResult{}, fmt.Errorf(
			"expected a single matrix cell; got distances=%d durations=%d",
			len(mr.Distances), len(mr.Durations),
		)
	}

	metersPtr := mr.Distances[0][0]
	secondsPtr := mr.Durations[0][0]
	if metersPtr == nil || secondsPtr == nil {
		return domain.TravelTimeResult{}, fmt.Errorf("matrix returned no route for %s", profile)
	}

	// ORS returns float metrics; round to integers for domain consistency.
	seconds := int(math.Round(*secondsPtr))
	meters := int(math.Round(*metersPtr))

	return domain.TravelTimeResult{
		DurationSeconds: seconds,
		DurationText:    formatDuration(seconds),
		DistanceText:    formatDistance(meters),
	}, nil
}

func formatDuration(seconds int) string {
	minutes := (seconds + 59) / 60
	if minutes >= 60 {
		return fmt.Sprintf("%d hr %d min", minutes/60, minutes%60)
	}
	return fmt.Sprintf("%d min", minutes)
}

func formatDistance(meters int) string {
	if meters >= 1000 {
		return fmt.Sprintf("%.1f km", float64(meters)/1000)
	}
	return fmt.Sprintf("%d m", meters)
}
