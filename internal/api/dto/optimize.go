package dto

type OptimizeRequest struct {
	Date     string `json:"date"`
	Strategy string `json:"strategy,omitempty"`
}

type RouteSavingsResponse struct {
	DistanceSavedMeters   float64 `json:"distance_saved_meters"`
	TimeSavedMinutes      float64 `json:"time_saved_minutes"`
	EfficiencyGainPercent float64 `json:"efficiency_gain_percent"`
}

type RouteResponse struct {
	Strategy                string               `json:"strategy"`
	OriginalOrder           []string             `json:"original_order"`
	OptimizedOrder          []string             `json:"optimized_order"`
	OriginalDistanceMeters  float64              `json:"original_distance_meters"`
	OptimizedDistanceMeters float64              `json:"optimized_distance_meters"`
	Savings                 RouteSavingsResponse `json:"savings"`
}

type ListRoutesResponse struct {
	Routes []RouteResponse `json:"routes"`
}

type ApplyRouteRequest struct {
	Date     string `json:"date"`
	Strategy string `json:"strategy"`
}

// ApplyRouteResponse carries the reordered activity list with repositioned
// time slots; persisting it is the caller's job.
type ApplyRouteResponse struct {
	Route      RouteResponse      `json:"route"`
	Activities []ActivityResponse `json:"activities"`
}
