package domain

// Reordering strategies exposed to callers. Each is a distinct user-facing
// choice; their outputs are not interchangeable.
const (
	StrategyNearestNeighbor = "nearest_neighbor"
	StrategyCategoryCluster = "category_cluster"
	StrategyTimeAware       = "time_aware"
)

// RouteSavings compares a candidate ordering against the original.
type RouteSavings struct {
	DistanceSavedMeters   float64
	TimeSavedMinutes      float64
	EfficiencyGainPercent float64
}

// OptimizedRoute is the output of one reordering strategy. It is immutable
// planning data and contains no side effects; applying it is a separate,
// caller-driven step.
type OptimizedRoute struct {
	Strategy                string
	OriginalOrder           []string
	OptimizedOrder          []string
	OriginalDistanceMeters  float64
	OptimizedDistanceMeters float64
	Savings                 RouteSavings
}
