package handlers

import (
	"encoding/json"
	"io"
	"itinerary-planner-service/internal/api/dto"
	"itinerary-planner-service/internal/domain"
	"itinerary-planner-service/internal/ports"
	"itinerary-planner-service/internal/services"
	"log"
	"net/http"
	"strings"
	"time"
)

type OptimizeHandler struct {
	Repo ports.ActivityRepository
}

// Optimize computes candidate reorderings for one day's stops. With no
// strategy it returns every strategy that produced a route; with one it
// returns just that route.
func (h *OptimizeHandler) Optimize(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.OptimizeRequest
	if !decodeBody(w, r, &req) {
		return
	}

	date, ok := requireDate(w, r, req.Date)
	if !ok {
		return
	}

	strategy := strings.TrimSpace(req.Strategy)
	if strategy != "" && !validStrategy(strategy) {
		writeError(w, r, http.StatusBadRequest, "unknown strategy")
		return
	}

	activities, err := h.Repo.ListActivitiesByDate(r.Context(), date)
	if err != nil {
		log.Printf("optimize failed: date=%s err=%v", date, err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	var routes []domain.OptimizedRoute
	if strategy == "" {
		routes = services.OptimizeDay(activities)
	} else if route, ok := services.OptimizeRoute(strategy, activities); ok {
		routes = append(routes, route)
	}

	res := dto.ListRoutesResponse{Routes: make([]dto.RouteResponse, 0, len(routes))}
	for _, route := range routes {
		res.Routes = append(res.Routes, toRouteResponse(route))
	}

	writeJSON(w, r, http.StatusOK, res)
}

// Apply reorders one day's stops according to a strategy and re-maps the
// existing time slots onto the new order. The result is returned, not
// persisted.
func (h *OptimizeHandler) Apply(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.ApplyRouteRequest
	if !decodeBody(w, r, &req) {
		return
	}

	date, ok := requireDate(w, r, req.Date)
	if !ok {
		return
	}

	strategy := strings.TrimSpace(req.Strategy)
	if !validStrategy(strategy) {
		writeError(w, r, http.StatusBadRequest, "unknown strategy")
		return
	}

	activities, err := h.Repo.ListActivitiesByDate(r.Context(), date)
	if err != nil {
		log.Printf("apply route failed: date=%s err=%v", date, err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	route, ok := services.OptimizeRoute(strategy, activities)
	if !ok {
		writeError(w, r, http.StatusUnprocessableEntity, "not enough located stops to optimize")
		return
	}

	applied := services.ApplyRoute(activities, route)

	res := dto.ApplyRouteResponse{
		Route:      toRouteResponse(route),
		Activities: toActivityResponses(applied),
	}
	writeJSON(w, r, http.StatusOK, res)
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(v); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return false
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return false
	}
	return true
}

func requireDate(w http.ResponseWriter, r *http.Request, raw string) (string, bool) {
	date := strings.TrimSpace(raw)
	if date == "" {
		writeError(w, r, http.StatusBadRequest, "date is required")
		return "", false
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		writeError(w, r, http.StatusBadRequest, "date must be YYYY-MM-DD")
		return "", false
	}
	return date, true
}

func validStrategy(s string) bool {
	switch s {
	case domain.StrategyNearestNeighbor, domain.StrategyCategoryCluster, domain.StrategyTimeAware:
		return true
	}
	return false
}

func toRouteResponse(route domain.OptimizedRoute) dto.RouteResponse {
	return dto.RouteResponse{
		Strategy:                route.Strategy,
		OriginalOrder:           route.OriginalOrder,
		OptimizedOrder:          route.OptimizedOrder,
		OriginalDistanceMeters:  route.OriginalDistanceMeters,
		OptimizedDistanceMeters: route.OptimizedDistanceMeters,
		Savings: dto.RouteSavingsResponse{
			DistanceSavedMeters:   route.Savings.DistanceSavedMeters,
			TimeSavedMinutes:      route.Savings.TimeSavedMinutes,
			EfficiencyGainPercent: route.Savings.EfficiencyGainPercent,
		},
	}
}
