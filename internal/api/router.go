package api

import (
	"itinerary-planner-service/internal/api/handlers"
	"itinerary-planner-service/internal/ports"
	"itinerary-planner-service/internal/services"
	"net/http"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(repo ports.ActivityRepository, fetcher *services.TravelTimeFetcher) http.Handler {
	mux := http.NewServeMux()

	activityHandler := &handlers.ActivityHandler{Repo: repo}
	analysisHandler := &handlers.AnalysisHandler{Repo: repo, Fetcher: fetcher}
	optimizeHandler := &handlers.OptimizeHandler{Repo: repo}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/activities", activityHandler.List)
	mux.HandleFunc("/analysis", analysisHandler.Analyze)
	mux.HandleFunc("/optimize", optimizeHandler.Optimize)
	mux.HandleFunc("/optimize/apply", optimizeHandler.Apply)

	return loggingMiddleware(mux)
}
