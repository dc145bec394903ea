package handlers

import (
	"itinerary-planner-service/internal/api/dto"
	"itinerary-planner-service/internal/domain"
	"itinerary-planner-service/internal/ports"
	"log"
	"net/http"
	"strings"
)

type ActivityHandler struct {
	Repo ports.ActivityRepository
}

// List returns the itinerary's activities; an optional ?date=YYYY-MM-DD
// query narrows it to one day.
func (h *ActivityHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var (
		activities []domain.Activity
		err        error
	)

	date := strings.TrimSpace(r.URL.Query().Get("date"))
	if date != "" {
		activities, err = h.Repo.ListActivitiesByDate(r.Context(), date)
	} else {
		activities, err = h.Repo.ListActivities(r.Context())
	}
	if err != nil {
		log.Printf("list activities failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListActivitiesResponse{Activities: toActivityResponses(activities)}
	writeJSON(w, r, http.StatusOK, res)
}

func toActivityResponses(activities []domain.Activity) []dto.ActivityResponse {
	out := make([]dto.ActivityResponse, 0, len(activities))
	for _, a := range activities {
		out = append(out, toActivityResponse(a))
	}
	return out
}

func toActivityResponse(a domain.Activity) dto.ActivityResponse {
	res := dto.ActivityResponse{
		ActivityID: a.ID,
		Name:       a.Name,
		Date:       a.Date,
		StartTime:  a.StartTime,
		EndTime:    a.EndTime,
		Categories: a.Categories,
		Notes:      a.Notes,
		TravelMode: a.TravelMode,
	}
	if a.Coords != nil {
		res.Coords = &dto.CoordinatesResponse{Lat: a.Coords.Lat, Lng: a.Coords.Lng}
	}
	return res
}
