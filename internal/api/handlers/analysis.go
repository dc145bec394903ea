package handlers

import (
	"itinerary-planner-service/internal/api/dto"
	"itinerary-planner-service/internal/ports"
	"itinerary-planner-service/internal/services"
	"log"
	"net/http"
)

type AnalysisHandler struct {
	Repo    ports.ActivityRepository
	Fetcher *services.TravelTimeFetcher
}

// Analyze runs the full scheduling engine over one day: commute segments
// with travel times, conflicts, overlap layout, free-time gaps and the
// efficiency score.
func (h *AnalysisHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.AnalysisRequest
	if !decodeBody(w, r, &req) {
		return
	}

	date, ok := requireDate(w, r, req.Date)
	if !ok {
		return
	}

	analysis, err := services.AnalyzeDay(r.Context(), date, h.Repo, h.Fetcher)
	if err != nil {
		log.Printf("analyze day failed: date=%s err=%v", date, err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, toAnalysisResponse(analysis))
}

func toAnalysisResponse(a *services.DayAnalysis) dto.AnalysisResponse {
	layoutByKey := make(map[string]services.SegmentLayout, len(a.Layout))
	for _, l := range a.Layout {
		layoutByKey[l.Key] = l
	}

	segments := make([]dto.SegmentResponse, 0, len(a.Segments))
	for _, s := range a.Segments {
		seg := dto.SegmentResponse{
			Key:        s.Key,
			FromID:     s.FromID,
			ToID:       s.ToID,
			Mode:       s.Mode,
			GapMinutes: s.GapMinutes,
		}
		if t := a.TravelTimes[s.Key]; t != nil {
			seg.TravelTime = &dto.TravelTimeResponse{
				DurationSeconds: t.DurationSeconds,
				DurationText:    t.DurationText,
				DistanceText:    t.DistanceText,
				Mode:            t.Mode,
			}
		}
		if l, ok := layoutByKey[s.Key]; ok {
			seg.Layout = &dto.LayoutResponse{
				Column:        l.Column,
				ColumnCount:   l.ColumnCount,
				TopMinutes:    l.TopMinutes,
				HeightMinutes: l.HeightMinutes,
			}
		}
		segments = append(segments, seg)
	}

	conflicts := make([]dto.ConflictResponse, 0, len(a.Conflicts))
	for _, c := range a.Conflicts {
		resolutions := make([]dto.ResolutionResponse, 0, len(c.Resolutions))
		for _, res := range c.Resolutions {
			resolutions = append(resolutions, dto.ResolutionResponse{
				Description: res.Description,
				NewStart:    res.NewStart,
				NewEnd:      res.NewEnd,
			})
		}
		conflicts = append(conflicts, dto.ConflictResponse{
			Kind:        string(c.Kind),
			Severity:    string(c.Severity),
			Message:     c.Message,
			ActivityIDs: c.ActivityIDs,
			Resolutions: resolutions,
		})
	}

	gaps := make([]dto.GapResponse, 0, len(a.Gaps))
	for _, g := range a.Gaps {
		suggestions := make([]dto.SuggestionResponse, 0, len(g.Suggestions))
		for _, s := range g.Suggestions {
			suggestions = append(suggestions, dto.SuggestionResponse{
				Text:            s.Text,
				Priority:        string(s.Priority),
				DurationMinutes: s.DurationMinutes,
			})
		}
		gaps = append(gaps, dto.GapResponse{
			StartTime:       g.StartTime,
			EndTime:         g.EndTime,
			DurationMinutes: g.DurationMinutes,
			Category:        string(g.Category),
			MealOverlap:     g.MealOverlap,
			Suggestions:     suggestions,
		})
	}

	return dto.AnalysisResponse{
		Date:       a.Date,
		Activities: toActivityResponses(a.Activities),
		Segments:   segments,
		Conflicts:  conflicts,
		Gaps:       gaps,
		Efficiency: dto.EfficiencyResponse{
			Score:          a.Efficiency.Score,
			ActiveMinutes:  a.Efficiency.ActiveMinutes,
			TravelMinutes:  a.Efficiency.TravelMinutes,
			FreeMinutes:    a.Efficiency.FreeMinutes,
			ActivityCount:  a.Efficiency.ActivityCount,
			Recommendation: string(a.Efficiency.Recommendation),
			Suggestions:    a.Efficiency.Suggestions,
		},
	}
}
