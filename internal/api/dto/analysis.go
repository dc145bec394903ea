package dto

type AnalysisRequest struct {
	Date string `json:"date"`
}

type TravelTimeResponse struct {
	DurationSeconds int    `json:"duration_seconds"`
	DurationText    string `json:"duration_text"`
	DistanceText    string `json:"distance_text,omitempty"`
	Mode            string `json:"mode"`
}

type SegmentResponse struct {
	Key        string              `json:"key"`
	FromID     string              `json:"from_id"`
	ToID       string              `json:"to_id"`
	Mode       string              `json:"mode"`
	GapMinutes int                 `json:"gap_minutes"`
	TravelTime *TravelTimeResponse `json:"travel_time"`
	Layout     *LayoutResponse     `json:"layout,omitempty"`
}

type LayoutResponse struct {
	Column        int `json:"column"`
	ColumnCount   int `json:"column_count"`
	TopMinutes    int `json:"top_minutes"`
	HeightMinutes int `json:"height_minutes"`
}

type ResolutionResponse struct {
	Description string `json:"description"`
	NewStart    string `json:"new_start,omitempty"`
	NewEnd      string `json:"new_end,omitempty"`
}

type ConflictResponse struct {
	Kind        string               `json:"kind"`
	Severity    string               `json:"severity"`
	Message     string               `json:"message"`
	ActivityIDs []string             `json:"activity_ids"`
	Resolutions []ResolutionResponse `json:"resolutions,omitempty"`
}

type SuggestionResponse struct {
	Text            string `json:"text"`
	Priority        string `json:"priority"`
	DurationMinutes int    `json:"duration_minutes"`
}

type GapResponse struct {
	StartTime       string               `json:"start_time"`
	EndTime         string               `json:"end_time"`
	DurationMinutes int                  `json:"duration_minutes"`
	Category        string               `json:"category"`
	MealOverlap     bool                 `json:"meal_overlap"`
	Suggestions     []SuggestionResponse `json:"suggestions"`
}

type EfficiencyResponse struct {
	Score          int      `json:"score"`
	ActiveMinutes  int      `json:"active_minutes"`
	TravelMinutes  int      `json:"travel_minutes"`
	FreeMinutes    int      `json:"free_minutes"`
	ActivityCount  int      `json:"activity_count"`
	Recommendation string   `json:"recommendation"`
	Suggestions    []string `json:"suggestions"`
}

type AnalysisResponse struct {
	Date       string             `json:"date"`
	Activities []ActivityResponse `json:"activities"`
	Segments   []SegmentResponse  `json:"segments"`
	Conflicts  []ConflictResponse `json:"conflicts"`
	Gaps       []GapResponse      `json:"gaps"`
	Efficiency EfficiencyResponse `json:"efficiency"`
}
