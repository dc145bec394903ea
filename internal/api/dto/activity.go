package dto

type CoordinatesResponse struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type ActivityResponse struct {
	ActivityID string               `json:"activity_id"`
	Name       string               `json:"name"`
	Date       string               `json:"date,omitempty"`
	StartTime  string               `json:"start_time,omitempty"`
	EndTime    string               `json:"end_time,omitempty"`
	Coords     *CoordinatesResponse `json:"coords,omitempty"`
	Categories []string             `json:"categories,omitempty"`
	Notes      string               `json:"notes,omitempty"`
	TravelMode string               `json:"travel_mode,omitempty"`
}

type ListActivitiesResponse struct {
	Activities []ActivityResponse `json:"activities"`
}
