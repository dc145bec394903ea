package domain

// ConflictKind is a closed enum so renderers can switch exhaustively over
// every kind of scheduling problem.
type ConflictKind string

const (
	ConflictOverlap            ConflictKind = "overlap"
	ConflictInsufficientTravel ConflictKind = "insufficient_travel"
	ConflictClosedVenue        ConflictKind = "closed_venue"
	ConflictMealTiming         ConflictKind = "meal_timing"
)

type Severity string

const (
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Resolution is a candidate fix offered alongside a conflict. New boundary
// times are optional; an empty string means the resolution does not move
// that boundary. Resolutions are only ever proposed, never auto-applied.
type Resolution struct {
	Description string
	NewStart    string
	NewEnd      string
}

// Conflict is a detected scheduling problem with severity, the implicated
// activities and candidate resolutions.
type Conflict struct {
	Kind        ConflictKind
	Severity    Severity
	Message     string
	ActivityIDs []string
	Resolutions []Resolution
}
