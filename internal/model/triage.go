package model

type TriageSeverity string

const (
	TriageSeverityMild     TriageSeverity = "mild"
	TriageSeverityModerate TriageSeverity = "moderate"
	TriageSeveritySevere   TriageSeverity = "severe"
)

type TriageRequest struct {
	Symptom  string         `json:"symptom" binding:"required"`
	Severity TriageSeverity `json:"severity" binding:"required,oneof=mild moderate severe"`
	Duration string         `json:"duration" binding:"required"`
}

// TriageSuggestion is the department recommendation produced by the
// rule table, with a coarse confidence label.
type TriageSuggestion struct {
	Service    string `json:"service"`
	Department string `json:"department"`
	Confidence string `json:"confidence"`
}
