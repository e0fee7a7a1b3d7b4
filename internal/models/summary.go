package models

// SummaryRequest is the body of POST /api/generate-summary.
type SummaryRequest struct {
	Content string `json:"content"`
	Prompt  string `json:"prompt"`
}

// SummaryResult holds a non-empty generated summary.
type SummaryResult struct {
	Summary string `json:"summary"`
}
