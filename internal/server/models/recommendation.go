package models

// Recommendation is a scored snippet reference produced per-request by the
// recommendation service. It is never persisted.
type Recommendation struct {
	SnippetID int64   `json:"snippet_id"`
	Score     float64 `json:"score"`
}
