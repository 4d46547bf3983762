package dto

import "github.com/guttosm/moodpulse/internal/domain/models"

// LogMoodRequest is the body accepted by POST /api/mood.
//
// Both fields are optional at the transport level; a missing rating is
// rejected by the service.
type LogMoodRequest struct {
	Rating *int    `json:"rating" example:"8"`
	Note   *string `json:"note" example:"long walk by the river"`
}

// MoodEntryResponse represents one mood entry as returned by the API.
//
// Fields match the API contract and may differ from internal domain models.
type MoodEntryResponse struct {
	ID     int64   `json:"id" example:"1"`
	Date   string  `json:"date" example:"2025-09-12"` // Calendar date, YYYY-MM-DD
	Rating int     `json:"rating" example:"8"`
	Note   *string `json:"note" example:"long walk by the river"` // null when absent
}

// NewMoodEntryResponse maps a domain entry to its JSON shape.
func NewMoodEntryResponse(e models.MoodEntry) MoodEntryResponse {
	return MoodEntryResponse{
		ID:     e.ID,
		Date:   e.Date.Format(models.DateLayout),
		Rating: e.Rating,
		Note:   e.Note,
	}
}

// NewMoodHistoryResponse maps entries preserving order. Never returns nil so
// an empty history encodes as [].
func NewMoodHistoryResponse(entries []models.MoodEntry) []MoodEntryResponse {
	out := make([]MoodEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, NewMoodEntryResponse(e))
	}
	return out
}
