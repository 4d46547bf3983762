package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/guttosm/moodpulse/internal/domain/models"
)

func TestNewMoodEntryResponse_JSONShape(t *testing.T) {
	note := "sunny"
	cases := []struct {
		name  string
		entry models.MoodEntry
		want  string
	}{
		{
			name:  "with note",
			entry: models.MoodEntry{ID: 3, Date: time.Date(2025, 9, 12, 0, 0, 0, 0, time.UTC), Rating: 8, Note: &note},
			want:  `{"id":3,"date":"2025-09-12","rating":8,"note":"sunny"}`,
		},
		{
			name:  "without note",
			entry: models.MoodEntry{ID: 4, Date: time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC), Rating: 1},
			want:  `{"id":4,"date":"2025-01-02","rating":1,"note":null}`,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b, err := json.Marshal(NewMoodEntryResponse(tc.entry))
			if err != nil {
				t.Fatalf("marshal: %v", err)
			}
			if string(b) != tc.want {
				t.Fatalf("got %s, want %s", b, tc.want)
			}
		})
	}
}

func TestNewMoodHistoryResponse_EmptyIsArray(t *testing.T) {
	b, err := json.Marshal(NewMoodHistoryResponse(nil))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != "[]" {
		t.Fatalf("got %s, want []", b)
	}
}
