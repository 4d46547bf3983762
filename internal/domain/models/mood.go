package models

import "time"

// DateLayout is the wire and storage representation of a calendar date.
const DateLayout = "2006-01-02"

// MoodEntry is the persisted record of one calendar day's mood.
//
// Fields:
//   - ID: store-assigned identifier, never reused. Zero means "not persisted yet".
//   - Date: calendar date at midnight; only year, month and day are meaningful. At most one entry per date.
//   - Rating: integer in [1,10].
//   - Note: optional free text; nil when absent.
type MoodEntry struct {
	ID     int64     `db:"id"`
	Date   time.Time `db:"mood_date"`
	Rating int       `db:"rating"`
	Note   *string   `db:"note"`
}

// MoodStats summarises the trailing statistics window.
//
// swagger:model MoodStats
type MoodStats struct {
	AverageRating float64 `json:"averageRating" example:"8.5"`
	GoodDaysCount int64   `json:"goodDaysCount" example:"2"`
	Period        string  `json:"period" example:"Last 30 days"`
}

// DateOf truncates t to its calendar date in loc (midnight, no time component).
func DateOf(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

// SameDate reports whether a and b fall on the same calendar day, ignoring zones.
func SameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
