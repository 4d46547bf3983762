package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/guttosm/moodpulse/internal/domain/models"
)

// MoodRepository defines contract for mood persistence.
//
// Dates are compared by calendar day only; the time component of the
// arguments is ignored.
type MoodRepository interface {
	FindByDate(ctx context.Context, date time.Time) (*models.MoodEntry, error)
	FindByDateRange(ctx context.Context, start, end time.Time) ([]models.MoodEntry, error)
	AverageRating(ctx context.Context, start, end time.Time) (*float64, error)
	CountAtOrAbove(ctx context.Context, threshold int, since time.Time) (int64, error)
	Save(ctx context.Context, entry models.MoodEntry) (*models.MoodEntry, error)
	Ping(ctx context.Context) error
}

const moodColumns = `id, mood_date, rating, note`

type moodRepository struct {
	db *sqlx.DB
}

// NewMoodRepository wraps an open PostgreSQL handle (lib/pq driver).
func NewMoodRepository(db *sql.DB) MoodRepository {
	return &moodRepository{db: sqlx.NewDb(db, "postgres")}
}

// sqlDate renders the calendar day of t for a ::date parameter, so the
// session time zone never shifts it.
func sqlDate(t time.Time) string {
	return t.Format(models.DateLayout)
}

// FindByDate returns the entry for the given day, or nil if none exists.
func (r *moodRepository) FindByDate(ctx context.Context, date time.Time) (*models.MoodEntry, error) {
	var e models.MoodEntry
	err := r.db.GetContext(ctx, &e,
		`SELECT `+moodColumns+` FROM moods WHERE mood_date = $1::date`, sqlDate(date))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find mood by date: %w", err)
	}
	return &e, nil
}

// FindByDateRange returns entries with start <= date <= end, newest first.
func (r *moodRepository) FindByDateRange(ctx context.Context, start, end time.Time) ([]models.MoodEntry, error) {
	entries := []models.MoodEntry{}
	err := r.db.SelectContext(ctx, &entries, `
		SELECT `+moodColumns+`
		FROM moods
		WHERE mood_date BETWEEN $1::date AND $2::date
		ORDER BY mood_date DESC`, sqlDate(start), sqlDate(end))
	if err != nil {
		return nil, fmt.Errorf("find moods by range: %w", err)
	}
	return entries, nil
}

// AverageRating returns the mean rating over the inclusive range,
// or nil when the range holds no entries.
func (r *moodRepository) AverageRating(ctx context.Context, start, end time.Time) (*float64, error) {
	var avg sql.NullFloat64
	err := r.db.QueryRowContext(ctx,
		`SELECT AVG(rating)::float8 FROM moods WHERE mood_date BETWEEN $1::date AND $2::date`,
		sqlDate(start), sqlDate(end)).Scan(&avg)
	if err != nil {
		return nil, fmt.Errorf("average rating: %w", err)
	}
	if !avg.Valid {
		return nil, nil
	}
	return &avg.Float64, nil
}

// CountAtOrAbove counts entries rated >= threshold on or after since.
func (r *moodRepository) CountAtOrAbove(ctx context.Context, threshold int, since time.Time) (int64, error) {
	var n int64
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM moods WHERE rating >= $1 AND mood_date >= $2::date`,
		threshold, sqlDate(since)).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count moods at or above %d: %w", threshold, err)
	}
	return n, nil
}

// Save updates the row with entry.ID in place, or inserts a new row when
// entry.ID is zero or no longer stored.
//
// The insert resolves a concurrent insert for the same date by overwriting
// it (last write wins) instead of failing on the unique constraint.
func (r *moodRepository) Save(ctx context.Context, entry models.MoodEntry) (*models.MoodEntry, error) {
	var saved models.MoodEntry

	if entry.ID != 0 {
		err := r.db.GetContext(ctx, &saved, `
			UPDATE moods
			SET rating = $2, note = $3, updated_at = NOW()
			WHERE id = $1
			RETURNING `+moodColumns, entry.ID, entry.Rating, entry.Note)
		if err == nil {
			return &saved, nil
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("update mood %d: %w", entry.ID, err)
		}
	}

	err := r.db.GetContext(ctx, &saved, `
		INSERT INTO moods (mood_date, rating, note)
		VALUES ($1::date, $2, $3)
		ON CONFLICT (mood_date)
		DO UPDATE SET rating = EXCLUDED.rating,
		              note = EXCLUDED.note,
		              updated_at = NOW()
		RETURNING `+moodColumns, sqlDate(entry.Date), entry.Rating, entry.Note)
	if err != nil {
		return nil, fmt.Errorf("insert mood for %s: %w", sqlDate(entry.Date), err)
	}
	return &saved, nil
}

// Ping verifies database connectivity.
func (r *moodRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}
