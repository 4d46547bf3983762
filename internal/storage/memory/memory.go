// Package memory provides an in-process mood store used for local runs and tests.
// It implements storage.MoodRepository with the same semantics as the Postgres store.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/guttosm/moodpulse/internal/domain/models"
	"github.com/guttosm/moodpulse/internal/storage"
)

// Store keeps entries keyed by calendar day. Guarded by an RWMutex.
type Store struct {
	mu     sync.RWMutex
	byDate map[string]models.MoodEntry
	byID   map[int64]string
	nextID int64
}

var _ storage.MoodRepository = (*Store)(nil)

// New constructs an empty store.
func New() *Store {
	return &Store{
		byDate: make(map[string]models.MoodEntry),
		byID:   make(map[int64]string),
	}
}

func key(t time.Time) string { return t.Format(models.DateLayout) }

// dateOnly drops the time component but keeps the location.
func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// FindByDate implements storage.MoodRepository.
func (s *Store) FindByDate(_ context.Context, date time.Time) (*models.MoodEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.byDate[key(date)]
	if !ok {
		return nil, nil
	}
	return clone(e), nil
}

// FindByDateRange implements storage.MoodRepository.
func (s *Store) FindByDateRange(_ context.Context, start, end time.Time) ([]models.MoodEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	from, to := key(start), key(end)
	out := []models.MoodEntry{}
	for k, e := range s.byDate {
		// YYYY-MM-DD keys order lexically
		if k >= from && k <= to {
			out = append(out, *clone(e))
		}
	}
	sort.Slice(out, func(i, j int) bool { return key(out[i].Date) > key(out[j].Date) })
	return out, nil
}

// AverageRating implements storage.MoodRepository.
func (s *Store) AverageRating(_ context.Context, start, end time.Time) (*float64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	from, to := key(start), key(end)
	var sum, n int
	for k, e := range s.byDate {
		if k >= from && k <= to {
			sum += e.Rating
			n++
		}
	}
	if n == 0 {
		return nil, nil
	}
	avg := float64(sum) / float64(n)
	return &avg, nil
}

// CountAtOrAbove implements storage.MoodRepository.
func (s *Store) CountAtOrAbove(_ context.Context, threshold int, since time.Time) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	from := key(since)
	var n int64
	for k, e := range s.byDate {
		if k >= from && e.Rating >= threshold {
			n++
		}
	}
	return n, nil
}

// Save implements storage.MoodRepository. An entry whose ID is unknown is
// treated as new; a new entry for an already stored date overwrites it.
func (s *Store) Save(_ context.Context, entry models.MoodEntry) (*models.MoodEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if k, ok := s.byID[entry.ID]; ok && entry.ID != 0 {
		stored := s.byDate[k]
		stored.Rating = entry.Rating
		stored.Note = entry.Note
		s.byDate[k] = stored
		return clone(stored), nil
	}

	k := key(entry.Date)
	if stored, ok := s.byDate[k]; ok {
		stored.Rating = entry.Rating
		stored.Note = entry.Note
		s.byDate[k] = stored
		return clone(stored), nil
	}

	s.nextID++
	stored := models.MoodEntry{ID: s.nextID, Date: dateOnly(entry.Date), Rating: entry.Rating, Note: entry.Note}
	s.byDate[k] = stored
	s.byID[stored.ID] = k
	return clone(stored), nil
}

// Ping implements storage.MoodRepository; the store is always reachable.
func (s *Store) Ping(context.Context) error { return nil }

// Len returns the number of stored entries.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.byDate)
}

// clone copies e so callers cannot mutate stored notes.
func clone(e models.MoodEntry) *models.MoodEntry {
	c := e
	if e.Note != nil {
		n := *e.Note
		c.Note = &n
	}
	return &c
}
