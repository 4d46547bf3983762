package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/moodpulse/internal/domain/models"
	"github.com/guttosm/moodpulse/internal/storage"
	"github.com/guttosm/moodpulse/internal/storage/memory"
)

// fixedClock lets tests move "now" between calls.
type fixedClock struct{ t time.Time }

func (c *fixedClock) Now() time.Time { return c.t }

var dayD = time.Date(2025, 9, 12, 14, 30, 0, 0, time.UTC)

func newTestService(t *testing.T) (MoodService, *memory.Store, *fixedClock) {
	t.Helper()
	store := memory.New()
	clock := &fixedClock{t: dayD}
	svc := NewMoodService(store, WithClock(clock.Now), WithLocation(time.UTC))
	return svc, store, clock
}

func intPtr(v int) *int       { return &v }
func strPtr(s string) *string { return &s }

// stubRepo counts writes and returns canned errors.
type stubRepo struct {
	findErr  error
	avgErr   error
	countErr error
	saves    int
}

func (s *stubRepo) FindByDate(context.Context, time.Time) (*models.MoodEntry, error) {
	return nil, s.findErr
}
func (s *stubRepo) FindByDateRange(context.Context, time.Time, time.Time) ([]models.MoodEntry, error) {
	return []models.MoodEntry{}, nil
}
func (s *stubRepo) AverageRating(context.Context, time.Time, time.Time) (*float64, error) {
	return nil, s.avgErr
}
func (s *stubRepo) CountAtOrAbove(context.Context, int, time.Time) (int64, error) {
	return 0, s.countErr
}
func (s *stubRepo) Save(_ context.Context, e models.MoodEntry) (*models.MoodEntry, error) {
	s.saves++
	e.ID = 1
	return &e, nil
}
func (s *stubRepo) Ping(context.Context) error { return nil }

var _ storage.MoodRepository = (*stubRepo)(nil)

func TestLogMood_AcceptsEveryValidRating(t *testing.T) {
	for r := MinRating; r <= MaxRating; r++ {
		svc, _, _ := newTestService(t)
		got, err := svc.LogMood(context.Background(), intPtr(r), strPtr("note"))
		require.NoError(t, err, "rating %d", r)

		today, err := svc.GetTodaysMood(context.Background())
		require.NoError(t, err)
		require.NotNil(t, today)
		assert.Equal(t, r, today.Rating)
		assert.Equal(t, "note", *today.Note)
		assert.Equal(t, got.ID, today.ID)
		assert.Equal(t, "2025-09-12", today.Date.Format(models.DateLayout))
	}
}

func TestLogMood_RejectsInvalidRatingWithoutWriting(t *testing.T) {
	cases := []struct {
		name   string
		rating *int
	}{
		{name: "nil", rating: nil},
		{name: "zero", rating: intPtr(0)},
		{name: "negative", rating: intPtr(-3)},
		{name: "eleven", rating: intPtr(11)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := &stubRepo{}
			svc := NewMoodService(repo)
			got, err := svc.LogMood(context.Background(), tc.rating, nil)
			assert.Nil(t, got)
			assert.ErrorIs(t, err, ErrInvalidArgument)
			assert.Zero(t, repo.saves)
		})
	}
}

func TestLogMood_InvalidRatingKeepsExistingEntry(t *testing.T) {
	svc, store, _ := newTestService(t)
	_, err := svc.LogMood(context.Background(), intPtr(6), strPtr("before"))
	require.NoError(t, err)

	_, err = svc.LogMood(context.Background(), intPtr(42), strPtr("after"))
	require.ErrorIs(t, err, ErrInvalidArgument)

	today, err := svc.GetTodaysMood(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 6, today.Rating)
	assert.Equal(t, "before", *today.Note)
	assert.Equal(t, 1, store.Len())
}

func TestLogMood_SameDayLastWriteWins(t *testing.T) {
	svc, store, clock := newTestService(t)
	ctx := context.Background()

	first, err := svc.LogMood(ctx, intPtr(8), strPtr("morning"))
	require.NoError(t, err)

	clock.t = dayD.Add(5 * time.Hour)
	second, err := svc.LogMood(ctx, intPtr(5), nil)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 1, store.Len())

	today, err := svc.GetTodaysMood(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, today.Rating)
	assert.Nil(t, today.Note)

	history, err := svc.GetMoodHistory(ctx, 1)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, 5, history[0].Rating)
}

func TestLogMood_StoreErrorPropagates(t *testing.T) {
	boom := errors.New("db down")
	repo := &stubRepo{findErr: boom}
	_, err := NewMoodService(repo).LogMood(context.Background(), intPtr(5), nil)
	assert.ErrorIs(t, err, boom)
	assert.Zero(t, repo.saves)
}

func TestGetTodaysMood_AbsentOnFreshDate(t *testing.T) {
	svc, _, clock := newTestService(t)
	ctx := context.Background()

	got, err := svc.GetTodaysMood(ctx)
	require.NoError(t, err)
	assert.Nil(t, got)

	_, err = svc.LogMood(ctx, intPtr(7), nil)
	require.NoError(t, err)

	clock.t = dayD.AddDate(0, 0, 1)
	got, err = svc.GetTodaysMood(ctx)
	require.NoError(t, err)
	assert.Nil(t, got, "yesterday's entry must not count as today's")
}

func TestGetMoodHistory_WindowAndOrder(t *testing.T) {
	svc, _, clock := newTestService(t)
	ctx := context.Background()

	// one entry per day for D-9 .. D
	for off := -9; off <= 0; off++ {
		clock.t = dayD.AddDate(0, 0, off)
		_, err := svc.LogMood(ctx, intPtr(5+off%5), nil)
		require.NoError(t, err)
	}
	clock.t = dayD

	history, err := svc.GetMoodHistory(ctx, 3)
	require.NoError(t, err)
	require.Len(t, history, 3)
	for i, e := range history {
		assert.True(t, models.SameDate(e.Date, dayD.AddDate(0, 0, -i)), "entry %d has date %v", i, e.Date)
	}
	for i := 1; i < len(history); i++ {
		assert.True(t, history[i-1].Date.After(history[i].Date), "history not strictly descending")
	}
}

func TestGetMoodHistory_DaysPolicy(t *testing.T) {
	svc, _, clock := newTestService(t)
	ctx := context.Background()

	history, err := svc.GetMoodHistory(ctx, DefaultHistoryDays)
	require.NoError(t, err)
	assert.NotNil(t, history)
	assert.Empty(t, history)

	for _, days := range []int{0, -1} {
		_, err := svc.GetMoodHistory(ctx, days)
		assert.ErrorIs(t, err, ErrInvalidArgument, "days=%d", days)
	}

	// A very large window is clamped to the configured maximum.
	store := memory.New()
	clamped := NewMoodService(store, WithClock(clock.Now), WithLocation(time.UTC), WithMaxHistoryDays(2))
	for off := -3; off <= 0; off++ {
		clock.t = dayD.AddDate(0, 0, off)
		_, err := clamped.LogMood(ctx, intPtr(4), nil)
		require.NoError(t, err)
	}
	history, err = clamped.GetMoodHistory(ctx, 1_000_000)
	require.NoError(t, err)
	assert.Len(t, history, 2)
}

func TestGetMoodStats(t *testing.T) {
	t.Run("empty window", func(t *testing.T) {
		svc, _, _ := newTestService(t)
		stats, err := svc.GetMoodStats(context.Background())
		require.NoError(t, err)
		assert.Equal(t, models.MoodStats{AverageRating: 0, GoodDaysCount: 0, Period: "Last 30 days"}, *stats)
	})

	t.Run("two good days", func(t *testing.T) {
		svc, _, clock := newTestService(t)
		ctx := context.Background()
		clock.t = dayD.AddDate(0, 0, -1)
		_, err := svc.LogMood(ctx, intPtr(8), nil)
		require.NoError(t, err)
		clock.t = dayD
		_, err = svc.LogMood(ctx, intPtr(9), nil)
		require.NoError(t, err)

		stats, err := svc.GetMoodStats(ctx)
		require.NoError(t, err)
		assert.Equal(t, 8.5, stats.AverageRating)
		assert.Equal(t, int64(2), stats.GoodDaysCount)
		assert.Equal(t, StatsPeriod, stats.Period)
	})

	t.Run("window boundaries and rounding", func(t *testing.T) {
		svc, _, clock := newTestService(t)
		ctx := context.Background()
		ratings := map[int]int{0: 7, -10: 6, -30: 7, -31: 10}
		for off, r := range ratings {
			clock.t = dayD.AddDate(0, 0, off)
			_, err := svc.LogMood(ctx, intPtr(r), nil)
			require.NoError(t, err)
		}
		clock.t = dayD

		stats, err := svc.GetMoodStats(ctx)
		require.NoError(t, err)
		// (7+6+7)/3 = 6.666.. ; D-31 is outside the window
		assert.Equal(t, 6.67, stats.AverageRating)
		assert.Equal(t, int64(2), stats.GoodDaysCount)
	})

	t.Run("store error", func(t *testing.T) {
		boom := errors.New("db down")
		_, err := NewMoodService(&stubRepo{countErr: boom}).GetMoodStats(context.Background())
		assert.ErrorIs(t, err, boom)
	})
}

func TestRound2(t *testing.T) {
	cases := []struct {
		in, want float64
	}{
		{8.5, 8.5},
		{6.666666, 6.67},
		{8.125, 8.13},
		{7.0, 7},
		{1.004, 1},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, round2(c.in), "round2(%v)", c.in)
	}
}
