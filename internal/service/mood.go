package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/guttosm/moodpulse/internal/domain/models"
	"github.com/guttosm/moodpulse/internal/logger"
	"github.com/guttosm/moodpulse/internal/storage"
)

const (
	MinRating        = 1
	MaxRating        = 10
	GoodDayThreshold = 7
	StatsWindowDays  = 30
	StatsPeriod      = "Last 30 days"

	DefaultHistoryDays    = 30
	DefaultMaxHistoryDays = 365
)

// ErrInvalidArgument reports caller input the service refuses to act on.
var ErrInvalidArgument = errors.New("invalid argument")

// MoodService defines the mood-log business rules.
type MoodService interface {
	LogMood(ctx context.Context, rating *int, note *string) (*models.MoodEntry, error)
	GetTodaysMood(ctx context.Context) (*models.MoodEntry, error)
	GetMoodHistory(ctx context.Context, days int) ([]models.MoodEntry, error)
	GetMoodStats(ctx context.Context) (*models.MoodStats, error)
}

// Option configures a moodService.
type Option func(*moodService)

// WithClock replaces time.Now as the source of "today".
func WithClock(now func() time.Time) Option {
	return func(s *moodService) {
		if now != nil {
			s.now = now
		}
	}
}

// WithLocation sets the zone used to resolve the calendar date.
func WithLocation(loc *time.Location) Option {
	return func(s *moodService) {
		if loc != nil {
			s.loc = loc
		}
	}
}

// WithMaxHistoryDays bounds history requests; larger values are clamped.
func WithMaxHistoryDays(n int) Option {
	return func(s *moodService) {
		if n > 0 {
			s.maxHistoryDays = n
		}
	}
}

type moodService struct {
	repo           storage.MoodRepository
	now            func() time.Time
	loc            *time.Location
	maxHistoryDays int
	log            zerolog.Logger
}

func NewMoodService(repo storage.MoodRepository, opts ...Option) MoodService {
	s := &moodService{
		repo:           repo,
		now:            time.Now,
		loc:            time.Local,
		maxHistoryDays: DefaultMaxHistoryDays,
		log:            logger.Component("mood_service"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *moodService) today() time.Time {
	return models.DateOf(s.now(), s.loc)
}

// LogMood records today's mood. A second call on the same day overwrites the
// first one's rating and note.
func (s *moodService) LogMood(ctx context.Context, rating *int, note *string) (*models.MoodEntry, error) {
	if rating == nil {
		return nil, fmt.Errorf("%w: rating is required", ErrInvalidArgument)
	}
	if *rating < MinRating || *rating > MaxRating {
		return nil, fmt.Errorf("%w: rating must be between %d and %d, got %d", ErrInvalidArgument, MinRating, MaxRating, *rating)
	}

	today := s.today()
	entry, err := s.repo.FindByDate(ctx, today)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		entry = &models.MoodEntry{Date: today}
	}
	entry.Rating = *rating
	entry.Note = note

	saved, err := s.repo.Save(ctx, *entry)
	if err != nil {
		return nil, err
	}
	s.log.Debug().
		Int64("id", saved.ID).
		Str("date", today.Format(models.DateLayout)).
		Int("rating", saved.Rating).
		Bool("updated", entry.ID != 0).
		Msg("mood logged")
	return saved, nil
}

// GetTodaysMood returns nil when nothing has been logged today.
func (s *moodService) GetTodaysMood(ctx context.Context) (*models.MoodEntry, error) {
	return s.repo.FindByDate(ctx, s.today())
}

// GetMoodHistory returns entries in [today-(days-1), today], newest first.
// days must be positive; values above the configured maximum are clamped.
func (s *moodService) GetMoodHistory(ctx context.Context, days int) ([]models.MoodEntry, error) {
	if days < 1 {
		return nil, fmt.Errorf("%w: days must be positive, got %d", ErrInvalidArgument, days)
	}
	if days > s.maxHistoryDays {
		s.log.Debug().Int("requested", days).Int("max", s.maxHistoryDays).Msg("history window clamped")
		days = s.maxHistoryDays
	}
	end := s.today()
	start := end.AddDate(0, 0, -(days - 1))
	return s.repo.FindByDateRange(ctx, start, end)
}

// GetMoodStats summarises the window [today-30, today].
func (s *moodService) GetMoodStats(ctx context.Context) (*models.MoodStats, error) {
	end := s.today()
	start := end.AddDate(0, 0, -StatsWindowDays)

	var (
		avg      *float64
		goodDays int64
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		avg, err = s.repo.AverageRating(gctx, start, end)
		return err
	})
	g.Go(func() error {
		var err error
		goodDays, err = s.repo.CountAtOrAbove(gctx, GoodDayThreshold, start)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	stats := &models.MoodStats{GoodDaysCount: goodDays, Period: StatsPeriod}
	if avg != nil {
		stats.AverageRating = round2(*avg)
	}
	return stats, nil
}

// round2 rounds half up to two decimals.
func round2(v float64) float64 {
	return math.Floor(v*100+0.5) / 100
}
