package app

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/moodpulse/config"
	"github.com/guttosm/moodpulse/internal/api"
	"github.com/guttosm/moodpulse/internal/logger"
	"github.com/guttosm/moodpulse/internal/middleware"
	"github.com/guttosm/moodpulse/internal/service"
	"github.com/guttosm/moodpulse/internal/storage"
	"github.com/guttosm/moodpulse/internal/storage/memory"
	"github.com/guttosm/moodpulse/internal/storage/migrations"
)

// migrator is an indirection used by InitializeApp; overridden in tests.
var migrator = migrations.Up

// InitializeApp sets up all application dependencies and returns
// a fully configured Gin router, a cleanup function for graceful shutdown,
// and any error encountered during initialization.
//
// Responsibilities:
//   - Opens the mood store selected by STORE_DRIVER (postgres or memory).
//   - Applies embedded migrations when AUTO_MIGRATE is set (postgres only).
//   - Builds the mood service with the configured timezone and history bound.
//   - Configures the Gin router with all API routes and health probes.
//   - Provides a cleanup function to close resources (e.g., DB connection).
//
// Returns:
//   - *gin.Engine: the configured Gin HTTP router.
//   - func(): cleanup function to be executed on shutdown.
//   - error: any initialization error that occurred.
func InitializeApp() (*gin.Engine, func(), error) {
	// Load global configuration
	cfg := config.AppConfig

	loc, err := resolveLocation(cfg.Mood.Timezone)
	if err != nil {
		return nil, nil, err
	}

	repo, cleanup, err := openStore(cfg)
	if err != nil {
		return nil, nil, err
	}

	// Initialize service layer (business logic)
	svc := service.NewMoodService(repo,
		service.WithLocation(loc),
		service.WithMaxHistoryDays(cfg.Mood.HistoryMaxDays),
	)

	// Initialize HTTP handler layer (business logic to HTTP mapping)
	handler := api.NewHandler(svc)

	// Setup Gin router with routes
	middleware.SetRateLimit(cfg.Server.RateLimitPerMinute)
	router := api.NewRouter(handler)

	// Register health and readiness probes
	api.NewHealthHandler(repo.Ping).Register(router)

	logger.L().Info().
		Str("store", storeDriver(cfg)).
		Str("timezone", loc.String()).
		Int("history_max_days", cfg.Mood.HistoryMaxDays).
		Msg("app initialized")

	return router, cleanup, nil
}

// openStore builds the configured mood repository and its cleanup callback.
func openStore(cfg config.Config) (storage.MoodRepository, func(), error) {
	if storeDriver(cfg) == config.DriverMemory {
		logger.L().Warn().Msg("using in-memory mood store; entries are lost on restart")
		return memory.New(), func() {}, nil
	}

	// Connect to PostgreSQL
	// indirection for unit testing
	db, err := postgresOpener(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize postgres: %w", err)
	}

	if cfg.Store.AutoMigrate {
		if err := runMigrations(db); err != nil {
			_ = db.Close()
			return nil, nil, err
		}
	}

	// Cleanup resources on shutdown
	cleanup := func() {
		_ = db.Close()
	}
	return storage.NewMoodRepository(db), cleanup, nil
}

// RunMigrations connects to PostgreSQL with cfg and applies pending migrations.
func RunMigrations(cfg config.Config) error {
	db, err := postgresOpener(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize postgres: %w", err)
	}
	defer func() { _ = db.Close() }()
	return runMigrations(db)
}

func runMigrations(db *sql.DB) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	if err := migrator(ctx, db); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	return nil
}

// storeDriver defaults an unset driver to postgres.
func storeDriver(cfg config.Config) string {
	if cfg.Store.Driver == "" {
		return config.DriverPostgres
	}
	return cfg.Store.Driver
}

// resolveLocation maps an IANA zone name to a location; empty means process-local.
func resolveLocation(name string) (*time.Location, error) {
	if name == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("invalid APP_TIMEZONE %q: %w", name, err)
	}
	return loc, nil
}
