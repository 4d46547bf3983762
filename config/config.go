package config

import (
	"fmt"
	"log"
	"strings"

	"github.com/spf13/viper"
)

// Config holds the full application configuration loaded from environment variables or .env file.
//
// It is composed of smaller structs that represent different concerns of the system,
// such as server settings, mood-log behaviour and Postgres database connection details.
//
// Example YAML/ENV equivalent:
//
//	SERVER_PORT=8080
//	RATE_LIMIT_PER_MINUTE=60
//	STORE_DRIVER=postgres
//	AUTO_MIGRATE=true
//	APP_TIMEZONE=Europe/Lisbon
//	HISTORY_MAX_DAYS=365
//	POSTGRES_HOST=localhost
//	POSTGRES_PORT=5432
//	POSTGRES_USER=admin
//	POSTGRES_PASSWORD=secret
//	POSTGRES_DB=moodpulse
//	POSTGRES_SSLMODE=disable
type Config struct {
	Server   ServerConfig   // HTTP server configuration
	Mood     MoodConfig     // Mood-log behaviour
	Store    StoreConfig    // Storage backend selection
	Postgres PostgresConfig // PostgreSQL connection settings
}

// ServerConfig holds HTTP server settings such as the port to listen on.
type ServerConfig struct {
	Port               string // The TCP port the HTTP server will listen on (e.g., "8080")
	RateLimitPerMinute int    // Requests allowed per client IP per minute
}

// MoodConfig controls how "today" is resolved and how far back history may reach.
//
// Fields:
//   - Timezone: IANA zone name used to resolve the calendar date; empty means process-local.
//   - HistoryMaxDays: upper bound for the days query parameter; larger values are clamped.
type MoodConfig struct {
	Timezone       string
	HistoryMaxDays int
}

// StoreConfig selects the mood store implementation.
//
// Fields:
//   - Driver: "postgres" (default) or "memory".
//   - AutoMigrate: apply embedded migrations before serving.
type StoreConfig struct {
	Driver      string
	AutoMigrate bool
}

// PostgresConfig defines connection details for PostgreSQL.
//
// Fields:
//   - Host: hostname of the database server.
//   - Port: port number of the database server (default 5432).
//   - User: username for authentication.
//   - Password: password for authentication.
//   - DBName: target database name.
//   - SSLMode: SSL mode (e.g., "disable", "require").
//   - URL: computed DSN used by database/sql to connect.
type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
	URL      string
}

const (
	// DriverPostgres selects the database/sql backed store.
	DriverPostgres = "postgres"
	// DriverMemory selects the in-process store (data is lost on restart).
	DriverMemory = "memory"
)

// AppConfig is the globally accessible configuration instance.
//
// It is populated once via LoadConfig() and used throughout the application.
// All services should import this package and read from AppConfig instead of
// reloading environment variables directly.
var AppConfig Config

// LoadConfig initializes the global AppConfig by reading from .env file
// or directly from environment variables.
//
// Precedence (from lowest to highest):
//  1. Defaults set in this function.
//  2. Values from .env file (if present).
//  3. Environment variables.
//
// Fatal exit:
//   - If required variables are missing, validateConfig() will terminate the app
//     with a descriptive log message.
func LoadConfig() {
	// Default values
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("RATE_LIMIT_PER_MINUTE", 60)

	viper.SetDefault("APP_TIMEZONE", "")
	viper.SetDefault("HISTORY_MAX_DAYS", 365)

	viper.SetDefault("STORE_DRIVER", DriverPostgres)
	viper.SetDefault("AUTO_MIGRATE", true)

	viper.SetDefault("POSTGRES_HOST", "localhost")
	viper.SetDefault("POSTGRES_PORT", 5432)
	viper.SetDefault("POSTGRES_USER", "postgres")
	viper.SetDefault("POSTGRES_PASSWORD", "postgres")
	viper.SetDefault("POSTGRES_DB", "moodpulse")
	viper.SetDefault("POSTGRES_SSLMODE", "disable")

	// Optionally read from .env if present (common in local dev)
	viper.SetConfigFile(".env")
	_ = viper.ReadInConfig() // ignore error if no .env

	// Read environment variables automatically
	viper.AutomaticEnv()

	// Populate global config instance
	AppConfig = Config{
		Server: ServerConfig{
			Port:               viper.GetString("SERVER_PORT"),
			RateLimitPerMinute: viper.GetInt("RATE_LIMIT_PER_MINUTE"),
		},
		Mood: MoodConfig{
			Timezone:       viper.GetString("APP_TIMEZONE"),
			HistoryMaxDays: viper.GetInt("HISTORY_MAX_DAYS"),
		},
		Store: StoreConfig{
			Driver:      strings.ToLower(strings.TrimSpace(viper.GetString("STORE_DRIVER"))),
			AutoMigrate: viper.GetBool("AUTO_MIGRATE"),
		},
		Postgres: PostgresConfig{
			Host:     viper.GetString("POSTGRES_HOST"),
			Port:     viper.GetInt("POSTGRES_PORT"),
			User:     viper.GetString("POSTGRES_USER"),
			Password: viper.GetString("POSTGRES_PASSWORD"),
			DBName:   viper.GetString("POSTGRES_DB"),
			SSLMode:  viper.GetString("POSTGRES_SSLMODE"),
		},
	}

	// Construct Postgres DSN (used by database/sql)
	AppConfig.Postgres.URL = AppConfig.Postgres.DSN()

	// Validate critical fields
	validateConfig()
}

// DSN builds the PostgreSQL connection string from the individual fields.
func (p PostgresConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		p.User,
		p.Password,
		p.Host,
		p.Port,
		p.DBName,
		p.SSLMode,
	)
}

// validateConfig ensures required variables are present and terminates
// the application if they are missing or invalid.
//
// Postgres settings are only required when the postgres driver is selected.
func validateConfig() {
	if missing := missingKeys(AppConfig); len(missing) > 0 {
		log.Fatalf("❌ Missing or invalid environment variables: %v\n", missing)
	}
}

// missingKeys returns the names of required variables that are absent or invalid in cfg.
func missingKeys(cfg Config) []string {
	var missing []string

	if cfg.Server.Port == "" {
		missing = append(missing, "SERVER_PORT")
	}
	if cfg.Mood.HistoryMaxDays < 1 {
		missing = append(missing, "HISTORY_MAX_DAYS")
	}

	switch cfg.Store.Driver {
	case DriverMemory:
		return missing
	case DriverPostgres:
	default:
		return append(missing, "STORE_DRIVER")
	}

	if cfg.Postgres.Host == "" {
		missing = append(missing, "POSTGRES_HOST")
	}
	if cfg.Postgres.Port == 0 {
		missing = append(missing, "POSTGRES_PORT")
	}
	if cfg.Postgres.User == "" {
		missing = append(missing, "POSTGRES_USER")
	}
	if cfg.Postgres.Password == "" {
		missing = append(missing, "POSTGRES_PASSWORD")
	}
	if cfg.Postgres.DBName == "" {
		missing = append(missing, "POSTGRES_DB")
	}

	return missing
}
