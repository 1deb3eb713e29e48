package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Supported values of DATA_BACKEND.
const (
	BackendPostgres = "postgres"
	BackendSQLite   = "sqlite"
)

// Config holds application configuration.
type Config struct {
	Port         string
	IsProduction bool
	LogLevel     slog.Level
	RateLimit    string // ulule/limiter format, e.g. "100-M"

	DataBackend   string
	DatabaseURL   string
	EnableDBCheck bool
	SQLitePath    string

	FrontendBaseURL string
	ReportLocation  *time.Location

	AMQPURL           string
	AMQPExchange      string
	AMQPRoutingPrefix string
}

// LoadConfig loads configuration from environment variables and .env file if present.
// Real environment variables win over .env values, which win over defaults.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("RATE_LIMIT", "300-M")
	v.SetDefault("DATA_BACKEND", BackendSQLite)
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("ENABLE_DB_CHECK", false)
	v.SetDefault("SQLITE_DB_PATH", "pocket_ledger.db")
	v.SetDefault("FRONTEND_BASE_URL", "http://localhost:3000")
	v.SetDefault("REPORT_TIMEZONE", "UTC")
	v.SetDefault("AMQP_URL", "")
	v.SetDefault("AMQP_EXCHANGE", "pocket_ledger")
	v.SetDefault("AMQP_ROUTING_PREFIX", "ledger")
	v.AutomaticEnv()

	cfg := &Config{
		Port:              v.GetString("PORT"),
		IsProduction:      v.GetBool("IS_PRODUCTION"),
		RateLimit:         v.GetString("RATE_LIMIT"),
		DataBackend:       strings.ToLower(strings.TrimSpace(v.GetString("DATA_BACKEND"))),
		DatabaseURL:       v.GetString("PGSQL_URL"),
		EnableDBCheck:     v.GetBool("ENABLE_DB_CHECK"),
		SQLitePath:        v.GetString("SQLITE_DB_PATH"),
		FrontendBaseURL:   v.GetString("FRONTEND_BASE_URL"),
		AMQPURL:           v.GetString("AMQP_URL"),
		AMQPExchange:      v.GetString("AMQP_EXCHANGE"),
		AMQPRoutingPrefix: v.GetString("AMQP_ROUTING_PREFIX"),
	}

	var problems []error

	if err := cfg.LogLevel.UnmarshalText([]byte(v.GetString("LOG_LEVEL"))); err != nil {
		problems = append(problems, fmt.Errorf("LOG_LEVEL: %w", err))
	}

	loc, err := time.LoadLocation(v.GetString("REPORT_TIMEZONE"))
	if err != nil {
		problems = append(problems, fmt.Errorf("REPORT_TIMEZONE: %w", err))
	}
	cfg.ReportLocation = loc

	if err := cfg.Validate(); err != nil {
		problems = append(problems, err)
	}
	if len(problems) > 0 {
		return nil, errors.Join(problems...)
	}

	return cfg, nil
}

// Validate checks that the selected backend has what it needs.
func (c *Config) Validate() error {
	var problems []error

	if c.Port == "" {
		problems = append(problems, errors.New("PORT must not be empty"))
	}
	switch c.DataBackend {
	case BackendPostgres:
		if c.DatabaseURL == "" {
			problems = append(problems, errors.New("PGSQL_URL is required when DATA_BACKEND=postgres"))
		}
	case BackendSQLite:
		if c.SQLitePath == "" {
			problems = append(problems, errors.New("SQLITE_DB_PATH is required when DATA_BACKEND=sqlite"))
		}
	default:
		problems = append(problems, fmt.Errorf("DATA_BACKEND must be %q or %q, got %q", BackendPostgres, BackendSQLite, c.DataBackend))
	}
	if c.AMQPURL != "" && c.AMQPExchange == "" {
		problems = append(problems, errors.New("AMQP_EXCHANGE is required when AMQP_URL is set"))
	}

	return errors.Join(problems...)
}

// EventsEnabled reports whether a broker is configured.
func (c *Config) EventsEnabled() bool {
	return c.AMQPURL != ""
}
