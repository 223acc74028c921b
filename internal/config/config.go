package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config aggregates runtime configuration for the dashboard service.
type Config struct {
	App      AppConfig
	Upstream UpstreamConfig
	Redis    RedisConfig
	Postgres PostgresConfig
	Auth     AuthConfig
	Logger   LoggerConfig
	Refresh  RefreshConfig
	Export   ExportConfig
}

// AppConfig controls server level behavior.
type AppConfig struct {
	Name                  string
	Env                   string
	Host                  string
	Port                  string
	Version               string
	RequestTimeoutSeconds int
}

// UpstreamConfig points at the remote helpdesk REST API.
type UpstreamConfig struct {
	BaseURL        string
	APIToken       string
	TimeoutSeconds int
}

// RedisConfig holds Redis connection values for the blob store.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// PostgresConfig selects the Postgres blob-store backend when DSN is set.
type PostgresConfig struct {
	DSN      string
	MaxConns int32
	MinConns int32
}

// AuthConfig defines token verification parameters.
type AuthConfig struct {
	JWTSecret string
}

// LoggerConfig configures logging behavior.
type LoggerConfig struct {
	Level string
}

// RefreshConfig drives the snapshot refresh worker.
type RefreshConfig struct {
	CronSpec          string
	StaleAfterSeconds int
}

// ExportConfig tunes CSV extraction.
type ExportConfig struct {
	ColumnsPath string
	MaxRows     int
}

// Load reads configuration from environment variables, applying defaults
// where possible.
func Load() (*Config, error) {
	_ = godotenv.Load()

	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	cfg := &Config{
		App: AppConfig{
			Name:                  getEnv("APP_NAME", "helpdesk-dashboard"),
			Env:                   getEnv("APP_ENV", "development"),
			Host:                  getEnv("APP_HOST", "0.0.0.0"),
			Port:                  getEnv("APP_PORT", "8080"),
			Version:               getEnv("APP_VERSION", "dev"),
			RequestTimeoutSeconds: getEnvAsInt("HTTP_REQUEST_TIMEOUT_SECONDS", 30),
		},
		Upstream: UpstreamConfig{
			BaseURL:        getEnv("UPSTREAM_BASE_URL", "http://127.0.0.1:8000/api"),
			APIToken:       os.Getenv("UPSTREAM_API_TOKEN"),
			TimeoutSeconds: getEnvAsInt("UPSTREAM_TIMEOUT_SECONDS", 30),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "127.0.0.1:6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       redisDB,
		},
		Postgres: PostgresConfig{
			DSN:      os.Getenv("POSTGRES_DSN"),
			MaxConns: int32(getEnvAsInt("POSTGRES_MAX_CONNS", 10)),
			MinConns: int32(getEnvAsInt("POSTGRES_MIN_CONNS", 2)),
		},
		Auth: AuthConfig{
			JWTSecret: getEnv("AUTH_JWT_SECRET", "dev-secret"),
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Refresh: RefreshConfig{
			CronSpec:          getEnv("SNAPSHOT_REFRESH_CRON", "@every 5m"),
			StaleAfterSeconds: getEnvAsInt("SNAPSHOT_STALE_AFTER_SECONDS", 600),
		},
		Export: ExportConfig{
			ColumnsPath: os.Getenv("EXPORT_COLUMNS_PATH"),
			MaxRows:     getEnvAsInt("EXPORT_MAX_ROWS", 50000),
		},
	}

	return cfg, nil
}

// Addr returns the HTTP bind address.
func (a AppConfig) Addr() string {
	return fmt.Sprintf("%s:%s", a.Host, a.Port)
}

// RequestTimeout returns the configured request timeout duration.
func (a AppConfig) RequestTimeout() time.Duration {
	if a.RequestTimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(a.RequestTimeoutSeconds) * time.Second
}

// Timeout returns the upstream HTTP timeout.
func (u UpstreamConfig) Timeout() time.Duration {
	if u.TimeoutSeconds <= 0 {
		return 30 * time.Second
	}
	return time.Duration(u.TimeoutSeconds) * time.Second
}

// StaleAfter returns how long a snapshot stays fresh.
func (r RefreshConfig) StaleAfter() time.Duration {
	if r.StaleAfterSeconds <= 0 {
		return 10 * time.Minute
	}
	return time.Duration(r.StaleAfterSeconds) * time.Second
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return parsed
}
