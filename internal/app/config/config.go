package config

import (
	"log/slog"
	"time"
)

type LogLeveler string

func (l LogLeveler) Level() slog.Level {
	var level slog.Level

	_ = level.UnmarshalText([]byte(l))

	return level
}

// Config holds the server configuration.
type Config struct {
	LogLevel       LogLeveler     `mapstructure:"LOG_LEVEL"`
	DB             DB             `mapstructure:",squash"`
	HTTP           HTTP           `mapstructure:",squash"`
	Redis          Redis          `mapstructure:",squash"`
	Provider       Provider       `mapstructure:",squash"`
	Search         Search         `mapstructure:",squash"`
	Reconciliation Reconciliation `mapstructure:",squash"`
	Worker         Worker         `mapstructure:",squash"`
	Auth           Auth           `mapstructure:",squash"`
	Notification   Notification   `mapstructure:",squash"`
}

type DB struct {
	DSN                   string        `mapstructure:"DB_DSN"`
	MaxOpenConnections    int           `mapstructure:"DB_MAX_OPEN_CONNECTIONS"`
	MaxIdleConnections    int           `mapstructure:"DB_MAX_IDLE_CONNECTIONS"`
	MaxConnectionLifetime time.Duration `mapstructure:"DB_MAX_CONNECTIONS_LIFETIME"`
	MaxConnectionIdleTime time.Duration `mapstructure:"DB_MAX_CONNECTION_IDLE_TIME"`
}

type HTTP struct {
	Port    int           `mapstructure:"HTTP_PORT"`
	Timeout time.Duration `mapstructure:"HTTP_TIMEOUT"`
}

type Redis struct {
	Addr     string        `mapstructure:"REDIS_ADDR"`
	Password string        `mapstructure:"REDIS_PASSWORD"`
	DB       int           `mapstructure:"REDIS_DB"`
	Timeout  time.Duration `mapstructure:"REDIS_TIMEOUT"`
}

// Provider selects the flight data provider. "mock" serves a recorded
// response from MockFile instead of calling Amadeus.
type Provider struct {
	Name     string  `mapstructure:"FLIGHT_PROVIDER"`
	MockFile string  `mapstructure:"MOCK_PROVIDER_FILE"`
	Amadeus  Amadeus `mapstructure:",squash"`
}

type Amadeus struct {
	BaseURL         string        `mapstructure:"AMADEUS_BASE_URL"`
	APIKey          string        `mapstructure:"AMADEUS_API_KEY"`
	APISecret       string        `mapstructure:"AMADEUS_API_SECRET"`
	Timeout         time.Duration `mapstructure:"AMADEUS_TIMEOUT"`
	RateLimitRPS    int           `mapstructure:"AMADEUS_RATE_LIMIT"`
	MaxResults      int           `mapstructure:"AMADEUS_MAX_RESULTS"`
	TokenExpirySkew time.Duration `mapstructure:"AMADEUS_TOKEN_EXPIRY_SKEW"`
}

type Search struct {
	DisplayCap              int           `mapstructure:"SEARCH_DISPLAY_CAP"`
	LegCacheExpiration      time.Duration `mapstructure:"SEARCH_CACHE_EXPIRATION"`
	LocationCacheExpiration time.Duration `mapstructure:"LOCATION_CACHE_EXPIRATION"`
}

type Reconciliation struct {
	Cron        string        `mapstructure:"RECONCILIATION_CRON"`
	Concurrency int           `mapstructure:"RECONCILIATION_CONCURRENCY"`
	RateLimit   float64       `mapstructure:"RECONCILIATION_RATE_LIMIT"`
	LockTimeout time.Duration `mapstructure:"RECONCILIATION_LOCK_TIMEOUT"`
}

type Worker struct {
	Queue       string `mapstructure:"WORKER_QUEUE"`
	Concurrency int    `mapstructure:"WORKER_CONCURRENCY"`
}

type Auth struct {
	JWTSecret string `mapstructure:"JWT_SECRET"`
}

type Notification struct {
	Enabled         bool   `mapstructure:"NOTIFICATION_ENABLED"`
	CredentialsFile string `mapstructure:"FIREBASE_CREDENTIALS_FILE"`
}
