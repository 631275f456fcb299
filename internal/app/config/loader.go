package config

import (
	"log/slog"
	"reflect"
	"strings"

	"github.com/spf13/viper"
)

// MustInitConfig initializes configuration from .env file or environment variables.
// If configFile exists, it loads from the file. Otherwise, it automatically binds
// environment variables based on the Config struct's mapstructure tags.
func MustInitConfig(configFile string) Config {
	var (
		vpr = viper.New()
		cfg Config
	)

	setDefaults(vpr)

	vpr.AutomaticEnv()

	vpr.SetConfigFile(configFile)
	vpr.SetConfigType("env")

	if err := vpr.ReadInConfig(); err != nil {
		slog.Warn("config file not found or cannot be read, using environment variables",
			slog.String("file", configFile),
			slog.String("error", err.Error()))
	} else {
		slog.Info("config file loaded successfully", slog.String("file", configFile))

		vpr.WatchConfig()
	}

	// Automatically bind all environment variables from Config struct
	bindEnvFromStruct(vpr)

	// Unmarshal configuration into struct
	if err := vpr.Unmarshal(&cfg); err != nil {
		slog.Error("cannot unmarshal config", slog.String("error", err.Error()))
		panic(err)
	}

	return cfg
}

// bindEnvFromStruct automatically binds environment variables based on mapstructure tags using reflection
func bindEnvFromStruct(vpr *viper.Viper) {
	bindEnvFromType(vpr, reflect.TypeOf(Config{}))
}

func bindEnvFromType(vpr *viper.Viper, t reflect.Type) {
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	if t.Kind() != reflect.Struct {
		return
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")

		if tag == "" || tag == "-" {
			// If it's an embedded struct without a tag, recurse
			if field.Anonymous && field.Type.Kind() == reflect.Struct {
				bindEnvFromType(vpr, field.Type)
			}
			continue
		}

		parts := strings.Split(tag, ",")
		envVar := parts[0]
		isSquash := false
		for _, p := range parts {
			if strings.TrimSpace(p) == "squash" {
				isSquash = true
				break
			}
		}

		if isSquash && field.Type.Kind() == reflect.Struct {
			bindEnvFromType(vpr, field.Type)
			continue
		}

		if envVar != "" {
			_ = vpr.BindEnv(envVar)
		}
	}
}

func setDefaults(vpr *viper.Viper) {
	vpr.SetDefault("LOG_LEVEL", "info")
	vpr.SetDefault("HTTP_PORT", 8080)
	vpr.SetDefault("HTTP_TIMEOUT", "30s")
	vpr.SetDefault("DB_MAX_OPEN_CONNECTIONS", 25)
	vpr.SetDefault("DB_MAX_IDLE_CONNECTIONS", 5)
	vpr.SetDefault("DB_MAX_CONNECTIONS_LIFETIME", "1h")
	vpr.SetDefault("DB_MAX_CONNECTION_IDLE_TIME", "30m")
	vpr.SetDefault("REDIS_ADDR", "localhost:6379")
	vpr.SetDefault("FLIGHT_PROVIDER", "amadeus")
	vpr.SetDefault("AMADEUS_BASE_URL", "https://test.api.amadeus.com")
	vpr.SetDefault("AMADEUS_TIMEOUT", "15s")
	vpr.SetDefault("AMADEUS_RATE_LIMIT", 10)
	vpr.SetDefault("AMADEUS_MAX_RESULTS", 50)
	vpr.SetDefault("AMADEUS_TOKEN_EXPIRY_SKEW", "60s")
	vpr.SetDefault("SEARCH_DISPLAY_CAP", 20)
	vpr.SetDefault("SEARCH_CACHE_EXPIRATION", "5m")
	vpr.SetDefault("LOCATION_CACHE_EXPIRATION", "168h")
	vpr.SetDefault("RECONCILIATION_CRON", "0 0 * * *")
	vpr.SetDefault("RECONCILIATION_CONCURRENCY", 4)
	vpr.SetDefault("RECONCILIATION_RATE_LIMIT", 2)
	vpr.SetDefault("RECONCILIATION_LOCK_TIMEOUT", "5m")
	vpr.SetDefault("WORKER_QUEUE", "default")
	vpr.SetDefault("WORKER_CONCURRENCY", 10)
}
