package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"strings"

	"github.com/go-redis/redis_rate/v10"
	"github.com/hibiken/asynq"
	"github.com/ijalalfrz/flight-price-watch-service/internal/app/config"
	"github.com/ijalalfrz/flight-price-watch-service/internal/app/dto"
	"github.com/ijalalfrz/flight-price-watch-service/internal/app/endpoints"
	"github.com/ijalalfrz/flight-price-watch-service/internal/app/service"
	"github.com/ijalalfrz/flight-price-watch-service/internal/pkg/auth"
	"github.com/ijalalfrz/flight-price-watch-service/internal/pkg/flight"
	"github.com/ijalalfrz/flight-price-watch-service/internal/pkg/flightprovider"
	"github.com/ijalalfrz/flight-price-watch-service/internal/pkg/flightprovider/amadeus"
	mockprovider "github.com/ijalalfrz/flight-price-watch-service/internal/pkg/flightprovider/mock"
	"github.com/ijalalfrz/flight-price-watch-service/internal/pkg/location"
	"github.com/ijalalfrz/flight-price-watch-service/internal/pkg/notification"
	"github.com/ijalalfrz/flight-price-watch-service/internal/pkg/storage/postgres"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

// dependencies are shared by every command that touches searches.
type dependencies struct {
	redis *redis.Client
	pool  *pgxpool.Pool
	repo  *postgres.Repository
	cache *flight.FlightCache

	// liveSearch serves the API and may answer from the leg cache,
	// reconciliationSearch always asks the provider.
	liveSearch           *service.SearchService
	reconciliationSearch *service.SearchService
}

func newDependencies(ctx context.Context, cfg config.Config) (*dependencies, error) {
	// init validator
	if err := dto.InitValidator(); err != nil {
		return nil, fmt.Errorf("init validator: %w", err)
	}

	// init redis
	redisClient := redis.NewClient(&redis.Options{
		Addr:         cfg.Redis.Addr,
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		ReadTimeout:  cfg.Redis.Timeout,
		WriteTimeout: cfg.Redis.Timeout,
	})

	pool, err := postgres.NewPool(ctx, postgresConfig(cfg))
	if err != nil {
		_ = redisClient.Close()
		return nil, err
	}

	provider, err := initFlightProvider(&cfg, redisClient)
	if err != nil {
		_ = redisClient.Close()
		pool.Close()

		return nil, err
	}

	resolver := location.NewResolver(provider, redisClient, cfg.Search.LocationCacheExpiration)
	cache := flight.NewFlightCache(redisClient)

	liveLegs := flight.NewLegFetcher(resolver, provider, cache, cfg.Search.LegCacheExpiration)
	freshLegs := flight.NewLegFetcher(resolver, provider, nil, 0)

	return &dependencies{
		redis:                redisClient,
		pool:                 pool,
		repo:                 postgres.NewRepository(pool),
		cache:                cache,
		liveSearch:           service.NewSearchService(liveLegs, cfg.Search.DisplayCap),
		reconciliationSearch: service.NewSearchService(freshLegs, cfg.Search.DisplayCap),
	}, nil
}

func (d *dependencies) Close() {
	d.pool.Close()

	if err := d.redis.Close(); err != nil {
		slog.Warn("failed to close redis client", slog.String("error", err.Error()))
	}
}

// initFlightProvider registers every provider and returns the configured one.
func initFlightProvider(cfg *config.Config, redisClient *redis.Client) (flightprovider.Provider, error) {
	limiter := redis_rate.NewLimiter(redisClient)

	factory := flightprovider.NewFlightProviderFactory()
	factory.AddProvider(amadeus.ProviderName, amadeus.NewProvider(flightprovider.FlightProviderConfig{
		BaseURL:         cfg.Provider.Amadeus.BaseURL,
		APIKey:          cfg.Provider.Amadeus.APIKey,
		APISecret:       cfg.Provider.Amadeus.APISecret,
		Timeout:         cfg.Provider.Amadeus.Timeout,
		RateLimitRPS:    cfg.Provider.Amadeus.RateLimitRPS,
		MaxResults:      cfg.Provider.Amadeus.MaxResults,
		TokenExpirySkew: cfg.Provider.Amadeus.TokenExpirySkew,
		Limiter:         limiter,
	}))
	factory.AddProvider(mockprovider.ProviderName, mockprovider.NewProvider(flightprovider.FlightProviderConfig{
		SearchAPIURL: cfg.Provider.MockFile,
		Timeout:      cfg.Provider.Amadeus.Timeout,
		RateLimitRPS: cfg.Provider.Amadeus.RateLimitRPS,
		Limiter:      limiter,
	}))

	provider, err := factory.GetProvider(cfg.Provider.Name)
	if err != nil {
		available := slices.Sorted(maps.Keys(factory.GetAllProviders()))

		return nil, fmt.Errorf("flight provider %q (available: %s): %w",
			cfg.Provider.Name, strings.Join(available, ", "), err)
	}

	slog.Info("flight provider selected", slog.String("provider", cfg.Provider.Name))

	return provider, nil
}

func makeEndpoints(deps *dependencies) endpoints.Endpoints {
	savedSearches := service.NewSavedSearchService(deps.repo, deps.liveSearch)

	return endpoints.Endpoints{
		Flight:      endpoints.MakeFlightEndpoint(deps.liveSearch, savedSearches),
		SavedSearch: endpoints.MakeSavedSearchEndpoint(savedSearches),
	}
}

func newReconciliationService(cfg config.Config, deps *dependencies,
	notifier service.Notifier,
) *service.ReconciliationService {
	return service.NewReconciliationService(deps.repo, deps.reconciliationSearch, deps.cache, notifier,
		service.ReconciliationConfig{
			Concurrency: cfg.Reconciliation.Concurrency,
			RateLimit:   cfg.Reconciliation.RateLimit,
			LockTimeout: cfg.Reconciliation.LockTimeout,
		})
}

type pushSender interface {
	Notify(ctx context.Context, pushToken, title, body string) error
}

func newSender(ctx context.Context, cfg config.Config) (pushSender, error) {
	if !cfg.Notification.Enabled {
		slog.InfoContext(ctx, "push notifications disabled, notifications are only logged")
		return notification.LogSender{}, nil
	}

	client, err := notification.NewFirebaseMessaging(ctx, cfg.Notification.CredentialsFile)
	if err != nil {
		return nil, err
	}

	return notification.NewFirebaseSender(client), nil
}

func newVerifier(cfg config.Config) (*auth.Verifier, error) {
	if cfg.Auth.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET is required")
	}

	return auth.NewVerifier(cfg.Auth.JWTSecret), nil
}

func postgresConfig(cfg config.Config) postgres.Config {
	return postgres.Config{
		DSN:             cfg.DB.DSN,
		MaxConns:        cfg.DB.MaxOpenConnections,
		MinConns:        cfg.DB.MaxIdleConnections,
		MaxConnLifetime: cfg.DB.MaxConnectionLifetime,
		MaxConnIdleTime: cfg.DB.MaxConnectionIdleTime,
	}
}

func asynqRedisOpt(cfg config.Config) asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:         cfg.Redis.Addr,
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		ReadTimeout:  cfg.Redis.Timeout,
		WriteTimeout: cfg.Redis.Timeout,
	}
}
