package location

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/ijalalfrz/flight-price-watch-service/internal/pkg/flightprovider"
	"github.com/redis/go-redis/v9"
)

const cityTypeCity = "CITY"

type CityFinder interface {
	SearchCities(ctx context.Context, keyword string) ([]flightprovider.Location, error)
}

type RedisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

// Resolver turns a free-text city name into an IATA city code. Known cities
// come from a static table, everything else from the provider's reference
// data, memoized in Redis.
type Resolver struct {
	finder     CityFinder
	cache      RedisClient
	expiration time.Duration
	static     map[string]string
}

func NewResolver(finder CityFinder, cache RedisClient, expiration time.Duration) *Resolver {
	return &Resolver{
		finder:     finder,
		cache:      cache,
		expiration: expiration,
		static:     staticCityCodes,
	}
}

func (r *Resolver) Resolve(ctx context.Context, cityName string) (string, error) {
	name := normalize(cityName)
	if name == "" {
		return "", fmt.Errorf("resolve empty city name: %w", ErrResolution)
	}

	if code, ok := r.static[name]; ok {
		return code, nil
	}

	if code, ok := r.cached(ctx, name); ok {
		return code, nil
	}

	locations, err := r.finder.SearchCities(ctx, name)
	if err != nil {
		return "", fmt.Errorf("resolve %q: %w: %w", cityName, ErrResolution, err)
	}

	code := pickCityCode(locations)
	if code == "" {
		return "", fmt.Errorf("resolve %q: no match: %w", cityName, ErrResolution)
	}

	r.remember(ctx, name, code)

	return code, nil
}

func (r *Resolver) GetCacheKey(name string) string {
	return fmt.Sprintf("location:city:%s", name)
}

func (r *Resolver) cached(ctx context.Context, name string) (string, bool) {
	if r.cache == nil {
		return "", false
	}

	code, err := r.cache.Get(ctx, r.GetCacheKey(name)).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			slog.WarnContext(ctx, "failed to read location cache",
				slog.String("city", name), slog.String("error", err.Error()))
		}

		return "", false
	}

	return code, code != ""
}

func (r *Resolver) remember(ctx context.Context, name, code string) {
	if r.cache == nil || r.expiration <= 0 {
		return
	}

	if err := r.cache.Set(ctx, r.GetCacheKey(name), code, r.expiration).Err(); err != nil {
		slog.WarnContext(ctx, "failed to write location cache",
			slog.String("city", name), slog.String("error", err.Error()))
	}
}

// pickCityCode prefers the first CITY-typed match and falls back to the
// first match of any type.
func pickCityCode(locations []flightprovider.Location) string {
	for _, loc := range locations {
		if strings.EqualFold(loc.SubType, cityTypeCity) && loc.IATACode != "" {
			return strings.ToUpper(loc.IATACode)
		}
	}

	if len(locations) > 0 {
		return strings.ToUpper(locations[0].IATACode)
	}

	return ""
}

func normalize(cityName string) string {
	return strings.ToLower(strings.TrimSpace(cityName))
}
