package flight

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/ijalalfrz/flight-price-watch-service/internal/app/dto"
	"github.com/redis/go-redis/v9"
)

// releaseLockScript deletes the lock only while it still holds the caller's
// token.
const releaseLockScript = `
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0`

type RedisClient interface {
	SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.BoolCmd
	Eval(ctx context.Context, script string, keys []string, args ...interface{}) *redis.Cmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Get(ctx context.Context, key string) *redis.StringCmd
}

// FlightCache keeps short-lived leg results and the per-search
// reconciliation lock in Redis.
type FlightCache struct {
	redis RedisClient
}

func NewFlightCache(redis RedisClient) *FlightCache {
	return &FlightCache{
		redis: redis,
	}
}

func (c *FlightCache) GetLockKey(searchID string) string {
	return fmt.Sprintf("flight:lock:search:%s", searchID)
}

func (c *FlightCache) GetCacheKey(query dto.LegQuery) string {
	maxPrice := "-"
	if query.MaxPrice != nil {
		maxPrice = fmt.Sprintf("%.2f", *query.MaxPrice)
	}

	airlines := make([]string, len(query.PreferredAirlines))
	for i, code := range query.PreferredAirlines {
		airlines[i] = strings.ToUpper(strings.TrimSpace(code))
	}
	sort.Strings(airlines)

	return fmt.Sprintf("flight:cache:%s:%s:%s:%s:%d:%s:%s",
		query.Date.Format(time.DateOnly),
		strings.ToLower(strings.TrimSpace(query.Origin)),
		strings.ToLower(strings.TrimSpace(query.Destination)),
		query.Leg, query.Adults, maxPrice, strings.Join(airlines, ","))
}

// AcquireLock takes the lock for timeout and returns the owner token needed
// to release it.
func (c *FlightCache) AcquireLock(ctx context.Context, key string, timeout time.Duration) (string, bool, error) {
	token := uuid.NewString()

	acquired, err := c.redis.SetNX(ctx, key, token, timeout).Result()
	if err != nil || !acquired {
		return "", false, err
	}

	return token, true, nil
}

// ReleaseLock removes the lock if token still owns it. A lock that expired
// and was taken by someone else is left alone.
func (c *FlightCache) ReleaseLock(ctx context.Context, key, token string) error {
	return c.redis.Eval(ctx, releaseLockScript, []string{key}, token).Err()
}

func (c *FlightCache) SetOffers(ctx context.Context,
	key string,
	offers []dto.FlightOffer,
	expiration time.Duration,
) error {
	data, err := json.Marshal(offers)
	if err != nil {
		return fmt.Errorf("failed to marshal offers: %w", err)
	}

	err = c.redis.Set(ctx, key, data, expiration).Err()
	if err != nil {
		return fmt.Errorf("failed to set offers: %w", err)
	}

	return nil
}

func (c *FlightCache) GetOffers(ctx context.Context, key string) ([]dto.FlightOffer, error) {
	data, err := c.redis.Get(ctx, key).Bytes()
	if err != nil {
		return nil, err
	}

	var offers []dto.FlightOffer
	if err := json.Unmarshal(data, &offers); err != nil {
		return nil, err
	}

	return offers, nil
}
