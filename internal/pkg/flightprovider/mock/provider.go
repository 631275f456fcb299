package mock

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/go-redis/redis_rate/v10"
	"github.com/ijalalfrz/flight-price-watch-service/internal/pkg/flightprovider"
)

const ProviderName = "mock"

type Provider struct {
	Name         string
	SearchAPIURL string
	Timeout      time.Duration
	Limiter      *redis_rate.Limiter
	RateLimitRPS int
}

func NewProvider(config flightprovider.FlightProviderConfig) *Provider {
	return &Provider{
		Name:         ProviderName,
		SearchAPIURL: config.SearchAPIURL,
		Timeout:      config.Timeout,
		Limiter:      config.Limiter,
		RateLimitRPS: config.RateLimitRPS,
	}
}

// FetchOffers will simulate a call to the flight-offers API by serving
// the recorded response stored at SearchAPIURL with a delay of 50-100ms.
// The query itself is ignored, filtering is the caller's job.
func (p *Provider) FetchOffers(ctx context.Context,
	_ flightprovider.OfferQuery,
) ([]json.RawMessage, error) {
	if p.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.Timeout)
		defer cancel()
	}

	delay := time.Duration(50+rand.Intn(51)) * time.Millisecond
	select {
	case <-time.After(delay):
	case <-ctx.Done():
		return nil, fmt.Errorf("context cancelled or timeout: %w", ctx.Err())
	}

	if p.Limiter != nil && p.RateLimitRPS > 0 {
		res, err := p.Limiter.Allow(ctx, fmt.Sprintf("limit:%s", p.Name),
			redis_rate.PerSecond(p.RateLimitRPS))
		if err != nil {
			return nil, fmt.Errorf("failed to rate limit: %w", err)
		}

		if res.Allowed == 0 {
			return nil, flightprovider.ErrProviderRateLimitExceeded
		}
	}

	flightData, err := os.ReadFile(p.SearchAPIURL)
	if err != nil {
		return nil, fmt.Errorf("failed to read mock file: %w", err)
	}

	var response struct {
		Data []json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(flightData, &response); err != nil {
		return nil, fmt.Errorf("failed to unmarshal mock file: %w", err)
	}

	return response.Data, nil
}

// SearchCities has no reference data to offer; only statically known
// cities resolve when running against the mock provider.
func (p *Provider) SearchCities(_ context.Context, _ string) ([]flightprovider.Location, error) {
	return nil, nil
}
