package flight

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/ijalalfrz/flight-price-watch-service/internal/app/dto"
	"github.com/ijalalfrz/flight-price-watch-service/internal/pkg/flightprovider"
)

type LocationResolver interface {
	Resolve(ctx context.Context, cityName string) (string, error)
}

type OfferCache interface {
	GetCacheKey(query dto.LegQuery) string
	GetOffers(ctx context.Context, key string) ([]dto.FlightOffer, error)
	SetOffers(ctx context.Context, key string, offers []dto.FlightOffer, expiration time.Duration) error
}

// LegFetcher runs a single directional query against the provider and
// returns normalized offers in provider order.
type LegFetcher struct {
	resolver        LocationResolver
	provider        flightprovider.FlightProvider
	cache           OfferCache
	cacheExpiration time.Duration
}

func NewLegFetcher(resolver LocationResolver, provider flightprovider.FlightProvider,
	cache OfferCache, cacheExpiration time.Duration,
) *LegFetcher {
	return &LegFetcher{
		resolver:        resolver,
		provider:        provider,
		cache:           cache,
		cacheExpiration: cacheExpiration,
	}
}

// FetchLeg resolves both cities and queries the provider. Resolution
// failures are returned; provider failures degrade to an empty result.
func (f *LegFetcher) FetchLeg(ctx context.Context, query dto.LegQuery) ([]dto.FlightOffer, error) {
	originCode, err := f.resolver.Resolve(ctx, query.Origin)
	if err != nil {
		return nil, fmt.Errorf("origin: %w", err)
	}

	destinationCode, err := f.resolver.Resolve(ctx, query.Destination)
	if err != nil {
		return nil, fmt.Errorf("destination: %w", err)
	}

	if offers, ok := f.cached(ctx, query); ok {
		return offers, nil
	}

	raws, err := f.provider.FetchOffers(ctx, flightprovider.OfferQuery{
		OriginCode:           originCode,
		DestinationCode:      destinationCode,
		DepartureDate:        query.Date,
		Adults:               query.Adults,
		IncludedAirlineCodes: query.PreferredAirlines,
		MaxPrice:             query.MaxPrice,
	})
	if err != nil {
		logProviderFailure(ctx, query, err)
		return []dto.FlightOffer{}, nil
	}

	offers := FilterOffers(NormalizeOffers(ctx, raws, query.Origin, query.Destination, query.Leg), query)

	f.remember(ctx, query, offers)

	slog.DebugContext(ctx, "leg fetched",
		slog.String("leg", string(query.Leg)),
		slog.String("origin", originCode),
		slog.String("destination", destinationCode),
		slog.Int("raw_offers", len(raws)),
		slog.Int("offers", len(offers)))

	return offers, nil
}

func (f *LegFetcher) cached(ctx context.Context, query dto.LegQuery) ([]dto.FlightOffer, bool) {
	if f.cache == nil || f.cacheExpiration <= 0 {
		return nil, false
	}

	offers, err := f.cache.GetOffers(ctx, f.cache.GetCacheKey(query))
	if err != nil {
		return nil, false
	}

	return offers, true
}

func (f *LegFetcher) remember(ctx context.Context, query dto.LegQuery, offers []dto.FlightOffer) {
	if f.cache == nil || f.cacheExpiration <= 0 {
		return
	}

	if err := f.cache.SetOffers(ctx, f.cache.GetCacheKey(query), offers, f.cacheExpiration); err != nil {
		slog.WarnContext(ctx, "failed to cache leg offers", slog.String("error", err.Error()))
	}
}

func logProviderFailure(ctx context.Context, query dto.LegQuery, err error) {
	attrs := []any{
		slog.String("leg", string(query.Leg)),
		slog.String("origin", query.Origin),
		slog.String("destination", query.Destination),
	}

	var upstreamErr *flightprovider.UpstreamError

	switch {
	case errors.Is(err, flightprovider.ErrProviderRateLimitExceeded):
		slog.WarnContext(ctx, "provider rate limit hit, returning no offers", attrs...)
	case errors.As(err, &upstreamErr):
		attrs = append(attrs,
			slog.Int("status", upstreamErr.StatusCode),
			slog.String("body", upstreamErr.Body))
		slog.ErrorContext(ctx, "provider returned an error, returning no offers", attrs...)
	default:
		attrs = append(attrs, slog.String("error", err.Error()))
		slog.ErrorContext(ctx, "provider call failed, returning no offers", attrs...)
	}
}
