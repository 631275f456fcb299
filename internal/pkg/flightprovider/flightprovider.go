package flightprovider

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis_rate/v10"
)

// config for flight provider
type FlightProviderConfig struct {
	BaseURL         string
	APIKey          string
	APISecret       string
	SearchAPIURL    string
	Timeout         time.Duration
	RateLimitRPS    int
	MaxResults      int
	TokenExpirySkew time.Duration
	Limiter         *redis_rate.Limiter
}

// OfferQuery is one directional flight-offer request in provider terms.
type OfferQuery struct {
	OriginCode           string
	DestinationCode      string
	DepartureDate        time.Time
	Adults               int
	IncludedAirlineCodes []string
	MaxPrice             *float64
}

// Location is a single reference-data match for a keyword.
type Location struct {
	SubType  string `json:"subType"`
	Name     string `json:"name"`
	IATACode string `json:"iataCode"`
}

// FlightProvider returns raw, provider-shaped offers. Decoding is left to
// the caller so one malformed offer can't fail the whole batch.
type FlightProvider interface {
	FetchOffers(ctx context.Context, query OfferQuery) ([]json.RawMessage, error)
}

type LocationProvider interface {
	SearchCities(ctx context.Context, keyword string) ([]Location, error)
}

type Provider interface {
	FlightProvider
	LocationProvider
}

type FlightProviderFactory struct {
	Provider map[string]Provider
}

func NewFlightProviderFactory() *FlightProviderFactory {
	return &FlightProviderFactory{
		Provider: make(map[string]Provider),
	}
}

func (f *FlightProviderFactory) AddProvider(name string, provider Provider) {
	f.Provider[name] = provider
}

func (f *FlightProviderFactory) GetProvider(name string) (Provider, error) {
	provider, ok := f.Provider[name]
	if !ok {
		return nil, ErrUnknownProvider
	}

	return provider, nil
}

func (f *FlightProviderFactory) GetAllProviders() map[string]Provider {
	return f.Provider
}
