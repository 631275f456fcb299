package amadeus

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-redis/redis_rate/v10"
	"github.com/ijalalfrz/flight-price-watch-service/internal/pkg/flightprovider"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

const (
	ProviderName = "amadeus"

	tokenPath     = "/v1/security/oauth2/token"
	offersPath    = "/v2/shopping/flight-offers"
	locationsPath = "/v1/reference-data/locations"

	maxErrorBody = 4 << 10
)

type Provider struct {
	Name         string
	BaseURL      string
	Timeout      time.Duration
	MaxResults   int
	Limiter      *redis_rate.Limiter
	RateLimitRPS int

	client *http.Client
}

// NewProvider builds an Amadeus client. Access tokens are fetched with the
// client-credentials grant and reused until TokenExpirySkew before expiry.
func NewProvider(config flightprovider.FlightProviderConfig) *Provider {
	baseURL := strings.TrimRight(config.BaseURL, "/")

	credentials := clientcredentials.Config{
		ClientID:     config.APIKey,
		ClientSecret: config.APISecret,
		TokenURL:     baseURL + tokenPath,
		AuthStyle:    oauth2.AuthStyleInParams,
	}

	tokenCtx := context.WithValue(context.Background(), oauth2.HTTPClient, &http.Client{Timeout: config.Timeout})
	tokenSource := oauth2.ReuseTokenSourceWithExpiry(nil, credentials.TokenSource(tokenCtx), config.TokenExpirySkew)

	client := oauth2.NewClient(tokenCtx, tokenSource)
	client.Timeout = config.Timeout

	return &Provider{
		Name:         ProviderName,
		BaseURL:      baseURL,
		Timeout:      config.Timeout,
		MaxResults:   config.MaxResults,
		Limiter:      config.Limiter,
		RateLimitRPS: config.RateLimitRPS,
		client:       client,
	}
}

// FetchOffers calls the flight-offers search for one direction.
func (p *Provider) FetchOffers(ctx context.Context, query flightprovider.OfferQuery) ([]json.RawMessage, error) {
	params := url.Values{}
	params.Set("originLocationCode", query.OriginCode)
	params.Set("destinationLocationCode", query.DestinationCode)
	params.Set("departureDate", query.DepartureDate.Format(time.DateOnly))
	params.Set("adults", strconv.Itoa(query.Adults))

	if len(query.IncludedAirlineCodes) > 0 {
		params.Set("includedAirlineCodes", strings.Join(query.IncludedAirlineCodes, ","))
	}

	if query.MaxPrice != nil {
		params.Set("maxPrice", strconv.Itoa(int(math.Ceil(*query.MaxPrice))))
	}

	if p.MaxResults > 0 {
		params.Set("max", strconv.Itoa(p.MaxResults))
	}

	var response offersResponse
	if err := p.get(ctx, offersPath, params, &response); err != nil {
		return nil, err
	}

	return response.Data, nil
}

// SearchCities looks up cities matching keyword, most travelled first.
func (p *Provider) SearchCities(ctx context.Context, keyword string) ([]flightprovider.Location, error) {
	params := url.Values{}
	params.Set("subType", "CITY")
	params.Set("keyword", keyword)
	params.Set("sort", "analytics.travelers.score")
	params.Set("view", "LIGHT")

	var response locationsResponse
	if err := p.get(ctx, locationsPath, params, &response); err != nil {
		return nil, err
	}

	return response.Data, nil
}

func (p *Provider) get(ctx context.Context, path string, params url.Values, out any) error {
	if p.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.Timeout)
		defer cancel()
	}

	if err := p.allow(ctx); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.BaseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	req.Header.Set("Accept", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return flightprovider.ErrProviderRateLimitExceeded
	}

	if resp.StatusCode >= http.StatusBadRequest {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

		return &flightprovider.UpstreamError{
			StatusCode: resp.StatusCode,
			Body:       string(body),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", path, err)
	}

	return nil
}

func (p *Provider) allow(ctx context.Context) error {
	if p.Limiter == nil || p.RateLimitRPS <= 0 {
		return nil
	}

	res, err := p.Limiter.Allow(ctx, fmt.Sprintf("limit:%s", p.Name),
		redis_rate.PerSecond(p.RateLimitRPS))
	if err != nil {
		// fail open
		slog.WarnContext(ctx, "rate limiter unavailable", slog.String("error", err.Error()))
		return nil
	}

	if res.Allowed == 0 {
		return flightprovider.ErrProviderRateLimitExceeded
	}

	return nil
}
