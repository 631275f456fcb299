package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ijalalfrz/flight-price-watch-service/internal/app/dto"
	"github.com/ijalalfrz/flight-price-watch-service/internal/pkg/flight"
	"github.com/ijalalfrz/flight-price-watch-service/internal/pkg/utils"
	"golang.org/x/sync/errgroup"
)

type LegFetcher interface {
	FetchLeg(ctx context.Context, query dto.LegQuery) ([]dto.FlightOffer, error)
}

// SearchService assembles one-way and round-trip result sets. It never
// persists anything.
type SearchService struct {
	legs       LegFetcher
	displayCap int
}

func NewSearchService(legs LegFetcher, displayCap int) *SearchService {
	return &SearchService{
		legs:       legs,
		displayCap: displayCap,
	}
}

// SearchFlights godoc
// @Summary      Search flights
// @Tags         Flights
// @Description  Live search. Round-trip results interleave departure and return offers, cheapest first.
// @Param        request  body      dto.SearchFlightRequest  true  "Search Criteria"
// @Success      200      {object}  dto.SearchFlightResponse
// @Failure      400      {object}  dto.ErrorResponse
// @Failure      422      {object}  dto.ErrorResponse
// @Failure      500      {object}  dto.ErrorResponse
// @Router       /api/v1/flights/search [post]
func (s *SearchService) SearchFlights(ctx context.Context,
	criteria dto.SearchCriteria,
) (dto.SearchFlightResponse, error) {
	startTime := time.Now()

	flights, err := s.Search(ctx, criteria)
	if err != nil {
		return dto.SearchFlightResponse{}, err
	}

	return dto.SearchFlightResponse{
		SearchCriteria: criteria,
		Flights:        flights,
		Metadata: dto.Metadata{
			TotalResults: len(flights),
			RoundTrip:    criteria.IsRoundTrip(),
			SearchTimeMs: int(time.Since(startTime).Milliseconds()),
		},
	}, nil
}

// Search returns offers sorted by price and capped at the display limit.
func (s *SearchService) Search(ctx context.Context, criteria dto.SearchCriteria) ([]dto.FlightOffer, error) {
	departureDate, err := parseDate(criteria.DepartureDate)
	if err != nil {
		return nil, fmt.Errorf("departure date: %w", err)
	}

	origin := strings.TrimSpace(criteria.Origin)
	destination := strings.TrimSpace(criteria.Destination)

	outbound := dto.LegQuery{
		Origin:            origin,
		Destination:       destination,
		Date:              departureDate,
		Adults:            criteria.Adults,
		MaxPrice:          criteria.MaxPrice,
		PreferredAirlines: criteria.PreferredAirlines,
		Leg:               dto.LegOneWay,
	}

	if !criteria.IsRoundTrip() {
		offers, err := s.legs.FetchLeg(ctx, outbound)
		if err != nil {
			return nil, fmt.Errorf("one-way leg: %w", err)
		}

		return s.capped(flight.SortByPrice(offers)), nil
	}

	returnDate, err := parseDate(*criteria.ReturnDate)
	if err != nil {
		return nil, fmt.Errorf("return date: %w", err)
	}

	outbound.Leg = dto.LegDeparture

	inbound := outbound
	inbound.Origin, inbound.Destination = destination, origin
	inbound.Date = returnDate
	inbound.Leg = dto.LegReturn

	var departures, returns []dto.FlightOffer

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		offers, err := s.legs.FetchLeg(gctx, outbound)
		if err != nil {
			return fmt.Errorf("departure leg: %w", err)
		}

		departures = flight.SortByPrice(offers)

		return nil
	})

	g.Go(func() error {
		offers, err := s.legs.FetchLeg(gctx, inbound)
		if err != nil {
			return fmt.Errorf("return leg: %w", err)
		}

		returns = flight.SortByPrice(offers)

		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return s.capped(flight.Interleave(departures, returns)), nil
}

func (s *SearchService) capped(offers []dto.FlightOffer) []dto.FlightOffer {
	if offers == nil {
		return []dto.FlightOffer{}
	}

	return flight.Truncate(offers, s.displayCap)
}

func parseDate(value string) (time.Time, error) {
	date, err := utils.ParseCalendarDate(value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%q: %w", value, ErrInvalidDate)
	}

	return date, nil
}
