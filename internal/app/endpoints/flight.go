package endpoints

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/go-kit/kit/endpoint"
	"github.com/google/uuid"
	"github.com/ijalalfrz/flight-price-watch-service/internal/app/dto"
	"github.com/ijalalfrz/flight-price-watch-service/internal/pkg/auth"
)

type FlightService interface {
	SearchFlights(ctx context.Context, criteria dto.SearchCriteria) (dto.SearchFlightResponse, error)
}

type SearchSaver interface {
	SaveOffers(ctx context.Context, userID uuid.UUID, criteria dto.SearchCriteria,
		offers []dto.FlightOffer) (dto.SavedSearch, error)
}

type FlightEndpoint struct {
	SearchFlights endpoint.Endpoint
}

func MakeFlightEndpoint(service FlightService, saver SearchSaver) FlightEndpoint {
	return FlightEndpoint{
		SearchFlights: makeSearchFlightsEndpoint(service, saver),
	}
}

func makeSearchFlightsEndpoint(service FlightService, saver SearchSaver) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*dto.SearchFlightRequest)
		if !ok || request == nil {
			return nil, errors.New("invalid type")
		}

		response, err := service.SearchFlights(ctx, request.SearchCriteria)
		if err != nil {
			return nil, fmt.Errorf("search service: %w", err)
		}

		if !request.Save {
			return response, nil
		}

		userID, ok := auth.UserIDFromContext(ctx)
		if !ok {
			slog.InfoContext(ctx, "anonymous search is not saved")
			return response, nil
		}

		// a failed save never fails the search
		saved, err := saver.SaveOffers(ctx, userID, request.SearchCriteria, response.Flights)
		if err != nil {
			slog.WarnContext(ctx, "failed to save search", slog.String("error", err.Error()))
			return response, nil
		}

		slog.InfoContext(ctx, "search saved from live search", slog.String("search_id", saved.ID.String()))

		response.Metadata.Saved = true

		return response, nil
	}
}
