package endpoints

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-kit/kit/endpoint"
	"github.com/google/uuid"
	"github.com/ijalalfrz/flight-price-watch-service/internal/app/dto"
	"github.com/ijalalfrz/flight-price-watch-service/internal/pkg/auth"
)

type SavedSearchService interface {
	SaveSearch(ctx context.Context, userID uuid.UUID, criteria dto.SearchCriteria) (dto.SavedSearchResponse, error)
	ListSearches(ctx context.Context, userID uuid.UUID) (dto.ListSavedSearchResponse, error)
	DeleteSearch(ctx context.Context, userID, searchID uuid.UUID) error
	RegisterPushToken(ctx context.Context, userID uuid.UUID, token string) error
	ClearPushToken(ctx context.Context, userID uuid.UUID) error
}

type SavedSearchEndpoint struct {
	SaveSearch        endpoint.Endpoint
	ListSearches      endpoint.Endpoint
	DeleteSearch      endpoint.Endpoint
	RegisterPushToken endpoint.Endpoint
	ClearPushToken    endpoint.Endpoint
}

func MakeSavedSearchEndpoint(service SavedSearchService) SavedSearchEndpoint {
	return SavedSearchEndpoint{
		SaveSearch:        makeSaveSearchEndpoint(service),
		ListSearches:      makeListSearchesEndpoint(service),
		DeleteSearch:      makeDeleteSearchEndpoint(service),
		RegisterPushToken: makeRegisterPushTokenEndpoint(service),
		ClearPushToken:    makeClearPushTokenEndpoint(service),
	}
}

func makeSaveSearchEndpoint(service SavedSearchService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*dto.SaveSearchRequest)
		if !ok || request == nil {
			return nil, errors.New("invalid type")
		}

		userID, ok := auth.UserIDFromContext(ctx)
		if !ok {
			return nil, auth.ErrUnauthorized
		}

		search, err := service.SaveSearch(ctx, userID, request.SearchCriteria)
		if err != nil {
			return nil, fmt.Errorf("saved search service: %w", err)
		}

		return search, nil
	}
}

func makeListSearchesEndpoint(service SavedSearchService) endpoint.Endpoint {
	return func(ctx context.Context, _ interface{}) (interface{}, error) {
		userID, ok := auth.UserIDFromContext(ctx)
		if !ok {
			return nil, auth.ErrUnauthorized
		}

		searches, err := service.ListSearches(ctx, userID)
		if err != nil {
			return nil, fmt.Errorf("saved search service: %w", err)
		}

		return searches, nil
	}
}

func makeDeleteSearchEndpoint(service SavedSearchService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*dto.DeleteSearchRequest)
		if !ok || request == nil {
			return nil, errors.New("invalid type")
		}

		userID, ok := auth.UserIDFromContext(ctx)
		if !ok {
			return nil, auth.ErrUnauthorized
		}

		if err := service.DeleteSearch(ctx, userID, request.ID); err != nil {
			return nil, fmt.Errorf("saved search service: %w", err)
		}

		return nil, nil
	}
}

func makeRegisterPushTokenEndpoint(service SavedSearchService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*dto.PushTokenRequest)
		if !ok || request == nil {
			return nil, errors.New("invalid type")
		}

		userID, ok := auth.UserIDFromContext(ctx)
		if !ok {
			return nil, auth.ErrUnauthorized
		}

		if err := service.RegisterPushToken(ctx, userID, request.Token); err != nil {
			return nil, fmt.Errorf("saved search service: %w", err)
		}

		return nil, nil
	}
}

func makeClearPushTokenEndpoint(service SavedSearchService) endpoint.Endpoint {
	return func(ctx context.Context, _ interface{}) (interface{}, error) {
		userID, ok := auth.UserIDFromContext(ctx)
		if !ok {
			return nil, auth.ErrUnauthorized
		}

		if err := service.ClearPushToken(ctx, userID); err != nil {
			return nil, fmt.Errorf("saved search service: %w", err)
		}

		return nil, nil
	}
}
