package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/ijalalfrz/flight-price-watch-service/internal/app/dto"
	"github.com/ijalalfrz/flight-price-watch-service/internal/pkg/flight"
	"github.com/ijalalfrz/flight-price-watch-service/internal/pkg/storage/postgres"
)

type Searcher interface {
	Search(ctx context.Context, criteria dto.SearchCriteria) ([]dto.FlightOffer, error)
}

type SearchRepository interface {
	FindSearch(ctx context.Context, criteria dto.SavedSearch) (dto.SavedSearch, error)
	GetSearch(ctx context.Context, id uuid.UUID) (dto.SavedSearch, error)
	SaveSearch(ctx context.Context, search dto.SavedSearch) (dto.SavedSearch, error)
	DeleteSearch(ctx context.Context, id uuid.UUID) error
	ListSearchesByUser(ctx context.Context, userID uuid.UUID) ([]dto.SavedSearch, error)
	ReplaceSnapshot(ctx context.Context, searchID uuid.UUID, version int64, snapshot dto.Snapshot) error
	UpsertPushToken(ctx context.Context, userID uuid.UUID, token string) error
	ClearPushToken(ctx context.Context, userID uuid.UUID) error
}

type SavedSearchService struct {
	repo     SearchRepository
	searcher Searcher
}

func NewSavedSearchService(repo SearchRepository, searcher Searcher) *SavedSearchService {
	return &SavedSearchService{
		repo:     repo,
		searcher: searcher,
	}
}

// SaveSearch godoc
// @Summary      Save a search for price tracking
// @Tags         Searches
// @Description  Idempotent per route and dates. Seeds the snapshot with the cheapest offer per leg.
// @Param        request  body      dto.SaveSearchRequest  true  "Search Criteria"
// @Success      200      {object}  dto.SavedSearchResponse
// @Failure      400      {object}  dto.ErrorResponse
// @Failure      401      {object}  dto.ErrorResponse
// @Failure      422      {object}  dto.ErrorResponse
// @Router       /api/v1/searches [post]
func (s *SavedSearchService) SaveSearch(ctx context.Context,
	userID uuid.UUID,
	criteria dto.SearchCriteria,
) (dto.SavedSearchResponse, error) {
	search, err := s.save(ctx, userID, criteria, func(ctx context.Context) ([]dto.FlightOffer, error) {
		return s.searcher.Search(ctx, criteria)
	})
	if err != nil {
		return dto.SavedSearchResponse{}, err
	}

	return sortedResponse(search), nil
}

// SaveOffers stores criteria using offers from a search that already ran.
func (s *SavedSearchService) SaveOffers(ctx context.Context,
	userID uuid.UUID,
	criteria dto.SearchCriteria,
	offers []dto.FlightOffer,
) (dto.SavedSearch, error) {
	return s.save(ctx, userID, criteria, func(context.Context) ([]dto.FlightOffer, error) {
		return offers, nil
	})
}

func (s *SavedSearchService) save(ctx context.Context,
	userID uuid.UUID,
	criteria dto.SearchCriteria,
	search func(ctx context.Context) ([]dto.FlightOffer, error),
) (dto.SavedSearch, error) {
	candidate, err := newSavedSearch(userID, criteria)
	if err != nil {
		return dto.SavedSearch{}, err
	}

	existing, err := s.repo.FindSearch(ctx, candidate)

	switch {
	case err == nil && len(existing.Snapshot) > 0:
		return existing, nil
	case err == nil:
		candidate = existing
	case !errors.Is(err, postgres.ErrNotFound):
		return dto.SavedSearch{}, fmt.Errorf("find search: %w", err)
	}

	offers, err := search(ctx)
	if err != nil {
		return dto.SavedSearch{}, err
	}

	snapshot := cheapestPerLeg(offers)

	if candidate.ID != uuid.Nil {
		if len(snapshot) == 0 {
			return candidate, nil
		}

		if err := s.repo.ReplaceSnapshot(ctx, candidate.ID, candidate.Version, snapshot); err != nil {
			return dto.SavedSearch{}, mapRepositoryError(err)
		}

		candidate.Snapshot = snapshot
		candidate.Version++

		slog.InfoContext(ctx, "seeded snapshot of saved search", slog.String("search_id", candidate.ID.String()))

		return candidate, nil
	}

	candidate.Snapshot = snapshot

	saved, err := s.repo.SaveSearch(ctx, candidate)
	if err != nil {
		if errors.Is(err, postgres.ErrAlreadyExists) {
			return s.findExisting(ctx, candidate)
		}

		return dto.SavedSearch{}, fmt.Errorf("save search: %w", err)
	}

	slog.InfoContext(ctx, "search saved",
		slog.String("search_id", saved.ID.String()),
		slog.Int("snapshot_offers", len(saved.Snapshot)))

	return saved, nil
}

// findExisting covers a concurrent save of the same criteria.
func (s *SavedSearchService) findExisting(ctx context.Context, candidate dto.SavedSearch) (dto.SavedSearch, error) {
	existing, err := s.repo.FindSearch(ctx, candidate)
	if err != nil {
		return dto.SavedSearch{}, fmt.Errorf("find search: %w", err)
	}

	return existing, nil
}

// ListSearches godoc
// @Summary      List saved searches
// @Tags         Searches
// @Success      200      {object}  dto.ListSavedSearchResponse
// @Failure      401      {object}  dto.ErrorResponse
// @Router       /api/v1/searches [get]
func (s *SavedSearchService) ListSearches(ctx context.Context, userID uuid.UUID) (dto.ListSavedSearchResponse, error) {
	searches, err := s.repo.ListSearchesByUser(ctx, userID)
	if err != nil {
		return dto.ListSavedSearchResponse{}, fmt.Errorf("list searches: %w", err)
	}

	response := dto.ListSavedSearchResponse{
		Searches: make([]dto.SavedSearchResponse, 0, len(searches)),
	}

	for _, search := range searches {
		response.Searches = append(response.Searches, sortedResponse(search))
	}

	return response, nil
}

// DeleteSearch godoc
// @Summary      Delete a saved search
// @Tags         Searches
// @Param        id   path      string  true  "Search ID"
// @Success      204
// @Failure      401      {object}  dto.ErrorResponse
// @Failure      404      {object}  dto.ErrorResponse
// @Router       /api/v1/searches/{id} [delete]
func (s *SavedSearchService) DeleteSearch(ctx context.Context, userID, searchID uuid.UUID) error {
	search, err := s.repo.GetSearch(ctx, searchID)
	if err != nil {
		return mapRepositoryError(err)
	}

	// other users' searches are reported as missing
	if search.UserID != userID {
		return ErrSearchNotFound
	}

	if err := s.repo.DeleteSearch(ctx, searchID); err != nil {
		return mapRepositoryError(err)
	}

	slog.InfoContext(ctx, "search deleted", slog.String("search_id", searchID.String()))

	return nil
}

// RegisterPushToken godoc
// @Summary      Register the caller's device push token
// @Tags         Users
// @Param        request  body      dto.PushTokenRequest  true  "Push token"
// @Success      204
// @Failure      400      {object}  dto.ErrorResponse
// @Failure      401      {object}  dto.ErrorResponse
// @Router       /api/v1/users/push-token [put]
func (s *SavedSearchService) RegisterPushToken(ctx context.Context, userID uuid.UUID, token string) error {
	if err := s.repo.UpsertPushToken(ctx, userID, token); err != nil {
		return fmt.Errorf("register push token: %w", err)
	}

	return nil
}

// ClearPushToken godoc
// @Summary      Remove the caller's device push token
// @Tags         Users
// @Description  Called on logout. Price changes are no longer pushed to the user.
// @Success      204
// @Failure      401      {object}  dto.ErrorResponse
// @Router       /api/v1/users/push-token [delete]
func (s *SavedSearchService) ClearPushToken(ctx context.Context, userID uuid.UUID) error {
	if err := s.repo.ClearPushToken(ctx, userID); err != nil {
		return fmt.Errorf("clear push token: %w", err)
	}

	slog.InfoContext(ctx, "push token cleared")

	return nil
}

func newSavedSearch(userID uuid.UUID, criteria dto.SearchCriteria) (dto.SavedSearch, error) {
	departureDate, err := parseDate(criteria.DepartureDate)
	if err != nil {
		return dto.SavedSearch{}, fmt.Errorf("departure date: %w", err)
	}

	search := dto.SavedSearch{
		UserID:            userID,
		Origin:            strings.TrimSpace(criteria.Origin),
		Destination:       strings.TrimSpace(criteria.Destination),
		DepartureDate:     departureDate,
		Adults:            criteria.Adults,
		MaxPrice:          criteria.MaxPrice,
		PreferredAirlines: normalizeAirlines(criteria.PreferredAirlines),
	}

	if search.Adults < 1 {
		search.Adults = 1
	}

	if criteria.IsRoundTrip() {
		returnDate, err := parseDate(*criteria.ReturnDate)
		if err != nil {
			return dto.SavedSearch{}, fmt.Errorf("return date: %w", err)
		}

		search.ReturnDate = &returnDate
	}

	return search, nil
}

func normalizeAirlines(codes []string) []string {
	if len(codes) == 0 {
		return nil
	}

	normalized := make([]string, 0, len(codes))
	for _, code := range codes {
		if code = strings.ToUpper(strings.TrimSpace(code)); code != "" {
			normalized = append(normalized, code)
		}
	}

	return normalized
}

// cheapestPerLeg keeps the first lowest-priced offer of every leg, in the
// order legs first appear.
func cheapestPerLeg(offers []dto.FlightOffer) dto.Snapshot {
	snapshot := dto.Snapshot{}
	index := make(map[dto.Leg]int)

	for _, offer := range offers {
		i, ok := index[offer.Leg]
		if !ok {
			index[offer.Leg] = len(snapshot)
			snapshot = append(snapshot, offer)

			continue
		}

		if offer.Price < snapshot[i].Price {
			snapshot[i] = offer
		}
	}

	return snapshot
}

func sortedResponse(search dto.SavedSearch) dto.SavedSearchResponse {
	search.Snapshot = flight.SortByPrice(append(dto.Snapshot{}, search.Snapshot...))

	return dto.NewSavedSearchResponse(search)
}

func mapRepositoryError(err error) error {
	switch {
	case errors.Is(err, postgres.ErrNotFound):
		return ErrSearchNotFound
	case errors.Is(err, postgres.ErrVersionConflict):
		return ErrSearchModified
	default:
		return err
	}
}
