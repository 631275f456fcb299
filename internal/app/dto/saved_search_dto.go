package dto

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/ijalalfrz/flight-price-watch-service/internal/pkg/exception"
)

// Snapshot is the last-known cheapest offer per leg of a saved search.
// It is replaced as a whole, never mutated in place.
type Snapshot []FlightOffer

// SavedSearch is a persisted search criteria owned by a user.
type SavedSearch struct {
	ID                uuid.UUID  `json:"id"`
	UserID            uuid.UUID  `json:"user_id"`
	Origin            string     `json:"origin"`
	Destination       string     `json:"destination"`
	DepartureDate     time.Time  `json:"-"`
	ReturnDate        *time.Time `json:"-"`
	Adults            int        `json:"adults"`
	MaxPrice          *float64   `json:"max_price,omitempty"`
	PreferredAirlines []string   `json:"preferred_airlines,omitempty"`
	Version           int64      `json:"-"`
	PushToken         string     `json:"-"`
	Snapshot          Snapshot   `json:"flights"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

// Criteria rebuilds the search criteria from the stored fields.
func (s SavedSearch) Criteria() SearchCriteria {
	criteria := SearchCriteria{
		Origin:            s.Origin,
		Destination:       s.Destination,
		DepartureDate:     s.DepartureDate.Format(time.DateOnly),
		Adults:            s.Adults,
		MaxPrice:          s.MaxPrice,
		PreferredAirlines: s.PreferredAirlines,
	}

	if s.ReturnDate != nil {
		returnDate := s.ReturnDate.Format(time.DateOnly)
		criteria.ReturnDate = &returnDate
	}

	return criteria
}

func (s SavedSearch) IsRoundTrip() bool {
	return s.ReturnDate != nil
}

type SaveSearchRequest struct {
	SearchCriteria
}

func (s *SaveSearchRequest) Bind(r *http.Request) error {
	return s.SearchCriteria.Bind(r)
}

type SavedSearchResponse struct {
	ID            uuid.UUID     `json:"id"`
	Origin        string        `json:"origin"`
	Destination   string        `json:"destination"`
	DepartureDate string        `json:"departure_date"`
	ReturnDate    *string       `json:"return_date,omitempty"`
	Adults        int           `json:"adults"`
	MaxPrice      *float64      `json:"max_price,omitempty"`
	Airlines      []string      `json:"preferred_airlines,omitempty"`
	Flights       []FlightOffer `json:"flights"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

func NewSavedSearchResponse(search SavedSearch) SavedSearchResponse {
	criteria := search.Criteria()

	flights := make([]FlightOffer, len(search.Snapshot))
	copy(flights, search.Snapshot)

	return SavedSearchResponse{
		ID:            search.ID,
		Origin:        search.Origin,
		Destination:   search.Destination,
		DepartureDate: criteria.DepartureDate,
		ReturnDate:    criteria.ReturnDate,
		Adults:        search.Adults,
		MaxPrice:      search.MaxPrice,
		Airlines:      search.PreferredAirlines,
		Flights:       flights,
		CreatedAt:     search.CreatedAt,
		UpdatedAt:     search.UpdatedAt,
	}
}

type ListSavedSearchResponse struct {
	Searches []SavedSearchResponse `json:"searches"`
}

type DeleteSearchRequest struct {
	ID uuid.UUID
}

type PushTokenRequest struct {
	Token string `json:"token" validate:"required,max=4096"`
}

func (p *PushTokenRequest) Bind(r *http.Request) error {
	p.Token = strings.TrimSpace(p.Token)

	if err := ValidateSingleError(p); err != nil {
		return fmt.Errorf("error validate request: %w", exception.ApplicationError{
			StatusCode: http.StatusBadRequest,
			Message:    err.Error(),
		})
	}

	return nil
}

// PriceChange classifies how the cheapest fare of a leg moved.
type PriceChange string

const (
	PriceDrop      PriceChange = "PRICE_DROP"
	PriceIncrease  PriceChange = "PRICE_INCREASE"
	PriceUnchanged PriceChange = "UNCHANGED"
	PriceNoData    PriceChange = "NO_DATA"
)

// Notifiable reports whether the change is worth telling the owner about.
func (p PriceChange) Notifiable() bool {
	return p == PriceDrop || p == PriceIncrease
}

// LegReconciliation is the outcome of comparing one leg against its snapshot.
type LegReconciliation struct {
	Leg      Leg           `json:"leg"`
	OldPrice *float64      `json:"old_price,omitempty"`
	NewPrice *float64      `json:"new_price,omitempty"`
	Change   PriceChange   `json:"change"`
	Message  string        `json:"message,omitempty"`
	Offers   []FlightOffer `json:"-"`
}

// CycleReport summarizes one reconciliation run.
type CycleReport struct {
	Total      int           `json:"total"`
	Reconciled int           `json:"reconciled"`
	Skipped    int           `json:"skipped"`
	Failed     int           `json:"failed"`
	Notified   int           `json:"notified"`
	Duration   time.Duration `json:"duration"`
}
