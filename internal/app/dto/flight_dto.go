package dto

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/ijalalfrz/flight-price-watch-service/internal/pkg/exception"
)

// Leg tags which direction of a search an offer belongs to.
type Leg string

const (
	LegDeparture Leg = "DEPARTURE"
	LegReturn    Leg = "RETURN"
	LegOneWay    Leg = "ONE_WAY"
)

const localDateTimeLayout = "2006-01-02T15:04:05"

// LocalDateTime is a wall-clock instant at the airport, without zone information.
type LocalDateTime struct {
	time.Time
}

func NewLocalDateTime(t time.Time) LocalDateTime {
	return LocalDateTime{Time: time.Date(t.Year(), t.Month(), t.Day(),
		t.Hour(), t.Minute(), t.Second(), 0, time.UTC)}
}

func ParseLocalDateTime(value string) (LocalDateTime, error) {
	t, err := time.Parse(localDateTimeLayout, strings.TrimSpace(value))
	if err != nil {
		return LocalDateTime{}, err
	}

	return LocalDateTime{Time: t}, nil
}

func (l LocalDateTime) String() string {
	return l.Format(localDateTimeLayout)
}

func (l LocalDateTime) MarshalJSON() ([]byte, error) {
	return []byte(`"` + l.String() + `"`), nil
}

func (l *LocalDateTime) UnmarshalJSON(data []byte) error {
	value := strings.Trim(string(data), `"`)
	if value == "" || value == "null" {
		*l = LocalDateTime{}
		return nil
	}

	parsed, err := ParseLocalDateTime(value)
	if err != nil {
		return fmt.Errorf("parse local date time %q: %w", value, err)
	}

	*l = parsed

	return nil
}

// FlightOffer is a normalized, provider-independent flight offer.
type FlightOffer struct {
	Origin                 string        `json:"origin"`
	Destination            string        `json:"destination"`
	OriginAirportCode      string        `json:"origin_airport_code"`
	DestinationAirportCode string        `json:"destination_airport_code"`
	LayoverAirports        []string      `json:"layover_airports"`
	DepartureTime          LocalDateTime `json:"departure_time"`
	ArrivalTime            LocalDateTime `json:"arrival_time"`
	Carrier                string        `json:"carrier"`
	Duration               string        `json:"duration"`
	AircraftCode           string        `json:"aircraft_code"`
	CabinClass             string        `json:"cabin_class"`
	NumberOfStops          int           `json:"number_of_stops"`
	Price                  float64       `json:"price"`
	Currency               string        `json:"currency"`
	Leg                    Leg           `json:"leg"`
}

// LegQuery is a single directional provider query.
type LegQuery struct {
	Origin            string
	Destination       string
	Date              time.Time
	Adults            int
	MaxPrice          *float64
	PreferredAirlines []string
	Leg               Leg
}

type SearchCriteria struct {
	Origin            string   `json:"origin" validate:"required"`
	Destination       string   `json:"destination" validate:"required"`
	DepartureDate     string   `json:"departure_date" validate:"required,calendar_date"`
	ReturnDate        *string  `json:"return_date,omitempty" validate:"omitempty,calendar_date"`
	Adults            int      `json:"adults" validate:"min=1,max=9"`
	MaxPrice          *float64 `json:"max_price,omitempty" validate:"omitempty,gt=0"`
	PreferredAirlines []string `json:"preferred_airlines,omitempty" validate:"omitempty,dive,alphanum,len=2"`
}

// IsRoundTrip reports whether a return date was supplied.
func (s SearchCriteria) IsRoundTrip() bool {
	return s.ReturnDate != nil && strings.TrimSpace(*s.ReturnDate) != ""
}

func (s *SearchCriteria) Bind(r *http.Request) error {
	if s.Adults == 0 {
		s.Adults = 1
	}

	if err := s.Validate(); err != nil {
		return fmt.Errorf("error validate request: %w", err)
	}

	return nil
}

func (s *SearchCriteria) Validate() error {
	if err := ValidateSingleError(s); err != nil {
		return exception.ApplicationError{
			StatusCode: http.StatusBadRequest,
			Message:    err.Error(),
		}
	}

	if strings.EqualFold(strings.TrimSpace(s.Origin), strings.TrimSpace(s.Destination)) {
		return exception.ApplicationError{
			StatusCode: http.StatusBadRequest,
			Message:    "origin and destination must be different",
		}
	}

	return nil
}

// SearchFlightRequest is the body of a live search. Save stores the
// criteria for price tracking when the caller is authenticated.
type SearchFlightRequest struct {
	SearchCriteria
	Save bool `json:"save,omitempty"`
}

func (s *SearchFlightRequest) Bind(r *http.Request) error {
	return s.SearchCriteria.Bind(r)
}

type Metadata struct {
	TotalResults int  `json:"total_results"`
	RoundTrip    bool `json:"round_trip"`
	SearchTimeMs int  `json:"search_time_ms"`
	Saved        bool `json:"saved"`
}

// SearchFlightResponse is the response struct for the search flight endpoint
type SearchFlightResponse struct {
	SearchCriteria SearchCriteria `json:"search_criteria"`
	Metadata       Metadata       `json:"metadata"`
	Flights        []FlightOffer  `json:"flights"`
}
