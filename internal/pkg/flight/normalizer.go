package flight

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/ijalalfrz/flight-price-watch-service/internal/app/dto"
	"github.com/ijalalfrz/flight-price-watch-service/internal/pkg/utils"
)

const (
	defaultCurrency     = "USD"
	defaultCabinClass   = "Unknown"
	defaultAircraftCode = "N/A"
)

// accepted layouts for segment departure and arrival instants
var localDateTimeLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	time.RFC3339,
	"2006-01-02T15:04:05.999999999",
}

// looseString accepts a JSON string, number, boolean or null. Objects and
// arrays are a type mismatch and fail the decode of the enclosing offer.
type looseString string

func (s *looseString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	switch {
	case len(data) == 0 || bytes.Equal(data, []byte("null")):
		*s = ""
	case data[0] == '"':
		var value string
		if err := json.Unmarshal(data, &value); err != nil {
			return err
		}
		*s = looseString(value)
	case data[0] == '{' || data[0] == '[':
		return fmt.Errorf("expected scalar, got %s", string(data[:1]))
	default:
		*s = looseString(data)
	}

	return nil
}

func (s looseString) String() string {
	return strings.TrimSpace(string(s))
}

type rawOffer struct {
	ID               looseString          `json:"id"`
	Itineraries      []rawItinerary       `json:"itineraries"`
	Price            *rawPrice            `json:"price"`
	TravelerPricings []rawTravelerPricing `json:"travelerPricings"`
}

type rawItinerary struct {
	Duration looseString  `json:"duration"`
	Segments []rawSegment `json:"segments"`
}

type rawSegment struct {
	Departure   *rawEndpoint `json:"departure"`
	Arrival     *rawEndpoint `json:"arrival"`
	CarrierCode looseString  `json:"carrierCode"`
	Number      looseString  `json:"number"`
	Aircraft    *rawAircraft `json:"aircraft"`
}

type rawEndpoint struct {
	IATACode looseString `json:"iataCode"`
	At       looseString `json:"at"`
}

type rawAircraft struct {
	Code looseString `json:"code"`
}

type rawPrice struct {
	Total    looseString `json:"total"`
	Currency looseString `json:"currency"`
}

type rawTravelerPricing struct {
	FareDetailsBySegment []rawFareDetail `json:"fareDetailsBySegment"`
}

type rawFareDetail struct {
	Cabin looseString `json:"cabin"`
}

// NormalizeOffers converts a batch of raw offers, dropping the ones that
// can't be normalized.
func NormalizeOffers(ctx context.Context, raws []json.RawMessage,
	origin, destination string, leg dto.Leg,
) []dto.FlightOffer {
	offers := make([]dto.FlightOffer, 0, len(raws))

	for _, raw := range raws {
		offer, ok := NormalizeOffer(ctx, raw, origin, destination, leg)
		if !ok {
			continue
		}

		offers = append(offers, offer)
	}

	return offers
}

// NormalizeOffer converts one raw provider offer into a FlightOffer. It
// never panics; any failure rejects the offer and is logged with its id.
func NormalizeOffer(ctx context.Context, raw json.RawMessage,
	origin, destination string, leg dto.Leg,
) (offer dto.FlightOffer, ok bool) {
	defer func() {
		if rvr := recover(); rvr != nil {
			slog.WarnContext(ctx, "offer dropped",
				slog.String("offer_id", offerIDOf(raw)),
				slog.Any("panic", rvr))

			offer, ok = dto.FlightOffer{}, false
		}
	}()

	var parsed rawOffer
	if err := json.Unmarshal(raw, &parsed); err != nil {
		slog.WarnContext(ctx, "offer dropped",
			slog.String("offer_id", offerIDOf(raw)),
			slog.String("reason", "decode"),
			slog.String("error", err.Error()))

		return dto.FlightOffer{}, false
	}

	offer, err := parsed.toFlightOffer(origin, destination, leg)
	if err != nil {
		slog.WarnContext(ctx, "offer dropped",
			slog.String("offer_id", parsed.ID.String()),
			slog.String("reason", err.Error()))

		return dto.FlightOffer{}, false
	}

	return offer, true
}

func (o rawOffer) toFlightOffer(origin, destination string, leg dto.Leg) (dto.FlightOffer, error) {
	if len(o.Itineraries) == 0 || len(o.Itineraries[0].Segments) == 0 {
		return dto.FlightOffer{}, fmt.Errorf("no segments")
	}

	itinerary := o.Itineraries[0]
	segments := itinerary.Segments
	first := segments[0]
	last := segments[len(segments)-1]

	departureTime, err := parseEndpointTime(first.Departure)
	if err != nil {
		return dto.FlightOffer{}, fmt.Errorf("departure time: %w", err)
	}

	arrivalTime, err := parseEndpointTime(last.Arrival)
	if err != nil {
		return dto.FlightOffer{}, fmt.Errorf("arrival time: %w", err)
	}

	layovers := make([]string, 0, len(segments)-1)
	for _, segment := range segments[:len(segments)-1] {
		layovers = append(layovers, endpointCode(segment.Arrival))
	}

	price, currency := o.priceAndCurrency()

	return dto.FlightOffer{
		Origin:                 origin,
		Destination:            destination,
		OriginAirportCode:      endpointCode(first.Departure),
		DestinationAirportCode: endpointCode(last.Arrival),
		LayoverAirports:        layovers,
		DepartureTime:          departureTime,
		ArrivalTime:            arrivalTime,
		Carrier:                strings.TrimSpace(first.CarrierCode.String() + " " + first.Number.String()),
		Duration:               FormatISODuration(itinerary.Duration.String()),
		AircraftCode:           aircraftCode(first.Aircraft),
		CabinClass:             o.cabinClass(),
		NumberOfStops:          len(segments) - 1,
		Price:                  price,
		Currency:               currency,
		Leg:                    leg,
	}, nil
}

func (o rawOffer) priceAndCurrency() (float64, string) {
	if o.Price == nil {
		return 0, defaultCurrency
	}

	currency := o.Price.Currency.String()
	if currency == "" {
		currency = defaultCurrency
	}

	total, err := strconv.ParseFloat(o.Price.Total.String(), 64)
	if err != nil {
		return 0, currency
	}

	// NaN and infinities parse without error
	total = utils.RoundPrice(total)
	if math.IsNaN(total) || math.IsInf(total, 0) || total < 0 {
		return 0, currency
	}

	return total, currency
}

func (o rawOffer) cabinClass() string {
	if len(o.TravelerPricings) == 0 || len(o.TravelerPricings[0].FareDetailsBySegment) == 0 {
		return defaultCabinClass
	}

	cabin := o.TravelerPricings[0].FareDetailsBySegment[0].Cabin.String()
	if cabin == "" {
		return defaultCabinClass
	}

	return cabin
}

func aircraftCode(aircraft *rawAircraft) string {
	if aircraft == nil || aircraft.Code.String() == "" {
		return defaultAircraftCode
	}

	return aircraft.Code.String()
}

func endpointCode(endpoint *rawEndpoint) string {
	if endpoint == nil {
		return ""
	}

	return endpoint.IATACode.String()
}

func parseEndpointTime(endpoint *rawEndpoint) (dto.LocalDateTime, error) {
	if endpoint == nil || endpoint.At.String() == "" {
		return dto.LocalDateTime{}, fmt.Errorf("missing")
	}

	var lastErr error
	for _, layout := range localDateTimeLayouts {
		t, err := time.Parse(layout, endpoint.At.String())
		if err == nil {
			return dto.NewLocalDateTime(t), nil
		}
		lastErr = err
	}

	return dto.LocalDateTime{}, lastErr
}

func offerIDOf(raw json.RawMessage) string {
	var head struct {
		ID looseString `json:"id"`
	}

	if err := json.Unmarshal(raw, &head); err != nil || head.ID == "" {
		return "unknown"
	}

	return head.ID.String()
}
