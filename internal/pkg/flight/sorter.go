package flight

import (
	"sort"

	"github.com/ijalalfrz/flight-price-watch-service/internal/app/dto"
)

// SortByPrice orders offers by ascending price. Ties keep provider order.
func SortByPrice(offers []dto.FlightOffer) []dto.FlightOffer {
	sort.SliceStable(offers, func(i, j int) bool {
		return offers[i].Price < offers[j].Price
	})

	return offers
}

// Interleave alternates departure and return offers, starting with a
// departure, and appends the remainder of the longer list.
func Interleave(departures, returns []dto.FlightOffer) []dto.FlightOffer {
	result := make([]dto.FlightOffer, 0, len(departures)+len(returns))

	for i := 0; i < len(departures) || i < len(returns); i++ {
		if i < len(departures) {
			result = append(result, departures[i])
		}

		if i < len(returns) {
			result = append(result, returns[i])
		}
	}

	return result
}

// Truncate caps offers at limit. A non-positive limit disables the cap.
func Truncate(offers []dto.FlightOffer, limit int) []dto.FlightOffer {
	if limit <= 0 || len(offers) <= limit {
		return offers
	}

	return offers[:limit]
}

// CheapestPrice returns the lowest price among offers, or nil when empty.
func CheapestPrice(offers []dto.FlightOffer) *float64 {
	if len(offers) == 0 {
		return nil
	}

	lowest := offers[0].Price
	for _, offer := range offers[1:] {
		if offer.Price < lowest {
			lowest = offer.Price
		}
	}

	return &lowest
}

// Cheapest returns the first lowest-priced offer.
func Cheapest(offers []dto.FlightOffer) (dto.FlightOffer, bool) {
	if len(offers) == 0 {
		return dto.FlightOffer{}, false
	}

	best := offers[0]
	for _, offer := range offers[1:] {
		if offer.Price < best.Price {
			best = offer
		}
	}

	return best, true
}
