package flight

import (
	"strings"

	"github.com/ijalalfrz/flight-price-watch-service/internal/app/dto"
)

// FilterOffers applies the query's price cap and airline preference to
// offers. Providers that already honour them pass through unchanged.
func FilterOffers(offers []dto.FlightOffer, query dto.LegQuery) []dto.FlightOffer {
	if query.MaxPrice == nil && len(query.PreferredAirlines) == 0 {
		return offers
	}

	airlines := make(map[string]bool, len(query.PreferredAirlines))
	for _, code := range query.PreferredAirlines {
		airlines[strings.ToUpper(strings.TrimSpace(code))] = true
	}

	results := make([]dto.FlightOffer, 0, len(offers))

	for _, offer := range offers {
		if query.MaxPrice != nil && offer.Price > *query.MaxPrice {
			continue
		}

		if len(airlines) > 0 && !airlines[carrierCode(offer.Carrier)] {
			continue
		}

		results = append(results, offer)
	}

	return results
}

func carrierCode(carrier string) string {
	code, _, _ := strings.Cut(carrier, " ")

	return strings.ToUpper(code)
}
