package amadeus

import (
	"encoding/json"

	"github.com/ijalalfrz/flight-price-watch-service/internal/pkg/flightprovider"
)

// offersResponse keeps every offer undecoded so the normalizer can reject
// a single malformed entry without losing the batch.
type offersResponse struct {
	Data []json.RawMessage `json:"data"`
}

type locationsResponse struct {
	Data []flightprovider.Location `json:"data"`
}
