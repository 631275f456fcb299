package flightprovider

import (
	"fmt"
	"net/http"

	"github.com/ijalalfrz/flight-price-watch-service/internal/pkg/exception"
)

var ErrProviderRateLimitExceeded = exception.ApplicationError{
	StatusCode: http.StatusTooManyRequests,
	Message:    "provider rate limit exceeded",
}

var ErrUnknownProvider = exception.ApplicationError{
	StatusCode: http.StatusInternalServerError,
	Message:    "unknown flight provider",
}

// UpstreamError is a non-success response from the provider.
type UpstreamError struct {
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("provider responded with status %d: %s", e.StatusCode, e.Body)
}
