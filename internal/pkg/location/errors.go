package location

import (
	"net/http"

	"github.com/ijalalfrz/flight-price-watch-service/internal/pkg/exception"
)

var ErrResolution = exception.ApplicationError{
	StatusCode: http.StatusUnprocessableEntity,
	Message:    "unable to resolve location",
}
