package service

import (
	"net/http"

	"github.com/ijalalfrz/flight-price-watch-service/internal/pkg/exception"
)

var ErrInvalidDate = exception.ApplicationError{
	Message:    "invalid date, expected YYYY-MM-DD",
	StatusCode: http.StatusBadRequest,
}

var ErrSearchNotFound = exception.ApplicationError{
	Message:    "saved search not found",
	StatusCode: http.StatusNotFound,
}

var ErrSearchModified = exception.ApplicationError{
	Message:    "saved search was modified concurrently",
	StatusCode: http.StatusConflict,
}

var ErrSearchLocked = exception.ApplicationError{
	Message:    "saved search is already being reconciled",
	StatusCode: http.StatusConflict,
}
