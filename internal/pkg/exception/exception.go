package exception

import (
	"errors"
	"fmt"
	"net/http"
)

// ApplicationError handles application level errors.
type ApplicationError struct {
	Message    string
	StatusCode int
	Cause      error
}

// Error interface implementation.
func (e ApplicationError) Error() string {
	if e.Cause == nil {
		return e.Message
	}

	return fmt.Sprintf("%s: %s", e.Message, e.Cause)
}

func (e ApplicationError) Unwrap() error {
	if e.Cause == nil {
		return errors.New(e.Message)
	}

	return e.Cause
}

func (e ApplicationError) Is(target error) bool {
	var targetErr ApplicationError

	if !errors.As(target, &targetErr) {
		return false
	}

	return e.Cause == targetErr.Cause &&
		e.Message == targetErr.Message
}

// ErrorCode returns error code for an application error.
func (e ApplicationError) ErrorCode() int {
	return e.StatusCode
}

// StatusCode returns the HTTP status of the first ApplicationError in err's
// chain, or 500 when there is none.
func StatusCode(err error) int {
	var appErr ApplicationError
	if errors.As(err, &appErr) && appErr.ErrorCode() != 0 {
		return appErr.ErrorCode()
	}

	return http.StatusInternalServerError
}

// IsClientError reports whether err maps to a 4xx response.
func IsClientError(err error) bool {
	code := StatusCode(err)

	return code >= http.StatusBadRequest && code < http.StatusInternalServerError
}
