package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-kit/kit/endpoint"
	kithttp "github.com/go-kit/kit/transport/http"
	"github.com/google/uuid"
	"github.com/ijalalfrz/flight-price-watch-service/internal/pkg/exception"
)

var (
	ErrInvalidBody = exception.ApplicationError{
		StatusCode: http.StatusBadRequest,
		Message:    "invalid request body",
	}
	ErrInvalidID = exception.ApplicationError{
		StatusCode: http.StatusBadRequest,
		Message:    "invalid id",
	}
)

// MakeHandlerFunc serves a go-kit endpoint with the shared error encoder.
func MakeHandlerFunc(
	e endpoint.Endpoint,
	dec kithttp.DecodeRequestFunc,
	enc kithttp.EncodeResponseFunc,
) http.HandlerFunc {
	return kithttp.NewServer(e, dec, enc,
		kithttp.ServerErrorEncoder(ErrorResponse),
	).ServeHTTP
}

// DecodeRequest decodes the JSON body into a new T and runs its Bind hook.
func DecodeRequest[T any, PT interface {
	*T
	render.Binder
}](_ context.Context, r *http.Request) (interface{}, error) {
	req := PT(new(T))

	if err := render.Bind(r, req); err != nil {
		var appErr exception.ApplicationError
		if errors.As(err, &appErr) {
			return nil, err
		}

		return nil, ErrInvalidBody
	}

	return req, nil
}

// DecodeEmptyRequest is used by endpoints that only read the caller identity.
func DecodeEmptyRequest(_ context.Context, _ *http.Request) (interface{}, error) {
	return nil, nil
}

// DecodeIDParam returns a decoder reading a uuid path parameter into the
// request built by build.
func DecodeIDParam[T any](param string, build func(id uuid.UUID) *T) kithttp.DecodeRequestFunc {
	return func(_ context.Context, r *http.Request) (interface{}, error) {
		id, err := uuid.Parse(chi.URLParam(r, param))
		if err != nil {
			return nil, ErrInvalidID
		}

		return build(id), nil
	}
}
