package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/go-chi/cors"
	"github.com/google/uuid"
	"github.com/ijalalfrz/flight-price-watch-service/internal/pkg/auth"
	"github.com/ijalalfrz/flight-price-watch-service/internal/pkg/exception"
	"github.com/ijalalfrz/flight-price-watch-service/internal/pkg/logger"
)

type MiddlewareFunc func(http.Handler) http.Handler

type TokenVerifier interface {
	Verify(rawToken string) (uuid.UUID, error)
}

var errInternal = exception.ApplicationError{
	StatusCode: http.StatusInternalServerError,
	Message:    "internal server error",
}

func Recoverer(logger *slog.Logger) MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(respWriter http.ResponseWriter, req *http.Request) {
			defer func() {
				if rvr := recover(); rvr != nil {
					if err, _ := rvr.(error); errors.Is(err, http.ErrAbortHandler) {
						// the client response is aborted, not logged
						panic(rvr)
					}

					logger.ErrorContext(req.Context(), "panic occurred",
						slog.Any("message", rvr),
						slog.String("stack_trace", string(debug.Stack())))

					ErrorResponse(req.Context(), errInternal, respWriter)
				}
			}()

			next.ServeHTTP(respWriter, req)
		})
	}
}

// CORSMiddleware set CORS related headers.
func CORSMiddleware() func(next http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins: []string{"http://localhost:8444"}, // allow swagger
		AllowedMethods: []string{"GET", "POST", "PUT", "OPTIONS", "DELETE"},
		AllowedHeaders: []string{"Authorization", "Origin", "Content-Type", "X-Request-Id"},
		ExposedHeaders: []string{"X-Request-Id"},
	})
}

// RequestID add request id to context and response header.
func RequestID() MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := r.Header.Get("X-Request-Id")
			if requestID == "" {
				requestID = uuid.New().String()
			}

			ctx := context.WithValue(r.Context(), logger.RequestIDKey, requestID)
			w.Header().Set("X-Request-Id", requestID)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Authenticate rejects requests without a valid bearer token.
func Authenticate(verifier TokenVerifier) MiddlewareFunc {
	return authenticate(verifier, true)
}

// OptionalAuthenticate lets anonymous requests through. A token that is
// present must still be valid.
func OptionalAuthenticate(verifier TokenVerifier) MiddlewareFunc {
	return authenticate(verifier, false)
}

func authenticate(verifier TokenVerifier, required bool) MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" && !required {
				next.ServeHTTP(w, r)
				return
			}

			token, ok := auth.ExtractBearerToken(header)
			if !ok {
				ErrorResponse(r.Context(), auth.ErrUnauthorized, w)
				return
			}

			userID, err := verifier.Verify(token)
			if err != nil {
				ErrorResponse(r.Context(), err, w)
				return
			}

			next.ServeHTTP(w, r.WithContext(auth.WithUserID(r.Context(), userID)))
		})
	}
}
