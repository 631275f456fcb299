package transport

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/google/uuid"
	"github.com/ijalalfrz/flight-price-watch-service/internal/app/config"
	"github.com/ijalalfrz/flight-price-watch-service/internal/app/dto"
	"github.com/ijalalfrz/flight-price-watch-service/internal/app/endpoints"
	httptransport "github.com/ijalalfrz/flight-price-watch-service/internal/pkg/transport/http"
)

// MakeHTTPRouter builds the HTTP router with all the service endpoints.
func MakeHTTPRouter(
	cfg *config.Config,
	endpts endpoints.Endpoints,
	verifier httptransport.TokenVerifier,
) *chi.Mux {
	// Initialize Router
	router := chi.NewRouter()

	router.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	router.Route("/api/v1", func(router chi.Router) {
		router.Use(
			httptransport.RequestID(),
			httptransport.CORSMiddleware(),
			httptransport.Recoverer(slog.Default()),
			render.SetContentType(render.ContentTypeJSON),
		)

		if cfg.HTTP.Timeout > 0 {
			router.Use(middleware.Timeout(cfg.HTTP.Timeout))
		}

		router.With(httptransport.OptionalAuthenticate(verifier)).
			Post("/flights/search", httptransport.MakeHandlerFunc(
				endpts.Flight.SearchFlights,
				httptransport.DecodeRequest[dto.SearchFlightRequest],
				httptransport.ResponseWithBody,
			))

		router.Group(func(router chi.Router) {
			router.Use(httptransport.Authenticate(verifier))

			router.Post("/searches", httptransport.MakeHandlerFunc(
				endpts.SavedSearch.SaveSearch,
				httptransport.DecodeRequest[dto.SaveSearchRequest],
				httptransport.ResponseWithBody,
			))

			router.Get("/searches", httptransport.MakeHandlerFunc(
				endpts.SavedSearch.ListSearches,
				httptransport.DecodeEmptyRequest,
				httptransport.ResponseWithBody,
			))

			router.Delete("/searches/{id}", httptransport.MakeHandlerFunc(
				endpts.SavedSearch.DeleteSearch,
				httptransport.DecodeIDParam("id", func(id uuid.UUID) *dto.DeleteSearchRequest {
					return &dto.DeleteSearchRequest{ID: id}
				}),
				httptransport.NoContentResponse,
			))

			router.Put("/users/push-token", httptransport.MakeHandlerFunc(
				endpts.SavedSearch.RegisterPushToken,
				httptransport.DecodeRequest[dto.PushTokenRequest],
				httptransport.NoContentResponse,
			))

			router.Delete("/users/push-token", httptransport.MakeHandlerFunc(
				endpts.SavedSearch.ClearPushToken,
				httptransport.DecodeEmptyRequest,
				httptransport.NoContentResponse,
			))
		})
	})

	return router
}
