package api

import (
	"net/http"
	"time"

	// This blank import is required by swaggo to find the API definitions.
	_ "chartgen/docs"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

// NewRouter creates the chi router. generateTimeout bounds chart generation
// requests and should exceed the model call timeout so the service can
// answer with a classified error before the middleware gives up.
func NewRouter(chartHandler *ChartHandler, generateTimeout time.Duration) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/api/swagger/*", httpSwagger.WrapHandler)
	r.Handle("/metrics", promhttp.Handler())

	// Liveness probe.
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/api/v1", func(r chi.Router) {
		// Cheap, local endpoints.
		r.Group(func(r chi.Router) {
			r.Use(middleware.Timeout(10 * time.Second))

			r.Post("/charts/validate", chartHandler.ValidateChart)
			r.Get("/generations", chartHandler.ListGenerations)
			r.Get("/generations/{generationID}", chartHandler.GetGeneration)
		})

		// Model round trips.
		r.Group(func(r chi.Router) {
			r.Use(middleware.Timeout(generateTimeout))

			r.Post("/charts", chartHandler.GenerateChart)
		})
	})

	return r
}
