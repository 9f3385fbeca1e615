package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"percentcalc/internal/calculator"
	"percentcalc/internal/handlers"
	"percentcalc/internal/observability"
	"percentcalc/internal/percent"
)

// NewRouter wires the middleware chain, the operational endpoints and the
// percent calculator routes.
func NewRouter(calc *percent.Calculator) http.Handler {

	r := chi.NewRouter()

	r.Use(observability.RequestIDMiddleware)
	r.Use(observability.TracingMiddleware)
	r.Use(observability.LoggingMiddleware)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		handlers.WriteError(w, http.StatusNotFound, "not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		handlers.WriteError(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	r.Get("/health", handlers.Health)

	r.Handle("/metrics", observability.PrometheusHandler())

	calculator.RegisterRoutes(r, calculator.NewHandler(calc))

	return r
}
