package calculator

import "github.com/go-chi/chi/v5"

// RegisterRoutes mounts the calculator endpoints onto the given router under
// the /percent prefix.
func RegisterRoutes(r chi.Router, h *Handler) {
	r.Route("/percent", func(r chi.Router) {
		r.Get("/modes", h.Modes)
		r.Post("/batch", h.Batch)
		r.Post("/{mode}", h.Calculate)
	})
}
