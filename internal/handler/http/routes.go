package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(withLogging)
	router.Use(withMetrics)
	router.Use(withGZip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/user/register", h.register)
		r.Post("/api/user/login", h.login)
		r.Get("/api/version", h.getServerVersion)
		r.Handle("/metrics", promhttp.Handler())
	})

	// note routes, bearer token required
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Route("/api/notes", func(r chi.Router) {
			r.Get("/", h.listNotes)
			r.Post("/", h.createNote)
			r.Get("/{id}", h.getNote)
			r.Put("/{id}", h.updateNote)
			r.Delete("/{id}", h.deleteNote)
		})
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
