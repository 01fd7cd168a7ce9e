package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// storefront routes: arbitrary origins, no auth, rate limited
	router.Group(func(r chi.Router) {
		r.Use(h.withCORS)
		r.Post("/api/storefront/upload", h.upload)
		r.Options("/api/storefront/upload", h.preflight)
		r.Post("/api/storefront/submissions", h.createSubmission)
		r.Options("/api/storefront/submissions", h.preflight)
	})

	// admin routes behind bearer-token auth
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Get("/api/admin/submissions", h.listSubmissions)
		r.Post("/api/admin/submissions/{id}/approve", h.approveSubmission)
		r.Post("/api/admin/submissions/{id}/publish", h.publishSubmission)
	})

	router.Get("/api/health", h.health)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
