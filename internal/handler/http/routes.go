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
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.NotFound(routeNotFound())
	router.MethodNotAllowed(CheckHTTPMethod(router))

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/Users", h.createUser)
		r.Post("/api/Login", h.login)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/Users", h.listUsers)
		r.Get("/api/Users/{id}", h.getUser)
		r.Put("/api/Users/{id}", h.updateUser)
		r.Delete("/api/Users/{id}", h.deleteUser)
		r.Post("/api/UpdatePassword", h.updatePassword)
	})

	return router
}
