package configserver

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Handler returns the router of s.
func (s *Server) Handler() http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(s.withRequestID, s.withLogging)

	if s.grant != nil {
		router.Post(s.grant.path, s.token)
	}

	routes := func(r chi.Router) {
		r.Use(s.auth)
		r.Get("/{name}/{profiles}", s.config)
		r.Get("/{name}/{profiles}/{label}", s.config)
	}
	if s.contextPath == "" {
		router.Group(routes)
	} else {
		router.Route(s.contextPath, routes)
	}

	return router
}
