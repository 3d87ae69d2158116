// Package httpapi exposes the REST auth endpoints and mounts the GraphQL
// handler for snippets and recommendations.
package httpapi

import (
	"net/http"

	"github.com/dberzins/snippetflow/internal/logging"
	"github.com/dberzins/snippetflow/internal/server/services"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

// Router wires HTTP endpoints to services.
type Router struct {
	mux     *chi.Mux
	logger  logging.Logger
	users   *services.UserService
	graphql http.Handler
}

// NewRouter assembles routes with dependencies. graphql is mounted at
// /graphql; corsOrigin of "*" allows all origins (the development default).
func NewRouter(logger logging.Logger, users *services.UserService, graphql http.Handler, corsOrigin string) *Router {
	r := &Router{
		mux:     chi.NewRouter(),
		logger:  logger,
		users:   users,
		graphql: graphql,
	}

	r.mux.Use(requestID)
	r.mux.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{corsOrigin},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	r.mux.Get("/", r.handleRoot)
	r.mux.Route("/auth", func(mux chi.Router) {
		mux.Post("/register", r.handleRegister)
		mux.Post("/login", r.handleLogin)
		mux.Post("/logout", r.handleLogout)
		mux.Get("/me", r.handleMe)
	})
	r.mux.Handle("/graphql", graphql)

	return r
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.mux.ServeHTTP(w, req)
}

func (r *Router) handleRoot(w http.ResponseWriter, req *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "SnippetFlow API is running"})
}
