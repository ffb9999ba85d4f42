package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	mw "github.com/pattarin-dev/webboard/internal/middleware"
	"github.com/pattarin-dev/webboard/internal/middleware/metrics"
	"github.com/pattarin-dev/webboard/internal/setup"
)

// New creates and configures the chi router with all the routes.
func New(deps *setup.Dependencies) *chi.Mux {
	r := chi.NewRouter()

	r.Use(mw.RequestId)
	r.Use(metrics.Middleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
	}))

	h := deps.Handler
	authMw := deps.AuthMiddleware

	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", h.Health)
		r.Get("/ready", h.Ready)

		r.Post("/register", h.Register)
		r.Post("/login", h.Login)
		r.Get("/threads", h.GetThreads)

		// Routes below require a valid bearer token
		r.Group(func(r chi.Router) {
			r.Use(authMw.NeedAuth())
			r.Post("/threads", h.CreateThread)
		})
	})

	return r
}
