package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// corsMaxAge is how long browsers may cache a preflight answer, in seconds.
const corsMaxAge = 300

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()

	router.Use(h.withCORS())
	router.Use(middleware.RealIP)
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withMetrics)
	router.Use(middleware.Compress(5, "application/json", "text/plain"))

	router.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/login", h.login)
		r.Post("/auth/register", h.register)
		r.Get("/products/categories", h.getCategories)
	})

	router.Get("/api/version", h.getServerVersion)
	router.Method(http.MethodGet, "/metrics", h.metrics.Handler())

	router.NotFound(NotFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

// withCORS lets the configured front-end origin call the API with
// credentials, which the session cookie requires.
func (h *Handler) withCORS() func(http.Handler) http.Handler {
	var origins []string
	if h.allowedOrigin != "" {
		origins = []string{h.allowedOrigin}
	}

	return cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Content-Type", traceIDHeader},
		ExposedHeaders:   []string{traceIDHeader},
		AllowCredentials: true,
		MaxAge:           corsMaxAge,
	})
}
