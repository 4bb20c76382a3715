package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

// withMetrics records every request under its chi route pattern, so path
// values never blow up label cardinality.
func (h *Handler) withMetrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		mw := &responseWriter{ResponseWriter: w}

		next.ServeHTTP(mw, r)

		route := ""
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			route = rctx.RoutePattern()
		}

		h.metrics.ObserveHTTP(route, r.Method, mw.statusCode(), time.Since(start))
	})
}
