package http

import (
	"net/http"

	"github.com/MKhiriev/auth-gateway/internal/utils"
)

const (
	traceIDHeader = "X-Trace-ID"

	// maxTraceIDLength bounds a caller-supplied trace ID; longer values are
	// replaced by a generated one.
	maxTraceIDLength = 128
)

func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(traceIDHeader)
		if traceID == "" || len(traceID) > maxTraceIDLength {
			traceID = utils.NewTraceID()
		}

		ctx := utils.WithTraceID(r.Context(), traceID)
		ctx = h.logger.WithTraceID(ctx, traceID)
		r = r.WithContext(ctx)

		w.Header().Set(traceIDHeader, traceID)
		next.ServeHTTP(w, r)
	})
}
