package http

import (
	"io"
	"net/http"

	"github.com/MKhiriev/auth-gateway/internal/logger"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	serverVersion := h.services.AppInfoService.GetAppVersion(r.Context())

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if _, err := io.WriteString(w, serverVersion); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing version")
	}
}
